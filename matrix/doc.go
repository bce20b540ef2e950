// Package matrix provides the immutable, labeled expression matrix consumed by
// downstream classifiers.
//
// A Matrix pairs a row-major Dense of min-max normalized values with:
//
//   - gene labels, one per row,
//   - sample accession labels, one per column,
//   - a read-only Source used to recover raw-scale values (Denormalize).
//
// Every transformation (SubMatrix, Shuffled, SplitColumns) returns a new
// Matrix sharing the same Source; the receiver is never mutated, so a built
// Matrix is safe for concurrent readers.
//
// Error policy: slicing and element access are strict and return errors
// wrapping ErrOutOfRange; label lookups (RowOfGene) are tolerant and return
// NotFound instead.
//
// Complexity: construction and copies are O(rows*cols); label lookups are
// linear in the number of genes.
package matrix
