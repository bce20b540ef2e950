// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels (possibly tagged with the
// operation name) and tests check them via errors.Is.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Operations tag sentinels as fmt.Errorf("Op: %w", ErrX); callers still match
// with errors.Is.

var (
	// ErrBadShape is returned when a requested shape is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// SubMatrix wraps it with the name of the failing bound (vf, vt, hf, ht).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that labels and values disagree in shape,
	// e.g. len(genes) != rows of raw data or a ragged raw row.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilSource indicates that a Matrix was built without a Source.
	ErrNilSource = errors.New("matrix: nil source")

	// ErrEmptyMatrix indicates an operation that needs at least one cell
	// (or at least one column) was called on an empty matrix.
	ErrEmptyMatrix = errors.New("matrix: empty matrix")

	// ErrDegenerateRow is returned under DegenerateReject when a row has
	// max == min and therefore cannot be min-max scaled.
	ErrDegenerateRow = errors.New("matrix: degenerate row (max == min)")

	// ErrUnknownEntity indicates the Source has no sample for a column label.
	ErrUnknownEntity = errors.New("matrix: unknown entity")

	// ErrUnknownGene indicates the Source has no expression for a gene.
	ErrUnknownGene = errors.New("matrix: unknown gene")
)
