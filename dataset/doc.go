// Package dataset owns the collection of labeled expression samples and
// derives the normalized gene × sample matrix from it.
//
// Samples (Entity) are produced by ingestion code and added with AddEntity;
// samples whose verdict is excluded (Nevus) are never retained. Index-based
// lookups are tolerant: a miss is reported through an ok result and an
// out-of-range UpdateEntity is a no-op.
//
// NormalizedMatrix intersects the gene sets of all samples, orders genes
// ascending and samples by insertion, and min-max scales each gene row into
// [0,1]. The resulting matrix.Matrix keeps the Dataset as its read-only
// Source, so denormalization always reflects the Dataset's current values.
package dataset
