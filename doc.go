// Package genomerf builds and manipulates the normalized gene-expression
// matrix fed to random-forest style classifiers.
//
// Under the hood, everything is organized under two subpackages:
//
//	dataset/ — labeled samples (Entity, Verdict) and the Dataset that owns them
//	matrix/  — the immutable labeled Matrix: normalization, slicing,
//	           shuffling, denormalization, gonum hand-off
//
// Pipeline:
//
//	ingestion ──AddEntity──▶ Dataset ──NormalizedMatrix──▶ Matrix
//	                                                        │
//	                      SubMatrix / SplitColumns / Shuffled / Denormalize
//
// A runnable walk-through lives in examples/.
package genomerf
