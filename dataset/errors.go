// SPDX-License-Identifier: MIT

package dataset

import "errors"

// Sentinel errors for dataset operations. Index-based lookups never error;
// they report misses through their ok result instead.
var (
	// ErrEmptyDataset indicates a matrix was requested with no retained,
	// non-excluded samples.
	ErrEmptyDataset = errors.New("dataset: no samples to build a matrix from")

	// ErrDuplicateAccession indicates an update would give a record the
	// accession of another record.
	ErrDuplicateAccession = errors.New("dataset: duplicate accession")

	// ErrUnknownVerdict indicates a verdict label could not be parsed.
	ErrUnknownVerdict = errors.New("dataset: unknown verdict")
)
