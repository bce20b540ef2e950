// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Per-row min-max scaling of raw expression values into [0,1].
//   - Construction of a Matrix from labels and a raw gene × sample table.
//
// Determinism:
//   - Fixed i→j traversal; no randomness.

package matrix

import (
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

const (
	opNormalize       = "Normalize"
	opNormalizeMinMax = "NormalizeRowMinMax"
)

// NormalizeRowMinMax scales row in place to (v - min) / (max - min) and
// returns the min and max observed before scaling.
//
// A degenerate row (max == min) is handled per policy: zero-filled, NaN-filled
// or rejected with ErrDegenerateRow (row left untouched). An empty row is a
// no-op returning (0, 0, nil).
//
// Complexity: O(len(row)).
func NormalizeRowMinMax(row []float64, policy DegeneratePolicy) (lo, hi float64, err error) {
	if len(row) == 0 {
		return 0, 0, nil
	}
	lo, hi = floats.Min(row), floats.Max(row)
	delta := hi - lo

	if delta == 0 {
		switch policy {
		case DegenerateReject:
			return lo, hi, matrixErrorf(opNormalizeMinMax, ErrDegenerateRow)
		case DegenerateNaN:
			fill(row, math.NaN())
		default:
			fill(row, 0)
		}

		return lo, hi, nil
	}

	floats.AddConst(-lo, row)
	var j int
	for j = 0; j < len(row); j++ {
		row[j] /= delta // division keeps the max cell at exactly 1.0
	}

	return lo, hi, nil
}

// Normalize builds a Matrix from gene labels (rows), entity labels (columns)
// and a raw table raw[gene][entity]. raw is copied, never mutated.
//
// Implementation:
//   - Stage 1: Validate src and the label/value shape.
//   - Stage 2: Copy raw into a fresh Dense.
//   - Stage 3: Min-max scale every row independently.
//
// Errors:
//   - ErrNilSource, ErrDimensionMismatch, ErrDegenerateRow (DegenerateReject).
//
// Complexity: Time O(r*c), Space O(r*c).
func Normalize(genes, entities []string, raw [][]float64, src Source, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	// Stage 1: validate.
	if src == nil {
		return nil, matrixErrorf(opNormalize, ErrNilSource)
	}
	if len(raw) != len(genes) {
		return nil, matrixErrorf(opNormalize, ErrDimensionMismatch)
	}

	// Stage 2: copy (ragged rows are rejected here).
	d, err := newDenseFromRows(raw, len(entities))
	if err != nil {
		return nil, matrixErrorf(opNormalize, err)
	}

	// Stage 3: scale rows.
	var i, degenerate int
	for i = 0; i < d.r; i++ {
		lo, hi, err := NormalizeRowMinMax(d.rowView(i), o.policy)
		if err != nil {
			return nil, matrixErrorf(opNormalize, fmtGene(genes[i], err))
		}
		if lo == hi && d.c > 0 {
			degenerate++
			o.logger.WithFields(logrus.Fields{
				"gene":   genes[i],
				"value":  lo,
				"policy": o.policy.String(),
			}).Debug("degenerate expression row")
		}
	}
	o.logger.WithFields(logrus.Fields{
		"genes":      d.r,
		"entities":   d.c,
		"degenerate": degenerate,
	}).Debug("normalized matrix built")

	return newMatrix(cloneStrings(genes), cloneStrings(entities), d, src), nil
}

// fill sets every element of row to v.
func fill(row []float64, v float64) {
	for j := range row {
		row[j] = v
	}
}
