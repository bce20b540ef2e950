// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// NotFound is returned by RowOfGene when no gene label matches.
const NotFound = -1

const (
	opSubMatrix    = "SubMatrix"
	opShuffled     = "Shuffled"
	opDenormalize  = "Denormalize"
	opSplitColumns = "SplitColumns"
	opToGonum      = "ToGonum"
)

// Source is the read-only view of the sample collection a Matrix was built
// from. Denormalize reads through it on every call, so results follow the
// source's current state rather than a snapshot.
type Source interface {
	// ExpressionOf returns the raw expression of gene in the sample with the
	// given accession. ok is false when the sample or the gene is unknown.
	ExpressionOf(accession, gene string) (value float64, ok bool)

	// HasEntity reports whether a sample with the given accession exists.
	HasEntity(accession string) bool
}

// Matrix is an immutable gene × sample table of normalized expression values.
// Rows correspond 1:1 to Genes(), columns to Entities().
type Matrix struct {
	genes    []string // row labels
	entities []string // column labels (accessions)
	data     *Dense   // len(genes) × len(entities)
	src      Source   // shared, read-only back-reference
}

// newMatrix assembles a Matrix from owned parts; no copying happens here.
func newMatrix(genes, entities []string, data *Dense, src Source) *Matrix {
	return &Matrix{genes: genes, entities: entities, data: data, src: src}
}

// matrixErrorf tags err with the operation name.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// fmtGene adds the gene label to err.
func fmtGene(gene string, err error) error {
	return fmt.Errorf("gene %q: %w", gene, err)
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)

	return out
}

// Rows returns the number of gene rows.
func (m *Matrix) Rows() int { return m.data.Rows() }

// Cols returns the number of sample columns.
func (m *Matrix) Cols() int { return m.data.Cols() }

// NumberOfGenes returns the length of the gene label sequence.
func (m *Matrix) NumberOfGenes() int { return len(m.genes) }

// NumberOfEntities returns the length of the sample label sequence.
func (m *Matrix) NumberOfEntities() int { return len(m.entities) }

// Genes returns a copy of the row labels.
func (m *Matrix) Genes() []string { return cloneStrings(m.genes) }

// Entities returns a copy of the column labels.
func (m *Matrix) Entities() []string { return cloneStrings(m.entities) }

// Source returns the shared back-reference used for denormalization.
func (m *Matrix) Source() Source { return m.src }

// At returns the normalized value at (row, col).
func (m *Matrix) At(row, col int) (float64, error) {
	return m.data.At(row, col)
}

// Row returns a copy of the normalized values of row i.
func (m *Matrix) Row(i int) ([]float64, error) {
	return m.data.RawRow(i)
}

// Values returns a freshly allocated [][]float64 copy of the table.
// Complexity: O(r*c).
func (m *Matrix) Values() [][]float64 {
	out := make([][]float64, m.data.r)
	var i int
	for i = 0; i < m.data.r; i++ {
		out[i] = make([]float64, m.data.c)
		copy(out[i], m.data.rowView(i))
	}

	return out
}

// RowOfGene returns the index of the first gene label containing substr,
// or NotFound. Matching is by substring so prefixed or partial probe ids
// (e.g. "1007_s_at" for "s_at") resolve.
// Complexity: O(r * len(label)).
func (m *Matrix) RowOfGene(substr string) int {
	for i, g := range m.genes {
		if strings.Contains(g, substr) {
			return i
		}
	}

	return NotFound
}

// SubMatrix extracts rows [vf, vt) × columns [hf, ht) into a new Matrix.
//
// Bounds are checked strictly: vf, vt-1 must be valid row indices and hf, ht-1
// valid column indices; a violation returns an error wrapping ErrOutOfRange
// that names the failing parameter. Values are copied; labels are the matching
// sub-ranges. The receiver is not modified.
//
// Complexity: Time O((vt-vf)*(ht-hf)), Space the same.
func (m *Matrix) SubMatrix(vf, vt, hf, ht int) (*Matrix, error) {
	if err := validateRange("hf", "ht", hf, ht, m.Cols()); err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	if err := validateRange("vf", "vt", vf, vt, m.Rows()); err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}

	sub, err := NewDense(vt-vf, ht-hf)
	if err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	var i int
	for i = 0; i < sub.r; i++ {
		copy(sub.rowView(i), m.data.rowView(vf+i)[hf:ht])
	}

	return newMatrix(cloneStrings(m.genes[vf:vt]), cloneStrings(m.entities[hf:ht]), sub, m.src), nil
}

// SplitColumns cuts the matrix into columns [0, at) and [at, Cols()), the
// usual train/validation split over samples. Both halves keep every gene row.
// at must leave at least one column on each side.
func (m *Matrix) SplitColumns(at int) (left, right *Matrix, err error) {
	if at <= 0 || at >= m.Cols() {
		return nil, nil, matrixErrorf(opSplitColumns, boundErrorf("at", at, m.Cols()))
	}
	if left, err = m.SubMatrix(0, m.Rows(), 0, at); err != nil {
		return nil, nil, matrixErrorf(opSplitColumns, err)
	}
	if right, err = m.SubMatrix(0, m.Rows(), at, m.Cols()); err != nil {
		return nil, nil, matrixErrorf(opSplitColumns, err)
	}

	return left, right, nil
}

// Shuffled returns a new Matrix whose rows are a uniformly random permutation
// of the receiver's rows. Each gene label moves together with its row of
// values; column labels and order are unchanged.
//
// The permutation is drawn from the generator given via WithRand, or from a
// freshly seeded one.
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix) Shuffled(opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	perm := o.random().Perm(m.Rows())

	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opShuffled, err)
	}
	genes := make([]string, len(perm))
	for i, from := range perm {
		genes[i] = m.genes[from]
		copy(out.rowView(i), m.data.rowView(from))
	}

	return newMatrix(genes, cloneStrings(m.entities), out, m.src), nil
}

// Denormalize maps a normalized value for gene back to raw scale:
//
//	raw = value*(max-min) + min
//
// min and max are recomputed on every call from the Source's current raw
// expression of gene over exactly this matrix's column samples. After column
// slicing they reflect only the remaining samples, which may differ from the
// basis used when the row was normalized.
//
// Errors:
//   - ErrEmptyMatrix when the matrix has no columns.
//   - ErrUnknownEntity / ErrUnknownGene when the Source cannot resolve a cell.
//
// Complexity: O(c).
func (m *Matrix) Denormalize(gene string, value float64) (float64, error) {
	if len(m.entities) == 0 {
		return 0, matrixErrorf(opDenormalize, ErrEmptyMatrix)
	}

	raw := make([]float64, len(m.entities))
	for j, acc := range m.entities {
		v, ok := m.src.ExpressionOf(acc, gene)
		if !ok {
			if !m.src.HasEntity(acc) {
				return 0, matrixErrorf(opDenormalize, fmt.Errorf("entity %q: %w", acc, ErrUnknownEntity))
			}

			return 0, matrixErrorf(opDenormalize, fmtGene(gene, ErrUnknownGene))
		}
		raw[j] = v
	}
	lo, hi := floats.Min(raw), floats.Max(raw)

	return value*(hi-lo) + lo, nil
}

// ToGonum copies the table into a gonum *mat.Dense (genes × samples) for
// trainers built on gonum. gonum cannot represent zero-size matrices, so an
// empty Matrix yields ErrEmptyMatrix.
func (m *Matrix) ToGonum() (*mat.Dense, error) {
	if m.Rows() == 0 || m.Cols() == 0 {
		return nil, matrixErrorf(opToGonum, ErrEmptyMatrix)
	}
	data := make([]float64, len(m.data.data))
	copy(data, m.data.data)

	return mat.NewDense(m.Rows(), m.Cols(), data), nil
}

// String renders the labeled table for debugging.
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d×%d %v\n", m.Rows(), m.Cols(), m.entities)
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		sb.WriteString(m.genes[i])
		row := m.data.rowView(i)
		for j = 0; j < len(row); j++ {
			fmt.Fprintf(&sb, " %.4g", row[j])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
