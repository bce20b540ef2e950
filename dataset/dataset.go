// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/genomerf/matrix"
)

const opNormalizedMatrix = "NormalizedMatrix"

// Dataset is the canonical sample collection. Records are kept both in
// insertion order and in an accession index; the two always hold exactly the
// same records.
//
// Dataset is not safe for concurrent mutation. Matrices built from it read
// through to its current state when denormalizing.
type Dataset struct {
	title    string
	entities []*Entity          // insertion order
	index    map[string]*Entity // GeoAccess → record
	logger   logrus.FieldLogger
}

// New returns an empty Dataset.
func New(opts ...Option) *Dataset {
	d := &Dataset{
		index:  make(map[string]*Entity),
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Title returns the dataset title.
func (d *Dataset) Title() string { return d.title }

// SetTitle replaces the dataset title.
func (d *Dataset) SetTitle(title string) { d.title = title }

// Size returns the number of retained samples.
func (d *Dataset) Size() int { return len(d.entities) }

// AddEntity retains e. Nil entities and excluded verdicts are ignored.
// Adding an accession that is already present replaces that record in place,
// keeping its position.
// Complexity: O(1) amortized for new accessions, O(n) for replacements.
func (d *Dataset) AddEntity(e *Entity) {
	if e == nil || e.Verdict.Excluded() {
		return
	}

	if old, ok := d.index[e.GeoAccess]; ok {
		for i, cur := range d.entities {
			if cur == old {
				d.entities[i] = e
				break
			}
		}
		d.index[e.GeoAccess] = e

		return
	}

	d.entities = append(d.entities, e)
	d.index[e.GeoAccess] = e
}

// UpdateEntity applies mutate to the record at index.
//
// An index outside [0, Size()) or a nil mutate is a silent no-op. When the
// mutation changes GeoAccess, the accession index is re-keyed: the old key is
// dropped and the new one inserted. A new accession already used by another
// record yields ErrDuplicateAccession and the record keeps its previous
// fields.
//
// Changing the verdict to an excluded category does not remove the record;
// NormalizedMatrix skips it instead.
func (d *Dataset) UpdateEntity(index int, mutate func(*Entity)) error {
	e, ok := d.EntityByIndex(index)
	if !ok || mutate == nil {
		return nil
	}

	next := *e
	mutate(&next)

	if next.GeoAccess != e.GeoAccess {
		if other, taken := d.index[next.GeoAccess]; taken && other != e {
			return fmt.Errorf("UpdateEntity(%d) %q: %w", index, next.GeoAccess, ErrDuplicateAccession)
		}
		delete(d.index, e.GeoAccess)
		d.index[next.GeoAccess] = e
	}
	*e = next

	return nil
}

// EntityByIndex returns the record at insertion position index.
// ok is false when index is out of range.
func (d *Dataset) EntityByIndex(index int) (*Entity, bool) {
	if index < 0 || index >= len(d.entities) {
		return nil, false
	}

	return d.entities[index], true
}

// EntityByGeoAccess returns the record with the given accession.
// ok is false when no such record exists.
func (d *Dataset) EntityByGeoAccess(accession string) (*Entity, bool) {
	e, ok := d.index[accession]

	return e, ok
}

// HasEntity reports whether a record with the given accession exists.
func (d *Dataset) HasEntity(accession string) bool {
	_, ok := d.index[accession]

	return ok
}

// ExpressionOf returns the current raw expression of gene in the sample
// with the given accession.
func (d *Dataset) ExpressionOf(accession, gene string) (float64, bool) {
	e, ok := d.index[accession]
	if !ok {
		return 0, false
	}

	return e.ExpressionByGene(gene)
}

// AllGenes returns the union of gene ids over every retained sample,
// deduplicated, in first-seen order (samples in insertion order, each
// sample's genes ascending).
func (d *Dataset) AllGenes() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range d.entities {
		for _, g := range e.Genes() {
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			out = append(out, g)
		}
	}

	return out
}

// columns returns the samples eligible for the matrix, in insertion order.
func (d *Dataset) columns() []*Entity {
	out := make([]*Entity, 0, len(d.entities))
	for _, e := range d.entities {
		if !e.Verdict.Excluded() {
			out = append(out, e)
		}
	}

	return out
}

// sharedGenes intersects the gene sets of cols and returns them ascending.
// cols must be non-empty.
func sharedGenes(cols []*Entity) []string {
	shared := make(map[string]struct{}, len(cols[0].Expression))
	for g := range cols[0].Expression {
		shared[g] = struct{}{}
	}
	for _, e := range cols[1:] {
		for g := range shared {
			if _, ok := e.Expression[g]; !ok {
				delete(shared, g)
			}
		}
	}

	out := make([]string, 0, len(shared))
	for g := range shared {
		out = append(out, g)
	}
	sort.Strings(out)

	return out
}

// NormalizedMatrix builds the gene × sample matrix, min-max normalized per
// gene row.
//
// Implementation:
//   - Stage 1: Collect non-excluded samples in insertion order (columns).
//   - Stage 2: Intersect their gene sets; sorted genes become the rows.
//   - Stage 3: Fill raw[gene][sample] and hand it to matrix.Normalize with the
//     dataset as the Source.
//
// Errors:
//   - ErrEmptyDataset if no sample qualifies.
//   - matrix.Normalize errors (e.g. matrix.ErrDegenerateRow under
//     matrix.DegenerateReject).
//
// Complexity: Time O(G*S), Space O(G*S) for G shared genes and S samples.
func (d *Dataset) NormalizedMatrix(opts ...matrix.Option) (*matrix.Matrix, error) {
	// Stage 1: columns.
	cols := d.columns()
	if len(cols) == 0 {
		return nil, fmt.Errorf("%s: %w", opNormalizedMatrix, ErrEmptyDataset)
	}
	d.logger.WithFields(logrus.Fields{
		"title":    d.title,
		"entities": len(cols),
	}).Debug("creating normalized matrix")

	// Stage 2: rows.
	genes := sharedGenes(cols)
	names := make([]string, len(cols))
	for j, e := range cols {
		names[j] = e.GeoAccess
	}

	// Stage 3: raw table.
	raw := make([][]float64, len(genes))
	var i, j int
	for i = 0; i < len(genes); i++ {
		raw[i] = make([]float64, len(cols))
		for j = 0; j < len(cols); j++ {
			raw[i][j] = cols[j].Expression[genes[i]] // present: genes were intersected
		}
	}

	opts = append([]matrix.Option{matrix.WithLogger(d.logger)}, opts...)
	m, err := matrix.Normalize(genes, names, raw, d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNormalizedMatrix, err)
	}

	return m, nil
}
