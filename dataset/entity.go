// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"sort"
	"strings"
)

// Verdict is the classification category of a sample.
type Verdict int

const (
	// Normal marks healthy tissue.
	Normal Verdict = iota

	// Nevus marks benign lesions. Nevus samples are excluded from analysis.
	Nevus

	// Melanoma marks the target class.
	Melanoma
)

var verdictNames = [...]string{
	Normal:   "normal",
	Nevus:    "nevus",
	Melanoma: "melanoma",
}

// String returns the lower-case verdict label.
func (v Verdict) String() string {
	if v < Normal || v > Melanoma {
		return fmt.Sprintf("verdict(%d)", int(v))
	}

	return verdictNames[v]
}

// Excluded reports whether samples with this verdict are kept out of the
// dataset and the matrix.
func (v Verdict) Excluded() bool { return v == Nevus }

// ParseVerdict maps a label (case-insensitive, surrounding space ignored)
// to a Verdict.
func ParseVerdict(s string) (Verdict, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for v, name := range verdictNames {
		if name == s {
			return Verdict(v), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownVerdict)
}

// Entity is one biological sample: an accession, a verdict and its
// gene → expression profile. Entities are built by ingestion code; the
// Dataset only holds references to them.
type Entity struct {
	// GeoAccess is the unique accession (e.g. "GSM72180").
	GeoAccess string

	// Verdict is the sample's classification.
	Verdict Verdict

	// Expression maps gene (probe) ids to non-negative expression values.
	Expression map[string]float64
}

// NewEntity returns an Entity with a non-nil expression map.
func NewEntity(accession string, verdict Verdict, expression map[string]float64) *Entity {
	if expression == nil {
		expression = make(map[string]float64)
	}

	return &Entity{GeoAccess: accession, Verdict: verdict, Expression: expression}
}

// Genes returns the entity's gene ids in ascending order.
func (e *Entity) Genes() []string {
	out := make([]string, 0, len(e.Expression))
	for g := range e.Expression {
		out = append(out, g)
	}
	sort.Strings(out)

	return out
}

// ExpressionByGene returns the expression of gene; ok is false if absent.
func (e *Entity) ExpressionByGene(gene string) (value float64, ok bool) {
	value, ok = e.Expression[gene]

	return value, ok
}
