// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genomerf/matrix"
)

const eps = 1e-12

// mapSource is an in-memory matrix.Source: accession → gene → raw value.
type mapSource map[string]map[string]float64

func (s mapSource) ExpressionOf(accession, gene string) (float64, bool) {
	e, ok := s[accession]
	if !ok {
		return 0, false
	}
	v, ok := e[gene]

	return v, ok
}

func (s mapSource) HasEntity(accession string) bool {
	_, ok := s[accession]

	return ok
}

// fixture returns the three-sample example:
//
//	A: 2 4 6
//	B: 1 1 3
//	C: 5 0 10
func fixture() (genes, entities []string, raw [][]float64, src mapSource) {
	genes = []string{"A", "B", "C"}
	entities = []string{"s1", "s2", "s3"}
	raw = [][]float64{
		{2, 4, 6},
		{1, 1, 3},
		{5, 0, 10},
	}
	src = mapSource{}
	for j, acc := range entities {
		src[acc] = map[string]float64{}
		for i, g := range genes {
			src[acc][g] = raw[i][j]
		}
	}

	return genes, entities, raw, src
}

// mustFixture normalizes the fixture or fails the test.
func mustFixture(t *testing.T, opts ...matrix.Option) (*matrix.Matrix, mapSource) {
	t.Helper()
	genes, entities, raw, src := fixture()
	m, err := matrix.Normalize(genes, entities, raw, src, opts...)
	require.NoError(t, err)

	return m, src
}

// rowsByGene maps every gene label to its row values.
func rowsByGene(t *testing.T, m *matrix.Matrix) map[string][]float64 {
	t.Helper()
	out := make(map[string][]float64, m.Rows())
	for i, g := range m.Genes() {
		row, err := m.Row(i)
		require.NoError(t, err)
		out[g] = row
	}

	return out
}
