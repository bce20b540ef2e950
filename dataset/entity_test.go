// SPDX-License-Identifier: MIT

package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genomerf/dataset"
)

func TestVerdict(t *testing.T) {
	t.Parallel()

	require.True(t, dataset.Nevus.Excluded())
	require.False(t, dataset.Normal.Excluded())
	require.False(t, dataset.Melanoma.Excluded())
	require.Equal(t, "melanoma", dataset.Melanoma.String())
	require.Equal(t, "verdict(7)", dataset.Verdict(7).String())

	v, err := dataset.ParseVerdict("  Nevus ")
	require.NoError(t, err)
	require.Equal(t, dataset.Nevus, v)

	_, err = dataset.ParseVerdict("benign")
	require.ErrorIs(t, err, dataset.ErrUnknownVerdict)
}

func TestEntity_GenesAndExpression(t *testing.T) {
	t.Parallel()

	e := dataset.NewEntity("GSM1", dataset.Normal, map[string]float64{"b": 2, "a": 1, "c": 3})
	require.Equal(t, []string{"a", "b", "c"}, e.Genes())

	v, ok := e.ExpressionByGene("b")
	require.True(t, ok)
	require.Equal(t, 2.0, v)
	_, ok = e.ExpressionByGene("z")
	require.False(t, ok)

	empty := dataset.NewEntity("GSM2", dataset.Normal, nil)
	require.NotNil(t, empty.Expression)
	require.Empty(t, empty.Genes())
}
