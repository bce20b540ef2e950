// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand/v2"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/katalvlaran/genomerf/matrix"
)

func TestDerivedMatrices(t *testing.T) {
	Convey("Given a normalized 3×3 expression matrix", t, func() {
		genes, entities, raw, src := fixture()
		m, err := matrix.Normalize(genes, entities, raw, src)
		So(err, ShouldBeNil)
		before := m.Values()

		Convey("When it is shuffled many times", func() {
			rng := rand.New(rand.NewPCG(1, 2))
			seen := map[string]bool{}
			pairsKept, columnsKept := true, true
			for k := 0; k < 50; k++ {
				s, err := m.Shuffled(matrix.WithRand(rng))
				So(err, ShouldBeNil)
				for i, g := range s.Genes() {
					row, _ := s.Row(i)
					pairsKept = pairsKept && ShouldResemble(row, before[m.RowOfGene(g)]) == ""
				}
				columnsKept = columnsKept && ShouldResemble(s.Entities(), entities) == ""
				seen[s.Genes()[0]] = true
			}

			Convey("every gene keeps its own row", func() {
				So(pairsKept, ShouldBeTrue)
			})
			Convey("columns are untouched", func() {
				So(columnsKept, ShouldBeTrue)
			})
			Convey("more than one gene reaches the first row", func() {
				So(len(seen), ShouldBeGreaterThan, 1)
			})
		})

		Convey("When a sub-range is extracted", func() {
			sub, err := m.SubMatrix(1, 3, 0, 2)
			So(err, ShouldBeNil)

			Convey("the receiver is unchanged", func() {
				So(m.Values(), ShouldResemble, before)
			})
			Convey("shape and labels follow the ranges", func() {
				So(sub.Rows(), ShouldEqual, 2)
				So(sub.Cols(), ShouldEqual, 2)
				So(sub.Genes(), ShouldResemble, []string{"B", "C"})
				So(sub.Entities(), ShouldResemble, []string{"s1", "s2"})
			})
		})
	})
}
