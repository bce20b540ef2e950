// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/genomerf/matrix"
)

// ExampleMatrix_SubMatrix slices the first gene over the first two samples.
func ExampleMatrix_SubMatrix() {
	src := mapSource{
		"s1": {"A": 2, "B": 1},
		"s2": {"A": 4, "B": 1},
		"s3": {"A": 6, "B": 3},
	}
	m, _ := matrix.Normalize(
		[]string{"A", "B"},
		[]string{"s1", "s2", "s3"},
		[][]float64{{2, 4, 6}, {1, 1, 3}},
		src,
	)

	sub, _ := m.SubMatrix(0, 1, 0, 2)
	fmt.Println(sub.Genes(), sub.Entities(), sub.Values())

	_, err := m.SubMatrix(0, 3, 0, 2)
	fmt.Println(err)

	// Output:
	// [A] [s1 s2] [[0 0.5]]
	// SubMatrix: vt-1=2 not in [0,2): matrix: index out of range
}
