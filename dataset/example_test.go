// SPDX-License-Identifier: MIT

package dataset_test

import (
	"fmt"

	"github.com/katalvlaran/genomerf/dataset"
)

// ExampleDataset_NormalizedMatrix builds a matrix from three samples,
// slices off one gene and maps a normalized value back to raw scale.
func ExampleDataset_NormalizedMatrix() {
	d := dataset.New(dataset.WithTitle("GSE3189"))
	d.AddEntity(dataset.NewEntity("GSM1", dataset.Melanoma, map[string]float64{"A": 2, "B": 7}))
	d.AddEntity(dataset.NewEntity("GSM2", dataset.Normal, map[string]float64{"A": 4, "B": 1}))
	d.AddEntity(dataset.NewEntity("GSM3", dataset.Melanoma, map[string]float64{"A": 6, "B": 4}))
	d.AddEntity(dataset.NewEntity("GSM4", dataset.Nevus, map[string]float64{"A": 9, "B": 9}))

	m, err := d.NormalizedMatrix()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m.Genes(), m.Entities())
	fmt.Println(m.Values())

	sub, _ := m.SubMatrix(0, 1, 0, 2)
	fmt.Println(sub.Genes(), sub.Entities(), sub.Values())

	raw, _ := m.Denormalize("A", 0.5)
	fmt.Println(raw)

	// Output:
	// [A B] [GSM1 GSM2 GSM3]
	// [[0 0.5 1] [1 0 0.5]]
	// [A] [GSM1 GSM2] [[0 0.5]]
	// 4
}
