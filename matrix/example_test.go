// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/denselab/densemat/matrix"
)

// ExampleFromRows builds a matrix from raw rectangular data and reads a cell.
func ExampleFromRows() {
	m, err := matrix.FromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	if err != nil {
		fmt.Println("construct:", err)
		return
	}
	v, _ := m.At(1, 0)
	fmt.Println(v)
	// Output:
	// 3
}

// ExampleDet computes the closed-form 2×2 determinant.
func ExampleDet() {
	m, _ := matrix.FromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	d, _ := matrix.Det(m)
	fmt.Println(d)
	// Output:
	// -2
}

// ExampleDense_AddScaledRow runs one Gaussian-elimination step in place.
func ExampleDense_AddScaledRow() {
	m, _ := matrix.FromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	// row0 += row1 * (-2)
	_ = m.AddScaledRow(0, 1, -2)
	fmt.Print(m)
	// Output:
	// [-5, -6]
	// [3, 4]
}

// ExampleRender prints the boxed human-readable grid.
func ExampleRender() {
	m, _ := matrix.FromRows([][]float64{
		{1, 2},
		{3, 44},
	})
	fmt.Print(matrix.Render(m))
	// Output:
	// +-------+
	// | 1  2  |
	// | 3  44 |
	// +-------+
}

// ExampleDense_Map derives a scaled copy without touching the receiver.
func ExampleDense_Map() {
	m, _ := matrix.FromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	doubled, _ := m.Map(func(i, j int, v float64) float64 { return 2 * v })
	fmt.Print(doubled)
	// Output:
	// [2, 4]
	// [6, 8]
}
