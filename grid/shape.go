// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Shape fixes the dimensions of a Grid at the type level.
//
// A shape is usually an empty struct whose Dims method returns constants:
//
//	type Board struct{}
//
//	func (Board) Dims() (rows, cols int) { return 3, 3 }
//
// Dims is always invoked on the zero value of the shape type, so it must not
// depend on any state. Grids with different shape types are different Go
// types; mixing them (e.g. in Swap) is rejected by the compiler.
type Shape interface {
	Dims() (rows, cols int)
}

// Dimension selectors accepted by Grid.Size.
const (
	DimRows = 1 // selects R
	DimCols = 2 // selects C
)

const panicNegativeShape = "grid: shape %T has negative dimensions %dx%d"

// dimsOf resolves R and C for the shape type S.
// Negative dimensions are a programmer error and panic.
// Complexity: O(1).
func dimsOf[S Shape]() (rows, cols int) {
	var s S
	rows, cols = s.Dims()
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf(panicNegativeShape, s, rows, cols))
	}

	return rows, cols
}
