// Package grid2d is a small library of fixed-shape two-dimensional containers.
//
// What is in the box?
//
//	grid/    — Grid[T, S]: R×C elements in one row-major buffer, shape fixed by
//	           the type S; checked At/Ref/Set, unchecked Row, cursors, range
//	           iterators, Fill, O(1) Swap, Empty/Size, text rendering
//	gridmat/ — zero-copy gonum mat.Matrix view and copy helpers for float64 grids
//	examples/ — runnable tic-tac-toe board
//
// Quick example:
//
//	type Board struct{}
//
//	func (Board) Dims() (rows, cols int) { return 2, 2 }
//
//	g, _ := grid.FromValues[int, Board](1, 2, 3, 4)
//	fmt.Println(g) // 1 2
//	               // 3 4
//
//	go get github.com/katalvlaran/grid2d
package grid2d
