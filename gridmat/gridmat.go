// SPDX-License-Identifier: MIT

// Package gridmat bridges float64 grids and gonum's mat package.
//
// What:
//
//   - View wraps a *grid.Grid[float64, S] as a read-only mat.Matrix without
//     copying, so gonum routines (mat.Equal, mat.Trace, mat.Formatted, ...)
//     can consume a grid directly.
//   - Dense copies a grid into a new *mat.Dense.
//   - FromMatrix copies any mat.Matrix of matching shape into a new grid.
//
// Errors:
//
//   - ErrZeroShape: gonum cannot represent matrices with a zero dimension.
//   - ErrShapeMismatch: source matrix dims differ from the grid shape.
package gridmat

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/grid2d/grid"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrZeroShape is returned when a grid with R==0 or C==0 must become a
	// gonum Dense (gonum panics on zero-length matrices).
	ErrZeroShape = errors.New("gridmat: zero-sized grid has no gonum representation")

	// ErrShapeMismatch is returned when a mat.Matrix does not have the grid's R×C dims.
	ErrShapeMismatch = errors.New("gridmat: matrix dims differ from grid shape")
)

// Matrix is a zero-copy mat.Matrix view over a float64 grid.
// Reads reflect later writes to the grid; the view never writes.
type Matrix[S grid.Shape] struct {
	g *grid.Grid[float64, S]
}

// Compile-time assertion.
var _ mat.Matrix = Matrix[square2]{}

type square2 struct{}

func (square2) Dims() (int, int) { return 2, 2 }

// View returns a mat.Matrix backed by g.
func View[S grid.Shape](g *grid.Grid[float64, S]) Matrix[S] { return Matrix[S]{g: g} }

// Dims implements mat.Matrix.
func (m Matrix[S]) Dims() (r, c int) { return m.g.Shape() }

// At implements mat.Matrix. Like gonum's own types it panics on an
// out-of-range index (mat.ErrRowAccess / mat.ErrColAccess).
func (m Matrix[S]) At(i, j int) float64 {
	r, c := m.g.Shape()
	if i < 0 || i >= r {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= c {
		panic(mat.ErrColAccess)
	}

	return m.g.Row(i).Get(j)
}

// T implements mat.Matrix with an implicit transpose.
func (m Matrix[S]) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// Dense copies g into a new gonum Dense.
// Complexity: O(R*C).
func Dense[S grid.Shape](g *grid.Grid[float64, S]) (*mat.Dense, error) {
	r, c := g.Shape()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("gridmat.Dense(%dx%d): %w", r, c, ErrZeroShape)
	}
	buf := make([]float64, g.Len())
	copy(buf, g.Data())

	return mat.NewDense(r, c, buf), nil
}

// FromMatrix copies src into a new grid of shape S.
// Complexity: O(R*C).
func FromMatrix[S grid.Shape](src mat.Matrix) (*grid.Grid[float64, S], error) {
	g := grid.New[float64, S]()
	r, c := g.Shape()
	sr, sc := src.Dims()
	if sr != r || sc != c {
		return nil, fmt.Errorf("gridmat.FromMatrix(%dx%d into %dx%d): %w", sr, sc, r, c, ErrShapeMismatch)
	}

	var i, j int
	for i = 0; i < r; i++ {
		row := g.Row(i)
		for j = 0; j < c; j++ {
			row.Set(j, src.At(i, j))
		}
	}

	return g, nil
}
