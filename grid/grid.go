// SPDX-License-Identifier: MIT

// Package grid - fixed-shape row-major storage & safe accessors.
//
// Purpose:
//   - Own exactly one contiguous buffer of R*C elements, offset = r*C + c.
//   - Fix R and C at compile time through the Shape type parameter.
//   - Offer checked access (At/Ref/Set) returning errors, and unchecked
//     access (Row) for hot paths.
//
// Complexity quicksheet:
//   - New/NewFilled/FromValues/Clone/Fill: O(R*C); At/Ref/Set/Row/Swap: O(1).

package grid

import (
	"fmt"
	"iter"
	"slices"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxRef = "Ref" // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// Grid is a fixed R×C container of T in row-major order.
//   - R and C come from S.Dims() and never change.
//   - data holds exactly R*C elements; element (r,c) sits at r*C + c.
//
// The grid exclusively owns data. It performs no synchronization: concurrent
// reads are safe, concurrent writes are a data race.
//
// The zero Grid has no storage; build grids with New, NewFilled or FromValues.
type Grid[T any, S Shape] struct {
	data []T // contiguous row-major storage (len == R*C)
}

// New creates a grid whose R*C elements are T's zero value.
// Complexity: O(R*C) time and memory.
func New[T any, S Shape]() *Grid[T, S] {
	r, c := dimsOf[S]()

	return &Grid[T, S]{data: make([]T, r*c)}
}

// NewFilled creates a grid with every element set to v.
// Complexity: O(R*C) time and memory.
func NewFilled[T any, S Shape](v T) *Grid[T, S] {
	g := New[T, S]()
	g.Fill(v)

	return g
}

// FromValues creates a grid from values given in row-major order.
// MAIN DESCRIPTION:
//   - Bounded list construction: up to R*C values, the tail is zero-filled.
//
// Implementation:
//   - Stage 1: reject len(vals) > R*C with *SizeMismatchError.
//   - Stage 2: allocate a zero-filled buffer.
//   - Stage 3: copy vals into the head of the buffer.
//
// Behavior highlights:
//   - On failure no grid is returned; nothing is allocated.
//   - The tail is always T's zero value, independent of any fill value.
//
// Errors:
//   - *SizeMismatchError (matches ErrSizeMismatch) carrying the supplied
//     count and the capacity.
//
// Complexity:
//   - Time O(R*C), Space O(R*C).
func FromValues[T any, S Shape](vals ...T) (*Grid[T, S], error) {
	r, c := dimsOf[S]()
	if capacity := r * c; len(vals) > capacity {
		return nil, &SizeMismatchError{Supplied: len(vals), Capacity: capacity}
	}

	g := &Grid[T, S]{data: make([]T, r*c)}
	copy(g.data, vals) // remainder stays zero

	return g, nil
}

// MustFromValues is like FromValues but panics on error.
// Intended for fixtures and package-level variables.
func MustFromValues[T any, S Shape](vals ...T) *Grid[T, S] {
	g, err := FromValues[T, S](vals...)
	if err != nil {
		panic(err)
	}

	return g
}

// Rows returns R. Complexity: O(1).
func (g *Grid[T, S]) Rows() int {
	r, _ := dimsOf[S]()

	return r
}

// Cols returns C. Complexity: O(1).
func (g *Grid[T, S]) Cols() int {
	_, c := dimsOf[S]()

	return c
}

// Shape packs Rows() and Cols() into a single call.
func (g *Grid[T, S]) Shape() (rows, cols int) { return dimsOf[S]() }

// Len returns the number of stored elements, R*C.
func (g *Grid[T, S]) Len() int { return len(g.data) }

// Empty reports whether the grid is degenerate: both R and C are zero.
// A grid with exactly one zero dimension holds no elements but is NOT empty.
func (g *Grid[T, S]) Empty() bool {
	r, c := dimsOf[S]()

	return r == 0 && c == 0
}

// Size returns the extent along a dimension: DimRows yields R, DimCols yields C.
// Any other selector yields ErrDimensionOutOfRange.
// Complexity: O(1).
func (g *Grid[T, S]) Size(dim int) (int, error) {
	r, c := dimsOf[S]()
	switch dim {
	case DimRows:
		return r, nil
	case DimCols:
		return c, nil
	default:
		return 0, fmt.Errorf("Grid.Size(%d): %w", dim, ErrDimensionOutOfRange)
	}
}

// indexOf computes the row-major offset or returns ErrIndexOutOfRange.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) against R and C, then compute row*C + col.
//
// Behavior highlights:
//   - Checks each coordinate separately: (0, C) is out of range even though
//     offset C is a valid slot of row 1.
//   - Returns the bare sentinel; callers wrap with method context.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Grid[T, S]) indexOf(row, col int) (int, error) {
	r, c := dimsOf[S]()
	if row < 0 || row >= r {
		return 0, ErrIndexOutOfRange
	}
	if col < 0 || col >= c {
		return 0, ErrIndexOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*c + col, nil
}

// At returns the element at (row, col) or ErrIndexOutOfRange.
// Complexity: O(1).
func (g *Grid[T, S]) At(row, col int) (T, error) {
	off, err := g.indexOf(row, col)
	if err != nil {
		var zero T

		return zero, gridErrorf(ctxAt, row, col, err)
	}

	return g.data[off], nil
}

// Ref returns a pointer to the element at (row, col) or ErrIndexOutOfRange.
// The pointer addresses the grid's storage: writes through it are visible to
// At, Row and cursors, until the grid is swapped.
// Complexity: O(1).
func (g *Grid[T, S]) Ref(row, col int) (*T, error) {
	off, err := g.indexOf(row, col)
	if err != nil {
		return nil, gridErrorf(ctxRef, row, col, err)
	}

	return &g.data[off], nil
}

// Set stores v at (row, col) or returns ErrIndexOutOfRange, leaving the grid
// unchanged.
// Complexity: O(1).
func (g *Grid[T, S]) Set(row, col int, v T) error {
	off, err := g.indexOf(row, col)
	if err != nil {
		return gridErrorf(ctxSet, row, col, err)
	}
	g.data[off] = v

	return nil
}

// Row returns an unchecked view of row r for g.Row(r).Get(c) style access.
// Neither r nor the later column is validated here.
func (g *Grid[T, S]) Row(r int) RowView[T] {
	_, c := dimsOf[S]()

	return RowView[T]{data: g.data, base: r * c}
}

// Fill overwrites every element with v.
// Complexity: O(R*C).
func (g *Grid[T, S]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Swap exchanges the storage of g and other in O(1); no element is copied.
// Both grids stay valid. Cursors and row views taken before the swap keep
// addressing the storage they were taken from, which now belongs to the
// other grid.
func (g *Grid[T, S]) Swap(other *Grid[T, S]) {
	g.data, other.data = other.data, g.data
}

// Data returns the backing slice (row-major, len R*C). It aliases the grid.
func (g *Grid[T, S]) Data() []T { return g.data }

// Clone returns a deep copy with independent storage.
// Complexity: O(R*C) time and memory.
func (g *Grid[T, S]) Clone() *Grid[T, S] {
	cp := make([]T, len(g.data))
	copy(cp, g.data)

	return &Grid[T, S]{data: cp}
}

// Begin returns a mutable cursor at the first element.
func (g *Grid[T, S]) Begin() Iterator[T] { return Iterator[T]{data: g.data} }

// End returns a mutable cursor one past the last element.
func (g *Grid[T, S]) End() Iterator[T] { return Iterator[T]{data: g.data, pos: len(g.data)} }

// CBegin returns a read-only cursor at the first element.
func (g *Grid[T, S]) CBegin() ConstIterator[T] { return g.Begin().Const() }

// CEnd returns a read-only cursor one past the last element.
func (g *Grid[T, S]) CEnd() ConstIterator[T] { return g.End().Const() }

// Values yields every element in row-major order.
func (g *Grid[T, S]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.data {
			if !yield(v) {
				return
			}
		}
	}
}

// All yields (offset, element) pairs in row-major order.
// The row and column of an offset are offset/C and offset%C.
func (g *Grid[T, S]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range g.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Equal reports whether a and b hold the same elements in the same order.
// Complexity: O(R*C).
func Equal[T comparable, S Shape](a, b *Grid[T, S]) bool {
	return slices.Equal(a.data, b.data)
}
