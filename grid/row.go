// SPDX-License-Identifier: MIT

package grid

// RowView is an ephemeral, non-owning handle on one row of a grid.
// It exists for chained access, g.Row(r).Get(c), and should not be kept
// beyond the expression that produced it.
//
// No bounds checking happens at this layer: a column >= C reaches into the
// following row, and an offset past the storage panics in the Go runtime.
// Use Grid.At/Ref/Set for checked access.
type RowView[T any] struct {
	data []T // borrowed grid storage
	base int // offset of column 0 of the row
}

// Get returns the element at column c.
func (v RowView[T]) Get(c int) T { return v.data[v.base+c] }

// Ref returns a pointer to the element at column c.
func (v RowView[T]) Ref(c int) *T { return &v.data[v.base+c] }

// Set writes x at column c.
func (v RowView[T]) Set(c int, x T) { v.data[v.base+c] = x }
