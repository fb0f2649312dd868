// SPDX-License-Identifier: MIT

package grid

// Cursor is implemented by Iterator and ConstIterator so that equality and
// distance work across the mutable and read-only variants.
// Only this package provides cursors.
type Cursor[T any] interface {
	// Pos returns the linear offset of the cursor within its storage.
	Pos() int

	readOnly() ConstIterator[T]
}

// Iterator is a mutable random-access cursor over a grid's row-major storage.
//   - Value/Ref/Set dereference the cursor; they panic at End, like a slice.
//   - Add returns a new cursor; Inc and PostInc move this one.
//   - Const narrows it to a ConstIterator. There is no way back.
type Iterator[T any] struct {
	data []T // storage the cursor was taken from
	pos  int // linear offset, 0..len(data)
}

// ConstIterator is a read-only random-access cursor. It is obtained from
// CBegin/CEnd or from Iterator.Const and cannot be turned into an Iterator:
// the two types have different underlying structs, so not even a type
// conversion exists.
type ConstIterator[T any] struct {
	it Iterator[T] // never exposed
}

// Compile-time assertions.
var (
	_ Cursor[int] = Iterator[int]{}
	_ Cursor[int] = ConstIterator[int]{}
)

// ---------- Iterator ----------

// Value returns the element under the cursor.
func (it Iterator[T]) Value() T { return it.data[it.pos] }

// Ref returns a pointer to the element under the cursor.
func (it Iterator[T]) Ref() *T { return &it.data[it.pos] }

// Set writes v under the cursor.
func (it Iterator[T]) Set(v T) { it.data[it.pos] = v }

// Inc advances the cursor by one and returns it (pre-increment).
func (it *Iterator[T]) Inc() *Iterator[T] {
	it.pos++

	return it
}

// PostInc advances the cursor by one and returns its previous position.
func (it *Iterator[T]) PostInc() Iterator[T] {
	old := *it
	it.pos++

	return old
}

// Add returns a new cursor n slots away (n may be negative).
func (it Iterator[T]) Add(n int) Iterator[T] { return Iterator[T]{data: it.data, pos: it.pos + n} }

// Sub returns the distance it - o. Both cursors must come from the same grid.
func (it Iterator[T]) Sub(o Cursor[T]) int { return it.pos - o.Pos() }

// Equal reports whether both cursors address the same slot of the same storage.
func (it Iterator[T]) Equal(o Cursor[T]) bool { return it.readOnly().equal(o.readOnly()) }

// Pos returns the linear offset of the cursor.
func (it Iterator[T]) Pos() int { return it.pos }

// Const narrows the cursor to a read-only one at the same position.
func (it Iterator[T]) Const() ConstIterator[T] { return it.readOnly() }

func (it Iterator[T]) readOnly() ConstIterator[T] { return ConstIterator[T]{it: it} }

// ---------- ConstIterator ----------

// Value returns the element under the cursor.
func (c ConstIterator[T]) Value() T { return c.it.Value() }

// Inc advances the cursor by one and returns it (pre-increment).
func (c *ConstIterator[T]) Inc() *ConstIterator[T] {
	c.it.pos++

	return c
}

// PostInc advances the cursor by one and returns its previous position.
func (c *ConstIterator[T]) PostInc() ConstIterator[T] {
	old := *c
	c.it.pos++

	return old
}

// Add returns a new cursor n slots away (n may be negative).
func (c ConstIterator[T]) Add(n int) ConstIterator[T] { return ConstIterator[T]{it: c.it.Add(n)} }

// Sub returns the distance c - o. Both cursors must come from the same grid.
func (c ConstIterator[T]) Sub(o Cursor[T]) int { return c.it.pos - o.Pos() }

// Equal reports whether both cursors address the same slot of the same storage.
func (c ConstIterator[T]) Equal(o Cursor[T]) bool { return c.equal(o.readOnly()) }

// Pos returns the linear offset of the cursor.
func (c ConstIterator[T]) Pos() int { return c.it.pos }

func (c ConstIterator[T]) readOnly() ConstIterator[T] { return c }

func (c ConstIterator[T]) equal(o ConstIterator[T]) bool {
	return c.it.pos == o.it.pos && sameStorage(c.it.data, o.it.data)
}

// sameStorage reports whether a and b share a backing array start.
// Zero-capacity slices have no address to compare and only match each other.
func sameStorage[T any](a, b []T) bool {
	if cap(a) == 0 || cap(b) == 0 {
		return cap(a) == cap(b)
	}

	return &a[:1][0] == &b[:1][0]
}
