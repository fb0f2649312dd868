// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Every failure reported by this package matches one of the sentinels below
// via errors.Is. Unchecked accessors (RowView, cursors) never return errors;
// misuse there is a programmer error surfaced by the Go runtime.

package grid

import (
	"errors"
	"fmt"
)

// NOTE ON KINDS
// -------------
// There are exactly two failure kinds: out-of-range and size-mismatch.
// ErrIndexOutOfRange and ErrDimensionOutOfRange are distinct sentinels with
// distinct messages, yet both satisfy errors.Is(err, ErrOutOfRange).

var (
	// ErrOutOfRange is the out-of-range kind. Match against it when the
	// call site does not matter.
	ErrOutOfRange = errors.New("grid: out of range")

	// ErrIndexOutOfRange is returned by checked element access (At/Ref/Set)
	// when r >= R or c >= C (or either index is negative).
	ErrIndexOutOfRange error = &rangeError{msg: "grid: index out of range"}

	// ErrDimensionOutOfRange is returned by Size when the dimension selector
	// is neither DimRows nor DimCols.
	ErrDimensionOutOfRange error = &rangeError{msg: "grid: dimension selector out of range"}

	// ErrSizeMismatch is the size-mismatch kind. FromValues returns a
	// *SizeMismatchError matching it when more values than R*C are supplied.
	ErrSizeMismatch = errors.New("grid: size mismatch")
)

// rangeError is an out-of-range sentinel with its own message.
type rangeError struct{ msg string }

func (e *rangeError) Error() string { return e.msg }

// Is reports the out-of-range kind.
func (e *rangeError) Is(target error) bool { return target == ErrOutOfRange }

// SizeMismatchError reports an initializer list longer than the grid.
type SizeMismatchError struct {
	Supplied int // number of values passed to the constructor
	Capacity int // R*C
}

// Error implements error.
func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("grid: size of initializer list [%d] greater than size of grid [%d]", e.Supplied, e.Capacity)
}

// Is makes errors.Is(err, ErrSizeMismatch) hold.
func (e *SizeMismatchError) Is(target error) bool { return target == ErrSizeMismatch }

// gridErrorf wraps a sentinel with method context and callsite indices.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}
