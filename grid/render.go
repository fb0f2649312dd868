// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"io"
	"strings"
)

// Compile-time assertions for io.WriterTo & fmt.Stringer conformance.
var (
	_ io.WriterTo  = (*Grid[int, shape0x0])(nil)
	_ fmt.Stringer = (*Grid[int, shape0x0])(nil)
)

type shape0x0 struct{}

func (shape0x0) Dims() (rows, cols int) { return 0, 0 }

// WriteTo writes the grid in its canonical text form:
// elements of a row separated by one space, rows separated by '\n',
// no trailing space and no trailing newline.
//
//	1 2
//	3 4
//
// Complexity: O(R*C).
func (g *Grid[T, S]) WriteTo(w io.Writer) (int64, error) {
	return g.Render(w)
}

// String returns the canonical text form written by WriteTo.
func (g *Grid[T, S]) String() string {
	var b strings.Builder
	_, _ = g.Render(&b) // strings.Builder never fails

	return b.String()
}

// Render writes the grid using opts over the canonical defaults.
// MAIN DESCRIPTION:
//   - Row-major text dump with configurable separators and element verb.
//
// Implementation:
//   - Stage 1: resolve options.
//   - Stage 2: format rows into a builder, separators only between items.
//   - Stage 3: single write to w.
//
// Behavior highlights:
//   - w sees one Write call; a writer error leaves nothing half-rendered on
//     our side.
//   - Idempotent: an unmodified grid always renders identically.
//   - An R×0 grid renders R-1 row separators; a 0×C grid renders nothing.
//
// Returns:
//   - bytes written and the writer's error, if any.
//
// Complexity:
//   - Time O(R*C), Space O(R*C).
func (g *Grid[T, S]) Render(w io.Writer, opts ...RenderOption) (int64, error) {
	o := gatherRenderOptions(opts...)
	rows, cols := dimsOf[S]()

	var b strings.Builder
	var i, j, base int
	for i = 0; i < rows; i++ { // iterate rows deterministically
		base = i * cols
		for j = 0; j < cols; j++ {
			fmt.Fprintf(&b, o.format, g.data[base+j])
			if j+1 != cols {
				b.WriteString(o.colSep)
			}
		}
		if i+1 != rows {
			b.WriteString(o.rowSep)
		}
	}

	n, err := io.WriteString(w, b.String())

	return int64(n), err
}
