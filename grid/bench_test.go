// SPDX-License-Identifier: MIT
package grid_test

import (
	"io"
	"testing"

	"github.com/katalvlaran/grid2d/grid"
)

type s64x64 struct{}

func (s64x64) Dims() (int, int) { return 64, 64 }

var sink int

func BenchmarkAt(b *testing.B) {
	g := grid.NewFilled[int, s64x64](1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, _ := g.At(i&63, (i>>6)&63)
		sink += v
	}
}

func BenchmarkRowGet(b *testing.B) {
	g := grid.NewFilled[int, s64x64](1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink += g.Row(i & 63).Get((i >> 6) & 63)
	}
}

func BenchmarkIterate(b *testing.B) {
	g := grid.NewFilled[int, s64x64](1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for it := g.CBegin(); !it.Equal(g.CEnd()); it.Inc() {
			sink += it.Value()
		}
	}
}

func BenchmarkFill(b *testing.B) {
	g := grid.New[int, s64x64]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Fill(i)
	}
}

func BenchmarkSwap(b *testing.B) {
	x := grid.New[int, s64x64]()
	y := grid.NewFilled[int, s64x64](1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Swap(y)
	}
}

func BenchmarkWriteTo(b *testing.B) {
	g := grid.NewFilled[int, s64x64](7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.WriteTo(io.Discard)
	}
}
