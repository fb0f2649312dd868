// SPDX-License-Identifier: MIT
package grid_test

// Shapes used across the grid tests.
type (
	s0x0  struct{}
	s0x10 struct{}
	s1x1  struct{}
	s2x2  struct{}
	s2x3  struct{}
	s3x1  struct{}
	s3x2  struct{}
	s3x3  struct{}
	s4x4  struct{}
	s5x0  struct{}
	s5x23 struct{}
	sNeg  struct{}
)

func (s0x0) Dims() (int, int)  { return 0, 0 }
func (s0x10) Dims() (int, int) { return 0, 10 }
func (s1x1) Dims() (int, int)  { return 1, 1 }
func (s2x2) Dims() (int, int)  { return 2, 2 }
func (s2x3) Dims() (int, int)  { return 2, 3 }
func (s3x1) Dims() (int, int)  { return 3, 1 }
func (s3x2) Dims() (int, int)  { return 3, 2 }
func (s3x3) Dims() (int, int)  { return 3, 3 }
func (s4x4) Dims() (int, int)  { return 4, 4 }
func (s5x0) Dims() (int, int)  { return 5, 0 }
func (s5x23) Dims() (int, int) { return 5, 23 }
func (sNeg) Dims() (int, int)  { return -1, 2 }
