// Package grid provides Grid, a fixed-shape two-dimensional container.
//
// What:
//
//   - Grid[T, S] owns R×C elements of T in one contiguous row-major buffer;
//     element (r,c) lives at offset r*C + c.
//   - R and C are fixed by the shape type S (see Shape), so two grids of
//     different shape are different Go types.
//   - Checked access (At, Ref, Set), unchecked row access (Row), linear
//     cursors (Begin/End, CBegin/CEnd), range iterators (Values, All),
//     Fill, O(1) Swap, Empty/Size queries and text rendering.
//
// Why:
//
//   - Game boards, lookup tables and small fixed matrices where the shape is
//     part of the program, not the data.
//
// Complexity:
//
//   - At/Ref/Set/Row/Swap: O(1).
//   - New/NewFilled/FromValues/Fill/Clone/rendering: O(R×C).
//
// Errors:
//
//   - ErrOutOfRange: kind matched by ErrIndexOutOfRange (At/Ref/Set) and
//     ErrDimensionOutOfRange (Size).
//   - ErrSizeMismatch: kind matched by *SizeMismatchError (FromValues).
//
// Emptiness:
//
//   - Empty is true only for a 0×0 shape. A 0×C or R×0 grid holds no
//     elements yet reports Empty() == false.
//
// Concurrency:
//
//   - No internal locking. Concurrent readers are fine; writers need
//     external synchronization.
package grid
