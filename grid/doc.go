// Package grid provides the rectangular cell buffer shared by every cave
// snapshot: the cell alphabet, 1-based coordinate conventions, and a
// bounds-checked accessor whose out-of-range reads return a wall.
//
// What:
//
//   - Grid wraps a flat byte buffer that keeps its '\n' row terminators and
//     trailing NUL in place, so it can be printed verbatim by a caller.
//   - Cell enumerates the one-byte cave alphabet (robot, rock, lambda, ...).
//   - Coord is a simple (X, Y) pair used as a map key throughout the module.
//
// Why:
//
//   - Every other package (parser, world, move, tick, costtable, gridview)
//     builds on this one buffer layout; keeping it in its own package with
//     no dependency on world state keeps the coordinate math in one place.
//
// Coordinates: 1-based, X grows rightward, Y grows upward. Row 1 is the
// bottom row; the buffer stores rows top-to-bottom, so
//
//	offset = (height-y)*(width+1) + (x-1)
//
// Any (x, y) outside [1..width] x [1..height] reads as Wall.
package grid
