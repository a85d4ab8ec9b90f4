package grid

// Grid is a rectangular cave buffer: width*height cells plus one '\n' per
// row and a single trailing NUL, kept contiguous so the whole thing can be
// emitted in one write. It is a small value type; Clone gives an
// independent copy.
type Grid struct {
	width, height, length int
	buf                   []byte
}

// New allocates an empty (all-Empty) grid of the given dimensions, with
// row terminators and trailing NUL already in place.
//
// Length follows the distilled layout exactly: (width+1)*height + 1.
func New(width, height int) Grid {
	length := (width+1)*height + 1
	buf := make([]byte, length)
	for y := 0; y < height; y++ {
		rowStart := y * (width + 1)
		for x := 0; x < width; x++ {
			buf[rowStart+x] = byte(Empty)
		}
		buf[rowStart+width] = '\n'
	}
	if length > 0 {
		buf[length-1] = 0
	}
	return Grid{width: width, height: height, length: length, buf: buf}
}

// Width returns the grid's column count.
func (g Grid) Width() int { return g.width }

// Height returns the grid's row count.
func (g Grid) Height() int { return g.height }

// Length returns the buffer's byte length, including row terminators and
// the trailing NUL.
func (g Grid) Length() int { return g.length }

// offset converts a 1-based (x, y) into a buffer index. The caller must
// have already verified InBounds(x, y).
func (g Grid) offset(x, y int) int {
	return (g.height-y)*(g.width+1) + (x - 1)
}

// InBounds reports whether (x, y) lies within [1..width] x [1..height].
func (g Grid) InBounds(x, y int) bool {
	return x >= 1 && x <= g.width && y >= 1 && y <= g.height
}

// Get returns the cell at (x, y), or Wall for any coordinate outside the
// grid. Get is total: it never panics on out-of-range input.
func (g Grid) Get(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Wall
	}
	return Cell(g.buf[g.offset(x, y)])
}

// Set writes c at (x, y). The caller must ensure (x, y) is in bounds; Set
// does not check, mirroring the buffer-offset writer this module's
// reference C implementation uses (put/unmake_point).
func (g Grid) Set(x, y int, c Cell) {
	g.buf[g.offset(x, y)] = byte(c)
}

// Clone returns an independent copy of g; mutating the clone never affects
// the original.
func (g Grid) Clone() Grid {
	buf := make([]byte, len(g.buf))
	copy(buf, g.buf)
	return Grid{width: g.width, height: g.height, length: g.length, buf: buf}
}

// Bytes returns the raw buffer, row terminators and trailing NUL included,
// verbatim and in source order. Callers must not mutate the result.
func (g Grid) Bytes() []byte {
	return g.buf
}

// String returns the buffer's contents as-is; it already contains '\n'
// between rows, so printing it reproduces the original map layout.
func (g Grid) String() string {
	return string(g.buf)
}
