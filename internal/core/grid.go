package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// The backing array is allocated once; Load and Cells never replace it.
type ByteGrid struct {
	W, H int
	data []uint8
}

var (
	cardinalOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	diagonalOffsets = [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
)

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Coords is the inverse of Index.
func (g *ByteGrid) Coords(i int) (int, int) { return i % g.W, i / g.W }

// InBounds reports whether (x, y) lies on the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Load copies src into the existing storage. It reports false when the
// length does not match the grid area.
func (g *ByteGrid) Load(src []uint8) bool {
	if len(src) != len(g.data) {
		return false
	}
	copy(g.data, src)
	return true
}

// CardinalIndices appends to dst the indices of the cells directly above,
// below, left and right of (x, y) that exist on the grid. Edges are not
// wrapped.
func (g *ByteGrid) CardinalIndices(dst []int, x, y int) []int {
	return g.appendOffsets(dst, x, y, &cardinalOffsets)
}

// DiagonalIndices appends to dst the indices of the corner-adjacent cells of
// (x, y) that exist on the grid.
func (g *ByteGrid) DiagonalIndices(dst []int, x, y int) []int {
	return g.appendOffsets(dst, x, y, &diagonalOffsets)
}

func (g *ByteGrid) appendOffsets(dst []int, x, y int, offsets *[4][2]int) []int {
	for _, o := range offsets {
		nx, ny := x+o[0], y+o[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		dst = append(dst, g.Index(nx, ny))
	}
	return dst
}
