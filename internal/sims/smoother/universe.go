package smoother

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"cell-smoother/internal/core"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidDimensions reports a cell count that does not fit the requested
// grid shape.
var ErrInvalidDimensions = errors.New("smoother: invalid dimensions")

// Universe is a bounded (non-wrapping) grid of cells advanced one generation
// at a time. The storage returned by Bytes keeps its address for the
// lifetime of the Universe; Step copies each new generation into it.
type Universe struct {
	grid *core.ByteGrid
	next []uint8

	workers    int
	changed    int
	generation uint64
}

// New builds a width x height universe from row-major values.
func New(width, height int, values []uint8) (*Universe, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width*height < 2 {
		return nil, fmt.Errorf("%w: a 1x1 grid has no neighbours", ErrInvalidDimensions)
	}
	if len(values) != width*height {
		return nil, fmt.Errorf("%w: %d cells for a %dx%d grid", ErrInvalidDimensions, len(values), width, height)
	}
	u := &Universe{
		grid:    core.NewByteGrid(width, height),
		next:    make([]uint8, width*height),
		workers: 1,
	}
	u.grid.Load(values)
	return u, nil
}

// NewSquare builds a square universe whose side is derived from len(values),
// which must be a perfect square.
func NewSquare(values []uint8) (*Universe, error) {
	side := int(math.Sqrt(float64(len(values))))
	for side*side > len(values) {
		side--
	}
	for (side+1)*(side+1) <= len(values) {
		side++
	}
	if side*side != len(values) {
		return nil, fmt.Errorf("%w: %d cells is not a perfect square", ErrInvalidDimensions, len(values))
	}
	return New(side, side, values)
}

// FromCells builds a universe from Cell values.
func FromCells(width, height int, cells []Cell) (*Universe, error) {
	values := make([]uint8, len(cells))
	for i, c := range cells {
		values[i] = c.value
	}
	return New(width, height, values)
}

// Width returns the number of columns.
func (u *Universe) Width() int { return u.grid.W }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.grid.H }

// Dimensions returns width and height.
func (u *Universe) Dimensions() (int, int) { return u.grid.W, u.grid.H }

// Cells returns a copy of the current generation in row-major order.
func (u *Universe) Cells() []Cell {
	data := u.grid.Cells()
	out := make([]Cell, len(data))
	for i, v := range data {
		out[i] = Cell{value: v}
	}
	return out
}

// Bytes exposes the live storage without copying. Step overwrites the
// values but never reallocates the slice.
func (u *Universe) Bytes() []uint8 { return u.grid.Cells() }

// Generation returns the number of completed steps.
func (u *Universe) Generation() uint64 { return u.generation }

// Changed reports how many cells changed value during the last Step. Zero
// after a Step means the grid is at a fixed point.
func (u *Universe) Changed() int { return u.changed }

// Workers returns the number of row bands evaluated concurrently.
func (u *Universe) Workers() int { return u.workers }

// SetWorkers sets how many row bands Step evaluates concurrently. Values
// below one are treated as one.
func (u *Universe) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	u.workers = n
}

// Load overwrites every cell in place.
func (u *Universe) Load(values []uint8) error {
	if !u.grid.Load(values) {
		return fmt.Errorf("%w: %d cells for a %dx%d grid", ErrInvalidDimensions, len(values), u.grid.W, u.grid.H)
	}
	return nil
}

// Step advances every cell by one generation against the pre-step values.
func (u *Universe) Step() {
	bands := u.workers
	if bands > u.grid.H {
		bands = u.grid.H
	}
	if bands <= 1 {
		u.changed = u.evolveRows(0, u.grid.H)
	} else {
		u.changed = u.evolveParallel(bands)
	}
	copy(u.grid.Cells(), u.next)
	u.generation++
}

func (u *Universe) evolveParallel(bands int) int {
	counts := make([]int, bands)
	rows := u.grid.H
	var g errgroup.Group
	for b := 0; b < bands; b++ {
		start := b * rows / bands
		end := (b + 1) * rows / bands
		g.Go(func() error {
			counts[b] = u.evolveRows(start, end)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(fmt.Sprintf("smoother: step failed: %v", err))
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}

// evolveRows writes the next value of rows [y0, y1) into u.next and returns
// how many of them differ from the current generation.
func (u *Universe) evolveRows(y0, y1 int) int {
	data := u.grid.Cells()
	var (
		idx      [4]int
		cardinal [4]Cell
		diagonal [4]Cell
	)
	changed := 0
	for y := y0; y < y1; y++ {
		for x := 0; x < u.grid.W; x++ {
			card := gather(cardinal[:0], data, u.grid.CardinalIndices(idx[:0], x, y))
			diag := gather(diagonal[:0], data, u.grid.DiagonalIndices(idx[:0], x, y))
			i := u.grid.Index(x, y)
			next := Cell{value: data[i]}.Evolve(card, diag)
			u.next[i] = next.value
			if next.value != data[i] {
				changed++
			}
		}
	}
	return changed
}

func gather(dst []Cell, data []uint8, indices []int) []Cell {
	for _, i := range indices {
		dst = append(dst, Cell{value: data[i]})
	}
	return dst
}

// String renders the grid one row per line, e.g. "| 1| 3|".
func (u *Universe) String() string {
	var b strings.Builder
	data := u.grid.Cells()
	for y := 0; y < u.grid.H; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('|')
		for x := 0; x < u.grid.W; x++ {
			fmt.Fprintf(&b, "%2d|", data[u.grid.Index(x, y)])
		}
	}
	return b.String()
}
