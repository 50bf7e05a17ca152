package smoother

import "math"

// Cell holds one byte-range value. Cells carry no identity beyond their grid
// position and compare with ==.
type Cell struct {
	value uint8
}

// NewCell returns a Cell holding value.
func NewCell(value uint8) Cell { return Cell{value: value} }

// Value returns the cell's state.
func (c Cell) Value() uint8 { return c.value }

// Evolve returns the cell's next state: one step toward the rounded weighted
// average of its neighbours, cardinal neighbours counting twice.
//
// At least one neighbour must be supplied; Evolve panics otherwise.
func (c Cell) Evolve(cardinal, diagonal []Cell) Cell {
	target := weightedTarget(cardinal, diagonal)
	return Cell{value: stepToward(c.value, target)}
}

func weightedTarget(cardinal, diagonal []Cell) float64 {
	weight := 2*len(cardinal) + len(diagonal)
	if weight == 0 {
		panic("smoother: evolve called without neighbours")
	}
	sum := 2*sumOf(cardinal) + sumOf(diagonal)
	return math.Round(float64(sum) / float64(weight))
}

func sumOf(cells []Cell) uint32 {
	var s uint32
	for _, c := range cells {
		s += uint32(c.value)
	}
	return s
}

// stepToward moves v by one unit toward target, saturating at the byte range.
func stepToward(v uint8, target float64) uint8 {
	cur := float64(v)
	switch {
	case target > cur && v < math.MaxUint8:
		return v + 1
	case target < cur && v > 0:
		return v - 1
	}
	return v
}
