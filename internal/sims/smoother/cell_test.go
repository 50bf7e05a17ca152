package smoother

import (
	"math"
	"testing"
)

func cells(values ...uint8) []Cell {
	out := make([]Cell, len(values))
	for i, v := range values {
		out[i] = NewCell(v)
	}
	return out
}

func TestCellEvolvesUpWhenAverageIsHigher(t *testing.T) {
	// weighted average 5.5 rounds up to 6
	got := NewCell(5).Evolve(cells(6, 5), cells(6, 5))
	if got.Value() != 6 {
		t.Fatalf("expected 6, got %d", got.Value())
	}
}

func TestCellEvolvesDownWhenAverageIsLower(t *testing.T) {
	// weighted average 31/7 ~ 4.43
	got := NewCell(5).Evolve(cells(5, 4), cells(5, 4, 4))
	if got.Value() != 4 {
		t.Fatalf("expected 4, got %d", got.Value())
	}
}

func TestCardinalNeighboursWeighDouble(t *testing.T) {
	// plain mean is 4.4, weighted mean 39/7 ~ 5.57
	got := NewCell(5).Evolve(cells(9, 8), cells(2, 2, 1))
	if got.Value() != 6 {
		t.Fatalf("expected 6, got %d", got.Value())
	}
}

func TestCellMovesOneStepAtATime(t *testing.T) {
	got := NewCell(0).Evolve(cells(200, 200, 200, 200), cells(200, 200, 200, 200))
	if got.Value() != 1 {
		t.Fatalf("expected a single increment, got %d", got.Value())
	}
	got = NewCell(200).Evolve(cells(0, 0), nil)
	if got.Value() != 199 {
		t.Fatalf("expected a single decrement, got %d", got.Value())
	}
}

func TestCellUnchangedAtAverage(t *testing.T) {
	c := NewCell(7)
	if got := c.Evolve(cells(7, 7, 7), cells(6, 8)); got != c {
		t.Fatalf("expected %v to stay put, got %v", c, got)
	}
}

func TestCardinalOnlyNeighbours(t *testing.T) {
	got := NewCell(3).Evolve(cells(9), nil)
	if got.Value() != 4 {
		t.Fatalf("expected 4, got %d", got.Value())
	}
}

func TestSumsDoNotWrapAtByteRange(t *testing.T) {
	// sums exceed 255 by far; a wrapping accumulator would pull the cell down
	got := NewCell(254).Evolve(cells(255, 255, 255, 255), cells(255, 255, 255, 255))
	if got.Value() != 255 {
		t.Fatalf("expected 255, got %d", got.Value())
	}
	got = NewCell(255).Evolve(cells(255, 255, 255, 255), cells(255, 255, 255, 255))
	if got.Value() != 255 {
		t.Fatalf("expected 255 to hold, got %d", got.Value())
	}
}

func TestStepTowardSaturates(t *testing.T) {
	if got := stepToward(math.MaxUint8, 300); got != math.MaxUint8 {
		t.Fatalf("expected saturation at 255, got %d", got)
	}
	if got := stepToward(0, -1); got != 0 {
		t.Fatalf("expected saturation at 0, got %d", got)
	}
}

func TestEvolveWithoutNeighboursPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty neighbour sets")
		}
	}()
	NewCell(1).Evolve(nil, nil)
}
