package core

import (
	"slices"
	"testing"
)

func TestIndexCoordsRoundTrip(t *testing.T) {
	g := NewByteGrid(5, 3)
	for i := range g.Cells() {
		x, y := g.Coords(i)
		if got := g.Index(x, y); got != i {
			t.Fatalf("Index(Coords(%d)) = %d", i, got)
		}
		if x != i%5 || y != i/5 {
			t.Fatalf("Coords(%d) = (%d,%d)", i, x, y)
		}
	}
}

func TestNeighbourCountsShrinkAtEdges(t *testing.T) {
	g := NewByteGrid(4, 4)

	cases := []struct {
		name           string
		x, y           int
		cardinal, diag int
	}{
		{"corner", 0, 0, 2, 1},
		{"far corner", 3, 3, 2, 1},
		{"top edge", 1, 0, 3, 2},
		{"left edge", 0, 2, 3, 2},
		{"interior", 2, 1, 4, 4},
	}
	for _, tc := range cases {
		card := g.CardinalIndices(nil, tc.x, tc.y)
		diag := g.DiagonalIndices(nil, tc.x, tc.y)
		if len(card) != tc.cardinal || len(diag) != tc.diag {
			t.Fatalf("%s: got %d cardinal / %d diagonal, want %d / %d", tc.name, len(card), len(diag), tc.cardinal, tc.diag)
		}
	}
}

func TestNeighbourIndicesInterior(t *testing.T) {
	g := NewByteGrid(3, 3)

	card := g.CardinalIndices(nil, 1, 1)
	slices.Sort(card)
	if !slices.Equal(card, []int{1, 3, 5, 7}) {
		t.Fatalf("unexpected cardinal indices %v", card)
	}
	diag := g.DiagonalIndices(nil, 1, 1)
	slices.Sort(diag)
	if !slices.Equal(diag, []int{0, 2, 6, 8}) {
		t.Fatalf("unexpected diagonal indices %v", diag)
	}
}

func TestSingleRowHasNoDiagonals(t *testing.T) {
	g := NewByteGrid(4, 1)
	for x := 0; x < 4; x++ {
		if d := g.DiagonalIndices(nil, x, 0); len(d) != 0 {
			t.Fatalf("cell %d has diagonal neighbours %v", x, d)
		}
	}
	if c := g.CardinalIndices(nil, 0, 0); !slices.Equal(c, []int{1}) {
		t.Fatalf("unexpected cardinal indices %v", c)
	}
}

func TestLoadKeepsBackingArray(t *testing.T) {
	g := NewByteGrid(2, 2)
	before := &g.Cells()[0]

	if !g.Load([]uint8{4, 3, 2, 1}) {
		t.Fatal("Load rejected matching length")
	}
	if &g.Cells()[0] != before {
		t.Fatal("Load replaced the backing array")
	}
	if !slices.Equal(g.Cells(), []uint8{4, 3, 2, 1}) {
		t.Fatalf("unexpected cells %v", g.Cells())
	}
	if g.Load([]uint8{1, 2, 3}) {
		t.Fatal("Load accepted short input")
	}
}
