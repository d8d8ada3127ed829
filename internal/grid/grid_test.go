package grid

import (
	"testing"

	"github.com/mkrellis/gridtown/internal/building"
)

func TestGetReturnsMatchingCoordinates(t *testing.T) {
	g := New(4)
	seen := make(map[string]bool)
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			p := g.Get(x, y)
			if p == nil {
				t.Fatalf("Get(%d,%d) = nil inside bounds", x, y)
			}
			if p.X != x || p.Y != y {
				t.Errorf("Get(%d,%d) has coords (%d,%d)", x, y, p.X, p.Y)
			}
			if seen[p.ID.String()] {
				t.Errorf("duplicate parcel identity at (%d,%d)", x, y)
			}
			seen[p.ID.String()] = true
		}
	}
}

func TestGetOutOfBoundsIsNil(t *testing.T) {
	g := New(4)
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {-3, -3}, {100, 100}} {
		if p := g.Get(c[0], c[1]); p != nil {
			t.Errorf("Get(%d,%d) = %v, want nil", c[0], c[1], p)
		}
	}
}

func TestNeighborsOrder(t *testing.T) {
	g := New(3)

	got := g.Neighbors(1, 1)
	want := [][2]int{{0, 1}, {2, 1}, {1, 0}, {1, 2}} // west, east, north, south
	if len(got) != len(want) {
		t.Fatalf("center neighbors = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].X != w[0] || got[i].Y != w[1] {
			t.Errorf("neighbor %d = (%d,%d), want (%d,%d)", i, got[i].X, got[i].Y, w[0], w[1])
		}
	}

	// Corner keeps the same relative order with the missing sides skipped.
	corner := g.Neighbors(0, 0)
	if len(corner) != 2 || corner[0].X != 1 || corner[0].Y != 0 || corner[1].X != 0 || corner[1].Y != 1 {
		t.Errorf("corner neighbors = %v, want east then south", coords(corner))
	}
}

func TestTotalResidentsRescan(t *testing.T) {
	g := New(3)
	if got := g.TotalResidents(); got != 0 {
		t.Fatalf("empty grid residents = %d", got)
	}

	home := building.New(0, 0, building.TypeResidential)
	home.Residents = 8
	g.Get(0, 0).Building = home

	road := building.New(1, 1, building.TypeRoad)
	road.Residents = 99 // must not be counted
	g.Get(1, 1).Building = road

	if got := g.TotalResidents(); got != 8 {
		t.Errorf("residents = %d, want 8", got)
	}

	// Mutation shows up immediately — nothing is cached.
	home.Residents = 3
	if got := g.TotalResidents(); got != 3 {
		t.Errorf("residents after mutation = %d, want 3", got)
	}
}

func coords(ps []*Parcel) [][2]int {
	out := make([][2]int, len(ps))
	for i, p := range ps {
		out[i] = [2]int{p.X, p.Y}
	}
	return out
}
