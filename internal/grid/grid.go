// Package grid provides the fixed-size parcel matrix and the bounded
// breadth-first tile search over its 4-neighbor adjacency.
package grid

import (
	"fmt"

	"github.com/google/uuid"
)

// neighborOffsets fixes the neighbor evaluation order: west, east, north,
// south. The search tie-break contract depends on this order.
var neighborOffsets = [4][2]int{
	{-1, 0}, // west
	{1, 0},  // east
	{0, -1}, // north
	{0, 1},  // south
}

// Grid owns the size×size matrix of parcels, indexed [x][y]. The size is
// fixed after construction.
type Grid struct {
	Size    int
	parcels [][]*Parcel
}

// New creates a grid of empty parcels.
func New(size int) *Grid {
	g := &Grid{Size: size, parcels: make([][]*Parcel, size)}
	for x := 0; x < size; x++ {
		g.parcels[x] = make([]*Parcel, size)
		for y := 0; y < size; y++ {
			g.parcels[x][y] = &Parcel{ID: uuid.New(), X: x, Y: y}
		}
	}
	return g
}

// InBounds reports whether the coordinate lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Size && y >= 0 && y < g.Size
}

// Get returns the parcel at (x, y), or nil when out of range. Absence is
// not an error: callers treat nil as "nothing there".
func (g *Grid) Get(x, y int) *Parcel {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.parcels[x][y]
}

// Neighbors returns the up-to-4 axis-aligned adjacent parcels that exist
// within bounds, in west/east/north/south order.
func (g *Grid) Neighbors(x, y int) []*Parcel {
	out := make([]*Parcel, 0, 4)
	for _, d := range neighborOffsets {
		if p := g.Get(x+d[0], y+d[1]); p != nil {
			out = append(out, p)
		}
	}
	return out
}

// TotalResidents sums resident counts across every parcel. A full rescan
// each call, O(size²); nothing is cached, so the result is never stale.
func (g *Grid) TotalResidents() int {
	total := 0
	for x := 0; x < g.Size; x++ {
		for y := 0; y < g.Size; y++ {
			total += g.parcels[x][y].Residents()
		}
	}
	return total
}

// String returns a summary of the grid.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid(size=%d)", g.Size)
}
