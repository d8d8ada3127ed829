// Package roadnet maintains the connectivity data derived from road
// parcels: which tiles carry roads, how each connects to its neighbors,
// and how many disjoint stretches exist. Pathfinding itself lives outside
// the simulation core.
package roadnet

import "github.com/mkrellis/gridtown/internal/building"

// Continuity mask bits, one per compass side with a connecting road.
const (
	MaskNorth uint8 = 1 << iota
	MaskEast
	MaskSouth
	MaskWest
)

// Network tracks the set of road tiles.
type Network struct {
	size  int
	tiles map[[2]int]bool
}

// New creates an empty network for a size×size grid.
func New(size int) *Network {
	return &Network{size: size, tiles: make(map[[2]int]bool)}
}

// UpdateTile is the collaborator contract: called whenever a tile's
// building changes in a way the road graph cares about. A road building
// registers the tile; anything else (including nil) clears it.
func (n *Network) UpdateTile(x, y int, b *building.Building) {
	if b != nil && b.Type == building.TypeRoad {
		n.tiles[[2]int{x, y}] = true
		return
	}
	delete(n.tiles, [2]int{x, y})
}

// HasRoad reports whether a road occupies (x, y).
func (n *Network) HasRoad(x, y int) bool {
	return n.tiles[[2]int{x, y}]
}

// Count returns the number of road tiles.
func (n *Network) Count() int {
	return len(n.tiles)
}

// Mask returns the continuity bitmask for (x, y): which of its four sides
// connect to another road. Renderers pick the tile mesh from it.
func (n *Network) Mask(x, y int) uint8 {
	var m uint8
	if n.HasRoad(x, y-1) {
		m |= MaskNorth
	}
	if n.HasRoad(x+1, y) {
		m |= MaskEast
	}
	if n.HasRoad(x, y+1) {
		m |= MaskSouth
	}
	if n.HasRoad(x-1, y) {
		m |= MaskWest
	}
	return m
}

// Components returns the number of disjoint road stretches, by flood fill
// over 4-adjacency.
func (n *Network) Components() int {
	seen := make(map[[2]int]bool, len(n.tiles))
	components := 0
	for tile := range n.tiles {
		if seen[tile] {
			continue
		}
		components++
		stack := [][2]int{tile}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if seen[cur] {
				continue
			}
			seen[cur] = true
			for _, d := range [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
				next := [2]int{cur[0] + d[0], cur[1] + d[1]}
				if n.tiles[next] && !seen[next] {
					stack = append(stack, next)
				}
			}
		}
	}
	return components
}
