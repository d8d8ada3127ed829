package grid

import "github.com/google/uuid"

// FindTile runs a breadth-first search from (startX, startY) and returns
// the first parcel, in discovery order, satisfying pred within maxDistance
// (Manhattan) of the start. Returns nil when the start is out of bounds or
// no parcel qualifies.
//
// The frontier is strictly FIFO with a fixed west/east/north/south push
// order; distance is a filter, not a sort key, so among equally qualifying
// parcels the winner is the one discovered first, not necessarily the
// geometrically nearest. Parcels beyond the cutoff are skipped without
// testing pred and without expanding their neighbors, but the search
// itself continues until the frontier drains.
func (g *Grid) FindTile(startX, startY int, pred func(*Parcel) bool, maxDistance int) *Parcel {
	start := g.Get(startX, startY)
	if start == nil {
		return nil
	}

	// Index-based dequeue keeps each pop O(1); the visited set bounds the
	// queue to the finite grid, so the loop always terminates.
	queue := []*Parcel{start}
	visited := make(map[uuid.UUID]bool)

	for head := 0; head < len(queue); head++ {
		p := queue[head]
		if visited[p.ID] {
			continue
		}
		visited[p.ID] = true

		if manhattan(p.X, p.Y, startX, startY) > maxDistance {
			continue
		}

		queue = append(queue, g.Neighbors(p.X, p.Y)...)

		if pred(p) {
			return p
		}
	}
	return nil
}

func manhattan(x1, y1, x2, y2 int) int {
	dx := x1 - x2
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y2
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
