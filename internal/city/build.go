package city

import (
	"fmt"

	"github.com/mkrellis/gridtown/internal/building"
	"github.com/mkrellis/gridtown/internal/economy"
)

// PlaceBuilding attempts to put a building of the given type on (x, y).
// Missing or occupied parcels and unknown types are silent no-ops; an
// affordable placement debits the treasury, attaches the building, and
// refreshes the parcel and its neighbors. Only the insufficient-funds case
// is announced to the player.
func (c *City) PlaceBuilding(x, y int, t building.Type) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.placeBuilding(x, y, t)
}

func (c *City) placeBuilding(x, y int, t building.Type) {
	p := c.Grid.Get(x, y)
	if p == nil || p.Building != nil {
		return
	}
	cost, ok := economy.Cost(t)
	if !ok {
		return
	}
	if !c.Treasury.TryDebit(t) {
		c.notify.Notify(NoteFunds, fmt.Sprintf("not enough money: %s costs %d", building.TypeName(t), cost))
		return
	}

	b := c.factory.Create(x, y, t)
	p.Building = b
	c.refreshAround(x, y)

	if t == building.TypeRoad {
		c.roads.UpdateTile(x, y, b)
		c.notify.Notify(NoteRoad, fmt.Sprintf("road paved for %d", cost))
	} else {
		c.notify.Notify(NoteBuild, fmt.Sprintf("%s built for %d", building.TypeName(t), cost))
	}
	c.notify.PlaySound("build")
}

// Bulldoze removes whatever stands on (x, y), crediting the demolition
// refund for types that have one. Missing or empty parcels are silent
// no-ops.
func (c *City) Bulldoze(x, y int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bulldoze(x, y)
}

func (c *City) bulldoze(x, y int) {
	p := c.Grid.Get(x, y)
	if p == nil || p.Building == nil {
		return
	}
	b := p.Building

	switch b.Type {
	case building.TypeRoad:
		c.Treasury.Credit(economy.Refund(b.Type))
		c.roads.UpdateTile(x, y, nil)
	case building.TypeResidential:
		c.Treasury.Credit(economy.Refund(b.Type))
	}

	b.Release()
	p.Building = nil
	c.refreshAround(x, y)

	c.notify.Notify(NoteDemolish, fmt.Sprintf("%s demolished at (%d,%d)", building.TypeName(b.Type), x, y))
	c.notify.PlaySound("bulldoze")
}

// Destroy is the disaster-flavored removal: residential buildings only, no
// refund. Roads and any other type are left untouched. The road network is
// told the tile is clear, and two catastrophic notifications replace the
// economic one.
func (c *City) Destroy(x, y int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.destroy(x, y)
}

func (c *City) destroy(x, y int) {
	p := c.Grid.Get(x, y)
	if p == nil || p.Building == nil || p.Building.Type != building.TypeResidential {
		return
	}
	b := p.Building
	lost := b.Residents

	c.roads.UpdateTile(x, y, nil)
	b.Release()
	p.Building = nil
	c.refreshAround(x, y)

	c.notify.Notify(NoteDisaster, fmt.Sprintf("building at (%d,%d) has collapsed", x, y))
	c.notify.Notify(NoteDisaster, fmt.Sprintf("%d residents lost", lost))
	c.notify.PlaySound("disaster")
}

// refreshAround asks the view layer to redraw a changed parcel and its
// four neighbors, so adjacency-sensitive rendering (road continuity) can
// react.
func (c *City) refreshAround(x, y int) {
	c.views.RefreshParcel(x, y)
	for _, n := range c.Grid.Neighbors(x, y) {
		c.views.RefreshParcel(n.X, n.Y)
	}
}
