// Package city implements the simulation core: the parcel grid, building
// economics, the tick loop, and campaign progression. A City is
// single-threaded by contract; one exclusive lock serializes the engine
// loop and API handlers that share it.
package city

import (
	"sync"

	"github.com/mkrellis/gridtown/internal/building"
	"github.com/mkrellis/gridtown/internal/economy"
	"github.com/mkrellis/gridtown/internal/grid"
	"github.com/mkrellis/gridtown/internal/mission"
)

// City is the aggregate root owning the grid, treasury, mission state, and
// simulation clock.
type City struct {
	mu sync.Mutex

	Name     string
	Grid     *grid.Grid
	Treasury *economy.Treasury
	Missions *mission.Engine

	// Clock counts completed simulation steps.
	Clock uint64

	services []Service
	finished bool

	factory Factory
	roads   RoadNetwork
	views   ViewSink
	notify  Notifier
}

// Deps are the external collaborators a city calls into. Nil fields fall
// back to no-ops, so a bare city constructs and runs standalone.
type Deps struct {
	Factory  Factory
	Roads    RoadNetwork
	Views    ViewSink
	Notifier Notifier
}

// New constructs a city with an empty size×size grid and a starting
// treasury balance.
func New(size, startingMoney int, name string, deps Deps) *City {
	c := &City{
		Name:     name,
		Grid:     grid.New(size),
		Treasury: economy.NewTreasury(startingMoney),
		Missions: mission.NewEngine(),
		factory:  deps.Factory,
		roads:    deps.Roads,
		views:    deps.Views,
		notify:   deps.Notifier,
	}
	if c.factory == nil {
		c.factory = FactoryFunc(building.New)
	}
	if c.roads == nil {
		c.roads = nopRoads{}
	}
	if c.views == nil {
		c.views = nopViews{}
	}
	if c.notify == nil {
		c.notify = nopNotifier{}
	}
	return c
}

// Register adds a simulation service. Services run once per tick in
// registration order.
func (c *City) Register(s Service) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.services = append(c.services, s)
}

// Parcel returns the parcel at (x, y), nil when out of range.
func (c *City) Parcel(x, y int) *grid.Parcel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Grid.Get(x, y)
}

// Neighbors returns the in-bounds axis-aligned neighbors of (x, y) in
// west/east/north/south order.
func (c *City) Neighbors(x, y int) []*grid.Parcel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Grid.Neighbors(x, y)
}

// Population is the live sum of residents across all parcels.
func (c *City) Population() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Grid.TotalResidents()
}

// QuoteAndDebit deducts the placement cost for a building type iff the
// treasury covers it.
func (c *City) QuoteAndDebit(t building.Type) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Treasury.TryDebit(t)
}

// FindTile searches outward from (x, y) for the first parcel satisfying
// pred within maxDistance, in breadth-first discovery order.
func (c *City) FindTile(x, y int, pred func(*grid.Parcel) bool, maxDistance int) *grid.Parcel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Grid.FindTile(x, y, pred, maxDistance)
}

// Finished reports whether the campaign has completed. The flag is latched
// once and polled by the presentation layer to finalize the session.
func (c *City) Finished() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.finished
}
