package city

import (
	"github.com/mkrellis/gridtown/internal/building"
	"github.com/mkrellis/gridtown/internal/mission"
)

// Snapshot is a point-in-time serializable view of the city, built under
// the lock for the API and websocket stream.
type Snapshot struct {
	Name           string            `json:"name"`
	Size           int               `json:"size"`
	Clock          uint64            `json:"clock"`
	Treasury       int               `json:"treasury"`
	Population     int               `json:"population"`
	Level          int               `json:"level"`
	MissionCounter int               `json:"mission_counter"`
	Missions       []mission.Mission `json:"missions"`
	Finished       bool              `json:"finished"`
	Tiles          []TileSnapshot    `json:"tiles"`
}

// TileSnapshot describes one occupied parcel.
type TileSnapshot struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Building  string `json:"building"`
	Residents int    `json:"residents,omitempty"`
}

// Snap captures the current state.
func (c *City) Snap() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		Name:           c.Name,
		Size:           c.Grid.Size,
		Clock:          c.Clock,
		Treasury:       c.Treasury.Balance(),
		Population:     c.Grid.TotalResidents(),
		Level:          c.Missions.Level,
		MissionCounter: c.Missions.MissionCounter,
		Finished:       c.finished,
	}
	for _, m := range c.Missions.Missions {
		s.Missions = append(s.Missions, *m)
	}
	for x := 0; x < c.Grid.Size; x++ {
		for y := 0; y < c.Grid.Size; y++ {
			b := c.Grid.Get(x, y).Building
			if b == nil {
				continue
			}
			s.Tiles = append(s.Tiles, TileSnapshot{
				X:         x,
				Y:         y,
				Building:  building.TypeName(b.Type),
				Residents: b.Residents,
			})
		}
	}
	return s
}
