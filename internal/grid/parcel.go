package grid

import (
	"github.com/google/uuid"

	"github.com/mkrellis/gridtown/internal/building"
)

// Parcel is one cell of the city grid. Its coordinates are fixed at
// creation and it holds at most one building. Parcels are owned by the
// grid and live for its whole lifetime.
type Parcel struct {
	ID   uuid.UUID
	X, Y int

	Building *building.Building
}

// Occupied reports whether a building stands on this parcel.
func (p *Parcel) Occupied() bool {
	return p.Building != nil
}

// Residents returns the parcel's resident count: zero when empty or when
// the building is not residential.
func (p *Parcel) Residents() int {
	if p.Building == nil || p.Building.Type != building.TypeResidential {
		return 0
	}
	return p.Building.Residents
}

// Simulate advances the parcel by one tick, delegating to its building.
func (p *Parcel) Simulate() {
	if p.Building != nil {
		p.Building.Simulate()
	}
}
