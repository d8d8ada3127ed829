// Package growth provides the resident-growth simulation service: a
// simplex-noise desirability field over the grid that residential
// buildings fill up against.
package growth

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/mkrellis/gridtown/internal/building"
	"github.com/mkrellis/gridtown/internal/city"
)

const (
	noiseScale = 0.18

	// floor keeps every neighborhood at least somewhat livable, so an
	// unlucky seed cannot strand the level 1 population mission.
	floor = 0.35

	// roadBonus rewards residential parcels adjacent to a road.
	roadBonus = 0.15
)

// Field samples a smooth desirability surface, deterministic from its
// seed.
type Field struct {
	noise opensimplex.Noise
}

// NewField creates a field for a seed.
func NewField(seed int64) *Field {
	return &Field{noise: opensimplex.NewNormalized(seed)}
}

// At returns the base desirability in [floor, 1] for a coordinate.
func (f *Field) At(x, y int) float64 {
	v := f.noise.Eval2(float64(x)*noiseScale, float64(y)*noiseScale)
	return floor + (1-floor)*v
}

// Service is a registered city tick hook. Each tick it refreshes every
// residential building's desirability from the field, with a bonus for
// road access; the buildings themselves move residents in during their
// parcel tick.
type Service struct {
	field *Field
}

// NewService creates the growth service with a deterministic field.
func NewService(seed int64) *Service {
	return &Service{field: NewField(seed)}
}

// Simulate runs under the city lock, once per tick.
func (s *Service) Simulate(c *city.City) {
	g := c.Grid
	for x := 0; x < g.Size; x++ {
		for y := 0; y < g.Size; y++ {
			b := g.Get(x, y).Building
			if b == nil || b.Type != building.TypeResidential {
				continue
			}
			d := s.field.At(x, y)
			for _, n := range g.Neighbors(x, y) {
				if n.Building != nil && n.Building.Type == building.TypeRoad {
					d += roadBonus
					break
				}
			}
			if d > 1 {
				d = 1
			}
			b.Desirability = d
		}
	}
}
