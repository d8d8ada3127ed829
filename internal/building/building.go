// Package building defines the placeable structures of the city: their
// types, resident counts, and the factory contract used to construct them.
package building

// Type enumerates the placeable building kinds.
type Type uint8

const (
	TypeNone Type = iota
	TypeResidential
	TypeRoad
)

var typeNames = map[Type]string{
	TypeNone:        "none",
	TypeResidential: "residential",
	TypeRoad:        "road",
}

// TypeName returns a human-readable name for a building type.
func TypeName(t Type) string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseType maps a type name back to its Type. Unknown names map to
// TypeNone, which no placement rule accepts.
func ParseType(name string) Type {
	for t, n := range typeNames {
		if n == name {
			return t
		}
	}
	return TypeNone
}

// Handle is an opaque reference to resources owned outside the core
// (typically a render mesh). Released exactly once, when the building is
// removed from its parcel.
type Handle interface {
	Release()
}

// Building is a placed structure occupying exactly one parcel. It is owned
// by that parcel and freed through Release before removal.
type Building struct {
	Type Type
	X, Y int

	// Residents only grows on residential buildings; roads stay at zero.
	Residents int
	Capacity  int

	// Desirability in [0, 1], maintained by the growth service. Scales
	// the resident count this building drifts toward each tick.
	Desirability float64

	Handle Handle
}

// DefaultCapacity is the resident capacity assigned by the default factory.
const DefaultCapacity = 12

// New constructs a building of the given type at a parcel coordinate. It is
// the default factory; a render-aware caller supplies its own factory and
// attaches a Handle.
func New(x, y int, t Type) *Building {
	b := &Building{Type: t, X: x, Y: y}
	if t == TypeResidential {
		b.Capacity = DefaultCapacity
	}
	return b
}

// Release frees any externally owned resources and empties the building.
func (b *Building) Release() {
	if b.Handle != nil {
		b.Handle.Release()
		b.Handle = nil
	}
	b.Residents = 0
}

// Simulate advances the building by one tick. Residential buildings drift
// their resident count toward capacity scaled by desirability: move-ins
// arrive two per tick, move-outs leave one per tick.
func (b *Building) Simulate() {
	if b.Type != TypeResidential {
		return
	}
	target := int(float64(b.Capacity)*b.Desirability + 0.5)
	if target > b.Capacity {
		target = b.Capacity
	}
	switch {
	case b.Residents < target:
		b.Residents += 2
		if b.Residents > target {
			b.Residents = target
		}
	case b.Residents > target:
		b.Residents--
	}
}
