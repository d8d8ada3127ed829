package city

import (
	"log/slog"

	"github.com/mkrellis/gridtown/internal/building"
)

// Notification kinds emitted by the core.
const (
	NoteFunds    = "funds"    // placement refused: not enough money
	NoteBuild    = "build"    // building placed
	NoteRoad     = "road"     // road paved
	NoteDemolish = "demolish" // building bulldozed
	NoteDisaster = "disaster" // building destroyed / residents lost
	NoteLevel    = "level"    // level advanced
	NoteCampaign = "campaign" // campaign finished
)

// Factory constructs buildings for successful placements. A render-aware
// implementation attaches mesh handles; the default produces bare
// buildings.
type Factory interface {
	Create(x, y int, t building.Type) *building.Building
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(x, y int, t building.Type) *building.Building

func (f FactoryFunc) Create(x, y int, t building.Type) *building.Building { return f(x, y, t) }

// RoadNetwork is the external collaborator keeping connectivity data in
// sync with road parcels. A nil building means the tile is now empty.
type RoadNetwork interface {
	UpdateTile(x, y int, b *building.Building)
}

// ViewSink receives refresh requests after any occupancy change, for the
// changed parcel and each of its four neighbors.
type ViewSink interface {
	RefreshParcel(x, y int)
}

// Notifier delivers user-facing notifications and sound effects. Both are
// fire and forget; the core never reads a result back.
type Notifier interface {
	Notify(kind, message string)
	PlaySound(effect string)
}

// Service is a registered simulation hook, invoked once per tick in
// registration order. It runs with the city lock held and must therefore
// touch city state through the exported fields, not the locking methods.
type Service interface {
	Simulate(c *City)
}

type nopRoads struct{}

func (nopRoads) UpdateTile(int, int, *building.Building) {}

type nopViews struct{}

func (nopViews) RefreshParcel(int, int) {}

type nopNotifier struct{}

func (nopNotifier) Notify(string, string) {}
func (nopNotifier) PlaySound(string)      {}

// SlogNotifier writes notifications to the default structured logger.
type SlogNotifier struct{}

func (SlogNotifier) Notify(kind, message string) {
	slog.Info("notify", "kind", kind, "message", message)
}

func (SlogNotifier) PlaySound(effect string) {
	slog.Debug("sound", "effect", effect)
}

type multiNotifier []Notifier

func (m multiNotifier) Notify(kind, message string) {
	for _, n := range m {
		n.Notify(kind, message)
	}
}

func (m multiNotifier) PlaySound(effect string) {
	for _, n := range m {
		n.PlaySound(effect)
	}
}

// MultiNotifier fans notifications out to every sink in order.
func MultiNotifier(sinks ...Notifier) Notifier {
	return multiNotifier(sinks)
}
