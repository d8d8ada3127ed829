package journal

import (
	"log/slog"

	"github.com/mkrellis/gridtown/internal/building"
	"github.com/mkrellis/gridtown/internal/city"
)

// Recorder adapts the journal to the core's collaborator contracts: it is
// a city.Notifier persisting every notification, and a city.Service
// recording aggregate stats each tick. Write failures are logged and
// dropped — notifications are fire and forget by contract.
type Recorder struct {
	db  *DB
	log *EventLog
	c   *city.City
}

// NewRecorder builds a recorder over an open journal. The event log mirror
// is optional.
func NewRecorder(db *DB, log *EventLog) *Recorder {
	return &Recorder{db: db, log: log}
}

// Attach binds the recorder to the city whose clock stamps its entries.
func (r *Recorder) Attach(c *city.City) {
	r.c = c
}

func (r *Recorder) tick() uint64 {
	if r.c == nil {
		return 0
	}
	return r.c.Clock
}

// Notify implements city.Notifier.
func (r *Recorder) Notify(kind, message string) {
	e := Event{Tick: r.tick(), Kind: kind, Message: message}
	if err := r.db.AppendEvent(e); err != nil {
		slog.Error("journal append failed", "kind", kind, "error", err)
	}
	if r.log != nil {
		if err := r.log.Write(e); err != nil {
			slog.Error("event log write failed", "error", err)
		}
	}
}

// PlaySound implements city.Notifier. Sound effects are presentation-side;
// the journal only keeps the event stream.
func (r *Recorder) PlaySound(string) {}

// Simulate implements city.Service: one stats row per tick. Runs under the
// city lock, so it reads the exported fields directly.
func (r *Recorder) Simulate(c *city.City) {
	var buildings, roads int
	for x := 0; x < c.Grid.Size; x++ {
		for y := 0; y < c.Grid.Size; y++ {
			b := c.Grid.Get(x, y).Building
			if b == nil {
				continue
			}
			switch b.Type {
			case building.TypeResidential:
				buildings++
			case building.TypeRoad:
				roads++
			}
		}
	}
	row := StatRow{
		Tick:       c.Clock,
		Population: c.Grid.TotalResidents(),
		Buildings:  buildings,
		Roads:      roads,
		Treasury:   c.Treasury.Balance(),
		Level:      c.Missions.Level,
	}
	if err := r.db.RecordStats(row); err != nil {
		slog.Error("journal stats write failed", "tick", row.Tick, "error", err)
	}
}
