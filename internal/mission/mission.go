// Package mission tracks the campaign: per-level objective sets, their
// completion state, and level progression.
package mission

// Kind selects which per-tick aggregate a mission tests.
type Kind uint8

const (
	KindPopulation Kind = iota // total residents
	KindBuildings              // residential building count
	KindRoads                  // road tile count
)

// Mission is a single objective: one threshold against one aggregate.
// Done is monotonic within a level — once met it never reverts.
type Mission struct {
	Description string `json:"description"`
	Kind        Kind   `json:"kind"`
	Target      int    `json:"target"`
	Done        bool   `json:"done"`
}

// The campaign ships exactly two levels of three missions each; there is
// no level 3.
const (
	FirstLevel = 1
	LastLevel  = 2
)

// LevelReward is credited to the treasury when level 1 completes.
const LevelReward = 2500

var levelTable = map[int][3]Mission{
	1: {
		{Description: "Grow the population to 35", Kind: KindPopulation, Target: 35},
		{Description: "Construct 5 buildings", Kind: KindBuildings, Target: 5},
		{Description: "Pave a road", Kind: KindRoads, Target: 1},
	},
	2: {
		{Description: "Grow the population to 120", Kind: KindPopulation, Target: 120},
		{Description: "Construct 20 buildings", Kind: KindBuildings, Target: 20},
		{Description: "Pave 10 roads", Kind: KindRoads, Target: 10},
	},
}

// levelMissions returns a fresh ordered set for a level.
func levelMissions(level int) []*Mission {
	set := levelTable[level]
	out := make([]*Mission, len(set))
	for i := range set {
		m := set[i]
		out[i] = &m
	}
	return out
}

// Engine evaluates the active level's missions against tick aggregates and
// drives level transitions.
type Engine struct {
	Level    int
	Missions []*Mission

	// MissionCounter is the done count from the most recent Evaluate,
	// recomputed every call.
	MissionCounter int

	finished bool
}

// NewEngine starts a campaign at level 1.
func NewEngine() *Engine {
	return &Engine{Level: FirstLevel, Missions: levelMissions(FirstLevel)}
}

// Outcome reports what a single Evaluate call triggered.
type Outcome struct {
	LevelUp   bool // advanced from level 1 to level 2 this call
	Completed bool // campaign finished this call; latched, fires once
}

// Evaluate tests every mission of the active level, in order, against the
// supplied aggregates. On full completion level 1 advances to level 2;
// full completion of level 2 ends the campaign. Later calls keep reporting
// MissionCounter == 3 but never re-fire Completed.
func (e *Engine) Evaluate(population, buildingCount, roadCount int) Outcome {
	e.MissionCounter = 0
	done := 0
	for _, m := range e.Missions {
		var value int
		switch m.Kind {
		case KindPopulation:
			value = population
		case KindBuildings:
			value = buildingCount
		case KindRoads:
			value = roadCount
		}
		if value >= m.Target {
			m.Done = true
		}
		if m.Done {
			done++
		}
	}
	e.MissionCounter = done

	var out Outcome
	if done == len(e.Missions) {
		switch e.Level {
		case FirstLevel:
			e.Level = LastLevel
			e.Missions = levelMissions(LastLevel)
			out.LevelUp = true
		case LastLevel:
			if !e.finished {
				e.finished = true
				out.Completed = true
			}
		}
	}
	return out
}

// Finished reports whether the campaign has completed.
func (e *Engine) Finished() bool {
	return e.finished
}
