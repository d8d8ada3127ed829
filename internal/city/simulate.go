package city

import (
	"fmt"

	"github.com/mkrellis/gridtown/internal/building"
	"github.com/mkrellis/gridtown/internal/mission"
)

// Simulate advances the city by the given number of steps (minimum one).
// Each step runs the registered services in order, then scans every parcel
// column-major (x outer, y inner), tallying residential and road counts
// and ticking each parcel. The tallies are per-step; mission evaluation
// happens once after the whole loop, against the final step's counts and
// the live population. The clock advances by one per step, applied after
// evaluation.
func (c *City) Simulate(steps int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if steps < 1 {
		steps = 1
	}

	var buildCount, roadCount int
	for i := 0; i < steps; i++ {
		for _, svc := range c.services {
			svc.Simulate(c)
		}

		buildCount, roadCount = 0, 0
		for x := 0; x < c.Grid.Size; x++ {
			for y := 0; y < c.Grid.Size; y++ {
				p := c.Grid.Get(x, y)
				if b := p.Building; b != nil {
					switch b.Type {
					case building.TypeResidential:
						buildCount++
					case building.TypeRoad:
						roadCount++
					}
				}
				p.Simulate()
			}
		}
	}

	out := c.Missions.Evaluate(c.Grid.TotalResidents(), buildCount, roadCount)
	if out.LevelUp {
		c.Treasury.Credit(mission.LevelReward)
		c.notify.Notify(NoteLevel, fmt.Sprintf("level %d reached, %d awarded", c.Missions.Level, mission.LevelReward))
		c.notify.PlaySound("levelup")
	}
	if out.Completed {
		c.finished = true
		c.notify.Notify(NoteCampaign, "campaign complete")
		c.notify.PlaySound("fanfare")
	}

	c.Clock += uint64(steps)
}
