// Package engine provides the wall-clock tick driver for the simulation
// core.
package engine

import (
	"log/slog"
	"math"
	"sync/atomic"
	"time"
)

// Engine drives the simulation forward at a fixed interval. Stop and
// SetSpeed are safe to call from other goroutines; the loop observes
// them on its next pass.
type Engine struct {
	Tick     uint64        // Ticks issued by this driver; owned by the loop goroutine
	Interval time.Duration // Base tick interval

	// OnTick runs once per tick; wired to the city's Simulate plus any
	// post-tick hooks (journal flush, state broadcast).
	OnTick func(tick uint64)

	running atomic.Bool
	speed   atomic.Uint64 // float64 bits
}

// New creates an engine with default pacing.
func New() *Engine {
	e := &Engine{Interval: time.Second}
	e.SetSpeed(1.0)
	return e
}

// Speed reports the tick-rate multiplier: 1.0 = real-time, 0 = paused.
func (e *Engine) Speed() float64 {
	return math.Float64frombits(e.speed.Load())
}

// SetSpeed changes the tick-rate multiplier.
func (e *Engine) SetSpeed(v float64) {
	e.speed.Store(math.Float64bits(v))
}

// Run starts the tick loop. Blocks until Stop is called.
func (e *Engine) Run() {
	e.running.Store(true)
	slog.Info("engine started", "tick", e.Tick, "speed", e.Speed())

	for e.running.Load() {
		speed := e.Speed()
		if speed <= 0 {
			// Paused — sleep briefly and check again.
			time.Sleep(100 * time.Millisecond)
			continue
		}

		start := time.Now()
		e.step()

		// Sleep for the remainder of the interval, adjusted for speed.
		elapsed := time.Since(start)
		target := time.Duration(float64(e.Interval) / speed)
		if elapsed < target {
			time.Sleep(target - elapsed)
		}
	}

	slog.Info("engine stopped", "tick", e.Tick)
}

// Stop halts the loop after the current tick.
func (e *Engine) Stop() {
	e.running.Store(false)
}

func (e *Engine) step() {
	e.Tick++
	if e.OnTick != nil {
		e.OnTick(e.Tick)
	}
}
