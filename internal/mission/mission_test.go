package mission

import "testing"

func TestEvaluateCountsAndMonotonicDone(t *testing.T) {
	e := NewEngine()

	out := e.Evaluate(40, 0, 0) // population mission only
	if out.LevelUp || out.Completed {
		t.Fatalf("unexpected transition: %+v", out)
	}
	if e.MissionCounter != 1 {
		t.Fatalf("counter = %d, want 1", e.MissionCounter)
	}

	// Population drops below target; the done flag must stick.
	e.Evaluate(0, 0, 0)
	if e.MissionCounter != 1 {
		t.Errorf("counter = %d after regression, want 1 (done is monotonic)", e.MissionCounter)
	}
	if !e.Missions[0].Done {
		t.Error("population mission reverted to not done")
	}
}

func TestLevelOneAdvance(t *testing.T) {
	e := NewEngine()
	out := e.Evaluate(35, 5, 1)
	if !out.LevelUp || out.Completed {
		t.Fatalf("outcome = %+v, want level up only", out)
	}
	if e.Level != 2 {
		t.Fatalf("level = %d, want 2", e.Level)
	}
	if len(e.Missions) != 3 {
		t.Fatalf("level 2 missions = %d, want 3", len(e.Missions))
	}
	for i, m := range e.Missions {
		if m.Done {
			t.Errorf("level 2 mission %d starts done", i)
		}
	}
}

func TestCampaignCompletesOnce(t *testing.T) {
	e := NewEngine()
	e.Evaluate(35, 5, 1) // clear level 1

	out := e.Evaluate(120, 20, 10)
	if !out.Completed {
		t.Fatal("level 2 full completion did not finish the campaign")
	}
	if !e.Finished() {
		t.Fatal("Finished() = false after completion")
	}

	// Subsequent evaluations stay idempotent: counter 3, no re-fire.
	for i := 0; i < 3; i++ {
		out = e.Evaluate(120, 20, 10)
		if out.Completed || out.LevelUp {
			t.Fatalf("evaluate %d re-fired: %+v", i, out)
		}
		if e.MissionCounter != 3 {
			t.Fatalf("counter = %d after completion, want 3", e.MissionCounter)
		}
	}
	if e.Level != LastLevel {
		t.Errorf("level = %d, want %d (no level 3)", e.Level, LastLevel)
	}
}

func TestCounterRecomputedPerCall(t *testing.T) {
	e := NewEngine()
	e.Evaluate(35, 0, 0)
	e.Evaluate(35, 0, 0)
	if e.MissionCounter != 1 {
		t.Errorf("counter = %d, want 1 (not cumulative across calls)", e.MissionCounter)
	}
}
