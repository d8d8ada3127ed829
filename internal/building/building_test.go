package building

import "testing"

type fakeHandle struct{ released int }

func (h *fakeHandle) Release() { h.released++ }

func TestReleaseFreesHandleOnce(t *testing.T) {
	b := New(2, 3, TypeResidential)
	h := &fakeHandle{}
	b.Handle = h
	b.Residents = 7

	b.Release()
	if h.released != 1 {
		t.Fatalf("handle released %d times, want 1", h.released)
	}
	if b.Residents != 0 {
		t.Errorf("residents = %d after release, want 0", b.Residents)
	}

	// A second release must not touch the old handle again.
	b.Release()
	if h.released != 1 {
		t.Errorf("handle released %d times after double release, want 1", h.released)
	}
}

func TestSimulateDriftsTowardTarget(t *testing.T) {
	b := New(0, 0, TypeResidential)
	b.Desirability = 0.5 // target = 6 of 12

	for i := 0; i < 10; i++ {
		b.Simulate()
	}
	if b.Residents != 6 {
		t.Fatalf("residents = %d, want 6", b.Residents)
	}

	// Lower desirability empties the building one resident per tick.
	b.Desirability = 0.25 // target = 3
	b.Simulate()
	if b.Residents != 5 {
		t.Errorf("residents = %d after one move-out tick, want 5", b.Residents)
	}
}

func TestSimulateIgnoresRoads(t *testing.T) {
	b := New(0, 0, TypeRoad)
	b.Desirability = 1.0
	b.Simulate()
	if b.Residents != 0 {
		t.Errorf("road gained %d residents", b.Residents)
	}
}

func TestParseTypeRoundTrip(t *testing.T) {
	for _, typ := range []Type{TypeNone, TypeResidential, TypeRoad} {
		if got := ParseType(TypeName(typ)); got != typ {
			t.Errorf("ParseType(TypeName(%d)) = %d", typ, got)
		}
	}
	if got := ParseType("castle"); got != TypeNone {
		t.Errorf("ParseType(castle) = %d, want TypeNone", got)
	}
}
