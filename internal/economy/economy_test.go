package economy

import (
	"testing"

	"github.com/mkrellis/gridtown/internal/building"
)

func TestSchedule(t *testing.T) {
	cases := []struct {
		typ    building.Type
		cost   int
		refund int
		ok     bool
	}{
		{building.TypeResidential, 500, 250, true},
		{building.TypeRoad, 100, 50, true},
		{building.TypeNone, 0, 0, false},
	}
	for _, c := range cases {
		cost, ok := Cost(c.typ)
		if ok != c.ok || (ok && cost != c.cost) {
			t.Errorf("Cost(%s) = %d,%v, want %d,%v", building.TypeName(c.typ), cost, ok, c.cost, c.ok)
		}
		if got := Refund(c.typ); got != c.refund {
			t.Errorf("Refund(%s) = %d, want %d", building.TypeName(c.typ), got, c.refund)
		}
	}
}

func TestTryDebit(t *testing.T) {
	tr := NewTreasury(500)

	if !tr.TryDebit(building.TypeResidential) {
		t.Fatal("debit with exact balance failed")
	}
	if tr.Balance() != 0 {
		t.Fatalf("balance = %d, want 0", tr.Balance())
	}

	// Insufficient funds: no side effect.
	if tr.TryDebit(building.TypeRoad) {
		t.Fatal("debit succeeded with empty treasury")
	}
	if tr.Balance() != 0 {
		t.Errorf("failed debit changed balance to %d", tr.Balance())
	}

	// Unknown types are never buildable, whatever the balance.
	tr.Credit(10000)
	if tr.TryDebit(building.TypeNone) {
		t.Error("debit succeeded for type with no placement rule")
	}
	if tr.Balance() != 10000 {
		t.Errorf("balance = %d, want 10000", tr.Balance())
	}
}
