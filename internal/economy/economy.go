// Package economy holds the city treasury and the fixed build/demolish
// price schedule.
package economy

import "github.com/mkrellis/gridtown/internal/building"

// prices is the fixed schedule. Types absent from the table have no
// placement rule and cannot be built.
var prices = map[building.Type]struct{ Cost, Refund int }{
	building.TypeResidential: {Cost: 500, Refund: 250},
	building.TypeRoad:        {Cost: 100, Refund: 50},
}

// Cost returns the placement cost for a building type. The second return
// is false when the type has no placement rule.
func Cost(t building.Type) (int, bool) {
	p, ok := prices[t]
	return p.Cost, ok
}

// Refund returns the demolition refund for a building type, zero when the
// type has no rule.
func Refund(t building.Type) int {
	return prices[t].Refund
}

// Treasury is the city's spendable money balance. It is mutated only
// through TryDebit and Credit; the simulation core is single-threaded per
// city, so check-then-deduct cannot interleave.
type Treasury struct {
	balance int
}

// NewTreasury creates a treasury with a starting balance.
func NewTreasury(balance int) *Treasury {
	return &Treasury{balance: balance}
}

// Balance returns the current balance.
func (t *Treasury) Balance() int {
	return t.balance
}

// TryDebit deducts the placement cost for the given building type iff the
// balance covers it. On failure (insufficient funds or no placement rule)
// the balance is untouched.
func (t *Treasury) TryDebit(bt building.Type) bool {
	cost, ok := Cost(bt)
	if !ok || t.balance < cost {
		return false
	}
	t.balance -= cost
	return true
}

// Credit adds to the balance.
func (t *Treasury) Credit(amount int) {
	t.balance += amount
}
