// Package logbook contains the business core of the Carnet de Bord: the
// trip store and the per-vehicle toll ledger. All state is in-memory and
// lives for the process lifetime; persistence and rendering are external
// collaborators invoked only at operation boundaries.
package logbook

import "github.com/cna-archives/carnet-bord/internal/domain"

// TollLedger tracks the cumulative toll spend per vehicle against each
// vehicle's fixed card limit. It is derived state: at all times the charged
// total for a vehicle equals the sum of toll amounts over the active trips
// of that vehicle.
//
// The ledger carries no lock of its own — it is owned by a Logbook and only
// touched inside the Logbook's critical section, so a trip mutation and its
// ledger effect are always observed together.
type TollLedger struct {
	limits  map[string]int
	charged map[string]int
}

// NewTollLedger builds a ledger for the given fleet with every charge
// counter at zero.
func NewTollLedger(fleet []domain.Vehicle) *TollLedger {
	l := &TollLedger{
		limits:  make(map[string]int, len(fleet)),
		charged: make(map[string]int, len(fleet)),
	}
	for _, v := range fleet {
		l.limits[v.ID] = v.TollLimit
		l.charged[v.ID] = 0
	}
	return l
}

// Balance returns the remaining card balance for the vehicle: limit minus
// cumulative charged. Never negative. Unknown vehicles have balance 0.
func (l *TollLedger) Balance(vehicleID string) int {
	b := l.limits[vehicleID] - l.charged[vehicleID]
	if b < 0 {
		return 0
	}
	return b
}

// Charged returns the cumulative toll amount charged to the vehicle.
func (l *TollLedger) Charged(vehicleID string) int {
	return l.charged[vehicleID]
}

// CanCharge reports whether amount fits within the vehicle's remaining balance.
func (l *TollLedger) CanCharge(vehicleID string, amount int) bool {
	return amount <= l.Balance(vehicleID)
}

// Charge adds amount to the vehicle's cumulative spend.
// Returns *domain.InsufficientBalanceError (carrying the current balance)
// if amount exceeds the remaining balance; the ledger is unchanged on failure.
func (l *TollLedger) Charge(vehicleID string, amount int) error {
	if !l.CanCharge(vehicleID, amount) {
		return &domain.InsufficientBalanceError{VehicleID: vehicleID, Balance: l.Balance(vehicleID)}
	}
	l.charged[vehicleID] += amount
	return nil
}

// Refund subtracts amount from the vehicle's cumulative spend, clamped to a
// floor of 0. The clamp is a safety net against double-refund or drift, not
// a correctness guarantee — under the store's invariants it never fires.
func (l *TollLedger) Refund(vehicleID string, amount int) {
	l.charged[vehicleID] -= amount
	if l.charged[vehicleID] < 0 {
		l.charged[vehicleID] = 0
	}
}

// Reconcile atomically replaces a trip's toll charge: it refunds oldAmount
// from oldVehicle, then charges newAmount to newVehicle (the two differ when
// an edit moves the trip between vehicles). If the new charge does not fit,
// both counters are restored to their prior values and the charge error is
// returned — the ledger is exactly as it was, with no partial effect.
func (l *TollLedger) Reconcile(oldVehicle string, oldAmount int, newVehicle string, newAmount int) error {
	prevOld, prevNew := l.charged[oldVehicle], l.charged[newVehicle]

	l.Refund(oldVehicle, oldAmount)
	if err := l.Charge(newVehicle, newAmount); err != nil {
		l.charged[oldVehicle] = prevOld
		l.charged[newVehicle] = prevNew
		return err
	}
	return nil
}
