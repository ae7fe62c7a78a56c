package logbook

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/cna-archives/carnet-bord/internal/domain"
)

// lowBalanceThreshold is the F CFA balance below which the dashboard flags
// a vehicle's toll card for a top-up.
const lowBalanceThreshold = 5000

// Logbook is the aggregate root for trip records and the toll ledger.
// A single mutex serializes every operation end to end, spanning both the
// field validation and the ledger charge/refund, so no caller can observe
// a trip without its ledger effect or vice versa.
//
// Trip IDs are assigned from a monotonic counter starting at 1 and are
// never reused, even after a delete.
type Logbook struct {
	mu     sync.Mutex
	fleet  []domain.Vehicle
	byID   map[string]domain.Vehicle
	trips  []domain.Trip
	ledger *TollLedger
	nextID int
}

// New builds an empty logbook for the given fleet.
func New(fleet []domain.Vehicle) *Logbook {
	b := &Logbook{
		fleet:  append([]domain.Vehicle(nil), fleet...),
		byID:   make(map[string]domain.Vehicle, len(fleet)),
		ledger: NewTollLedger(fleet),
		nextID: 1,
	}
	for _, v := range fleet {
		b.byID[v.ID] = v
	}
	return b
}

// Vehicles returns the fleet catalog in declaration order.
func (b *Logbook) Vehicles() []domain.Vehicle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]domain.Vehicle(nil), b.fleet...)
}

// Balance returns the remaining toll-card balance for a vehicle.
// Returns domain.ErrNotFound for a vehicle not in the fleet.
func (b *Logbook) Balance(vehicleID string) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.byID[vehicleID]; !ok {
		return 0, fmt.Errorf("logbook.Balance: vehicle %q: %w", vehicleID, domain.ErrNotFound)
	}
	return b.ledger.Balance(vehicleID), nil
}

// Create validates the candidate trip, charges any toll against the ledger,
// assigns the next sequential ID, and appends the trip to the store.
// The stored trip (with ID and derived Distance populated) is returned.
//
// On any validation or balance failure neither the store nor the ledger
// changes. Returns a domain.ErrValidation wrapper or
// *domain.InsufficientBalanceError accordingly.
func (b *Logbook) Create(candidate domain.Trip) (domain.Trip, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.validate(candidate); err != nil {
		return domain.Trip{}, fmt.Errorf("logbook.Create: %w", err)
	}
	if amt := candidate.TollAmount(); amt > 0 {
		if err := b.ledger.Charge(candidate.VehicleID, amt); err != nil {
			return domain.Trip{}, fmt.Errorf("logbook.Create: %w", err)
		}
	}

	trip := candidate.Clone()
	trip.ID = b.nextID
	b.nextID++
	trip.Distance = trip.FinalKM - trip.InitialKM
	b.trips = append(b.trips, trip)

	return trip.Clone(), nil
}

// Get returns the active trip with the given ID, or domain.ErrNotFound.
func (b *Logbook) Get(id int) (domain.Trip, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.indexOf(id)
	if i < 0 {
		return domain.Trip{}, fmt.Errorf("logbook.Get: trip %d: %w", id, domain.ErrNotFound)
	}
	return b.trips[i].Clone(), nil
}

// Update replaces the fields of an existing trip after re-running the full
// create validation. The ledger adjustment is two-phase: the old toll charge
// is provisionally refunded, then the new one is charged against the
// adjusted balance. If the new charge does not fit, the refund is reversed
// before returning, so a failed update leaves both the trip and the ledger
// exactly as they were.
//
// The trip keeps its ID; Distance is recomputed.
func (b *Logbook) Update(id int, candidate domain.Trip) (domain.Trip, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.indexOf(id)
	if i < 0 {
		return domain.Trip{}, fmt.Errorf("logbook.Update: trip %d: %w", id, domain.ErrNotFound)
	}
	if err := b.validate(candidate); err != nil {
		return domain.Trip{}, fmt.Errorf("logbook.Update: %w", err)
	}

	old := b.trips[i]
	err := b.ledger.Reconcile(old.VehicleID, old.TollAmount(), candidate.VehicleID, candidate.TollAmount())
	if err != nil {
		return domain.Trip{}, fmt.Errorf("logbook.Update: %w", err)
	}

	trip := candidate.Clone()
	trip.ID = old.ID
	trip.Distance = trip.FinalKM - trip.InitialKM
	b.trips[i] = trip

	return trip.Clone(), nil
}

// Delete removes a trip permanently, refunding any toll charge it carried
// (clamped at 0). Returns domain.ErrNotFound if no active trip has that ID;
// a second delete of the same ID therefore fails without touching the ledger.
func (b *Logbook) Delete(id int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.indexOf(id)
	if i < 0 {
		return fmt.Errorf("logbook.Delete: trip %d: %w", id, domain.ErrNotFound)
	}

	if amt := b.trips[i].TollAmount(); amt > 0 {
		b.ledger.Refund(b.trips[i].VehicleID, amt)
	}
	b.trips = append(b.trips[:i], b.trips[i+1:]...)
	return nil
}

// Filter is a conjunction of optional trip predicates.
// Zero values mean "no constraint" for their field.
type Filter struct {
	VehicleID string          // exact match on vehicle ID
	Type      domain.TripType // exact match on trip type
	Driver    string          // case-insensitive substring of driver name
}

// Query returns the active trips matching every set predicate, ordered by
// departure timestamp descending (most recent first), ties broken by
// insertion order. The result is a snapshot: later mutations of the logbook
// do not affect it.
func (b *Logbook) Query(f Filter) []domain.Trip {
	b.mu.Lock()
	defer b.mu.Unlock()

	driver := strings.ToLower(f.Driver)
	out := make([]domain.Trip, 0, len(b.trips))
	for _, t := range b.trips {
		if f.VehicleID != "" && t.VehicleID != f.VehicleID {
			continue
		}
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		if driver != "" && !strings.Contains(strings.ToLower(t.DriverName), driver) {
			continue
		}
		out = append(out, t.Clone())
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DepartureAt.After(out[j].DepartureAt)
	})
	return out
}

// Statistics aggregates all active trips: one VehicleStats per fleet vehicle
// (catalog order, present even with zero trips) and one DriverStats per
// distinct driver name.
//
// Drivers are grouped by name exactly as entered; names differing only in
// casing or spacing form separate groups. Driver order follows first
// appearance in the store.
func (b *Logbook) Statistics() domain.Statistics {
	b.mu.Lock()
	defer b.mu.Unlock()

	stats := domain.Statistics{
		Vehicles: make([]domain.VehicleStats, 0, len(b.fleet)),
		Drivers:  []domain.DriverStats{},
	}

	for _, v := range b.fleet {
		vs := domain.VehicleStats{
			VehicleID:   v.ID,
			Name:        v.Name,
			Plate:       v.Plate,
			TollCharged: b.ledger.Charged(v.ID),
			TollBalance: b.ledger.Balance(v.ID),
		}
		if v.TollLimit > 0 {
			vs.TollRate = float64(vs.TollCharged) / float64(v.TollLimit) * 100
		}
		vs.LowBalance = vs.TollBalance < lowBalanceThreshold
		for _, t := range b.trips {
			if t.VehicleID == v.ID {
				vs.Trips++
				vs.Distance += t.Distance
			}
		}
		stats.Vehicles = append(stats.Vehicles, vs)
	}

	index := make(map[string]int)
	for _, t := range b.trips {
		i, ok := index[t.DriverName]
		if !ok {
			i = len(stats.Drivers)
			index[t.DriverName] = i
			stats.Drivers = append(stats.Drivers, domain.DriverStats{
				Name:         t.DriverName,
				Registration: t.DriverRegistration,
			})
		}
		stats.Drivers[i].Trips++
		stats.Drivers[i].Distance += t.Distance
	}

	return stats
}

// Snapshot returns every active trip (insertion order) plus the current
// toll balance per fleet vehicle, as one consistent read.
func (b *Logbook) Snapshot() domain.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := domain.Snapshot{
		Trips:    make([]domain.Trip, 0, len(b.trips)),
		Balances: make(map[string]int, len(b.fleet)),
	}
	for _, t := range b.trips {
		s.Trips = append(s.Trips, t.Clone())
	}
	for _, v := range b.fleet {
		s.Balances[v.ID] = b.ledger.Balance(v.ID)
	}
	return s
}

// indexOf returns the position of the trip with the given ID, or -1.
// Callers must hold b.mu.
func (b *Logbook) indexOf(id int) int {
	for i, t := range b.trips {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// validate enforces the field rules shared by Create and Update.
// Callers must hold b.mu (the vehicle lookup reads the fleet index).
//   - VehicleID must reference a fleet vehicle.
//   - DriverName, DriverRegistration, and Purpose must be non-empty
//     (whitespace-only is rejected).
//   - Type must be professional or private.
//   - ReturnAt must not precede DepartureAt.
//   - Odometer readings must be non-negative with FinalKM >= InitialKM.
//   - A toll ticket, when present, must have Amount > 0 and a valid Direction.
func (b *Logbook) validate(t domain.Trip) error {
	if _, ok := b.byID[t.VehicleID]; !ok {
		return fmt.Errorf("%w: unknown vehicle %q", domain.ErrValidation, t.VehicleID)
	}
	if strings.TrimSpace(t.DriverName) == "" {
		return fmt.Errorf("%w: driver name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(t.DriverRegistration) == "" {
		return fmt.Errorf("%w: driver registration is required", domain.ErrValidation)
	}
	if !t.Type.Valid() {
		return fmt.Errorf("%w: trip type must be professional or private", domain.ErrValidation)
	}
	if strings.TrimSpace(t.Purpose) == "" {
		return fmt.Errorf("%w: purpose is required", domain.ErrValidation)
	}
	if t.ReturnAt.Before(t.DepartureAt) {
		return domain.ErrTemporalOrder
	}
	if t.InitialKM < 0 {
		return fmt.Errorf("%w: initial odometer must not be negative", domain.ErrValidation)
	}
	if t.FinalKM < t.InitialKM {
		return domain.ErrOdometerOrder
	}
	if t.Toll != nil {
		if t.Toll.Amount <= 0 {
			return domain.ErrTollAmount
		}
		if !t.Toll.Direction.Valid() {
			return fmt.Errorf("%w: unknown toll direction %q", domain.ErrValidation, t.Toll.Direction)
		}
	}
	return nil
}
