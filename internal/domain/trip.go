package domain

import "time"

// TripType classifies a trip as professional or private.
type TripType string

const (
	TripProfessional TripType = "professional"
	TripPrivate      TripType = "private"
)

// Valid reports whether t is one of the two known trip types.
func (t TripType) Valid() bool {
	return t == TripProfessional || t == TripPrivate
}

// TollDirection records which leg(s) of the trip passed through the toll.
type TollDirection string

const (
	TollOutbound  TollDirection = "outbound"
	TollReturn    TollDirection = "return"
	TollRoundTrip TollDirection = "round_trip"
)

// Valid reports whether d is one of the known toll directions.
func (d TollDirection) Valid() bool {
	return d == TollOutbound || d == TollReturn || d == TollRoundTrip
}

// TollTicket carries the toll payment recorded on a trip.
// Amount is always > 0 for a stored ticket; a trip without a toll has a
// nil *TollTicket rather than a zero-amount ticket, so the "0 vs empty"
// ambiguity cannot arise past the request-mapping boundary.
type TollTicket struct {
	Amount    int           `json:"amount"` // F CFA
	Direction TollDirection `json:"direction"`
}

// Trip represents one recorded vehicle usage from departure to return.
// ID is assigned sequentially by the logbook starting at 1 and is never
// reused, even after a delete — consumers must tolerate gaps.
// Distance is derived (FinalKM - InitialKM) and recomputed on every write.
type Trip struct {
	ID                 int         `json:"id"`
	VehicleID          string      `json:"vehicle_id"`
	DriverName         string      `json:"driver_name"`
	DriverRegistration string      `json:"driver_registration"`
	DepartureAt        time.Time   `json:"departure_at"`
	ReturnAt           time.Time   `json:"return_at"`
	InitialKM          int         `json:"initial_km"`
	FinalKM            int         `json:"final_km"`
	Distance           int         `json:"distance"`
	Type               TripType    `json:"type"`
	Purpose            string      `json:"purpose"`
	Itinerary          string      `json:"itinerary,omitempty"`
	Toll               *TollTicket `json:"toll,omitempty"` // nil when no toll was paid
}

// TollAmount returns the toll paid on the trip, or 0 when none was.
func (t Trip) TollAmount() int {
	if t.Toll == nil {
		return 0
	}
	return t.Toll.Amount
}

// Clone returns a deep copy of the trip.
// The logbook hands out clones so callers can never mutate stored state.
func (t Trip) Clone() Trip {
	cp := t
	if t.Toll != nil {
		ticket := *t.Toll
		cp.Toll = &ticket
	}
	return cp
}
