package domain

// VehicleStats aggregates the active trips of one vehicle, plus the current
// state of its toll card.
type VehicleStats struct {
	VehicleID   string  `json:"vehicle_id"`
	Name        string  `json:"name"`
	Plate       string  `json:"plate"`
	Trips       int     `json:"trips"`
	Distance    int     `json:"distance"` // km
	TollCharged int     `json:"toll_charged"`
	TollBalance int     `json:"toll_balance"`
	TollRate    float64 `json:"toll_rate"`    // charged / limit, in percent
	LowBalance  bool    `json:"low_balance"`  // balance below the warning threshold
}

// DriverStats aggregates the active trips of one driver.
// Drivers are grouped by name exactly as entered on the trip form — no
// trimming or case folding — so "Jean Diop" and "jean diop" are distinct.
// Registration is taken from the driver's earliest recorded trip.
type DriverStats struct {
	Name         string `json:"name"`
	Registration string `json:"registration"`
	Trips        int    `json:"trips"`
	Distance     int    `json:"distance"`
}

// Statistics is the full dashboard aggregation: one entry per fleet vehicle
// (in catalog order, present even with zero trips) and one per driver seen.
type Statistics struct {
	Vehicles []VehicleStats `json:"vehicles"`
	Drivers  []DriverStats  `json:"drivers"`
}

// Snapshot is a consistent read of the whole logbook: every active trip
// plus the current toll balance per vehicle. The export and dashboard
// collaborators consume it; mutating the logbook afterwards does not
// affect a snapshot already taken.
type Snapshot struct {
	Trips    []Trip         `json:"trips"`
	Balances map[string]int `json:"balances"`
}
