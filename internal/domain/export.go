package domain

// ExportRow is a single row in the full-data export: one row per active
// trip, with the vehicle's display name and plate denormalized in so the
// file stands alone. Timestamps are pre-formatted as "02/01/2006 15:04",
// the format the paper logbook used.
type ExportRow struct {
	DepartureAt        string `json:"departure_at"`
	ReturnAt           string `json:"return_at"`
	VehicleName        string `json:"vehicle_name"`
	VehiclePlate       string `json:"vehicle_plate"`
	DriverName         string `json:"driver_name"`
	DriverRegistration string `json:"driver_registration"`
	Type               string `json:"type"`
	Purpose            string `json:"purpose"`
	Itinerary          string `json:"itinerary"`
	InitialKM          int    `json:"initial_km"`
	FinalKM            int    `json:"final_km"`
	Distance           int    `json:"distance"`
	UsedToll           bool   `json:"used_toll"`
	TollAmount         int    `json:"toll_amount"`
	TollDirection      string `json:"toll_direction"` // empty when UsedToll is false
}
