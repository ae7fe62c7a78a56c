// Package domain contains the core data types for the Carnet de Bord
// application. This package has zero external dependencies and is imported
// by every other internal package (logbook, handler, auth).
package domain

// Vehicle is one entry in the fixed fleet catalog.
// Vehicles are immutable for the process lifetime; the fleet is injected
// into the logbook at construction, never looked up from a global.
type Vehicle struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Plate     string `json:"plate"`
	TollLimit int    `json:"toll_limit"` // toll-card limit in F CFA
}

// DefaultFleet returns the two-vehicle fleet of the Centre National des
// Archives. Each call returns a fresh slice so callers cannot mutate a
// shared catalog.
func DefaultFleet() []Vehicle {
	return []Vehicle{
		{ID: "ford", Name: "Ford (Fourgon)", Plate: "AA 696 ET", TollLimit: 30000},
		{ID: "renault", Name: "Renault Logan (Berline)", Plate: "DK 0953 BK", TollLimit: 30000},
	}
}
