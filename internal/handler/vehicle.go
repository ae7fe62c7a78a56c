package handler

import "net/http"

// VehicleResponse is one entry of GET /vehicles: the static catalog fields
// plus the live toll-card balance.
type VehicleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Plate       string `json:"plate"`
	TollLimit   int    `json:"toll_limit"`
	TollBalance int    `json:"toll_balance"`
}

// ListVehicles handles GET /vehicles.
// Returns the fleet catalog in declaration order.
func (s *Server) ListVehicles(w http.ResponseWriter, r *http.Request) {
	balances := s.logbook.Snapshot().Balances

	vehicles := s.logbook.Vehicles()
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, VehicleResponse{
			ID:          v.ID,
			Name:        v.Name,
			Plate:       v.Plate,
			TollLimit:   v.TollLimit,
			TollBalance: balances[v.ID],
		})
	}
	writeJSON(w, http.StatusOK, out)
}
