package handler

import "net/http"

// GetStatistics handles GET /stats.
// Returns the dashboard aggregation: per-vehicle trip counts, kilometres,
// and toll-card usage, plus per-driver totals.
func (s *Server) GetStatistics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.logbook.Statistics())
}
