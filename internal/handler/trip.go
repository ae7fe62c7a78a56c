package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cna-archives/carnet-bord/internal/domain"
	"github.com/cna-archives/carnet-bord/internal/logbook"
)

// TripRequest is the body of POST /trips and PUT /trips/{id}. It mirrors the
// entry form: the toll fields ride alongside a used_toll flag, and the
// mapping into domain.Trip turns them into the tagged TollTicket variant.
type TripRequest struct {
	VehicleID          string    `json:"vehicle_id"`
	DriverName         string    `json:"driver_name"`
	DriverRegistration string    `json:"driver_registration"`
	DepartureAt        time.Time `json:"departure_at"`
	ReturnAt           time.Time `json:"return_at"`
	InitialKM          int       `json:"initial_km"`
	FinalKM            int       `json:"final_km"`
	Type               string    `json:"type"`
	Purpose            string    `json:"purpose"`
	Itinerary          string    `json:"itinerary"`
	UsedToll           bool      `json:"used_toll"`
	TollAmount         int       `json:"toll_amount"`
	TollDirection      string    `json:"toll_direction"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	candidate, err := decodeTrip(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	created, err := s.logbook.Create(candidate)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListTrips handles GET /trips.
// Optional query parameters narrow the result: ?vehicle= (exact vehicle ID),
// ?type= (professional|private), ?driver= (case-insensitive name substring).
// Trips come back ordered by departure descending.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	f := logbook.Filter{
		VehicleID: r.URL.Query().Get("vehicle"),
		Type:      domain.TripType(r.URL.Query().Get("type")),
		Driver:    r.URL.Query().Get("driver"),
	}
	writeJSON(w, http.StatusOK, s.logbook.Query(f))
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	trip, err := s.logbook.Get(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// UpdateTrip handles PUT /trips/{id}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}
	candidate, err := decodeTrip(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	updated, err := s.logbook.Update(id, candidate)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteTrip handles DELETE /trips/{id}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	if err := s.logbook.Delete(id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- mapping helpers -------------------------------------------------------

// tripID parses the {id} path parameter. On a malformed ID it writes a 400
// and returns ok=false.
func tripID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, "bad_request", "trip id must be a positive integer")
		return 0, false
	}
	return id, true
}

// decodeTrip reads a TripRequest body and converts it into a domain.Trip.
func decodeTrip(r *http.Request) (domain.Trip, error) {
	var req TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return domain.Trip{}, fmt.Errorf("%w: request body must be valid JSON", domain.ErrValidation)
	}
	return requestToTrip(req)
}

// requestToTrip converts the flag-plus-fields form shape into the tagged
// toll variant. A toll amount without the used_toll flag (or vice versa) is
// rejected here, so the core never sees the ambiguous combination.
// An omitted direction on a tolled trip defaults to outbound, matching the
// entry form's preselected value.
func requestToTrip(req TripRequest) (domain.Trip, error) {
	trip := domain.Trip{
		VehicleID:          req.VehicleID,
		DriverName:         req.DriverName,
		DriverRegistration: req.DriverRegistration,
		DepartureAt:        req.DepartureAt,
		ReturnAt:           req.ReturnAt,
		InitialKM:          req.InitialKM,
		FinalKM:            req.FinalKM,
		Type:               domain.TripType(req.Type),
		Purpose:            req.Purpose,
		Itinerary:          req.Itinerary,
	}

	if !req.UsedToll {
		if req.TollAmount != 0 {
			return domain.Trip{}, domain.ErrTollAmount
		}
		return trip, nil
	}

	direction := domain.TollDirection(req.TollDirection)
	if req.TollDirection == "" {
		direction = domain.TollOutbound
	}
	trip.Toll = &domain.TollTicket{Amount: req.TollAmount, Direction: direction}
	return trip, nil
}
