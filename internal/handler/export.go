// export.go implements GET /export: the full logbook as a flat table.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cna-archives/carnet-bord/internal/domain"
)

// exportTimeFormat matches the paper logbook's day-first timestamps.
const exportTimeFormat = "02/01/2006 15:04"

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"departure_at", "return_at", "vehicle_name", "vehicle_plate",
	"driver_name", "driver_registration", "type", "purpose", "itinerary",
	"initial_km", "final_km", "distance",
	"used_toll", "toll_amount", "toll_direction",
}

// GetExport handles GET /export.
// One row per active trip, vehicle name and plate denormalized in.
// Use ?format=csv to receive a downloadable CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	snap := s.logbook.Snapshot()

	vehicles := make(map[string]domain.Vehicle)
	for _, v := range s.logbook.Vehicles() {
		vehicles[v.ID] = v
	}

	rows := make([]domain.ExportRow, 0, len(snap.Trips))
	for _, t := range snap.Trips {
		rows = append(rows, tripToExportRow(t, vehicles[t.VehicleID]))
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, rows)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// writeCSV encodes rows as an attachment named after the export date.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck — bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, row := range rows {
		//nolint:errcheck
		cw.Write(exportRowToRecord(row))
	}
	cw.Flush()

	filename := fmt.Sprintf("carnet_de_bord_%s.csv", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// tripToExportRow flattens a trip, pulling in the vehicle's display fields.
func tripToExportRow(t domain.Trip, v domain.Vehicle) domain.ExportRow {
	row := domain.ExportRow{
		DepartureAt:        t.DepartureAt.Format(exportTimeFormat),
		ReturnAt:           t.ReturnAt.Format(exportTimeFormat),
		VehicleName:        v.Name,
		VehiclePlate:       v.Plate,
		DriverName:         t.DriverName,
		DriverRegistration: t.DriverRegistration,
		Type:               string(t.Type),
		Purpose:            t.Purpose,
		Itinerary:          t.Itinerary,
		InitialKM:          t.InitialKM,
		FinalKM:            t.FinalKM,
		Distance:           t.Distance,
	}
	if t.Toll != nil {
		row.UsedToll = true
		row.TollAmount = t.Toll.Amount
		row.TollDirection = string(t.Toll.Direction)
	}
	return row
}

// exportRowToRecord encodes an ExportRow as a flat string slice for the CSV writer.
func exportRowToRecord(r domain.ExportRow) []string {
	return []string{
		r.DepartureAt,
		r.ReturnAt,
		r.VehicleName,
		r.VehiclePlate,
		r.DriverName,
		r.DriverRegistration,
		r.Type,
		r.Purpose,
		r.Itinerary,
		strconv.Itoa(r.InitialKM),
		strconv.Itoa(r.FinalKM),
		strconv.Itoa(r.Distance),
		strconv.FormatBool(r.UsedToll),
		strconv.Itoa(r.TollAmount),
		r.TollDirection,
	}
}
