package handler_test

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cna-archives/carnet-bord/internal/domain"
)

// exportLogbook returns a mock with one tolled trip on the ford.
func exportLogbook() *mockLogbook {
	return &mockLogbook{
		vehicles: func() []domain.Vehicle { return domain.DefaultFleet() },
		snapshot: func() domain.Snapshot {
			return domain.Snapshot{
				Trips:    []domain.Trip{tripFixture()},
				Balances: map[string]int{"ford": 28000, "renault": 30000},
			}
		},
	}
}

func TestGetExport_JSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(exportLogbook()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var rows []domain.ExportRow
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, "11/03/2024 08:30", row.DepartureAt)
	assert.Equal(t, "Ford (Fourgon)", row.VehicleName)
	assert.Equal(t, "AA 696 ET", row.VehiclePlate)
	assert.Equal(t, 120, row.Distance)
	assert.True(t, row.UsedToll)
	assert.Equal(t, 2000, row.TollAmount)
	assert.Equal(t, "round_trip", row.TollDirection)
}

func TestGetExport_CSV(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/export?format=csv", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(exportLogbook()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "carnet_de_bord_")

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2) // header + one trip

	header := records[0]
	assert.Equal(t, "departure_at", header[0])
	assert.Equal(t, "toll_direction", header[len(header)-1])

	row := records[1]
	require.Len(t, row, len(header))
	assert.Equal(t, "11/03/2024 08:30", row[0])
	assert.Equal(t, "Jean Diop", row[4])
	assert.Equal(t, "120", row[11])
	assert.Equal(t, "true", row[12])
	assert.Equal(t, "2000", row[13])
}

func TestGetExport_CSV_UntolledTripHasEmptyDirection(t *testing.T) {
	lb := exportLogbook()
	lb.snapshot = func() domain.Snapshot {
		trip := tripFixture()
		trip.Toll = nil
		return domain.Snapshot{Trips: []domain.Trip{trip}, Balances: map[string]int{}}
	}

	req := httptest.NewRequest(http.MethodGet, "/export?format=csv", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(lb).ServeHTTP(rec, req)

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	row := records[1]
	assert.Equal(t, "false", row[12])
	assert.Equal(t, "0", row[13])
	assert.Equal(t, "", row[14])
}
