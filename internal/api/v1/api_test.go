// api_test.go: Package api provides tests for API v1 endpoints.
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"birdcount-go/internal/conf"
	"birdcount-go/internal/dataset"
)

const testGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"id": "EST"}, "geometry": {"type": "Polygon", "coordinates": []}},
    {"type": "Feature", "properties": {"id": "RIV"}, "geometry": {"type": "Polygon", "coordinates": []}}
  ]
}`

func testRecords() []dataset.CountRecord {
	return []dataset.CountRecord{
		{Area: "ALL", Species: "Crow", Year: 2020, Month: "Jan", Date: "2020-01-12", Count: 4},
		{Area: "ALL", Species: "Crow", Year: 2020, Month: "Jan", Date: "2020-01-26", Count: 6},
		{Area: "ALL", Species: "Crow", Year: 2020, Month: "Jan", Date: "2020-01-31", Count: 10},
		{Area: "ALL", Species: "Crow", Year: 2021, Month: "Feb", Date: "2021-02-14", Count: 8},
		{Area: "EST", Species: "Crow", Year: 2020, Month: "Jan", Date: "2020-01-12", Count: 2},
		{Area: "RIV", Species: "Crow", Year: 2020, Month: "Jan", Date: "2020-01-12", Count: 1},
		{Area: "ALL", Species: "Bald Eagle", Year: 2020, Month: "Jan", Date: "2020-01-12", Count: 30},
	}
}

// setupTestController builds an echo instance and controller over a small
// in-memory dataset.
func setupTestController(t *testing.T) (*echo.Echo, *Controller) {
	t.Helper()

	areas := &dataset.AreaCollection{Raw: json.RawMessage(testGeoJSON), IDs: []string{"EST", "RIV"}}
	ds := dataset.New(testRecords(), areas)

	settings := &conf.Settings{}
	settings.WebServer.Port = "8080"
	settings.Map.Center.Latitude = 49.7
	settings.Map.Center.Longitude = -123.15
	settings.Map.Zoom = 12.5
	settings.Map.Style = "satellite-streets"

	e := echo.New()
	controller := New(e, ds, settings, nil)
	return e, controller
}

// doRequest invokes a handler directly with the given target URL.
func doRequest(t *testing.T, e *echo.Echo, handler echo.HandlerFunc, target string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, handler(c)
}

func TestGetSpecies(t *testing.T) {
	e, controller := setupTestController(t)

	rec, err := doRequest(t, e, controller.GetSpecies, "/api/v1/species")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var species []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &species))
	assert.Equal(t, []string{"Bald Eagle", "Crow"}, species)
}

func TestGetYears(t *testing.T) {
	e, controller := setupTestController(t)

	rec, err := doRequest(t, e, controller.GetYears, "/api/v1/years")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var years map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &years))
	assert.Equal(t, 2020, years["min_year"])
	assert.Equal(t, 2021, years["max_year"])
}

func TestGetHealth(t *testing.T) {
	e, controller := setupTestController(t)

	rec, err := doRequest(t, e, controller.GetHealth, "/api/v1/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var health map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, float64(7), health["records"])
}

func TestHandleErrorResponse(t *testing.T) {
	e, controller := setupTestController(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := controller.HandleError(c, assert.AnError, "something failed", http.StatusInternalServerError)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "something failed", resp.Message)
	assert.Len(t, resp.CorrelationID, 8)
}
