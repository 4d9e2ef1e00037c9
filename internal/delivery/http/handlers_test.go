package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	delivery "github.com/Disha-01-alt/PollutionBackend/internal/delivery/http"
	"github.com/Disha-01-alt/PollutionBackend/internal/domain"
	"github.com/Disha-01-alt/PollutionBackend/internal/generator"
	"github.com/Disha-01-alt/PollutionBackend/internal/observability"
	"github.com/Disha-01-alt/PollutionBackend/internal/repository/file"
	"github.com/Disha-01-alt/PollutionBackend/internal/service"
)

func writeDatasetFile(t *testing.T) string {
	t.Helper()

	data, err := json.Marshal(generator.BuildDataset())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "pollution_data.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func newTestApp(t *testing.T, datasetPath string) *fiber.App {
	t.Helper()

	metrics := observability.NewMetricsForTesting()
	svc := service.NewPollutionService(file.NewRepository(datasetPath), metrics)

	app := fiber.New()
	delivery.SetupRoutes(app, svc, metrics)
	return app
}

func doGet(t *testing.T, app *fiber.App, target string) *http.Response {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()

	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t, writeDatasetFile(t))

	resp := doGet(t, app, "/api/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "API is operational", body["message"])
}

func TestRootReturnsAPIMetadata(t *testing.T) {
	app := newTestApp(t, writeDatasetFile(t))

	for _, target := range []string{"/", "/api"} {
		resp := doGet(t, app, target)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Name      string `json:"name"`
			Version   string `json:"version"`
			Endpoints []struct {
				Path string `json:"path"`
			} `json:"endpoints"`
		}
		decodeBody(t, resp, &body)

		assert.Equal(t, "EcoMonitor API", body.Name)
		assert.Equal(t, "1.0.0", body.Version)
		assert.Len(t, body.Endpoints, 3)
	}
}

func TestGetPollution_Unfiltered(t *testing.T) {
	app := newTestApp(t, writeDatasetFile(t))

	resp := doGet(t, app, "/api/pollution")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body domain.PollutionResponse
	decodeBody(t, resp, &body)

	assert.Len(t, body.Data, 30)
	assert.Equal(t, domain.Cities, body.Cities)
	assert.Equal(t, domain.PollutionTypes, body.PollutionTypes)
}

func TestGetPollution_CityAndTypeFilter(t *testing.T) {
	app := newTestApp(t, writeDatasetFile(t))

	resp := doGet(t, app, "/api/pollution?city=Delhi&type=water")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body domain.PollutionResponse
	decodeBody(t, resp, &body)

	require.Len(t, body.Data, 1)
	rec := body.Data[0]
	assert.Equal(t, "Delhi", rec.City)
	assert.Equal(t, "water", rec.Type)
	assert.Equal(t, "Very Poor", rec.Status)
	require.NotNil(t, rec.AQI)
	assert.Equal(t, 90.0, *rec.AQI)
	assert.Nil(t, rec.ContaminationLevel)
	assert.Nil(t, rec.PollutionIndex)
}

func TestGetPollution_UnknownCityReturnsEmptyData(t *testing.T) {
	app := newTestApp(t, writeDatasetFile(t))

	resp := doGet(t, app, "/api/pollution?city=Atlantis")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body domain.PollutionResponse
	decodeBody(t, resp, &body)

	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Data)
	assert.Equal(t, domain.Cities, body.Cities)
}

func TestGetCities(t *testing.T) {
	app := newTestApp(t, writeDatasetFile(t))

	resp := doGet(t, app, "/api/cities")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var cities []string
	decodeBody(t, resp, &cities)
	assert.Equal(t, domain.Cities, cities)
}

func TestGetPollutionTypes(t *testing.T) {
	app := newTestApp(t, writeDatasetFile(t))

	resp := doGet(t, app, "/api/pollution-types")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var types []string
	decodeBody(t, resp, &types)
	assert.Equal(t, []string{"water", "soil", "plastic"}, types)
}

func TestMissingDatasetDegradesToEmptyResponses(t *testing.T) {
	app := newTestApp(t, filepath.Join(t.TempDir(), "does_not_exist.json"))

	resp := doGet(t, app, "/api/pollution")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body domain.PollutionResponse
	decodeBody(t, resp, &body)
	assert.Empty(t, body.Data)
	assert.Empty(t, body.Cities)
	assert.Empty(t, body.PollutionTypes)

	resp = doGet(t, app, "/api/cities")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var cities []string
	decodeBody(t, resp, &cities)
	assert.Empty(t, cities)

	resp = doGet(t, app, "/api/pollution-types")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var types []string
	decodeBody(t, resp, &types)
	assert.Empty(t, types)
}
