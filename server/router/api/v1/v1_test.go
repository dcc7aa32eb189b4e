package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burnout-fit/burnout/internal/profile"
	"github.com/burnout-fit/burnout/store"
	"github.com/burnout-fit/burnout/store/db/sqlite"
)

func newTestService(t *testing.T) (*APIV1Service, *echo.Echo) {
	t.Helper()

	p := &profile.Profile{
		Mode:   "dev",
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "burnout_test.db"),
	}
	driver, err := sqlite.NewDB(p)
	require.NoError(t, err)
	t.Cleanup(func() { _ = driver.Close() })
	require.NoError(t, driver.Migrate(context.Background()))

	service := NewAPIV1Service(p, store.New(driver, p), nil)
	e := echo.New()
	service.RegisterRoutes(e)
	return service, e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateAndAggregateEntries(t *testing.T) {
	_, e := newTestService(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/owners/7/calories", `{"day":"2025-03-01","calories":1970,"burnout":400}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/v1/owners/7/water", `{"intake":"1200"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/v1/owners/7/activities", `{"activity":"yoga","status":"Enrolled","day":"2025-03-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/v1/owners/7/reviews", `{"comment":"solid"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/owners/7/insights", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp insightsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Cards, 12)
	assert.Equal(t, int64(1), resp.Cards[0].Data)
	require.NotNil(t, resp.WaterChart)
	assert.Len(t, resp.CalorieChart.Labels, 7)
}

func TestCreateEntryValidation(t *testing.T) {
	_, e := newTestService(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/owners/not-a-number/calories", `{"day":"2025-03-01"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/v1/owners/7/calories", `{"day":"01-03-2025"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/v1/owners/7/activities", `{"activity":"yoga","status":"Paused"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/v1/owners/7/water", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatUnavailableWithoutResponder(t *testing.T) {
	_, e := newTestService(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/chat", `{"message":"menu"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
