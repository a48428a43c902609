package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"xgrowth-backend/internal/api/handlers"
	"xgrowth-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

func healthRouter(checks ...handlers.HealthCheck) *testutils.HTTPTestSuite {
	h := handlers.NewHealthHandler(checks...)
	s := testutils.SetupHTTPTest()
	s.Router.GET("/health", h.Health)
	s.Router.GET("/health/ready", h.Ready)
	s.Router.GET("/health/live", h.Live)
	return s
}

func TestHealthAllChecksPass(t *testing.T) {
	s := healthRouter(
		handlers.HealthCheck{Name: "database", Check: func(context.Context) error { return nil }},
		handlers.HealthCheck{Name: "events", Check: func(context.Context) error { return nil }},
	)

	var resp handlers.HealthResponse
	testutils.AssertJSONResponse(t, s.MakeRequest(http.MethodGet, "/health", nil), http.StatusOK, &resp)

	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, map[string]string{"database": "ok", "events": "ok"}, resp.Services)
}

func TestReadyReportsFailingCheck(t *testing.T) {
	s := healthRouter(
		handlers.HealthCheck{Name: "database", Check: func(context.Context) error { return nil }},
		handlers.HealthCheck{Name: "events", Check: func(context.Context) error { return errors.New("circuit breaker is open") }},
	)

	var resp handlers.HealthResponse
	testutils.AssertJSONResponse(t, s.MakeRequest(http.MethodGet, "/health/ready", nil), http.StatusServiceUnavailable, &resp)

	assert.Equal(t, "not ready", resp.Status)
	assert.Equal(t, "ok", resp.Services["database"])
	assert.Contains(t, resp.Services["events"], "circuit breaker is open")
}

func TestLiveIgnoresChecks(t *testing.T) {
	s := healthRouter(handlers.HealthCheck{Name: "database", Check: func(context.Context) error { return errors.New("down") }})

	rec := s.MakeRequest(http.MethodGet, "/health/live", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
