package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"teampro-backend/internal/api/handlers"
	"teampro-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error {
	return p.err
}

func healthRouter(t *testing.T, handler *handlers.HealthHandler) *testutils.HTTPTestSuite {
	t.Helper()
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/health", handler.Health)
	httpSuite.Router.GET("/health/ready", handler.Ready)
	httpSuite.Router.GET("/health/live", handler.Live)
	return httpSuite
}

func TestHealth(t *testing.T) {
	tdb := testutils.MustCreateTestDB(t)
	defer tdb.Cleanup()

	t.Run("Notifications disabled", func(t *testing.T) {
		httpSuite := healthRouter(t, handlers.NewHealthHandler(tdb.DB, nil))

		var res handlers.HealthResponse
		testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health", nil), http.StatusOK, &res)
		assert.Equal(t, "healthy", res.Status)
		assert.Equal(t, "healthy", res.Services["database"])
		assert.Equal(t, "disabled", res.Services["notifications"])
	})

	t.Run("Degraded notifications keep the service healthy", func(t *testing.T) {
		httpSuite := healthRouter(t, handlers.NewHealthHandler(tdb.DB, fakePinger{err: errors.New("connection refused")}))

		var res handlers.HealthResponse
		testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health", nil), http.StatusOK, &res)
		assert.Equal(t, "healthy", res.Status)
		assert.Equal(t, "degraded: connection refused", res.Services["notifications"])
	})

	t.Run("Ready and live", func(t *testing.T) {
		httpSuite := healthRouter(t, handlers.NewHealthHandler(tdb.DB, fakePinger{}))

		var ready map[string]interface{}
		testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil), http.StatusOK, &ready)
		assert.Equal(t, true, ready["ready"])
		services, ok := ready["services"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "healthy", services["notifications"])

		var live map[string]interface{}
		testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health/live", nil), http.StatusOK, &live)
		assert.Equal(t, true, live["alive"])
	})
}

func TestHealthDatabaseDown(t *testing.T) {
	tdb := testutils.MustCreateTestDB(t)
	tdb.Cleanup()

	httpSuite := healthRouter(t, handlers.NewHealthHandler(tdb.DB, nil))

	var res handlers.HealthResponse
	testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health", nil), http.StatusServiceUnavailable, &res)
	assert.Equal(t, "unhealthy", res.Status)
	assert.Contains(t, res.Services["database"], "error:")

	var ready map[string]interface{}
	testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil), http.StatusServiceUnavailable, &ready)
	assert.Equal(t, false, ready["ready"])
}
