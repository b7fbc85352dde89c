package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	err error
}

func (s stubChecker) CheckHealth(ctx context.Context) error {
	return s.err
}

func TestNewPingHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewPingHandler("catatan")
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body PingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "catatan", body.Service)
	assert.Equal(t, "ok", body.Status)
}

func TestReadiness(t *testing.T) {
	t.Run("all checkers healthy", func(t *testing.T) {
		e := echo.New()
		RegisterHealthEndpoints(e, "catatan", stubChecker{}, stubChecker{})

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("one checker unhealthy", func(t *testing.T) {
		e := echo.New()
		RegisterHealthEndpoints(e, "catatan", stubChecker{}, stubChecker{err: errors.New("down")})

		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("liveness ignores checkers", func(t *testing.T) {
		e := echo.New()
		RegisterHealthEndpoints(e, "catatan", stubChecker{err: errors.New("down")})

		req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
