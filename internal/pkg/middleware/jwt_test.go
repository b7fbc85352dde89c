package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/prasetya/catatan/internal/pkg/jwt"
	"github.com/prasetya/catatan/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key",
		Expiration: 60,
		Issuer:     "catatan-test",
	}
}

func runMiddleware(t *testing.T, cfg models.JWTConfig, authHeader string) (*httptest.ResponseRecorder, bool, uuid.UUID) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	var gotUserID uuid.UUID
	next := func(c echo.Context) error {
		nextCalled = true
		id, ok := UserIDFromContext(c)
		require.True(t, ok)
		gotUserID = id
		return c.NoContent(http.StatusOK)
	}

	err := JWTAuthMiddleware(cfg)(next)(c)
	require.NoError(t, err)

	return rec, nextCalled, gotUserID
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	token, _, err := jwtpkg.GenerateToken(userID, "alice@example.com", cfg)
	require.NoError(t, err)

	rec, nextCalled, gotUserID := runMiddleware(t, cfg, "Bearer "+token)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotUserID)
}

func TestJWTAuthMiddleware_Failures(t *testing.T) {
	cfg := testJWTConfig()

	validToken, _, err := jwtpkg.GenerateToken(uuid.New(), "alice@example.com", cfg)
	require.NoError(t, err)

	expiredCfg := cfg
	expiredCfg.Expiration = -1
	expiredToken, _, err := jwtpkg.GenerateToken(uuid.New(), "alice@example.com", expiredCfg)
	require.NoError(t, err)

	wrongSecretCfg := cfg
	wrongSecretCfg.Secret = "another-secret"
	foreignToken, _, err := jwtpkg.GenerateToken(uuid.New(), "alice@example.com", wrongSecretCfg)
	require.NoError(t, err)

	testCases := []struct {
		name       string
		authHeader string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"malformed header", "Bearer"},
		{"garbage token", "Bearer not.a.token"},
		{"expired token", "Bearer " + expiredToken},
		{"wrong signature", "Bearer " + foreignToken},
		{"too many parts", "Bearer " + validToken + " extra"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec, nextCalled, _ := runMiddleware(t, cfg, tc.authHeader)

			assert.False(t, nextCalled)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "UNAUTHORIZED", body["code"])
		})
	}
}
