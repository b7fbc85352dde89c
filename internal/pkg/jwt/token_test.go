package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/prasetya/catatan/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key-for-jwt-signing",
		Expiration: 7 * 24 * 60, // 7 days
		Issuer:     "catatan-test",
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name   string
		userID uuid.UUID
		email  string
	}{
		{
			name:   "Valid token generation",
			userID: uuid.New(),
			email:  "alice@example.com",
		},
		{
			name:   "Empty email",
			userID: uuid.New(),
			email:  "",
		},
		{
			name:   "Zero UUID",
			userID: uuid.UUID{},
			email:  "alice@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := getTestConfig()
			tokenString, expiresAt, err := GenerateToken(tt.userID, tt.email, cfg)

			assert.NoError(t, err)
			assert.NotEmpty(t, tokenString)
			assert.Greater(t, expiresAt, time.Now().Unix())

			// Verify token structure
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				return []byte(cfg.Secret), nil
			})
			require.NoError(t, err)
			require.True(t, token.Valid)

			claims, ok := token.Claims.(jwt.MapClaims)
			require.True(t, ok)

			assert.Equal(t, tt.userID.String(), claims["user_id"])
			assert.Equal(t, tt.email, claims["email"])
			assert.Equal(t, cfg.Issuer, claims["iss"])
			assert.Equal(t, float64(expiresAt), claims["exp"])
		})
	}
}

func TestGenerateToken_ExpirationTime(t *testing.T) {
	cfg := getTestConfig()

	beforeGeneration := time.Now()
	tokenString, expiresAt, err := GenerateToken(uuid.New(), "alice@example.com", cfg)
	afterGeneration := time.Now()

	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	// Verify expiration time is approximately 7 days from now
	expectedMin := beforeGeneration.Add(7 * 24 * time.Hour).Unix()
	expectedMax := afterGeneration.Add(7 * 24 * time.Hour).Unix()

	assert.GreaterOrEqual(t, expiresAt, expectedMin)
	assert.LessOrEqual(t, expiresAt, expectedMax)
}

func TestValidateToken(t *testing.T) {
	cfg := getTestConfig()
	userID := uuid.New()
	email := "alice@example.com"

	// Generate a valid token
	validToken, _, err := GenerateToken(userID, email, cfg)
	require.NoError(t, err)

	tests := []struct {
		name        string
		tokenString string
		secret      string
		expectError bool
		setupToken  func() string
	}{
		{
			name:        "Valid token",
			tokenString: validToken,
			secret:      cfg.Secret,
			expectError: false,
		},
		{
			name:        "Invalid secret",
			tokenString: validToken,
			secret:      "wrong-secret",
			expectError: true,
		},
		{
			name:        "Malformed token",
			tokenString: "invalid.token.string",
			secret:      cfg.Secret,
			expectError: true,
		},
		{
			name:        "Empty token",
			tokenString: "",
			secret:      cfg.Secret,
			expectError: true,
		},
		{
			name: "Expired token",
			setupToken: func() string {
				expiredCfg := cfg
				expiredCfg.Expiration = -1 // expired one minute ago
				token, _, _ := GenerateToken(userID, email, expiredCfg)
				return token
			},
			secret:      cfg.Secret,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenToTest := tt.tokenString
			if tt.setupToken != nil {
				tokenToTest = tt.setupToken()
			}

			claims, err := ValidateToken(tokenToTest, tt.secret)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, claims)

				claimsMap := *claims
				assert.Equal(t, userID.String(), claimsMap["user_id"])
				assert.Equal(t, email, claimsMap["email"])
				assert.Equal(t, cfg.Issuer, claimsMap["iss"])
			}
		})
	}
}

func BenchmarkValidateToken(b *testing.B) {
	cfg := getTestConfig()

	tokenString, _, err := GenerateToken(uuid.New(), "alice@example.com", cfg)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ValidateToken(tokenString, cfg.Secret)
	}
}
