package delivery

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret, subject string, expiry time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newAuthRouter(secret string) *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthMiddleware(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString("userID")})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	const secret = "test-secret"

	tests := []struct {
		name     string
		header   string
		wantCode int
	}{
		{"Missing Header", "", http.StatusUnauthorized},
		{"Malformed Header", "nonsense", http.StatusUnauthorized},
		{"Wrong Scheme", "Basic abc", http.StatusUnauthorized},
		{"Garbage Token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"Wrong Secret", "Bearer " + signToken(t, "other-secret", "alice", time.Hour), http.StatusUnauthorized},
		{"Expired Token", "Bearer " + signToken(t, secret, "alice", -time.Hour), http.StatusUnauthorized},
		{"Empty Subject", "Bearer " + signToken(t, secret, "", time.Hour), http.StatusUnauthorized},
		{"Valid Token", "Bearer " + signToken(t, secret, "alice", time.Hour), http.StatusOK},
	}

	r := newAuthRouter(secret)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestAuthMiddleware_ExposesUserID(t *testing.T) {
	const secret = "test-secret"
	r := newAuthRouter(secret)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, secret, "alice", time.Hour))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":"alice"`)
}
