package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, key []byte, expires time.Time) string {
	t.Helper()
	claims := &Claims{
		Username: "admin",
		UserHash: UserHashFromUsername("admin", key),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func runJWT(key []byte, authHeader string) (int, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWT(key)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	if err != nil {
		if he, ok := err.(*echo.HTTPError); ok {
			return he.Code, err
		}
		return http.StatusInternalServerError, err
	}
	return rec.Code, nil
}

func TestJWTValidToken(t *testing.T) {
	key := []byte("test-key")
	code, err := runJWT(key, signedToken(t, key, time.Now().Add(time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
}

func TestJWTMissingHeader(t *testing.T) {
	code, err := runJWT([]byte("test-key"), "")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestJWTWrongKey(t *testing.T) {
	code, err := runJWT([]byte("test-key"), signedToken(t, []byte("other-key"), time.Now().Add(time.Hour)))
	require.Error(t, err)
	assert.NotEqual(t, http.StatusOK, code)
}

func TestJWTExpiredToken(t *testing.T) {
	key := []byte("test-key")
	code, err := runJWT(key, signedToken(t, key, time.Now().Add(-time.Hour)))
	require.Error(t, err)
	assert.NotEqual(t, http.StatusOK, code)
}

func TestUserHashDeterministic(t *testing.T) {
	key := []byte("test-key")
	assert.Equal(t, UserHashFromUsername("Admin ", key), UserHashFromUsername("admin", key))
	assert.NotEqual(t, UserHashFromUsername("admin", key), UserHashFromUsername("admin", []byte("other")))
}
