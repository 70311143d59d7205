package middleware

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

var secret = []byte("test-secret")

func sign(t *testing.T, key []byte, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func valid(t *testing.T) string {
	return sign(t, secret, jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "guest-1",
		"name": "Asha",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
}

func router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", JwtAuthMiddleware(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.GetString("identity"), "name": c.GetString("name")})
	})
	return r
}

func get(r http.Handler, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBearerHeader(t *testing.T) {
	w := get(router(), "/me", "Bearer "+valid(t))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"guest-1","name":"Asha"}`, w.Body.String())
}

func TestQueryToken(t *testing.T) {
	w := get(router(), "/me?token="+valid(t), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRejectedTokens(t *testing.T) {
	r := router()
	cases := map[string]string{
		"missing": "",
		"scheme":  "Basic " + valid(t),
		"expired": "Bearer " + sign(t, secret, jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "guest-1", "exp": time.Now().Add(-time.Minute).Unix(),
		}),
		"no exp": "Bearer " + sign(t, secret, jwt.SigningMethodHS256, jwt.MapClaims{"sub": "guest-1"}),
		"wrong key": "Bearer " + sign(t, []byte("other"), jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "guest-1", "exp": time.Now().Add(time.Hour).Unix(),
		}),
		"wrong alg": "Bearer " + sign(t, secret, jwt.SigningMethodHS512, jwt.MapClaims{
			"sub": "guest-1", "exp": time.Now().Add(time.Hour).Unix(),
		}),
		"no subject": "Bearer " + sign(t, secret, jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		}),
	}
	for name, header := range cases {
		w := get(r, "/me", header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
	}
}
