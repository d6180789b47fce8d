package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Folio-25-26J-118/portfolio-backend/internal/kv"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/session"
)

func setupSessionAPI(t *testing.T, password string) (*gin.Engine, *session.Gate) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	gate := session.NewGate(kv.NewRedisStore(client), 30*time.Minute, zap.NewNop())

	hash := ""
	if password != "" {
		raw, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.NoError(t, err)
		hash = string(raw)
	}

	router := gin.New()
	Register(router.Group("/api/v1"), gate, hash, zap.NewNop())
	return router, gate
}

func postLogin(t *testing.T, router *gin.Engine, password string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(loginReq{Password: password})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/session", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestLogin_CorrectPasswordOpensGate(t *testing.T) {
	router, gate := setupSessionAPI(t, "hunter2")

	rr := postLogin(t, router, "hunter2")
	require.Equal(t, http.StatusOK, rr.Code)

	ok, err := gate.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLogin_WrongPasswordRejected(t *testing.T) {
	router, gate := setupSessionAPI(t, "hunter2")

	rr := postLogin(t, router, "wrong")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	ok, err := gate.Check(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLogin_DisabledWithoutHash(t *testing.T) {
	router, _ := setupSessionAPI(t, "")

	rr := postLogin(t, router, "anything")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestLogin_RateLimited(t *testing.T) {
	router, _ := setupSessionAPI(t, "hunter2")

	limited := false
	for i := 0; i < 10; i++ {
		rr := postLogin(t, router, "wrong")
		if rr.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	assert.True(t, limited)
}

func TestLogout_ClosesGate(t *testing.T) {
	router, gate := setupSessionAPI(t, "hunter2")
	ctx := context.Background()

	require.NoError(t, gate.Open(ctx))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/session", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	ok, err := gate.Check(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
