package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachableRedis returns a client whose commands always fail, for
// exercising the limiter's degraded paths without a redis server.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func setupLimitedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	limiter := NewWriteRateLimiter(unreachableRedis())
	router.Use(limiter.Middleware())
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestRateLimiterToleratesRedisOutageOnWrites(t *testing.T) {
	router := setupLimitedRouter()

	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// A failed quota check must never block the request.
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rate limit check failed", w.Header().Get("X-RateLimit-Error"))
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimiterSkipsQuotaHeadersWhenUnavailable(t *testing.T) {
	router := setupLimitedRouter()

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Reads pass through; without a reachable counter no quota is reported.
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Remaining"))
	assert.Empty(t, w.Header().Get("X-RateLimit-Error"))
}
