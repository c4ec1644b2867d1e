// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/add", rl.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func doPost(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/add", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_InMemory(t *testing.T) {
	t.Setenv("ENV", "development")

	t.Run("allows up to the limit then rejects", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(nil, 3, time.Minute)
		r := newLimitedRouter(rl)

		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusOK, doPost(r).Code)
		}
		assert.Equal(t, http.StatusTooManyRequests, doPost(r).Code)
	})

	t.Run("reset clears the counters", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(nil, 1, time.Minute)
		r := newLimitedRouter(rl)

		assert.Equal(t, http.StatusOK, doPost(r).Code)
		assert.Equal(t, http.StatusTooManyRequests, doPost(r).Code)

		rl.Reset()
		assert.Equal(t, http.StatusOK, doPost(r).Code)
	})
}

func TestRateLimiter_Redis(t *testing.T) {
	t.Setenv("ENV", "development")

	t.Run("counts attempts in redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer client.Close()

		rl := NewRateLimiterWithConfig(client, 2, time.Minute)
		r := newLimitedRouter(rl)

		assert.Equal(t, http.StatusOK, doPost(r).Code)
		assert.Equal(t, http.StatusOK, doPost(r).Code)
		assert.Equal(t, http.StatusTooManyRequests, doPost(r).Code)

		require.True(t, mr.Exists("ratelimit:10.0.0.1"))
	})

	t.Run("window expiry admits new attempts", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer client.Close()

		rl := NewRateLimiterWithConfig(client, 1, time.Minute)
		r := newLimitedRouter(rl)

		assert.Equal(t, http.StatusOK, doPost(r).Code)
		assert.Equal(t, http.StatusTooManyRequests, doPost(r).Code)

		mr.FastForward(2 * time.Minute)
		assert.Equal(t, http.StatusOK, doPost(r).Code)
	})

	t.Run("redis failure falls back to in-memory", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer client.Close()
		mr.Close()

		rl := NewRateLimiterWithConfig(client, 1, time.Minute)
		r := newLimitedRouter(rl)

		assert.Equal(t, http.StatusOK, doPost(r).Code)
		assert.Equal(t, http.StatusTooManyRequests, doPost(r).Code)
	})
}

func TestRateLimiter_TestEnvironmentSkip(t *testing.T) {
	t.Setenv("ENV", "test")

	rl := NewRateLimiterWithConfig(nil, 1, time.Minute)
	r := newLimitedRouter(rl)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, doPost(r).Code)
	}
}
