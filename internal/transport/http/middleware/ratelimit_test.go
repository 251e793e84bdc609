package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	resp "go-account-service/internal/transport/http/response"
)

func rateLimitedEngine(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	r.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, resp.OK(nil)) })
	return r
}

func pingFrom(t *testing.T, r *gin.Engine, remoteAddr string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out resp.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out.Code
}

// Exhausting one client's bucket must not affect another client.
func TestRateLimitPerIP_BucketsAreIndependent(t *testing.T) {
	r := rateLimitedEngine(RateLimitPerIP(0, 1))

	assert.Equal(t, resp.CodeOK, pingFrom(t, r, "10.0.0.1:1234"))
	assert.Equal(t, resp.CodeServerError, pingFrom(t, r, "10.0.0.1:1234"))
	assert.Equal(t, resp.CodeOK, pingFrom(t, r, "10.0.0.2:1234"))
}

// Concurrent first requests from many addresses hit the bucket map at once;
// run with -race to catch unsynchronized access.
func TestRateLimitPerIP_ConcurrentClients(t *testing.T) {
	r := rateLimitedEngine(RateLimitPerIP(rate.Inf, 1))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			addr := fmt.Sprintf("10.0.1.%d:1", n+1)
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = addr
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
		}(i)
	}
	wg.Wait()
}
