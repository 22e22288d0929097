package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mw...)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return router
}

func doGet(router *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "198.51.100.7:4242"
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimit_BlocksAfterWindowBudget(t *testing.T) {
	router := newTestRouter(RateLimit(2, time.Minute))

	assert.Equal(t, http.StatusOK, doGet(router, nil).Code)
	assert.Equal(t, http.StatusOK, doGet(router, nil).Code)

	w := doGet(router, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
}

func TestRateLimit_WindowResets(t *testing.T) {
	router := newTestRouter(RateLimit(1, 50*time.Millisecond))

	assert.Equal(t, http.StatusOK, doGet(router, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, doGet(router, nil).Code)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, http.StatusOK, doGet(router, nil).Code)
}

func TestRateLimit_SeparateClients(t *testing.T) {
	router := newTestRouter(RateLimit(1, time.Minute))

	assert.Equal(t, http.StatusOK, doGet(router, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, doGet(router, nil).Code)

	// A different client IP gets its own window.
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "203.0.113.9:4242"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORS_AllowedOrigin(t *testing.T) {
	router := newTestRouter(CORS("http://localhost:3000"))

	w := doGet(router, map[string]string{"Origin": "http://localhost:3000"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_DisallowedOriginGetsNoHeaders(t *testing.T) {
	router := newTestRouter(CORS("http://localhost:3000"))

	w := doGet(router, map[string]string{"Origin": "https://evil.example"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	// Still cache-keyed on Origin so a shared cache never serves this
	// response to an allowed origin.
	assert.Equal(t, "Origin", w.Header().Get("Vary"))
}

func TestCORS_VarySetWithoutOrigin(t *testing.T) {
	router := newTestRouter(CORS("http://localhost:3000"))

	w := doGet(router, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Origin", w.Header().Get("Vary"))
}

func TestCORS_Preflight(t *testing.T) {
	router := newTestRouter(CORS("http://localhost:3000"))

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestRequestID_Generated(t *testing.T) {
	router := newTestRouter(RequestID())

	w := doGet(router, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestID_PropagatesClientValue(t *testing.T) {
	router := newTestRouter(RequestID())

	w := doGet(router, map[string]string{"X-Request-ID": "client-supplied"})

	assert.Equal(t, "client-supplied", w.Header().Get("X-Request-ID"))
}
