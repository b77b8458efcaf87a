package middleware

import (
	"bemu_storefront/pkg/logger"
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/x", func(c *gin.Context) {
		seen = logger.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("generates", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		require.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("propagates", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	})
}

func TestStructuredLogging(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	prev := logger.Logger
	logger.Logger = zerolog.New(&buf)
	defer func() { logger.Logger = prev }()

	r := gin.New()
	r.Use(RequestID(), StructuredLogging())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for path, level := range map[string]string{"/ok": `"level":"info"`, "/missing": `"level":"warn"`, "/boom": `"level":"error"`} {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(RequestIDHeader, "rid-1")
		r.ServeHTTP(httptest.NewRecorder(), req)

		line := buf.String()
		assert.True(t, strings.Contains(line, level), "%s: %s", path, line)
		assert.Contains(t, line, `"request_id":"rid-1"`)
		assert.Contains(t, line, `"route":"`+path+`"`)
	}
}

type fakeObserver struct {
	method, route string
	status        int
	calls         int
}

func (f *fakeObserver) ObserveRequest(method, route string, status int, _ time.Duration) {
	f.method, f.route, f.status = method, route, status
	f.calls++
}

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	obs := &fakeObserver{}
	r := gin.New()
	r.Use(Metrics(obs))
	r.GET("/v1/products/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/products/abc", nil))
	assert.Equal(t, "/v1/products/:id", obs.route)
	assert.Equal(t, http.StatusOK, obs.status)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, "unmatched", obs.route)
	assert.Equal(t, http.StatusNotFound, obs.status)
	assert.Equal(t, 2, obs.calls)
}
