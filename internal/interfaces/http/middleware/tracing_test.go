package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// recordSpans swaps in a recording tracer provider for the duration of
// the test and returns the recorder.
func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
	})
	return sr
}

func tracedOrderRouter(cfg TracingConfig, mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(TracingWithConfig(cfg))
	router.Use(mw...)
	router.GET("/orders", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"orders": []string{}})
	})
	return router
}

func spanAttr(spans []sdktrace.ReadOnlySpan, key string) (string, bool) {
	for _, span := range spans {
		for _, attr := range span.Attributes() {
			if string(attr.Key) == key {
				return attr.Value.AsString(), true
			}
		}
	}
	return "", false
}

func TestTracingWithConfig_DisabledPassesThrough(t *testing.T) {
	router := tracedOrderRouter(TracingConfig{Enabled: false, ServiceName: "homeoffice-shop"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/orders", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTracingWithConfig_NamesSpanAfterRoute(t *testing.T) {
	sr := recordSpans(t)
	router := tracedOrderRouter(TracingConfig{Enabled: true, ServiceName: "homeoffice-shop"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/orders", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	spans := sr.Ended()
	require.NotEmpty(t, spans)
	names := make([]string, 0, len(spans))
	for _, span := range spans {
		names = append(names, span.Name())
	}
	assert.Contains(t, names, "GET /orders")
}

func TestTracingWithConfig_RecordsRequestID(t *testing.T) {
	sr := recordSpans(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.Use(TracingWithConfig(TracingConfig{Enabled: true, ServiceName: "homeoffice-shop"}))
	router.GET("/orders", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("X-Request-ID", "req-sync-42")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	got, ok := spanAttr(sr.Ended(), "request_id")
	require.True(t, ok, "request_id attribute missing from span")
	assert.Equal(t, "req-sync-42", got)
}

func TestTracingWithConfig_RecordsUserID(t *testing.T) {
	sr := recordSpans(t)
	router := tracedOrderRouter(TracingConfig{Enabled: true, ServiceName: "homeoffice-shop"})

	const employeeUUID = "7f9c24e8-3b12-4a7f-9c4d-1e8a2b3c4d5e"
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("X-User-ID", employeeUUID)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	got, ok := spanAttr(sr.Ended(), "user_id")
	require.True(t, ok, "user_id attribute missing from span")
	assert.Equal(t, employeeUUID, got)
}

func TestGetRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("context value wins over header", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request, _ = http.NewRequest(http.MethodGet, "/orders", nil)
		c.Set("request_id", "ctx-id")
		c.Request.Header.Set("X-Request-ID", "header-id")

		assert.Equal(t, "ctx-id", getRequestID(c))
	})

	t.Run("falls back to header", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request, _ = http.NewRequest(http.MethodGet, "/orders", nil)
		c.Request.Header.Set("X-Request-ID", "header-id")

		assert.Equal(t, "header-id", getRequestID(c))
	})

	t.Run("oversized id is truncated", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request, _ = http.NewRequest(http.MethodGet, "/orders", nil)
		c.Request.Header.Set("X-Request-ID", strings.Repeat("a", MaxRequestIDLength+50))

		assert.Len(t, getRequestID(c), MaxRequestIDLength)
	})
}

func TestGetUserID_AcceptsOnlyUUIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"valid uuid accepted", "7f9c24e8-3b12-4a7f-9c4d-1e8a2b3c4d5e", "7f9c24e8-3b12-4a7f-9c4d-1e8a2b3c4d5e"},
		{"missing header", "", ""},
		{"injection attempt rejected", "bob; DROP TABLE employees", ""},
		{"truncated uuid rejected", "7f9c24e8-3b12-4a7f", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request, _ = http.NewRequest(http.MethodGet, "/orders", nil)
			if tt.header != "" {
				c.Request.Header.Set("X-User-ID", tt.header)
			}
			assert.Equal(t, tt.want, getUserID(c))
		})
	}
}

func TestSpanErrorMarker(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantStatus codes.Code
	}{
		{"success is unset", http.StatusOK, codes.Unset},
		{"client error marks span", http.StatusBadRequest, codes.Error},
		{"server error marks span", http.StatusInternalServerError, codes.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sr := recordSpans(t)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.Use(TracingWithConfig(TracingConfig{Enabled: true, ServiceName: "homeoffice-shop"}))
			router.Use(SpanErrorMarker())
			router.GET("/orders", func(c *gin.Context) {
				c.JSON(tt.status, gin.H{})
			})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/orders", nil)
			router.ServeHTTP(w, req)
			require.Equal(t, tt.status, w.Code)

			spans := sr.Ended()
			require.NotEmpty(t, spans)
			assert.Equal(t, tt.wantStatus, spans[0].Status().Code)
		})
	}
}
