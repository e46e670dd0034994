package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rafaelleal24/catalog/internal/core/logger"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(handlers...)
	engine.GET("/items/:id", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})
	return engine
}

func TestRequestID(t *testing.T) {
	engine := newEngine(RequestID())

	t.Run("keeps incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/items/1", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
			t.Fatalf("expected echoed id abc-123, got %q", got)
		}
		if rec.Body.String() != "abc-123" {
			t.Fatalf("expected id in context, got %q", rec.Body.String())
		}
	})

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/1", nil))

		got := rec.Header().Get(RequestIDHeader)
		if len(got) != 36 {
			t.Fatalf("expected generated uuid, got %q", got)
		}
		if rec.Body.String() != got {
			t.Fatalf("context id %q differs from header %q", rec.Body.String(), got)
		}
	})
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	engine := newEngine(Metrics())

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("200", http.MethodGet, "/items/:id"))
	unmatchedBefore := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("404", http.MethodGet, "unmatched"))

	for _, path := range []string{"/items/1", "/items/2", "/nowhere"} {
		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("200", http.MethodGet, "/items/:id")) - before; got != 2 {
		t.Fatalf("expected 2 requests on the route template, got %v", got)
	}
	if got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("404", http.MethodGet, "unmatched")) - unmatchedBefore; got != 1 {
		t.Fatalf("expected 1 unmatched request, got %v", got)
	}
	if got := testutil.ToFloat64(httpRequestsInFlight); got != 0 {
		t.Fatalf("expected no requests in flight, got %v", got)
	}
}

func TestLogRequest(t *testing.T) {
	rec := &logger.Recorder{}
	defer logger.Use(rec, logger.LogLevelDebug)()

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID(), LogRequest())
	engine.GET("/items/:id", func(c *gin.Context) {
		if c.Param("id") == "missing" {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	ok := httptest.NewRequest(http.MethodGet, "/items/1?fields=name", nil)
	ok.Header.Set(RequestIDHeader, "req-1")
	engine.ServeHTTP(httptest.NewRecorder(), ok)
	engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/missing", nil))

	entries := rec.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 access log entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Level != logger.LogLevelInfo {
		t.Fatalf("expected INFO for 200, got %s", first.Level)
	}
	if first.Attributes["http.route"] != "/items/:id" || first.Attributes["http.query"] != "fields=name" {
		t.Fatalf("unexpected attributes %v", first.Attributes)
	}
	if first.Attributes["http.request_id"] != "req-1" {
		t.Fatalf("expected request id from context, got %v", first.Attributes["http.request_id"])
	}
	if _, ok := first.Attributes["http.response_body"]; ok {
		t.Fatal("successful response bodies are not logged")
	}

	second := entries[1]
	if second.Level != logger.LogLevelWarn {
		t.Fatalf("expected WARN for 404, got %s", second.Level)
	}
	body, _ := second.Attributes["http.response_body"].(string)
	if body == "" || !strings.Contains(body, "Product not found") {
		t.Fatalf("expected failed envelope in log, got %q", body)
	}
}
