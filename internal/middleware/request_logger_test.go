package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"repo-catalog/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newRouter(logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(logger))
	router.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})
	router.GET("/fail", func(c *gin.Context) {
		c.Status(http.StatusBadGateway)
	})
	return router
}

func TestRequestID(t *testing.T) {
	router := newRouter(zap.NewNop())

	tests := []struct {
		name     string
		supplied string
	}{
		{"generated", ""},
		{"propagated", "abc-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ok", nil)
			if tt.supplied != "" {
				req.Header.Set(middleware.RequestIDHeader, tt.supplied)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			got := w.Header().Get(middleware.RequestIDHeader)
			if got == "" {
				t.Fatal("response has no request id")
			}
			if tt.supplied != "" && got != tt.supplied {
				t.Errorf("request id = %q, want %q", got, tt.supplied)
			}
			if w.Body.String() != got {
				t.Errorf("handler saw %q, header has %q", w.Body.String(), got)
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	router := newRouter(zap.New(core))

	for _, path := range []string{"/ok", "/fail"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d log entries, want 2", len(entries))
	}
	if entries[0].Level != zap.InfoLevel {
		t.Errorf("/ok logged at %v, want info", entries[0].Level)
	}
	if entries[1].Level != zap.ErrorLevel {
		t.Errorf("/fail logged at %v, want error", entries[1].Level)
	}
	if entries[1].ContextMap()["status"] != int64(http.StatusBadGateway) {
		t.Errorf("status field = %v", entries[1].ContextMap()["status"])
	}
}
