package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/telemetry"
)

func TestLoggingIncludesRequiredFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID(), Logging())
	router.POST("/test", func(c *gin.Context) {
		c.Set("renderer", "html")
		c.Set("documentBytes", 42)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	var buf bytes.Buffer
	restore := telemetry.SetOutput(&buf)
	defer restore()

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set("X-Request-Id", "req-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	last := lines[len(lines)-1]
	var payload map[string]any
	if err := json.Unmarshal([]byte(last), &payload); err != nil {
		t.Fatalf("decode log json: %v", err)
	}

	required := []string{"request_id", "method", "path", "status", "duration_ms", "renderer", "document_bytes"}
	for _, key := range required {
		if _, ok := payload[key]; !ok {
			t.Fatalf("missing log field: %s", key)
		}
	}
	if payload["request_id"] != "req-1" {
		t.Fatalf("unexpected request_id: %v", payload["request_id"])
	}
	if payload["renderer"] != "html" {
		t.Fatalf("unexpected renderer: %v", payload["renderer"])
	}
	if payload["status"] != float64(http.StatusOK) {
		t.Fatalf("unexpected status: %v", payload["status"])
	}
}

func TestRequestIDGeneratedWhenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	var seen string
	router.GET("/id", func(c *gin.Context) {
		seen = RequestIDFromContext(c)
		c.Status(http.StatusNoContent)
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/id", nil))

	if seen == "" {
		t.Fatalf("expected generated request id")
	}
	if got := resp.Header().Get("X-Request-Id"); got != seen {
		t.Fatalf("header %q does not match context %q", got, seen)
	}
}

func TestRecoveryReturnsInternalError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	restore := telemetry.SetOutput(&buf)
	defer restore()

	router := gin.New()
	router.Use(RequestID(), Recovery())
	router.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"code":"internal"`) {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
	if !strings.Contains(buf.String(), `"msg":"panic"`) {
		t.Fatalf("expected panic log, got %s", buf.String())
	}
}
