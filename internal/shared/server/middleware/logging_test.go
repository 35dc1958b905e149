package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestLoggingIncludesRequiredFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID(), Logging())
	router.GET("/test", func(c *gin.Context) {
		c.Set("documentId", "doc-1")
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	output := captureStdout(t, func() {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
	})

	line := findLogLine(t, output, "request.complete")
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}

	for _, key := range []string{"request_id", "method", "path", "status", "duration_ms", "document_id"} {
		if _, ok := entry[key]; !ok {
			t.Fatalf("expected log field %q, got %v", key, entry)
		}
	}
	if entry["document_id"] != "doc-1" {
		t.Fatalf("expected document_id doc-1, got %v", entry["document_id"])
	}
	if entry["status"] != float64(http.StatusOK) {
		t.Fatalf("expected status 200, got %v", entry["status"])
	}
}

func TestLoggingSkipsOptions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID(), Logging())
	router.OPTIONS("/test", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	output := captureStdout(t, func() {
		req := httptest.NewRequest(http.MethodOptions, "/test", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
	})

	if strings.Contains(output, "request.complete") {
		t.Fatalf("expected no request log for OPTIONS, got %q", output)
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = origStdout }()

	fn()

	w.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("read log output: %v", err)
	}
	return buf.String()
}

func findLogLine(t *testing.T, output, msg string) string {
	t.Helper()
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, msg) {
			return line
		}
	}
	t.Fatalf("no log line containing %q in %q", msg, output)
	return ""
}
