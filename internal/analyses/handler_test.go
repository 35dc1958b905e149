package analyses

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, repo := newTestService(t)
	seedDocument(t, repo, "doc-1", transcriptFixture)

	router := gin.New()
	NewHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router, svc
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestSummarizeEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := postJSON(router, "/api/v1/analyses/summarize", `{"document_id": "doc-1"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), `"summary"`) {
		t.Fatalf("body = %s", resp.Body.String())
	}
}

func TestSmartEndpointUnknownDocument(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := postJSON(router, "/api/v1/analyses/smart", `{"document_id": "nope"}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "not_found") {
		t.Fatalf("body = %s", resp.Body.String())
	}
}

func TestSmartEndpointInvalidForceType(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := postJSON(router, "/api/v1/analyses/smart", `{"document_id": "doc-1", "force_type": "essay"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "force_type") {
		t.Fatalf("body = %s", resp.Body.String())
	}
}

func TestAnalyzeEndpointRejectsBadBody(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := postJSON(router, "/api/v1/analyses/analyze", `{"document_id": 42}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
}

func TestResumeEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := postJSON(router, "/api/v1/analyses/resume", `{"document_id": "doc-1", "job_description": "go engineer"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), `"ats_score"`) {
		t.Fatalf("body = %s", resp.Body.String())
	}
}
