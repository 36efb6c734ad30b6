package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IvanChernomyrdin/go-userhub/internal/server/api"
	sharedModels "github.com/IvanChernomyrdin/go-userhub/internal/shared/models"
)

// Health-check не зависит от базы и всегда отвечает 200
func TestHandler_Health(t *testing.T) {
	t.Parallel()

	h, _ := NewTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}

	var resp sharedModels.HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Fatalf("expected status %q, got %q", "healthy", resp.Status)
	}
	if resp.Service != api.ServiceName {
		t.Fatalf("expected service %q, got %q", api.ServiceName, resp.Service)
	}
}
