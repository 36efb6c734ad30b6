package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	serr "github.com/IvanChernomyrdin/go-userhub/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-userhub/internal/shared/models"
)

func TestHandler_DeleteUser_Success(t *testing.T) {
	t.Parallel()

	h, users := NewTestHandler(t)
	router := newUsersRouter(h)

	users.EXPECT().
		Delete(gomock.Any(), int64(5)).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/5", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp sharedModels.MessageResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "user deleted successfully" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestHandler_DeleteUser_NotFound(t *testing.T) {
	t.Parallel()

	h, users := NewTestHandler(t)
	router := newUsersRouter(h)

	users.EXPECT().
		Delete(gomock.Any(), int64(99)).
		Return(serr.ErrNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/99", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestHandler_DeleteUser_InvalidID(t *testing.T) {
	t.Parallel()

	h, _ := NewTestHandler(t)
	router := newUsersRouter(h)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/zero", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandler_DeleteUser_InternalError(t *testing.T) {
	t.Parallel()

	h, users := NewTestHandler(t)
	router := newUsersRouter(h)

	users.EXPECT().
		Delete(gomock.Any(), int64(5)).
		Return(serr.ErrInternal)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/5", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d, got %d", http.StatusInternalServerError, rec.Code)
	}
}
