package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/IvanChernomyrdin/go-userhub/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-userhub/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-userhub/internal/shared/models"
	"go.uber.org/mock/gomock"
)

func TestHandler_ListUsers_Success(t *testing.T) {
	t.Parallel()

	h, users := NewTestHandler(t)

	now := time.Now().UTC().Truncate(time.Second)
	users.EXPECT().
		List(gomock.Any()).
		Return([]models.User{
			{ID: 2, Email: "bob@x.com", Name: "Bob", CreatedAt: now, UpdatedAt: now},
			{ID: 1, Email: "ann@x.com", Name: "Ann", CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Hour)},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	rec := httptest.NewRecorder()

	h.ListUsers(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp sharedModels.UsersResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 users, got %d", len(resp.Data))
	}
	if resp.Data[0].ID != 2 || resp.Data[1].ID != 1 {
		t.Fatalf("expected order [2, 1], got [%d, %d]", resp.Data[0].ID, resp.Data[1].ID)
	}
}

// Пустая таблица — в ответе [], а не null
func TestHandler_ListUsers_Empty(t *testing.T) {
	t.Parallel()

	h, users := NewTestHandler(t)

	users.EXPECT().
		List(gomock.Any()).
		Return([]models.User{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	rec := httptest.NewRecorder()

	h.ListUsers(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(rec.Body).Decode(&raw); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if string(raw["data"]) != "[]" {
		t.Fatalf("expected data to be [], got %s", raw["data"])
	}
}

func TestHandler_ListUsers_InternalError(t *testing.T) {
	t.Parallel()

	h, users := NewTestHandler(t)

	users.EXPECT().
		List(gomock.Any()).
		Return(nil, serr.ErrInternal)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	rec := httptest.NewRecorder()

	h.ListUsers(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d, got %d", http.StatusInternalServerError, rec.Code)
	}
}

func TestHandler_GetUser_Success(t *testing.T) {
	t.Parallel()

	h, users := NewTestHandler(t)
	router := newUsersRouter(h)

	now := time.Now().UTC().Truncate(time.Second)
	users.EXPECT().
		GetByID(gomock.Any(), int64(7)).
		Return(models.User{ID: 7, Email: "ann@x.com", Name: "Ann", CreatedAt: now, UpdatedAt: now}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/7", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp sharedModels.UserResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.ID != 7 || resp.Data.Email != "ann@x.com" {
		t.Fatalf("unexpected user in response: %+v", resp.Data)
	}
}

func TestHandler_GetUser_NotFound(t *testing.T) {
	t.Parallel()

	h, users := NewTestHandler(t)
	router := newUsersRouter(h)

	users.EXPECT().
		GetByID(gomock.Any(), int64(99)).
		Return(models.User{}, serr.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/99", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}

// Нечисловой и неположительный id — 400 без обращения к репозиторию
func TestHandler_GetUser_InvalidID(t *testing.T) {
	t.Parallel()

	h, _ := NewTestHandler(t)
	router := newUsersRouter(h)

	for _, id := range []string{"abc", "0", "-3", "1.5"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+id, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("id=%q: expected %d, got %d", id, http.StatusBadRequest, rec.Code)
		}
	}
}
