package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-userhub/internal/server/api"
	"github.com/IvanChernomyrdin/go-userhub/internal/server/config"
	"github.com/IvanChernomyrdin/go-userhub/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-userhub/internal/server/models"
	nethttp "github.com/IvanChernomyrdin/go-userhub/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-userhub/internal/server/service"
	svcmocks "github.com/IvanChernomyrdin/go-userhub/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-userhub/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-userhub/internal/shared/logger"
	sharedModels "github.com/IvanChernomyrdin/go-userhub/internal/shared/models"
)

// newTestRouter собирает полный роутер с моками вместо базы
func newTestRouter(t *testing.T) (http.Handler, *svcmocks.MockUsersRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := svcmocks.NewMockUsersRepo(ctrl)
	svc := &service.Services{Users: service.NewUsersService(users)}
	h := api.NewHandler(svc, &logger.HTTPLogger{Logger: zap.NewNop()})

	corsCfg := config.CORSConfig{
		AllowedOrigins: []string{"http://localhost:3000"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}

	return nethttp.NewRouter(h, corsCfg), users
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}

	var resp sharedModels.HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "healthy" || resp.Service != api.ServiceName {
		t.Fatalf("unexpected health payload: %+v", resp)
	}
}

// Каждый ответ несёт X-Request-Id; присланный клиентом id возвращается как есть
func TestRouter_RequestID(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Header().Get(middleware.HeaderRequestID) == "" {
		t.Fatalf("expected generated request id header")
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.HeaderRequestID, "client-supplied-id")
	rec = httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if got := rec.Header().Get(middleware.HeaderRequestID); got != "client-supplied-id" {
		t.Fatalf("expected client request id echoed, got %q", got)
	}
}

// Разрешённый origin получает CORS-заголовок, чужой — нет
func TestRouter_CORS(t *testing.T) {
	router, users := newTestRouter(t)

	users.EXPECT().
		List(gomock.Any()).
		Return([]models.User{}, nil).
		Times(2)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("expected allowed origin header, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec = httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no CORS header for foreign origin, got %q", got)
	}
}

// Сквозной сценарий: create -> get -> delete -> get (404)
func TestRouter_UserLifecycle(t *testing.T) {
	router, users := newTestRouter(t)

	now := time.Now().UTC().Truncate(time.Second)
	stored := models.User{
		ID:        1,
		Email:     "ann@x.com",
		Name:      "Ann",
		CreatedAt: now,
		UpdatedAt: now,
	}

	gomock.InOrder(
		users.EXPECT().
			Create(gomock.Any(), "ann@x.com", "Ann").
			Return(stored, nil),
		users.EXPECT().
			GetByID(gomock.Any(), int64(1)).
			Return(stored, nil),
		users.EXPECT().
			Delete(gomock.Any(), int64(1)).
			Return(nil),
		users.EXPECT().
			GetByID(gomock.Any(), int64(1)).
			Return(models.User{}, serr.ErrNotFound),
	)

	// create
	body, _ := json.Marshal(sharedModels.CreateUserRequest{Email: "ann@x.com", Name: "Ann"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewReader(body))
	req.Header.Set(api.ContentType, api.JsonContentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected %d, got %d, body=%q", http.StatusCreated, rec.Code, rec.Body.String())
	}

	var created sharedModels.UserResponse
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("create: decode response: %v", err)
	}
	if created.Data.ID != 1 {
		t.Fatalf("create: expected id 1, got %d", created.Data.ID)
	}

	// get
	req = httptest.NewRequest(http.MethodGet, "/api/v1/users/1", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected %d, got %d", http.StatusOK, rec.Code)
	}

	// delete
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/users/1", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected %d, got %d", http.StatusOK, rec.Code)
	}

	// get после удаления
	req = httptest.NewRequest(http.MethodGet, "/api/v1/users/1", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}

// Неизвестный маршрут — 404 от chi
func TestRouter_UnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}
