// Package http реализует маршрутизацию HTTP-слоя сервера userhub.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - cross-origin политику (статический allow-list из конфига);
//   - логирование выполнения HTTP-запросов;
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-userhub/internal/server/api"
	"github.com/IvanChernomyrdin/go-userhub/internal/server/config"
	"github.com/IvanChernomyrdin/go-userhub/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - middleware request id и логирования для всех запросов;
//   - CORS allow-list для всех ответов;
//   - публичный liveness-эндпоинт /health;
//   - swagger UI;
//   - CRUD-маршруты пользователей под префиксом /api/v1/users.
func NewRouter(h *api.Handler, corsCfg config.CORSConfig) http.Handler {
	r := chi.NewRouter()
	// request id на каждый запрос
	r.Use(middleware.RequestIDMiddleware())
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())
	// cross-origin политика: фиксированный список origins, без wildcard
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsCfg.AllowedOrigins,
		AllowedMethods: corsCfg.AllowedMethods,
		AllowedHeaders: corsCfg.AllowedHeaders,
		MaxAge:         corsCfg.MaxAge,
	}))

	// liveness
	r.Get("/health", h.Health)
	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// CRUD запросы для пользователей
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.ListUsers)         // Получение всех пользователей
			r.Post("/", h.CreateUser)       // Создание пользователя
			r.Get("/{id}", h.GetUser)       // Получение одного по id
			r.Put("/{id}", h.UpdateUser)    // partial update по id
			r.Delete("/{id}", h.DeleteUser) // удаление по id
		})
	})

	return r
}
