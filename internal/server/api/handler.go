// Package api реализует HTTP-слой сервера userhub.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения;
//   - envelope-формат ответов: {"data":...}, {"message":...}, {"error":...}.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/IvanChernomyrdin/go-userhub/internal/server/service"
	"github.com/IvanChernomyrdin/go-userhub/internal/shared/logger"
)

// Заголовки ответов API.
const (
	ContentType     = "Content-Type"
	JsonContentType = "application/json"
)

// ErrorResponse стандартный формат ошибки API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок.
//
// Методы Handler используются роутером для обработки HTTP-запросов.
type Handler struct {
	Svc *service.Services
	Log *logger.HTTPLogger
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
//
// svc — набор сервисов приложения,
// log — логгер.
func NewHandler(svc *service.Services, log *logger.HTTPLogger) *Handler {
	return &Handler{
		Svc: svc,
		Log: log,
	}
}

// Вспомогательная функция вывода ошибки
func WriteError(w http.ResponseWriter, status int, err error) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: err.Error(),
	})
}

// Вспомогательная функция вывода успешного JSON-ответа
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
