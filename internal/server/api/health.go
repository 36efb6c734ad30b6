package api

import (
	"net/http"

	sharedModels "github.com/IvanChernomyrdin/go-userhub/internal/shared/models"
)

// ServiceName — имя сервиса в ответе liveness-эндпоинта.
const ServiceName = "userhub-backend"

// Health — неаутентифицированный liveness-эндпоинт.
//
// Всегда возвращает статический ответ; состояние базы не проверяется.
//
// Health godoc
// @Summary      Health check
// @Description  Returns a static healthy payload.
// @Tags         health
// @Produce      json
// @Success      200 {object} models.HealthResponse
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, sharedModels.HealthResponse{
		Status:  "healthy",
		Service: ServiceName,
	})
}
