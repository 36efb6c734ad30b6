package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/IvanChernomyrdin/go-userhub/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-userhub/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-userhub/internal/shared/models"
)

// parseUserID извлекает {id} из URL и проверяет, что это положительное целое.
func parseUserID(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, serr.ErrInvalidInput
	}
	return id, nil
}

// toWireUser переводит доменную модель в wire-модель ответа.
func toWireUser(u models.User) sharedModels.User {
	return sharedModels.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ListUsers возвращает всех пользователей.
//
// Список отсортирован по created_at по убыванию и может быть пустым
// (возвращается [], а не null).
//
// ListUsers godoc
// @Summary      List users
// @Description  Returns all users ordered by creation time, descending.
// @Tags         users
// @Produce      json
// @Success      200 {object} models.UsersResponse
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /api/v1/users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.Users.List(r.Context())
	if err != nil {
		h.Log.Logger.Sugar().Errorw("list users failed", "error", err)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	data := make([]sharedModels.User, 0, len(users))
	for _, u := range users {
		data = append(data, toWireUser(u))
	}

	WriteJSON(w, http.StatusOK, sharedModels.UsersResponse{Data: data})
}

// GetUser возвращает одного пользователя по id из URL.
//
// GetUser godoc
// @Summary      Get user
// @Description  Returns a single user by id.
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} models.UserResponse
// @Failure      400 {object} api.ErrorResponse "Invalid user id"
// @Failure      404 {object} api.ErrorResponse "User not found"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /api/v1/users/{id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseUserID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	u, err := h.Svc.Users.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		default:
			h.Log.Logger.Sugar().Errorw("get user failed", "error", err, "user_id", id)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, sharedModels.UserResponse{Data: toWireUser(u)})
}

// CreateUser создаёт нового пользователя.
//
// Сервер:
//   - валидирует email (формат) и name (2–100 символов);
//   - id и timestamps назначает база;
//   - дубликат email возвращается как 409 Conflict.
//
// CreateUser godoc
// @Summary      Create user
// @Description  Creates a new user. The store assigns id and both timestamps.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body models.CreateUserRequest true "Create user request"
// @Success      201 {object} models.UserResponse
// @Failure      400 {object} api.ErrorResponse "Invalid input or bad JSON"
// @Failure      409 {object} api.ErrorResponse "Email already exists"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /api/v1/users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req sharedModels.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	u, err := h.Svc.Users.Create(r.Context(), req.Email, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrEmailRequired),
			errors.Is(err, serr.ErrEmailInvalid),
			errors.Is(err, serr.ErrNameRequired),
			errors.Is(err, serr.ErrNameLength):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrAlreadyExists):
			WriteError(w, http.StatusConflict, err)
		default:
			h.Log.Logger.Sugar().Errorw("create user failed", "error", err, "email", req.Email)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, sharedModels.UserResponse{Data: toWireUser(u)})
}

// UpdateUser обновляет пользователя (partial update).
//
// Не переданное поле сохраняет прежнее значение (COALESCE в repository).
// updated_at обновляет триггер на стороне базы.
//
// UpdateUser godoc
// @Summary      Update user
// @Description  Partially updates a user. Omitted fields keep their previous values.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path int true "User ID"
// @Param        request body models.UpdateUserRequest true "Update user request"
// @Success      200 {object} models.UserResponse
// @Failure      400 {object} api.ErrorResponse "Invalid input or bad JSON"
// @Failure      404 {object} api.ErrorResponse "User not found"
// @Failure      409 {object} api.ErrorResponse "Email already exists"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /api/v1/users/{id} [put]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseUserID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	var req sharedModels.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	u, err := h.Svc.Users.Update(r.Context(), id, req.Email, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrEmailRequired),
			errors.Is(err, serr.ErrEmailInvalid),
			errors.Is(err, serr.ErrNameRequired),
			errors.Is(err, serr.ErrNameLength),
			errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		case errors.Is(err, serr.ErrAlreadyExists):
			WriteError(w, http.StatusConflict, err)
		default:
			h.Log.Logger.Sugar().Errorw("update user failed", "error", err, "user_id", id)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, sharedModels.UserResponse{Data: toWireUser(u)})
}

// DeleteUser удаляет пользователя по id.
//
// DeleteUser godoc
// @Summary      Delete user
// @Description  Deletes a user by id.
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} models.MessageResponse
// @Failure      400 {object} api.ErrorResponse "Invalid user id"
// @Failure      404 {object} api.ErrorResponse "User not found"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /api/v1/users/{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseUserID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	if err := h.Svc.Users.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		default:
			h.Log.Logger.Sugar().Errorw("delete user failed", "error", err, "user_id", id)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, sharedModels.MessageResponse{Message: "user deleted successfully"})
}
