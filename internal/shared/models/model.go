package models

import "time"

// User — плоская модель пользователя, используемая в HTTP API.
//
// Поля:
//   - ID: идентификатор пользователя (назначается базой, автоинкремент)
//   - Email: уникальный email пользователя
//   - Name: имя пользователя (2–100 символов)
//   - UpdatedAt: время последнего изменения записи (серверное)
//   - CreatedAt: время создания записи (серверное)
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateUserRequest — запрос на создание нового пользователя.
//
// Используется в:
//
//	POST /api/v1/users
//
// Оба поля обязательны: email валидируется по формату,
// name должно быть от 2 до 100 символов.
type CreateUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// UpdateUserRequest — запрос на обновление пользователя (partial update) по ID.
//
// Используется в:
//
//	PUT /api/v1/users/{id}
//
// Поля Email/Name — указатели, чтобы можно было передавать
// только изменяемые поля (omitempty работает корректно).
// Не переданное поле сохраняет прежнее значение.
type UpdateUserRequest struct {
	Email *string `json:"email,omitempty"`
	Name  *string `json:"name,omitempty"`
}

// UserResponse — ответ с одним пользователем, обёрнутый в envelope {"data":...}.
//
// Используется в:
//
//	GET  /api/v1/users/{id}
//	POST /api/v1/users
//	PUT  /api/v1/users/{id}
type UserResponse struct {
	Data User `json:"data"`
}

// UsersResponse — ответ со списком пользователей, envelope {"data":[...]}.
//
// Используется в:
//
//	GET /api/v1/users
//
// Список отсортирован по created_at по убыванию и может быть пустым.
type UsersResponse struct {
	Data []User `json:"data"`
}

// MessageResponse — простой ответ с сообщением, envelope {"message":...}.
//
// Используется в:
//
//	DELETE /api/v1/users/{id}
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse — ответ liveness-эндпоинта GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
