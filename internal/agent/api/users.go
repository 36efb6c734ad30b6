package api

import (
	"fmt"

	sharedModels "github.com/IvanChernomyrdin/go-userhub/internal/shared/models"
)

// Health проверяет доступность сервера.
//
// Выполняет запрос:
//
//	GET /health
//
// Возвращает:
//   - sharedModels.HealthResponse (status, service)
//   - ошибку, если запрос завершился неуспешно (не 2xx) или ответ не удалось декодировать.
func (c *Client) Health() (sharedModels.HealthResponse, error) {
	var resp sharedModels.HealthResponse
	err := c.GetJSON("/health", &resp)
	return resp, err
}

// ListUsers загружает всех пользователей с сервера.
//
// Выполняет запрос:
//
//	GET /api/v1/users
//
// Возвращает:
//   - sharedModels.UsersResponse (envelope {"data":[...]}),
//     список отсортирован по created_at по убыванию
//   - ошибку, если запрос завершился неуспешно (не 2xx) или ответ не удалось декодировать.
func (c *Client) ListUsers() (sharedModels.UsersResponse, error) {
	var resp sharedModels.UsersResponse
	err := c.GetJSON("/api/v1/users", &resp)
	return resp, err
}

// GetUser загружает одного пользователя по id.
//
// Выполняет запрос:
//
//	GET /api/v1/users/{id}
//
// Возвращает:
//   - sharedModels.UserResponse (envelope {"data":{...}})
//   - ошибку, если пользователь не найден или запрос завершился неуспешно.
func (c *Client) GetUser(id int64) (sharedModels.UserResponse, error) {
	var resp sharedModels.UserResponse
	err := c.GetJSON(fmt.Sprintf("/api/v1/users/%d", id), &resp)
	return resp, err
}

// CreateUser создаёт нового пользователя на сервере.
//
// Выполняет запрос:
//
//	POST /api/v1/users
//
// Параметры:
//   - req: email и name создаваемого пользователя.
//
// Возвращает:
//   - sharedModels.UserResponse с полной записью (id и timestamps назначает сервер)
//   - ошибку при невалидных данных, занятом email или неуспешном статусе.
func (c *Client) CreateUser(req sharedModels.CreateUserRequest) (sharedModels.UserResponse, error) {
	var resp sharedModels.UserResponse
	err := c.PostJSON("/api/v1/users", req, &resp)
	return resp, err
}

// UpdateUser обновляет пользователя на сервере по id (partial update).
//
// Выполняет запрос:
//
//	PUT /api/v1/users/{id}
//
// Для partial update передаются только изменяемые поля:
// nil-поле сохраняет прежнее значение на сервере.
//
// Возвращает:
//   - sharedModels.UserResponse с обновлённой записью
//   - ошибку при невалидных данных, отсутствии пользователя или неуспешном статусе.
func (c *Client) UpdateUser(id int64, req sharedModels.UpdateUserRequest) (sharedModels.UserResponse, error) {
	var resp sharedModels.UserResponse
	err := c.PutJSON(fmt.Sprintf("/api/v1/users/%d", id), req, &resp)
	return resp, err
}

// DeleteUser удаляет пользователя на сервере по id.
//
// Выполняет запрос:
//
//	DELETE /api/v1/users/{id}
//
// Возвращает:
//   - sharedModels.MessageResponse с сообщением об удалении
//   - ошибку при отсутствии пользователя или неуспешном статусе.
func (c *Client) DeleteUser(id int64) (sharedModels.MessageResponse, error) {
	var resp sharedModels.MessageResponse
	err := c.DeleteJSON(fmt.Sprintf("/api/v1/users/%d", id), &resp)
	return resp, err
}
