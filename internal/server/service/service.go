// Package service содержит бизнес-логику приложения (userhub).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"github.com/IvanChernomyrdin/go-userhub/internal/server/config"
	"github.com/IvanChernomyrdin/go-userhub/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users UsersRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Users *UsersService
}

// NewServices собирает все сервисы приложения.
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Users: NewUsersService(repos.Users),
	}
}

// UsersRepo — репозиторий пользователей (CRUD).
type UsersRepo interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	Create(ctx context.Context, email, name string) (models.User, error)
	Update(ctx context.Context, id int64, email, name *string) (models.User, error)
	Delete(ctx context.Context, id int64) error
}
