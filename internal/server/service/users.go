package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/mcnijman/go-emailaddress"

	"github.com/IvanChernomyrdin/go-userhub/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-userhub/internal/shared/errors"
)

// Ограничения на длину имени пользователя (в символах, не байтах).
const (
	NameMinLen = 2
	NameMaxLen = 100
)

// UsersService реализует бизнес-логику работы с пользователями.
// Сервис:
//   - валидирует входные данные до обращения к репозиторию;
//   - нормализует email (trim + lower);
//   - не знает о HTTP и БД напрямую.
type UsersService struct {
	repo UsersRepo
}

// NewUsersService создаёт новый UsersService.
func NewUsersService(repo UsersRepo) *UsersService {
	return &UsersService{repo: repo}
}

// validateEmail проверяет синтаксис email.
// DNS/host не проверяем — только формат.
func validateEmail(email string) error {
	if email == "" {
		return serr.ErrEmailRequired
	}
	if _, err := emailaddress.Parse(email); err != nil {
		return serr.ErrEmailInvalid
	}
	return nil
}

// validateName проверяет имя: обязательное, от 2 до 100 символов.
func validateName(name string) error {
	if name == "" {
		return serr.ErrNameRequired
	}
	if n := utf8.RuneCountInString(name); n < NameMinLen || n > NameMaxLen {
		return serr.ErrNameLength
	}
	return nil
}

// normalizeEmail приводит email к каноническому виду для хранения.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// List возвращает всех пользователей (created_at desc).
func (s *UsersService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

// Get возвращает пользователя по id.
//
// Ошибки:
//   - ErrInvalidInput — id не положительный;
//   - ErrNotFound — пользователь не найден;
//   - ErrInternal — ошибка хранилища.
func (s *UsersService) Get(ctx context.Context, id int64) (models.User, error) {
	if id <= 0 {
		return models.User{}, serr.ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// Create создаёт нового пользователя.
//
// Валидации:
//   - email обязателен и валиден по формату;
//   - name обязателен, длина от 2 до 100 символов.
//
// id и оба timestamp назначает база.
//
// Ошибки:
//   - ErrEmailRequired / ErrEmailInvalid / ErrNameRequired / ErrNameLength;
//   - ErrAlreadyExists — email уже занят;
//   - ErrInternal — ошибка хранилища.
func (s *UsersService) Create(ctx context.Context, email, name string) (models.User, error) {
	email = normalizeEmail(email)
	name = strings.TrimSpace(name)

	if err := validateEmail(email); err != nil {
		return models.User{}, err
	}
	if err := validateName(name); err != nil {
		return models.User{}, err
	}

	return s.repo.Create(ctx, email, name)
}

// Update выполняет partial update пользователя.
//
// nil-поле сохраняет прежнее значение. Переданные поля валидируются
// по тем же правилам, что и при создании. Если не передано ни одного
// поля — запись не меняется, но updated_at всё равно обновится триггером
// (UPDATE выполняется всегда).
//
// Ошибки:
//   - ErrInvalidInput — id не положительный;
//   - ErrEmailInvalid / ErrNameRequired / ErrNameLength — невалидный патч;
//   - ErrNotFound — пользователь не найден;
//   - ErrAlreadyExists — новый email уже занят;
//   - ErrInternal — ошибка хранилища.
func (s *UsersService) Update(ctx context.Context, id int64, email, name *string) (models.User, error) {
	if id <= 0 {
		return models.User{}, serr.ErrInvalidInput
	}

	if email != nil {
		normalized := normalizeEmail(*email)
		if err := validateEmail(normalized); err != nil {
			return models.User{}, err
		}
		email = &normalized
	}

	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if err := validateName(trimmed); err != nil {
			return models.User{}, err
		}
		name = &trimmed
	}

	return s.repo.Update(ctx, id, email, name)
}

// Delete удаляет пользователя по id.
//
// Ошибки:
//   - ErrInvalidInput — id не положительный;
//   - ErrNotFound — пользователь не найден;
//   - ErrInternal — ошибка хранилища.
func (s *UsersService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return serr.ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
