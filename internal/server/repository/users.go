// Package repository реализует доступ к хранилищу пользователей (PostgreSQL).
// Отвечает исключительно за сохранение и извлечение данных без бизнес-логики.
package repository

import (
	"context"
	"database/sql"

	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-userhub/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-userhub/internal/shared/errors"
)

type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// List возвращает всех пользователей, отсортированных по created_at по убыванию.
//
// Пустая таблица — не ошибка: возвращается пустой срез.
func (r *UsersRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, email, name, created_at, updated_at
		 FROM users
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, serr.ErrInternal
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return users, nil
}

// GetByID возвращает одного пользователя по id.
//
// Ошибки:
//   - ErrNotFound — нет строки с таким id
//   - ErrInternal — ошибка базы данных
func (r *UsersRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, name, created_at, updated_at
		 FROM users
		 WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

// Create вставляет нового пользователя.
//
// id и оба timestamp назначает база (DEFAULT now() / BIGSERIAL),
// приложение их не передаёт.
//
// Ошибки:
//   - ErrAlreadyExists — email уже занят (unique_violation)
//   - ErrInternal — ошибка базы данных
func (r *UsersRepository) Create(ctx context.Context, email, name string) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (email, name)
		 VALUES ($1, $2)
		 RETURNING id, email, name, created_at, updated_at`,
		email, name,
	).Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" { // unique_violation
				return models.User{}, serr.ErrAlreadyExists
			}
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

// Update выполняет partial update: nil-поле сохраняет прежнее значение (COALESCE).
//
// updated_at приложение не проставляет — его обновляет триггер на стороне базы.
// RETURNING отличает "строки нет" от прочих ошибок.
//
// Ошибки:
//   - ErrNotFound — нет строки с таким id
//   - ErrAlreadyExists — новый email уже занят (unique_violation)
//   - ErrInternal — ошибка базы данных
func (r *UsersRepository) Update(ctx context.Context, id int64, email, name *string) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`UPDATE users
		 SET email = COALESCE($1, email),
		     name  = COALESCE($2, name)
		 WHERE id = $3
		 RETURNING id, email, name, created_at, updated_at`,
		email, name, id,
	).Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" { // unique_violation
				return models.User{}, serr.ErrAlreadyExists
			}
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

// Delete удаляет пользователя по id.
//
// Ошибки:
//   - ErrNotFound — затронуто 0 строк
//   - ErrInternal — ошибка базы данных
func (r *UsersRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM users WHERE id = $1`,
		id,
	)
	if err != nil {
		return serr.ErrInternal
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if affected == 0 {
		return serr.ErrNotFound
	}

	return nil
}
