// Серверная модель пользователя
package models

import "time"

// User — запись пользователя в том виде, в каком она хранится в БД
// и отдаётся наружу через HTTP API.
//
// Порядок полей фиксированный (id, email, name, created_at, updated_at) —
// в этом же порядке repository сканирует колонки.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
