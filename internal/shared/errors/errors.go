// Package errors содержит общие доменные ошибки приложения.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// Ресурс уже существует (например email уже занят)
	ErrAlreadyExists = errors.New("already exists")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Используется в тестах: ожидали ошибку, а её нет
	ErrExpectedError = errors.New("expected error")
)

// только для пользователей
var (
	// users
	ErrEmailRequired = errors.New("email is required")
	ErrEmailInvalid  = errors.New("invalid email format")
	ErrNameRequired  = errors.New("name is required")
	ErrNameLength    = errors.New("name must be between 2 and 100 characters")
)
