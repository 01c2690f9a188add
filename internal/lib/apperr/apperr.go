// Package apperr описывает классы ошибок прикладного уровня.
//
// Сервисы возвращают *Error с одним из видов ниже, HTTP-слой по виду выбирает
// статус ответа, а сообщение отдаёт клиенту как есть.
package apperr

import (
	"errors"
	"fmt"
)

// Виды ошибок.
var (
	ErrValidation      = errors.New("validation error")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrConflict        = errors.New("conflict")
	ErrNotFound        = errors.New("not found")
)

// Error представляет ошибку с видом и сообщением для клиента.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap позволяет сравнивать ошибку с видом через errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind
}

// Validation создаёт ошибку валидации.
func Validation(msg string) *Error {
	return &Error{Kind: ErrValidation, Message: msg}
}

// Unauthenticated создаёт ошибку аутентификации.
func Unauthenticated(msg string) *Error {
	return &Error{Kind: ErrUnauthenticated, Message: msg}
}

// Conflict создаёт ошибку конфликта.
func Conflict(msg string) *Error {
	return &Error{Kind: ErrConflict, Message: msg}
}

// NotFound создаёт ошибку отсутствия ресурса.
func NotFound(msg string) *Error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

// Message возвращает сообщение для клиента, если err содержит *Error.
func Message(err error) (string, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Message, true
	}
	return "", false
}
