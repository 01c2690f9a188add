// Package token выпускает непрозрачные токены сессий.
package token

import (
	"strings"

	"github.com/google/uuid"
)

// New возвращает новый случайный токен сессии (UUIDv4).
func New() string {
	return uuid.NewString()
}

// FromHeader извлекает токен из значения заголовка Authorization.
// Необязательный префикс "Bearer " отбрасывается.
func FromHeader(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > len("Bearer ") && strings.EqualFold(header[:len("Bearer ")], "Bearer ") {
		header = strings.TrimSpace(header[len("Bearer "):])
	}
	return header
}
