// Package password реализует хеширование и проверку паролей пользователей.
//
// Пароли хранятся только в виде bcrypt-хеша, соль генерируется bcrypt для каждого вызова.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch возвращается, когда пароль не соответствует сохранённому хешу.
var ErrMismatch = errors.New("password does not match")

// Cost задает стоимость bcrypt по умолчанию.
const Cost = bcrypt.DefaultCost

// GetHash возвращает bcrypt-хеш пароля со стоимостью по умолчанию.
func GetHash(password string) (string, error) {
	return GetHashWithCost(password, Cost)
}

// GetHashWithCost возвращает bcrypt-хеш пароля с заданной стоимостью.
func GetHashWithCost(password string, cost int) (string, error) {
	const op = "password.GetHash"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashed), nil
}

// CompareHash сравнивает bcrypt-хеш с введённым паролем.
//
// Несовпадение возвращается как ErrMismatch, прочие ошибки bcrypt оборачиваются.
func CompareHash(hash, password string) error {
	const op = "password.CompareHash"
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
