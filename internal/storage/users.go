package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/contact-manager/internal/models"
)

// CountUserByUsername возвращает количество пользователей с таким username (0 или 1).
func (s *Storage) CountUserByUsername(ctx context.Context, username string) (int, error) {
	const op = "storage.CountUserByUsername"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var count int
	if err := s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE username = $1`, username).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// CreateUser сохраняет нового пользователя.
func (s *Storage) CreateUser(ctx context.Context, user models.User) error {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (username, password, name)
			  VALUES ($1, $2, $3)`
	if _, err := s.DB.ExecContext(ctx, query, user.Username, user.PasswordHash, user.Name); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, ErrUserExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetUserByUsername возвращает пользователя по username.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT username, password, name, token
			  FROM users
			  WHERE username = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, username))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// GetUserByToken возвращает пользователя, чей токен сессии точно совпадает с token.
func (s *Storage) GetUserByToken(ctx context.Context, token string) (*models.User, error) {
	const op = "storage.GetUserByToken"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT username, password, name, token
			  FROM users
			  WHERE token = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, token))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// UpdateUser меняет имя и/или хеш пароля. nil-поля остаются прежними.
func (s *Storage) UpdateUser(ctx context.Context, username string, name, passwordHash *string) (*models.User, error) {
	const op = "storage.UpdateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET name = COALESCE($2, name), password = COALESCE($3, password)
			  WHERE username = $1
			  RETURNING username, password, name, token`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, username, name, passwordHash))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// UpdateUserToken сохраняет токен сессии. nil очищает токен.
func (s *Storage) UpdateUserToken(ctx context.Context, username string, token *string) error {
	const op = "storage.UpdateUserToken"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `UPDATE users SET token = $2 WHERE username = $1`, username, token)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	var token sql.NullString
	if err := row.Scan(&u.Username, &u.PasswordHash, &u.Name, &token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if token.Valid {
		u.Token = &token.String
	}
	return &u, nil
}
