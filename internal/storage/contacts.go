package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/contact-manager/internal/models"
)

const contactColumns = `id, username, first_name, last_name, email, phone`

type rowScanner interface {
	Scan(dest ...any) error
}

// CreateContact сохраняет контакт и возвращает его с присвоенным ID.
func (s *Storage) CreateContact(ctx context.Context, c models.Contact) (*models.Contact, error) {
	const op = "storage.CreateContact"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO contacts (username, first_name, last_name, email, phone)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + contactColumns
	res, err := scanContact(s.DB.QueryRowContext(ctx, query,
		c.Username, c.FirstName, c.LastName, c.Email, c.Phone))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// GetContact возвращает контакт пользователя по ID.
func (s *Storage) GetContact(ctx context.Context, username string, id int64) (*models.Contact, error) {
	const op = "storage.GetContact"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + contactColumns + `
			  FROM contacts
			  WHERE id = $1 AND username = $2`
	res, err := scanContact(s.DB.QueryRowContext(ctx, query, id, username))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// CountContact возвращает количество контактов с данным ID у пользователя (0 или 1).
func (s *Storage) CountContact(ctx context.Context, username string, id int64) (int, error) {
	const op = "storage.CountContact"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var count int
	if err := s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM contacts WHERE id = $1 AND username = $2`, id, username).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// UpdateContact перезаписывает все поля контакта пользователя.
func (s *Storage) UpdateContact(ctx context.Context, c models.Contact) (*models.Contact, error) {
	const op = "storage.UpdateContact"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE contacts
			  SET first_name = $1, last_name = $2, email = $3, phone = $4
			  WHERE id = $5 AND username = $6
			  RETURNING ` + contactColumns
	res, err := scanContact(s.DB.QueryRowContext(ctx, query,
		c.FirstName, c.LastName, c.Email, c.Phone, c.ID, c.Username))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// RemoveContact удаляет адреса контакта, затем сам контакт, в одной транзакции.
// Возвращает количество удалённых контактов.
func (s *Storage) RemoveContact(ctx context.Context, username string, id int64) (int, error) {
	const op = "storage.RemoveContact"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM addresses
		 WHERE contact_id IN (SELECT id FROM contacts WHERE id = $1 AND username = $2)`,
		id, username); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1 AND username = $2`, id, username)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// SearchContacts возвращает страницу контактов пользователя по фильтру
// и общее количество подходящих контактов.
func (s *Storage) SearchContacts(ctx context.Context, f models.ContactFilter) ([]models.Contact, int, error) {
	const op = "storage.SearchContacts"
	select {
	case <-ctx.Done():
		return nil, 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	conds := []string{"username = $1"}
	args := []any{f.Username}
	if f.Name != "" {
		args = append(args, containsPattern(f.Name))
		conds = append(conds, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d)", len(args), len(args)))
	}
	if f.Email != "" {
		args = append(args, containsPattern(f.Email))
		conds = append(conds, fmt.Sprintf("email ILIKE $%d", len(args)))
	}
	if f.Phone != "" {
		args = append(args, containsPattern(f.Phone))
		conds = append(conds, fmt.Sprintf("phone ILIKE $%d", len(args)))
	}
	where := strings.Join(conds, " AND ")

	var total int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	query := fmt.Sprintf(`SELECT %s
			  FROM contacts
			  WHERE %s
			  ORDER BY id
			  LIMIT $%d OFFSET $%d`, contactColumns, where, len(args)+1, len(args)+2)
	rows, err := s.DB.QueryContext(ctx, query, append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.Contact, 0, f.Limit)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	return result, total, nil
}

func scanContact(row rowScanner) (*models.Contact, error) {
	var c models.Contact
	if err := row.Scan(&c.ID, &c.Username, &c.FirstName, &c.LastName, &c.Email, &c.Phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return &c, nil
}
