package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/contact-manager/internal/models"
)

const addressColumns = `id, contact_id, street, city, province, country, postal_code`

// CreateAddress сохраняет адрес контакта и возвращает его с присвоенным ID.
func (s *Storage) CreateAddress(ctx context.Context, a models.Address) (*models.Address, error) {
	const op = "storage.CreateAddress"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO addresses (contact_id, street, city, province, country, postal_code)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING ` + addressColumns
	res, err := scanAddress(s.DB.QueryRowContext(ctx, query,
		a.ContactID, a.Street, a.City, a.Province, a.Country, a.PostalCode))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// GetAddress возвращает адрес контакта по ID.
func (s *Storage) GetAddress(ctx context.Context, contactID, id int64) (*models.Address, error) {
	const op = "storage.GetAddress"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + addressColumns + `
			  FROM addresses
			  WHERE id = $1 AND contact_id = $2`
	res, err := scanAddress(s.DB.QueryRowContext(ctx, query, id, contactID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// UpdateAddress перезаписывает все поля адреса контакта.
func (s *Storage) UpdateAddress(ctx context.Context, a models.Address) (*models.Address, error) {
	const op = "storage.UpdateAddress"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE addresses
			  SET street = $1, city = $2, province = $3, country = $4, postal_code = $5
			  WHERE id = $6 AND contact_id = $7
			  RETURNING ` + addressColumns
	res, err := scanAddress(s.DB.QueryRowContext(ctx, query,
		a.Street, a.City, a.Province, a.Country, a.PostalCode, a.ID, a.ContactID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// RemoveAddress удаляет адрес контакта и возвращает количество удалённых строк.
func (s *Storage) RemoveAddress(ctx context.Context, contactID, id int64) (int, error) {
	const op = "storage.RemoveAddress"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM addresses WHERE id = $1 AND contact_id = $2`, id, contactID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListAddresses возвращает все адреса контакта в порядке создания.
func (s *Storage) ListAddresses(ctx context.Context, contactID int64) ([]models.Address, error) {
	const op = "storage.ListAddresses"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + addressColumns + `
			  FROM addresses
			  WHERE contact_id = $1
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query, contactID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := []models.Address{}
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

func scanAddress(row rowScanner) (*models.Address, error) {
	var a models.Address
	if err := row.Scan(&a.ID, &a.ContactID, &a.Street, &a.City, &a.Province, &a.Country, &a.PostalCode); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAddressNotFound
		}
		return nil, err
	}
	return &a, nil
}
