//go:build integration

package storage

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/contact-manager/internal/migrations"
)

// TestDataFactory содержит методы для создания тестовых данных.
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных.
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser создает тестового пользователя с токеном.
func (f *TestDataFactory) CreateUser(t *testing.T, username, name, token string) {
	_, err := f.storage.DB.Exec(`INSERT INTO users (username, password, name, token)
		VALUES ($1, $2, $3, $4)`, username, "hash", name, token)
	require.NoError(t, err)
}

// CreateContact создает тестовый контакт и возвращает его ID.
func (f *TestDataFactory) CreateContact(t *testing.T, username, firstName, lastName, email string) int64 {
	var id int64
	err := f.storage.DB.QueryRow(`INSERT INTO contacts (username, first_name, last_name, email, phone)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		username, firstName, lastName, email, "081234567890").Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateAddress создает тестовый адрес и возвращает его ID.
func (f *TestDataFactory) CreateAddress(t *testing.T, contactID int64) int64 {
	var id int64
	err := f.storage.DB.QueryRow(`INSERT INTO addresses (contact_id, street, city, province, country, postal_code)
		VALUES ($1, 'jalan test', 'kota test', 'provinsi test', 'indonesia', '123456') RETURNING id`,
		contactID).Scan(&id)
	require.NoError(t, err)
	return id
}

// TestVerification содержит проверки состояния БД.
type TestVerification struct {
	storage *Storage
}

// NewTestVerification создает новый объект для проверки результатов.
func NewTestVerification(storage *Storage) *TestVerification {
	return &TestVerification{storage: storage}
}

// CountRows возвращает количество строк таблицы, удовлетворяющих условию.
func (v *TestVerification) CountRows(t *testing.T, table, where string, args ...any) int {
	var count int
	err := v.storage.DB.QueryRow("SELECT COUNT(*) FROM "+table+" WHERE "+where, args...).Scan(&count)
	require.NoError(t, err)
	return count
}

// setupTestDatabase поднимает PostgreSQL в контейнере и применяет миграции.
func setupTestDatabase(t *testing.T) *Storage {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("contacts"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err, "failed to start container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	path, err := filepath.Abs("../../migrations")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, path, slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, CheckDatabaseReady(ctx, storage))

	return storage
}
