package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/contact-manager/internal/lib/apperr"
	"github.com/magabrotheeeer/contact-manager/internal/models"
	services "github.com/magabrotheeeer/contact-manager/internal/services/address"
	"github.com/magabrotheeeer/contact-manager/internal/storage"
)

type AddressRepoMock struct {
	mock.Mock
}

func (m *AddressRepoMock) CountContact(ctx context.Context, username string, id int64) (int, error) {
	args := m.Called(ctx, username, id)
	return args.Int(0), args.Error(1)
}

func (m *AddressRepoMock) CreateAddress(ctx context.Context, a models.Address) (*models.Address, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Address), args.Error(1)
}

func (m *AddressRepoMock) GetAddress(ctx context.Context, contactID, id int64) (*models.Address, error) {
	args := m.Called(ctx, contactID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Address), args.Error(1)
}

func (m *AddressRepoMock) UpdateAddress(ctx context.Context, a models.Address) (*models.Address, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Address), args.Error(1)
}

func (m *AddressRepoMock) RemoveAddress(ctx context.Context, contactID, id int64) (int, error) {
	args := m.Called(ctx, contactID, id)
	return args.Int(0), args.Error(1)
}

func (m *AddressRepoMock) ListAddresses(ctx context.Context, contactID int64) ([]models.Address, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Address), args.Error(1)
}

var user = &models.User{Username: "test"}

var validReq = models.AddressRequest{Country: "Indonesia", PostalCode: "12345"}

func newService(repo *AddressRepoMock) *services.AddressService {
	return services.NewAddressService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func assertAppErr(t *testing.T, err error, kind error, msg string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)
	if msg != "" {
		got, ok := apperr.Message(err)
		assert.True(t, ok)
		assert.Equal(t, msg, got)
	}
}

// Каждая операция должна быть закрыта проверкой владельца контакта.
func TestAddressService_OwnershipGate(t *testing.T) {
	ops := map[string]func(s *services.AddressService, contactID string) error{
		"create": func(s *services.AddressService, c string) error {
			_, err := s.Create(context.Background(), user, c, validReq)
			return err
		},
		"get": func(s *services.AddressService, c string) error {
			_, err := s.Get(context.Background(), user, c, "1")
			return err
		},
		"update": func(s *services.AddressService, c string) error {
			_, err := s.Update(context.Background(), user, c, "1", validReq)
			return err
		},
		"remove": func(s *services.AddressService, c string) error {
			_, err := s.Remove(context.Background(), user, c, "1")
			return err
		},
		"list": func(s *services.AddressService, c string) error {
			_, err := s.List(context.Background(), user, c)
			return err
		},
	}

	for name, op := range ops {
		t.Run(name+" foreign contact", func(t *testing.T) {
			repo := new(AddressRepoMock)
			repo.On("CountContact", mock.Anything, "test", int64(5)).Return(0, nil).Once()
			assertAppErr(t, op(newService(repo), "5"), apperr.ErrNotFound, "contact not found")
			repo.AssertExpectations(t)
		})
		t.Run(name+" invalid contact id", func(t *testing.T) {
			repo := new(AddressRepoMock)
			assertAppErr(t, op(newService(repo), "x"), apperr.ErrValidation, "")
			repo.AssertNotCalled(t, "CountContact", mock.Anything, mock.Anything, mock.Anything)
		})
		t.Run(name+" storage error", func(t *testing.T) {
			repo := new(AddressRepoMock)
			repo.On("CountContact", mock.Anything, "test", int64(5)).Return(0, errors.New("db error")).Once()
			err := op(newService(repo), "5")
			require.Error(t, err)
			assert.NotErrorIs(t, err, apperr.ErrNotFound)
		})
	}
}

func TestAddressService_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		repo := new(AddressRepoMock)
		repo.On("CountContact", mock.Anything, "test", int64(5)).Return(1, nil).Once()
		want := validReq.ToAddress(5)
		created := want
		created.ID = 9
		repo.On("CreateAddress", mock.Anything, want).Return(&created, nil).Once()

		got, err := newService(repo).Create(context.Background(), user, "5", validReq)
		require.NoError(t, err)
		assert.Equal(t, int64(9), got.ID)
		repo.AssertExpectations(t)
	})

	t.Run("missing country and postal code", func(t *testing.T) {
		repo := new(AddressRepoMock)
		repo.On("CountContact", mock.Anything, "test", int64(5)).Return(1, nil).Once()
		_, err := newService(repo).Create(context.Background(), user, "5", models.AddressRequest{})
		assertAppErr(t, err, apperr.ErrValidation,
			"field country is a required field, field postal_code is a required field")
	})

	t.Run("empty optional fields", func(t *testing.T) {
		repo := new(AddressRepoMock)
		repo.On("CountContact", mock.Anything, "test", int64(5)).Return(1, nil).Once()
		empty := ""
		req := validReq
		req.Street, req.City, req.Province = &empty, &empty, &empty

		_, err := newService(repo).Create(context.Background(), user, "5", req)
		assertAppErr(t, err, apperr.ErrValidation,
			"field street must not be empty, field city must not be empty, field province must not be empty")
		repo.AssertNotCalled(t, "CreateAddress", mock.Anything, mock.Anything)
	})
}

func TestAddressService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := new(AddressRepoMock)
		repo.On("CountContact", mock.Anything, "test", int64(5)).Return(1, nil).Once()
		repo.On("GetAddress", mock.Anything, int64(5), int64(9)).Return(&models.Address{ID: 9, ContactID: 5}, nil).Once()
		got, err := newService(repo).Get(context.Background(), user, "5", "9")
		require.NoError(t, err)
		assert.Equal(t, int64(9), got.ID)
	})

	t.Run("missing address", func(t *testing.T) {
		repo := new(AddressRepoMock)
		repo.On("CountContact", mock.Anything, "test", int64(5)).Return(1, nil).Once()
		repo.On("GetAddress", mock.Anything, int64(5), int64(10)).Return(nil, storage.ErrAddressNotFound).Once()
		_, err := newService(repo).Get(context.Background(), user, "5", "10")
		assertAppErr(t, err, apperr.ErrNotFound, "address not found")
	})

	t.Run("invalid address id", func(t *testing.T) {
		repo := new(AddressRepoMock)
		repo.On("CountContact", mock.Anything, "test", int64(5)).Return(1, nil).Once()
		_, err := newService(repo).Get(context.Background(), user, "5", "0")
		assertAppErr(t, err, apperr.ErrValidation, "field addressId must be a positive number")
	})
}

func TestAddressService_Update(t *testing.T) {
	repo := new(AddressRepoMock)
	repo.On("CountContact", mock.Anything, "test", int64(5)).Return(1, nil).Twice()
	want := validReq.ToAddress(5)
	want.ID = 9
	repo.On("UpdateAddress", mock.Anything, want).Return(&want, nil).Once()
	svc := newService(repo)

	got, err := svc.Update(context.Background(), user, "5", "9", validReq)
	require.NoError(t, err)
	assert.Equal(t, &want, got)

	_, err = svc.Update(context.Background(), user, "5", "9", models.AddressRequest{Country: "Indonesia", PostalCode: "12345678901"})
	assertAppErr(t, err, apperr.ErrValidation, "field postal_code must be at most 10 characters")
	repo.AssertExpectations(t)
}

func TestAddressService_Remove(t *testing.T) {
	repo := new(AddressRepoMock)
	repo.On("CountContact", mock.Anything, "test", int64(5)).Return(1, nil).Twice()
	repo.On("RemoveAddress", mock.Anything, int64(5), int64(9)).Return(1, nil).Once()
	repo.On("RemoveAddress", mock.Anything, int64(5), int64(10)).Return(0, nil).Once()
	svc := newService(repo)

	got, err := svc.Remove(context.Background(), user, "5", "9")
	require.NoError(t, err)
	assert.Equal(t, "OK", got)

	_, err = svc.Remove(context.Background(), user, "5", "10")
	assertAppErr(t, err, apperr.ErrNotFound, "address not found")
}

func TestAddressService_List(t *testing.T) {
	repo := new(AddressRepoMock)
	repo.On("CountContact", mock.Anything, "test", int64(5)).Return(1, nil).Once()
	repo.On("ListAddresses", mock.Anything, int64(5)).Return(nil, nil).Once()

	got, err := newService(repo).List(context.Background(), user, "5")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
