// Package services содержит бизнес-логику адресов контакта.
//
// Каждая операция сначала проверяет, что контакт из пути принадлежит
// текущему пользователю. Чужой и несуществующий контакт неразличимы.
package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/magabrotheeeer/contact-manager/internal/lib/apperr"
	"github.com/magabrotheeeer/contact-manager/internal/lib/sl"
	"github.com/magabrotheeeer/contact-manager/internal/lib/validate"
	"github.com/magabrotheeeer/contact-manager/internal/models"
	"github.com/magabrotheeeer/contact-manager/internal/storage"
)

const (
	msgContactNotFound = "contact not found"
	msgAddressNotFound = "address not found"
)

// AddressRepository определяет методы для работы с адресами в хранилище.
type AddressRepository interface {
	// CountContact возвращает количество контактов с таким ID у пользователя.
	CountContact(ctx context.Context, username string, id int64) (int, error)
	CreateAddress(ctx context.Context, a models.Address) (*models.Address, error)
	GetAddress(ctx context.Context, contactID, id int64) (*models.Address, error)
	UpdateAddress(ctx context.Context, a models.Address) (*models.Address, error)
	RemoveAddress(ctx context.Context, contactID, id int64) (int, error)
	// ListAddresses возвращает все адреса контакта в порядке создания.
	ListAddresses(ctx context.Context, contactID int64) ([]models.Address, error)
}

// AddressService реализует операции над адресами контактов текущего пользователя.
type AddressService struct {
	repo     AddressRepository
	validate *validate.Validator
	log      *slog.Logger
}

// NewAddressService создает новый экземпляр AddressService.
func NewAddressService(repo AddressRepository, log *slog.Logger) *AddressService {
	return &AddressService{
		repo:     repo,
		validate: validate.New(),
		log:      log,
	}
}

// ownedContact проверяет ID контакта из пути и его принадлежность пользователю.
func (s *AddressService) ownedContact(ctx context.Context, user *models.User, rawContactID string) (int64, error) {
	contactID, err := validate.ID("contactId", rawContactID)
	if err != nil {
		return 0, err
	}
	count, err := s.repo.CountContact(ctx, user.Username, contactID)
	if err != nil {
		return 0, err
	}
	if count != 1 {
		return 0, apperr.NotFound(msgContactNotFound)
	}
	return contactID, nil
}

// Create добавляет адрес к контакту пользователя.
func (s *AddressService) Create(ctx context.Context, user *models.User, rawContactID string, req models.AddressRequest) (*models.Address, error) {
	contactID, err := s.ownedContact(ctx, user, rawContactID)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	created, err := s.repo.CreateAddress(ctx, req.ToAddress(contactID))
	if err != nil {
		return nil, err
	}
	s.log.Info("created new address", sl.Op("services.address.Create"), slog.Int64("contact_id", contactID), slog.Int64("id", created.ID))
	return created, nil
}

// Get возвращает адрес контакта пользователя.
func (s *AddressService) Get(ctx context.Context, user *models.User, rawContactID, rawAddressID string) (*models.Address, error) {
	contactID, err := s.ownedContact(ctx, user, rawContactID)
	if err != nil {
		return nil, err
	}
	addressID, err := validate.ID("addressId", rawAddressID)
	if err != nil {
		return nil, err
	}
	a, err := s.repo.GetAddress(ctx, contactID, addressID)
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

// Update полностью перезаписывает адрес контакта пользователя.
func (s *AddressService) Update(ctx context.Context, user *models.User, rawContactID, rawAddressID string, req models.AddressRequest) (*models.Address, error) {
	contactID, err := s.ownedContact(ctx, user, rawContactID)
	if err != nil {
		return nil, err
	}
	addressID, err := validate.ID("addressId", rawAddressID)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	a := req.ToAddress(contactID)
	a.ID = addressID
	updated, err := s.repo.UpdateAddress(ctx, a)
	if err != nil {
		return nil, notFound(err)
	}
	return updated, nil
}

// Remove удаляет адрес контакта пользователя.
func (s *AddressService) Remove(ctx context.Context, user *models.User, rawContactID, rawAddressID string) (string, error) {
	contactID, err := s.ownedContact(ctx, user, rawContactID)
	if err != nil {
		return "", err
	}
	addressID, err := validate.ID("addressId", rawAddressID)
	if err != nil {
		return "", err
	}
	count, err := s.repo.RemoveAddress(ctx, contactID, addressID)
	if err != nil {
		return "", err
	}
	if count != 1 {
		return "", apperr.NotFound(msgAddressNotFound)
	}
	s.log.Info("removed address", sl.Op("services.address.Remove"), slog.Int64("contact_id", contactID), slog.Int64("id", addressID))
	return "OK", nil
}

// List возвращает все адреса контакта пользователя.
func (s *AddressService) List(ctx context.Context, user *models.User, rawContactID string) ([]models.Address, error) {
	contactID, err := s.ownedContact(ctx, user, rawContactID)
	if err != nil {
		return nil, err
	}
	addresses, err := s.repo.ListAddresses(ctx, contactID)
	if err != nil {
		return nil, err
	}
	if addresses == nil {
		addresses = []models.Address{}
	}
	return addresses, nil
}

func notFound(err error) error {
	if errors.Is(err, storage.ErrAddressNotFound) {
		return apperr.NotFound(msgAddressNotFound)
	}
	return err
}
