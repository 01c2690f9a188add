// Package services содержит бизнес-логику контактов пользователя.
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

const msgContactNotFound = "contact not found"

// ContactRepository определяет методы для работы с контактами в хранилище.
type ContactRepository interface {
	// CreateContact добавляет контакт и возвращает его с присвоенным ID.
	CreateContact(ctx context.Context, c models.Contact) (*models.Contact, error)
	// GetContact возвращает контакт пользователя по ID.
	GetContact(ctx context.Context, username string, id int64) (*models.Contact, error)
	// UpdateContact перезаписывает контакт пользователя.
	UpdateContact(ctx context.Context, c models.Contact) (*models.Contact, error)
	// RemoveContact удаляет контакт вместе с адресами и возвращает количество удалённых контактов.
	RemoveContact(ctx context.Context, username string, id int64) (int, error)
	// SearchContacts возвращает страницу контактов и общее количество подходящих.
	SearchContacts(ctx context.Context, f models.ContactFilter) ([]models.Contact, int, error)
}

// ContactService реализует операции над контактами текущего пользователя.
type ContactService struct {
	repo     ContactRepository
	validate *validate.Validator
	log      *slog.Logger
}

// NewContactService создает новый экземпляр ContactService.
func NewContactService(repo ContactRepository, log *slog.Logger) *ContactService {
	return &ContactService{
		repo:     repo,
		validate: validate.New(),
		log:      log,
	}
}

// Create создает контакт пользователя.
func (s *ContactService) Create(ctx context.Context, user *models.User, req models.ContactRequest) (*models.Contact, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	created, err := s.repo.CreateContact(ctx, req.ToContact(user.Username))
	if err != nil {
		return nil, err
	}
	s.log.Info("created new contact", sl.Op("services.contact.Create"), slog.Int64("id", created.ID), slog.String("username", user.Username))
	return created, nil
}

// Get возвращает контакт пользователя по ID из пути.
func (s *ContactService) Get(ctx context.Context, user *models.User, rawID string) (*models.Contact, error) {
	id, err := validate.ID("contactId", rawID)
	if err != nil {
		return nil, err
	}
	c, err := s.repo.GetContact(ctx, user.Username, id)
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

// Update полностью перезаписывает контакт пользователя.
func (s *ContactService) Update(ctx context.Context, user *models.User, rawID string, req models.ContactRequest) (*models.Contact, error) {
	id, err := validate.ID("contactId", rawID)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	c := req.ToContact(user.Username)
	c.ID = id
	updated, err := s.repo.UpdateContact(ctx, c)
	if err != nil {
		return nil, notFound(err)
	}
	return updated, nil
}

// Remove удаляет контакт пользователя вместе с его адресами.
func (s *ContactService) Remove(ctx context.Context, user *models.User, rawID string) (string, error) {
	id, err := validate.ID("contactId", rawID)
	if err != nil {
		return "", err
	}
	count, err := s.repo.RemoveContact(ctx, user.Username, id)
	if err != nil {
		return "", err
	}
	if count != 1 {
		return "", apperr.NotFound(msgContactNotFound)
	}
	s.log.Info("removed contact", sl.Op("services.contact.Remove"), slog.Int64("id", id), slog.String("username", user.Username))
	return "OK", nil
}

// Search ищет контакты пользователя по подстрокам и возвращает страницу результата.
func (s *ContactService) Search(ctx context.Context, user *models.User, req models.SearchContactRequest) (*models.ContactPage, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	contacts, total, err := s.repo.SearchContacts(ctx, models.ContactFilter{
		Username: user.Username,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Limit:    req.Size,
		Offset:   (req.Page - 1) * req.Size,
	})
	if err != nil {
		return nil, err
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	return &models.ContactPage{
		Data:   contacts,
		Paging: models.NewPaging(req.Page, req.Size, total),
	}, nil
}

func notFound(err error) error {
	if errors.Is(err, storage.ErrContactNotFound) {
		return apperr.NotFound(msgContactNotFound)
	}
	return err
}
