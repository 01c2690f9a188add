// Package services содержит бизнес-логику пользователей: регистрацию, вход,
// профиль, выход и проверку токена сессии.
package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/contact-manager/internal/lib/apperr"
	"github.com/magabrotheeeer/contact-manager/internal/lib/password"
	"github.com/magabrotheeeer/contact-manager/internal/lib/sl"
	"github.com/magabrotheeeer/contact-manager/internal/lib/token"
	"github.com/magabrotheeeer/contact-manager/internal/lib/validate"
	"github.com/magabrotheeeer/contact-manager/internal/models"
	"github.com/magabrotheeeer/contact-manager/internal/storage"
)

// Сообщения об ошибках, которые видит клиент.
const (
	msgUsernameExists = "username already exists"
	msgWrongLogin     = "username or password wrong"
	msgUnauthorized   = "Unauthorized"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CountUserByUsername возвращает количество пользователей с таким именем.
	CountUserByUsername(ctx context.Context, username string) (int, error)
	// CreateUser сохраняет нового пользователя.
	CreateUser(ctx context.Context, user models.User) error
	// GetUserByUsername возвращает пользователя по имени.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// GetUserByToken возвращает владельца токена сессии.
	GetUserByToken(ctx context.Context, token string) (*models.User, error)
	// UpdateUser меняет переданные поля и возвращает обновлённого пользователя.
	UpdateUser(ctx context.Context, username string, name, passwordHash *string) (*models.User, error)
	// UpdateUserToken выставляет или очищает токен сессии.
	UpdateUserToken(ctx context.Context, username string, token *string) error
}

// Cache описывает методы для кэширования сессий. Может быть nil.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// UserService реализует операции над учётной записью пользователя.
type UserService struct {
	repo       UserRepository
	cache      Cache
	validate   *validate.Validator
	sessionTTL time.Duration
	log        *slog.Logger
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(repo UserRepository, cache Cache, sessionTTL time.Duration, log *slog.Logger) *UserService {
	return &UserService{
		repo:       repo,
		cache:      cache,
		validate:   validate.New(),
		sessionTTL: sessionTTL,
		log:        log,
	}
}

func sessionKey(tok string) string {
	return "session:" + tok
}

// Register создает пользователя с хэшированным паролем.
func (s *UserService) Register(ctx context.Context, req models.RegisterUserRequest) (*models.UserResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	count, err := s.repo.CountUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict(msgUsernameExists)
	}

	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Username:     req.Username,
		PasswordHash: hashed,
		Name:         req.Name,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			return nil, apperr.Conflict(msgUsernameExists)
		}
		return nil, err
	}

	s.log.Info("user registered", sl.Op("services.user.Register"), slog.String("username", user.Username))
	resp := user.ToResponse()
	return &resp, nil
}

// Login проверяет пароль и выдаёт новый токен сессии.
// Неизвестное имя и неверный пароль неразличимы для клиента.
func (s *UserService) Login(ctx context.Context, req models.LoginUserRequest) (*models.TokenResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, apperr.Unauthenticated(msgWrongLogin)
		}
		return nil, err
	}
	if err := password.CompareHash(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, apperr.Unauthenticated(msgWrongLogin)
		}
		return nil, err
	}

	tok := token.New()
	if err := s.repo.UpdateUserToken(ctx, user.Username, &tok); err != nil {
		return nil, err
	}
	s.forgetSession(ctx, user.Token)

	return &models.TokenResponse{Token: tok}, nil
}

// Current возвращает публичные поля текущего пользователя.
func (s *UserService) Current(_ context.Context, user *models.User) models.UserResponse {
	return user.ToResponse()
}

// Update частично обновляет имя и/или пароль текущего пользователя.
func (s *UserService) Update(ctx context.Context, user *models.User, req models.UpdateUserRequest) (*models.UserResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	var hashed *string
	if req.Password != nil {
		h, err := password.GetHash(*req.Password)
		if err != nil {
			return nil, err
		}
		hashed = &h
	}

	updated, err := s.repo.UpdateUser(ctx, user.Username, req.Name, hashed)
	if err != nil {
		return nil, err
	}
	s.forgetSession(ctx, user.Token)

	resp := updated.ToResponse()
	return &resp, nil
}

// Logout очищает токен текущего пользователя.
func (s *UserService) Logout(ctx context.Context, user *models.User) (string, error) {
	if err := s.repo.UpdateUserToken(ctx, user.Username, nil); err != nil {
		return "", err
	}
	s.forgetSession(ctx, user.Token)

	s.log.Info("user logged out", sl.Op("services.user.Logout"), slog.String("username", user.Username))
	return "OK", nil
}

// Authenticate находит пользователя по токену сессии, сначала в кеше.
// Без кеша (cache == nil) каждый запрос читает базу.
func (s *UserService) Authenticate(ctx context.Context, tok string) (*models.User, error) {
	if tok == "" {
		return nil, apperr.Unauthenticated(msgUnauthorized)
	}
	if s.cache == nil {
		return s.userByToken(ctx, tok)
	}

	key := sessionKey(tok)
	var cached models.Session
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.Warn("failed to read session from cache", slog.String("key", key), sl.Err(err))
	}
	if found {
		return cached.User(), nil
	}

	user, err := s.userByToken(ctx, tok)
	if err != nil {
		return nil, err
	}
	session := user.ToSession(tok)
	if err := s.cache.Set(ctx, key, session, s.sessionTTL); err != nil {
		s.log.Warn("failed to cache session", slog.String("key", key), sl.Err(err))
		return session.User(), nil
	}

	// Выход мог очистить токен между чтением из базы и записью в кеш.
	if _, err := s.userByToken(ctx, tok); err != nil {
		s.forgetSession(ctx, &tok)
		return nil, err
	}
	return session.User(), nil
}

func (s *UserService) userByToken(ctx context.Context, tok string) (*models.User, error) {
	user, err := s.repo.GetUserByToken(ctx, tok)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, apperr.Unauthenticated(msgUnauthorized)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) forgetSession(ctx context.Context, tok *string) {
	if s.cache == nil || tok == nil || *tok == "" {
		return
	}
	key := sessionKey(*tok)
	if err := s.cache.Invalidate(ctx, key); err != nil {
		s.log.Warn("failed to invalidate session", slog.String("key", key), sl.Err(err))
	}
}
