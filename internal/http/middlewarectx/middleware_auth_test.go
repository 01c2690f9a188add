package middlewarectx_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/contact-manager/internal/http/middlewarectx"
	"github.com/magabrotheeeer/contact-manager/internal/lib/apperr"
	"github.com/magabrotheeeer/contact-manager/internal/models"
)

// Mock for Service
type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Authenticate(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestAuthMiddleware(t *testing.T) {
	authMock := new(AuthServiceMock)
	handlerCalled := false

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		user, ok := middlewarectx.UserFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, "test", user.Username)
		w.WriteHeader(http.StatusOK)
	})

	handler := middlewarectx.AuthMiddleware(authMock, newNoopLogger())(nextHandler)

	tests := []struct {
		name           string
		authHeader     string
		wantToken      string
		mockUser       *models.User
		mockErr        error
		wantStatusCode int
		wantBody       string
		wantCalled     bool
	}{
		{
			name:           "missing Authorization header",
			wantStatusCode: http.StatusUnauthorized,
			wantBody:       `{"errors":"Unauthorized"}`,
		},
		{
			name:           "unknown token",
			authHeader:     "salah",
			wantToken:      "salah",
			mockErr:        apperr.Unauthenticated("Unauthorized"),
			wantStatusCode: http.StatusUnauthorized,
			wantBody:       `{"errors":"Unauthorized"}`,
		},
		{
			name:           "storage failure",
			authHeader:     "tok",
			wantToken:      "tok",
			mockErr:        errors.New("db error"),
			wantStatusCode: http.StatusInternalServerError,
			wantBody:       `{"errors":"internal server error"}`,
		},
		{
			name:           "raw token",
			authHeader:     "tok",
			wantToken:      "tok",
			mockUser:       &models.User{Username: "test"},
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
		{
			name:           "bearer token",
			authHeader:     "Bearer tok",
			wantToken:      "tok",
			mockUser:       &models.User{Username: "test"},
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled = false
			authMock.ExpectedCalls = nil
			authMock.Calls = nil
			if tt.wantToken != "" {
				authMock.On("Authenticate", mock.Anything, tt.wantToken).Return(tt.mockUser, tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodGet, "/api/users/current", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantCalled, handlerCalled)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			authMock.AssertExpectations(t)
		})
	}
}

func TestUserFromContext_Missing(t *testing.T) {
	_, ok := middlewarectx.UserFromContext(context.Background())
	assert.False(t, ok)
}
