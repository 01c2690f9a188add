package create

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/contact-manager/internal/http/middlewarectx"
	"github.com/magabrotheeeer/contact-manager/internal/lib/apperr"
	"github.com/magabrotheeeer/contact-manager/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, user *models.User, req models.ContactRequest) (*models.Contact, error) {
	args := m.Called(ctx, user, req)
	if res := args.Get(0); res != nil {
		return res.(*models.Contact), args.Error(1)
	}
	return nil, args.Error(1)
}

func ptr(s string) *string { return &s }

func TestCreateHandler_ServeHTTP(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	user := &models.User{Username: "test"}

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		wantStatusCode int
		wantBody       string
	}{
		{
			name: "created",
			body: `{"first_name":"Eko","email":"eko@pzn.com"}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, user, models.ContactRequest{FirstName: "Eko", Email: ptr("eko@pzn.com")}).
					Return(&models.Contact{ID: 1, Username: "test", FirstName: "Eko", Email: ptr("eko@pzn.com")}, nil).Once()
			},
			wantStatusCode: http.StatusCreated,
			wantBody:       `{"data":{"id":1,"first_name":"Eko","last_name":null,"email":"eko@pzn.com","phone":null}}`,
		},
		{
			name: "invalid email",
			body: `{"first_name":"Eko","email":"test"}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, user, mock.Anything).
					Return(nil, apperr.Validation("field email must be a valid email")).Once()
			},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       `{"errors":"field email must be a valid email"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/contacts", strings.NewReader(tt.body))
			req = req.WithContext(context.WithValue(req.Context(), middlewarectx.User, user))
			w := httptest.NewRecorder()

			New(logger, svc).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
