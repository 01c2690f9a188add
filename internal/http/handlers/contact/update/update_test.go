package update

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/contact-manager/internal/http/middlewarectx"
	"github.com/magabrotheeeer/contact-manager/internal/lib/apperr"
	"github.com/magabrotheeeer/contact-manager/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, user *models.User, contactID string, req models.ContactRequest) (*models.Contact, error) {
	args := m.Called(ctx, user, contactID, req)
	if res := args.Get(0); res != nil {
		return res.(*models.Contact), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestUpdateHandler_ServeHTTP(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	user := &models.User{Username: "test"}
	req := models.ContactRequest{FirstName: "Budi"}

	tests := []struct {
		name           string
		setupMock      func(*MockService)
		wantStatusCode int
		wantBody       string
	}{
		{
			name: "updated",
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, user, "5", req).Return(&models.Contact{ID: 5, FirstName: "Budi"}, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantBody:       `{"data":{"id":5,"first_name":"Budi","last_name":null,"email":null,"phone":null}}`,
		},
		{
			name: "missing contact",
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, user, "5", req).Return(nil, apperr.NotFound("contact not found")).Once()
			},
			wantStatusCode: http.StatusNotFound,
			wantBody:       `{"errors":"contact not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			r := httptest.NewRequest(http.MethodPut, "/api/contacts/5", strings.NewReader(`{"first_name":"Budi"}`))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("contactId", "5")
			ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
			r = r.WithContext(context.WithValue(ctx, middlewarectx.User, user))
			w := httptest.NewRecorder()

			New(logger, svc).ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
