package list

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
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

func (m *MockService) List(ctx context.Context, user *models.User, contactID string) ([]models.Address, error) {
	args := m.Called(ctx, user, contactID)
	if res := args.Get(0); res != nil {
		return res.([]models.Address), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	user := &models.User{Username: "test"}

	tests := []struct {
		name           string
		mockRes        []models.Address
		mockErr        error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "empty list is an array",
			mockRes:        []models.Address{},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"data":[]}`,
		},
		{
			name:           "two addresses",
			mockRes:        []models.Address{{ID: 1, Country: "A", PostalCode: "1"}, {ID: 2, Country: "B", PostalCode: "2"}},
			expectedStatus: http.StatusOK,
			expectedBody: `{"data":[` +
				`{"id":1,"street":null,"city":null,"province":null,"country":"A","postal_code":"1"},` +
				`{"id":2,"street":null,"city":null,"province":null,"country":"B","postal_code":"2"}]}`,
		},
		{
			name:           "foreign contact",
			mockErr:        apperr.NotFound("contact not found"),
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"errors":"contact not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.mockErr != nil {
				svc.On("List", mock.Anything, user, "3").Return(nil, tt.mockErr).Once()
			} else {
				svc.On("List", mock.Anything, user, "3").Return(tt.mockRes, nil).Once()
			}

			req := httptest.NewRequest(http.MethodGet, "/api/contacts/3/addresses", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("contactId", "3")
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			req = req.WithContext(context.WithValue(ctx, middlewarectx.User, user))
			w := httptest.NewRecorder()

			New(logger, svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
