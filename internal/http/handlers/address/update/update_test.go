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

func (m *MockService) Update(ctx context.Context, user *models.User, contactID, addressID string, req models.AddressRequest) (*models.Address, error) {
	args := m.Called(ctx, user, contactID, addressID, req)
	if res := args.Get(0); res != nil {
		return res.(*models.Address), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestUpdateHandler_ServeHTTP(t *testing.T) {
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
			name: "updated",
			body: `{"country":"Malaysia","postal_code":"1111"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, user, "3", "7", models.AddressRequest{Country: "Malaysia", PostalCode: "1111"}).
					Return(&models.Address{ID: 7, Country: "Malaysia", PostalCode: "1111"}, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantBody: `{"data":{"id":7,"street":null,"city":null,"province":null,` +
				`"country":"Malaysia","postal_code":"1111"}}`,
		},
		{
			name: "validation",
			body: `{}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, user, "3", "7", models.AddressRequest{}).
					Return(nil, apperr.Validation("field country is a required field, field postal_code is a required field")).Once()
			},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       `{"errors":"field country is a required field, field postal_code is a required field"}`,
		},
		{
			name:           "malformed body",
			body:           `[`,
			setupMock:      func(_ *MockService) {},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       `{"errors":"invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPut, "/api/contacts/3/addresses/7", strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("contactId", "3")
			rctx.URLParams.Add("addressId", "7")
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			req = req.WithContext(context.WithValue(ctx, middlewarectx.User, user))
			w := httptest.NewRecorder()

			New(logger, svc).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
