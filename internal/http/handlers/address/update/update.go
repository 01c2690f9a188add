// Package update реализует HTTP-обработчик полного обновления адреса контакта.
package update

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/contact-manager/internal/http/middlewarectx"
	"github.com/magabrotheeeer/contact-manager/internal/http/response"
	"github.com/magabrotheeeer/contact-manager/internal/lib/apperr"
	"github.com/magabrotheeeer/contact-manager/internal/models"
)

// Service описывает бизнес-логику обновления адреса.
type Service interface {
	Update(ctx context.Context, user *models.User, contactID, addressID string, req models.AddressRequest) (*models.Address, error)
}

// Handler обрабатывает запросы обновления адреса.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Обновить адрес
// @Tags Addresses
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param contactId path int true "ID контакта"
// @Param addressId path int true "ID адреса"
// @Param request body models.AddressRequest true "Данные адреса"
// @Success 200 {object} response.Response{data=models.Address}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /contacts/{contactId}/addresses/{addressId} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.address.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, log, apperr.Unauthenticated("Unauthorized"))
		return
	}

	var req models.AddressRequest
	if err := response.Decode(r, &req); err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	res, err := h.service.Update(r.Context(), user, chi.URLParam(r, "contactId"), chi.URLParam(r, "addressId"), req)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	response.JSON(w, r, http.StatusOK, response.OK(res))
}
