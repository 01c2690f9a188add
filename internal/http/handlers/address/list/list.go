// Package list реализует HTTP-обработчик списка адресов контакта.
package list

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

// Service описывает бизнес-логику списка адресов.
type Service interface {
	List(ctx context.Context, user *models.User, contactID string) ([]models.Address, error)
}

// Handler обрабатывает запросы списка адресов.
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
// @Summary Список адресов контакта
// @Tags Addresses
// @Produce  json
// @Security ApiKeyAuth
// @Param contactId path int true "ID контакта"
// @Success 200 {object} response.Response{data=[]models.Address}
// @Failure 404 {object} response.ErrorResponse
// @Router /contacts/{contactId}/addresses [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.address.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, log, apperr.Unauthenticated("Unauthorized"))
		return
	}

	res, err := h.service.List(r.Context(), user, chi.URLParam(r, "contactId"))
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	response.JSON(w, r, http.StatusOK, response.OK(res))
}
