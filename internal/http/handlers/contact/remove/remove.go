// Package remove реализует HTTP-обработчик удаления контакта.
package remove

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

// Service описывает бизнес-логику удаления контакта.
type Service interface {
	Remove(ctx context.Context, user *models.User, contactID string) (string, error)
}

// Handler обрабатывает запросы удаления контакта.
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
// @Summary Удалить контакт
// @Description Удаляет контакт вместе со всеми его адресами.
// @Tags Contacts
// @Produce  json
// @Security ApiKeyAuth
// @Param contactId path int true "ID контакта"
// @Success 200 {object} response.Response{data=string}
// @Failure 404 {object} response.ErrorResponse
// @Router /contacts/{contactId} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, log, apperr.Unauthenticated("Unauthorized"))
		return
	}

	res, err := h.service.Remove(r.Context(), user, chi.URLParam(r, "contactId"))
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	response.JSON(w, r, http.StatusOK, response.OK(res))
}
