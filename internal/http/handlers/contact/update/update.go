// Package update реализует HTTP-обработчик полного обновления контакта.
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

// Service описывает бизнес-логику обновления контакта.
type Service interface {
	Update(ctx context.Context, user *models.User, contactID string, req models.ContactRequest) (*models.Contact, error)
}

// Handler обрабатывает запросы обновления контакта.
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
// @Summary Обновить контакт
// @Description Полностью перезаписывает контакт. Непереданные необязательные поля очищаются.
// @Tags Contacts
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param contactId path int true "ID контакта"
// @Param request body models.ContactRequest true "Данные контакта"
// @Success 200 {object} response.Response{data=models.Contact}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /contacts/{contactId} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, log, apperr.Unauthenticated("Unauthorized"))
		return
	}

	var req models.ContactRequest
	if err := response.Decode(r, &req); err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	res, err := h.service.Update(r.Context(), user, chi.URLParam(r, "contactId"), req)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	log.Info("contact updated", slog.Int64("id", res.ID))
	response.JSON(w, r, http.StatusOK, response.OK(res))
}
