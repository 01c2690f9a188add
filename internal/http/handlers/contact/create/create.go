// Package create реализует HTTP-обработчик создания контакта.
package create

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/contact-manager/internal/http/middlewarectx"
	"github.com/magabrotheeeer/contact-manager/internal/http/response"
	"github.com/magabrotheeeer/contact-manager/internal/lib/apperr"
	"github.com/magabrotheeeer/contact-manager/internal/models"
)

// Service описывает бизнес-логику создания контакта.
type Service interface {
	Create(ctx context.Context, user *models.User, req models.ContactRequest) (*models.Contact, error)
}

// Handler обрабатывает запросы создания контакта.
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
// @Summary Создать контакт
// @Tags Contacts
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param request body models.ContactRequest true "Данные контакта"
// @Success 201 {object} response.Response{data=models.Contact}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /contacts [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.create"

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

	res, err := h.service.Create(r.Context(), user, req)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	response.JSON(w, r, http.StatusCreated, response.OK(res))
}
