// Package current реализует HTTP-обработчик получения текущего пользователя.
package current

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

// Service описывает бизнес-логику чтения профиля.
type Service interface {
	Current(ctx context.Context, user *models.User) models.UserResponse
}

// Handler обрабатывает запросы профиля текущего пользователя.
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
// @Summary Текущий пользователь
// @Tags Users
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} response.Response{data=models.UserResponse}
// @Failure 401 {object} response.ErrorResponse
// @Router /users/current [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.current"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, log, apperr.Unauthenticated("Unauthorized"))
		return
	}

	response.JSON(w, r, http.StatusOK, response.OK(h.service.Current(r.Context(), user)))
}
