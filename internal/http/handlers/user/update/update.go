// Package update реализует HTTP-обработчик частичного обновления текущего пользователя.
package update

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

// Service описывает бизнес-логику обновления профиля.
type Service interface {
	Update(ctx context.Context, user *models.User, req models.UpdateUserRequest) (*models.UserResponse, error)
}

// Handler обрабатывает запросы обновления профиля.
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
// @Summary Обновить текущего пользователя
// @Description Меняет только переданные поля. Неизвестные поля игнорируются.
// @Tags Users
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param request body models.UpdateUserRequest true "Новые значения"
// @Success 200 {object} response.Response{data=models.UserResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /users/current [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, log, apperr.Unauthenticated("Unauthorized"))
		return
	}

	var req models.UpdateUserRequest
	if err := response.Decode(r, &req); err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	res, err := h.service.Update(r.Context(), user, req)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	log.Info("user updated", slog.String("username", user.Username))
	response.JSON(w, r, http.StatusOK, response.OK(res))
}
