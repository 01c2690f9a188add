// Package register реализует HTTP-обработчик регистрации пользователя.
package register

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/contact-manager/internal/http/response"
	"github.com/magabrotheeeer/contact-manager/internal/models"
)

// Service описывает бизнес-логику регистрации.
type Service interface {
	Register(ctx context.Context, req models.RegisterUserRequest) (*models.UserResponse, error)
}

// Handler обрабатывает запросы регистрации.
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
// @Summary Регистрация пользователя
// @Description Создает пользователя. Пароль в ответе не возвращается.
// @Tags Users
// @Accept  json
// @Produce  json
// @Param request body models.RegisterUserRequest true "Данные пользователя"
// @Success 201 {object} response.Response{data=models.UserResponse}
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации или имя занято"
// @Failure 500 {object} response.ErrorResponse
// @Router /users [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.RegisterUserRequest
	if err := response.Decode(r, &req); err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	res, err := h.service.Register(r.Context(), req)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	log.Info("user registered", slog.String("username", res.Username))
	response.JSON(w, r, http.StatusCreated, response.OK(res))
}
