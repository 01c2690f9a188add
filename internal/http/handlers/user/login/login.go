// Package login реализует HTTP-обработчик входа пользователя.
package login

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/contact-manager/internal/http/response"
	"github.com/magabrotheeeer/contact-manager/internal/models"
)

// Service описывает бизнес-логику входа.
type Service interface {
	Login(ctx context.Context, req models.LoginUserRequest) (*models.TokenResponse, error)
}

// Handler обрабатывает запросы входа.
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
// @Summary Вход пользователя
// @Description Проверяет имя и пароль и выдает новый токен сессии.
// @Tags Users
// @Accept  json
// @Produce  json
// @Param request body models.LoginUserRequest true "Учетные данные"
// @Success 200 {object} response.Response{data=models.TokenResponse}
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Неверное имя или пароль"
// @Router /users/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.LoginUserRequest
	if err := response.Decode(r, &req); err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	res, err := h.service.Login(r.Context(), req)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	log.Info("user logged in", slog.String("username", req.Username))
	response.JSON(w, r, http.StatusOK, response.OK(res))
}
