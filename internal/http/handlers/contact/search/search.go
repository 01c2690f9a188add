// Package search реализует HTTP-обработчик постраничного поиска контактов.
//
// Параметры строки запроса: name, email, phone (подстрока без учета регистра),
// page (по умолчанию 1) и size (по умолчанию 10).
package search

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/contact-manager/internal/http/middlewarectx"
	"github.com/magabrotheeeer/contact-manager/internal/http/response"
	"github.com/magabrotheeeer/contact-manager/internal/lib/apperr"
	"github.com/magabrotheeeer/contact-manager/internal/lib/validate"
	"github.com/magabrotheeeer/contact-manager/internal/models"
)

const (
	defaultPage = 1
	defaultSize = 10
)

// Service описывает бизнес-логику поиска контактов.
type Service interface {
	Search(ctx context.Context, user *models.User, req models.SearchContactRequest) (*models.ContactPage, error)
}

// Handler обрабатывает запросы поиска контактов.
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
// @Summary Поиск контактов
// @Tags Contacts
// @Produce  json
// @Security ApiKeyAuth
// @Param name query string false "Подстрока имени или фамилии"
// @Param email query string false "Подстрока email"
// @Param phone query string false "Подстрока телефона"
// @Param page query int false "Номер страницы" default(1)
// @Param size query int false "Размер страницы" default(10)
// @Success 200 {object} response.PagedResponse{data=[]models.Contact}
// @Failure 400 {object} response.ErrorResponse
// @Router /contacts [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.search"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, log, apperr.Unauthenticated("Unauthorized"))
		return
	}

	q := r.URL.Query()
	page, err := validate.QueryInt("page", q.Get("page"), defaultPage)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	size, err := validate.QueryInt("size", q.Get("size"), defaultSize)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	res, err := h.service.Search(r.Context(), user, models.SearchContactRequest{
		Name:  q.Get("name"),
		Email: q.Get("email"),
		Phone: q.Get("phone"),
		Page:  page,
		Size:  size,
	})
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	log.Debug("contacts found", slog.Int("total_items", res.Paging.TotalItems))
	response.JSON(w, r, http.StatusOK, response.Paged(res.Data, res.Paging))
}
