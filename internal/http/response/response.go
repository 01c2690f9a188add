// Package response формирует единый формат JSON-ответов HTTP-обработчиков.
//
// Успешный ответ: {"data": ...}, у поиска рядом лежит {"paging": ...}.
// Ошибка: {"errors": "<сообщение>"}. Статус ошибки выбирается по её виду из apperr.
package response

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/contact-manager/internal/lib/apperr"
	"github.com/magabrotheeeer/contact-manager/internal/lib/sl"
	"github.com/magabrotheeeer/contact-manager/internal/models"
)

// MsgInternal отдаётся клиенту вместо текста непредвиденной ошибки.
const MsgInternal = "internal server error"

// Response — успешный ответ.
type Response struct {
	Data any `json:"data"`
}

// PagedResponse — успешный ответ с метаданными страницы.
type PagedResponse struct {
	Data   any           `json:"data"`
	Paging models.Paging `json:"paging"`
}

// ErrorResponse — ответ с ошибкой. Используется и в Swagger-аннотациях @Failure.
type ErrorResponse struct {
	Errors string `json:"errors" example:"Unauthorized"`
}

// OK оборачивает данные успешного ответа.
func OK(data any) Response {
	return Response{Data: data}
}

// Paged оборачивает страницу данных и её метаданные.
func Paged(data any, paging models.Paging) PagedResponse {
	return PagedResponse{Data: data, Paging: paging}
}

// Error оборачивает сообщение об ошибке.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Errors: msg}
}

// StatusFor возвращает HTTP-статус и сообщение для клиента по ошибке.
func StatusFor(err error) (int, string) {
	msg, ok := apperr.Message(err)
	if !ok {
		return http.StatusInternalServerError, MsgInternal
	}
	switch {
	case errors.Is(err, apperr.ErrValidation), errors.Is(err, apperr.ErrConflict):
		return http.StatusBadRequest, msg
	case errors.Is(err, apperr.ErrUnauthenticated):
		return http.StatusUnauthorized, msg
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound, msg
	default:
		return http.StatusInternalServerError, MsgInternal
	}
}

// JSON пишет тело со статусом.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// WriteError пишет ответ с ошибкой и логирует её.
// Непредвиденные ошибки логируются как Error, ошибки клиента как Info.
func WriteError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, msg := StatusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", sl.Err(err))
	} else {
		log.Info("request rejected", slog.Int("status", status), slog.String("reason", msg))
	}
	JSON(w, r, status, Error(msg))
}

// Decode читает JSON-тело запроса в v. Пустое тело не ошибка.
func Decode(r *http.Request, v any) error {
	err := render.DecodeJSON(r.Body, v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return apperr.Validation("invalid request body")
}
