// Package middlewarectx содержит HTTP middleware приложения.
//
// AuthMiddleware читает токен сессии из заголовка Authorization, находит по нему
// пользователя и кладёт его в контекст запроса. Без валидного токена запрос
// завершается ответом 401 Unauthorized до вызова обработчика.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/contact-manager/internal/http/response"
	"github.com/magabrotheeeer/contact-manager/internal/lib/apperr"
	"github.com/magabrotheeeer/contact-manager/internal/lib/token"
	"github.com/magabrotheeeer/contact-manager/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// User является ключом текущего пользователя в контексте.
const User Key = "user"

// Service описывает проверку токена сессии.
type Service interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// AuthMiddleware возвращает middleware, пропускающий только запросы с валидным токеном.
func AuthMiddleware(service Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AuthMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			tok := token.FromHeader(r.Header.Get("Authorization"))
			if tok == "" {
				response.WriteError(w, r, log, apperr.Unauthenticated("Unauthorized"))
				return
			}

			user, err := service.Authenticate(r.Context(), tok)
			if err != nil {
				response.WriteError(w, r, log, err)
				return
			}

			ctx := context.WithValue(r.Context(), User, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext возвращает пользователя, положенного AuthMiddleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(User).(*models.User)
	return user, ok && user != nil
}
