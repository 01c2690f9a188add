// Package contactmanager собирает HTTP-приложение: хранилище, кеш, сервисы и маршруты.
package contactmanager

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	// Регистрация Swagger-документа.
	_ "github.com/magabrotheeeer/contact-manager/docs"
	"github.com/magabrotheeeer/contact-manager/internal/config"
	addresscreate "github.com/magabrotheeeer/contact-manager/internal/http/handlers/address/create"
	addresslist "github.com/magabrotheeeer/contact-manager/internal/http/handlers/address/list"
	addressread "github.com/magabrotheeeer/contact-manager/internal/http/handlers/address/read"
	addressremove "github.com/magabrotheeeer/contact-manager/internal/http/handlers/address/remove"
	addressupdate "github.com/magabrotheeeer/contact-manager/internal/http/handlers/address/update"
	contactcreate "github.com/magabrotheeeer/contact-manager/internal/http/handlers/contact/create"
	contactread "github.com/magabrotheeeer/contact-manager/internal/http/handlers/contact/read"
	contactremove "github.com/magabrotheeeer/contact-manager/internal/http/handlers/contact/remove"
	contactsearch "github.com/magabrotheeeer/contact-manager/internal/http/handlers/contact/search"
	contactupdate "github.com/magabrotheeeer/contact-manager/internal/http/handlers/contact/update"
	"github.com/magabrotheeeer/contact-manager/internal/http/handlers/health"
	"github.com/magabrotheeeer/contact-manager/internal/http/handlers/user/current"
	"github.com/magabrotheeeer/contact-manager/internal/http/handlers/user/login"
	"github.com/magabrotheeeer/contact-manager/internal/http/handlers/user/logout"
	"github.com/magabrotheeeer/contact-manager/internal/http/handlers/user/register"
	userupdate "github.com/magabrotheeeer/contact-manager/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/contact-manager/internal/http/middlewarectx"
	addressservice "github.com/magabrotheeeer/contact-manager/internal/services/address"
	contactservice "github.com/magabrotheeeer/contact-manager/internal/services/contact"
	userservice "github.com/magabrotheeeer/contact-manager/internal/services/user"
)

// Services содержит зависимости маршрутов.
type Services struct {
	Users     *userservice.UserService
	Contacts  *contactservice.ContactService
	Addresses *addressservice.AddressService
	Health    health.Pinger
}

// NewRouter регистрирует все маршруты приложения.
func NewRouter(logger *slog.Logger, cfg config.RateLimit, metrics *middlewarectx.Metrics, s Services) http.Handler {
	r := chi.NewRouter()

	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		metrics.Middleware,
	)

	r.Route("/api", func(r chi.Router) {
		if cfg.Enabled {
			r.Use(middlewarectx.RateLimitMiddleware(logger, cfg.RPS, cfg.Burst))
		}

		// Открытые конечные точки
		r.Post("/users", register.New(logger, s.Users).ServeHTTP)
		r.Post("/users/login", login.New(logger, s.Users).ServeHTTP)

		// Группа с аутентификацией по токену
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.AuthMiddleware(s.Users, logger))

			r.Get("/users/current", current.New(logger, s.Users).ServeHTTP)
			r.Patch("/users/current", userupdate.New(logger, s.Users).ServeHTTP)
			r.Delete("/users/logout", logout.New(logger, s.Users).ServeHTTP)

			r.Post("/contacts", contactcreate.New(logger, s.Contacts).ServeHTTP)
			r.Get("/contacts", contactsearch.New(logger, s.Contacts).ServeHTTP)
			r.Get("/contacts/{contactId}", contactread.New(logger, s.Contacts).ServeHTTP)
			r.Put("/contacts/{contactId}", contactupdate.New(logger, s.Contacts).ServeHTTP)
			r.Delete("/contacts/{contactId}", contactremove.New(logger, s.Contacts).ServeHTTP)

			r.Post("/contacts/{contactId}/addresses", addresscreate.New(logger, s.Addresses).ServeHTTP)
			r.Get("/contacts/{contactId}/addresses", addresslist.New(logger, s.Addresses).ServeHTTP)
			r.Get("/contacts/{contactId}/addresses/{addressId}", addressread.New(logger, s.Addresses).ServeHTTP)
			r.Put("/contacts/{contactId}/addresses/{addressId}", addressupdate.New(logger, s.Addresses).ServeHTTP)
			r.Delete("/contacts/{contactId}/addresses/{addressId}", addressremove.New(logger, s.Addresses).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger, s.Health).ServeHTTP)
	r.Handle("/metrics", metrics.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)

	return r
}
