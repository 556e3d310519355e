package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health HealthHandler
	Users  UserHandler

	// GateMW is the access gate; register and login stay deliberately
	// ungated.
	GateMW func(http.Handler) http.Handler

	// Outer middleware, applied to everything (request id, CORS, metrics).
	Outer []func(http.Handler) http.Handler

	// MetricsHandler serves the prometheus exposition; optional.
	MetricsHandler http.Handler
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Users == nil {
		return nil, fmt.Errorf("nil Users handler")
	}
	if deps.GateMW == nil {
		return nil, fmt.Errorf("nil gate middleware")
	}

	r := chi.NewRouter()
	for _, mw := range deps.Outer {
		r.Use(mw)
	}

	r.Get("/healthz", deps.Health.Healthz)
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/register", deps.Users.Register)
		r.Post("/login", deps.Users.Login)

		r.Group(func(r chi.Router) {
			r.Use(deps.GateMW)

			r.Get("/logout", deps.Users.Logout)
			r.Get("/me", deps.Users.Me)
			r.Get("/all", deps.Users.ListAll)
			r.Put("/update/{id}", deps.Users.Update)
			r.Delete("/delete/{id}", deps.Users.Delete)
		})
	})

	return r, nil
}
