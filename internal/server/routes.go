package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AnatolNica/HeroNexus-sub001/pkg/httpx/reply"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/middlewarex"
)

func (s Server) RegisterRoutes(r chi.Router) {
	auth := middlewarex.Auth(s.jwtSecret)

	// public zone
	r.Get("/roulette", handler(s.listRoulettes))
	r.Get("/roulette/{id}", handler(s.getRoulette))
	r.Get("/characters", handler(s.listCharacters))
	r.Get("/characters/{id}", handler(s.getCharacter))

	// user zone
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Post("/roulette/{id}/spin", handler(s.spin))
		r.Get("/users/me", handler(s.getMe))
	})

	// admin zone
	r.Group(func(r chi.Router) {
		r.Use(auth, middlewarex.AdminOnly)

		r.Post("/roulette", handler(s.createRoulette))
		r.Put("/roulette/{id}", handler(s.updateRoulette))
		r.Delete("/roulette/{id}", handler(s.deleteRoulette))
		r.Post("/admin/users/{id}/coins", handler(s.creditUser))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
