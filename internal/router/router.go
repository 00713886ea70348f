// Package router wires every page and API route onto a chi mux.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/medinsure-ai/medinsure/internal/middleware/metrics"
	"github.com/medinsure-ai/medinsure/internal/setup"
)

func New(deps *setup.Dependencies) chi.Router {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Public.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	h := deps.Handler
	gate := deps.Gate

	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// Pages
	r.Get("/", h.IndexGetHandler)
	r.Get("/about", h.AboutGetHandler)
	r.Get("/faq", h.FAQGetHandler)
	r.Get("/signup", h.SignupGetHandler)
	r.Post("/signup", h.SignupPostHandler)
	r.Get("/login", h.LoginGetHandler)
	r.Post("/login", h.LoginPostHandler)
	r.Post("/logout", h.LogoutPostHandler)

	// Quote flow requires a signed-in session.
	r.Group(func(r chi.Router) {
		r.Use(gate.RequireSession)
		r.Get("/quote", h.QuoteGetHandler)
		r.Post("/quote", h.QuotePostHandler)
		r.Get("/history", h.HistoryGetHandler)
	})

	// JSON API mirroring the forms.
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/ready", h.Ready)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Signup)
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)
		})
		r.Get("/session", h.Session)

		r.With(gate.OptionalSession).Post("/predict", h.Predict)
		r.Post("/forecast", h.Forecast)
		r.With(gate.RequireSessionAPI).Get("/quotes", h.History)
	})

	return r
}
