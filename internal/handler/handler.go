// Package handler holds the HTTP layer: the JSON API mirrored by the site's
// forms, and the server-rendered pages.
package handler

import (
	"context"
	"html/template"

	"github.com/medinsure-ai/medinsure/shared/config"
	"github.com/medinsure-ai/medinsure/shared/domain"
)

// AuthService is the slice of the auth service the handlers need.
type AuthService interface {
	SignUp(candidate domain.SignupCandidate) (domain.Account, error)
	Login(creds domain.Credentials) (domain.Account, error)
}

// SessionService reads and clears the persisted session.
type SessionService interface {
	Current() (domain.Account, bool)
	Clear() error
}

// QuoteService serves premium estimates, forecasts and quote history.
type QuoteService interface {
	Estimate(req domain.QuoteRequest) (domain.QuoteResult, error)
	Forecast(req domain.ForecastRequest) (domain.Forecast, error)
	History(email string) ([]domain.Quote, error)
}

// Pinger reports whether the optional quote database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth    AuthService
	session SessionService
	quotes  QuoteService
	db      Pinger // nil when quote persistence is disabled

	Templates map[string]*template.Template
	Pages     map[string]template.HTML // rendered markdown copy, keyed by name
	Public    config.Public
}

func New(auth AuthService, session SessionService, quotes QuoteService, db Pinger,
	templates map[string]*template.Template, pages map[string]template.HTML, publicCfg config.Public) *Handler {
	return &Handler{
		auth:      auth,
		session:   session,
		quotes:    quotes,
		db:        db,
		Templates: templates,
		Pages:     pages,
		Public:    publicCfg,
	}
}
