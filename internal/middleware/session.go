// Package middleware holds the HTTP middlewares gating access to
// signed-in-only parts of the site.
package middleware

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/medinsure-ai/medinsure/shared/domain"
)

// SessionReader is the slice of the session the gate needs.
type SessionReader interface {
	Current() (domain.Account, bool)
}

type accountCtxKey struct{}

const flashCookieError = "flash_error"

// Gate blocks requests without an authenticated session. Pages get a
// redirect to /login with a flash message, API routes get a plain 401.
type Gate struct {
	session       SessionReader
	secureCookies bool
}

func NewGate(session SessionReader, secureCookies bool) *Gate {
	return &Gate{session: session, secureCookies: secureCookies}
}

// RequireSession enforces a session for page routes, redirecting to the
// login page when absent.
func (g *Gate) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		acc, ok := g.session.Current()
		if !ok {
			g.redirectToLogin(w, r, "Please log in to continue")
			return
		}
		next.ServeHTTP(w, r.WithContext(withAccount(r.Context(), acc)))
	})
}

// RequireSessionAPI enforces a session for JSON API routes.
func (g *Gate) RequireSessionAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		acc, ok := g.session.Current()
		if !ok {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(withAccount(r.Context(), acc)))
	})
}

// OptionalSession populates the account context when signed in but never
// blocks the request.
func (g *Gate) OptionalSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if acc, ok := g.session.Current(); ok {
			r = r.WithContext(withAccount(r.Context(), acc))
		}
		next.ServeHTTP(w, r)
	})
}

func (g *Gate) redirectToLogin(w http.ResponseWriter, r *http.Request, msg string) {
	// Base64 keeps special characters cookie-safe.
	cookie := &http.Cookie{
		Name:     flashCookieError,
		Value:    base64.StdEncoding.EncodeToString([]byte(msg)),
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   g.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func withAccount(ctx context.Context, acc domain.Account) context.Context {
	return context.WithValue(ctx, accountCtxKey{}, acc)
}

// AccountFromContext returns the authenticated account stored by the gate.
func AccountFromContext(ctx context.Context) (domain.Account, bool) {
	acc, ok := ctx.Value(accountCtxKey{}).(domain.Account)
	return acc, ok
}
