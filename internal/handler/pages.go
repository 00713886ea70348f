package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/medinsure-ai/medinsure/internal/middleware/metrics"
	"github.com/medinsure-ai/medinsure/shared/domain"
	internal_errors "github.com/medinsure-ai/medinsure/shared/errors"
	"github.com/medinsure-ai/medinsure/shared/logger"
)

func (h *Handler) IndexGetHandler(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, "index.html", nil)
}

func (h *Handler) AboutGetHandler(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, "about.html", h.Pages["about"])
}

func (h *Handler) FAQGetHandler(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, "faq.html", h.Pages["faq"])
}

func (h *Handler) SignupGetHandler(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, "signup.html", nil)
}

func (h *Handler) SignupPostHandler(w http.ResponseWriter, r *http.Request) {
	candidate := domain.SignupCandidate{
		FirstName: r.FormValue("firstName"),
		LastName:  r.FormValue("lastName"),
		Email:     r.FormValue("email"),
		Password:  r.FormValue("password"),
	}

	_, err := h.auth.SignUp(candidate)
	switch {
	case errors.Is(err, internal_errors.ErrValidation):
		h.redirectWithFlash(w, r, "/signup", flashCookieError, "All fields are required.")
		return
	case errors.Is(err, internal_errors.ErrDuplicateEmail):
		h.redirectWithFlash(w, r, "/signup", flashCookieError, "An account with that email already exists.")
		return
	case err != nil:
		logger.Log.Error("signup failed", "error", err)
		h.redirectWithFlash(w, r, "/signup", flashCookieError, "Something went wrong. Please try again.")
		return
	}

	// The account exists but there is no session yet. Send the user to the
	// login form with their email pre-filled.
	h.setFlash(w, flashCookieSuccess, "Account created. Please log in.")
	h.setFlash(w, emailPrefillCookie, candidate.Email)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) LoginGetHandler(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, "login.html", nil)
}

func (h *Handler) LoginPostHandler(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	_, err := h.auth.Login(domain.Credentials{Email: email, Password: password})
	if err != nil {
		metrics.CountLogin("failure")
		h.setFlash(w, flashCookieError, "Invalid email or password.")
		h.setFlash(w, emailPrefillCookie, email)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	metrics.CountLogin("success")
	http.Redirect(w, r, "/quote", http.StatusSeeOther)
}

func (h *Handler) LogoutPostHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Clear(); err != nil {
		logger.Log.Error("logout failed", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) QuoteGetHandler(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, "quote.html", nil)
}

// QuotePostHandler handles the quote form and renders the results page with
// the estimate and its factor breakdown.
func (h *Handler) QuotePostHandler(w http.ResponseWriter, r *http.Request) {
	req, err := quoteRequestFromForm(r)
	if err != nil {
		h.redirectWithFlash(w, r, "/quote", flashCookieError, "Please fill in all fields with valid values.")
		return
	}

	if acc, ok := h.session.Current(); ok {
		req.UserEmail = acc.Email
	}

	result, err := h.quotes.Estimate(req)
	if err != nil {
		logger.Log.Error("estimate failed", "error", err)
		h.redirectWithFlash(w, r, "/quote", flashCookieError, "Something went wrong. Please try again.")
		return
	}

	metrics.CountQuoteEstimate()
	h.renderTemplate(w, r, "results.html", result)
}

// HistoryGetHandler shows the signed-in user's recent quotes.
func (h *Handler) HistoryGetHandler(w http.ResponseWriter, r *http.Request) {
	acc, ok := h.session.Current()
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	quotes, err := h.quotes.History(acc.Email)
	if err != nil {
		logger.Log.Error("failed to load quote history", "email", acc.Email, "error", err)
		h.renderTemplateWithError(w, r, "history.html", nil, "Could not load your quote history.")
		return
	}
	h.renderTemplate(w, r, "history.html", quotes)
}

func quoteRequestFromForm(r *http.Request) (domain.QuoteRequest, error) {
	age, err := strconv.Atoi(r.FormValue("age"))
	if err != nil {
		return domain.QuoteRequest{}, err
	}
	bmi, err := strconv.ParseFloat(r.FormValue("bmi"), 64)
	if err != nil {
		return domain.QuoteRequest{}, err
	}
	children, err := strconv.Atoi(r.FormValue("children"))
	if err != nil {
		return domain.QuoteRequest{}, err
	}

	req := domain.QuoteRequest{
		Age:      age,
		Sex:      r.FormValue("sex"),
		BMI:      bmi,
		Children: children,
		Smoker:   r.FormValue("smoker"),
		Region:   r.FormValue("region"),
	}
	if req.Sex == "" || req.Smoker == "" || req.Region == "" {
		return domain.QuoteRequest{}, errors.New("missing select fields")
	}
	return req, nil
}
