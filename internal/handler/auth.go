package handler

import (
	"net/http"

	"github.com/medinsure-ai/medinsure/internal/middleware/metrics"
	"github.com/medinsure-ai/medinsure/shared/domain"
	"github.com/medinsure-ai/medinsure/shared/utils"
)

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var candidate domain.SignupCandidate
	if err := utils.DecodeValidate(r.Body, &candidate); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	acc, err := h.auth.SignUp(candidate)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	// No session is established here: the account exists but the caller
	// still has to log in.
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Account created. You can log in now.",
		"user":    viewOf(acc),
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if err := utils.DecodeValidate(r.Body, &creds); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	acc, err := h.auth.Login(creds)
	if err != nil {
		metrics.CountLogin("failure")
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	metrics.CountLogin("success")
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Logged in.",
		"user":    viewOf(acc),
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Clear(); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Session reports who is signed in. 401 when nobody is.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	acc, ok := h.session.Current()
	if !ok {
		http.Error(w, "not signed in", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": viewOf(acc)})
}
