package handler

import (
	"net/http"

	"github.com/medinsure-ai/medinsure/internal/middleware"
	"github.com/medinsure-ai/medinsure/internal/middleware/metrics"
	"github.com/medinsure-ai/medinsure/shared/domain"
	"github.com/medinsure-ai/medinsure/shared/utils"
)

// Predict returns a premium estimate with its risk label and the factor
// breakdown. Signed-in callers get the quote attributed to their email so it
// shows up in history.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	var req domain.QuoteRequest
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if acc, ok := middleware.AccountFromContext(r.Context()); ok {
		req.UserEmail = acc.Email
	}

	result, err := h.quotes.Estimate(req)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	metrics.CountQuoteEstimate()
	writeJSON(w, http.StatusOK, result)
}

// Forecast projects monthly and yearly premiums for a profile.
func (h *Handler) Forecast(w http.ResponseWriter, r *http.Request) {
	var req domain.ForecastRequest
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	forecast, err := h.quotes.Forecast(req)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, forecast)
}

// History lists the signed-in user's recent quotes, newest first.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	acc, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	quotes, err := h.quotes.History(acc.Email)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if quotes == nil {
		quotes = []domain.Quote{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"quotes": quotes})
}
