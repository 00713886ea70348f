package handler

import (
	"encoding/json"
	"net/http"

	"github.com/medinsure-ai/medinsure/shared/domain"
	"github.com/medinsure-ai/medinsure/shared/logger"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// accountView is the API shape of an account. The stored password never
// leaves the server.
type accountView struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func viewOf(acc domain.Account) accountView {
	return accountView{FirstName: acc.FirstName, LastName: acc.LastName, Email: acc.Email}
}
