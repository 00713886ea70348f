// Package service contains the application services: authentication over
// the account directory, the persisted session, and quote estimates.
package service

import (
	"github.com/medinsure-ai/medinsure/shared/domain"
	internal_errors "github.com/medinsure-ai/medinsure/shared/errors"
	"github.com/medinsure-ai/medinsure/shared/logger"
)

// AccountDirectory is the slice of the directory the auth service needs.
type AccountDirectory interface {
	FindByEmail(email string) (domain.Account, error)
	Create(acc domain.Account) error
}

// SessionWriter records the authenticated identity after a successful login.
type SessionWriter interface {
	SetCurrent(email string) error
}

type Auth struct {
	directory AccountDirectory
	session   SessionWriter
}

func NewAuth(directory AccountDirectory, session SessionWriter) *Auth {
	return &Auth{directory: directory, session: session}
}

// SignUp creates an account from the four signup fields. All must be
// non-empty. Success does not establish a session: the account exists but
// the user still has to log in. That asymmetry is part of the contract.
func (a *Auth) SignUp(candidate domain.SignupCandidate) (domain.Account, error) {
	if candidate.FirstName == "" || candidate.LastName == "" ||
		candidate.Email == "" || candidate.Password == "" {
		return domain.Account{}, internal_errors.ErrValidation
	}

	acc := domain.Account{
		FirstName: candidate.FirstName,
		LastName:  candidate.LastName,
		Email:     candidate.Email,
		Password:  candidate.Password,
	}
	if err := a.directory.Create(acc); err != nil {
		return domain.Account{}, err
	}

	logger.Log.Info("account created", "email", acc.Email)
	return acc, nil
}

// Login verifies credentials and, on success, persists the session and
// returns the matched record. Unknown email and wrong password both come
// back as ErrInvalidCredentials; the distinction exists only in debug logs,
// never in anything returned to a caller.
func (a *Auth) Login(creds domain.Credentials) (domain.Account, error) {
	acc, err := a.directory.FindByEmail(creds.Email)
	if err != nil {
		logger.Log.Debug("login failed: email not registered", "email", creds.Email)
		return domain.Account{}, internal_errors.ErrInvalidCredentials
	}

	// Verbatim comparison; the directory stores passwords as entered.
	if acc.Password != creds.Password {
		logger.Log.Debug("login failed: password mismatch", "email", creds.Email)
		return domain.Account{}, internal_errors.ErrInvalidCredentials
	}

	if err := a.session.SetCurrent(acc.Email); err != nil {
		return domain.Account{}, err
	}

	logger.Log.Info("login", "email", acc.Email)
	return acc, nil
}
