package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/medinsure-ai/medinsure/internal/account"
	"github.com/medinsure-ai/medinsure/shared/domain"
	internal_errors "github.com/medinsure-ai/medinsure/shared/errors"
	"github.com/medinsure-ai/medinsure/shared/kvstore"
	"github.com/medinsure-ai/medinsure/shared/logger"
)

// CurrentUserKey is the store entry holding the signed-in account snapshot.
// Absent means signed out.
const CurrentUserKey = "currentUser"

// Session tracks which account, if any, is currently authenticated. The
// value is a denormalized snapshot taken at login time: later directory
// edits (a password change, even deletion) do not propagate to it, and a
// snapshot whose email no longer resolves in the directory is returned
// as-is rather than auto-cleared.
type Session struct {
	store     kvstore.Store
	directory *account.Directory
}

func NewSession(store kvstore.Store, directory *account.Directory) *Session {
	return &Session{store: store, directory: directory}
}

// Current returns the signed-in account snapshot, or false when signed out.
// A corrupt `currentUser` entry is logged and reads as signed out.
func (s *Session) Current() (domain.Account, bool) {
	raw, err := s.store.Get(CurrentUserKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			logger.Log.Warn("failed to read session", "error", err)
		}
		return domain.Account{}, false
	}

	var acc domain.Account
	if err := json.Unmarshal([]byte(raw), &acc); err != nil {
		logger.Log.Warn("session entry is corrupt, treating as signed out",
			"error", fmt.Errorf("%w: %v", internal_errors.ErrCorruptEntry, err))
		return domain.Account{}, false
	}
	return acc, true
}

// SetCurrent re-resolves email through the directory and stores the full
// record snapshot. A prior session, if any, is overwritten.
func (s *Session) SetCurrent(email string) error {
	acc, err := s.directory.FindByEmail(email)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(acc)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := s.store.Set(CurrentUserKey, string(raw)); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// Clear is the logout operation: removes the session entry, returning to
// signed out regardless of prior state.
func (s *Session) Clear() error {
	if err := s.store.Delete(CurrentUserKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
