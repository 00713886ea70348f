// Package account implements the durable account directory: an ordered list
// of registered accounts under a single store key, with uniqueness enforced
// on the exact email string.
package account

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/medinsure-ai/medinsure/shared/domain"
	internal_errors "github.com/medinsure-ai/medinsure/shared/errors"
	"github.com/medinsure-ai/medinsure/shared/kvstore"
	"github.com/medinsure-ai/medinsure/shared/logger"
)

// UsersKey is the store entry holding the JSON array of accounts.
// Absent means an empty directory.
const UsersKey = "users"

type Directory struct {
	store kvstore.Store
}

func New(store kvstore.Store) *Directory {
	return &Directory{store: store}
}

// LoadAll returns every registered account in insertion order. A corrupt
// `users` entry is logged and treated as an empty directory; callers never
// see the parse failure.
func (d *Directory) LoadAll() []domain.Account {
	raw, err := d.store.Get(UsersKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			logger.Log.Warn("failed to read account directory", "error", err)
		}
		return nil
	}

	var accounts []domain.Account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		logger.Log.Warn("account directory entry is corrupt, treating as empty",
			"error", fmt.Errorf("%w: %v", internal_errors.ErrCorruptEntry, err))
		return nil
	}
	return accounts
}

// FindByEmail returns the first account whose email equals the argument
// exactly. No normalization: "A@b.com" and "a@b.com" are different accounts.
func (d *Directory) FindByEmail(email string) (domain.Account, error) {
	for _, acc := range d.LoadAll() {
		if acc.Email == email {
			return acc, nil
		}
	}
	return domain.Account{}, internal_errors.ErrAccountNotFound
}

// Create appends the account if its email is not already registered.
//
// This is a read-modify-write over the shared `users` key with no
// cross-process lock: two processes creating accounts concurrently can each
// read the pre-update list and one append can be lost. Accepted limitation
// of the plain key-value store; there is no compare-and-swap to build on.
func (d *Directory) Create(acc domain.Account) error {
	if _, err := d.FindByEmail(acc.Email); err == nil {
		return internal_errors.ErrDuplicateEmail
	}

	accounts := append(d.LoadAll(), acc)
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to serialize account directory: %w", err)
	}
	if err := d.store.Set(UsersKey, string(raw)); err != nil {
		return fmt.Errorf("failed to persist account directory: %w", err)
	}
	return nil
}
