package service

import (
	"context"
	"errors"

	"go-account-service/internal/domain"
)

// EnsureBootstrapAccount seeds the default administrative account on first
// run: if no account holds the reserved email, one is created through the
// regular Create path. Safe to call on every start; a concurrent start losing
// the unique-index race is treated as already seeded.
func EnsureBootstrapAccount(ctx context.Context, accounts *AccountService, email, password string) (bool, error) {
	existing, err := accounts.repo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}
	if _, err := accounts.Create(ctx, NewAccount{Email: email, Password: password}); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
