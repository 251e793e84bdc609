package service

import (
	"context"

	"go-account-service/internal/domain"
)

// CredentialGate verifies an email/password pair against the store. It never
// issues tokens itself; the transport layer exchanges a successful check for
// one.
type CredentialGate struct {
	accounts *AccountService
}

func NewCredentialGate(accounts *AccountService) *CredentialGate {
	return &CredentialGate{accounts: accounts}
}

// Authenticate returns the matched account, or ErrInvalidCredentials for any
// failed pair regardless of the reason.
func (g *CredentialGate) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	return g.accounts.FindByEmailAndPassword(ctx, email, password)
}
