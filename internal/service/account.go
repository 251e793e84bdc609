package service

import (
	"context"
	"strings"

	"go-account-service/internal/domain"
	"go-account-service/pkg/utils"
)

// AccountService is the functional heart of the system: it applies the
// validator, the partial-update merge rules, and credential lookup against
// the account store. It holds no state of its own; every call is independent
// apart from the store mutation it performs.
type AccountService struct {
	repo domain.AccountRepository
}

func NewAccountService(repo domain.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// NewAccount is a candidate for creation. Names are optional free-form text.
type NewAccount struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Create validates the candidate, hashes the password and inserts. The store
// assigns the identifier and creation timestamp; a fresh account has no
// UpdatedAt. Email uniqueness is enforced atomically by the store's unique
// index, not by a check-then-insert here.
func (s *AccountService) Create(ctx context.Context, in NewAccount) (*domain.Account, error) {
	if err := ValidateNew(in.Email, in.Password); err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	a := &domain.Account{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: hash,
	}
	return s.repo.Create(ctx, a)
}

func (s *AccountService) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.NotFound(id)
	}
	return a, nil
}

// FindByEmail returns the single account holding the given email. Used by
// the transport layer to resolve token subjects; a stale token whose account
// was deleted ends up here as not found.
func (s *AccountService) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	matches, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, domain.NotFound(email)
	}
	return &matches[0], nil
}

// FindByEmailAndPassword resolves a credential pair. Unknown email and wrong
// password fail with the same error so the response does not leak whether an
// account exists.
func (s *AccountService) FindByEmailAndPassword(ctx context.Context, email, password string) (*domain.Account, error) {
	matches, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	for i := range matches {
		if utils.CheckPassword(password, matches[i].PasswordHash) {
			return &matches[i], nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

// FindAll returns every account in insertion order. An empty store yields an
// empty slice, not an error.
func (s *AccountService) FindAll(ctx context.Context) ([]domain.Account, error) {
	items, _, err := s.repo.List(ctx, domain.ListOptions{})
	return items, err
}

// Search is the paged, filtered listing behind the admin surface.
func (s *AccountService) Search(ctx context.Context, opts domain.ListOptions) ([]domain.Account, int64, error) {
	return s.repo.List(ctx, opts)
}

// Update merges the patch into the stored account field by field: supplied
// values overwrite, absent members retain, an explicit null clears the
// optional names. Only supplied fields are validated. A changed email is
// checked against other accounts first, but the unique index remains the
// authority under concurrency. The store stamps UpdatedAt; CreatedAt is
// never touched.
func (s *AccountService) Update(ctx context.Context, id string, p domain.Patch) (*domain.Account, error) {
	if err := ValidatePatch(p); err != nil {
		return nil, err
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.NotFound(id)
	}

	if p.FirstName.Set() {
		a.FirstName = p.FirstName.Or("")
	}
	if p.LastName.Set() {
		a.LastName = p.LastName.Or("")
	}
	if v, ok := p.Email.Value(); ok {
		email := strings.TrimSpace(v)
		if email != a.Email {
			if err := s.ensureEmailFree(ctx, email, a.ID); err != nil {
				return nil, err
			}
		}
		a.Email = email
	}
	if v, ok := p.Password.Value(); ok {
		hash, err := utils.HashPassword(v)
		if err != nil {
			return nil, err
		}
		a.PasswordHash = hash
	}

	return s.repo.Update(ctx, a)
}

// Delete removes the account. An unknown id is a deliberate no-op.
func (s *AccountService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *AccountService) ensureEmailFree(ctx context.Context, email, selfID string) error {
	matches, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	for _, m := range matches {
		if m.ID != selfID {
			return domain.ErrDuplicateEmail
		}
	}
	return nil
}
