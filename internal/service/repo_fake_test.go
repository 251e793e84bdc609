package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-account-service/internal/domain"
)

// fakeRepo is an in-memory stand-in for the gorm store. Its clock advances
// one second per write so timestamp ordering is deterministic.
type fakeRepo struct {
	accounts []domain.Account
	now      time.Time
	nextID   int

	failWith error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeRepo) tick() time.Time {
	f.now = f.now.Add(time.Second)
	return f.now
}

func (f *fakeRepo) Create(_ context.Context, a *domain.Account) (*domain.Account, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, e := range f.accounts {
		if e.Email == a.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	f.nextID++
	a.ID = fmt.Sprintf("acc-%d", f.nextID)
	a.CreatedAt = f.tick()
	a.UpdatedAt = nil
	f.accounts = append(f.accounts, *a)
	cp := *a
	return &cp, nil
}

func (f *fakeRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, e := range f.accounts {
		if e.ID == id {
			cp := e
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) FindByEmail(_ context.Context, email string) ([]domain.Account, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []domain.Account
	for _, e := range f.accounts {
		if e.Email == email {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeRepo) List(_ context.Context, opts domain.ListOptions) ([]domain.Account, int64, error) {
	if f.failWith != nil {
		return nil, 0, f.failWith
	}
	matched := make([]domain.Account, 0, len(f.accounts))
	for _, e := range f.accounts {
		if q := strings.ToLower(strings.TrimSpace(opts.Q)); q != "" {
			hay := strings.ToLower(e.Email + " " + e.FirstName + " " + e.LastName)
			if !strings.Contains(hay, q) {
				continue
			}
		}
		matched = append(matched, e)
	}
	total := int64(len(matched))
	if opts.Offset > 0 {
		if opts.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[opts.Offset:]
		}
	}
	if opts.Limit > 0 && opts.Limit < len(matched) {
		matched = matched[:opts.Limit]
	}
	return matched, total, nil
}

func (f *fakeRepo) Update(_ context.Context, a *domain.Account) (*domain.Account, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, e := range f.accounts {
		if e.ID != a.ID && e.Email == a.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	for i, e := range f.accounts {
		if e.ID == a.ID {
			now := f.tick()
			a.UpdatedAt = &now
			f.accounts[i] = *a
			cp := *a
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("update of unknown id %s", a.ID)
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i, e := range f.accounts {
		if e.ID == id {
			f.accounts = append(f.accounts[:i], f.accounts[i+1:]...)
			return nil
		}
	}
	return nil
}
