package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"go-account-service/internal/domain"
	"go-account-service/pkg/utils"
)

// AccountRepo is the gorm implementation of the account store. The unique
// index on email is the atomic enforcement point for uniqueness; two
// concurrent inserts with the same email are resolved here at the write,
// never by an application-level check-then-insert.
type AccountRepo struct{ db *gorm.DB }

func NewAccountRepo(db *gorm.DB) *AccountRepo { return &AccountRepo{db: db} }

func (r *AccountRepo) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	if a.ID == "" {
		a.ID = utils.NewID()
	}
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if isDupKey(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}
	return a, nil
}

func (r *AccountRepo) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	var a domain.Account
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepo) FindByEmail(ctx context.Context, email string) ([]domain.Account, error) {
	var as []domain.Account
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at, id").
		Find(&as).Error
	return as, err
}

func (r *AccountRepo) List(ctx context.Context, opts domain.ListOptions) ([]domain.Account, int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Account{})
	if q := strings.TrimSpace(opts.Q); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("email LIKE ? OR first_name LIKE ? OR last_name LIKE ?", like, like, like)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	// Insertion order keeps listings stable.
	tx = tx.Order("created_at, id")
	if opts.Limit > 0 {
		tx = tx.Limit(opts.Limit).Offset(opts.Offset)
	}
	var as []domain.Account
	if err := tx.Find(&as).Error; err != nil {
		return nil, 0, err
	}
	return as, total, nil
}

// Update persists a merged account and stamps UpdatedAt. CreatedAt is
// carried over from the loaded record and never rewritten.
func (r *AccountRepo) Update(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	now := time.Now()
	a.UpdatedAt = &now
	if err := r.db.WithContext(ctx).Save(a).Error; err != nil {
		if isDupKey(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}
	return a, nil
}

func (r *AccountRepo) Delete(ctx context.Context, id string) error {
	// Zero rows affected is fine: delete of a missing id is a no-op.
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Account{}).Error
}

// isDupKey matches unique-violation messages across drivers instead of
// relying on gorm.ErrDuplicatedKey, which not every dialector populates.
func isDupKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
