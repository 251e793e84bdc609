package domain

import (
	"context"
	"time"

	"go-account-service/pkg/optional"
)

// Account is the sole entity of the service. CreatedAt is set exactly once by
// the store on insert; UpdatedAt stays nil until the first update and is set
// by the store on every subsequent one. Deletes are hard deletes.
type Account struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	FirstName    string     `gorm:"size:64" json:"firstName,omitempty"`
	LastName     string     `gorm:"size:64" json:"lastName,omitempty"`
	Email        string     `gorm:"uniqueIndex;size:191" json:"email"`
	PasswordHash string     `gorm:"size:191" json:"-"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt,omitempty"`
}

func (Account) TableName() string { return "accounts" }

// Patch carries a partial update. Each field is tri-state: absent members
// leave the stored value untouched, explicit null clears the optional name
// fields, and a value overwrites.
type Patch struct {
	FirstName optional.Field[string] `json:"firstName"`
	LastName  optional.Field[string] `json:"lastName"`
	Email     optional.Field[string] `json:"email"`
	Password  optional.Field[string] `json:"password"`
}

// ListOptions narrows a listing. A Limit of zero or less returns everything.
type ListOptions struct {
	Offset int
	Limit  int
	Q      string
}

// AccountRepository is the store contract the service runs against. The
// store owns identifiers, timestamps, and atomic enforcement of email
// uniqueness; lookups return nil (not an error) when nothing matches.
type AccountRepository interface {
	Create(ctx context.Context, a *Account) (*Account, error)
	FindByID(ctx context.Context, id string) (*Account, error)
	FindByEmail(ctx context.Context, email string) ([]Account, error)
	List(ctx context.Context, opts ListOptions) ([]Account, int64, error)
	Update(ctx context.Context, a *Account) (*Account, error)
	Delete(ctx context.Context, id string) error
}
