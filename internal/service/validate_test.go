package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-account-service/internal/domain"
	"go-account-service/pkg/optional"
)

func fieldErr(t *testing.T, err error) *domain.FieldError {
	t.Helper()
	var fe *domain.FieldError
	require.True(t, errors.As(err, &fe), "expected a field error, got %v", err)
	return fe
}

func TestValidateNew(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		password  string
		wantField string
		wantKind  domain.FieldErrorKind
	}{
		{"valid", "1@ya.ru", "password", "", ""},
		{"valid short domain", "a@b.c", "123", "", ""},
		{"empty email", "", "password", "email", domain.FieldMissing},
		{"blank email", "   ", "password", "email", domain.FieldMissing},
		{"no at sign", "email", "password", "email", domain.FieldFormat},
		{"no dot in domain", "a@b", "password", "email", domain.FieldFormat},
		{"nothing before at", "@ya.ru", "password", "email", domain.FieldFormat},
		{"space in local part", "a b@ya.ru", "password", "email", domain.FieldFormat},
		{"two at signs", "a@b@ya.ru", "password", "email", domain.FieldFormat},
		{"empty password", "1@ya.ru", "", "password", domain.FieldMissing},
		{"short password", "1@ya.ru", "12", "password", domain.FieldTooShort},
		{"longest password", "1@ya.ru", strings.Repeat("x", MaxPasswordBytes), "", ""},
		{"over-long password", "1@ya.ru", strings.Repeat("x", MaxPasswordBytes+1), "password", domain.FieldTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNew(tt.email, tt.password)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			fe := fieldErr(t, err)
			assert.Equal(t, tt.wantField, fe.Field)
			assert.Equal(t, tt.wantKind, fe.Kind)
		})
	}
}

// Rules run in order, so a candidate violating several reports only the first.
func TestValidateNew_ShortCircuits(t *testing.T) {
	fe := fieldErr(t, ValidateNew("", ""))
	assert.Equal(t, "email", fe.Field)
	assert.Equal(t, domain.FieldMissing, fe.Kind)

	fe = fieldErr(t, ValidateNew("not-an-email", "12"))
	assert.Equal(t, "email", fe.Field)
	assert.Equal(t, domain.FieldFormat, fe.Kind)
}

func TestValidatePatch_OnlySuppliedFields(t *testing.T) {
	// Nothing supplied: nothing to check.
	assert.NoError(t, ValidatePatch(domain.Patch{}))

	// Names are free-form, even explicit null is fine.
	assert.NoError(t, ValidatePatch(domain.Patch{
		FirstName: optional.Null[string](),
		LastName:  optional.Of("Doe"),
	}))

	// A supplied email is validated; an absent password is not.
	fe := fieldErr(t, ValidatePatch(domain.Patch{Email: optional.Of("broken")}))
	assert.Equal(t, "email", fe.Field)
	assert.Equal(t, domain.FieldFormat, fe.Kind)

	// Explicit null on a required field counts as missing.
	fe = fieldErr(t, ValidatePatch(domain.Patch{Email: optional.Null[string]()}))
	assert.Equal(t, "email", fe.Field)
	assert.Equal(t, domain.FieldMissing, fe.Kind)

	fe = fieldErr(t, ValidatePatch(domain.Patch{Password: optional.Of("12")}))
	assert.Equal(t, "password", fe.Field)
	assert.Equal(t, domain.FieldTooShort, fe.Kind)
	assert.Equal(t, MinPasswordLen, fe.Min)

	fe = fieldErr(t, ValidatePatch(domain.Patch{Password: optional.Of(strings.Repeat("x", 100))}))
	assert.Equal(t, "password", fe.Field)
	assert.Equal(t, domain.FieldTooLong, fe.Kind)
	assert.Equal(t, MaxPasswordBytes, fe.Max)
}
