package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldError_Messages(t *testing.T) {
	assert.Equal(t, "email: missing", MissingField("email").Error())
	assert.Equal(t, "email: invalid format", InvalidFormat("email").Error())
	assert.Equal(t, "password is too short (min 3 characters)", TooShort("password", 3).Error())
}

func TestFieldError_As(t *testing.T) {
	wrapped := fmt.Errorf("create: %w", TooShort("password", 3))

	var fe *FieldError
	require.True(t, errors.As(wrapped, &fe))
	assert.Equal(t, "password", fe.Field)
	assert.Equal(t, FieldTooShort, fe.Kind)
	assert.Equal(t, 3, fe.Min)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("42")))
	assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", NotFound("42"))))
	assert.False(t, IsNotFound(ErrDuplicateEmail))
	assert.Equal(t, "account 42 not found", NotFound("42").Error())
}
