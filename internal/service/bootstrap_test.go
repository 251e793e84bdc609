package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-account-service/pkg/utils"
)

func TestEnsureBootstrapAccount(t *testing.T) {
	svc, repo := newTestService()

	created, err := EnsureBootstrapAccount(context.Background(), svc, "hexlet@example.com", "qwerty")
	require.NoError(t, err)
	assert.True(t, created)
	require.Len(t, repo.accounts, 1)
	assert.Equal(t, "hexlet@example.com", repo.accounts[0].Email)
	assert.True(t, utils.CheckPassword("qwerty", repo.accounts[0].PasswordHash))

	// Second run finds the account and seeds nothing.
	created, err = EnsureBootstrapAccount(context.Background(), svc, "hexlet@example.com", "qwerty")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, repo.accounts, 1)
}

func TestEnsureBootstrapAccount_InvalidSeed(t *testing.T) {
	svc, repo := newTestService()

	_, err := EnsureBootstrapAccount(context.Background(), svc, "hexlet@example.com", "")
	assert.Error(t, err)
	assert.Empty(t, repo.accounts)
}
