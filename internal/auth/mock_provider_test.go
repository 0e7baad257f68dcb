package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider_Login(t *testing.T) {
	provider := NewMockProvider()
	ctx := context.Background()

	user, err := provider.Login(ctx, "a@b.com", "Al")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, "Al", user.DisplayName)
	assert.NotEmpty(t, user.ID)
}

func TestMockProvider_Login_FabricatesFreshIdentities(t *testing.T) {
	provider := NewMockProvider()
	ctx := context.Background()

	first, err := provider.Login(ctx, "a@b.com", "Al")
	require.NoError(t, err)
	second, err := provider.Login(ctx, "a@b.com", "Al")
	require.NoError(t, err)

	// A new id is synthesized on every login; this is a mock
	// identity, not a real credential exchange.
	assert.NotEqual(t, first.ID, second.ID)
}

func TestMockProvider_Signup(t *testing.T) {
	provider := NewMockProvider()

	user, err := provider.Signup(context.Background(), "new@b.com", "Newbie")
	require.NoError(t, err)
	assert.Equal(t, "new@b.com", user.Email)
	assert.NotEmpty(t, user.ID)
}

func TestMockProvider_Latency_RespectsCancellation(t *testing.T) {
	provider := NewMockProviderWithLatency(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := provider.Login(ctx, "a@b.com", "Al")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMockProvider_ChangePasswordAndDeleteAccount(t *testing.T) {
	provider := NewMockProvider()
	ctx := context.Background()

	assert.NoError(t, provider.ChangePassword(ctx, "old", "new"))
	assert.NoError(t, provider.DeleteAccount(ctx, "u1"))
}
