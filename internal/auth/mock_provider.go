package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskflow/internal/domain"
	"taskflow/internal/logging"
)

// MockProvider is a local authentication simulation. It fabricates a
// fresh identity on every login and never verifies credentials. The
// optional latency imitates a network round-trip for the form layer;
// it respects context cancellation.
type MockProvider struct {
	latency time.Duration
}

// NewMockProvider creates a mock provider with no artificial latency.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// NewMockProviderWithLatency creates a mock provider that delays every
// operation by the given duration.
func NewMockProviderWithLatency(latency time.Duration) *MockProvider {
	return &MockProvider{latency: latency}
}

// Login fabricates a new user identity for the given credentials.
func (p *MockProvider) Login(ctx context.Context, email, displayName string) (*domain.User, error) {
	if err := p.simulateRoundTrip(ctx); err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:          uuid.NewString(),
		Email:       email,
		DisplayName: displayName,
	}
	logging.Debugf("mock login for %s\n", email)
	return user, nil
}

// Signup behaves exactly like Login: the simulation has no account
// registry to reject duplicates from.
func (p *MockProvider) Signup(ctx context.Context, email, displayName string) (*domain.User, error) {
	return p.Login(ctx, email, displayName)
}

// ChangePassword accepts any change; there is no stored credential to
// check against.
func (p *MockProvider) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	return p.simulateRoundTrip(ctx)
}

// DeleteAccount accepts any deletion.
func (p *MockProvider) DeleteAccount(ctx context.Context, userID string) error {
	return p.simulateRoundTrip(ctx)
}

// simulateRoundTrip blocks for the configured latency or until the
// context is cancelled.
func (p *MockProvider) simulateRoundTrip(ctx context.Context) error {
	if p.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(p.latency)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
