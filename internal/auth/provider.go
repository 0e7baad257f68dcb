// Package auth isolates identity fabrication behind a provider
// interface so a real authentication backend can be substituted
// without touching the store contract.
package auth

import (
	"context"

	"taskflow/internal/domain"
)

// Provider produces user identities for the session. The only
// contract a real implementation must satisfy is "produce a User";
// persistence is the session manager's job.
type Provider interface {
	// Login authenticates the given credentials and returns the
	// resulting user.
	Login(ctx context.Context, email, displayName string) (*domain.User, error)

	// Signup registers a new account and returns the resulting user.
	Signup(ctx context.Context, email, displayName string) (*domain.User, error)

	// ChangePassword updates the account password.
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error

	// DeleteAccount removes the account from the backend.
	DeleteAccount(ctx context.Context, userID string) error
}
