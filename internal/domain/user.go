package domain

// User represents the authenticated identity for the session.
// At most one user is active at a time (single-user model).
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// UserUpdate describes a partial update to the current user's profile.
// Nil fields are left untouched.
type UserUpdate struct {
	Email       *string
	DisplayName *string
}
