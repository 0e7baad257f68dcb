package validation

import (
	"regexp"
	"strings"

	"taskflow/internal/config"
)

// emailRegex is intentionally loose. The authentication backend is a
// local simulation, so the only goal is to catch obvious typos at the
// form edge.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validator provides common validation utilities shared by the
// per-entity validators.
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance using default limits.
func NewValidator() *Validator {
	return &Validator{config: nil}
}

// NewValidatorWithConfig creates a new validator instance with
// configured limits.
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming
// whitespace.
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a trimmed string length is within the
// specified range.
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidEmail checks if a string looks like an email address.
func (v *Validator) IsValidEmail(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}

// TrimString trims whitespace and returns the cleaned string.
func (v *Validator) TrimString(s string) string {
	return strings.TrimSpace(s)
}

// TitleMaxLength returns the configured maximum task title length or
// the default.
func (v *Validator) TitleMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TitleMaxLength
	}
	return 255
}

// CategoryNameMaxLength returns the configured maximum category name
// length or the default.
func (v *Validator) CategoryNameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.CategoryNameMaxLength
	}
	return 100
}

// PasswordMinLength returns the configured minimum password length or
// the default.
func (v *Validator) PasswordMinLength() int {
	if v.config != nil {
		return v.config.Validation.PasswordMinLength
	}
	return 8
}
