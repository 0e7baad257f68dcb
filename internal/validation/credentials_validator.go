package validation

// CredentialsValidator provides edge validation for the simulated
// authentication forms: login, signup, and password change. No real
// credential verification happens anywhere in the system; these checks
// only keep obviously malformed input out of the session.
type CredentialsValidator struct {
	validator *Validator
}

// NewCredentialsValidator creates a new credentials validator with
// default limits.
func NewCredentialsValidator() *CredentialsValidator {
	return &CredentialsValidator{
		validator: NewValidator(),
	}
}

// NewCredentialsValidatorWith creates a new credentials validator
// sharing the given base validator.
func NewCredentialsValidatorWith(v *Validator) *CredentialsValidator {
	return &CredentialsValidator{validator: v}
}

// ValidateLogin validates a login form submission.
func (cv *CredentialsValidator) ValidateLogin(email, displayName string) error {
	validationError := NewValidationError()

	if !cv.validator.IsNonEmptyString(email) {
		validationError.AddRequiredError("email")
	} else if !cv.validator.IsValidEmail(email) {
		validationError.AddInvalidFormatError("email", email, "name@example.com")
	}

	if !cv.validator.IsNonEmptyString(displayName) {
		validationError.AddRequiredError("display_name")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateSignup validates a signup form submission, including the
// password confirmation match.
func (cv *CredentialsValidator) ValidateSignup(email, displayName, password, confirmPassword string) error {
	validationError := NewValidationError()

	if loginErr := cv.ValidateLogin(email, displayName); loginErr != nil {
		if loginValidationErr, ok := loginErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, loginValidationErr.Errors...)
		}
	}

	if pwErr := cv.validatePasswordPair(password, confirmPassword); pwErr != nil {
		validationError.Errors = append(validationError.Errors, pwErr.Errors...)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidatePasswordChange validates a password change form submission.
func (cv *CredentialsValidator) ValidatePasswordChange(currentPassword, newPassword, confirmPassword string) error {
	validationError := NewValidationError()

	if !cv.validator.IsNonEmptyString(currentPassword) {
		validationError.AddRequiredError("current_password")
	}

	if pwErr := cv.validatePasswordPair(newPassword, confirmPassword); pwErr != nil {
		validationError.Errors = append(validationError.Errors, pwErr.Errors...)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// validatePasswordPair checks a password and its confirmation.
func (cv *CredentialsValidator) validatePasswordPair(password, confirmPassword string) *ValidationError {
	validationError := NewValidationError()

	if !cv.validator.IsNonEmptyString(password) {
		validationError.AddRequiredError("password")
	} else if len(password) < cv.validator.PasswordMinLength() {
		validationError.AddInvalidLengthError("password", nil, cv.validator.PasswordMinLength(), 128)
	}

	if password != confirmPassword {
		validationError.AddMismatchError("confirm_password", "password")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}
