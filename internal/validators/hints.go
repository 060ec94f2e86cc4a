package validators

import "github.com/MKhiriev/go-secret-notes/models"

// Reason returns a short human readable description of result.
func Reason(result models.ValidationResult) string {
	switch result {
	case models.Empty:
		return "Empty"
	case models.TooShort:
		return "Too short"
	case models.NoDigit:
		return "No digit"
	case models.NoLetter:
		return "No letter"
	case models.ContainsWhitespace:
		return "Contains whitespace"
	case models.NoUppercase:
		return "No uppercase letter"
	case models.NoLowercase:
		return "No lowercase letter"
	default:
		return "Good password"
	}
}

// Hint returns the prompt text shown below a password input. matches is
// nil until the typed password has been compared with the stored one.
func Hint(result models.ValidationResult, state models.PasswordState, matches *bool) string {
	switch state {
	case models.NoPasswordSet:
		switch result {
		case models.Empty:
			return "Create your new password"
		case models.Valid:
			return "Set this as your new password. Will you remember it?"
		default:
			return Reason(result)
		}
	case models.PasswordSet:
		if result == models.Empty {
			return "Insert the password you created"
		}
		if matches == nil || !*matches {
			return Reason(result)
		}
		return "Password accepted"
	default:
		return "Unknown"
	}
}

// Describe validates password and fills the prompt response for state.
// It never compares against a stored hash, so the hint for a valid password
// after setup is the plain rule description.
func Describe(password string, state models.PasswordState) models.ValidationResponse {
	result := ValidatePassword(password)
	return models.ValidationResponse{
		Result: result.String(),
		Reason: Reason(result),
		Hint:   Hint(result, state, nil),
	}
}
