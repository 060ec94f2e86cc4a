// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-secret-notes/models"
)

// MinPasswordLength is the minimal number of characters of a password.
const MinPasswordLength = 7

// ValidatePassword classifies password against the strength rules.
//
// Rules are checked in order and the first failure is returned: Empty,
// TooShort, ContainsWhitespace, NoLetter, NoDigit, NoUppercase,
// NoLowercase. Whitespace is reported as soon as it is seen, before any
// letter or digit count is judged.
func ValidatePassword(password string) models.ValidationResult {
	if password == "" {
		return models.Empty
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return models.TooShort
	}

	var letters, upper, digits int
	for _, r := range password {
		if unicode.IsLetter(r) {
			letters++
		}
		if unicode.IsUpper(r) {
			upper++
		}
		if unicode.IsDigit(r) {
			digits++
		}
		if unicode.IsSpace(r) {
			return models.ContainsWhitespace
		}
	}

	switch {
	case letters == 0:
		return models.NoLetter
	case digits == 0:
		return models.NoDigit
	case upper == 0:
		return models.NoUppercase
	case upper == letters:
		return models.NoLowercase
	default:
		return models.Valid
	}
}

type PasswordValidator struct{}

func NewPasswordValidator() Validator {
	return &PasswordValidator{}
}

// Validate accepts a password string or a *models.PasswordRequest and
// returns a *ValidationError for anything but models.Valid.
func (v *PasswordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var password string
	switch value := obj.(type) {
	case string:
		password = value
	case models.PasswordRequest:
		password = value.Password
	case *models.PasswordRequest:
		password = value.Password
	default:
		return ErrUnsupportedType
	}

	if result := ValidatePassword(password); result != models.Valid {
		return &ValidationError{Result: result}
	}
	return nil
}
