// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MasterPassword is the persisted app-level password record.
type MasterPassword struct {
	// HashedPassword is the hex digest of the password, nil when no
	// password has been set yet.
	HashedPassword *string

	// HashingAlgorithm names the algorithm HashedPassword was produced with.
	HashingAlgorithm string
}

// IsSet reports whether a master password has been stored.
func (m MasterPassword) IsSet() bool {
	return m.HashedPassword != nil
}

// PasswordState is the lifecycle state of the master password.
type PasswordState int

const (
	NoPasswordSet PasswordState = iota
	SavingNewPassword
	PasswordSet
)

func (s PasswordState) String() string {
	switch s {
	case NoPasswordSet:
		return "no_password_set"
	case SavingNewPassword:
		return "saving_new_password"
	case PasswordSet:
		return "password_set"
	default:
		return "unknown"
	}
}

// ParsePasswordState is the inverse of PasswordState.String.
func ParsePasswordState(s string) (PasswordState, bool) {
	for _, state := range []PasswordState{NoPasswordSet, SavingNewPassword, PasswordSet} {
		if state.String() == s {
			return state, true
		}
	}
	return NoPasswordSet, false
}

// LoginState tells whether a session may read notes.
type LoginState int

const (
	Unauthenticated LoginState = iota
	Authenticated
)

func (s LoginState) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// ValidationResult is the outcome of a password strength check. Checks run
// in declaration order and the first failing one wins.
type ValidationResult int

const (
	Empty ValidationResult = iota
	TooShort
	ContainsWhitespace
	NoLetter
	NoDigit
	NoUppercase
	NoLowercase
	Valid
)

var validationResultNames = map[ValidationResult]string{
	Empty:              "empty",
	TooShort:           "too_short",
	ContainsWhitespace: "contains_whitespace",
	NoLetter:           "no_letter",
	NoDigit:            "no_digit",
	NoUppercase:        "no_uppercase",
	NoLowercase:        "no_lowercase",
	Valid:              "valid",
}

func (r ValidationResult) String() string {
	if name, ok := validationResultNames[r]; ok {
		return name
	}
	return "unknown"
}
