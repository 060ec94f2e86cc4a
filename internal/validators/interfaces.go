// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input checks shared by services and
// handlers: password strength rules and note content rules.
//
// Every validator implements Validator. Callers may restrict a call to
// specific named fields; with no field names all rules of the value's
// type are applied.
package validators

import "context"

// Validator validates an arbitrary input value, optionally restricted to
// the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
