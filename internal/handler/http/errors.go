// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of request decoding and the authentication middleware.
// Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoSession is returned when an authenticated route runs without a
	// session attached to the request context.
	ErrNoSession = errors.New("no session in request context")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
