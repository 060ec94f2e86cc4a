// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHTTPHandler is returned by NewServer when the handler set carries no
// daemon API router.
var errNoHTTPHandler = errors.New("daemon HTTP handler is not configured")
