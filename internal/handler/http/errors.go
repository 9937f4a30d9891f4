// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a request body is not a JSON
	// configuration.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidLimit is returned for a non-numeric limit query parameter.
	ErrInvalidLimit = errors.New("invalid limit")
)
