// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidDesignParams = errors.New("invalid design parameters")
	ErrMissingParams       = errors.New("missing design parameters")
)

// ValidationError carries the message shown to the user for a rejected
// design configuration.
type ValidationError struct {
	Field   string
	Message string
	kind    error
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap lets errors.Is match [ErrInvalidDesignParams] or [ErrMissingParams].
func (e *ValidationError) Unwrap() error {
	if e.kind == nil {
		return ErrInvalidDesignParams
	}
	return e.kind
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
