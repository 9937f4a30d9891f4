// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
)

var (
	ErrValidationRejected   = errors.New("configuration rejected by design service")
	ErrBadRequest           = errors.New("bad request")
	ErrNotFound             = errors.New("not found")
	ErrInternalServerError  = errors.New("internal server error")
	ErrBadGateway           = errors.New("bad gateway")
	ErrServiceUnavailable   = errors.New("service unavailable")
	ErrUnexpectedStatus     = errors.New("unexpected status")
	ErrIntegrityCheckFailed = errors.New("artifact integrity check failed")
	ErrIncompleteRequest    = errors.New("configuration is incomplete")
	ErrMalformedResponse    = errors.New("malformed response")
)

// RejectionError carries the human-readable message the design service
// returned for an invalid configuration.
type RejectionError struct {
	Message string
}

func (e *RejectionError) Error() string {
	return "design service rejected configuration: " + e.Message
}

// Unwrap lets errors.Is match [ErrValidationRejected].
func (e *RejectionError) Unwrap() error {
	return ErrValidationRejected
}

// RejectionMessage extracts the server message from err, if err is a
// rejection.
func RejectionMessage(err error) (string, bool) {
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		return rejection.Message, true
	}
	return "", false
}
