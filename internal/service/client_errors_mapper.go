// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-augmd/internal/adapter"
	"github.com/MKhiriev/go-augmd/internal/store"
)

// User-facing messages for failures that carry no server message.
const (
	MsgServerUnavailable  = "Network unavailable or the design service is unreachable"
	MsgServerTimeout      = "The design service did not respond in time"
	MsgServerError        = "The design service failed to process the request"
	MsgIntegrityFailed    = "The downloaded design did not pass the integrity check"
	MsgMalformedResponse  = "The design service sent a response that could not be read"
	MsgSaveFailed         = "The design could not be saved to the download directory"
	MsgIncompleteSettings = "Fill in every setting before requesting a design"
)

// mapAdapterError translates an adapter error into the message shown to the
// user. A validation rejection keeps the server's wording verbatim.
func mapAdapterError(err error) string {
	if err == nil {
		return ""
	}

	if msg, ok := adapter.RejectionMessage(err); ok {
		return msg
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return MsgServerTimeout
	case errors.Is(err, adapter.ErrIntegrityCheckFailed):
		return MsgIntegrityFailed
	case errors.Is(err, adapter.ErrMalformedResponse):
		return MsgMalformedResponse
	case errors.Is(err, adapter.ErrIncompleteRequest):
		return MsgIncompleteSettings
	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable),
		errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrUnexpectedStatus):
		return MsgServerError
	case errors.Is(err, store.ErrWritingArtifact),
		errors.Is(err, store.ErrNoFreeFileName),
		errors.Is(err, store.ErrNoArtifactDir):
		return MsgSaveFailed
	}

	return humanizeServerUnavailableError(err)
}

// humanizeServerUnavailableError recognises network failures by their text,
// since resty hands them back as *url.Error chains of varying shape.
func humanizeServerUnavailableError(err error) string {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "connection reset") ||
		strings.Contains(s, "eof") {
		return MsgServerUnavailable
	}
	if strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "deadline exceeded") ||
		strings.Contains(s, "client.timeout") {
		return MsgServerTimeout
	}

	return MsgServerError
}

// PreviewErrorMessage is the text a Rejected state shows for err.
func PreviewErrorMessage(err error) string {
	return mapAdapterError(err)
}

// UserMessage is the text shown for any other client-side failure, such as
// a server version lookup.
func UserMessage(err error) string {
	return mapAdapterError(err)
}
