// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-augmd/models"
)

// ConfigurationStore holds the configuration the user is editing. Every
// edit produces a new immutable [models.Configuration] value.
type ConfigurationStore interface {
	// Update parses raw as the new value of field and records the result.
	// Surrounding whitespace is ignored. Anything that is not a non-negative
	// base-10 integer unsets the field. No other field is affected.
	Update(field models.Field, raw string) models.Configuration

	// Current returns the latest recorded configuration.
	Current() models.Configuration
}

// PreviewSynchronizer keeps the preview state consistent with the latest
// configuration, no matter in which order preview responses arrive.
//
// The host calls Observe on every configuration change, Fetch off its event
// loop and Reconcile back on it.
type PreviewSynchronizer interface {
	// Observe records cfg as the latest configuration. An incomplete cfg
	// moves the state to Idle and abandons any in-flight request. A complete
	// cfg allocates a new epoch, moves the state to Pending and returns the
	// ticket to fetch with ok set.
	Observe(cfg models.Configuration) (ticket models.PreviewTicket, ok bool)

	// Fetch asks the design service for the ticket's preview. It never
	// fails: transport and validation errors travel inside the outcome.
	// Tickets that are already superseded are not sent at all.
	Fetch(ctx context.Context, ticket models.PreviewTicket) models.PreviewOutcome

	// Reconcile applies outcome if its epoch is still the current one and
	// returns the resulting state. Stale outcomes are dropped and reported
	// with accepted set to false.
	Reconcile(outcome models.PreviewOutcome) (state models.SyncState, accepted bool)

	// State returns the current state.
	State() models.SyncState

	// IsCurrent reports whether epoch is still the latest one.
	IsCurrent(epoch models.Epoch) bool

	// Debounce is the quiescence delay to wait before fetching.
	Debounce() time.Duration

	// Close abandons the in-flight request. Outcomes of tickets issued
	// before Close are never applied.
	Close()
}

// SubmissionController turns an explicit user confirmation into a saved
// design file.
type SubmissionController interface {
	// Submit requests the full design for cfg and stores it in the download
	// directory. cfg must be complete, else [ErrIncompleteConfiguration].
	// Every other failure is a [*SubmissionError]. Submit never touches the
	// preview state.
	Submit(ctx context.Context, cfg models.Configuration) (models.ArtifactHandle, error)
}

// ClientInfoService reports details about the connected design server.
type ClientInfoService interface {
	// ServerVersion returns the version string of the design server.
	ServerVersion(ctx context.Context) (string, error)
}
