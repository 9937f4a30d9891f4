// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Epoch numbers preview requests. A response is only applied when its epoch
// still matches the latest one handed out.
type Epoch uint64

// SyncStatus names the variant held by a SyncState.
type SyncStatus int

const (
	// SyncIdle means the configuration is incomplete and no preview exists.
	SyncIdle SyncStatus = iota
	// SyncPending means a preview request for the latest configuration is in flight.
	SyncPending
	// SyncPreview means the latest configuration produced a preview.
	SyncPreview
	// SyncRejected means the latest configuration could not be previewed.
	SyncRejected
)

func (s SyncStatus) String() string {
	switch s {
	case SyncIdle:
		return "idle"
	case SyncPending:
		return "pending"
	case SyncPreview:
		return "preview"
	case SyncRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// SyncState is the preview state shown to the user. Exactly one of Idle,
// Pending, Preview and Rejected holds; a preview and an error never coexist.
// The zero value is Idle.
type SyncState struct {
	status  SyncStatus
	preview PreviewResult
	message string
}

// IdleState returns the Idle variant.
func IdleState() SyncState {
	return SyncState{status: SyncIdle}
}

// PendingState returns the Pending variant.
func PendingState() SyncState {
	return SyncState{status: SyncPending}
}

// PreviewState returns the Preview variant carrying r.
func PreviewState(r PreviewResult) SyncState {
	return SyncState{status: SyncPreview, preview: r}
}

// RejectedState returns the Rejected variant carrying msg.
func RejectedState(msg string) SyncState {
	return SyncState{status: SyncRejected, message: msg}
}

// Status reports which variant s holds.
func (s SyncState) Status() SyncStatus {
	return s.status
}

// Preview returns the preview matrix and true for the Preview variant.
func (s SyncState) Preview() (PreviewResult, bool) {
	if s.status != SyncPreview {
		return nil, false
	}
	return s.preview, true
}

// Message returns the rejection message and true for the Rejected variant.
func (s SyncState) Message() (string, bool) {
	if s.status != SyncRejected {
		return "", false
	}
	return s.message, true
}

// AllowsSubmission reports whether an artifact may be requested while the
// preview is in this state. Idle configurations are incomplete and rejected
// ones are known to fail, so only Pending and Preview qualify.
func (s SyncState) AllowsSubmission() bool {
	return s.status == SyncPending || s.status == SyncPreview
}

// PreviewTicket is a preview request that was allowed to go out. It pins the
// configuration captured at issue time together with its epoch.
type PreviewTicket struct {
	Epoch  Epoch
	Config Configuration
}

// PreviewOutcome is what came back for a ticket: either a result or the
// error the transport reported.
type PreviewOutcome struct {
	Epoch  Epoch
	Config Configuration
	Result PreviewResult
	Err    error
}
