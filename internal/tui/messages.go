// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-augmd/models"
)

// previewFetchedMsg carries a preview outcome back onto the event loop. The
// outcome keeps the epoch it was issued with.
type previewFetchedMsg struct {
	outcome models.PreviewOutcome
}

// debounceMsg fires once input has been quiet for the debounce delay.
type debounceMsg struct {
	ticket models.PreviewTicket
}

type submittedMsg struct {
	handle models.ArtifactHandle
	err    error
}

type copiedMsg struct {
	err error
}

type serverVersionMsg struct {
	version string
	err     error
}

// clearStatusMsg clears the notification with the matching id only, so an
// older timer cannot wipe a newer notification.
type clearStatusMsg struct {
	id int
}
