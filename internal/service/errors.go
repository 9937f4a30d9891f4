// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-augmd/models"
)

var (
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrIncompleteConfiguration = errors.New("configuration is incomplete")
	ErrStaleTicket             = errors.New("preview ticket is superseded")
	ErrDesignGeneration        = errors.New("error generating design")
	ErrDesignNotFound          = errors.New("design not found")
)

// SubmissionStage names the step of a submission that failed.
type SubmissionStage string

const (
	StageRequest SubmissionStage = "request"
	StageSave    SubmissionStage = "save"
)

// SubmissionError reports a failed artifact request or save. It never
// affects the preview state.
type SubmissionError struct {
	Stage  SubmissionStage
	Config models.Configuration
	Err    error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission %s failed for %s: %v", e.Stage, e.Config, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// Message is the transient notification text for the user.
func (e *SubmissionError) Message() string {
	return mapAdapterError(e.Err)
}
