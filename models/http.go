// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PreviewResponse is the 200 body of the preview endpoint.
type PreviewResponse struct {
	SampleDesign PreviewResult `json:"sample_design"`
}

// ErrorResponse is the body the design service uses for rejections.
type ErrorResponse struct {
	Message string `json:"message"`
}
