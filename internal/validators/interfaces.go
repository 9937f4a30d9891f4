// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the rules a design configuration must satisfy
// before the design service will lay it out.
//
// Validator is the shared interface; DesignParamsValidator implements it for
// models.Configuration and reports the first failing rule with a message that
// is returned to the user verbatim.
package validators

import "context"

// Validator validates arbitrary input values, optionally restricted to a set
// of named checks.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
