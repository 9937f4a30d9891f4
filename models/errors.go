// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// ErrUnknownField is returned by ParseField for names outside the five
// design parameters.
var ErrUnknownField = errors.New("unknown configuration field")
