// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-augmd/models"
)

// Field name constants used to specify which checks should run. Each range
// check is named after the wire name of the field it guards;
// FieldConsistency covers the rules that relate fields to each other.
const (
	FieldVersions            = "versions"
	FieldNumOfItems          = "numOfItems"
	FieldScreens             = "screens"
	FieldMaxItemsPerScreen   = "maxItemsPerScreen"
	FieldScreensWithMaxItems = "screensWithMaxItems"
	FieldConsistency         = "consistency"
)

// defaultDesignChecks is the full ladder, in the order the user sees the
// first failing message.
var defaultDesignChecks = []string{
	FieldVersions,
	FieldNumOfItems,
	FieldScreens,
	FieldMaxItemsPerScreen,
	FieldScreensWithMaxItems,
	FieldConsistency,
}

// DesignParamsValidator implements [Validator] for design configurations.
// It accepts models.Configuration and *models.Configuration and reports the
// first failing rule as a [*ValidationError] whose message is meant for the
// end user.
type DesignParamsValidator struct{}

// NewDesignParamsValidator constructs a new DesignParamsValidator and
// returns it as the Validator interface.
func NewDesignParamsValidator() Validator {
	return &DesignParamsValidator{}
}

// Validate implements [Validator]. Optional fields restrict validation to
// the named checks; when omitted, the whole ladder runs.
func (v *DesignParamsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Configuration:
		return v.validateConfiguration(ctx, value, fields...)
	case *models.Configuration:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateConfiguration(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *DesignParamsValidator) validateConfiguration(_ context.Context, cfg models.Configuration, fields ...string) error {
	if missing := cfg.Missing(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, f := range missing {
			names[i] = f.String()
		}
		return &ValidationError{
			Field:   names[0],
			Message: "Missing design parameters: " + strings.Join(names, ", ") + ".",
			kind:    ErrMissingParams,
		}
	}

	if len(fields) == 0 {
		fields = defaultDesignChecks
	}

	versions := cfg.Versions()
	items := cfg.NumOfItems()
	screens := cfg.Screens()
	maxItems := cfg.MaxItemsPerScreen()
	withMax := cfg.ScreensWithMaxItems()

	for _, f := range fields {
		switch f {
		case FieldVersions:
			if versions <= 0 || versions > 500 {
				return invalid(f, "It is not possible to create a design with %d versions."+
					" You must have at least one version and at most 500.", versions)
			}
		case FieldNumOfItems:
			if items <= 1 || items >= 1000 {
				return invalid(f, "It is not possible to create a design with %d items."+
					" You must have at least two items.", items)
			}
		case FieldScreens:
			if screens < 1 || screens > 21 {
				return invalid(f, "It is not possible to create a design with %d screens."+
					" A design requires at least 1 screen and at most 20 screens.", screens)
			}
		case FieldMaxItemsPerScreen:
			if maxItems < 2 || maxItems >= 16 {
				return invalid(f, "It is not possible to show %d item(s) per screen."+
					" You must have a minimum of 2 items and a maximum of 15 items per screen.", maxItems)
			}
		case FieldScreensWithMaxItems:
			if withMax <= 0 {
				return invalid(f, "It is not possible to show %d screens with maximum items."+
					" You will need %d screens with maximum items.", withMax, screens-(screens*maxItems-items))
			}
		case FieldConsistency:
			if err := validateConsistency(items, screens, maxItems, withMax); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateConsistency checks that the five parameters describe a layout
// that can actually be filled.
func validateConsistency(items, screens, maxItems, withMax int) error {
	const f = FieldConsistency

	if screens < withMax {
		return invalid(f, "Based on these parameters, it is not possible to create a design."+
			" You cannot have %d screens holding %d maximum items if there are only %d total screens.",
			withMax, maxItems, screens)
	}

	if maxItems*screens < items {
		return invalid(f, "Based on these parameters, it is not possible to show %d items."+
			" At most, only %d items can be shown.", items, maxItems*screens)
	}

	exactFit := items == maxItems*screens
	allScreensFull := screens == withMax

	if exactFit && !allScreensFull {
		return invalid(f, "Based on these parameters, it is not possible to create a design."+
			" If you have %d screens with %d items, you will need %d  more screen(s) with %d maximum items.",
			screens, items, screens-withMax, maxItems)
	}

	if allScreensFull && items%screens != 0 {
		return invalid(f, "Based on these parameters, it is not possible to create a design."+
			" You do not have enough items to fill %d screens with %d maximum items.", withMax, maxItems)
	}

	itemsRemaining := items - maxItems*withMax
	if itemsRemaining < 0 {
		return invalid(f, "Based on these parameters, it is not possible to create a design with"+
			" %d maximum items on %d screens. You do not have enough items.", maxItems, withMax)
	}

	if screensRemaining := screens - withMax; screensRemaining > 0 {
		if ceilDiv(itemsRemaining, screensRemaining) >= maxItems {
			return invalid(f, "Based on these parameters, it is not possible to create a design with"+
				" %d maximum items on %d screens.", maxItems, withMax)
		}
	}

	return nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
