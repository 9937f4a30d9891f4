// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Field identifies one of the five numeric design parameters a user edits.
type Field int

const (
	// FieldVersions is the number of versions in the generated design.
	FieldVersions Field = iota
	// FieldNumOfItems is the number of distinct items each version shows.
	FieldNumOfItems
	// FieldScreens is the number of screens (sets) per version.
	FieldScreens
	// FieldMaxItemsPerScreen is the widest a single screen can be.
	FieldMaxItemsPerScreen
	// FieldScreensWithMaxItems is how many screens are filled to the maximum.
	FieldScreensWithMaxItems

	fieldCount
)

// Fields lists every Field in form order.
var Fields = [fieldCount]Field{
	FieldVersions,
	FieldNumOfItems,
	FieldScreens,
	FieldMaxItemsPerScreen,
	FieldScreensWithMaxItems,
}

var fieldNames = [fieldCount]string{
	"versions",
	"numOfItems",
	"screens",
	"maxItemsPerScreen",
	"screensWithMaxItems",
}

var fieldLabels = [fieldCount]string{
	"Number of versions",
	"Number of items",
	"Number of screens",
	"Maximum items per screen",
	"Screens with maximum items",
}

// String returns the wire name of the field as used in request bodies.
func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// Label returns a human readable caption for the field.
func (f Field) Label() string {
	if !f.Valid() {
		return f.String()
	}
	return fieldLabels[f]
}

// Valid reports whether f is one of the five known fields.
func (f Field) Valid() bool {
	return f >= 0 && f < fieldCount
}

// ParseField maps a wire name back to its Field.
func ParseField(name string) (Field, error) {
	for i, n := range fieldNames {
		if n == name {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}
