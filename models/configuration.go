// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Configuration is an immutable set of the five design parameters.
//
// Each field is either unset or holds a non-negative integer. Edits return a
// new value, so a Configuration captured by an in-flight request never
// changes underneath it. Values are comparable with ==.
type Configuration struct {
	values [fieldCount]int
	set    [fieldCount]bool
}

// NewConfiguration builds a complete Configuration from explicit values.
// Negative values leave the corresponding field unset.
func NewConfiguration(versions, numOfItems, screens, maxItemsPerScreen, screensWithMaxItems int) Configuration {
	var c Configuration
	raw := [fieldCount]int{versions, numOfItems, screens, maxItemsPerScreen, screensWithMaxItems}
	for _, f := range Fields {
		c = c.With(f, raw[f])
	}
	return c
}

// With returns a copy of c with field f set to v. A negative v or an
// unknown field unsets f instead.
func (c Configuration) With(f Field, v int) Configuration {
	if !f.Valid() {
		return c
	}
	if v < 0 {
		return c.Without(f)
	}
	c.values[f] = v
	c.set[f] = true
	return c
}

// Without returns a copy of c with field f unset.
func (c Configuration) Without(f Field) Configuration {
	if !f.Valid() {
		return c
	}
	c.values[f] = 0
	c.set[f] = false
	return c
}

// Get returns the value of f and whether it is set.
func (c Configuration) Get(f Field) (int, bool) {
	if !f.Valid() {
		return 0, false
	}
	return c.values[f], c.set[f]
}

// IsSet reports whether field f holds a value.
func (c Configuration) IsSet(f Field) bool {
	_, ok := c.Get(f)
	return ok
}

// IsComplete reports whether all five fields are set.
func (c Configuration) IsComplete() bool {
	for _, ok := range c.set {
		if !ok {
			return false
		}
	}
	return true
}

// Missing lists the fields that are still unset, in form order.
func (c Configuration) Missing() []Field {
	var missing []Field
	for _, f := range Fields {
		if !c.set[f] {
			missing = append(missing, f)
		}
	}
	return missing
}

// Versions returns the versions field, zero when unset.
func (c Configuration) Versions() int { return c.values[FieldVersions] }

// NumOfItems returns the numOfItems field, zero when unset.
func (c Configuration) NumOfItems() int { return c.values[FieldNumOfItems] }

// Screens returns the screens field, zero when unset.
func (c Configuration) Screens() int { return c.values[FieldScreens] }

// MaxItemsPerScreen returns the maxItemsPerScreen field, zero when unset.
func (c Configuration) MaxItemsPerScreen() int { return c.values[FieldMaxItemsPerScreen] }

// ScreensWithMaxItems returns the screensWithMaxItems field, zero when unset.
func (c Configuration) ScreensWithMaxItems() int { return c.values[FieldScreensWithMaxItems] }

func (c Configuration) String() string {
	parts := make([]string, 0, fieldCount)
	for _, f := range Fields {
		v := "-"
		if c.set[f] {
			v = fmt.Sprint(c.values[f])
		}
		parts = append(parts, f.String()+"="+v)
	}
	return "{" + strings.Join(parts, " ") + "}"
}

type configurationJSON struct {
	Versions            *int `json:"versions"`
	NumOfItems          *int `json:"numOfItems"`
	Screens             *int `json:"screens"`
	MaxItemsPerScreen   *int `json:"maxItemsPerScreen"`
	ScreensWithMaxItems *int `json:"screensWithMaxItems"`
}

func (j *configurationJSON) pointers() [fieldCount]**int {
	return [fieldCount]**int{&j.Versions, &j.NumOfItems, &j.Screens, &j.MaxItemsPerScreen, &j.ScreensWithMaxItems}
}

// MarshalJSON encodes set fields as integers and unset fields as null.
func (c Configuration) MarshalJSON() ([]byte, error) {
	var j configurationJSON
	ptrs := j.pointers()
	for _, f := range Fields {
		if c.set[f] {
			v := c.values[f]
			*ptrs[f] = &v
		}
	}
	return json.Marshal(j)
}

// UnmarshalJSON decodes the wire form. Absent, null, and negative values
// leave the field unset.
func (c *Configuration) UnmarshalJSON(b []byte) error {
	var j configurationJSON
	if err := json.Unmarshal(b, &j); err != nil {
		return fmt.Errorf("decode configuration: %w", err)
	}

	var out Configuration
	for f, p := range j.pointers() {
		if *p != nil {
			out = out.With(Field(f), **p)
		}
	}
	*c = out
	return nil
}
