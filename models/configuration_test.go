// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Field ────────────────────────────────────────────────────────────────────

func TestParseField_KnownNames(t *testing.T) {
	for _, f := range Fields {
		got, err := ParseField(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
}

func TestParseField_Unknown(t *testing.T) {
	_, err := ParseField("colour")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestField_InvalidString(t *testing.T) {
	assert.Equal(t, "Field(9)", Field(9).String())
	assert.False(t, Field(-1).Valid())
}

// ── Configuration ────────────────────────────────────────────────────────────

func TestConfiguration_ZeroValueIsEmpty(t *testing.T) {
	var c Configuration
	assert.False(t, c.IsComplete())
	assert.Len(t, c.Missing(), len(Fields))
}

func TestConfiguration_WithDoesNotMutateReceiver(t *testing.T) {
	base := Configuration{}.With(FieldVersions, 10)
	next := base.With(FieldVersions, 20)

	v, _ := base.Get(FieldVersions)
	assert.Equal(t, 10, v)
	v, _ = next.Get(FieldVersions)
	assert.Equal(t, 20, v)
}

func TestConfiguration_NegativeUnsets(t *testing.T) {
	c := Configuration{}.With(FieldScreens, 5).With(FieldScreens, -1)
	assert.False(t, c.IsSet(FieldScreens))
}

func TestConfiguration_ZeroIsSet(t *testing.T) {
	c := Configuration{}.With(FieldScreens, 0)
	v, ok := c.Get(FieldScreens)
	assert.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestConfiguration_Comparable(t *testing.T) {
	a := NewConfiguration(100, 20, 5, 4, 5)
	b := NewConfiguration(100, 20, 5, 4, 5)
	assert.True(t, a == b)
	assert.False(t, a == a.Without(FieldScreens))
	assert.True(t, a.Without(FieldScreens).With(FieldScreens, 5) == a)
}

func TestConfiguration_Complete(t *testing.T) {
	c := NewConfiguration(100, 20, 5, 4, 5)
	assert.True(t, c.IsComplete())
	assert.Empty(t, c.Missing())
	assert.Equal(t, []Field{FieldScreens}, c.Without(FieldScreens).Missing())
}

func TestConfiguration_MarshalJSON(t *testing.T) {
	c := NewConfiguration(100, 20, 5, 4, 5)
	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"versions":100,"numOfItems":20,"screens":5,"maxItemsPerScreen":4,"screensWithMaxItems":5}`, string(data))

	data, err = json.Marshal(c.Without(FieldNumOfItems))
	require.NoError(t, err)
	assert.JSONEq(t, `{"versions":100,"numOfItems":null,"screens":5,"maxItemsPerScreen":4,"screensWithMaxItems":5}`, string(data))
}

func TestConfiguration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		complete bool
		missing  []Field
	}{
		{
			name:     "all fields",
			body:     `{"versions":1,"numOfItems":2,"screens":1,"maxItemsPerScreen":2,"screensWithMaxItems":1}`,
			complete: true,
		},
		{
			name:    "null field",
			body:    `{"versions":null,"numOfItems":2,"screens":1,"maxItemsPerScreen":2,"screensWithMaxItems":1}`,
			missing: []Field{FieldVersions},
		},
		{
			name:    "absent fields",
			body:    `{"versions":3}`,
			missing: []Field{FieldNumOfItems, FieldScreens, FieldMaxItemsPerScreen, FieldScreensWithMaxItems},
		},
		{
			name:    "negative field",
			body:    `{"versions":-3,"numOfItems":2,"screens":1,"maxItemsPerScreen":2,"screensWithMaxItems":1}`,
			missing: []Field{FieldVersions},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Configuration
			require.NoError(t, json.Unmarshal([]byte(tt.body), &c))
			assert.Equal(t, tt.complete, c.IsComplete())
			assert.Equal(t, tt.missing, c.Missing())
		})
	}
}

func TestConfiguration_UnmarshalJSON_RejectsFloats(t *testing.T) {
	var c Configuration
	err := json.Unmarshal([]byte(`{"versions":1.5}`), &c)
	assert.Error(t, err)
}

func TestConfiguration_String(t *testing.T) {
	c := Configuration{}.With(FieldVersions, 7)
	assert.Equal(t, "{versions=7 numOfItems=- screens=- maxItemsPerScreen=- screensWithMaxItems=-}", c.String())
}
