// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-augmd/models"
)

// ApplyInput returns cfg with field set from the user-entered text raw.
// Text that is not a plain non-negative base-10 integer (after trimming
// spaces) unsets the field; so does a value too large for an int.
func ApplyInput(cfg models.Configuration, field models.Field, raw string) models.Configuration {
	v, ok := parseNonNegative(raw)
	if !ok {
		return cfg.Without(field)
	}
	return cfg.With(field, v)
}

func parseNonNegative(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

type configurationStore struct {
	mu      sync.RWMutex
	current models.Configuration
}

// NewConfigurationStore returns a [ConfigurationStore] starting from initial.
func NewConfigurationStore(initial models.Configuration) ConfigurationStore {
	return &configurationStore{current: initial}
}

// Update implements [ConfigurationStore].
func (s *configurationStore) Update(field models.Field, raw string) models.Configuration {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = ApplyInput(s.current, field, raw)
	return s.current
}

// Current implements [ConfigurationStore].
func (s *configurationStore) Current() models.Configuration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}
