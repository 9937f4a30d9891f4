// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testHashKey = "test-secret-key"

func TestHasher_MatchesDirectHMAC(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("Version,Set,Item1,Item2\n1,1,3,4\n")

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(data)
	expected := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, expected, h.Sign(data))
	assert.Equal(t, h.Sign(data), h.Sign(data), "hash must be deterministic")
}

func TestHasher_Verify(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("payload")
	sig := h.Sign(data)

	tests := []struct {
		name string
		data []byte
		sig  string
		want bool
	}{
		{name: "valid signature", data: data, sig: sig, want: true},
		{name: "tampered body", data: []byte("payload!"), sig: sig, want: false},
		{name: "not hex", data: data, sig: "zz", want: false},
		{name: "missing signature", data: data, sig: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Verify(tt.data, tt.sig))
		})
	}
}

func TestHasher_DisabledWithoutKey(t *testing.T) {
	h := NewHasher("")
	assert.False(t, h.Enabled())
	assert.Empty(t, h.Sign([]byte("x")))
	assert.True(t, h.Verify([]byte("x"), "deadbeef"))

	var nilHasher *Hasher
	assert.False(t, nilHasher.Enabled())
}

func TestHasher_DifferentKeysDiffer(t *testing.T) {
	data := []byte("same")
	assert.NotEqual(t, NewHasher("a").Sign(data), NewHasher("b").Sign(data))
}

func TestHasher_ConcurrentUse(t *testing.T) {
	h := NewHasher(testHashKey)
	want := h.Sign([]byte("concurrent"))

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, h.Sign([]byte("concurrent")))
		}()
	}
	wg.Wait()
}
