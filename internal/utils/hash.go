// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader is the response header carrying the hex HMAC-SHA256 of an
// artifact body.
const HashHeader = "HashSHA256"

// Hasher computes keyed HMAC-SHA256 digests. It keeps a pool of hash.Hash
// instances so artifact signing does not allocate a new HMAC per request.
// A Hasher with an empty key is disabled: Sign returns "" and Verify
// accepts everything.
type Hasher struct {
	key  []byte
	pool sync.Pool
}

// NewHasher returns a Hasher for key.
func NewHasher(key string) *Hasher {
	h := &Hasher{key: []byte(key)}
	h.pool.New = func() any {
		return hmac.New(sha256.New, h.key)
	}
	return h
}

// Enabled reports whether a key is configured.
func (h *Hasher) Enabled() bool {
	return h != nil && len(h.key) > 0
}

// Hash returns the raw HMAC-SHA256 digest of data.
func (h *Hasher) Hash(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// Sign returns the hex digest of data, or "" when the Hasher is disabled.
func (h *Hasher) Sign(data []byte) string {
	if !h.Enabled() {
		return ""
	}
	return hex.EncodeToString(h.Hash(data))
}

// Verify reports whether signature matches data. A disabled Hasher accepts
// everything; an enabled one rejects a missing signature.
func (h *Hasher) Verify(data []byte, signature string) bool {
	if !h.Enabled() {
		return true
	}
	if signature == "" {
		return false
	}
	want, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(h.Hash(data), want)
}
