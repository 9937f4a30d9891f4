// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/go-augmd/internal/utils"
)

// withArtifactHash buffers a successful response and sends the HMAC-SHA256
// of its body in the HashSHA256 header. It passes through untouched when no
// hash key is configured.
func (h *Handler) withArtifactHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.hasher.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		bw := &bufferedResponseWriter{header: w.Header(), status: http.StatusOK}
		next.ServeHTTP(bw, r)

		body := bw.body.Bytes()
		if bw.status >= 200 && bw.status < 300 {
			w.Header().Set(utils.HashHeader, h.hasher.Sign(body))
			h.requestLogger(r).Debug().Int("size", len(body)).Msg("artifact signed")
		}

		w.WriteHeader(bw.status)
		_, _ = w.Write(body)
	})
}

// bufferedResponseWriter holds the whole response so headers can still be
// changed once the body is known.
type bufferedResponseWriter struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func (w *bufferedResponseWriter) Header() http.Header {
	return w.header
}

func (w *bufferedResponseWriter) WriteHeader(statusCode int) {
	w.status = statusCode
}

func (w *bufferedResponseWriter) Write(b []byte) (int, error) {
	return w.body.Write(b)
}
