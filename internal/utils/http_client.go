// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the request trace identifier between client and
// server.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient is a wrapper around resty.Client that stamps every request
// with the trace ID found in its context.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an HTTPClient for baseURL with the given per-request
// timeout. A non-positive timeout leaves resty's default (none).
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	cli := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		cli.SetTimeout(timeout)
	}

	cli.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if traceID, ok := GetTraceIDFromContext(req.Context()); ok {
			req.SetHeader(TraceIDHeader, traceID)
		}
		return nil
	})

	return &HTTPClient{Client: cli}
}

// RWithContext returns a new request bound to ctx.
func (c *HTTPClient) RWithContext(ctx context.Context) *resty.Request {
	return c.R().SetContext(ctx)
}
