// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the design server's background jobs.
//
// A Worker is started once with the server context and stopped during
// shutdown. Workers groups them so the server can manage all jobs together.
package workers

import "context"

// Worker is a background job. Start must not block; Stop blocks until the
// job has exited and is safe to call on a job that is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
