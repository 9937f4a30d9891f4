// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-augmd/internal/adapter"
	"github.com/MKhiriev/go-augmd/internal/logger"
	"github.com/MKhiriev/go-augmd/models"
)

// previewSynchronizer guards epoch, state and the in-flight cancel func
// with a single mutex, so comparing an outcome's epoch
// and writing the new state happen as one step.
type previewSynchronizer struct {
	adapter  adapter.DesignServiceAdapter
	debounce time.Duration
	logger   *logger.Logger

	mu            sync.Mutex
	epoch         models.Epoch
	state         models.SyncState
	inflight      context.CancelFunc
	inflightEpoch models.Epoch
}

// NewPreviewSynchronizer returns a [PreviewSynchronizer] in the Idle state.
// A positive debounce is reported to the host, which waits that long
// before fetching.
func NewPreviewSynchronizer(designAdapter adapter.DesignServiceAdapter, debounce time.Duration, logger *logger.Logger) PreviewSynchronizer {
	return &previewSynchronizer{
		adapter:  designAdapter,
		debounce: max(debounce, 0),
		logger:   logger,
		state:    models.IdleState(),
	}
}

// Observe implements [PreviewSynchronizer]. The epoch advances for
// incomplete configurations too, so a response still in flight can never
// match again.
func (p *previewSynchronizer) Observe(cfg models.Configuration) (models.PreviewTicket, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelInflightLocked()
	p.epoch++

	if !cfg.IsComplete() {
		p.logger.Debug().
			Uint64("epoch", uint64(p.epoch)).
			Interface("missing", cfg.Missing()).
			Msg("configuration incomplete, preview idle")
		p.state = models.IdleState()
		return models.PreviewTicket{}, false
	}

	p.state = models.PendingState()
	return models.PreviewTicket{Epoch: p.epoch, Config: cfg}, true
}

// Fetch implements [PreviewSynchronizer].
func (p *previewSynchronizer) Fetch(ctx context.Context, ticket models.PreviewTicket) models.PreviewOutcome {
	outcome := models.PreviewOutcome{Epoch: ticket.Epoch, Config: ticket.Config}

	p.mu.Lock()
	if ticket.Epoch != p.epoch {
		p.mu.Unlock()
		outcome.Err = ErrStaleTicket
		return outcome
	}
	ctx, cancel := context.WithCancel(ctx)
	p.inflight = cancel
	p.inflightEpoch = ticket.Epoch
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		if p.inflightEpoch == ticket.Epoch {
			p.inflight = nil
		}
		p.mu.Unlock()
		cancel()
	}()

	outcome.Result, outcome.Err = p.adapter.PreviewFor(ctx, ticket.Config)
	return outcome
}

// Reconcile implements [PreviewSynchronizer].
func (p *previewSynchronizer) Reconcile(outcome models.PreviewOutcome) (models.SyncState, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if outcome.Epoch != p.epoch {
		p.logger.Debug().
			Uint64("epoch", uint64(outcome.Epoch)).
			Uint64("current_epoch", uint64(p.epoch)).
			Msg("discarding stale preview response")
		return p.state, false
	}

	var next models.SyncState
	if outcome.Err != nil {
		msg := PreviewErrorMessage(outcome.Err)
		p.logger.Info().
			Err(outcome.Err).
			Uint64("epoch", uint64(outcome.Epoch)).
			Str("message", msg).
			Msg("preview rejected")
		next = models.RejectedState(msg)
	} else {
		next = models.PreviewState(outcome.Result)
	}

	p.state = next
	return next, true
}

// State implements [PreviewSynchronizer].
func (p *previewSynchronizer) State() models.SyncState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// IsCurrent implements [PreviewSynchronizer].
func (p *previewSynchronizer) IsCurrent(epoch models.Epoch) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return epoch == p.epoch
}

// Debounce implements [PreviewSynchronizer].
func (p *previewSynchronizer) Debounce() time.Duration {
	return p.debounce
}

// Close implements [PreviewSynchronizer].
func (p *previewSynchronizer) Close() {
	p.mu.Lock()
	p.cancelInflightLocked()
	p.epoch++
	p.mu.Unlock()
}

func (p *previewSynchronizer) cancelInflightLocked() {
	if p.inflight != nil {
		p.inflight()
		p.inflight = nil
	}
}
