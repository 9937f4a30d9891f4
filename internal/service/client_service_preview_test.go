// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-augmd/internal/adapter"
	"github.com/MKhiriev/go-augmd/internal/logger"
	"github.com/MKhiriev/go-augmd/internal/mock"
	"github.com/MKhiriev/go-augmd/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	scenarioCfg = models.NewConfiguration(100, 20, 5, 4, 5)
	otherCfg    = models.NewConfiguration(10, 6, 2, 3, 2)
)

func samplePreview(rows, cols int) models.PreviewResult {
	r := make(models.PreviewResult, rows)
	n := 1
	for i := range r {
		r[i] = make([]models.PreviewItem, cols)
		for j := range r[i] {
			r[i][j] = models.ItemID(n)
			n++
		}
	}
	return r
}

func newTestSynchronizer(t *testing.T, debounce time.Duration) (*previewSynchronizer, *mock.MockDesignServiceAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockDesignServiceAdapter(ctrl)
	s := NewPreviewSynchronizer(mockAdapter, debounce, logger.Nop()).(*previewSynchronizer)
	t.Cleanup(s.Close)
	return s, mockAdapter
}

// ── Observe ─────────────────────────────────────────────────────────────────

func TestPreviewSynchronizer_StartsIdle(t *testing.T) {
	s, _ := newTestSynchronizer(t, 0)
	assert.Equal(t, models.SyncIdle, s.State().Status())
}

func TestPreviewSynchronizer_IncompleteConfigIssuesNoRequest(t *testing.T) {
	s, mockAdapter := newTestSynchronizer(t, 0)
	mockAdapter.EXPECT().PreviewFor(gomock.Any(), gomock.Any()).Times(0)

	for _, f := range models.Fields {
		_, ok := s.Observe(scenarioCfg.Without(f))
		assert.False(t, ok, "missing %s must not issue a request", f)
		assert.Equal(t, models.SyncIdle, s.State().Status())
	}

	_, ok := s.Observe(models.Configuration{})
	assert.False(t, ok)
	assert.Equal(t, models.SyncIdle, s.State().Status())
}

func TestPreviewSynchronizer_CompleteConfigGoesPending(t *testing.T) {
	s, _ := newTestSynchronizer(t, 0)

	t1, ok := s.Observe(scenarioCfg)
	require.True(t, ok)
	t2, ok := s.Observe(scenarioCfg)
	require.True(t, ok)

	assert.Equal(t, models.SyncPending, s.State().Status())
	assert.Equal(t, scenarioCfg, t1.Config)
	assert.Greater(t, t2.Epoch, t1.Epoch)
	assert.True(t, s.IsCurrent(t2.Epoch))
	assert.False(t, s.IsCurrent(t1.Epoch))
}

// ── Reconcile ───────────────────────────────────────────────────────────────

func TestPreviewSynchronizer_PreviewAccepted(t *testing.T) {
	s, mockAdapter := newTestSynchronizer(t, 0)
	preview := samplePreview(5, 4)
	mockAdapter.EXPECT().PreviewFor(gomock.Any(), scenarioCfg).Return(preview, nil)

	ticket, ok := s.Observe(scenarioCfg)
	require.True(t, ok)

	state, accepted := s.Reconcile(s.Fetch(context.Background(), ticket))

	require.True(t, accepted)
	got, ok := state.Preview()
	require.True(t, ok)
	rows, cols := got.Shape()
	assert.Equal(t, 5, rows)
	assert.Equal(t, 4, cols)
	assert.Equal(t, preview, got, "preview must pass through unmodified")
}

func TestPreviewSynchronizer_LatestWinsUnderReordering(t *testing.T) {
	s, mockAdapter := newTestSynchronizer(t, 0)
	p1, p2 := samplePreview(5, 4), samplePreview(2, 3)
	mockAdapter.EXPECT().PreviewFor(gomock.Any(), scenarioCfg).Return(p1, nil)
	mockAdapter.EXPECT().PreviewFor(gomock.Any(), otherCfg).Return(p2, nil)

	t1, _ := s.Observe(scenarioCfg)
	// t1 is fetched before t2 is issued but its response lands last
	o1 := models.PreviewOutcome{Epoch: t1.Epoch, Config: t1.Config}
	o1.Result, o1.Err = mockAdapter.PreviewFor(context.Background(), t1.Config)

	t2, _ := s.Observe(otherCfg)
	o2 := s.Fetch(context.Background(), t2)

	_, accepted := s.Reconcile(o2)
	require.True(t, accepted)

	state, accepted := s.Reconcile(o1)
	assert.False(t, accepted)

	got, ok := state.Preview()
	require.True(t, ok)
	assert.Equal(t, p2, got)
	got, _ = s.State().Preview()
	assert.Equal(t, p2, got)
}

func TestPreviewSynchronizer_RejectionSurfacedVerbatim(t *testing.T) {
	s, mockAdapter := newTestSynchronizer(t, 0)
	gomock.InOrder(
		mockAdapter.EXPECT().PreviewFor(gomock.Any(), scenarioCfg).Return(samplePreview(5, 4), nil),
		mockAdapter.EXPECT().PreviewFor(gomock.Any(), otherCfg).Return(nil, &adapter.RejectionError{Message: "X"}),
	)

	t1, _ := s.Observe(scenarioCfg)
	s.Reconcile(s.Fetch(context.Background(), t1))
	require.Equal(t, models.SyncPreview, s.State().Status())

	t2, _ := s.Observe(otherCfg)
	state, accepted := s.Reconcile(s.Fetch(context.Background(), t2))

	require.True(t, accepted)
	msg, ok := state.Message()
	require.True(t, ok)
	assert.Equal(t, "X", msg)
	_, hasPreview := state.Preview()
	assert.False(t, hasPreview, "prior preview must be cleared")
}

func TestPreviewSynchronizer_TransportFailureIsGenericRejection(t *testing.T) {
	s, mockAdapter := newTestSynchronizer(t, 0)
	mockAdapter.EXPECT().PreviewFor(gomock.Any(), scenarioCfg).
		Return(nil, errors.New(`Post "http://localhost:8080/api/get_version_preview": dial tcp 127.0.0.1:8080: connect: connection refused`))

	ticket, _ := s.Observe(scenarioCfg)
	state, _ := s.Reconcile(s.Fetch(context.Background(), ticket))

	msg, ok := state.Message()
	require.True(t, ok)
	assert.Equal(t, MsgServerUnavailable, msg)
}

func TestPreviewSynchronizer_IncompleteBeforeResponseStaysIdle(t *testing.T) {
	s, mockAdapter := newTestSynchronizer(t, 0)
	mockAdapter.EXPECT().PreviewFor(gomock.Any(), scenarioCfg).Return(samplePreview(5, 4), nil)

	ticket, _ := s.Observe(scenarioCfg)
	outcome := models.PreviewOutcome{Epoch: ticket.Epoch, Config: ticket.Config}
	outcome.Result, outcome.Err = mockAdapter.PreviewFor(context.Background(), ticket.Config)

	// the user clears "screens" before the response arrives
	s.Observe(scenarioCfg.Without(models.FieldScreens))

	_, accepted := s.Reconcile(outcome)
	assert.False(t, accepted)
	assert.Equal(t, models.SyncIdle, s.State().Status())
}

// ── Fetch ───────────────────────────────────────────────────────────────────

func TestPreviewSynchronizer_FetchSkipsSupersededTicket(t *testing.T) {
	s, mockAdapter := newTestSynchronizer(t, 0)
	mockAdapter.EXPECT().PreviewFor(gomock.Any(), gomock.Any()).Times(0)

	old, _ := s.Observe(scenarioCfg)
	s.Observe(otherCfg)

	outcome := s.Fetch(context.Background(), old)
	assert.ErrorIs(t, outcome.Err, ErrStaleTicket)
}

func TestPreviewSynchronizer_ObserveCancelsInflightRequest(t *testing.T) {
	s, mockAdapter := newTestSynchronizer(t, 0)

	started := make(chan struct{})
	mockAdapter.EXPECT().PreviewFor(gomock.Any(), scenarioCfg).
		DoAndReturn(func(ctx context.Context, _ models.Configuration) (models.PreviewResult, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		})

	ticket, _ := s.Observe(scenarioCfg)
	done := make(chan models.PreviewOutcome)
	go func() { done <- s.Fetch(context.Background(), ticket) }()

	<-started
	s.Observe(scenarioCfg.Without(models.FieldVersions))

	select {
	case outcome := <-done:
		assert.ErrorIs(t, outcome.Err, context.Canceled)
		_, accepted := s.Reconcile(outcome)
		assert.False(t, accepted)
	case <-time.After(2 * time.Second):
		t.Fatal("in-flight request was not canceled")
	}
}

// ── Close & concurrency ─────────────────────────────────────────────────────

func TestPreviewSynchronizer_CloseAbandonsInflightRequest(t *testing.T) {
	s, mockAdapter := newTestSynchronizer(t, 0)

	started := make(chan struct{})
	mockAdapter.EXPECT().PreviewFor(gomock.Any(), scenarioCfg).
		DoAndReturn(func(ctx context.Context, _ models.Configuration) (models.PreviewResult, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		})

	ticket, ok := s.Observe(scenarioCfg)
	require.True(t, ok)

	done := make(chan models.PreviewOutcome, 1)
	go func() { done <- s.Fetch(context.Background(), ticket) }()

	<-started
	s.Close()

	select {
	case outcome := <-done:
		assert.ErrorIs(t, outcome.Err, context.Canceled)
		_, accepted := s.Reconcile(outcome)
		assert.False(t, accepted)
		assert.False(t, s.IsCurrent(ticket.Epoch))
	case <-time.After(2 * time.Second):
		t.Fatal("in-flight request was not cancelled by Close")
	}
}

func TestPreviewSynchronizer_Debounce(t *testing.T) {
	s, _ := newTestSynchronizer(t, 30*time.Millisecond)
	assert.Equal(t, 30*time.Millisecond, s.Debounce())

	negative := NewPreviewSynchronizer(nil, -time.Second, logger.Nop())
	assert.Zero(t, negative.Debounce())
}

func TestPreviewSynchronizer_ConcurrentReconcileKeepsLatest(t *testing.T) {
	s, _ := newTestSynchronizer(t, 0)

	var tickets []models.PreviewTicket
	for range 50 {
		ticket, _ := s.Observe(scenarioCfg)
		tickets = append(tickets, ticket)
	}
	latest := tickets[len(tickets)-1]

	var wg sync.WaitGroup
	for _, ticket := range tickets {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Reconcile(models.PreviewOutcome{Epoch: ticket.Epoch, Result: samplePreview(1, int(ticket.Epoch))})
		}()
	}
	wg.Wait()

	got, ok := s.State().Preview()
	require.True(t, ok)
	_, cols := got.Shape()
	assert.Equal(t, int(latest.Epoch), cols)
}
