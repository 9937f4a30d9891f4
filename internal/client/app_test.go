// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-augmd/internal/config"
	"github.com/MKhiriev/go-augmd/internal/logger"
	"github.com/MKhiriev/go-augmd/internal/mock"
	"github.com/MKhiriev/go-augmd/internal/service"
	"github.com/MKhiriev/go-augmd/internal/store"
	"github.com/MKhiriev/go-augmd/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	err    error
	called bool
	run    func(ctx context.Context)
}

func (f *fakeUI) Run(ctx context.Context) error {
	f.called = true
	if f.run != nil {
		f.run(ctx)
	}
	return f.err
}

func newTestServices(t *testing.T) *service.ClientServices {
	t.Helper()
	ctrl := gomock.NewController(t)
	return service.NewClientServices(
		&store.ClientStorages{Downloads: mock.NewMockArtifactStorage(ctrl)},
		mock.NewMockDesignServiceAdapter(ctrl),
		config.ClientSettings{},
		logger.Nop(),
	)
}

func TestApp_RunDelegatesToUI(t *testing.T) {
	ui := &fakeUI{}
	app := NewAppWith(newTestServices(t), ui, logger.Nop())

	require.NoError(t, app.run(context.Background()))
	assert.True(t, ui.called)
}

func TestApp_RunWrapsUIError(t *testing.T) {
	uiErr := errors.New("no tty")
	app := NewAppWith(newTestServices(t), &fakeUI{err: uiErr}, logger.Nop())

	err := app.run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, uiErr)
}

func TestApp_RunAbandonsOutstandingPreview(t *testing.T) {
	services := newTestServices(t)
	ticket, ok := services.PreviewSynchronizer.Observe(models.NewConfiguration(100, 20, 5, 4, 5))
	require.True(t, ok)

	app := NewAppWith(services, &fakeUI{}, logger.Nop())
	require.NoError(t, app.run(context.Background()))

	assert.False(t, services.PreviewSynchronizer.IsCurrent(ticket.Epoch))
}

func TestApp_ImplementsClient(t *testing.T) {
	var _ Client = (*App)(nil)
}
