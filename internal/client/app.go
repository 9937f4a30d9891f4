// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-augmd/internal/adapter"
	"github.com/MKhiriev/go-augmd/internal/config"
	"github.com/MKhiriev/go-augmd/internal/logger"
	"github.com/MKhiriev/go-augmd/internal/service"
	"github.com/MKhiriev/go-augmd/internal/store"
	"github.com/MKhiriev/go-augmd/internal/tui"
	"github.com/MKhiriev/go-augmd/models"
)

// UI is the interactive front end driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

// App owns the client services and the terminal UI for one process.
type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

// NewApp loads the client configuration and wires storage, transport,
// services and the terminal UI.
func NewApp(buildInfo models.AppBuildInfo) (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("error getting client configs: %w", err)
	}

	log := logger.NewClientLogger("augmd-client", cfg.Client.LogFile)
	log.Debug().Object("config", cfg).Msg("received client configs")

	designAdapter, err := adapter.NewHTTPDesignServiceAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("create design service adapter: %w", err)
	}

	storages := store.NewClientStorages(cfg.Client, log)
	services := service.NewClientServices(storages, designAdapter, cfg.Client, log)

	return NewAppWith(services, tui.New(services, buildInfo, log), log), nil
}

// NewAppWith assembles an App from ready-made parts.
func NewAppWith(services *service.ClientServices, ui UI, logger *logger.Logger) *App {
	return &App{services: services, ui: ui, logger: logger}
}

// Run implements [Client]. It blocks until the UI exits or the process
// receives SIGINT or SIGTERM, then abandons any in-flight preview request.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.services.PreviewSynchronizer.Close()

	a.logger.Info().Msg("client started")
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("terminal UI: %w", err)
	}
	a.logger.Info().Msg("client stopped")
	return nil
}
