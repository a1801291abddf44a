// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal console of the client.
//
// The UI is a [RootModel] router over three pages: the vault form, which
// loads and saves the encrypted server record, the credentials form, and the
// console, which runs a [terminal.Session] and renders its scrollback.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-nas-keeper/internal/adapter"
	"github.com/MKhiriev/go-nas-keeper/internal/config"
	"github.com/MKhiriev/go-nas-keeper/internal/logger"
	"github.com/MKhiriev/go-nas-keeper/internal/service"
	"github.com/MKhiriev/go-nas-keeper/internal/terminal"
	"github.com/MKhiriev/go-nas-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

// RecorderFactory hands out a history recorder per host.
type RecorderFactory interface {
	ForHost(host string) terminal.HistoryRecorder
}

type TUI struct {
	services  *service.ClientServices
	connector adapter.SSHConnector
	recorders RecorderFactory
	shell     config.ClientShell

	logger *logger.Logger
}

func New(services *service.ClientServices, connector adapter.SSHConnector, recorders RecorderFactory, shell config.ClientShell, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		connector: connector,
		recorders: recorders,
		shell:     shell,
		logger:    logger,
	}
}

// Run shows the console until the user quits. Any open shell is shut down
// before Run returns.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRootModel(ctx)

	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()

	result, ok := finalModel.(RootModel)
	if ok {
		result.closeAll()
	}

	if runErr != nil {
		if errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run console: %w", runErr)
	}
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageVault:       NewVaultModel(ctx, t.services.NetConfigService),
		pageCredentials: NewCredentialsModel(ctx, t.connector),
	}
	return NewRootModel(pages, pageVault, t.services.AppInfoService.BuildInfo(), t.consoleFactory(ctx))
}

func (t *TUI) consoleFactory(ctx context.Context) func(models.Credentials) *ConsoleModel {
	return func(creds models.Credentials) *ConsoleModel {
		sink := terminal.NewScrollback(t.shell.ScrollbackSize)

		opts := terminal.Options{
			Target:       creds.ServerPath,
			PollInterval: t.shell.PollInterval,
			ChunkSize:    t.shell.ChunkSize,
			Logger:       t.logger,
		}
		deps := consoleDeps{
			connector: t.connector,
			history:   t.services.HistoryService,
			logger:    t.logger,
		}
		// The history database is plaintext, so commands touch it only
		// when persistence is enabled.
		if t.shell.PersistHistory && t.recorders != nil {
			opts.Recorder = t.recorders.ForHost(creds.ServerPath)
			deps.historyLimit = t.shell.HistoryLimit
		}

		return newConsoleModel(ctx, creds, terminal.NewSession(sink, opts), sink, deps)
	}
}
