package client

import (
	"context"
	"errors"

	"github.com/akhmetshin/warranty-keeper/internal/logger"
	"github.com/akhmetshin/warranty-keeper/internal/service"
	"github.com/akhmetshin/warranty-keeper/internal/tui"
	"github.com/akhmetshin/warranty-keeper/internal/workers"
)

// App owns the client process lifecycle: background workers run for the
// whole session, the terminal UI decides when the session ends.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workers *workers.Workers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errAppNotConfigured
	}

	return &App{
		services: services,
		tui:      ui,
		workers:  workers,
		logger:   logger,
	}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	if a.workers != nil {
		a.workers.Run()
		defer a.workers.Stop()
	}

	err := a.tui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("client session ended by user")
		return nil
	}

	return err
}
