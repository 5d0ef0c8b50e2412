// Package server initializes and runs the booking application: it wires
// configuration, the persistence layer, the domain services, and the HTTP
// API, and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/tutorbook/internal/logging"
	"github.com/dmitrijs2005/tutorbook/internal/server/config"
	"github.com/dmitrijs2005/tutorbook/internal/server/httpapi"
	"github.com/dmitrijs2005/tutorbook/internal/server/sessions"
	"github.com/dmitrijs2005/tutorbook/internal/server/shared/db"
	"github.com/dmitrijs2005/tutorbook/internal/server/users"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	repos          db.RepositoryManager
	userService    *users.Service
	sessionService *sessions.Service
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	m, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(m.Users())
	ss := sessions.NewService(m.Sessions(), m.Users())

	return &App{config: c, logger: logger, repos: m, userService: us, sessionService: ss}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	srv := httpapi.NewServer(app.config.EndpointAddrHTTP, app.config.ShutdownTimeout,
		app.logger, app.userService, app.sessionService)

	if err := srv.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
