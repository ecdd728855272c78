// Package server initializes and runs the Cat Curious application server.
// It opens the database, applies migrations, wires the services and the
// external API clients, and runs the HTTP endpoint with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/catcurious/catcurious/internal/logging"
	"github.com/catcurious/catcurious/internal/server/catapi"
	"github.com/catcurious/catcurious/internal/server/config"
	"github.com/catcurious/catcurious/internal/server/httpapi"
	"github.com/catcurious/catcurious/internal/server/repositories/repomanager"
	"github.com/catcurious/catcurious/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	userService *services.UserService
	catService  *services.CatService
}

// NewApp builds the application from config: database handle, migrations,
// repositories, external API clients, and services.
func NewApp(c *config.Config) (*App, error) {
	l := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(l)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	breedInfo := catapi.NewClient(c.CatAPIBaseURL, c.CatAPIKey, c.RequestTimeout, logger)
	facts := catapi.NewFactsClient(c.CatFactsBaseURL, c.RequestTimeout, logger)

	us := services.NewUserService(db, m)
	cs := services.NewCatService(db, m, breedInfo, facts)

	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		repomanager: m,
		userService: us,
		catService:  cs,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(
		app.config.EndpointAddrHTTP,
		app.userService,
		app.catService,
		app.db.PingContext,
		func(ctx context.Context) error { return app.repomanager.RunMigrations(ctx, app.db) },
		app.logger,
	)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run starts the app and blocks until a termination signal arrives or the
// HTTP server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "starting app")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "closing db", "error", err)
	}
}
