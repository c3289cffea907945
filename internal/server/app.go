// Package server wires configuration, storage, services and transports
// together and runs them until the process is signalled.
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

	"github.com/dmitrijs2005/staffql/internal/logging"
	"github.com/dmitrijs2005/staffql/internal/server/config"
	gql "github.com/dmitrijs2005/staffql/internal/server/graphql"
	"github.com/dmitrijs2005/staffql/internal/server/httpapi"
	"github.com/dmitrijs2005/staffql/internal/server/metrics"
	"github.com/dmitrijs2005/staffql/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/staffql/internal/server/services"
	"github.com/dmitrijs2005/staffql/internal/server/upload"
	graphql "github.com/graph-gophers/graphql-go"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	gs "github.com/dmitrijs2005/staffql/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	registry *prometheus.Registry
	schema   *graphql.Schema
	accounts *services.AccountService
}

// openDB is a seam for tests.
var openDB = func(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func NewApp(ctx context.Context, c *config.Config, sl *slog.Logger) (*App, error) {

	logger := logging.NewSlogLogger(sl)

	db, err := openDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	mt := metrics.NewMetrics(reg)

	rm := repomanager.NewPostgresRepositoryManager(mt)
	if err := rm.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	uploader, err := newUploader(ctx, c)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("uploader init error: %w", err)
	}
	if uploader == nil {
		logger.Warn(ctx, "S3 bucket not configured, employee photos are disabled")
	}

	as := services.NewAccountService(db, rm, c, logger, mt)
	es := services.NewEmployeeService(db, rm, uploader, logger, mt)

	schema, err := gql.NewSchema(as, es)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("schema error: %w", err)
	}

	return &App{config: c, logger: logger, db: db, registry: reg, schema: schema, accounts: as}, nil
}

// newUploader returns a nil interface when uploads are disabled.
func newUploader(ctx context.Context, c *config.Config) (upload.Uploader, error) {
	u, err := upload.NewS3Uploader(ctx, c)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return u, nil
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.schema, app.registry, app.accounts)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "http server failed", logging.Err(err))
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.db, gs.DefaultPingInterval, app.accounts)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "grpc server failed", logging.Err(err))
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a signal arrives or a server fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close failed", logging.Err(err))
	}

	app.logger.Info(ctx, "App stopped")
}
