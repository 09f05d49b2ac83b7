// Package server initializes and runs the SnipVault server: storage,
// migrations, the broadcast relay, the handshake sweeper and the public
// gRPC endpoint, with signal-driven graceful shutdown.
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

	"github.com/snipvault/snipvault/internal/logging"
	"github.com/snipvault/snipvault/internal/server/broadcast"
	"github.com/snipvault/snipvault/internal/server/config"
	"github.com/snipvault/snipvault/internal/server/repositories/repomanager"
	"github.com/snipvault/snipvault/internal/server/services"

	gs "github.com/snipvault/snipvault/internal/server/grpc"
)

type App struct {
	config           *config.Config
	logger           logging.Logger
	db               *sql.DB
	publisher        *broadcast.RedisPublisher
	deviceKeyService *services.DeviceKeyService
	handshakeService *services.HandshakeService
	teamService      *services.TeamService
	snippetService   *services.SnippetService
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	publisher := broadcast.NewRedisPublisher(c.RedisAddr, c.RedisPassword)
	relay := broadcast.NewRelay(publisher, logger, c.BroadcastTimeout)

	dk := services.NewDeviceKeyService(db, rm)
	hs := services.NewHandshakeService(db, rm, logger)
	tm := services.NewTeamService(db, rm)
	sn := services.NewSnippetService(db, rm, relay, services.S3Settings{
		RootUser:     c.S3RootUser,
		RootPassword: c.S3RootPassword,
		Bucket:       c.S3Bucket,
		Region:       c.S3Region,
		BaseEndpoint: c.S3BaseEndpoint,
	})

	return &App{
		config:           c,
		logger:           logger,
		db:               db,
		publisher:        publisher,
		deviceKeyService: dk,
		handshakeService: hs,
		teamService:      tm,
		snippetService:   sn,
	}, nil
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

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.deviceKeyService, app.handshakeService, app.teamService, app.snippetService,
		app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.handshakeService.RunSweeper(ctx, app.config.HandshakeSweepInterval)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.publisher.Close(); err != nil {
		app.logger.Warn(ctx, "Error closing broadcast publisher", "error", err.Error())
	}
	if err := app.db.Close(); err != nil {
		app.logger.Warn(ctx, "Error closing database", "error", err.Error())
	}
}
