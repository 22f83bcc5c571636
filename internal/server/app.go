// Package server wires configuration, storage, services and the gRPC
// endpoint of the tenantline messaging backend.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/tenantline/internal/logging"
	"github.com/dmitrijs2005/tenantline/internal/server/config"
	gs "github.com/dmitrijs2005/tenantline/internal/server/grpc"
	"github.com/dmitrijs2005/tenantline/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tenantline/internal/server/services"
)

type App struct {
	config           *config.Config
	logger           logging.Logger
	db               *sql.DB
	userService      *services.UserService
	messagingService *services.MessagingService
}

// NewApp connects to PostgreSQL, applies migrations and builds the services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(c.LogLevel))

	db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	us, err := services.NewUserService(db, rm, c)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	ms := services.NewMessagingService(db, rm)

	return &App{config: c, logger: logger, db: db, userService: us, messagingService: ms}, nil
}

// Run serves gRPC until ctx is cancelled and then closes the database.
func (app *App) Run(ctx context.Context) error {
	app.logger.Info(ctx, "Starting app...", "default_plan", app.config.DefaultPlan)
	defer func() {
		if err := app.db.Close(); err != nil {
			app.logger.Error(context.Background(), "closing database", "error", err)
		}
	}()

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.messagingService, app.config.SecretKey)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "gRPC server stopped", "error", err)
		return err
	}
	app.logger.Info(context.Background(), "app stopped")
	return nil
}
