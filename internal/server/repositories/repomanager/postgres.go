// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/snipvault/snipvault/internal/dbx"
	"github.com/snipvault/snipvault/internal/server/migrations"
	"github.com/snipvault/snipvault/internal/server/repositories/devicekeys"
	"github.com/snipvault/snipvault/internal/server/repositories/handshakes"
	"github.com/snipvault/snipvault/internal/server/repositories/snippets"
	"github.com/snipvault/snipvault/internal/server/repositories/teams"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// DeviceKeys returns a devicekeys.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) DeviceKeys(db dbx.DBTX) devicekeys.Repository {
	return devicekeys.NewPostgresRepository(db)
}

// Handshakes returns a handshakes.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Handshakes(db dbx.DBTX) handshakes.Repository {
	return handshakes.NewPostgresRepository(db)
}

// Teams returns a teams.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Teams(db dbx.DBTX) teams.Repository {
	return teams.NewPostgresRepository(db)
}

// Snippets returns a snippets.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Snippets(db dbx.DBTX) snippets.Repository {
	return snippets.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
