package repomanager

import (
	"context"
	"database/sql"

	"github.com/snipvault/snipvault/internal/dbx"
	"github.com/snipvault/snipvault/internal/server/repositories/devicekeys"
	"github.com/snipvault/snipvault/internal/server/repositories/handshakes"
	"github.com/snipvault/snipvault/internal/server/repositories/snippets"
	"github.com/snipvault/snipvault/internal/server/repositories/teams"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	DeviceKeys(db dbx.DBTX) devicekeys.Repository
	Handshakes(db dbx.DBTX) handshakes.Repository
	Teams(db dbx.DBTX) teams.Repository
	Snippets(db dbx.DBTX) snippets.Repository
}
