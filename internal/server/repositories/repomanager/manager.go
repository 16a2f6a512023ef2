// Package repomanager vends repository implementations and the schema
// migration hook behind a single interface, so services can stay ignorant
// of the concrete store.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/policia-dp/delegacia-api/internal/dbx"
	"github.com/policia-dp/delegacia-api/internal/server/repositories/agents"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Agents(db dbx.DBTX) agents.Repository
}
