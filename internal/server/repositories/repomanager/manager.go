// Package repomanager vends repositories bound to a dbx.DBTX, so services
// can run the same repository code against *sql.DB or inside a transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/tenantline/internal/dbx"
	"github.com/dmitrijs2005/tenantline/internal/server/repositories/conversations"
	"github.com/dmitrijs2005/tenantline/internal/server/repositories/messages"
	"github.com/dmitrijs2005/tenantline/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/tenantline/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Conversations(db dbx.DBTX) conversations.Repository
	Messages(db dbx.DBTX) messages.Repository
}
