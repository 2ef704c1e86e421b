// Package postgresql implements the resume store against PostgreSQL.
//
// Every exported method owns its transaction: it begins one, runs a single
// query helper (the *WithTransaction functions), and commits on success or
// rolls back on any failure. Exactly one of commit/rollback executes per
// invocation and the *sql.Tx never leaves this package.
package postgresql

import (
	"context"
	"database/sql"

	"github.com/resumeworks/resumesrv/internal/resumesrv/db/dbmanager"
)

// ResumeDb serves all resume domains over a single pooled connection. The
// connection is exclusively owned by one request and returned on Close.
type ResumeDb struct {
	c dbmanager.PooledConn
}

func NewResumeDb(c dbmanager.PooledConn) *ResumeDb {
	return &ResumeDb{c: c}
}

func (rm *ResumeDb) conn() *sql.Conn {
	return rm.c.Conn()
}

// Close returns the underlying connection to the pool.
func (rm *ResumeDb) Close(ctx context.Context) {
	rm.c.Close(ctx)
}
