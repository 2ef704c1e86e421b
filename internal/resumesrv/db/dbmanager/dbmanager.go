package dbmanager

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog/log"
)

// PooledDb hands out per-request connections from the underlying pool.
type PooledDb interface {
	// Conn returns a new connection to the database.
	Conn(ctx context.Context) (PooledConn, error)
	// Stats returns the number of connection requests and returns.
	Stats() (requests, returns uint64)
}

// PooledConn is the exclusive unit-of-work handle for a single request.
// It must be closed when the request ends; it is never shared.
type PooledConn interface {
	// Conn returns the underlying connection.
	Conn() *sql.Conn
	// Close returns the connection back to the pool.
	Close(ctx context.Context)
}

func NewPooledDb(ctx context.Context, dbtype string) PooledDb {
	switch dbtype {
	case "postgresql":
		db, err := NewPostgresqlDb(ctx)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("Failed to create PostgreSQL DB")
			return nil
		}
		return db
	}
	return nil
}
