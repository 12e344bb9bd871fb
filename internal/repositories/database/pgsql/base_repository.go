package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories.
// The report pipeline is read-only, so no transaction helpers live here;
// read consistency is the database's responsibility.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
