// Package store provides focused, single-concern data access stores for
// the inventory database.
//
// Each store owns one domain (items, categories, changes, dashboard) and
// embeds shared helpers (Pool, logger) via the Base struct. Stores never
// call each other; composition happens in the service layer.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/electromart/inventory/internal/dbpool"
	"github.com/sirupsen/logrus"
)

const defaultQueryTimeout = 30 * time.Second

// Base contains shared dependencies for all stores.
// Embed this in each store struct.
type Base struct {
	Pool *dbpool.Pool
	Log  *logrus.Logger
}

// withTimeout creates a context with the default query timeout.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultQueryTimeout)
}

// PostgreSQL SQLSTATE codes the stores translate into sentinel errors.
const (
	sqlstateUniqueViolation     = "23505"
	sqlstateForeignKeyViolation = "23503"
)

// sqlState extracts the SQLSTATE code from a pgx error, or "" for
// non-PostgreSQL errors.
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
