// internal/adapters/db/session_factory.go
package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ammerola/buyback-be/internal/core/ports"
)

// Transactor runs a function inside a database transaction
type Transactor interface {
	Transaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// SessionFactory opens one session per transaction
type SessionFactory struct {
	db        Transactor
	cache     ports.CacheRepository
	moduleTTL time.Duration
	logger    *slog.Logger
}

var _ ports.SessionFactory = (*SessionFactory)(nil)

// NewSessionFactory creates a session factory. cache may be nil, in which
// case module lookups always hit the database.
func NewSessionFactory(db Transactor, cache ports.CacheRepository, moduleTTL time.Duration, logger *slog.Logger) *SessionFactory {
	if moduleTTL <= 0 {
		moduleTTL = 5 * time.Minute
	}
	return &SessionFactory{
		db:        db,
		cache:     cache,
		moduleTTL: moduleTTL,
		logger:    logger,
	}
}

// WithSession runs fn in a new transaction and commits when fn succeeds
func (f *SessionFactory) WithSession(ctx context.Context, fn func(ctx context.Context, s ports.Session) error) error {
	return f.db.Transaction(ctx, func(tx pgx.Tx) error {
		return fn(ctx, NewSession(tx, f.cache, f.moduleTTL, f.logger))
	})
}
