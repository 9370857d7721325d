package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	_ "github.com/lib/pq"
)

// Connect opens the archive database with otel instrumentation and verifies
// the connection.
func Connect(ctx context.Context, dbURL string) (*sqlx.DB, error) {
	db, err := otelsqlx.ConnectContext(ctx, "postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("connect archive db: %w", err)
	}
	return db, nil
}
