// Package recordstore opens the connection to the remote record store, a
// hosted PostgreSQL instance the client queries directly. Collections are
// exposed through the repository packages underneath.
package recordstore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open connects to the record store. The DSN is a pgx-style PostgreSQL DSN.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("record store open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("record store ping error: %w", err)
	}
	return db, nil
}
