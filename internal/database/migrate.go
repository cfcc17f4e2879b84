package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema contains the DDL statements for all application tables. Statements
// are idempotent, so running them at every startup is safe.
//
//go:embed schema.sql
var schema string

// Migrate applies the embedded schema to the database.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
