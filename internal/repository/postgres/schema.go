package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS categories (
	id   SERIAL PRIMARY KEY,
	type TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS questions (
	id         SERIAL PRIMARY KEY,
	question   TEXT NOT NULL,
	answer     TEXT NOT NULL,
	category   INTEGER,
	difficulty INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS questions_category_idx ON questions (category);
`

// EnsureSchema creates the categories and questions tables when they are
// missing. Existing tables are left untouched.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
