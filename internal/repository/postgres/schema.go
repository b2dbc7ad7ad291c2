package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the user_profiles table when it does not exist yet.
// Run once at startup, before any repository is used.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	schema := `
		CREATE TABLE IF NOT EXISTS user_profiles (
			email               TEXT PRIMARY KEY,
			name                TEXT NOT NULL DEFAULT '',
			preferred_locations TEXT[] NOT NULL DEFAULT '{}',
			expected_salary_min INTEGER NOT NULL DEFAULT 0,
			expected_salary_max INTEGER NOT NULL DEFAULT 0,
			experience_years    INTEGER NOT NULL DEFAULT 0,
			"current_role"      TEXT NOT NULL DEFAULT '',
			primary_skills      TEXT[] NOT NULL DEFAULT '{}',
			is_active           BOOLEAN NOT NULL DEFAULT TRUE,
			created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`

	_, err := db.Exec(ctx, schema)
	return err
}
