package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"github.com/lysyi3m/grants-import/app/grants"
)

const (
	insertGrantSQLite = `
		INSERT INTO grants (
			title, body, source_url, organization, deadline,
			eligibility_text, amount, category, processed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	insertGrantPostgres = `
		INSERT INTO grants (
			title, body, source_url, organization, deadline,
			eligibility_text, amount, category, processed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
)

// SQLGrantRepository handles database operations for grants
type SQLGrantRepository struct {
	db *DB
}

// NewSQLGrantRepository creates a new grant repository
func NewSQLGrantRepository(db *DB) *SQLGrantRepository {
	return &SQLGrantRepository{db: db}
}

// InsertGrant stores a single grant as a new row
func (r *SQLGrantRepository) InsertGrant(ctx context.Context, grant grants.Grant) error {
	query := insertGrantPostgres
	var category any = pq.Array(grant.Category)

	if r.db.Driver == DriverSQLite {
		query = insertGrantSQLite
		encoded, err := json.Marshal(grant.Category)
		if err != nil {
			return fmt.Errorf("failed to encode category: %w", err)
		}
		category = string(encoded)
	}

	_, err := r.db.ExecContext(ctx, query,
		grant.Title, grant.Body, grant.SourceURL, grant.Organization, nullString(grant.Deadline),
		nullString(grant.EligibilityText), nullString(grant.Amount), category, grant.ProcessedAt)
	if err != nil {
		return fmt.Errorf("failed to insert grant: %w", err)
	}

	return nil
}

// CountGrants returns the total number of stored grants
func (r *SQLGrantRepository) CountGrants(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM grants").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get grant count: %w", err)
	}
	return count, nil
}

// Close closes the underlying database connection
func (r *SQLGrantRepository) Close() error {
	return r.db.Close()
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}
