package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindMatch(ctx context.Context, narrative string) (string, error) {
	// Longest learned pattern wins; ties go to the most recent lesson.
	query := `
		SELECT admission_number
		FROM narrative_mappings
		WHERE $1 ILIKE '%' || raw_pattern || '%'
		ORDER BY LENGTH(raw_pattern) DESC, created_at DESC
		LIMIT 1
	`

	var admissionNumber string

	err := s.db.QueryRowContext(ctx, query, narrative).Scan(&admissionNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", fmt.Errorf("finding narrative match: %w", err)
	}

	return admissionNumber, nil
}

func (s *Store) CreateMapping(ctx context.Context, rawPattern, admissionNumber string) error {
	query := `
		INSERT INTO narrative_mappings (raw_pattern, admission_number, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (raw_pattern) DO UPDATE SET admission_number = EXCLUDED.admission_number
	`

	_, err := s.db.ExecContext(ctx, query, rawPattern, admissionNumber)
	if err != nil {
		return fmt.Errorf("creating narrative mapping: %w", err)
	}

	return nil
}
