package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bursarhq/bursar/internal/academics"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectTermColumns = `
	t.id, t.name, t.academic_year_id, t.start_date, t.end_date, t.created_at, t.updated_at
`

func scanTerm(s scanner) (*academics.Term, error) {
	var term academics.Term

	if err := s.Scan(
		&term.ID, &term.Name, &term.AcademicYearID,
		&term.StartDate, &term.EndDate,
		&term.CreatedAt, &term.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &term, nil
}

func scanAcademicYear(s scanner) (*academics.AcademicYear, error) {
	var year academics.AcademicYear

	if err := s.Scan(
		&year.ID, &year.Name,
		&year.StartDate, &year.EndDate,
		&year.CreatedAt, &year.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &year, nil
}

func (s *Store) GetTerm(ctx context.Context, id uuid.UUID) (*academics.Term, error) {
	query := `SELECT ` + selectTermColumns + ` FROM terms t WHERE t.id = $1`

	term, err := scanTerm(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, academics.ErrNotFound
		}

		return nil, fmt.Errorf("getting term: %w", err)
	}

	return term, nil
}

func (s *Store) TermContaining(ctx context.Context, date time.Time) (*academics.Term, error) {
	query := `SELECT ` + selectTermColumns + `
		FROM terms t
		WHERE t.start_date <= $1 AND t.end_date >= $1
		ORDER BY t.start_date ASC
		LIMIT 1`

	term, err := scanTerm(s.db.QueryRowContext(ctx, query, date))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, academics.ErrNotFound
		}

		return nil, fmt.Errorf("finding term containing date: %w", err)
	}

	return term, nil
}

func (s *Store) FirstTermStartingAfter(ctx context.Context, academicYearID uuid.UUID, after time.Time) (*academics.Term, error) {
	query := `SELECT ` + selectTermColumns + `
		FROM terms t
		WHERE t.academic_year_id = $1 AND t.start_date > $2
		ORDER BY t.start_date ASC
		LIMIT 1`

	term, err := scanTerm(s.db.QueryRowContext(ctx, query, academicYearID, after))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, academics.ErrNotFound
		}

		return nil, fmt.Errorf("finding first term after date: %w", err)
	}

	return term, nil
}

func (s *Store) LastTermEndingBefore(ctx context.Context, academicYearID uuid.UUID, before time.Time) (*academics.Term, error) {
	query := `SELECT ` + selectTermColumns + `
		FROM terms t
		WHERE t.academic_year_id = $1 AND t.end_date < $2
		ORDER BY t.end_date DESC
		LIMIT 1`

	term, err := scanTerm(s.db.QueryRowContext(ctx, query, academicYearID, before))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, academics.ErrNotFound
		}

		return nil, fmt.Errorf("finding last term before date: %w", err)
	}

	return term, nil
}

func (s *Store) FirstTermStartingOnOrAfter(ctx context.Context, date time.Time) (*academics.Term, error) {
	query := `SELECT ` + selectTermColumns + `
		FROM terms t
		WHERE t.start_date >= $1
		ORDER BY t.start_date ASC
		LIMIT 1`

	term, err := scanTerm(s.db.QueryRowContext(ctx, query, date))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, academics.ErrNotFound
		}

		return nil, fmt.Errorf("finding first future term: %w", err)
	}

	return term, nil
}

const selectAcademicYearColumns = `
	y.id, y.name, y.start_date, y.end_date, y.created_at, y.updated_at
`

func (s *Store) GetAcademicYear(ctx context.Context, id uuid.UUID) (*academics.AcademicYear, error) {
	query := `SELECT ` + selectAcademicYearColumns + ` FROM academic_years y WHERE y.id = $1`

	year, err := scanAcademicYear(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, academics.ErrNotFound
		}

		return nil, fmt.Errorf("getting academic year: %w", err)
	}

	return year, nil
}

func (s *Store) NextAcademicYear(ctx context.Context, after time.Time) (*academics.AcademicYear, error) {
	query := `SELECT ` + selectAcademicYearColumns + `
		FROM academic_years y
		WHERE y.start_date > $1
		ORDER BY y.start_date ASC
		LIMIT 1`

	year, err := scanAcademicYear(s.db.QueryRowContext(ctx, query, after))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, academics.ErrNotFound
		}

		return nil, fmt.Errorf("finding next academic year: %w", err)
	}

	return year, nil
}

func (s *Store) PreviousAcademicYear(ctx context.Context, before time.Time) (*academics.AcademicYear, error) {
	query := `SELECT ` + selectAcademicYearColumns + `
		FROM academic_years y
		WHERE y.end_date < $1
		ORDER BY y.end_date DESC
		LIMIT 1`

	year, err := scanAcademicYear(s.db.QueryRowContext(ctx, query, before))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, academics.ErrNotFound
		}

		return nil, fmt.Errorf("finding previous academic year: %w", err)
	}

	return year, nil
}
