package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bursarhq/bursar/internal/feestructure"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectColumns = `
	f.id, f.grade_id, f.term_id, f.academic_year_id,
	f.basic_fee, f.additional_charges, f.total_fee, f.is_active,
	f.created_at, f.updated_at
`

func scanFeeStructure(s scanner) (*feestructure.FeeStructure, error) {
	var fs feestructure.FeeStructure

	var charges []byte

	if err := s.Scan(
		&fs.ID, &fs.GradeID, &fs.TermID, &fs.AcademicYearID,
		&fs.BasicFee, &charges, &fs.TotalFee, &fs.IsActive,
		&fs.CreatedAt, &fs.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if len(charges) > 0 {
		if err := json.Unmarshal(charges, &fs.AdditionalCharges); err != nil {
			return nil, fmt.Errorf("decoding additional charges: %w", err)
		}
	}

	return &fs, nil
}

func (s *Store) CreateFeeStructure(ctx context.Context, fs *feestructure.FeeStructure) error {
	charges, err := json.Marshal(fs.AdditionalCharges)
	if err != nil {
		return fmt.Errorf("encoding additional charges: %w", err)
	}

	query := `
		INSERT INTO fee_structures (grade_id, term_id, academic_year_id, basic_fee, additional_charges, total_fee, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = s.db.QueryRowContext(ctx, query,
		fs.GradeID,
		fs.TermID,
		fs.AcademicYearID,
		fs.BasicFee,
		charges,
		fs.TotalFee,
		fs.IsActive,
	).Scan(&fs.ID, &fs.CreatedAt, &fs.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return feestructure.ErrDuplicate
		}

		return fmt.Errorf("creating fee structure: %w", err)
	}

	return nil
}

func (s *Store) GetFeeStructure(ctx context.Context, id uuid.UUID) (*feestructure.FeeStructure, error) {
	query := `SELECT ` + selectColumns + ` FROM fee_structures f WHERE f.id = $1`

	fs, err := scanFeeStructure(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, feestructure.ErrNotFound
		}

		return nil, fmt.Errorf("getting fee structure: %w", err)
	}

	return fs, nil
}

func (s *Store) UpdateFeeStructure(ctx context.Context, fs *feestructure.FeeStructure) error {
	charges, err := json.Marshal(fs.AdditionalCharges)
	if err != nil {
		return fmt.Errorf("encoding additional charges: %w", err)
	}

	query := `
		UPDATE fee_structures
		SET basic_fee = $1, additional_charges = $2, total_fee = $3, is_active = $4, updated_at = NOW()
		WHERE id = $5
	`

	if _, err := s.db.ExecContext(ctx, query,
		fs.BasicFee,
		charges,
		fs.TotalFee,
		fs.IsActive,
		fs.ID,
	); err != nil {
		return fmt.Errorf("updating fee structure: %w", err)
	}

	return nil
}

func (s *Store) ActiveFeeStructure(ctx context.Context, gradeID, termID, academicYearID uuid.UUID) (*feestructure.FeeStructure, error) {
	query := `SELECT ` + selectColumns + `
		FROM fee_structures f
		WHERE f.grade_id = $1 AND f.term_id = $2 AND f.academic_year_id = $3 AND f.is_active
		LIMIT 1`

	fs, err := scanFeeStructure(s.db.QueryRowContext(ctx, query, gradeID, termID, academicYearID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, feestructure.ErrNotFound
		}

		return nil, fmt.Errorf("finding active fee structure: %w", err)
	}

	return fs, nil
}

func (s *Store) ListFeeStructures(ctx context.Context, filter feestructure.ListFilter) ([]*feestructure.FeeStructure, error) {
	query := `SELECT ` + selectColumns + ` FROM fee_structures f WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.GradeID != nil {
		query += fmt.Sprintf(" AND f.grade_id = $%d", argIdx)

		args = append(args, *filter.GradeID)
		argIdx++
	}

	if filter.TermID != nil {
		query += fmt.Sprintf(" AND f.term_id = $%d", argIdx)

		args = append(args, *filter.TermID)
		argIdx++
	}

	if filter.AcademicYearID != nil {
		query += fmt.Sprintf(" AND f.academic_year_id = $%d", argIdx)

		args = append(args, *filter.AcademicYearID)
		argIdx++
	}

	if filter.ActiveOnly {
		query += " AND f.is_active"
	}

	query += " ORDER BY f.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing fee structures: %w", err)
	}
	defer rows.Close()

	var out []*feestructure.FeeStructure

	for rows.Next() {
		fs, err := scanFeeStructure(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning fee structure: %w", err)
		}

		out = append(out, fs)
	}

	return out, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
