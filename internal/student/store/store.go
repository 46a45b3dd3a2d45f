package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/bursarhq/bursar/internal/student"
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
	s.id, s.admission_number, s.full_name, s.grade_id, s.enrollment_status, s.created_at
`

func scanStudent(s scanner) (*student.Student, error) {
	var st student.Student

	var status string

	if err := s.Scan(
		&st.ID, &st.AdmissionNumber, &st.FullName, &st.GradeID, &status, &st.CreatedAt,
	); err != nil {
		return nil, err
	}

	st.EnrollmentStatus = student.EnrollmentStatus(status)

	return &st, nil
}

func (s *Store) GetStudent(ctx context.Context, id uuid.UUID) (*student.Student, error) {
	query := `SELECT ` + selectColumns + ` FROM students s WHERE s.id = $1`

	st, err := scanStudent(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, student.ErrNotFound
		}

		return nil, fmt.Errorf("getting student: %w", err)
	}

	return st, nil
}

func (s *Store) FindByAdmissionNumber(ctx context.Context, admissionNumber string) (*student.Student, error) {
	query := `SELECT ` + selectColumns + ` FROM students s WHERE s.admission_number = $1`

	st, err := scanStudent(s.db.QueryRowContext(ctx, query, admissionNumber))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, student.ErrNotFound
		}

		return nil, fmt.Errorf("finding student by admission number: %w", err)
	}

	return st, nil
}

func (s *Store) ListActive(ctx context.Context, gradeID, after *uuid.UUID, limit int) (*student.ListPage, error) {
	query := `SELECT ` + selectColumns + `
		FROM students s
		WHERE s.enrollment_status = 'active'`

	var args []any

	argIdx := 1

	if gradeID != nil {
		query += fmt.Sprintf(" AND s.grade_id = $%d", argIdx)

		args = append(args, *gradeID)
		argIdx++
	}

	if after != nil {
		query += fmt.Sprintf(" AND s.id > $%d", argIdx)

		args = append(args, *after)
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY s.id ASC LIMIT $%d", argIdx)
	args = append(args, limit+1)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing active students: %w", err)
	}
	defer rows.Close()

	var students []*student.Student

	for rows.Next() {
		st, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning student: %w", err)
		}

		students = append(students, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating students: %w", err)
	}

	page := &student.ListPage{}

	if len(students) > limit {
		students = students[:limit]
		last := students[len(students)-1].ID
		page.NextAfter = &last
	}

	page.Students = students

	return page, nil
}
