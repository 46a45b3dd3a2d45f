package student

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("student: not found")

// EnrollmentStatus tracks whether a student is billable.
type EnrollmentStatus string

const (
	StatusActive      EnrollmentStatus = "active"
	StatusGraduated   EnrollmentStatus = "graduated"
	StatusTransferred EnrollmentStatus = "transferred"
	StatusSuspended   EnrollmentStatus = "suspended"
)

// Student is the slice of the student record the fee core needs. The full
// record lives in the admin panel's domain.
type Student struct {
	ID               uuid.UUID
	AdmissionNumber  string
	FullName         string
	GradeID          uuid.UUID
	EnrollmentStatus EnrollmentStatus
	CreatedAt        time.Time
}

// ListPage is one keyset-paginated batch of active students. Bulk fee
// generation walks pages so the whole student population is never loaded
// at once.
type ListPage struct {
	Students []*Student
	// NextAfter is the cursor for the following page; nil on the last page.
	NextAfter *uuid.UUID
}

//go:generate mockgen -source=student.go -destination=repository_mock.go -package=student
type Repository interface {
	GetStudent(ctx context.Context, id uuid.UUID) (*Student, error)
	FindByAdmissionNumber(ctx context.Context, admissionNumber string) (*Student, error)
	// ListActive returns active students ordered by id, optionally filtered
	// to one grade, starting after the cursor.
	ListActive(ctx context.Context, gradeID *uuid.UUID, after *uuid.UUID, limit int) (*ListPage, error)
}
