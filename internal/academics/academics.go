package academics

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no term or academic year matches a lookup.
var ErrNotFound = errors.New("academics: not found")

// Term is a billing/academic period inside an academic year.
type Term struct {
	ID             uuid.UUID
	Name           string
	AcademicYearID uuid.UUID
	StartDate      time.Time
	EndDate        time.Time
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// Contains reports whether the date falls inside the term, boundaries included.
func (t *Term) Contains(date time.Time) bool {
	return !date.Before(t.StartDate) && !date.After(t.EndDate)
}

// AcademicYear groups terms. Years are ordered by start date and must not
// overlap; that is enforced at configuration time, not here.
type AcademicYear struct {
	ID        uuid.UUID
	Name      string
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// ValidationResult is the outcome of checking a term before fee assignment.
// Errors make the term unusable; warnings are surfaced but do not block.
type ValidationResult struct {
	IsValid        bool     `json:"is_valid"`
	Warnings       []string `json:"warnings"`
	Errors         []string `json:"errors"`
	IsCurrent      bool     `json:"is_current"`
	DaysUntilStart int      `json:"days_until_start"`
	DaysSinceEnd   int      `json:"days_since_end"`
}
