package feestructure

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no active structure covers a grade/term/year.
	ErrNotFound = errors.New("feestructure: not found")
	// ErrDuplicate is returned when a structure already exists for the
	// (grade, term, academic year) combination.
	ErrDuplicate = errors.New("feestructure: already exists for grade, term and academic year")
)

// Charge is one itemized addition on top of the basic fee.
type Charge struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"` // cents
}

// FeeStructure is the canonical amount owed for one grade in one term.
// TotalFee is always recomputed from BasicFee plus the charges at write
// time; it is never accepted from callers.
type FeeStructure struct {
	ID                uuid.UUID
	GradeID           uuid.UUID
	TermID            uuid.UUID
	AcademicYearID    uuid.UUID
	BasicFee          int64 // cents
	AdditionalCharges []Charge
	TotalFee          int64 // cents
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

// ComputeTotal returns the basic fee plus the sum of the additional charges.
func (f *FeeStructure) ComputeTotal() int64 {
	total := f.BasicFee
	for _, c := range f.AdditionalCharges {
		total += c.Amount
	}

	return total
}
