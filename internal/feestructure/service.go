package feestructure

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=feestructure
type Repository interface {
	CreateFeeStructure(ctx context.Context, fs *FeeStructure) error
	GetFeeStructure(ctx context.Context, id uuid.UUID) (*FeeStructure, error)
	UpdateFeeStructure(ctx context.Context, fs *FeeStructure) error
	// ActiveFeeStructure returns the active structure for the combination,
	// or ErrNotFound.
	ActiveFeeStructure(ctx context.Context, gradeID, termID, academicYearID uuid.UUID) (*FeeStructure, error)
	ListFeeStructures(ctx context.Context, filter ListFilter) ([]*FeeStructure, error)
}

type ListFilter struct {
	GradeID        *uuid.UUID
	TermID         *uuid.UUID
	AcademicYearID *uuid.UUID
	ActiveOnly     bool
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	GradeID           uuid.UUID
	TermID            uuid.UUID
	AcademicYearID    uuid.UUID
	BasicFee          int64
	AdditionalCharges []Charge
	IsActive          bool
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*FeeStructure, error) {
	if params.BasicFee < 0 {
		return nil, fmt.Errorf("basic fee must not be negative")
	}

	for _, c := range params.AdditionalCharges {
		if c.Amount < 0 {
			return nil, fmt.Errorf("charge %q must not be negative", c.Description)
		}
	}

	fs := &FeeStructure{
		GradeID:           params.GradeID,
		TermID:            params.TermID,
		AcademicYearID:    params.AcademicYearID,
		BasicFee:          params.BasicFee,
		AdditionalCharges: params.AdditionalCharges,
		IsActive:          params.IsActive,
	}
	fs.TotalFee = fs.ComputeTotal()

	if err := s.repo.CreateFeeStructure(ctx, fs); err != nil {
		return nil, err
	}

	return fs, nil
}

// Update persists changes to fees and charges. The stored total is
// recomputed here so it can never drift from its parts.
func (s *Service) Update(ctx context.Context, fs *FeeStructure) error {
	if fs.BasicFee < 0 {
		return fmt.Errorf("basic fee must not be negative")
	}

	fs.TotalFee = fs.ComputeTotal()

	return s.repo.UpdateFeeStructure(ctx, fs)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*FeeStructure, error) {
	return s.repo.GetFeeStructure(ctx, id)
}

// ActiveFor resolves the billable structure for a student's grade in a term.
func (s *Service) ActiveFor(ctx context.Context, gradeID, termID, academicYearID uuid.UUID) (*FeeStructure, error) {
	return s.repo.ActiveFeeStructure(ctx, gradeID, termID, academicYearID)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*FeeStructure, error) {
	return s.repo.ListFeeStructures(ctx, filter)
}
