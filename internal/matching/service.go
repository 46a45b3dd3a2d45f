package matching

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/bursarhq/bursar/internal/student"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=matching
type Repository interface {
	// FindMatch returns the admission number mapped to the narrative, or ""
	// when no learned pattern applies.
	FindMatch(ctx context.Context, narrative string) (string, error)
	CreateMapping(ctx context.Context, rawPattern, admissionNumber string) error
}

// StudentFinder resolves admission numbers to student records.
type StudentFinder interface {
	FindByAdmissionNumber(ctx context.Context, admissionNumber string) (*student.Student, error)
}

// Service maps raw bank statement narratives to students so imported
// payments can land on the right ledger.
type Service struct {
	repo     Repository
	students StudentFinder
}

func NewService(repo Repository, students StudentFinder) *Service {
	return &Service{repo: repo, students: students}
}

// admissionPattern matches admission numbers parents sometimes include in
// the transfer narrative, e.g. "SCH FEES ADM-1042 J MWANGI".
var admissionPattern = regexp.MustCompile(`\bADM[-/ ]?(\d{3,6})\b`)

// Suggest tries to identify the student a bank narrative refers to. Direct
// admission-number mentions win; otherwise learned narrative patterns are
// consulted. Returns nil with no error when nothing matches.
func (s *Service) Suggest(ctx context.Context, narrative string) (*student.Student, error) {
	if m := admissionPattern.FindStringSubmatch(strings.ToUpper(narrative)); m != nil {
		st, err := s.students.FindByAdmissionNumber(ctx, "ADM-"+m[1])
		if err == nil {
			return st, nil
		}

		if !errors.Is(err, student.ErrNotFound) {
			return nil, fmt.Errorf("resolving admission number: %w", err)
		}
	}

	admissionNumber, err := s.repo.FindMatch(ctx, narrative)
	if err != nil {
		return nil, fmt.Errorf("matching narrative: %w", err)
	}

	if admissionNumber == "" {
		return nil, nil
	}

	st, err := s.students.FindByAdmissionNumber(ctx, admissionNumber)
	if err != nil {
		if errors.Is(err, student.ErrNotFound) {
			// Stale mapping; the student left or was renumbered.
			return nil, nil
		}

		return nil, fmt.Errorf("resolving matched student: %w", err)
	}

	return st, nil
}

// Learn remembers that narratives containing rawPattern belong to the given
// admission number. Future imports auto-suggest the student.
func (s *Service) Learn(ctx context.Context, rawPattern, admissionNumber string) error {
	if strings.TrimSpace(rawPattern) == "" {
		return fmt.Errorf("pattern must not be empty")
	}

	if _, err := s.students.FindByAdmissionNumber(ctx, admissionNumber); err != nil {
		if errors.Is(err, student.ErrNotFound) {
			return fmt.Errorf("no student with admission number %q", admissionNumber)
		}

		return fmt.Errorf("verifying admission number: %w", err)
	}

	return s.repo.CreateMapping(ctx, rawPattern, admissionNumber)
}
