package academics

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=academics
type Repository interface {
	GetTerm(ctx context.Context, id uuid.UUID) (*Term, error)
	// TermContaining returns the term whose [start, end] range contains the date.
	TermContaining(ctx context.Context, date time.Time) (*Term, error)
	// FirstTermStartingAfter returns the earliest term of the academic year
	// whose start date is strictly after the given date.
	FirstTermStartingAfter(ctx context.Context, academicYearID uuid.UUID, after time.Time) (*Term, error)
	// LastTermEndingBefore returns the latest term of the academic year whose
	// end date is strictly before the given date.
	LastTermEndingBefore(ctx context.Context, academicYearID uuid.UUID, before time.Time) (*Term, error)
	// FirstTermStartingOnOrAfter searches across all academic years.
	FirstTermStartingOnOrAfter(ctx context.Context, date time.Time) (*Term, error)

	GetAcademicYear(ctx context.Context, id uuid.UUID) (*AcademicYear, error)
	// NextAcademicYear returns the earliest academic year starting strictly
	// after the given date.
	NextAcademicYear(ctx context.Context, after time.Time) (*AcademicYear, error)
	// PreviousAcademicYear returns the latest academic year ending strictly
	// before the given date.
	PreviousAcademicYear(ctx context.Context, before time.Time) (*AcademicYear, error)
}

// Service answers term-sequencing questions: which term is running today,
// which term follows another (crossing academic-year boundaries), and
// whether a term is in a usable state for fee assignment.
type Service struct {
	repo Repository
	now  func() time.Time

	cacheTTL time.Duration

	mu           sync.Mutex
	cachedTerm   *Term
	cacheExpires time.Time
}

type Option func(*Service)

// WithNow overrides the clock. Tests use this to pin "today".
func WithNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithCacheTTL overrides how long CurrentTerm may serve a cached result.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Service) { s.cacheTTL = ttl }
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		now:      time.Now,
		cacheTTL: 5 * time.Minute,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// CurrentTerm returns the term containing today, or ErrNotFound during a gap
// between terms. The result is cached for the configured TTL; negative
// results are not cached so a newly configured term shows up immediately.
func (s *Service) CurrentTerm(ctx context.Context) (*Term, error) {
	now := s.now()

	s.mu.Lock()
	if s.cachedTerm != nil && now.Before(s.cacheExpires) && s.cachedTerm.Contains(now) {
		term := s.cachedTerm
		s.mu.Unlock()

		return term, nil
	}
	s.mu.Unlock()

	term, err := s.repo.TermContaining(ctx, now)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cachedTerm = term
	s.cacheExpires = now.Add(s.cacheTTL)
	s.mu.Unlock()

	return term, nil
}

// InvalidateCurrentTerm drops the cached current term. Called after the
// term calendar is edited.
func (s *Service) InvalidateCurrentTerm() {
	s.mu.Lock()
	s.cachedTerm = nil
	s.cacheExpires = time.Time{}
	s.mu.Unlock()
}

// Term fetches a term by id.
func (s *Service) Term(ctx context.Context, id uuid.UUID) (*Term, error) {
	return s.repo.GetTerm(ctx, id)
}

// NextTerm returns the term that follows the given one: the earliest term of
// the same academic year starting after it ends, else the earliest term of
// the next academic year, else ErrNotFound.
func (s *Service) NextTerm(ctx context.Context, term *Term) (*Term, error) {
	next, err := s.repo.FirstTermStartingAfter(ctx, term.AcademicYearID, term.EndDate)
	if err == nil {
		return next, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("looking up next term in year: %w", err)
	}

	year, err := s.repo.GetAcademicYear(ctx, term.AcademicYearID)
	if err != nil {
		return nil, fmt.Errorf("looking up academic year: %w", err)
	}

	nextYear, err := s.repo.NextAcademicYear(ctx, year.EndDate)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("looking up next academic year: %w", err)
	}

	// Earliest term of the next year. Any date before the year opens works
	// as the "after" bound.
	next, err = s.repo.FirstTermStartingAfter(ctx, nextYear.ID, nextYear.StartDate.AddDate(0, 0, -1))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("looking up first term of next year: %w", err)
	}

	return next, nil
}

// PreviousTerm is the mirror of NextTerm: latest earlier term of the same
// year, else the latest term of the previous academic year.
func (s *Service) PreviousTerm(ctx context.Context, term *Term) (*Term, error) {
	prev, err := s.repo.LastTermEndingBefore(ctx, term.AcademicYearID, term.StartDate)
	if err == nil {
		return prev, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("looking up previous term in year: %w", err)
	}

	year, err := s.repo.GetAcademicYear(ctx, term.AcademicYearID)
	if err != nil {
		return nil, fmt.Errorf("looking up academic year: %w", err)
	}

	prevYear, err := s.repo.PreviousAcademicYear(ctx, year.StartDate)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("looking up previous academic year: %w", err)
	}

	prev, err = s.repo.LastTermEndingBefore(ctx, prevYear.ID, prevYear.EndDate.AddDate(0, 0, 1))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("looking up last term of previous year: %w", err)
	}

	return prev, nil
}

// RecommendedTerm is the term fee generation should target when no term was
// chosen explicitly: the current term, else the nearest future term. A
// lapsed term is never recommended.
func (s *Service) RecommendedTerm(ctx context.Context) (*Term, error) {
	term, err := s.CurrentTerm(ctx)
	if err == nil {
		return term, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	return s.repo.FirstTermStartingOnOrAfter(ctx, s.now())
}

// ValidateTermForFeeAssignment checks a term before ledger entries are
// created against it. Structural problems (inverted dates) are errors and
// block assignment; a term that has not started or has already ended only
// warns.
func (s *Service) ValidateTermForFeeAssignment(term *Term) ValidationResult {
	now := s.now()

	result := ValidationResult{
		IsCurrent: term.Contains(now),
	}

	if !term.StartDate.Before(term.EndDate) {
		result.Errors = append(result.Errors, "term start date must be before its end date")
	}

	if now.Before(term.StartDate) {
		days := int(term.StartDate.Sub(now).Hours() / 24)
		result.DaysUntilStart = days
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("term %q has not started yet (%d days until start)", term.Name, days))
	}

	if now.After(term.EndDate) {
		days := int(now.Sub(term.EndDate).Hours() / 24)
		result.DaysSinceEnd = days
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("term %q has already ended (%d days ago)", term.Name, days))
	}

	result.IsValid = len(result.Errors) == 0

	return result
}
