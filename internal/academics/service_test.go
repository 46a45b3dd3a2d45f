package academics_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bursarhq/bursar/internal/academics"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type calendar struct {
	yearA *academics.AcademicYear
	yearB *academics.AcademicYear
	t1    *academics.Term
	t2    *academics.Term
	b1    *academics.Term
}

func newCalendar() calendar {
	yearA := &academics.AcademicYear{
		ID:        uuid.New(),
		Name:      "2026",
		StartDate: date(2026, 1, 1),
		EndDate:   date(2026, 8, 31),
	}
	yearB := &academics.AcademicYear{
		ID:        uuid.New(),
		Name:      "2027",
		StartDate: date(2027, 1, 1),
		EndDate:   date(2027, 8, 31),
	}

	return calendar{
		yearA: yearA,
		yearB: yearB,
		t1: &academics.Term{
			ID:             uuid.New(),
			Name:           "Term 1",
			AcademicYearID: yearA.ID,
			StartDate:      date(2026, 1, 1),
			EndDate:        date(2026, 4, 30),
		},
		t2: &academics.Term{
			ID:             uuid.New(),
			Name:           "Term 2",
			AcademicYearID: yearA.ID,
			StartDate:      date(2026, 5, 1),
			EndDate:        date(2026, 8, 31),
		},
		b1: &academics.Term{
			ID:             uuid.New(),
			Name:           "Term 1",
			AcademicYearID: yearB.ID,
			StartDate:      date(2027, 1, 1),
			EndDate:        date(2027, 4, 30),
		},
	}
}

func TestService_NextTerm_SameYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cal := newCalendar()
	repo := academics.NewMockRepository(ctrl)
	repo.EXPECT().
		FirstTermStartingAfter(gomock.Any(), cal.yearA.ID, cal.t1.EndDate).
		Return(cal.t2, nil)

	svc := academics.NewService(repo)

	next, err := svc.NextTerm(context.Background(), cal.t1)
	require.NoError(t, err)
	assert.Equal(t, cal.t2.ID, next.ID)
}

func TestService_NextTerm_CrossesYearBoundary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cal := newCalendar()
	repo := academics.NewMockRepository(ctrl)
	repo.EXPECT().
		FirstTermStartingAfter(gomock.Any(), cal.yearA.ID, cal.t2.EndDate).
		Return(nil, academics.ErrNotFound)
	repo.EXPECT().
		GetAcademicYear(gomock.Any(), cal.yearA.ID).
		Return(cal.yearA, nil)
	repo.EXPECT().
		NextAcademicYear(gomock.Any(), cal.yearA.EndDate).
		Return(cal.yearB, nil)
	repo.EXPECT().
		FirstTermStartingAfter(gomock.Any(), cal.yearB.ID, gomock.Any()).
		Return(cal.b1, nil)

	svc := academics.NewService(repo)

	next, err := svc.NextTerm(context.Background(), cal.t2)
	require.NoError(t, err)
	assert.Equal(t, cal.b1.ID, next.ID)
}

func TestService_NextTerm_NoneExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cal := newCalendar()
	repo := academics.NewMockRepository(ctrl)
	repo.EXPECT().
		FirstTermStartingAfter(gomock.Any(), cal.yearB.ID, cal.b1.EndDate).
		Return(nil, academics.ErrNotFound)
	repo.EXPECT().
		GetAcademicYear(gomock.Any(), cal.yearB.ID).
		Return(cal.yearB, nil)
	repo.EXPECT().
		NextAcademicYear(gomock.Any(), cal.yearB.EndDate).
		Return(nil, academics.ErrNotFound)

	svc := academics.NewService(repo)

	_, err := svc.NextTerm(context.Background(), cal.b1)
	assert.ErrorIs(t, err, academics.ErrNotFound)
}

func TestService_PreviousTerm_SameYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cal := newCalendar()
	repo := academics.NewMockRepository(ctrl)
	repo.EXPECT().
		LastTermEndingBefore(gomock.Any(), cal.yearA.ID, cal.t2.StartDate).
		Return(cal.t1, nil)

	svc := academics.NewService(repo)

	prev, err := svc.PreviousTerm(context.Background(), cal.t2)
	require.NoError(t, err)
	assert.Equal(t, cal.t1.ID, prev.ID)
}

func TestService_PreviousTerm_CrossesYearBoundary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cal := newCalendar()
	repo := academics.NewMockRepository(ctrl)
	repo.EXPECT().
		LastTermEndingBefore(gomock.Any(), cal.yearB.ID, cal.b1.StartDate).
		Return(nil, academics.ErrNotFound)
	repo.EXPECT().
		GetAcademicYear(gomock.Any(), cal.yearB.ID).
		Return(cal.yearB, nil)
	repo.EXPECT().
		PreviousAcademicYear(gomock.Any(), cal.yearB.StartDate).
		Return(cal.yearA, nil)
	repo.EXPECT().
		LastTermEndingBefore(gomock.Any(), cal.yearA.ID, gomock.Any()).
		Return(cal.t2, nil)

	svc := academics.NewService(repo)

	prev, err := svc.PreviousTerm(context.Background(), cal.b1)
	require.NoError(t, err)
	assert.Equal(t, cal.t2.ID, prev.ID)
}

func TestService_CurrentTerm_CachesWithinTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cal := newCalendar()
	now := date(2026, 2, 15)

	repo := academics.NewMockRepository(ctrl)
	// Only one repository hit despite two lookups.
	repo.EXPECT().
		TermContaining(gomock.Any(), now).
		Return(cal.t1, nil).
		Times(1)

	svc := academics.NewService(repo,
		academics.WithNow(func() time.Time { return now }),
		academics.WithCacheTTL(time.Minute),
	)

	first, err := svc.CurrentTerm(context.Background())
	require.NoError(t, err)

	second, err := svc.CurrentTerm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestService_CurrentTerm_InvalidateForcesRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cal := newCalendar()
	now := date(2026, 2, 15)

	repo := academics.NewMockRepository(ctrl)
	repo.EXPECT().
		TermContaining(gomock.Any(), now).
		Return(cal.t1, nil).
		Times(2)

	svc := academics.NewService(repo, academics.WithNow(func() time.Time { return now }))

	_, err := svc.CurrentTerm(context.Background())
	require.NoError(t, err)

	svc.InvalidateCurrentTerm()

	_, err = svc.CurrentTerm(context.Background())
	require.NoError(t, err)
}

func TestService_CurrentTerm_GapBetweenTerms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := date(2026, 9, 5)

	repo := academics.NewMockRepository(ctrl)
	repo.EXPECT().
		TermContaining(gomock.Any(), now).
		Return(nil, academics.ErrNotFound)

	svc := academics.NewService(repo, academics.WithNow(func() time.Time { return now }))

	_, err := svc.CurrentTerm(context.Background())
	assert.ErrorIs(t, err, academics.ErrNotFound)
}

func TestService_RecommendedTerm_FallsForwardNotBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cal := newCalendar()
	now := date(2026, 12, 20) // after year A ended, before year B starts

	repo := academics.NewMockRepository(ctrl)
	repo.EXPECT().
		TermContaining(gomock.Any(), now).
		Return(nil, academics.ErrNotFound)
	repo.EXPECT().
		FirstTermStartingOnOrAfter(gomock.Any(), now).
		Return(cal.b1, nil)

	svc := academics.NewService(repo, academics.WithNow(func() time.Time { return now }))

	term, err := svc.RecommendedTerm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cal.b1.ID, term.ID)
}

func TestService_ValidateTermForFeeAssignment(t *testing.T) {
	type testCase struct {
		name         string
		now          time.Time
		term         *academics.Term
		wantValid    bool
		wantCurrent  bool
		wantWarnings int
		wantErrors   int
	}

	cal := newCalendar()

	tests := []testCase{
		{
			name:        "CurrentTermIsClean",
			now:         date(2026, 2, 15),
			term:        cal.t1,
			wantValid:   true,
			wantCurrent: true,
		},
		{
			name:         "FutureTermWarns",
			now:          date(2026, 2, 15),
			term:         cal.b1,
			wantValid:    true,
			wantWarnings: 1,
		},
		{
			name:         "EndedTermWarns",
			now:          date(2026, 6, 1),
			term:         cal.t1,
			wantValid:    true,
			wantWarnings: 1,
		},
		{
			name: "InvertedDatesRejected",
			now:  date(2026, 2, 15),
			term: &academics.Term{
				ID:        uuid.New(),
				Name:      "Broken",
				StartDate: date(2026, 4, 30),
				EndDate:   date(2026, 1, 1),
			},
			wantValid:    false,
			wantWarnings: 2, // reads as both not-yet-started and already-ended
			wantErrors:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := academics.NewMockRepository(ctrl)
			svc := academics.NewService(repo, academics.WithNow(func() time.Time { return tt.now }))

			result := svc.ValidateTermForFeeAssignment(tt.term)

			assert.Equal(t, tt.wantValid, result.IsValid)
			assert.Equal(t, tt.wantCurrent, result.IsCurrent)
			assert.Len(t, result.Warnings, tt.wantWarnings)
			assert.Len(t, result.Errors, tt.wantErrors)
		})
	}
}
