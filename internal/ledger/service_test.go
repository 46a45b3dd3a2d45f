package ledger

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bursarhq/bursar/internal/academics"
	"github.com/bursarhq/bursar/internal/feestructure"
	"github.com/bursarhq/bursar/internal/student"
)

type fixture struct {
	svc        *Service
	repo       *MockRepository
	terms      *MockTermSequencer
	structures *MockStructureCatalog
	students   *MockStudentDirectory
	now        time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:       NewMockRepository(ctrl),
		terms:      NewMockTermSequencer(ctrl),
		structures: NewMockStructureCatalog(ctrl),
		students:   NewMockStudentDirectory(ctrl),
		now:        time.Date(2026, time.February, 15, 10, 0, 0, 0, time.UTC),
	}

	f.svc = NewService(f.repo, f.terms, f.structures, f.students,
		WithNow(func() time.Time { return f.now }),
	)

	return f
}

func termFixture(name string, start, end time.Time) *academics.Term {
	return &academics.Term{
		ID:             uuid.New(),
		Name:           name,
		AcademicYearID: uuid.New(),
		StartDate:      start,
		EndDate:        end,
	}
}

func structureFixture(gradeID uuid.UUID, term *academics.Term, total int64) *feestructure.FeeStructure {
	return &feestructure.FeeStructure{
		ID:             uuid.New(),
		GradeID:        gradeID,
		TermID:         term.ID,
		AcademicYearID: term.AcademicYearID,
		BasicFee:       total,
		TotalFee:       total,
		IsActive:       true,
	}
}

func TestRecordPayment_PartialPayment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gradeID := uuid.New()
	term := termFixture("Term 1", f.now.AddDate(0, -1, 0), f.now.AddDate(0, 2, 0))
	fs := structureFixture(gradeID, term, 100_000)

	fee := &StudentFee{
		ID:             uuid.New(),
		StudentID:      uuid.New(),
		FeeStructureID: fs.ID,
		AcademicYearID: term.AcademicYearID,
		TermID:         term.ID,
		GradeID:        gradeID,
		Balance:        100_000,
		PaymentStatus:  StatusUnpaid,
	}

	tx := NewMockTx(f.repo.ctrl)
	f.repo.EXPECT().Begin(ctx).Return(tx, nil)
	tx.EXPECT().GetStudentFeeForUpdate(ctx, fee.ID).Return(fee, nil)
	f.structures.EXPECT().Get(ctx, fs.ID).Return(fs, nil)
	tx.EXPECT().UpdateStudentFee(ctx, gomock.Any()).Return(nil)

	var recorded *PaymentTransaction

	tx.EXPECT().CreateTransaction(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, pt *PaymentTransaction) error {
			recorded = pt
			return nil
		})
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	result, err := f.svc.RecordPayment(ctx, RecordPaymentParams{
		StudentFeeID: fee.ID,
		Amount:       40_000,
		Method:       "mpesa",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(40_000), result.Fee.AmountPaid)
	assert.Equal(t, int64(60_000), result.Fee.Balance)
	assert.Equal(t, StatusPartial, result.Fee.PaymentStatus)
	assert.Nil(t, result.Overpayment)

	require.NotNil(t, recorded)
	assert.Equal(t, TxPayment, recorded.Type)
	assert.Equal(t, int64(40_000), recorded.Amount)
	assert.Equal(t, TxStatusCompleted, recorded.Status)
}

func TestRecordPayment_ExactPaymentSettles(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gradeID := uuid.New()
	term := termFixture("Term 1", f.now.AddDate(0, -1, 0), f.now.AddDate(0, 2, 0))
	fs := structureFixture(gradeID, term, 100_000)

	fee := &StudentFee{
		ID:             uuid.New(),
		StudentID:      uuid.New(),
		FeeStructureID: fs.ID,
		TermID:         term.ID,
		GradeID:        gradeID,
		AmountPaid:     30_000,
		Balance:        70_000,
		PaymentStatus:  StatusPartial,
	}

	tx := NewMockTx(f.repo.ctrl)
	f.repo.EXPECT().Begin(ctx).Return(tx, nil)
	tx.EXPECT().GetStudentFeeForUpdate(ctx, fee.ID).Return(fee, nil)
	f.structures.EXPECT().Get(ctx, fs.ID).Return(fs, nil)
	tx.EXPECT().UpdateStudentFee(ctx, gomock.Any()).Return(nil)
	tx.EXPECT().CreateTransaction(ctx, gomock.Any()).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	result, err := f.svc.RecordPayment(ctx, RecordPaymentParams{
		StudentFeeID: fee.ID,
		Amount:       70_000,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), result.Fee.Balance)
	assert.Equal(t, StatusPaid, result.Fee.PaymentStatus)
	assert.Nil(t, result.Overpayment)
}

func TestRecordPayment_RejectsNonPositiveAmount(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.RecordPayment(context.Background(), RecordPaymentParams{
		StudentFeeID: uuid.New(),
		Amount:       0,
	})
	require.Error(t, err)

	_, err = f.svc.RecordPayment(context.Background(), RecordPaymentParams{
		StudentFeeID: uuid.New(),
		Amount:       -500,
	})
	require.Error(t, err)
}

func TestRecordPayment_OverpaymentForwardsToNextTerm(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gradeID := uuid.New()
	studentID := uuid.New()

	term1 := termFixture("Term 1", f.now.AddDate(0, -1, 0), f.now.AddDate(0, 2, 0))
	term2 := termFixture("Term 2", f.now.AddDate(0, 3, 0), f.now.AddDate(0, 6, 0))

	fs1 := structureFixture(gradeID, term1, 100_000)
	fs2 := structureFixture(gradeID, term2, 100_000)

	fee := &StudentFee{
		ID:             uuid.New(),
		StudentID:      studentID,
		FeeStructureID: fs1.ID,
		AcademicYearID: term1.AcademicYearID,
		TermID:         term1.ID,
		GradeID:        gradeID,
		Balance:        100_000,
		PaymentStatus:  StatusUnpaid,
	}

	// Payment unit.
	payTx := NewMockTx(f.repo.ctrl)
	f.repo.EXPECT().Begin(ctx).Return(payTx, nil)
	payTx.EXPECT().GetStudentFeeForUpdate(ctx, fee.ID).Return(fee, nil)
	f.structures.EXPECT().Get(ctx, fs1.ID).Return(fs1, nil)
	payTx.EXPECT().UpdateStudentFee(ctx, gomock.Any()).Return(nil)
	payTx.EXPECT().CreateTransaction(ctx, gomock.Any()).Return(nil)
	payTx.EXPECT().Commit().Return(nil)
	payTx.EXPECT().Rollback().Return(nil).AnyTimes()

	// Forward unit, re-reading the committed state under lock.
	fwdTx := NewMockTx(f.repo.ctrl)
	f.repo.EXPECT().Begin(ctx).Return(fwdTx, nil)
	fwdTx.EXPECT().GetStudentFeeForUpdate(ctx, fee.ID).DoAndReturn(
		func(context.Context, uuid.UUID) (*StudentFee, error) {
			copied := *fee
			return &copied, nil
		})
	f.structures.EXPECT().Get(ctx, fs1.ID).Return(fs1, nil)
	f.terms.EXPECT().Term(ctx, term1.ID).Return(term1, nil)
	f.terms.EXPECT().NextTerm(ctx, term1).Return(term2, nil)
	f.structures.EXPECT().ActiveFor(ctx, gradeID, term2.ID, term2.AcademicYearID).Return(fs2, nil)

	var updates []*StudentFee

	fwdTx.EXPECT().UpdateStudentFee(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, sf *StudentFee) error {
			copied := *sf
			updates = append(updates, &copied)
			return nil
		}).Times(2)
	fwdTx.EXPECT().FindStudentFeeForUpdate(ctx, studentID, fs2.ID).Return(nil, ErrNotFound)
	fwdTx.EXPECT().CreateStudentFee(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, sf *StudentFee) error {
			sf.ID = uuid.New()
			return nil
		})

	var forward *PaymentTransaction

	fwdTx.EXPECT().CreateTransaction(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, pt *PaymentTransaction) error {
			forward = pt
			return nil
		})
	fwdTx.EXPECT().Commit().Return(nil)
	fwdTx.EXPECT().Rollback().Return(nil).AnyTimes()

	result, err := f.svc.RecordPayment(ctx, RecordPaymentParams{
		StudentFeeID: fee.ID,
		Amount:       120_000,
	})
	require.NoError(t, err)

	require.NotNil(t, result.Overpayment)
	assert.Equal(t, ForwardBalance, result.Overpayment.Type)
	assert.Equal(t, int64(20_000), result.Overpayment.Amount)
	assert.Equal(t, 1, result.Overpayment.Hops)
	assert.Equal(t, term2.ID, result.Overpayment.NextTerm.ID)

	// Source settled at its total, excess on the new entry.
	require.Len(t, updates, 2)
	source, target := updates[0], updates[1]
	assert.Equal(t, int64(100_000), source.AmountPaid)
	assert.Equal(t, int64(0), source.Balance)
	assert.Equal(t, StatusPaid, source.PaymentStatus)
	assert.Contains(t, source.Notes, "Term 2")

	assert.Equal(t, term2.ID, target.TermID)
	assert.Equal(t, int64(20_000), target.AmountPaid)
	assert.Equal(t, int64(80_000), target.Balance)
	assert.Equal(t, StatusPartial, target.PaymentStatus)
	assert.Contains(t, target.Notes, "Term 1")

	require.NotNil(t, forward)
	assert.Equal(t, TxBalanceForward, forward.Type)
	assert.Equal(t, int64(20_000), forward.Amount)
	assert.Equal(t, "Term 1", forward.Metadata["source_term"])
	assert.Equal(t, "Term 2", forward.Metadata["target_term"])
}

func TestProcessOverpayment_CreditBalanceWhenNoNextTerm(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gradeID := uuid.New()
	term := termFixture("Term 3", f.now.AddDate(0, -2, 0), f.now.AddDate(0, 1, 0))
	fs := structureFixture(gradeID, term, 100_000)

	fee := &StudentFee{
		ID:             uuid.New(),
		StudentID:      uuid.New(),
		FeeStructureID: fs.ID,
		TermID:         term.ID,
		GradeID:        gradeID,
		AmountPaid:     130_000,
		Balance:        0,
		PaymentStatus:  StatusPaid,
	}

	tx := NewMockTx(f.repo.ctrl)
	f.repo.EXPECT().Begin(ctx).Return(tx, nil)
	tx.EXPECT().GetStudentFeeForUpdate(ctx, fee.ID).Return(fee, nil)
	f.structures.EXPECT().Get(ctx, fs.ID).Return(fs, nil)
	f.terms.EXPECT().Term(ctx, term.ID).Return(term, nil)
	f.terms.EXPECT().NextTerm(ctx, term).Return(nil, academics.ErrNotFound)
	tx.EXPECT().UpdateStudentFee(ctx, gomock.Any()).Return(nil)

	var credit *PaymentTransaction

	tx.EXPECT().CreateTransaction(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, pt *PaymentTransaction) error {
			credit = pt
			return nil
		})
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	result, err := f.svc.ProcessOverpayment(ctx, fee.ID)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, CreditBalance, result.Type)
	assert.Equal(t, int64(30_000), result.Amount)
	assert.Equal(t, 0, result.Hops)
	assert.Nil(t, result.NextTerm)

	// The credit is recorded as a structured transaction, not a forward.
	require.NotNil(t, credit)
	assert.Equal(t, TxOverpayment, credit.Type)
	assert.Equal(t, int64(30_000), credit.Amount)
	assert.Equal(t, true, credit.Metadata["credit_balance"])

	assert.Contains(t, fee.Notes, "Credit balance")
}

func TestProcessOverpayment_ChainsAcrossTerms(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gradeID := uuid.New()
	studentID := uuid.New()

	term1 := termFixture("Term 1", f.now.AddDate(0, -1, 0), f.now.AddDate(0, 2, 0))
	term2 := termFixture("Term 2", f.now.AddDate(0, 3, 0), f.now.AddDate(0, 6, 0))
	term3 := termFixture("Term 3", f.now.AddDate(0, 7, 0), f.now.AddDate(0, 10, 0))

	fs1 := structureFixture(gradeID, term1, 100_000)
	fs2 := structureFixture(gradeID, term2, 100_000)
	fs3 := structureFixture(gradeID, term3, 100_000)

	// Paid 250,000 against a 100,000 term: the first forward of 150,000
	// overshoots the next term too and must chain once more.
	fee := &StudentFee{
		ID:             uuid.New(),
		StudentID:      studentID,
		FeeStructureID: fs1.ID,
		TermID:         term1.ID,
		GradeID:        gradeID,
		AmountPaid:     250_000,
	}

	tx := NewMockTx(f.repo.ctrl)
	f.repo.EXPECT().Begin(ctx).Return(tx, nil)
	tx.EXPECT().GetStudentFeeForUpdate(ctx, fee.ID).Return(fee, nil)
	f.structures.EXPECT().Get(ctx, fs1.ID).Return(fs1, nil)

	f.terms.EXPECT().Term(ctx, term1.ID).Return(term1, nil)
	f.terms.EXPECT().NextTerm(ctx, term1).Return(term2, nil)
	f.structures.EXPECT().ActiveFor(ctx, gradeID, term2.ID, term2.AcademicYearID).Return(fs2, nil)

	f.terms.EXPECT().Term(ctx, term2.ID).Return(term2, nil)
	f.terms.EXPECT().NextTerm(ctx, term2).Return(term3, nil)
	f.structures.EXPECT().ActiveFor(ctx, gradeID, term3.ID, term3.AcademicYearID).Return(fs3, nil)

	tx.EXPECT().FindStudentFeeForUpdate(ctx, studentID, fs2.ID).Return(nil, ErrNotFound)
	tx.EXPECT().FindStudentFeeForUpdate(ctx, studentID, fs3.ID).Return(nil, ErrNotFound)
	tx.EXPECT().CreateStudentFee(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, sf *StudentFee) error {
			sf.ID = uuid.New()
			return nil
		}).Times(2)

	var updates []*StudentFee

	tx.EXPECT().UpdateStudentFee(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, sf *StudentFee) error {
			copied := *sf
			updates = append(updates, &copied)
			return nil
		}).Times(4)

	var forwards []*PaymentTransaction

	tx.EXPECT().CreateTransaction(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, pt *PaymentTransaction) error {
			forwards = append(forwards, pt)
			return nil
		}).Times(2)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	result, err := f.svc.ProcessOverpayment(ctx, fee.ID)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, ForwardBalance, result.Type)
	assert.Equal(t, int64(150_000), result.Amount)
	assert.Equal(t, 2, result.Hops)
	assert.Equal(t, term2.ID, result.NextTerm.ID)

	require.Len(t, forwards, 2)
	assert.Equal(t, TxBalanceForward, forwards[0].Type)
	assert.Equal(t, int64(150_000), forwards[0].Amount)
	assert.Equal(t, TxBalanceForward, forwards[1].Type)
	assert.Equal(t, int64(50_000), forwards[1].Amount)

	// Terminal entry keeps the remainder as a partial payment.
	terminal := updates[len(updates)-1]
	assert.Equal(t, term3.ID, terminal.TermID)
	assert.Equal(t, int64(50_000), terminal.AmountPaid)
	assert.Equal(t, int64(50_000), terminal.Balance)
	assert.Equal(t, StatusPartial, terminal.PaymentStatus)
}

func TestRecordPayment_ForwardFailureKeepsPayment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gradeID := uuid.New()
	term1 := termFixture("Term 1", f.now.AddDate(0, -1, 0), f.now.AddDate(0, 2, 0))
	term2 := termFixture("Term 2", f.now.AddDate(0, 3, 0), f.now.AddDate(0, 6, 0))
	fs1 := structureFixture(gradeID, term1, 100_000)

	fee := &StudentFee{
		ID:             uuid.New(),
		StudentID:      uuid.New(),
		FeeStructureID: fs1.ID,
		TermID:         term1.ID,
		GradeID:        gradeID,
	}

	payTx := NewMockTx(f.repo.ctrl)
	f.repo.EXPECT().Begin(ctx).Return(payTx, nil)
	payTx.EXPECT().GetStudentFeeForUpdate(ctx, fee.ID).Return(fee, nil)
	f.structures.EXPECT().Get(ctx, fs1.ID).Return(fs1, nil)
	payTx.EXPECT().UpdateStudentFee(ctx, gomock.Any()).Return(nil)
	payTx.EXPECT().CreateTransaction(ctx, gomock.Any()).Return(nil)
	payTx.EXPECT().Commit().Return(nil)
	payTx.EXPECT().Rollback().Return(nil).AnyTimes()

	// The next term has no fee structure, so the forward unit fails and
	// rolls back without committing.
	fwdTx := NewMockTx(f.repo.ctrl)
	f.repo.EXPECT().Begin(ctx).Return(fwdTx, nil)
	fwdTx.EXPECT().GetStudentFeeForUpdate(ctx, fee.ID).DoAndReturn(
		func(context.Context, uuid.UUID) (*StudentFee, error) {
			copied := *fee
			return &copied, nil
		})
	f.structures.EXPECT().Get(ctx, fs1.ID).Return(fs1, nil)
	f.terms.EXPECT().Term(ctx, term1.ID).Return(term1, nil)
	f.terms.EXPECT().NextTerm(ctx, term1).Return(term2, nil)
	f.structures.EXPECT().ActiveFor(ctx, gradeID, term2.ID, term2.AcademicYearID).
		Return(nil, feestructure.ErrNotFound)
	fwdTx.EXPECT().Rollback().Return(nil)

	result, err := f.svc.RecordPayment(ctx, RecordPaymentParams{
		StudentFeeID: fee.ID,
		Amount:       120_000,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoFeeStructure)

	// The payment itself committed before the forward started.
	require.NotNil(t, result)
	assert.Equal(t, int64(120_000), result.Fee.AmountPaid)
	assert.Nil(t, result.Overpayment)
}

func TestCreateFeeForStudent_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gradeID := uuid.New()
	term := termFixture("Term 1", f.now.AddDate(0, -1, 0), f.now.AddDate(0, 2, 0))
	fs := structureFixture(gradeID, term, 100_000)

	st := &student.Student{ID: uuid.New(), AdmissionNumber: "ADM-001", GradeID: gradeID}
	existing := &StudentFee{ID: uuid.New(), StudentID: st.ID, FeeStructureID: fs.ID}

	f.students.EXPECT().GetStudent(ctx, st.ID).Return(st, nil)
	f.structures.EXPECT().ActiveFor(ctx, gradeID, term.ID, term.AcademicYearID).Return(fs, nil)
	f.repo.EXPECT().FindStudentFee(ctx, st.ID, fs.ID).Return(existing, nil)

	fee, created, err := f.svc.CreateFeeForStudent(ctx, st.ID, term.AcademicYearID, term.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, fee.ID)
}

func TestCreateFeeForStudent_CreatesUnpaidEntry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gradeID := uuid.New()
	term := termFixture("Term 1", f.now.AddDate(0, -1, 0), f.now.AddDate(0, 2, 0))
	fs := structureFixture(gradeID, term, 120_000)

	st := &student.Student{ID: uuid.New(), AdmissionNumber: "ADM-002", GradeID: gradeID}

	f.students.EXPECT().GetStudent(ctx, st.ID).Return(st, nil)
	f.structures.EXPECT().ActiveFor(ctx, gradeID, term.ID, term.AcademicYearID).Return(fs, nil)
	f.repo.EXPECT().FindStudentFee(ctx, st.ID, fs.ID).Return(nil, ErrNotFound)
	f.repo.EXPECT().CreateStudentFee(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, sf *StudentFee) error {
			sf.ID = uuid.New()
			return nil
		})

	fee, created, err := f.svc.CreateFeeForStudent(ctx, st.ID, term.AcademicYearID, term.ID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(0), fee.AmountPaid)
	assert.Equal(t, int64(120_000), fee.Balance)
	assert.Equal(t, StatusUnpaid, fee.PaymentStatus)
}

func TestCreateFeeForStudent_NoFeeStructure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gradeID := uuid.New()
	term := termFixture("Term 1", f.now.AddDate(0, -1, 0), f.now.AddDate(0, 2, 0))
	st := &student.Student{ID: uuid.New(), GradeID: gradeID}

	f.students.EXPECT().GetStudent(ctx, st.ID).Return(st, nil)
	f.structures.EXPECT().ActiveFor(ctx, gradeID, term.ID, term.AcademicYearID).
		Return(nil, feestructure.ErrNotFound)

	_, _, err := f.svc.CreateFeeForStudent(ctx, st.ID, term.AcademicYearID, term.ID)
	assert.ErrorIs(t, err, ErrNoFeeStructure)
}

func TestCreateFeeForStudent_DuplicateRaceReturnsWinner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gradeID := uuid.New()
	term := termFixture("Term 1", f.now.AddDate(0, -1, 0), f.now.AddDate(0, 2, 0))
	fs := structureFixture(gradeID, term, 100_000)

	st := &student.Student{ID: uuid.New(), GradeID: gradeID}
	winner := &StudentFee{ID: uuid.New(), StudentID: st.ID, FeeStructureID: fs.ID}

	f.students.EXPECT().GetStudent(ctx, st.ID).Return(st, nil)
	f.structures.EXPECT().ActiveFor(ctx, gradeID, term.ID, term.AcademicYearID).Return(fs, nil)
	f.repo.EXPECT().FindStudentFee(ctx, st.ID, fs.ID).Return(nil, ErrNotFound)
	f.repo.EXPECT().CreateStudentFee(ctx, gomock.Any()).Return(ErrDuplicate)
	f.repo.EXPECT().FindStudentFee(ctx, st.ID, fs.ID).Return(winner, nil)

	fee, created, err := f.svc.CreateFeeForStudent(ctx, st.ID, term.AcademicYearID, term.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, winner.ID, fee.ID)
}

func TestBulkCreateFeesForCurrentTerm_PartialFailuresDoNotAbort(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gradeID := uuid.New()
	term := termFixture("Term 1", f.now.AddDate(0, -1, 0), f.now.AddDate(0, 2, 0))
	fs := structureFixture(gradeID, term, 100_000)

	fresh := &student.Student{ID: uuid.New(), AdmissionNumber: "ADM-101", GradeID: gradeID}
	existing := &student.Student{ID: uuid.New(), AdmissionNumber: "ADM-102", GradeID: gradeID}
	orphanGrade := uuid.New()
	orphan := &student.Student{ID: uuid.New(), AdmissionNumber: "ADM-103", GradeID: orphanGrade}
	broken := &student.Student{ID: uuid.New(), AdmissionNumber: "ADM-104", GradeID: gradeID}

	f.terms.EXPECT().CurrentTerm(ctx).Return(term, nil)
	f.terms.EXPECT().ValidateTermForFeeAssignment(term).Return(academics.ValidationResult{IsValid: true})
	f.students.EXPECT().ListActive(ctx, gomock.Nil(), gomock.Nil(), 200).Return(&student.ListPage{
		Students: []*student.Student{fresh, existing, orphan, broken},
	}, nil)

	f.structures.EXPECT().ActiveFor(ctx, gradeID, term.ID, term.AcademicYearID).Return(fs, nil).Times(3)
	f.structures.EXPECT().ActiveFor(ctx, orphanGrade, term.ID, term.AcademicYearID).
		Return(nil, feestructure.ErrNotFound)

	f.repo.EXPECT().FindStudentFee(ctx, fresh.ID, fs.ID).Return(nil, ErrNotFound)
	f.repo.EXPECT().CreateStudentFee(ctx, gomock.Any()).Return(nil)
	f.repo.EXPECT().FindStudentFee(ctx, existing.ID, fs.ID).Return(&StudentFee{ID: uuid.New()}, nil)
	f.repo.EXPECT().FindStudentFee(ctx, broken.ID, fs.ID).Return(nil, fmt.Errorf("connection reset"))

	result, err := f.svc.BulkCreateFeesForCurrentTerm(ctx, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.AlreadyExisted)
	assert.Equal(t, 1, result.NoFeeStructure)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "ADM-104")
}

func TestBulkCreateFeesForTerm_InvalidTermRejected(t *testing.T) {
	f := newFixture(t)

	term := termFixture("Broken", f.now.AddDate(0, 2, 0), f.now.AddDate(0, -1, 0))

	f.terms.EXPECT().ValidateTermForFeeAssignment(term).Return(academics.ValidationResult{
		IsValid: false,
		Errors:  []string{"term start date must be before its end date"},
	})

	_, err := f.svc.BulkCreateFeesForTerm(context.Background(), term, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not usable for fee assignment")
}

func TestBulkCreateFeesForCurrentTerm_NoCurrentTerm(t *testing.T) {
	f := newFixture(t)

	f.terms.EXPECT().CurrentTerm(gomock.Any()).Return(nil, academics.ErrNotFound)

	_, err := f.svc.BulkCreateFeesForCurrentTerm(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no current term")
}

func TestPreviewFeeCreation_GroupsByGrade(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gradeA := uuid.New()
	gradeB := uuid.New()
	term := termFixture("Term 1", f.now.AddDate(0, -1, 0), f.now.AddDate(0, 2, 0))
	fsA := structureFixture(gradeA, term, 100_000)

	s1 := &student.Student{ID: uuid.New(), GradeID: gradeA}
	s2 := &student.Student{ID: uuid.New(), GradeID: gradeA}
	s3 := &student.Student{ID: uuid.New(), GradeID: gradeB}

	f.terms.EXPECT().CurrentTerm(ctx).Return(term, nil)
	f.students.EXPECT().ListActive(ctx, gomock.Nil(), gomock.Nil(), 200).Return(&student.ListPage{
		Students: []*student.Student{s1, s2, s3},
	}, nil)

	f.structures.EXPECT().ActiveFor(ctx, gradeA, term.ID, term.AcademicYearID).Return(fsA, nil).Times(2)
	f.structures.EXPECT().ActiveFor(ctx, gradeB, term.ID, term.AcademicYearID).
		Return(nil, feestructure.ErrNotFound)

	f.repo.EXPECT().FindStudentFee(ctx, s1.ID, fsA.ID).Return(nil, ErrNotFound)
	f.repo.EXPECT().FindStudentFee(ctx, s2.ID, fsA.ID).Return(&StudentFee{ID: uuid.New()}, nil)

	preview, err := f.svc.PreviewFeeCreation(ctx, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, preview.WouldCreate)
	assert.Equal(t, 1, preview.AlreadyExists)
	assert.Equal(t, 1, preview.NoFeeStructure)

	require.Contains(t, preview.Groups, gradeA)
	assert.Equal(t, 1, preview.Groups[gradeA].WouldCreate)
	assert.Equal(t, 1, preview.Groups[gradeA].AlreadyExists)
	require.Contains(t, preview.Groups, gradeB)
	assert.Equal(t, 1, preview.Groups[gradeB].NoFeeStructure)
}

func TestGeneratePaymentStatement_Aggregates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	studentID := uuid.New()

	entries := []*HistoryEntry{
		{
			Fee:      &StudentFee{AmountPaid: 100_000, Balance: 0},
			TotalFee: 100_000,
		},
		{
			Fee:      &StudentFee{AmountPaid: 40_000, Balance: 60_000},
			TotalFee: 100_000,
		},
		{
			Fee:          &StudentFee{AmountPaid: 0, Balance: 0},
			TotalFee:     0,
			HasStructure: false,
		},
	}

	f.repo.EXPECT().ListHistory(ctx, studentID, gomock.Nil()).Return(entries, nil)

	statement, err := f.svc.GeneratePaymentStatement(ctx, studentID, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, statement.Entries)
	assert.Equal(t, int64(200_000), statement.TotalCharged)
	assert.Equal(t, int64(140_000), statement.TotalPaid)
	assert.Equal(t, int64(60_000), statement.TotalOutstanding)
}

func TestGeneratePaymentStatement_NoEntries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	studentID := uuid.New()

	f.repo.EXPECT().ListHistory(ctx, studentID, gomock.Nil()).Return(nil, nil)

	statement, err := f.svc.GeneratePaymentStatement(ctx, studentID, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, statement.Entries)
	assert.Equal(t, int64(0), statement.TotalCharged)
	assert.Equal(t, int64(0), statement.TotalPaid)
	assert.Equal(t, int64(0), statement.TotalOutstanding)
}

func TestProcessOverpayment_NoOverpaymentIsNoOp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gradeID := uuid.New()
	term := termFixture("Term 1", f.now.AddDate(0, -1, 0), f.now.AddDate(0, 2, 0))
	fs := structureFixture(gradeID, term, 100_000)

	fee := &StudentFee{
		ID:             uuid.New(),
		FeeStructureID: fs.ID,
		TermID:         term.ID,
		GradeID:        gradeID,
		AmountPaid:     60_000,
		Balance:        40_000,
		PaymentStatus:  StatusPartial,
	}

	tx := NewMockTx(f.repo.ctrl)
	f.repo.EXPECT().Begin(ctx).Return(tx, nil)
	tx.EXPECT().GetStudentFeeForUpdate(ctx, fee.ID).Return(fee, nil)
	f.structures.EXPECT().Get(ctx, fs.ID).Return(fs, nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	result, err := f.svc.ProcessOverpayment(ctx, fee.ID)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, int64(0), result.Amount)
	assert.Empty(t, result.Type)
}

func TestProcessOverpayment_ReferenceCollisionRetriesOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gradeID := uuid.New()
	term := termFixture("Term 3", f.now.AddDate(0, -2, 0), f.now.AddDate(0, 1, 0))
	fs := structureFixture(gradeID, term, 100_000)

	fee := &StudentFee{
		ID:             uuid.New(),
		FeeStructureID: fs.ID,
		TermID:         term.ID,
		GradeID:        gradeID,
		AmountPaid:     110_000,
	}

	tx := NewMockTx(f.repo.ctrl)
	f.repo.EXPECT().Begin(ctx).Return(tx, nil)
	tx.EXPECT().GetStudentFeeForUpdate(ctx, fee.ID).Return(fee, nil)
	f.structures.EXPECT().Get(ctx, fs.ID).Return(fs, nil)
	f.terms.EXPECT().Term(ctx, term.ID).Return(term, nil)
	f.terms.EXPECT().NextTerm(ctx, term).Return(nil, academics.ErrNotFound)
	tx.EXPECT().UpdateStudentFee(ctx, gomock.Any()).Return(nil)

	var refs []string

	tx.EXPECT().CreateTransaction(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, pt *PaymentTransaction) error {
			refs = append(refs, pt.ReferenceNumber)
			if len(refs) == 1 {
				return ErrDuplicateReference
			}
			return nil
		}).Times(2)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	result, err := f.svc.ProcessOverpayment(ctx, fee.ID)
	require.NoError(t, err)
	assert.True(t, result.Success)

	require.Len(t, refs, 2)
	for _, ref := range refs {
		assert.Regexp(t, `^CR-2026-\d{5}$`, ref)
	}
}

func TestRecordPayment_BeginFailure(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Begin(gomock.Any()).Return(nil, errors.New("pool exhausted"))

	_, err := f.svc.RecordPayment(context.Background(), RecordPaymentParams{
		StudentFeeID: uuid.New(),
		Amount:       10_000,
	})
	require.Error(t, err)
}
