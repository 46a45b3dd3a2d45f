package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bursarhq/bursar/internal/academics"
	"github.com/bursarhq/bursar/internal/feestructure"
	"github.com/bursarhq/bursar/internal/student"
)

// maxForwardHops caps the balance-forward chain so a misconfigured fee
// structure (total fee of zero) cannot loop across terms forever.
const maxForwardHops = 50

const defaultBatchSize = 200

//go:generate mockgen -source=service.go -destination=service_mock.go -package=ledger
type Repository interface {
	GetStudentFee(ctx context.Context, id uuid.UUID) (*StudentFee, error)
	FindStudentFee(ctx context.Context, studentID, feeStructureID uuid.UUID) (*StudentFee, error)
	CreateStudentFee(ctx context.Context, fee *StudentFee) error

	ListHistory(ctx context.Context, studentID uuid.UUID, academicYearID *uuid.UUID) ([]*HistoryEntry, error)

	// Begin opens the transactional view used for payment application and
	// balance forwarding. Implementations must lock ledger rows read through
	// it for the duration of the transaction.
	Begin(ctx context.Context) (Tx, error)
}

// Tx is one atomic payment or balance-forward unit. Either every mutation
// made through it commits, or none does.
type Tx interface {
	GetStudentFeeForUpdate(ctx context.Context, id uuid.UUID) (*StudentFee, error)
	FindStudentFeeForUpdate(ctx context.Context, studentID, feeStructureID uuid.UUID) (*StudentFee, error)
	CreateStudentFee(ctx context.Context, fee *StudentFee) error
	UpdateStudentFee(ctx context.Context, fee *StudentFee) error
	CreateTransaction(ctx context.Context, tx *PaymentTransaction) error
	Commit() error
	Rollback() error
}

// TermSequencer is the slice of the academics service the ledger consumes.
type TermSequencer interface {
	CurrentTerm(ctx context.Context) (*academics.Term, error)
	Term(ctx context.Context, id uuid.UUID) (*academics.Term, error)
	NextTerm(ctx context.Context, term *academics.Term) (*academics.Term, error)
	ValidateTermForFeeAssignment(term *academics.Term) academics.ValidationResult
}

// StructureCatalog resolves fee structures.
type StructureCatalog interface {
	Get(ctx context.Context, id uuid.UUID) (*feestructure.FeeStructure, error)
	ActiveFor(ctx context.Context, gradeID, termID, academicYearID uuid.UUID) (*feestructure.FeeStructure, error)
}

// StudentDirectory provides the student records fee generation iterates.
type StudentDirectory interface {
	GetStudent(ctx context.Context, id uuid.UUID) (*student.Student, error)
	ListActive(ctx context.Context, gradeID *uuid.UUID, after *uuid.UUID, limit int) (*student.ListPage, error)
}

// Service owns the student fee ledger: fee generation, payment application,
// overpayment carry-forward and statement assembly.
type Service struct {
	repo       Repository
	terms      TermSequencer
	structures StructureCatalog
	students   StudentDirectory

	now       func() time.Time
	actor     func(ctx context.Context) *uuid.UUID
	batchSize int
}

type Option func(*Service)

// WithNow overrides the clock.
func WithNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithActorResolver sets how the acting user's id is read from the request
// context for processed_by fields.
func WithActorResolver(fn func(ctx context.Context) *uuid.UUID) Option {
	return func(s *Service) { s.actor = fn }
}

// WithBatchSize overrides the student page size used by bulk generation.
func WithBatchSize(n int) Option {
	return func(s *Service) { s.batchSize = n }
}

func NewService(repo Repository, terms TermSequencer, structures StructureCatalog, students StudentDirectory, opts ...Option) *Service {
	s := &Service{
		repo:       repo,
		terms:      terms,
		structures: structures,
		students:   students,
		now:        time.Now,
		actor:      func(context.Context) *uuid.UUID { return nil },
		batchSize:  defaultBatchSize,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*StudentFee, error) {
	return s.repo.GetStudentFee(ctx, id)
}

// CreateFeeForStudent ensures a ledger entry exists for the student in the
// given term. Idempotent: an existing entry is returned unchanged with
// created=false. Returns ErrNoFeeStructure when the student's grade has no
// active structure for the term.
func (s *Service) CreateFeeForStudent(ctx context.Context, studentID, academicYearID, termID uuid.UUID) (*StudentFee, bool, error) {
	st, err := s.students.GetStudent(ctx, studentID)
	if err != nil {
		return nil, false, fmt.Errorf("looking up student: %w", err)
	}

	return s.createForStudent(ctx, st, academicYearID, termID)
}

func (s *Service) createForStudent(ctx context.Context, st *student.Student, academicYearID, termID uuid.UUID) (*StudentFee, bool, error) {
	fs, err := s.structures.ActiveFor(ctx, st.GradeID, termID, academicYearID)
	if err != nil {
		if errors.Is(err, feestructure.ErrNotFound) {
			return nil, false, ErrNoFeeStructure
		}

		return nil, false, fmt.Errorf("resolving fee structure: %w", err)
	}

	existing, err := s.repo.FindStudentFee(ctx, st.ID, fs.ID)
	if err == nil {
		return existing, false, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, false, fmt.Errorf("checking for existing ledger entry: %w", err)
	}

	fee := &StudentFee{
		StudentID:      st.ID,
		FeeStructureID: fs.ID,
		AcademicYearID: academicYearID,
		TermID:         termID,
		GradeID:        st.GradeID,
		AmountPaid:     0,
		PaymentStatus:  StatusUnpaid,
	}
	fee.Recalculate(fs.TotalFee)

	if err := s.repo.CreateStudentFee(ctx, fee); err != nil {
		if errors.Is(err, ErrDuplicate) {
			// Lost a race with a concurrent generation run; the winner's
			// entry is the canonical one.
			existing, ferr := s.repo.FindStudentFee(ctx, st.ID, fs.ID)
			if ferr != nil {
				return nil, false, fmt.Errorf("refetching ledger entry after duplicate: %w", ferr)
			}

			return existing, false, nil
		}

		return nil, false, fmt.Errorf("creating ledger entry: %w", err)
	}

	return fee, true, nil
}

// BulkResult summarizes one bulk fee generation run.
type BulkResult struct {
	TermID         uuid.UUID `json:"term_id"`
	TermName       string    `json:"term_name"`
	Created        int       `json:"created"`
	AlreadyExisted int       `json:"already_existed"`
	NoFeeStructure int       `json:"no_fee_structure"`
	Errors         []string  `json:"errors,omitempty"`
	Warnings       []string  `json:"warnings,omitempty"`
}

// BulkCreateFeesForCurrentTerm generates ledger entries for every active
// student (optionally one grade) for the term running today.
func (s *Service) BulkCreateFeesForCurrentTerm(ctx context.Context, gradeID *uuid.UUID) (*BulkResult, error) {
	term, err := s.terms.CurrentTerm(ctx)
	if err != nil {
		if errors.Is(err, academics.ErrNotFound) {
			return nil, fmt.Errorf("no current term; choose a term explicitly")
		}

		return nil, fmt.Errorf("resolving current term: %w", err)
	}

	return s.BulkCreateFeesForTerm(ctx, term, gradeID)
}

// BulkCreateFeesForTerm generates ledger entries against an explicitly
// chosen term. One student's failure never aborts the batch; it is counted
// and the run continues.
func (s *Service) BulkCreateFeesForTerm(ctx context.Context, term *academics.Term, gradeID *uuid.UUID) (*BulkResult, error) {
	check := s.terms.ValidateTermForFeeAssignment(term)
	if !check.IsValid {
		return nil, fmt.Errorf("term %q is not usable for fee assignment: %s", term.Name, strings.Join(check.Errors, "; "))
	}

	result := &BulkResult{
		TermID:   term.ID,
		TermName: term.Name,
		Warnings: check.Warnings,
	}

	err := s.eachActiveStudent(ctx, gradeID, func(st *student.Student) {
		_, created, err := s.createForStudent(ctx, st, term.AcademicYearID, term.ID)
		switch {
		case errors.Is(err, ErrNoFeeStructure):
			result.NoFeeStructure++
		case err != nil:
			result.Errors = append(result.Errors, fmt.Sprintf("student %s: %v", st.AdmissionNumber, err))
		case created:
			result.Created++
		default:
			result.AlreadyExisted++
		}
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// PreviewGroup is the per-grade breakdown of a dry run.
type PreviewGroup struct {
	GradeID        uuid.UUID `json:"grade_id"`
	WouldCreate    int       `json:"would_create"`
	AlreadyExists  int       `json:"already_exists"`
	NoFeeStructure int       `json:"no_fee_structure"`
}

// Preview is the read-only answer to "what would bulk generation do".
type Preview struct {
	TermID         uuid.UUID                   `json:"term_id"`
	TermName       string                      `json:"term_name"`
	Groups         map[uuid.UUID]*PreviewGroup `json:"groups"`
	WouldCreate    int                         `json:"would_create"`
	AlreadyExists  int                         `json:"already_exists"`
	NoFeeStructure int                         `json:"no_fee_structure"`
}

// PreviewFeeCreation dry-runs bulk generation for the current term without
// writing anything.
func (s *Service) PreviewFeeCreation(ctx context.Context, gradeID *uuid.UUID) (*Preview, error) {
	term, err := s.terms.CurrentTerm(ctx)
	if err != nil {
		if errors.Is(err, academics.ErrNotFound) {
			return nil, fmt.Errorf("no current term; choose a term explicitly")
		}

		return nil, fmt.Errorf("resolving current term: %w", err)
	}

	preview := &Preview{
		TermID:   term.ID,
		TermName: term.Name,
		Groups:   make(map[uuid.UUID]*PreviewGroup),
	}

	err = s.eachActiveStudent(ctx, gradeID, func(st *student.Student) {
		group, ok := preview.Groups[st.GradeID]
		if !ok {
			group = &PreviewGroup{GradeID: st.GradeID}
			preview.Groups[st.GradeID] = group
		}

		fs, err := s.structures.ActiveFor(ctx, st.GradeID, term.ID, term.AcademicYearID)
		if err != nil {
			group.NoFeeStructure++
			preview.NoFeeStructure++

			return
		}

		_, err = s.repo.FindStudentFee(ctx, st.ID, fs.ID)
		if err == nil {
			group.AlreadyExists++
			preview.AlreadyExists++

			return
		}

		group.WouldCreate++
		preview.WouldCreate++
	})
	if err != nil {
		return nil, err
	}

	return preview, nil
}

// eachActiveStudent walks active students in bounded pages.
func (s *Service) eachActiveStudent(ctx context.Context, gradeID *uuid.UUID, fn func(*student.Student)) error {
	var after *uuid.UUID

	for {
		page, err := s.students.ListActive(ctx, gradeID, after, s.batchSize)
		if err != nil {
			return fmt.Errorf("listing active students: %w", err)
		}

		for _, st := range page.Students {
			fn(st)
		}

		if page.NextAfter == nil {
			return nil
		}

		after = page.NextAfter
	}
}

// RecordPaymentParams describes one incoming payment.
type RecordPaymentParams struct {
	StudentFeeID      uuid.UUID
	Amount            int64 // cents
	Method            string
	ExternalReference string
	ReceiptNumber     string
}

// PaymentResult reports an applied payment and, when the payment overshot
// the term's total, the outcome of the carry-forward that followed.
type PaymentResult struct {
	Fee         *StudentFee         `json:"fee"`
	Transaction *PaymentTransaction `json:"transaction"`
	Overpayment *OverpaymentResult  `json:"overpayment,omitempty"`
}

// RecordPayment applies a payment to a ledger entry inside one atomic unit,
// then runs the balance-forward chain as a second atomic unit when the entry
// is overpaid. If the forward fails the payment itself stays committed and
// the error is returned alongside the partial result.
func (s *Service) RecordPayment(ctx context.Context, params RecordPaymentParams) (*PaymentResult, error) {
	if params.Amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning payment transaction: %w", err)
	}
	defer tx.Rollback()

	fee, err := tx.GetStudentFeeForUpdate(ctx, params.StudentFeeID)
	if err != nil {
		return nil, fmt.Errorf("locking ledger entry: %w", err)
	}

	fs, err := s.structures.Get(ctx, fee.FeeStructureID)
	if err != nil {
		return nil, fmt.Errorf("resolving fee structure: %w", err)
	}

	now := s.now()

	fee.AmountPaid += params.Amount
	fee.Recalculate(fs.TotalFee)
	fee.PaymentDate = &now

	if params.Method != "" {
		fee.PaymentMethod = &params.Method
	}

	receipt := params.ReceiptNumber
	if receipt == "" {
		receipt = s.referenceNumber("RCP")
	}
	fee.ReceiptNumber = &receipt

	if err := tx.UpdateStudentFee(ctx, fee); err != nil {
		return nil, fmt.Errorf("updating ledger entry: %w", err)
	}

	payment := &PaymentTransaction{
		StudentFeeID:    fee.ID,
		Amount:          params.Amount,
		Type:            TxPayment,
		ReferenceNumber: s.referenceNumber("PAY"),
		PaymentMethod:   fee.PaymentMethod,
		Status:          TxStatusCompleted,
		ProcessedBy:     s.actor(ctx),
		TransactionDate: now,
		Metadata: map[string]any{
			"receipt_number": receipt,
		},
	}
	if params.ExternalReference != "" {
		payment.ExternalReference = &params.ExternalReference
	}

	if err := s.createTransaction(ctx, tx, payment); err != nil {
		return nil, fmt.Errorf("recording payment transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing payment: %w", err)
	}

	result := &PaymentResult{Fee: fee, Transaction: payment}

	if fs.TotalFee < fee.AmountPaid {
		forward, err := s.ProcessOverpayment(ctx, fee.ID)
		if err != nil {
			// The payment is committed; only the carry-forward failed.
			return result, fmt.Errorf("payment recorded but balance forward failed: %w", err)
		}

		result.Overpayment = forward
		result.Fee = forward.Source
	}

	return result, nil
}

// OverpaymentType distinguishes the two terminal outcomes of a forward.
type OverpaymentType string

const (
	ForwardBalance OverpaymentType = "balance_forward"
	CreditBalance  OverpaymentType = "credit_balance"
)

// OverpaymentResult is the outcome of one carry-forward run.
type OverpaymentResult struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	Type     OverpaymentType `json:"type,omitempty"`
	Amount   int64           `json:"amount"`
	Hops     int             `json:"hops"`
	NextTerm *academics.Term `json:"next_term,omitempty"`
	// Source is the originating ledger entry, as left after the run.
	Source *StudentFee `json:"source"`
}

// ProcessOverpayment moves everything paid beyond the entry's total to the
// next applicable term, chaining across terms when the carried amount
// overshoots again, or parks it as a standing credit when no next term
// exists. The whole chain is one atomic unit.
//
// Post-condition for every ledger entry touched: balance equals
// max(0, total - paid) and the payment status agrees with it.
func (s *Service) ProcessOverpayment(ctx context.Context, studentFeeID uuid.UUID) (*OverpaymentResult, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning balance forward: %w", err)
	}
	defer tx.Rollback()

	source, err := tx.GetStudentFeeForUpdate(ctx, studentFeeID)
	if err != nil {
		return nil, fmt.Errorf("locking ledger entry: %w", err)
	}

	sourceFS, err := s.structures.Get(ctx, source.FeeStructureID)
	if err != nil {
		return nil, fmt.Errorf("resolving fee structure: %w", err)
	}

	result := &OverpaymentResult{Source: source}

	initialOver := source.AmountPaid - sourceFS.TotalFee
	if initialOver <= 0 {
		result.Success = true
		result.Message = "no overpayment to carry forward"

		return result, tx.Commit()
	}

	result.Amount = initialOver

	current := source
	currentTotal := sourceFS.TotalFee

	for hop := 0; ; hop++ {
		over := current.AmountPaid - currentTotal
		if over <= 0 {
			break
		}

		if hop >= maxForwardHops {
			return nil, fmt.Errorf("balance forward exceeded %d hops; check fee structure totals", maxForwardHops)
		}

		currentTerm, err := s.terms.Term(ctx, current.TermID)
		if err != nil {
			return nil, fmt.Errorf("resolving term for ledger entry: %w", err)
		}

		next, err := s.terms.NextTerm(ctx, currentTerm)
		if err != nil {
			if !errors.Is(err, academics.ErrNotFound) {
				return nil, fmt.Errorf("resolving next term: %w", err)
			}

			// Terminal: no future term to absorb the excess. The credit
			// stays parked on this entry, recorded both as a note and as a
			// structured transaction so it can be found later.
			if err := s.parkCredit(ctx, tx, current, over, currentTerm); err != nil {
				return nil, err
			}

			if hop == 0 {
				result.Type = CreditBalance
			}

			result.Success = true
			result.Hops = hop
			result.Message = fmt.Sprintf("no term after %q; %s held as credit balance", currentTerm.Name, formatAmount(over))

			return result, tx.Commit()
		}

		target, targetTotal, err := s.forwardOnce(ctx, tx, current, currentTotal, over, currentTerm, next)
		if err != nil {
			return nil, err
		}

		if hop == 0 {
			result.Type = ForwardBalance
			result.NextTerm = next
		}

		result.Hops = hop + 1

		current = target
		currentTotal = targetTotal
	}

	result.Success = true
	if result.Message == "" {
		result.Message = fmt.Sprintf("%s carried forward across %d term(s)", formatAmount(initialOver), result.Hops)
	}

	return result, tx.Commit()
}

// forwardOnce moves one overpayment from the current entry to the next
// term's entry, creating the target entry if the student has none yet.
func (s *Service) forwardOnce(ctx context.Context, tx Tx, current *StudentFee, currentTotal, over int64, currentTerm, next *academics.Term) (*StudentFee, int64, error) {
	fs, err := s.structures.ActiveFor(ctx, current.GradeID, next.ID, next.AcademicYearID)
	if err != nil {
		if errors.Is(err, feestructure.ErrNotFound) {
			return nil, 0, fmt.Errorf("%w: term %q", ErrNoFeeStructure, next.Name)
		}

		return nil, 0, fmt.Errorf("resolving fee structure for next term: %w", err)
	}

	now := s.now()

	// Settle the source at its total; the excess lives on the target now.
	current.AmountPaid = currentTotal
	current.Recalculate(currentTotal)
	current.Notes = appendNote(current.Notes, now,
		fmt.Sprintf("Carried %s forward to %s", formatAmount(over), next.Name))

	if err := tx.UpdateStudentFee(ctx, current); err != nil {
		return nil, 0, fmt.Errorf("settling source entry: %w", err)
	}

	target, err := tx.FindStudentFeeForUpdate(ctx, current.StudentID, fs.ID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, 0, fmt.Errorf("locking target entry: %w", err)
		}

		target = &StudentFee{
			StudentID:      current.StudentID,
			FeeStructureID: fs.ID,
			AcademicYearID: next.AcademicYearID,
			TermID:         next.ID,
			GradeID:        current.GradeID,
		}
		target.Recalculate(fs.TotalFee)

		if err := tx.CreateStudentFee(ctx, target); err != nil {
			return nil, 0, fmt.Errorf("creating target entry: %w", err)
		}
	}

	target.AmountPaid += over
	target.Recalculate(fs.TotalFee)
	target.Notes = appendNote(target.Notes, now,
		fmt.Sprintf("Received %s carried forward from %s", formatAmount(over), currentTerm.Name))

	if err := tx.UpdateStudentFee(ctx, target); err != nil {
		return nil, 0, fmt.Errorf("applying forward to target entry: %w", err)
	}

	forward := &PaymentTransaction{
		StudentFeeID:    target.ID,
		Amount:          over,
		Type:            TxBalanceForward,
		ReferenceNumber: s.referenceNumber("BF"),
		Status:          TxStatusCompleted,
		ProcessedBy:     s.actor(ctx),
		TransactionDate: now,
		Metadata: map[string]any{
			"source_term":  currentTerm.Name,
			"target_term":  next.Name,
			"forwarded_at": now.Format(time.RFC3339),
		},
	}

	if err := s.createTransaction(ctx, tx, forward); err != nil {
		return nil, 0, fmt.Errorf("recording balance forward transaction: %w", err)
	}

	return target, fs.TotalFee, nil
}

// parkCredit records an overpayment that has nowhere to go as a standing
// credit on the entry itself.
func (s *Service) parkCredit(ctx context.Context, tx Tx, fee *StudentFee, over int64, term *academics.Term) error {
	now := s.now()

	fee.Notes = appendNote(fee.Notes, now,
		fmt.Sprintf("Credit balance of %s held; no term after %s", formatAmount(over), term.Name))

	if err := tx.UpdateStudentFee(ctx, fee); err != nil {
		return fmt.Errorf("annotating credit balance: %w", err)
	}

	credit := &PaymentTransaction{
		StudentFeeID:    fee.ID,
		Amount:          over,
		Type:            TxOverpayment,
		ReferenceNumber: s.referenceNumber("CR"),
		Status:          TxStatusCompleted,
		ProcessedBy:     s.actor(ctx),
		TransactionDate: now,
		Metadata: map[string]any{
			"credit_balance": true,
			"source_term":    term.Name,
		},
	}

	if err := s.createTransaction(ctx, tx, credit); err != nil {
		return fmt.Errorf("recording credit balance transaction: %w", err)
	}

	return nil
}

// createTransaction inserts the audit record, regenerating the reference
// number once if the random suffix collides.
func (s *Service) createTransaction(ctx context.Context, tx Tx, pt *PaymentTransaction) error {
	err := tx.CreateTransaction(ctx, pt)
	if err == nil {
		return nil
	}

	if !errors.Is(err, ErrDuplicateReference) {
		return err
	}

	prefix, _, _ := strings.Cut(pt.ReferenceNumber, "-")
	pt.ReferenceNumber = s.referenceNumber(prefix)

	return tx.CreateTransaction(ctx, pt)
}

// HistoryEntry is one term's ledger entry with its related records loaded.
// HasStructure is false when the fee structure was deleted out from under
// the entry; display code shows "Unknown" rather than failing.
type HistoryEntry struct {
	Fee              *StudentFee           `json:"fee"`
	TermName         string                `json:"term_name"`
	AcademicYearName string                `json:"academic_year_name"`
	TotalFee         int64                 `json:"total_fee"`
	HasStructure     bool                  `json:"has_structure"`
	Transactions     []*PaymentTransaction `json:"transactions"`
}

// GetPaymentHistory returns the student's ledger entries newest first,
// optionally limited to one academic year.
func (s *Service) GetPaymentHistory(ctx context.Context, studentID uuid.UUID, academicYearID *uuid.UUID) ([]*HistoryEntry, error) {
	return s.repo.ListHistory(ctx, studentID, academicYearID)
}

// Statement is the aggregate over a student's filtered ledger entries.
type Statement struct {
	StudentID        uuid.UUID `json:"student_id"`
	Entries          int       `json:"entries"`
	TotalCharged     int64     `json:"total_charged"`
	TotalPaid        int64     `json:"total_paid"`
	TotalOutstanding int64     `json:"total_outstanding"`
}

// GeneratePaymentStatement sums the student's ledger entries. A student with
// no entries yields an all-zero statement.
func (s *Service) GeneratePaymentStatement(ctx context.Context, studentID uuid.UUID, academicYearID *uuid.UUID) (*Statement, error) {
	entries, err := s.repo.ListHistory(ctx, studentID, academicYearID)
	if err != nil {
		return nil, fmt.Errorf("loading payment history: %w", err)
	}

	statement := &Statement{StudentID: studentID, Entries: len(entries)}

	for _, e := range entries {
		statement.TotalCharged += e.TotalFee
		statement.TotalPaid += e.Fee.AmountPaid
		statement.TotalOutstanding += e.Fee.Balance
	}

	return statement, nil
}

func (s *Service) referenceNumber(prefix string) string {
	return fmt.Sprintf("%s-%d-%05d", prefix, s.now().Year(), rand.IntN(100000))
}

func appendNote(notes string, at time.Time, note string) string {
	line := fmt.Sprintf("[%s] %s", at.Format(time.DateOnly), note)
	if notes == "" {
		return line
	}

	return notes + "\n" + line
}

func formatAmount(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
