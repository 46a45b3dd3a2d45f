package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a ledger entry or transaction does not exist.
	ErrNotFound = errors.New("ledger: not found")
	// ErrNoFeeStructure is returned when no active fee structure covers the
	// student's grade for the target term. Bulk callers count it as skipped.
	ErrNoFeeStructure = errors.New("ledger: no active fee structure for grade and term")
	// ErrDuplicate is returned by stores when an insert collides with the
	// (student, fee structure) uniqueness constraint.
	ErrDuplicate = errors.New("ledger: student fee already exists")
	// ErrDuplicateReference is returned when a generated transaction
	// reference number collides.
	ErrDuplicateReference = errors.New("ledger: duplicate transaction reference")
)

// PaymentStatus is derived from amount paid versus the structure's total.
type PaymentStatus string

const (
	StatusUnpaid  PaymentStatus = "unpaid"
	StatusPartial PaymentStatus = "partial"
	StatusPaid    PaymentStatus = "paid"
)

// TransactionType classifies a monetary event on a ledger entry.
type TransactionType string

const (
	TxPayment        TransactionType = "payment"
	TxRefund         TransactionType = "refund"
	TxAdjustment     TransactionType = "adjustment"
	TxBalanceForward TransactionType = "balance_forward"
	TxOverpayment    TransactionType = "overpayment"
	TxCreditApplied  TransactionType = "credit_applied"
)

// TransactionStatus is the lifecycle state of a transaction record.
type TransactionStatus string

const (
	TxStatusPending   TransactionStatus = "pending"
	TxStatusCompleted TransactionStatus = "completed"
	TxStatusFailed    TransactionStatus = "failed"
	TxStatusCancelled TransactionStatus = "cancelled"
)

// StudentFee is one student's running balance against one fee structure.
// Financial record: never hard-deleted.
type StudentFee struct {
	ID             uuid.UUID
	StudentID      uuid.UUID
	FeeStructureID uuid.UUID
	AcademicYearID uuid.UUID
	TermID         uuid.UUID
	GradeID        uuid.UUID // denormalized for reporting
	AmountPaid     int64     // cents
	Balance        int64     // cents, floored at 0
	PaymentStatus  PaymentStatus
	PaymentDate    *time.Time
	ReceiptNumber  *string
	PaymentMethod  *string
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// Recalculate restores the ledger invariant against the structure's total:
// balance = max(0, total - paid), status derived from both.
func (f *StudentFee) Recalculate(totalFee int64) {
	f.Balance = totalFee - f.AmountPaid
	if f.Balance < 0 {
		f.Balance = 0
	}

	switch {
	case f.AmountPaid <= 0:
		f.PaymentStatus = StatusUnpaid
	case f.Balance == 0:
		f.PaymentStatus = StatusPaid
	default:
		f.PaymentStatus = StatusPartial
	}
}

// PaymentTransaction is an immutable audit record of one monetary event.
type PaymentTransaction struct {
	ID                uuid.UUID
	StudentFeeID      uuid.UUID
	Amount            int64 // cents
	Type              TransactionType
	ReferenceNumber   string
	ExternalReference *string
	PaymentMethod     *string
	Metadata          map[string]any
	Status            TransactionStatus
	ProcessedBy       *uuid.UUID
	TransactionDate   time.Time
	CreatedAt         time.Time
}
