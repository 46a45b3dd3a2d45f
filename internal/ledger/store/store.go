package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bursarhq/bursar/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectFeeColumns = `
	f.id, f.student_id, f.fee_structure_id, f.academic_year_id, f.term_id, f.grade_id,
	f.amount_paid, f.balance, f.payment_status, f.payment_date, f.receipt_number,
	f.payment_method, f.notes, f.created_at, f.updated_at
`

func scanStudentFee(s scanner) (*ledger.StudentFee, error) {
	var f ledger.StudentFee

	var status string

	if err := s.Scan(
		&f.ID, &f.StudentID, &f.FeeStructureID, &f.AcademicYearID, &f.TermID, &f.GradeID,
		&f.AmountPaid, &f.Balance, &status, &f.PaymentDate, &f.ReceiptNumber,
		&f.PaymentMethod, &f.Notes, &f.CreatedAt, &f.UpdatedAt,
	); err != nil {
		return nil, err
	}

	f.PaymentStatus = ledger.PaymentStatus(status)

	return &f, nil
}

const selectTransactionColumns = `
	t.id, t.student_fee_id, t.amount, t.transaction_type, t.reference_number,
	t.external_reference, t.payment_method, t.metadata, t.status, t.processed_by,
	t.transaction_date, t.created_at
`

func scanTransaction(s scanner) (*ledger.PaymentTransaction, error) {
	var pt ledger.PaymentTransaction

	var (
		txType   string
		txStatus string
		metadata []byte
	)

	if err := s.Scan(
		&pt.ID, &pt.StudentFeeID, &pt.Amount, &txType, &pt.ReferenceNumber,
		&pt.ExternalReference, &pt.PaymentMethod, &metadata, &txStatus, &pt.ProcessedBy,
		&pt.TransactionDate, &pt.CreatedAt,
	); err != nil {
		return nil, err
	}

	pt.Type = ledger.TransactionType(txType)
	pt.Status = ledger.TransactionStatus(txStatus)

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &pt.Metadata); err != nil {
			return nil, fmt.Errorf("decoding transaction metadata: %w", err)
		}
	}

	return &pt, nil
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) GetStudentFee(ctx context.Context, id uuid.UUID) (*ledger.StudentFee, error) {
	query := `SELECT ` + selectFeeColumns + ` FROM student_fees f WHERE f.id = $1`

	fee, err := scanStudentFee(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting student fee: %w", err)
	}

	return fee, nil
}

func (s *Store) FindStudentFee(ctx context.Context, studentID, feeStructureID uuid.UUID) (*ledger.StudentFee, error) {
	query := `SELECT ` + selectFeeColumns + `
		FROM student_fees f
		WHERE f.student_id = $1 AND f.fee_structure_id = $2`

	fee, err := scanStudentFee(s.db.QueryRowContext(ctx, query, studentID, feeStructureID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("finding student fee: %w", err)
	}

	return fee, nil
}

func (s *Store) CreateStudentFee(ctx context.Context, fee *ledger.StudentFee) error {
	return createStudentFee(ctx, s.db, fee)
}

func createStudentFee(ctx context.Context, q querier, fee *ledger.StudentFee) error {
	query := `
		INSERT INTO student_fees (
			student_id, fee_structure_id, academic_year_id, term_id, grade_id,
			amount_paid, balance, payment_status, payment_date, receipt_number,
			payment_method, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at`

	err := q.QueryRowContext(ctx, query,
		fee.StudentID, fee.FeeStructureID, fee.AcademicYearID, fee.TermID, fee.GradeID,
		fee.AmountPaid, fee.Balance, string(fee.PaymentStatus), fee.PaymentDate,
		fee.ReceiptNumber, fee.PaymentMethod, fee.Notes,
	).Scan(&fee.ID, &fee.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ledger.ErrDuplicate
		}

		return fmt.Errorf("inserting student fee: %w", err)
	}

	return nil
}

// ListHistory loads the student's ledger entries newest first, with term,
// year and structure context joined in and each entry's transactions
// attached. Entries whose fee structure was removed still come back, with
// HasStructure false.
func (s *Store) ListHistory(ctx context.Context, studentID uuid.UUID, academicYearID *uuid.UUID) ([]*ledger.HistoryEntry, error) {
	query := `
		SELECT ` + selectFeeColumns + `,
			COALESCE(t.name, 'Unknown') AS term_name,
			COALESCE(y.name, 'Unknown') AS academic_year_name,
			COALESCE(fs.total_fee, 0) AS total_fee,
			fs.id IS NOT NULL AS has_structure
		FROM student_fees f
		LEFT JOIN terms t ON t.id = f.term_id
		LEFT JOIN academic_years y ON y.id = f.academic_year_id
		LEFT JOIN fee_structures fs ON fs.id = f.fee_structure_id
		WHERE f.student_id = $1`

	args := []any{studentID}

	if academicYearID != nil {
		query += ` AND f.academic_year_id = $2`

		args = append(args, *academicYearID)
	}

	query += ` ORDER BY f.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing payment history: %w", err)
	}
	defer rows.Close()

	var entries []*ledger.HistoryEntry

	for rows.Next() {
		var (
			f      ledger.StudentFee
			status string
			entry  ledger.HistoryEntry
		)

		if err := rows.Scan(
			&f.ID, &f.StudentID, &f.FeeStructureID, &f.AcademicYearID, &f.TermID, &f.GradeID,
			&f.AmountPaid, &f.Balance, &status, &f.PaymentDate, &f.ReceiptNumber,
			&f.PaymentMethod, &f.Notes, &f.CreatedAt, &f.UpdatedAt,
			&entry.TermName, &entry.AcademicYearName, &entry.TotalFee, &entry.HasStructure,
		); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}

		f.PaymentStatus = ledger.PaymentStatus(status)
		entry.Fee = &f

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history entries: %w", err)
	}

	for _, entry := range entries {
		txns, err := s.listTransactions(ctx, entry.Fee.ID)
		if err != nil {
			return nil, err
		}

		entry.Transactions = txns
	}

	return entries, nil
}

func (s *Store) listTransactions(ctx context.Context, studentFeeID uuid.UUID) ([]*ledger.PaymentTransaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM payment_transactions t
		WHERE t.student_fee_id = $1
		ORDER BY t.transaction_date DESC, t.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, studentFeeID)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txns []*ledger.PaymentTransaction

	for rows.Next() {
		pt, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txns = append(txns, pt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return txns, nil
}

// Begin opens a database transaction for payment application. Rows read
// through the returned Tx with the ForUpdate methods stay locked until
// Commit or Rollback.
func (s *Store) Begin(ctx context.Context) (ledger.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}

	return &ledgerTx{tx: tx}, nil
}

type ledgerTx struct {
	tx *sql.Tx
}

func (t *ledgerTx) GetStudentFeeForUpdate(ctx context.Context, id uuid.UUID) (*ledger.StudentFee, error) {
	query := `SELECT ` + selectFeeColumns + ` FROM student_fees f WHERE f.id = $1 FOR UPDATE`

	fee, err := scanStudentFee(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("locking student fee: %w", err)
	}

	return fee, nil
}

func (t *ledgerTx) FindStudentFeeForUpdate(ctx context.Context, studentID, feeStructureID uuid.UUID) (*ledger.StudentFee, error) {
	query := `SELECT ` + selectFeeColumns + `
		FROM student_fees f
		WHERE f.student_id = $1 AND f.fee_structure_id = $2
		FOR UPDATE`

	fee, err := scanStudentFee(t.tx.QueryRowContext(ctx, query, studentID, feeStructureID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("locking student fee: %w", err)
	}

	return fee, nil
}

func (t *ledgerTx) CreateStudentFee(ctx context.Context, fee *ledger.StudentFee) error {
	return createStudentFee(ctx, t.tx, fee)
}

func (t *ledgerTx) UpdateStudentFee(ctx context.Context, fee *ledger.StudentFee) error {
	query := `
		UPDATE student_fees
		SET amount_paid = $2, balance = $3, payment_status = $4, payment_date = $5,
			receipt_number = $6, payment_method = $7, notes = $8, updated_at = now()
		WHERE id = $1`

	result, err := t.tx.ExecContext(ctx, query,
		fee.ID, fee.AmountPaid, fee.Balance, string(fee.PaymentStatus), fee.PaymentDate,
		fee.ReceiptNumber, fee.PaymentMethod, fee.Notes,
	)
	if err != nil {
		return fmt.Errorf("updating student fee: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}

	if affected == 0 {
		return ledger.ErrNotFound
	}

	return nil
}

func (t *ledgerTx) CreateTransaction(ctx context.Context, pt *ledger.PaymentTransaction) error {
	var metadata []byte

	if pt.Metadata != nil {
		var err error

		metadata, err = json.Marshal(pt.Metadata)
		if err != nil {
			return fmt.Errorf("encoding transaction metadata: %w", err)
		}
	}

	query := `
		INSERT INTO payment_transactions (
			student_fee_id, amount, transaction_type, reference_number,
			external_reference, payment_method, metadata, status, processed_by,
			transaction_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`

	err := t.tx.QueryRowContext(ctx, query,
		pt.StudentFeeID, pt.Amount, string(pt.Type), pt.ReferenceNumber,
		pt.ExternalReference, pt.PaymentMethod, metadata, string(pt.Status),
		pt.ProcessedBy, pt.TransactionDate,
	).Scan(&pt.ID, &pt.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ledger.ErrDuplicateReference
		}

		return fmt.Errorf("inserting payment transaction: %w", err)
	}

	return nil
}

func (t *ledgerTx) Commit() error {
	return t.tx.Commit()
}

func (t *ledgerTx) Rollback() error {
	return t.tx.Rollback()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
