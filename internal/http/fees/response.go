package fees

import (
	"time"

	"github.com/google/uuid"

	"github.com/bursarhq/bursar/internal/ledger"
)

type feeResponse struct {
	ID             uuid.UUID            `json:"id"`
	StudentID      uuid.UUID            `json:"student_id"`
	FeeStructureID uuid.UUID            `json:"fee_structure_id"`
	AcademicYearID uuid.UUID            `json:"academic_year_id"`
	TermID         uuid.UUID            `json:"term_id"`
	GradeID        uuid.UUID            `json:"grade_id"`
	AmountPaid     int64                `json:"amount_paid"`
	Balance        int64                `json:"balance"`
	PaymentStatus  ledger.PaymentStatus `json:"payment_status"`
	PaymentDate    *time.Time           `json:"payment_date,omitempty"`
	ReceiptNumber  *string              `json:"receipt_number,omitempty"`
	PaymentMethod  *string              `json:"payment_method,omitempty"`
	Notes          string               `json:"notes,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      *time.Time           `json:"updated_at,omitempty"`
}

func toFeeResponse(f *ledger.StudentFee) feeResponse {
	return feeResponse{
		ID:             f.ID,
		StudentID:      f.StudentID,
		FeeStructureID: f.FeeStructureID,
		AcademicYearID: f.AcademicYearID,
		TermID:         f.TermID,
		GradeID:        f.GradeID,
		AmountPaid:     f.AmountPaid,
		Balance:        f.Balance,
		PaymentStatus:  f.PaymentStatus,
		PaymentDate:    f.PaymentDate,
		ReceiptNumber:  f.ReceiptNumber,
		PaymentMethod:  f.PaymentMethod,
		Notes:          f.Notes,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}

type transactionResponse struct {
	ID                uuid.UUID                `json:"id"`
	StudentFeeID      uuid.UUID                `json:"student_fee_id"`
	Amount            int64                    `json:"amount"`
	Type              ledger.TransactionType   `json:"type"`
	ReferenceNumber   string                   `json:"reference_number"`
	ExternalReference *string                  `json:"external_reference,omitempty"`
	PaymentMethod     *string                  `json:"payment_method,omitempty"`
	Metadata          map[string]any           `json:"metadata,omitempty"`
	Status            ledger.TransactionStatus `json:"status"`
	ProcessedBy       *uuid.UUID               `json:"processed_by,omitempty"`
	TransactionDate   time.Time                `json:"transaction_date"`
	CreatedAt         time.Time                `json:"created_at"`
}

func toTransactionResponse(pt *ledger.PaymentTransaction) transactionResponse {
	return transactionResponse{
		ID:                pt.ID,
		StudentFeeID:      pt.StudentFeeID,
		Amount:            pt.Amount,
		Type:              pt.Type,
		ReferenceNumber:   pt.ReferenceNumber,
		ExternalReference: pt.ExternalReference,
		PaymentMethod:     pt.PaymentMethod,
		Metadata:          pt.Metadata,
		Status:            pt.Status,
		ProcessedBy:       pt.ProcessedBy,
		TransactionDate:   pt.TransactionDate,
		CreatedAt:         pt.CreatedAt,
	}
}

type historyEntryResponse struct {
	Fee              feeResponse           `json:"fee"`
	TermName         string                `json:"term_name"`
	AcademicYearName string                `json:"academic_year_name"`
	TotalFee         int64                 `json:"total_fee"`
	HasStructure     bool                  `json:"has_structure"`
	Transactions     []transactionResponse `json:"transactions"`
}

func toHistoryResponse(entries []*ledger.HistoryEntry) []historyEntryResponse {
	resp := make([]historyEntryResponse, 0, len(entries))

	for _, e := range entries {
		txns := make([]transactionResponse, 0, len(e.Transactions))
		for _, pt := range e.Transactions {
			txns = append(txns, toTransactionResponse(pt))
		}

		resp = append(resp, historyEntryResponse{
			Fee:              toFeeResponse(e.Fee),
			TermName:         e.TermName,
			AcademicYearName: e.AcademicYearName,
			TotalFee:         e.TotalFee,
			HasStructure:     e.HasStructure,
			Transactions:     txns,
		})
	}

	return resp
}
