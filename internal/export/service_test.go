package export

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/bursarhq/bursar/internal/ledger"
	"github.com/bursarhq/bursar/internal/student"
)

type mockSource struct {
	historyFunc   func(ctx context.Context, studentID uuid.UUID, academicYearID *uuid.UUID) ([]*ledger.HistoryEntry, error)
	statementFunc func(ctx context.Context, studentID uuid.UUID, academicYearID *uuid.UUID) (*ledger.Statement, error)
}

func (m *mockSource) GetPaymentHistory(ctx context.Context, studentID uuid.UUID, academicYearID *uuid.UUID) ([]*ledger.HistoryEntry, error) {
	return m.historyFunc(ctx, studentID, academicYearID)
}

func (m *mockSource) GeneratePaymentStatement(ctx context.Context, studentID uuid.UUID, academicYearID *uuid.UUID) (*ledger.Statement, error) {
	return m.statementFunc(ctx, studentID, academicYearID)
}

type mockStudents struct {
	getFunc func(ctx context.Context, id uuid.UUID) (*student.Student, error)
}

func (m *mockStudents) GetStudent(ctx context.Context, id uuid.UUID) (*student.Student, error) {
	return m.getFunc(ctx, id)
}

func TestExportStatement(t *testing.T) {
	var gotAuth string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "attachment; filename=\"statement_ADM-1042.pdf\"")
		w.Write([]byte("fake pdf content"))
	}))
	defer ts.Close()

	tmpDir, err := os.MkdirTemp("", "export_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	studentID := uuid.New()
	st := &student.Student{ID: studentID, AdmissionNumber: "ADM-1042", FullName: "J Mwangi"}

	source := &mockSource{
		historyFunc: func(context.Context, uuid.UUID, *uuid.UUID) ([]*ledger.HistoryEntry, error) {
			return []*ledger.HistoryEntry{
				{
					Fee:      &ledger.StudentFee{AmountPaid: 40_000, Balance: 60_000, PaymentStatus: ledger.StatusPartial},
					TermName: "Term 1",
					TotalFee: 100_000,
				},
			}, nil
		},
		statementFunc: func(context.Context, uuid.UUID, *uuid.UUID) (*ledger.Statement, error) {
			return &ledger.Statement{StudentID: studentID, Entries: 1, TotalCharged: 100_000, TotalPaid: 40_000, TotalOutstanding: 60_000}, nil
		},
	}

	students := &mockStudents{
		getFunc: func(context.Context, uuid.UUID) (*student.Student, error) {
			return st, nil
		},
	}

	service := NewService(source, students, ts.URL, "test-token")

	item, err := service.ExportStatement(context.Background(), studentID, nil, tmpDir)
	if err != nil {
		t.Fatalf("ExportStatement failed: %v", err)
	}

	if gotAuth != "Token test-token" {
		t.Errorf("expected token auth header, got %q", gotAuth)
	}

	if filepath.Base(item.FilePath) != "statement_ADM-1042.pdf" {
		t.Errorf("expected statement_ADM-1042.pdf, got %s", filepath.Base(item.FilePath))
	}

	content, _ := os.ReadFile(item.FilePath)
	if string(content) != "fake pdf content" {
		t.Errorf("file content mismatch")
	}

	if item.Statement.TotalOutstanding != 60_000 {
		t.Errorf("expected outstanding 60000, got %d", item.Statement.TotalOutstanding)
	}
}

func TestExportStatement_RendererError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	tmpDir := t.TempDir()
	studentID := uuid.New()

	source := &mockSource{
		historyFunc: func(context.Context, uuid.UUID, *uuid.UUID) ([]*ledger.HistoryEntry, error) {
			return nil, nil
		},
		statementFunc: func(context.Context, uuid.UUID, *uuid.UUID) (*ledger.Statement, error) {
			return &ledger.Statement{StudentID: studentID}, nil
		},
	}

	students := &mockStudents{
		getFunc: func(context.Context, uuid.UUID) (*student.Student, error) {
			return &student.Student{ID: studentID, AdmissionNumber: "ADM-1042"}, nil
		},
	}

	service := NewService(source, students, ts.URL, "")

	_, err := service.ExportStatement(context.Background(), studentID, nil, tmpDir)
	if err == nil {
		t.Fatal("expected error from renderer failure")
	}

	if !strings.Contains(err.Error(), "unexpected status code") {
		t.Errorf("expected status code error, got %v", err)
	}
}

func TestGenerateSummary(t *testing.T) {
	s := &Service{}

	entries := []*ledger.HistoryEntry{
		{
			Fee:              &ledger.StudentFee{AmountPaid: 100_000, Balance: 0, PaymentStatus: ledger.StatusPaid},
			TermName:         "Term 1",
			AcademicYearName: "2026",
			TotalFee:         100_000,
		},
		{
			Fee:              &ledger.StudentFee{AmountPaid: 40_000, Balance: 60_000, PaymentStatus: ledger.StatusPartial},
			TermName:         "Term 2",
			AcademicYearName: "2026",
			TotalFee:         100_000,
		},
	}

	body := s.GenerateSummary(entries)

	expectedSubstrings := []string{
		"Term 1 (2026) | charged 1000.00 | paid 1000.00 | balance 0.00 | paid",
		"Term 2 (2026) | charged 1000.00 | paid 400.00 | balance 600.00 | partial",
	}

	for _, sub := range expectedSubstrings {
		if !strings.Contains(body, sub) {
			t.Errorf("expected body to contain %q", sub)
		}
	}
}
