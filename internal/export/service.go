package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bursarhq/bursar/internal/ledger"
	"github.com/bursarhq/bursar/internal/student"
)

// StatementSource provides the ledger data a statement is built from.
type StatementSource interface {
	GetPaymentHistory(ctx context.Context, studentID uuid.UUID, academicYearID *uuid.UUID) ([]*ledger.HistoryEntry, error)
	GeneratePaymentStatement(ctx context.Context, studentID uuid.UUID, academicYearID *uuid.UUID) (*ledger.Statement, error)
}

// StudentGetter resolves the student a statement is for.
type StudentGetter interface {
	GetStudent(ctx context.Context, id uuid.UUID) (*student.Student, error)
}

// Item links a generated statement to its local PDF file.
type Item struct {
	Student   *student.Student
	Statement *ledger.Statement
	FilePath  string
}

// Service turns ledger data into statement PDFs by calling an external
// renderer and saving what it returns.
type Service struct {
	source      StatementSource
	students    StudentGetter
	client      *http.Client
	rendererURL string
	apiToken    string
}

func NewService(source StatementSource, students StudentGetter, rendererURL, apiToken string) *Service {
	return &Service{
		source:      source,
		students:    students,
		client:      &http.Client{Timeout: 30 * time.Second},
		rendererURL: rendererURL,
		apiToken:    apiToken,
	}
}

// renderPayload is the document sent to the renderer.
type renderPayload struct {
	Student   *student.Student       `json:"student"`
	Statement *ledger.Statement      `json:"statement"`
	Entries   []*ledger.HistoryEntry `json:"entries"`
}

// ExportStatement renders the student's fee statement to a PDF in outputDir.
func (s *Service) ExportStatement(ctx context.Context, studentID uuid.UUID, academicYearID *uuid.UUID, outputDir string) (*Item, error) {
	st, err := s.students.GetStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("looking up student: %w", err)
	}

	statement, err := s.source.GeneratePaymentStatement(ctx, studentID, academicYearID)
	if err != nil {
		return nil, fmt.Errorf("building statement: %w", err)
	}

	entries, err := s.source.GetPaymentHistory(ctx, studentID, academicYearID)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	path, err := s.renderToFile(ctx, renderPayload{
		Student:   st,
		Statement: statement,
		Entries:   entries,
	}, outputDir)
	if err != nil {
		return nil, fmt.Errorf("rendering statement for %s: %w", st.AdmissionNumber, err)
	}

	return &Item{Student: st, Statement: statement, FilePath: path}, nil
}

func (s *Service) renderToFile(ctx context.Context, payload renderPayload, dir string) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.rendererURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if s.apiToken != "" {
		req.Header.Set("Authorization", "Token "+s.apiToken)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d from renderer", resp.StatusCode)
	}

	filename := s.determineFilename(resp, payload.Student)
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}

	return path, nil
}

func (s *Service) determineFilename(resp *http.Response, st *student.Student) string {
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			if filename, ok := params["filename"]; ok && filename != "" {
				return strings.ReplaceAll(filepath.Base(filename), " ", "_")
			}
		}
	}

	safeAdm := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}

		return '_'
	}, st.AdmissionNumber)

	return fmt.Sprintf("%s_%s_statement.pdf", time.Now().Format("20060102"), safeAdm)
}

// GenerateSummary creates a plain text overview of the exported statement,
// one line per term entry.
func (s *Service) GenerateSummary(entries []*ledger.HistoryEntry) string {
	var sb strings.Builder

	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("* %s (%s) | charged %s | paid %s | balance %s | %s\n",
			e.TermName, e.AcademicYearName,
			formatCents(e.TotalFee), formatCents(e.Fee.AmountPaid), formatCents(e.Fee.Balance),
			e.Fee.PaymentStatus,
		))
	}

	return sb.String()
}

func formatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
