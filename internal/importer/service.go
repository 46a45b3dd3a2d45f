package importer

import (
	"context"
	"fmt"
	"io"

	"github.com/bursarhq/bursar/internal/importer/bankcsv"
	"github.com/bursarhq/bursar/internal/student"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=importer

// Matcher suggests which student a statement narrative refers to.
type Matcher interface {
	Suggest(ctx context.Context, narrative string) (*student.Student, error)
}

// Service parses bank statement exports and pairs each credit with a
// student suggestion for operator review. Nothing is written to the ledger
// here; confirmed rows are recorded as payments by the caller.
type Service struct {
	parser  Parser
	matcher Matcher
}

func NewService(matcher Matcher) *Service {
	return &Service{
		parser:  bankcsv.NewParser(),
		matcher: matcher,
	}
}

// NewServiceWithParser is used by tests to substitute the parser.
func NewServiceWithParser(parser Parser, matcher Matcher) *Service {
	return &Service{parser: parser, matcher: matcher}
}

// Review parses the statement and attaches student suggestions. A credit
// that cannot be matched still comes back, with Student nil, so the
// operator can assign it by hand.
func (s *Service) Review(ctx context.Context, r io.Reader) ([]ReviewRow, error) {
	credits, err := s.parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing statement: %w", err)
	}

	rows := make([]ReviewRow, 0, len(credits))

	for _, credit := range credits {
		st, err := s.matcher.Suggest(ctx, credit.Narrative)
		if err != nil {
			return nil, fmt.Errorf("matching narrative %q: %w", credit.Narrative, err)
		}

		rows = append(rows, ReviewRow{Credit: credit, Student: st})
	}

	return rows, nil
}

var _ Parser = (*bankcsv.Parser)(nil)
