package bankcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/bursarhq/bursar/internal/encoding"
)

// Credit is one incoming payment row lifted from a bank statement export.
// Debit rows are not represented; outgoing money is never a fee payment.
type Credit struct {
	Date      time.Time
	Narrative string
	Amount    int64 // cents
	Reference string
}

// Parser reads bank statement CSV exports and produces the credit rows.
// It auto-detects which export format is in use by matching column headers
// against known profiles, and tolerates the preamble junk banks put above
// the real header.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]Credit, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, colMap, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching statement format found")
	}

	return parseRows(profile, colMap, rows[headerIdx+1:], headerIdx+1)
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts credits from data rows using the matched profile.
// headerRowNum is the 0-based index of the header in the original file.
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]Credit, error) {
	dateIdx := cols[p.DateCol]
	narrativeIdx := cols[p.NarrativeCol]

	refIdx := -1
	if p.RefCol != "" {
		if i, ok := cols[p.RefCol]; ok {
			refIdx = i
		}
	}

	var credits []Credit

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		date, ok := parseDate(p, row, dateIdx)
		if !ok {
			continue
		}

		amount, ok := parsePaidIn(p, cols, row)
		if !ok {
			continue
		}

		narrative := cellValue(row, narrativeIdx)
		if narrative == "" {
			return nil, fmt.Errorf("row %d: missing narrative", rowNum)
		}

		credits = append(credits, Credit{
			Date:      date,
			Narrative: narrative,
			Amount:    amount,
			Reference: cellValue(row, refIdx),
		})
	}

	return credits, nil
}

// parseDate tries the profile's date layouts against the cell. Returns
// false for empty cells and unparseable values (footer rows, totals).
func parseDate(p *Profile, row []string, idx int) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range p.DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parsePaidIn extracts the incoming amount from a row. Debit rows and zero
// rows yield false and are skipped.
func parsePaidIn(p *Profile, cols colIndex, row []string) (int64, bool) {
	switch p.AmountMode {
	case amountSingle:
		s := cellValue(row, cols[p.AmountCol])
		if s == "" {
			return 0, false
		}

		cents, err := parseStatementAmount(s)
		if err != nil || cents <= 0 {
			return 0, false
		}

		return cents, true
	case amountSplit:
		s := cellValue(row, cols[p.CreditCol])
		if s == "" {
			return 0, false
		}

		cents, err := parseStatementAmount(s)
		if err != nil || cents <= 0 {
			return 0, false
		}

		return cents, true
	}

	return 0, false
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
