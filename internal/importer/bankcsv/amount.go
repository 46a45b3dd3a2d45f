package bankcsv

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseStatementAmount parses a bank statement amount into cents.
// Handles comma thousand separators and stray currency prefixes:
// "12,500.00" -> 1250000, "KES 500" -> 50000.
func parseStatementAmount(s string) (int64, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "KES")
	clean = strings.TrimPrefix(clean, "Ksh")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.TrimSpace(clean)

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
