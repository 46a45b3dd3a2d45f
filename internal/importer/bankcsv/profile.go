package bankcsv

// amountMode determines how the paid-in amount is extracted from a row.
type amountMode int

const (
	// amountSingle means one signed column; deposits are positive.
	amountSingle amountMode = iota
	// amountSplit means separate credit and debit columns.
	amountSplit
)

// Profile describes the column layout of one bank's statement export.
// Supporting a new bank is adding a Profile to the profiles slice.
type Profile struct {
	Name         string
	DateCol      string
	NarrativeCol string
	AmountMode   amountMode
	AmountCol    string // used when AmountMode == amountSingle
	CreditCol    string // used when AmountMode == amountSplit
	DebitCol     string // used when AmountMode == amountSplit
	RefCol       string // optional bank reference column
	DateLayouts  []string
}

// requiredCols returns the column names that must be present for this
// profile to match. The reference column is optional.
func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.NarrativeCol}

	switch p.AmountMode {
	case amountSingle:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.CreditCol, p.DebitCol)
	}

	return cols
}

// profiles is the ordered list of statement formats to try during
// auto-detection. More specific profiles come first.
var profiles = []Profile{
	{
		Name:         "mobile-money",
		DateCol:      "Completion Time",
		NarrativeCol: "Details",
		AmountMode:   amountSplit,
		CreditCol:    "Paid In",
		DebitCol:     "Withdrawn",
		RefCol:       "Receipt No.",
		DateLayouts:  []string{"02-01-2006 15:04:05", "02-01-2006"},
	},
	{
		Name:         "bank-split",
		DateCol:      "Transaction Date",
		NarrativeCol: "Narrative",
		AmountMode:   amountSplit,
		CreditCol:    "Credit",
		DebitCol:     "Debit",
		RefCol:       "Reference",
		DateLayouts:  []string{"02/01/2006", "02-01-2006"},
	},
	{
		Name:         "bank-single",
		DateCol:      "Date",
		NarrativeCol: "Transaction Details",
		AmountMode:   amountSingle,
		AmountCol:    "Amount",
		DateLayouts:  []string{"2006-01-02", "02/01/2006"},
	},
}
