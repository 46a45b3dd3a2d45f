package bankcsv_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/bursarhq/bursar/internal/importer/bankcsv"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParser_BankSplitFormat(t *testing.T) {
	csv := `Account Statement,
Account Number,0110012345678
Period,01/01/2026 to 31/01/2026

Transaction Date,Value Date,Narrative,Reference,Debit,Credit,Balance
05/01/2026,05/01/2026,MPESA SCH FEES ADM-1042 J MWANGI,FT26005XYZ,,"25,000.00","125,000.00"
07/01/2026,07/01/2026,CHEQUE CLEARING 004521,CHQ004521,"12,000.00",,"113,000.00"
12/01/2026,12/01/2026,RTGS MWANGI FAMILY TRUST,FT26012ABC,,"45,500.00","158,500.00"
`

	p := bankcsv.NewParser()
	credits, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, credits, 2)

	assert.Equal(t, date(2026, 1, 5), credits[0].Date)
	assert.Equal(t, "MPESA SCH FEES ADM-1042 J MWANGI", credits[0].Narrative)
	assert.Equal(t, int64(2_500_000), credits[0].Amount)
	assert.Equal(t, "FT26005XYZ", credits[0].Reference)

	assert.Equal(t, date(2026, 1, 12), credits[1].Date)
	assert.Equal(t, int64(4_550_000), credits[1].Amount)
}

func TestParser_SkipsDebitRows(t *testing.T) {
	csv := `Transaction Date,Narrative,Debit,Credit
05/01/2026,SALARY RUN,"500,000.00",
06/01/2026,FEES DEPOSIT,,"10,000.00"
`

	p := bankcsv.NewParser()
	credits, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, credits, 1)
	assert.Equal(t, "FEES DEPOSIT", credits[0].Narrative)
}

func TestParser_SingleAmountFormat(t *testing.T) {
	csv := `Date,Transaction Details,Amount
2026-01-05,DIRECT DEPOSIT ADM-2001,15000.00
2026-01-06,LEDGER FEE,-350.00
`

	p := bankcsv.NewParser()
	credits, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, credits, 1)

	assert.Equal(t, date(2026, 1, 5), credits[0].Date)
	assert.Equal(t, int64(1_500_000), credits[0].Amount)
}

func TestParser_MobileMoneyFormat(t *testing.T) {
	csv := `Receipt No.,Completion Time,Details,Transaction Status,Paid In,Withdrawn,Balance
QAB12CD34E,15-01-2026 14:32:11,Pay Bill from 2547XXXXX123 - FEES ADM-1042,Completed,"8,500.00",,"8,500.00"
QAB12CD35F,15-01-2026 16:05:40,Business Payment to vendor,Completed,,"2,000.00","6,500.00"
`

	p := bankcsv.NewParser()
	credits, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, credits, 1)

	assert.Equal(t, "Pay Bill from 2547XXXXX123 - FEES ADM-1042", credits[0].Narrative)
	assert.Equal(t, int64(850_000), credits[0].Amount)
	assert.Equal(t, "QAB12CD34E", credits[0].Reference)
}

func TestParser_Windows1252Encoding(t *testing.T) {
	utf8CSV := "Transaction Date,Narrative,Debit,Credit\n05/01/2026,FEES JOSÉ NDERITU,,\"10,000.00\"\n"

	encoder := charmap.Windows1252.NewEncoder()
	raw, err := encoder.Bytes([]byte(utf8CSV))
	require.NoError(t, err)

	p := bankcsv.NewParser()
	credits, err := p.Parse(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, credits, 1)

	assert.Equal(t, "FEES JOSÉ NDERITU", credits[0].Narrative)
}

func TestParser_DifferentColumnOrder(t *testing.T) {
	csv := `Random,Metadata
Credit,Narrative,Transaction Date,Debit
"10,000.00",TEST_ORDER,05/01/2026,
`

	p := bankcsv.NewParser()
	credits, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, credits, 1)

	assert.Equal(t, "TEST_ORDER", credits[0].Narrative)
	assert.Equal(t, int64(1_000_000), credits[0].Amount)
}

func TestParser_EmptyFile(t *testing.T) {
	p := bankcsv.NewParser()
	_, err := p.Parse(strings.NewReader(""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no matching statement format")
}

func TestParser_HeaderOnly(t *testing.T) {
	csv := `Transaction Date,Narrative,Debit,Credit`

	p := bankcsv.NewParser()
	credits, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, credits)
}

func TestParser_MissingNarrative(t *testing.T) {
	csv := `Transaction Date,Narrative,Debit,Credit
05/01/2026,,,"10,000.00"
`

	p := bankcsv.NewParser()
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "narrative")
}

func TestParser_CurrencyPrefix(t *testing.T) {
	csv := `Date,Transaction Details,Amount
2026-01-05,PREFIXED DEPOSIT,KES 500.00
`

	p := bankcsv.NewParser()
	credits, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, credits, 1)

	assert.Equal(t, int64(50_000), credits[0].Amount)
}

func TestParser_SkipsFooterRows(t *testing.T) {
	csv := `Transaction Date,Narrative,Debit,Credit
05/01/2026,FEES DEPOSIT,,"10,000.00"
Totals,,,,"10,000.00"
`

	p := bankcsv.NewParser()
	credits, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, credits, 1)
}
