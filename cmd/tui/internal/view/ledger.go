package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/bursarhq/bursar/internal/ledger"
	"github.com/bursarhq/bursar/internal/student"
)

type ledgerState int

const (
	ledgerStateSearch ledgerState = iota
	ledgerStateBrowse
	ledgerStatePay
)

type LedgerModel struct {
	CommonModel
	ledgerService *ledger.Service
	students      student.Repository

	state    ledgerState
	admInput textinput.Model
	table    table.Model

	student *student.Student
	entries []*ledger.HistoryEntry
	form    *huh.Form

	loading bool
	err     error
	status  string

	// Form bindings
	formAmount string
	formMethod string
	formRef    string
}

func NewLedgerModel(ledgerSvc *ledger.Service, students student.Repository) LedgerModel {
	ti := textinput.New()
	ti.Placeholder = "ADM-1042"
	ti.Prompt = "Admission Number: "
	ti.CharLimit = 20
	ti.Width = 20
	ti.Focus()

	columns := []table.Column{
		{Title: "Term", Width: 18},
		{Title: "Year", Width: 12},
		{Title: "Total", Width: 12},
		{Title: "Paid", Width: 12},
		{Title: "Balance", Width: 12},
		{Title: "Status", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return LedgerModel{
		ledgerService: ledgerSvc,
		students:      students,
		admInput:      ti,
		table:         t,
	}
}

func (m LedgerModel) Title() string { return "Student Ledger" }

func (m LedgerModel) ShortHelp() string {
	switch m.state {
	case ledgerStateBrowse:
		return "Esc: new search | p: record payment | f: carry forward | r: refresh"
	case ledgerStatePay:
		return "Navigate form | Esc: cancel"
	}

	return "Enter: look up | Esc: back"
}

func (m LedgerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LedgerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadLedgerMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.state = ledgerStateSearch
			return m, nil
		}

		m.student = msg.student
		m.entries = msg.entries
		m.state = ledgerStateBrowse
		m.err = nil
		m.refreshTable()

		return m, nil

	case paySaveMsg:
		m.state = ledgerStateBrowse
		m.form = nil
		m.table.Focus()

		if msg.err != nil {
			if msg.result != nil {
				m.status = fmt.Sprintf("Payment recorded, but carry forward failed: %v", msg.err)
			} else {
				m.status = fmt.Sprintf("Error: %v", msg.err)
			}

			return m, m.loadLedgerCmd(m.student.AdmissionNumber)
		}

		m.status = fmt.Sprintf("Recorded %s (%s)",
			FormatAmount(msg.result.Transaction.Amount),
			msg.result.Transaction.ReferenceNumber)

		if op := msg.result.Overpayment; op != nil {
			m.status += " | " + op.Message
		}

		return m, m.loadLedgerCmd(m.student.AdmissionNumber)

	case forwardMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.result.Message
		}

		return m, m.loadLedgerCmd(m.student.AdmissionNumber)

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case ledgerStateSearch:
		return m.updateSearch(msg)
	case ledgerStateBrowse:
		return m.updateBrowse(msg)
	case ledgerStatePay:
		return m.updatePay(msg)
	}

	return m, nil
}

func (m LedgerModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			return m, Back
		case tea.KeyEnter:
			adm := strings.TrimSpace(m.admInput.Value())
			if adm == "" {
				return m, nil
			}

			m.loading = true
			m.status = ""

			return m, m.loadLedgerCmd(adm)
		}
	}

	var cmd tea.Cmd
	m.admInput, cmd = m.admInput.Update(msg)

	return m, cmd
}

func (m LedgerModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.state = ledgerStateSearch
			m.admInput.Focus()
			return m, textinput.Blink
		case "r":
			return m, m.loadLedgerCmd(m.student.AdmissionNumber)
		case "p":
			return m.enterPayMode()
		case "f":
			entry := m.selectedEntry()
			if entry == nil {
				return m, nil
			}

			return m, m.forwardCmd(entry.Fee.ID)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m LedgerModel) enterPayMode() (tea.Model, tea.Cmd) {
	entry := m.selectedEntry()
	if entry == nil {
		return m, nil
	}

	m.formAmount = ""
	m.formMethod = "cash"
	m.formRef = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("12500.00").
				Value(&m.formAmount).
				Validate(func(s string) error {
					cents, err := ParseAmount(s)
					if err != nil {
						return err
					}
					if cents <= 0 {
						return fmt.Errorf("amount must be positive")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("method").
				Title("Method").
				Options(
					huh.NewOption("Cash", "cash"),
					huh.NewOption("Bank Transfer", "bank_transfer"),
					huh.NewOption("Mobile Money", "mobile_money"),
					huh.NewOption("Cheque", "cheque"),
				).
				Value(&m.formMethod),

			huh.NewInput().
				Key("reference").
				Title("External Reference").
				Placeholder("optional").
				Value(&m.formRef),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = ledgerStatePay
	m.table.Blur()

	return m, m.form.Init()
}

func (m LedgerModel) updatePay(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = ledgerStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.payCmd()
}

func (m LedgerModel) View() string {
	if m.state == ledgerStateSearch {
		content := "Look up a student:\n\n" + m.admInput.View()
		if m.loading {
			content = "Loading ledger..."
		}
		if m.err != nil {
			content += "\n\n" + lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Render(fmt.Sprintf("Error: %v", m.err))
		}

		return lipgloss.NewStyle().Padding(2).Render(content)
	}

	header := fmt.Sprintf("%s (%s)", m.student.FullName, m.student.AdmissionNumber)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Bold(true).Render(header),
		tableView,
	)

	if m.state == ledgerStatePay && m.form != nil {
		entry := m.selectedEntry()
		label := ""
		if entry != nil {
			label = fmt.Sprintf("%s, balance %s", entry.TermName, FormatAmount(entry.Fee.Balance))
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("Record Payment\n\n%s\n\n%s", label, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m LedgerModel) selectedEntry() *ledger.HistoryEntry {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.entries) {
		return nil
	}

	return m.entries[idx]
}

func (m *LedgerModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.entries))
	for _, e := range m.entries {
		rows = append(rows, table.Row{
			e.TermName,
			e.AcademicYearName,
			FormatAmount(e.TotalFee),
			FormatAmount(e.Fee.AmountPaid),
			FormatAmount(e.Fee.Balance),
			string(e.Fee.PaymentStatus),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadLedgerMsg struct {
	student *student.Student
	entries []*ledger.HistoryEntry
	err     error
}

func (m LedgerModel) loadLedgerCmd(admissionNumber string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		st, err := m.students.FindByAdmissionNumber(ctx, admissionNumber)
		if err != nil {
			return loadLedgerMsg{err: err}
		}

		entries, err := m.ledgerService.GetPaymentHistory(ctx, st.ID, nil)
		if err != nil {
			return loadLedgerMsg{err: err}
		}

		return loadLedgerMsg{student: st, entries: entries}
	}
}

type paySaveMsg struct {
	result *ledger.PaymentResult
	err    error
}

func (m LedgerModel) payCmd() tea.Cmd {
	entry := m.selectedEntry()
	if entry == nil {
		return nil
	}

	amount, err := ParseAmount(m.form.GetString("amount"))
	if err != nil {
		return func() tea.Msg { return paySaveMsg{err: err} }
	}

	params := ledger.RecordPaymentParams{
		StudentFeeID:      entry.Fee.ID,
		Amount:            amount,
		Method:            m.form.GetString("method"),
		ExternalReference: m.form.GetString("reference"),
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		result, err := m.ledgerService.RecordPayment(ctx, params)

		return paySaveMsg{result: result, err: err}
	}
}

type forwardMsg struct {
	result *ledger.OverpaymentResult
	err    error
}

func (m LedgerModel) forwardCmd(feeID uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		result, err := m.ledgerService.ProcessOverpayment(ctx, feeID)

		return forwardMsg{result: result, err: err}
	}
}
