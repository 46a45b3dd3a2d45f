package view

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bursarhq/bursar/internal/academics"
	"github.com/bursarhq/bursar/internal/importer"
	"github.com/bursarhq/bursar/internal/ledger"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateFilePick importState = iota
	importStateReviewing
	importStateRecording
	importStateResult
)

type ImportModel struct {
	CommonModel
	importService    *importer.Service
	ledgerService    *ledger.Service
	academicsService *academics.Service

	state      importState
	filePicker filepicker.Model

	rows     []importer.ReviewRow
	rowList  list.Model
	selected map[int]bool
	recorded int
	failed   []string

	status string
	err    error
}

func NewImportModel(impSvc *importer.Service, ledgerSvc *ledger.Service, acadSvc *academics.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		importService:    impSvc,
		ledgerService:    ledgerSvc,
		academicsService: acadSvc,
		filePicker:       fp,
		selected:         make(map[int]bool),
	}
}

func (m ImportModel) Title() string { return "Import Bank Statement" }

func (m ImportModel) ShortHelp() string {
	if m.state == importStateReviewing {
		return "Space: toggle | a: all matched | n: none | Enter: record | Esc: cancel"
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == importStateReviewing {
			return m.updateReviewing(msg)
		}

	case reviewLoadedMsg:
		if msg.err != nil {
			m.state = importStateResult
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.rows = msg.rows
		m.selected = make(map[int]bool)
		for i, row := range m.rows {
			if row.Student != nil {
				m.selected[i] = true
			}
		}

		items := make([]list.Item, len(m.rows))
		for i, row := range m.rows {
			items[i] = creditItem{row: row, index: i}
		}

		delegate := creditDelegate{selected: &m.selected}
		m.rowList = list.New(items, delegate, 100, 20)
		m.rowList.Title = fmt.Sprintf("Statement Credits (%d matched, %d need attention)",
			countMatched(m.rows), len(m.rows)-countMatched(m.rows))
		m.rowList.SetShowStatusBar(false)
		m.rowList.SetFilteringEnabled(false)
		m.rowList.SetShowHelp(false)
		m.state = importStateReviewing

		return m, nil

	case recordedMsg:
		m.state = importStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.recorded = msg.recorded
		m.failed = msg.failed
		m.status = fmt.Sprintf("Recorded %d payments.", msg.recorded)

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.status = fmt.Sprintf("Reading %s...", path)
		return m, m.reviewCmd(path)
	}

	return m, cmd
}

func countMatched(rows []importer.ReviewRow) int {
	n := 0
	for _, row := range rows {
		if row.Student != nil {
			n++
		}
	}

	return n
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateReviewing, importStateResult:
		m.state = importStateFilePick
		m.rows = nil
		m.selected = make(map[int]bool)
		m.err = nil
		m.status = ""

		return m, nil
	}

	return m, Back
}

func (m ImportModel) updateReviewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		idx := m.rowList.Index()
		if idx >= 0 && idx < len(m.rows) && m.rows[idx].Student != nil {
			m.selected[idx] = !m.selected[idx]
		}

		return m, nil
	case "a":
		for i, row := range m.rows {
			if row.Student != nil {
				m.selected[i] = true
			}
		}

		return m, nil
	case "n":
		for i := range m.rows {
			m.selected[i] = false
		}

		return m, nil
	case "enter":
		m.state = importStateRecording
		m.status = "Recording payments..."

		return m, m.recordCmd()
	}

	var cmd tea.Cmd
	m.rowList, cmd = m.rowList.Update(msg)

	return m, cmd
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Select a bank statement CSV:\n\n%s", m.filePicker.View()),
		)
	case importStateReviewing:
		return lipgloss.NewStyle().Padding(1).Render(m.rowList.View())
	case importStateRecording:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)
	if m.err != nil {
		return style.Render(errStyle(m.status) + "\n\n(Esc to go back)")
	}

	s := lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render(m.status)
	for _, f := range m.failed {
		s += "\n" + errStyle(f)
	}

	return style.Render(s + "\n\n(Esc to go back)")
}

// Messages

type reviewLoadedMsg struct {
	rows []importer.ReviewRow
	err  error
}

func (m ImportModel) reviewCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return reviewLoadedMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		rows, err := m.importService.Review(ctx, f)
		if err != nil {
			return reviewLoadedMsg{err: err}
		}

		return reviewLoadedMsg{rows: rows}
	}
}

type recordedMsg struct {
	recorded int
	failed   []string
	err      error
}

func (m ImportModel) recordCmd() tea.Cmd {
	rows := m.rows
	selected := m.selected

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		term, err := m.academicsService.CurrentTerm(ctx)
		if err != nil {
			return recordedMsg{err: fmt.Errorf("resolving current term: %w", err)}
		}

		var (
			recorded int
			failed   []string
		)

		for i, row := range rows {
			if !selected[i] || row.Student == nil {
				continue
			}

			fee, _, err := m.ledgerService.CreateFeeForStudent(ctx,
				row.Student.ID, term.AcademicYearID, term.ID)
			if err != nil {
				failed = append(failed, fmt.Sprintf("%s: %v", row.Student.AdmissionNumber, err))
				continue
			}

			_, err = m.ledgerService.RecordPayment(ctx, ledger.RecordPaymentParams{
				StudentFeeID:      fee.ID,
				Amount:            row.Credit.Amount,
				Method:            "bank_import",
				ExternalReference: row.Credit.Reference,
			})
			if err != nil {
				failed = append(failed, fmt.Sprintf("%s: %v", row.Student.AdmissionNumber, err))
				continue
			}

			recorded++
		}

		return recordedMsg{recorded: recorded, failed: failed}
	}
}

// Credit list item

type creditItem struct {
	row   importer.ReviewRow
	index int
}

func (i creditItem) Title() string       { return "" }
func (i creditItem) Description() string { return "" }
func (i creditItem) FilterValue() string { return "" }

// Credit list delegate

type creditDelegate struct {
	selected *map[int]bool
}

func (d creditDelegate) Height() int                             { return 3 }
func (d creditDelegate) Spacing() int                            { return 0 }
func (d creditDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d creditDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(creditItem)
	if !ok {
		return
	}

	checkbox := "[ ]"
	if (*d.selected)[item.index] {
		checkbox = "[x]"
	}

	cursor := "  "
	if index == m.Index() {
		cursor = "> "
	}

	credit := item.row.Credit

	line1 := fmt.Sprintf("%s%s %s  %s  %s",
		cursor, checkbox,
		FormatDate(credit.Date),
		FormatAmount(credit.Amount),
		credit.Narrative,
	)

	line2 := "      No match; learn a pattern first"
	if st := item.row.Student; st != nil {
		line2 = fmt.Sprintf("      Matched: %s (%s)", st.FullName, st.AdmissionNumber)
	}

	fmt.Fprintf(w, "%s\n%s\n", line1, line2)
}
