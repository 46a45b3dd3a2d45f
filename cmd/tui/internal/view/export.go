package view

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/bursarhq/bursar/internal/export"
	"github.com/bursarhq/bursar/internal/ledger"
	"github.com/bursarhq/bursar/internal/student"
)

const exportTimeout = 2 * time.Minute

type exportState int

const (
	exportStateForm exportState = iota
	exportStateExporting
	exportStateResult
)

type ExportModel struct {
	CommonModel
	exportService *export.Service
	ledgerService *ledger.Service
	students      student.Repository

	state   exportState
	err     error
	form    *huh.Form
	spinner spinner.Model

	formAdm  string
	formPath string

	filePath string
	summary  string
}

func NewExportModel(expSvc *export.Service, ledgerSvc *ledger.Service, students student.Repository) ExportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := ExportModel{
		exportService: expSvc,
		ledgerService: ledgerSvc,
		students:      students,
		formPath:      "./statements",
		spinner:       s,
	}
	m.form = m.buildForm()

	return m
}

func (m ExportModel) Title() string { return "Export Statement" }

func (m ExportModel) ShortHelp() string {
	switch m.state {
	case exportStateResult:
		return "Esc: back to menu"
	case exportStateExporting:
		return "Exporting..."
	}

	return "Esc: back | Enter: confirm"
}

func (m ExportModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case exportStateForm:
		return m.updateForm(msg)
	case exportStateExporting:
		return m.updateExporting(msg)
	case exportStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m ExportModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = exportStateExporting
	m.err = nil

	return m, tea.Batch(m.spinner.Tick,
		m.runExportCmd(m.form.GetString("admission_number"), m.form.GetString("path")))
}

func (m ExportModel) updateExporting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(statementExportedMsg); ok {
		m.state = exportStateResult
		m.err = result.err
		m.filePath = result.filePath
		m.summary = result.summary

		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func (m ExportModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	return m, nil
}

func (m ExportModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("admission_number").
				Title("Admission Number").
				Placeholder("ADM-1042").
				Value(&m.formAdm).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("admission number cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("path").
				Title("Output Path").
				Description("Directory will be created if it doesn't exist").
				Placeholder("./statements").
				Value(&m.formPath),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ExportModel) View() string {
	switch m.state {
	case exportStateForm:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case exportStateExporting:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Rendering statement PDF...", m.spinner.View()),
		)

	case exportStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ExportModel) viewResult() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(
			errStyle(fmt.Sprintf("Error: %v", m.err)),
		)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render("Statement Exported!")

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			"Saved to: "+m.filePath,
			"",
			m.summary,
		),
	)
}

type statementExportedMsg struct {
	filePath string
	summary  string
	err      error
}

func (m ExportModel) runExportCmd(admissionNumber, path string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		st, err := m.students.FindByAdmissionNumber(ctx, strings.TrimSpace(admissionNumber))
		if err != nil {
			return statementExportedMsg{err: err}
		}

		item, err := m.exportService.ExportStatement(ctx, st.ID, nil, path)
		if err != nil {
			return statementExportedMsg{err: err}
		}

		entries, err := m.ledgerService.GetPaymentHistory(ctx, st.ID, nil)
		if err != nil {
			return statementExportedMsg{err: err}
		}

		return statementExportedMsg{
			filePath: item.FilePath,
			summary:  m.exportService.GenerateSummary(entries),
		}
	}
}
