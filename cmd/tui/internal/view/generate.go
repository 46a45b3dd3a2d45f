package view

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bursarhq/bursar/internal/ledger"
)

const generateTimeout = 2 * time.Minute

type generateState int

const (
	generateStateLoading generateState = iota
	generateStatePreview
	generateStateRunning
	generateStateResult
)

type GenerateModel struct {
	CommonModel
	ledgerService *ledger.Service

	state   generateState
	spinner spinner.Model

	preview *ledger.Preview
	result  *ledger.BulkResult
	err     error
}

func NewGenerateModel(ledgerSvc *ledger.Service) GenerateModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return GenerateModel{
		ledgerService: ledgerSvc,
		spinner:       s,
	}
}

func (m GenerateModel) Title() string { return "Generate Term Fees" }

func (m GenerateModel) ShortHelp() string {
	switch m.state {
	case generateStatePreview:
		return "Enter: generate | Esc: back"
	case generateStateResult:
		return "Esc: back to menu"
	}

	return "Esc: back"
}

func (m GenerateModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.previewCmd())
}

func (m GenerateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case previewMsg:
		m.state = generateStatePreview
		m.preview = msg.preview
		m.err = msg.err

		return m, nil

	case generateResultMsg:
		m.state = generateStateResult
		m.result = msg.result
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if msg.Type == tea.KeyEnter && m.state == generateStatePreview && m.err == nil {
			m.state = generateStateRunning
			return m, tea.Batch(m.spinner.Tick, m.runCmd())
		}

		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func (m GenerateModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	switch m.state {
	case generateStateLoading:
		return style.Render(fmt.Sprintf("%s Previewing fee generation...", m.spinner.View()))

	case generateStatePreview:
		if m.err != nil {
			return style.Render(errStyle(fmt.Sprintf("Error: %v", m.err)) + "\n\n(Esc to go back)")
		}

		s := fmt.Sprintf("Preview for %s\n\n", m.preview.TermName)
		s += fmt.Sprintf("  Would create:     %d\n", m.preview.WouldCreate)
		s += fmt.Sprintf("  Already exist:    %d\n", m.preview.AlreadyExists)
		s += fmt.Sprintf("  No fee structure: %d\n", m.preview.NoFeeStructure)
		s += fmt.Sprintf("\nAcross %d grades. Enter to generate, Esc to cancel.", len(m.preview.Groups))

		return style.Render(s)

	case generateStateRunning:
		return style.Render(fmt.Sprintf("%s Generating ledger entries...", m.spinner.View()))

	case generateStateResult:
		return style.Render(m.viewResult())
	}

	return ""
}

func (m GenerateModel) viewResult() string {
	if m.err != nil {
		return errStyle(fmt.Sprintf("Error: %v", m.err)) + "\n\n(Esc to go back)"
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render(fmt.Sprintf("Generated fees for %s", m.result.TermName))

	s := header + "\n\n"
	s += fmt.Sprintf("  Created:          %d\n", m.result.Created)
	s += fmt.Sprintf("  Already existed:  %d\n", m.result.AlreadyExisted)
	s += fmt.Sprintf("  No fee structure: %d\n", m.result.NoFeeStructure)

	for _, w := range m.result.Warnings {
		s += "\n  Warning: " + w
	}

	for _, e := range m.result.Errors {
		s += "\n  " + errStyle(e)
	}

	return s
}

func errStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(s)
}

// Messages

type previewMsg struct {
	preview *ledger.Preview
	err     error
}

func (m GenerateModel) previewCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()

		preview, err := m.ledgerService.PreviewFeeCreation(ctx, nil)

		return previewMsg{preview: preview, err: err}
	}
}

type generateResultMsg struct {
	result *ledger.BulkResult
	err    error
}

func (m GenerateModel) runCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()

		result, err := m.ledgerService.BulkCreateFeesForCurrentTerm(ctx, nil)

		return generateResultMsg{result: result, err: err}
	}
}
