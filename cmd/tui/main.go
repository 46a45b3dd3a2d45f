package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/bursarhq/bursar/cmd/tui/internal/view"
	"github.com/bursarhq/bursar/internal/academics"
	academicsStore "github.com/bursarhq/bursar/internal/academics/store"
	"github.com/bursarhq/bursar/internal/config"
	"github.com/bursarhq/bursar/internal/database"
	"github.com/bursarhq/bursar/internal/export"
	"github.com/bursarhq/bursar/internal/feestructure"
	feestructureStore "github.com/bursarhq/bursar/internal/feestructure/store"
	"github.com/bursarhq/bursar/internal/importer"
	"github.com/bursarhq/bursar/internal/ledger"
	ledgerStore "github.com/bursarhq/bursar/internal/ledger/store"
	"github.com/bursarhq/bursar/internal/matching"
	matchingStore "github.com/bursarhq/bursar/internal/matching/store"
	studentStore "github.com/bursarhq/bursar/internal/student/store"
)

type model struct {
	ledgerService    *ledger.Service
	academicsService *academics.Service
	importService    *importer.Service
	exportService    *export.Service
	students         *studentStore.Store

	currentView View

	importView   view.ImportModel
	ledgerView   view.LedgerModel
	generateView view.GenerateModel
	exportView   view.ExportModel
}

type View int

const (
	ViewMenu     View = 0
	ViewImport   View = 1
	ViewLedger   View = 2
	ViewGenerate View = 3
	ViewExport   View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	students := studentStore.New(db)

	academicsSvc := academics.NewService(academicsStore.New(db),
		academics.WithCacheTTL(cfg.Terms.CacheTTL))
	structureSvc := feestructure.NewService(feestructureStore.New(db))
	ledgerSvc := ledger.NewService(ledgerStore.New(db), academicsSvc, structureSvc, students)
	matchingSvc := matching.NewService(matchingStore.New(db), students)
	importSvc := importer.NewService(matchingSvc)
	exportSvc := export.NewService(ledgerSvc, students, cfg.Renderer.URL, cfg.Renderer.Token)

	return model{
		ledgerService:    ledgerSvc,
		academicsService: academicsSvc,
		importService:    importSvc,
		exportService:    exportSvc,
		students:         students,
		currentView:      ViewMenu,
		importView:       view.NewImportModel(importSvc, ledgerSvc, academicsSvc),
		ledgerView:       view.NewLedgerModel(ledgerSvc, students),
		generateView:     view.NewGenerateModel(ledgerSvc),
		exportView:       view.NewExportModel(exportSvc, ledgerSvc, students),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.importService, m.ledgerService, m.academicsService)

				return m, m.importView.Init()
			case "2":
				m.currentView = ViewLedger
				m.ledgerView = view.NewLedgerModel(m.ledgerService, m.students)

				return m, m.ledgerView.Init()
			case "3":
				m.currentView = ViewGenerate
				m.generateView = view.NewGenerateModel(m.ledgerService)

				return m, m.generateView.Init()
			case "4":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService, m.ledgerService, m.students)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewLedger:
		var newModel tea.Model
		newModel, cmd = m.ledgerView.Update(msg)
		m.ledgerView = newModel.(view.LedgerModel)
	case ViewGenerate:
		var newModel tea.Model
		newModel, cmd = m.generateView.Update(msg)
		m.generateView = newModel.(view.GenerateModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Bursar TUI\n\n" +
				"1. Import Bank Statement\n" +
				"2. Browse Student Ledger\n" +
				"3. Generate Term Fees\n" +
				"4. Export Statement\n\n" +
				"q. Quit",
		)
	case ViewImport:
		return m.importView.View()
	case ViewLedger:
		return m.ledgerView.View()
	case ViewGenerate:
		return m.generateView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
