package bootstrap

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	historyinadapter "breathe/internal/modules/history/adapter/in"
	historyoutadapter "breathe/internal/modules/history/adapter/out"
	historyservice "breathe/internal/modules/history/service"
	historyusecase "breathe/internal/modules/history/usecase"
	progressinadapter "breathe/internal/modules/progress/adapter/in"
	progressoutadapter "breathe/internal/modules/progress/adapter/out"
	progressservice "breathe/internal/modules/progress/service"
	progressusecase "breathe/internal/modules/progress/usecase"
	reportinadapter "breathe/internal/modules/report/adapter/in"
	reportoutadapter "breathe/internal/modules/report/adapter/out"
	reportservice "breathe/internal/modules/report/service"
	reportusecase "breathe/internal/modules/report/usecase"
	sessioninadapter "breathe/internal/modules/session/adapter/in"
	sessionoutadapter "breathe/internal/modules/session/adapter/out"
	sessiondto "breathe/internal/modules/session/dto"
	sessionout "breathe/internal/modules/session/port/out"
	sessionservice "breathe/internal/modules/session/service"
	sessionusecase "breathe/internal/modules/session/usecase"
	"breathe/internal/platform/clock"
	"breathe/internal/platform/config"
	"breathe/internal/platform/id"
	uiapp "breathe/internal/ui/app"
)

type App struct {
	SessionCLI  sessioninadapter.CLIHandler
	HistoryCLI  historyinadapter.CLIHandler
	ProgressCLI progressinadapter.CLIHandler
	ReportCLI   reportinadapter.CLIHandler
}

// New wires every module. The SQLite index is a rebuildable projection:
// if it cannot be opened the app runs on the ledger alone, and a
// successful open is followed by a best-effort reindex so index queries
// agree with the blob.
func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}
	ctx := context.Background()

	ledgerStore := historyoutadapter.NewFileLedgerStore(cfg.DataPath, clk)
	index, err := historyoutadapter.NewSQLiteEntryIndex(cfg.DBPath)
	if err != nil {
		index = nil
	}
	historySvc := historyservice.NewLedgerService(clk, ledgerStore)
	historyUC := historyusecase.NewInteractor(historySvc, clk, index)
	_ = historyUC.Reindex(ctx)

	counterStore := progressoutadapter.NewFileCounterStore(cfg.DataPath)
	progressUC := progressusecase.NewInteractor(progressservice.NewCounterService(clk, counterStore))

	settings := config.LoadSettings(cfg.SettingsPath)
	var notifier sessionout.Notifier = sessionoutadapter.NewNoopNotifier()
	if settings.Speak {
		notifier = sessionoutadapter.NewSpeechNotifier()
	}
	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewTrackerService(clk, ids),
		historyUC,
		progressUC,
		sessionoutadapter.NewFileSummaryStore(cfg.DataPath),
		notifier,
	)
	_ = sessionUC.Configure(ctx, sessiondto.ConfigureInput{
		InhaleSeconds: settings.InhaleSeconds,
		HoldSeconds:   settings.HoldSeconds,
		ExhaleSeconds: settings.ExhaleSeconds,
	})

	reportSvc := reportservice.NewRenderService(
		reportoutadapter.NewFileArtifactWriter(cfg.ExportPath),
		reportoutadapter.NewBlockChartRenderer(),
	)
	reportUC := reportusecase.NewInteractor(reportSvc, historyUC, progressUC, sessionUC, clk)

	return &App{
		SessionCLI:  sessioninadapter.NewCLIHandler(sessionUC),
		HistoryCLI:  historyinadapter.NewCLIHandler(historyUC),
		ProgressCLI: progressinadapter.NewCLIHandler(progressUC),
		ReportCLI:   reportinadapter.NewCLIHandler(reportUC),
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.SessionCLI, app.HistoryCLI, app.ProgressCLI, app.ReportCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
