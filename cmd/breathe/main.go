package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"breathe/internal/bootstrap"
	"breathe/internal/platform/clock"
	"breathe/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataPath string

	root := &cobra.Command{
		Use:           "breathe",
		Short:         "Guided 4-7-8 breathing sessions in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(dataPath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
	root.PersistentFlags().StringVar(&dataPath, "data", "", "data directory (default ~/.breathe)")

	root.AddCommand(newTUICmd(&dataPath))
	root.AddCommand(newRunCmd(&dataPath))
	root.AddCommand(newHistoryCmd(&dataPath))
	root.AddCommand(newProgressCmd(&dataPath))
	root.AddCommand(newSummaryCmd(&dataPath))
	root.AddCommand(newExportCmd(&dataPath))
	root.AddCommand(newReindexCmd(&dataPath))
	root.AddCommand(newClearCmd(&dataPath))
	root.AddCommand(newConfigCmd(&dataPath))
	return root
}

func loadApp(dataPath string) (*bootstrap.App, error) {
	cfg, err := config.New(dataPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the breathe terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newRunCmd(dataPath *string) *cobra.Command {
	var cycles int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a headless breathing session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			ctx := context.Background()
			if _, err := app.SessionCLI.Start(ctx); err != nil {
				return err
			}

			done := make(chan struct{})
			var once sync.Once
			ticker := clock.NewSystemTicker()
			ticker.Schedule(time.Second, func() {
				status, err := app.SessionCLI.Tick(ctx)
				if err != nil {
					return
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\r%-6s %2ds  cycles=%d   ", status.Phase, status.SecondsRemaining, status.CompletedCycles)
				if cycles > 0 && status.CompletedCycles >= cycles {
					once.Do(func() { close(done) })
				}
			})
			defer ticker.Cancel()

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sig)
			select {
			case <-done:
			case <-sig:
			}
			ticker.Cancel()

			out, err := app.SessionCLI.Reset(ctx)
			if err != nil {
				return err
			}
			if out.Finalized {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nsession complete: %d cycles in %ds\n", out.Summary.Cycles, out.Summary.TotalSeconds)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&cycles, "cycles", 0, "stop after this many cycles (0 runs until interrupted)")
	return cmd
}

func newHistoryCmd(dataPath *string) *cobra.Command {
	var rangeArg string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded breathing phases",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			lines, err := app.ReportCLI.HistoryText(context.Background(), rangeArg)
			if err != nil {
				return err
			}
			if len(lines) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no history recorded")
				return nil
			}
			for _, line := range lines {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&rangeArg, "range", "all", "day window: all or a positive number of days")
	return cmd
}

func newProgressCmd(dataPath *string) *cobra.Command {
	var rangeArg string

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show cycles completed per day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			chart, err := app.ReportCLI.Chart(context.Background(), rangeArg)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), chart.Rendered)
			return nil
		},
	}
	cmd.Flags().StringVar(&rangeArg, "range", "7", "day window: all or a positive number of days")
	return cmd
}

func newSummaryCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "List finalized sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			summaries, err := app.SessionCLI.Summaries(context.Background())
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions recorded")
				return nil
			}
			for _, s := range summaries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  cycles=%d  total=%ds  pattern=%d-%d-%d\n",
					s.ID, s.StartedAt.Local().Format("2006-01-02 15:04:05"), s.Cycles, s.TotalSeconds,
					s.InhaleSeconds, s.HoldSeconds, s.ExhaleSeconds)
			}
			return nil
		},
	}
}

func newExportCmd(dataPath *string) *cobra.Command {
	export := &cobra.Command{Use: "export", Short: "Write export artifacts"}

	var textRange string
	text := &cobra.Command{
		Use:   "text",
		Short: "Export history as plain text",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			path, err := app.ReportCLI.ExportText(context.Background(), textRange)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %s\n", path)
			return nil
		},
	}
	text.Flags().StringVar(&textRange, "range", "all", "day window: all or a positive number of days")

	var reportRange string
	report := &cobra.Command{
		Use:   "report",
		Short: "Export a markdown report with session stats and chart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			path, err := app.ReportCLI.ExportDocument(context.Background(), reportRange)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %s\n", path)
			return nil
		},
	}
	report.Flags().StringVar(&reportRange, "range", "all", "day window: all or a positive number of days")

	export.AddCommand(text, report)
	return export
}

func newReindexCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite history index from the ledger",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			if err := app.HistoryCLI.Reindex(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
			return nil
		},
	}
}

func newClearCmd(dataPath *string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded history, progress and summaries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), "This deletes all recorded history, progress and summaries. Continue? [y/N]: ")
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, _ := reader.ReadString('\n')
				if strings.ToLower(strings.TrimSpace(answer)) != "y" {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "aborted")
					return nil
				}
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			ctx := context.Background()
			if err := app.HistoryCLI.Clear(ctx); err != nil {
				return err
			}
			if err := app.ProgressCLI.Clear(ctx); err != nil {
				return err
			}
			if err := app.SessionCLI.ClearSummaries(ctx); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "all data cleared")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}

func newConfigCmd(dataPath *string) *cobra.Command {
	configCmd := &cobra.Command{Use: "config", Short: "Inspect and change phase durations"}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New(*dataPath)
			if err != nil {
				return err
			}
			s := config.LoadSettings(cfg.SettingsPath)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "inhale=%ds hold=%ds exhale=%ds speak=%t\n",
				s.InhaleSeconds, s.HoldSeconds, s.ExhaleSeconds, s.Speak)
			return nil
		},
	})

	var inhale, hold, exhale int
	var speak bool
	set := &cobra.Command{
		Use:   "set",
		Short: "Set phase durations and speech",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New(*dataPath)
			if err != nil {
				return err
			}
			s := config.LoadSettings(cfg.SettingsPath)
			if cmd.Flags().Changed("inhale") {
				s.InhaleSeconds = inhale
			}
			if cmd.Flags().Changed("hold") {
				s.HoldSeconds = hold
			}
			if cmd.Flags().Changed("exhale") {
				s.ExhaleSeconds = exhale
			}
			if cmd.Flags().Changed("speak") {
				s.Speak = speak
			}
			if err := config.SaveSettings(cfg.SettingsPath, s); err != nil {
				return err
			}
			s = config.LoadSettings(cfg.SettingsPath)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "inhale=%ds hold=%ds exhale=%ds speak=%t\n",
				s.InhaleSeconds, s.HoldSeconds, s.ExhaleSeconds, s.Speak)
			return nil
		},
	}
	set.Flags().IntVar(&inhale, "inhale", config.DefaultInhaleSeconds, "inhale seconds")
	set.Flags().IntVar(&hold, "hold", config.DefaultHoldSeconds, "hold seconds")
	set.Flags().IntVar(&exhale, "exhale", config.DefaultExhaleSeconds, "exhale seconds")
	set.Flags().BoolVar(&speak, "speak", false, "announce phases with the system voice")
	configCmd.AddCommand(set)

	return configCmd
}
