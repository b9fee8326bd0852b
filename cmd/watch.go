package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/achievements"
	"github.com/abhisek/lexiz/internal/metrics"
	"github.com/abhisek/lexiz/internal/poller"
)

func newWatchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "watch",
		Short: "Keep checking a metrics file and award achievements as thresholds are crossed",
		Long: `Check a metrics file on a cron schedule and whenever the file changes.
Runs until interrupted. New awards are printed as they happen; pending
notifications stay queued for the TUI or lexiz drain.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer rt.Close()

			path, _ := cmd.Flags().GetString("file")
			if path == "" {
				path = rt.cfg.MetricsFile
			}
			if path == "" {
				return errors.New("no metrics file: pass --file or set LEXIZ_METRICS_FILE")
			}
			schedule, _ := cmd.Flags().GetString("schedule")
			if schedule == "" {
				schedule = rt.cfg.CheckSchedule
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			var outMu sync.Mutex
			p := poller.New(rt.ledger, metrics.FileSource{Path: path}, poller.Config{
				Schedule: schedule,
				OnAward: func(defs []achievements.Definition) {
					outMu.Lock()
					defer outMu.Unlock()
					printUnlocked(out, defs)
				},
			}, rt.log)

			// Catch up before waiting for the first tick; failures are logged.
			_, _ = p.RunOnce(ctx)

			if err := p.Start(ctx); err != nil {
				return fmt.Errorf("start poller: %w", err)
			}
			defer p.Stop()

			rt.log.Info().Str("file", path).Msg("watching metrics")
			return metrics.Watch(ctx, path, metrics.DefaultDebounce, rt.log, func() {
				_, _ = p.RunOnce(ctx)
			})
		},
	}
	c.Flags().String("file", "", "YAML or JSON metrics file (defaults to --metrics-file / LEXIZ_METRICS_FILE)")
	c.Flags().String("schedule", "", `Cron spec or descriptor, e.g. "@every 30s" (defaults to LEXIZ_CHECK_SCHEDULE)`)
	return c
}
