package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/app"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, _ []string) error {
	rt, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer rt.Close()

	return app.Run(app.Options{
		Ledger:        rt.ledger,
		Source:        rt.source(),
		PollInterval:  rt.cfg.PollInterval,
		ToastDuration: rt.cfg.ToastDuration,
		Log:           rt.log,
	})
}
