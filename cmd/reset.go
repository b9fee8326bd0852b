package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all earned achievements and pending notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				return fmt.Errorf("refusing to reset without --yes")
			}

			rt, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := rt.ledger.Reset(cmd.Context()); err != nil {
				return fmt.Errorf("reset ledger: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Achievement ledger reset")
			return nil
		},
	}
	c.Flags().Bool("yes", false, "Confirm the reset")
	return c
}
