package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newDrainCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "drain",
		Short: "Pop pending achievement notifications as JSON lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")

			rt, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer rt.Close()

			enc := json.NewEncoder(cmd.OutOrStdout())
			for {
				rec := rt.ledger.DrainNext(cmd.Context())
				if rec == nil {
					return nil
				}
				if err := enc.Encode(rec); err != nil {
					return fmt.Errorf("encode record: %w", err)
				}
				if !all {
					return nil
				}
			}
		},
	}
	c.Flags().Bool("all", false, "Drain the whole queue instead of one record")
	return c
}
