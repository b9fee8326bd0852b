package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/achievements"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show earned progress, pending notifications and next milestones",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			p := rt.ledger.Progress(ctx)
			xp := achievements.TotalXP(rt.ledger.AllEarned(ctx))

			fmt.Fprintf(out, "Earned:   %s (%d%%)\n",
				color.New(color.FgYellow, color.Bold).Sprintf("%d/%d", p.Earned, p.Total), p.Percentage)
			fmt.Fprintf(out, "XP:       %d\n", xp)
			fmt.Fprintf(out, "Pending:  %d\n", rt.ledger.PendingCount(ctx))

			src := rt.source()
			if src == nil {
				return nil
			}
			m, err := src.Snapshot(ctx)
			if err != nil {
				fmt.Fprintf(out, "\n%s %v\n", color.New(color.FgRed).Sprint("metrics unavailable:"), err)
				return nil
			}

			ms := rt.ledger.NextMilestones(ctx, m)
			if len(ms) == 0 {
				return nil
			}
			fmt.Fprintln(out, "\nNext up")
			fmt.Fprintln(out, strings.Repeat("─", 56))
			for _, ml := range ms {
				fmt.Fprintf(out, "%-18s %s %-22s %5d/%-5d %d to go\n",
					ml.Metric.DisplayName(), ml.Definition.Icon, ml.Definition.Title,
					ml.Current, ml.Target, ml.Remaining())
			}
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every achievement with its earned state",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer rt.Close()

			earned := map[string]bool{}
			for _, d := range rt.ledger.AllEarned(cmd.Context()) {
				earned[d.ID] = true
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "   %-16s  %-20s  %5s  %s\n", "ID", "Title", "XP", "Description")
			fmt.Fprintln(out, strings.Repeat("─", 80))

			catalog := achievements.Catalog()
			for _, d := range catalog {
				mark := color.New(color.FgHiBlack).Sprint("·")
				if earned[d.ID] {
					mark = color.New(color.FgGreen).Sprint("✓")
				}
				fmt.Fprintf(out, "%s  %-16s  %-20s  %5d  %s\n", mark, d.ID, d.Title, d.XP, d.Description)
			}

			fmt.Fprintf(out, "\n%d of %d earned\n", len(earned), len(catalog))
			return nil
		},
	}
}
