package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/achievements"
	"github.com/abhisek/lexiz/internal/metrics"
)

func newAwardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "award <id>",
		Short: "Award a single achievement by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if _, ok := achievements.Lookup(id); !ok {
				return fmt.Errorf("unknown achievement %q (see lexiz list)", id)
			}

			rt, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer rt.Close()

			out := cmd.OutOrStdout()
			if d := rt.ledger.TryAward(cmd.Context(), id); d != nil {
				printUnlocked(out, []achievements.Definition{*d})
				return nil
			}
			fmt.Fprintf(out, "%s already earned\n", id)
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "check",
		Short: "Evaluate learner metrics against every threshold",
		Long: `Evaluate learner metrics against every threshold and award what is due.

Metrics come from flags or, with --file (or --metrics-file / LEXIZ_METRICS_FILE),
from a YAML or JSON document:

  wordsLearned: 120
  streak: 4
  xp: 560
  articlesRead: 3
  practiceCompleted: 12`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer rt.Close()

			m, err := checkMetrics(cmd, rt.cfg.MetricsFile)
			if err != nil {
				return err
			}

			awarded := rt.ledger.CheckMetrics(cmd.Context(), m)
			out := cmd.OutOrStdout()
			if len(awarded) == 0 {
				fmt.Fprintln(out, "No new achievements")
				return nil
			}
			printUnlocked(out, awarded)
			return nil
		},
	}

	f := c.Flags()
	f.String("file", "", "YAML or JSON metrics file")
	f.Int("words", 0, "Words learned")
	f.Int("streak", 0, "Current daily streak")
	f.Int("xp", 0, "Total XP")
	f.Int("articles", 0, "Articles read")
	f.Int("practice", 0, "Practice sessions completed")
	return c
}

var errNoMetrics = errors.New("no metrics given: pass --file or at least one of --words, --streak, --xp, --articles, --practice")

// checkMetrics reads metrics from --file, falling back to the configured
// metrics file, or from the individual counter flags.
func checkMetrics(cmd *cobra.Command, fallbackFile string) (achievements.Metrics, error) {
	f := cmd.Flags()
	path, _ := f.GetString("file")

	var m achievements.Metrics
	counters := map[string]*int{
		"words":    &m.WordsLearned,
		"streak":   &m.Streak,
		"xp":       &m.XP,
		"articles": &m.ArticlesRead,
		"practice": &m.PracticeCompleted,
	}

	anySet := false
	for name, dst := range counters {
		if !f.Changed(name) {
			continue
		}
		v, _ := f.GetInt(name)
		if v < 0 {
			return achievements.Metrics{}, fmt.Errorf("--%s must not be negative", name)
		}
		*dst = v
		anySet = true
	}

	switch {
	case path != "" && anySet:
		return achievements.Metrics{}, errors.New("use --file or counter flags, not both")
	case anySet:
		return m, nil
	case path == "":
		path = fallbackFile
	}
	if path == "" {
		return achievements.Metrics{}, errNoMetrics
	}
	return metrics.FileSource{Path: path}.Snapshot(cmd.Context())
}

func printUnlocked(out io.Writer, defs []achievements.Definition) {
	gold := color.New(color.FgYellow, color.Bold)
	for _, d := range defs {
		fmt.Fprintf(out, "%s %s %s  %s\n",
			d.Icon,
			gold.Sprint(d.Title),
			color.New(color.FgHiBlack).Sprintf("(%s)", d.ID),
			color.New(color.FgGreen).Sprintf("+%d XP", d.XP))
	}
}
