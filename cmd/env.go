package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/achievements"
	"github.com/abhisek/lexiz/internal/config"
	"github.com/abhisek/lexiz/internal/logging"
	"github.com/abhisek/lexiz/internal/metrics"
	"github.com/abhisek/lexiz/internal/store"
)

// runtime is everything a subcommand needs: config, logger, store and ledger.
type runtime struct {
	cfg    config.Config
	log    zerolog.Logger
	store  *store.Store
	ledger *achievements.Ledger

	logCloser io.Closer
}

// setup loads config, builds the logger and opens the store. quiet keeps
// console logging off the terminal (the TUI owns it).
func setup(cmd *cobra.Command, quiet bool) (*runtime, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, logCloser, err := logging.New(logging.Config{
		Level: cfg.LogLevel,
		File:  cfg.LogFile,
		Quiet: quiet,
	})
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		logCloser.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		logCloser.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Debug().Str("db", dbPath).Msg("store opened")

	return &runtime{
		cfg:       cfg,
		log:       log,
		store:     st,
		ledger:    achievements.NewLedger(st.RecordRepo(), achievements.WithLogger(log)),
		logCloser: logCloser,
	}, nil
}

// source returns the configured metrics file source, or nil.
func (r *runtime) source() metrics.Source {
	if r.cfg.MetricsFile == "" {
		return nil
	}
	return metrics.FileSource{Path: r.cfg.MetricsFile}
}

func (r *runtime) Close() error {
	return errors.Join(r.store.Close(), r.logCloser.Close())
}
