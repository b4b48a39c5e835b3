package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/how0531/TradeTrack-1-sub000/config"
	"github.com/how0531/TradeTrack-1-sub000/journal"
)

var rootCmd = &cobra.Command{
	Use:   "tradetrack",
	Short: "A personal trading journal with equity and drawdown analytics",
	Long: `TradeTrack records trade outcomes and turns them into performance analytics.

It provides tools for:
  - Logging trades tagged with strategy, emotion and portfolio
  - Equity curves with peak and drawdown tracking per day, week, month,
    quarter or year
  - Win rate, profit factor, risk/reward and Sharpe statistics
  - Per-strategy breakdowns and win/loss streaks
  - CSV and JSON import/export, Org-mode reviews and PNG charts`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

var (
	cfgFile string
	envFile string
	dbPath  string

	cfg *config.Config
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "tradetrack.yaml", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "dotenv file with TRADETRACK_* overrides")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "path to SQLite journal DB (overrides config)")
}

// loadConfig falls back to defaults when the config file does not exist.
func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.LoadFromFile(cfgFile)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		c = config.Default()
	default:
		return err
	}

	if err := c.ApplyEnv(envFile); err != nil {
		return err
	}
	if dbPath != "" {
		c.Journal.DBPath = dbPath
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	cfg = c
	return nil
}

func openJournal() (*journal.SQLite, error) {
	j, err := journal.NewSQLite(cfg.Journal.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

// portfolios returns the stored portfolios, or the configured ones when
// the journal has none yet.
func portfolios(j journal.Journal) ([]journal.Portfolio, error) {
	ps, err := j.ListPortfolios()
	if err != nil {
		return nil, fmt.Errorf("list portfolios: %w", err)
	}
	if len(ps) == 0 {
		return cfg.Portfolios, nil
	}
	return ps, nil
}

func warnf(format string, args ...any) {
	log.New(os.Stderr, "tradetrack: ", 0).Printf(format, args...)
}
