package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/how0531/TradeTrack-1-sub000/journal"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import trades from CSV or a JSON backup",
	Long: `Import trades into the journal. The format is chosen by extension:
.csv files use the columns id,date,pnl,strategy,emotion,portfolio_id,timestamp,notes
and .json files are backups written by export (portfolios are imported too).

Trades whose id already exists are skipped unless --replace is given.

Examples:
  tradetrack import trades.csv
  tradetrack import backup.json --replace`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export trades to CSV or a JSON backup",
	Long: `Export every trade in the journal. Files ending in .json receive a full
backup including portfolios; anything else is written as CSV.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var importReplace bool

func init() {
	rootCmd.AddCommand(importCmd, exportCmd)

	importCmd.Flags().BoolVar(&importReplace, "replace", false, "overwrite trades whose id already exists")
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}
	defer f.Close()

	var b journal.Backup
	if isJSON(args[0]) {
		b, err = journal.ReadJSON(f)
	} else {
		b.Trades, err = journal.ReadCSV(f)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	for _, p := range b.Portfolios {
		if err := j.SavePortfolio(p); err != nil {
			return fmt.Errorf("save portfolio: %w", err)
		}
	}

	added, replaced, skipped := 0, 0, 0
	for _, t := range b.Trades {
		_, err := j.GetTrade(t.ID)
		switch {
		case errors.Is(err, journal.ErrNotFound):
			if err := j.RecordTrade(t); err != nil {
				return fmt.Errorf("record trade %s: %w", t.ID, err)
			}
			added++
		case err != nil:
			return fmt.Errorf("get trade %s: %w", t.ID, err)
		case importReplace:
			if err := j.ReplaceTrade(t); err != nil {
				return fmt.Errorf("replace trade %s: %w", t.ID, err)
			}
			replaced++
		default:
			warnf("skipping trade %s: already recorded", t.ID)
			skipped++
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported %s: %d added, %d replaced, %d skipped, %d portfolios\n",
		args[0], added, replaced, skipped, len(b.Portfolios))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	trades, err := j.ListTrades()
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("create %s: %w", args[0], err)
	}
	defer f.Close()

	if isJSON(args[0]) {
		var ps []journal.Portfolio
		ps, err = j.ListPortfolios()
		if err != nil {
			return fmt.Errorf("list portfolios: %w", err)
		}
		err = journal.WriteJSON(f, journal.Backup{Portfolios: ps, Trades: trades})
	} else {
		err = journal.WriteCSV(f, trades)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", args[0], err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", args[0], err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %d trades to %s\n", len(trades), args[0])
	return nil
}
