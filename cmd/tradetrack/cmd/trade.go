package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/how0531/TradeTrack-1-sub000/journal"
	"github.com/how0531/TradeTrack-1-sub000/period"
	"github.com/how0531/TradeTrack-1-sub000/pkg/id"
	"github.com/how0531/TradeTrack-1-sub000/report"
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Record and manage trades",
	Long: `Record, query, edit and delete trades in the SQLite journal.

Subcommands:
  add     - Record a new trade
  list    - List trades, optionally filtered
  show    - Show a trade as an Org-mode entry
  edit    - Change fields of a trade
  delete  - Delete a trade

Examples:
  tradetrack trade add --pnl 125.5 --strategy Breakout --emotion calm
  tradetrack trade list --from 2024-01-01 --strategy breakout
  tradetrack trade show 01HN...`,
}

var tradeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new trade",
	Args:  cobra.NoArgs,
	RunE:  runTradeAdd,
}

var tradeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trades",
	Args:  cobra.NoArgs,
	RunE:  runTradeList,
}

var tradeShowCmd = &cobra.Command{
	Use:   "show <trade-id>",
	Short: "Show a trade as an Org-mode entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeShow,
}

var tradeEditCmd = &cobra.Command{
	Use:   "edit <trade-id>",
	Short: "Change fields of a trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeEdit,
}

var tradeDeleteCmd = &cobra.Command{
	Use:   "delete <trade-id>",
	Short: "Delete a trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeDelete,
}

var (
	tradeDate      string
	tradePnL       float64
	tradeStrategy  string
	tradeEmotion   string
	tradePortfolio string
	tradeNotes     string
	tradeListOrg   bool

	tradeFilter filterFlags
)

func init() {
	rootCmd.AddCommand(tradeCmd)
	tradeCmd.AddCommand(tradeAddCmd, tradeListCmd, tradeShowCmd, tradeEditCmd, tradeDeleteCmd)

	for _, c := range []*cobra.Command{tradeAddCmd, tradeEditCmd} {
		c.Flags().StringVar(&tradeDate, "date", "", "trade date YYYY-MM-DD (default today)")
		c.Flags().Float64Var(&tradePnL, "pnl", 0, "realized profit or loss")
		c.Flags().StringVarP(&tradeStrategy, "strategy", "s", "", "strategy tag")
		c.Flags().StringVarP(&tradeEmotion, "emotion", "e", "", "emotion tag")
		c.Flags().StringVarP(&tradePortfolio, "portfolio", "p", "", "portfolio id (default main)")
		c.Flags().StringVar(&tradeNotes, "notes", "", "free-form review notes")
	}
	_ = tradeAddCmd.MarkFlagRequired("pnl")

	tradeFilter.register(tradeListCmd)
	tradeListCmd.Flags().BoolVar(&tradeListOrg, "org", false, "print Org-mode entries instead of a table")
}

func runTradeAdd(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	now := time.Now()
	date := tradeDate
	if date == "" {
		date = period.Today(now)
	}

	t := journal.Trade{
		ID:          id.NewAt(now),
		Date:        date,
		PnL:         tradePnL,
		Strategy:    tradeStrategy,
		Emotion:     tradeEmotion,
		PortfolioID: tradePortfolio,
		Timestamp:   now.UTC().Format(time.RFC3339),
		Notes:       tradeNotes,
	}
	if err := j.RecordTrade(t); err != nil {
		return fmt.Errorf("record trade: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Recorded %s %s %.2f\n", t.ID, t.Date, t.PnL)
	return nil
}

func runTradeList(cmd *cobra.Command, args []string) error {
	if err := tradeFilter.validate(); err != nil {
		return err
	}
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	var trades []journal.Trade
	if tradeFilter.from != "" || tradeFilter.to != "" {
		from, to := tradeFilter.from, tradeFilter.to
		if from == "" {
			from = "0000-01-01"
		}
		if to == "" {
			to = "9999-12-31"
		}
		trades, err = j.ListTradesBetween(from, to)
	} else {
		trades, err = j.ListTrades()
	}
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}
	trades = tradeFilter.filter().Apply(trades)

	if tradeListOrg {
		fmt.Fprintln(cmd.OutOrStdout(), journal.FormatTradesOrg(trades))
		return nil
	}
	report.PrintTrades(cmd.OutOrStdout(), trades)
	return nil
}

func runTradeShow(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	t, err := j.GetTrade(args[0])
	if err != nil {
		return fmt.Errorf("get trade: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatTradeOrg(t))
	return nil
}

func runTradeEdit(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	t, err := j.GetTrade(args[0])
	if err != nil {
		return fmt.Errorf("get trade: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("date") {
		t.Date = tradeDate
	}
	if flags.Changed("pnl") {
		t.PnL = tradePnL
	}
	if flags.Changed("strategy") {
		t.Strategy = tradeStrategy
	}
	if flags.Changed("emotion") {
		t.Emotion = tradeEmotion
	}
	if flags.Changed("portfolio") {
		t.PortfolioID = tradePortfolio
	}
	if flags.Changed("notes") {
		t.Notes = tradeNotes
	}

	if err := j.ReplaceTrade(t); err != nil {
		return fmt.Errorf("update trade: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Updated %s\n", t.ID)
	return nil
}

func runTradeDelete(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.DeleteTrade(args[0]); err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted %s\n", args[0])
	return nil
}

// filterFlags are the trade selection flags shared by list, metrics and
// streaks.
type filterFlags struct {
	portfolios []string
	strategy   string
	emotion    string
	from       string
	to         string
}

func (f *filterFlags) register(c *cobra.Command) {
	c.Flags().StringSliceVarP(&f.portfolios, "portfolio", "p", nil, "portfolio ids to include (default all)")
	c.Flags().StringVarP(&f.strategy, "strategy", "s", "", "only trades with this strategy tag")
	c.Flags().StringVarP(&f.emotion, "emotion", "e", "", "only trades with this emotion tag")
	c.Flags().StringVar(&f.from, "from", "", "first date YYYY-MM-DD")
	c.Flags().StringVar(&f.to, "to", "", "last date YYYY-MM-DD")
}

func (f *filterFlags) filter() journal.Filter {
	return journal.Filter{
		Portfolios: f.portfolios,
		Strategy:   f.strategy,
		Emotion:    f.emotion,
		From:       f.from,
		To:         f.to,
	}
}

func (f *filterFlags) validate() error {
	for _, d := range []string{f.from, f.to} {
		if d != "" && !journal.ValidDate(d) {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", d)
		}
	}
	return nil
}

// dated keeps the trades within the --from/--to bounds.
func (f *filterFlags) dated(trades []journal.Trade) []journal.Trade {
	return journal.Filter{From: f.from, To: f.to}.Apply(trades)
}

// describe summarizes the active filter for report headers.
func (f *filterFlags) describe() string {
	var parts []string
	if len(f.portfolios) > 0 {
		parts = append(parts, "portfolio="+strings.Join(f.portfolios, ","))
	}
	if f.strategy != "" {
		parts = append(parts, "strategy="+f.strategy)
	}
	if f.emotion != "" {
		parts = append(parts, "emotion="+f.emotion)
	}
	return strings.Join(parts, " ")
}
