package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/how0531/TradeTrack-1-sub000/journal"
	"github.com/how0531/TradeTrack-1-sub000/metrics"
	"github.com/how0531/TradeTrack-1-sub000/period"
	"github.com/how0531/TradeTrack-1-sub000/report"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Compute the equity curve and performance statistics",
	Long: `Compute equity, drawdown, trade statistics and per-strategy breakdowns.

--from and --to only limit the periods shown on the curve; statistics
always cover every trade that matches the portfolio, strategy and emotion
filters. Streaks are read from the trades dated within --from and --to,
the same as the streaks command.

Examples:
  tradetrack metrics --freq weekly
  tradetrack metrics --strategy breakout --from 2024-01-01 --curve
  tradetrack metrics --png equity.png --org review.org`,
	Args: cobra.NoArgs,
	RunE: runMetrics,
}

var streaksCmd = &cobra.Command{
	Use:   "streaks",
	Short: "Show current and best win/loss streaks",
	Args:  cobra.NoArgs,
	RunE:  runStreaks,
}

var (
	metricsFilter filterFlags
	metricsFreq   string
	metricsLang   string
	metricsCurve  bool
	metricsJSON   bool
	metricsPNG    string
	metricsOrg    string

	streaksFilter filterFlags
	streaksGap    int
)

func init() {
	rootCmd.AddCommand(metricsCmd, streaksCmd)

	metricsFilter.register(metricsCmd)
	metricsCmd.Flags().StringVarP(&metricsFreq, "freq", "f", "", "period: daily, weekly, monthly, quarterly, yearly (default from config)")
	metricsCmd.Flags().StringVar(&metricsLang, "lang", "", "label language: en or zh (default from config)")
	metricsCmd.Flags().BoolVar(&metricsCurve, "curve", false, "print the equity curve table")
	metricsCmd.Flags().BoolVar(&metricsJSON, "json", false, "print the full result as JSON")
	metricsCmd.Flags().StringVar(&metricsPNG, "png", "", "write an equity chart PNG to this path")
	metricsCmd.Flags().StringVar(&metricsOrg, "org", "", "write an Org-mode review to this path")

	streaksFilter.register(streaksCmd)
	streaksCmd.Flags().IntVar(&streaksGap, "gap", -1, "days between trades that end a current streak, 0 disables (default from config)")
}

// analysisInput loads the trades selected by f along with the portfolios
// whose capital forms the baseline. Date bounds are not applied here.
func analysisInput(f *filterFlags) ([]journal.Trade, []journal.Portfolio, []string, error) {
	if err := f.validate(); err != nil {
		return nil, nil, nil, err
	}

	j, err := openJournal()
	if err != nil {
		return nil, nil, nil, err
	}
	defer j.Close()

	trades, err := j.ListTrades()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("query trades: %w", err)
	}
	ps, err := portfolios(j)
	if err != nil {
		return nil, nil, nil, err
	}

	active := f.portfolios
	if len(active) == 0 && len(cfg.Report.ActivePortfolios) > 0 {
		active = cfg.Report.ActivePortfolios
	}

	sel := f.filter()
	sel.Portfolios = active
	sel.From, sel.To = "", ""
	return sel.Apply(trades), ps, active, nil
}

func runMetrics(cmd *cobra.Command, args []string) error {
	freq := cfg.Frequency()
	if metricsFreq != "" {
		var err error
		if freq, err = period.ParseFrequency(metricsFreq); err != nil {
			return err
		}
	}
	lang := cfg.Report.Language
	if metricsLang != "" {
		lang = metricsLang
	}

	trades, ps, active, err := analysisInput(&metricsFilter)
	if err != nil {
		return err
	}

	m := metrics.Compute(trades, ps, metrics.Options{
		ActivePortfolios: active,
		Frequency:        freq,
		Language:         lang,
		StartDate:        metricsFilter.from,
		EndDate:          metricsFilter.to,
	})
	s := metrics.ComputeStreaksWithGap(metricsFilter.dated(trades), cfg.Report.StreakGapDays)

	out := cmd.OutOrStdout()
	if metricsJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			metrics.Metrics
			Streaks metrics.Streaks `json:"streaks"`
		}{m, s})
	}

	report.PrintMetrics(out, m)
	report.PrintStreaks(out, s)
	if len(m.StrategyStats) > 0 {
		report.PrintStrategies(out, m.StrategyStats)
		fmt.Fprintln(out)
	}
	if metricsCurve {
		report.PrintCurve(out, m)
		fmt.Fprintln(out)
	}

	title := metricsFilter.describe()
	if metricsPNG != "" {
		if err := report.WriteEquityChart(metricsPNG, m, title); err != nil {
			return fmt.Errorf("equity chart: %w", err)
		}
		fmt.Fprintf(out, "Equity Curve:  %s\n", metricsPNG)
	}
	if metricsOrg != "" {
		r := report.OrgReport{
			Title:     title,
			Created:   time.Now(),
			From:      metricsFilter.from,
			To:        metricsFilter.to,
			Filter:    title,
			Metrics:   m,
			Streaks:   s,
			EquityPNG: metricsPNG,
		}
		if err := report.WriteMetricsOrg(metricsOrg, r); err != nil {
			return fmt.Errorf("org report: %w", err)
		}
		fmt.Fprintf(out, "Org Report:    %s\n", metricsOrg)
	}
	return nil
}

func runStreaks(cmd *cobra.Command, args []string) error {
	trades, _, _, err := analysisInput(&streaksFilter)
	if err != nil {
		return err
	}
	trades = streaksFilter.dated(trades)

	gap := cfg.Report.StreakGapDays
	if streaksGap >= 0 {
		gap = streaksGap
	}
	report.PrintStreaks(cmd.OutOrStdout(), metrics.ComputeStreaksWithGap(trades, gap))
	return nil
}
