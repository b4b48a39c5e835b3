package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/how0531/TradeTrack-1-sub000/journal"
	"github.com/how0531/TradeTrack-1-sub000/report"
)

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Manage portfolios and their starting capital",
	Long: `Portfolios group trades and carry the initial capital the equity
curve starts from. Until a portfolio is saved to the journal, the ones in
the config file are used.

Examples:
  tradetrack portfolio add swing --name "Swing" --capital 25000
  tradetrack portfolio list`,
}

var portfolioAddCmd = &cobra.Command{
	Use:   "add <portfolio-id>",
	Short: "Create or update a portfolio",
	Args:  cobra.ExactArgs(1),
	RunE:  runPortfolioAdd,
}

var portfolioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List portfolios",
	Args:  cobra.NoArgs,
	RunE:  runPortfolioList,
}

var (
	portfolioName        string
	portfolioCapital     float64
	portfolioProfitColor string
	portfolioLossColor   string
)

func init() {
	rootCmd.AddCommand(portfolioCmd)
	portfolioCmd.AddCommand(portfolioAddCmd, portfolioListCmd)

	portfolioAddCmd.Flags().StringVarP(&portfolioName, "name", "n", "", "display name (default the id)")
	portfolioAddCmd.Flags().Float64Var(&portfolioCapital, "capital", 0, "initial capital")
	portfolioAddCmd.Flags().StringVar(&portfolioProfitColor, "profit-color", "", "chart color for gains")
	portfolioAddCmd.Flags().StringVar(&portfolioLossColor, "loss-color", "", "chart color for losses")
	_ = portfolioAddCmd.MarkFlagRequired("capital")
}

func runPortfolioAdd(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	p := journal.Portfolio{
		ID:             args[0],
		Name:           portfolioName,
		InitialCapital: portfolioCapital,
		ProfitColor:    portfolioProfitColor,
		LossColor:      portfolioLossColor,
	}
	if p.Name == "" {
		p.Name = p.ID
	}
	if err := j.SavePortfolio(p); err != nil {
		return fmt.Errorf("save portfolio: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved portfolio %s (%.2f)\n", p.ID, p.InitialCapital)
	return nil
}

func runPortfolioList(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	ps, err := portfolios(j)
	if err != nil {
		return err
	}
	report.PrintPortfolios(cmd.OutOrStdout(), ps)
	return nil
}
