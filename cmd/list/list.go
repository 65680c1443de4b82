// Package list handles listing recorded transactions
package list

import (
	"moneybook/ledger/cmd/common"
	"moneybook/ledger/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded transactions",
	Long:  `List transactions, optionally restricted to a month or an inclusive date range.`,
	Run:   listFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Month, "month", "m", "", "Restrict to a month (YYYY-MM)")
	Cmd.Flags().StringVar(&root.StartDate, "from", "", "Start date (YYYY-MM-DD)")
	Cmd.Flags().StringVar(&root.EndDate, "to", "", "End date (YYYY-MM-DD)")
}

func listFunc(cmd *cobra.Command, args []string) {
	ts := root.Transactions()

	switch {
	case root.Month != "":
		common.PrintTransactions(ts.ByMonth(root.Month))
	case root.StartDate != "" && root.EndDate != "":
		common.PrintTransactions(ts.ByDateRange(root.StartDate, root.EndDate))
	default:
		common.PrintTransactions(ts.All())
	}
}
