// Package export handles CSV export commands
package export

import (
	"moneybook/ledger/cmd/common"
	"moneybook/ledger/cmd/root"
	"moneybook/ledger/internal/export"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export transactions to a CSV file",
	Long:  `Export transactions to CSV, optionally restricted to a month or an inclusive date range.`,
	Run:   exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Output, "output", "o", "", "Output CSV file")
	Cmd.Flags().StringVarP(&root.Month, "month", "m", "", "Restrict to a month (YYYY-MM)")
	Cmd.Flags().StringVar(&root.StartDate, "from", "", "Start date (YYYY-MM-DD)")
	Cmd.Flags().StringVar(&root.EndDate, "to", "", "End date (YYYY-MM-DD)")
	_ = Cmd.MarkFlagRequired("output")
}

func exportFunc(cmd *cobra.Command, args []string) {
	ts := root.Transactions()

	txs := ts.All()
	switch {
	case root.Month != "":
		txs = ts.ByMonth(root.Month)
	case root.StartDate != "" && root.EndDate != "":
		txs = ts.ByDateRange(root.StartDate, root.EndDate)
	}
	common.SortByDateDesc(txs)

	if err := export.WriteTransactionsCSV(txs, root.Output); err != nil {
		root.Log.Errorf("Export failed: %v", err)
		return
	}
	root.Log.Infof("Exported %d transaction(s) to %s", len(txs), root.Output)
}
