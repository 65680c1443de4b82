// Package search handles transaction search commands
package search

import (
	"moneybook/ledger/cmd/common"
	"moneybook/ledger/cmd/root"
	"moneybook/ledger/internal/store"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Cmd represents the search command
var Cmd = &cobra.Command{
	Use:   "search",
	Short: "Search transactions by keyword, type, category, date range or amount",
	Long: `Search transactions. All given filters must match. The keyword matches
against note, category and the amount text.`,
	Run: searchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Keyword, "keyword", "q", "", "Keyword to match against note, category or amount")
	Cmd.Flags().StringVarP(&root.Kind, "type", "t", "", "Transaction type (收入 or 支出)")
	Cmd.Flags().StringVarP(&root.Category, "category", "c", "", "Exact category name")
	Cmd.Flags().StringVar(&root.StartDate, "from", "", "Start date (YYYY-MM-DD)")
	Cmd.Flags().StringVar(&root.EndDate, "to", "", "End date (YYYY-MM-DD)")
	Cmd.Flags().StringVar(&root.MinAmount, "min", "", "Minimum amount")
	Cmd.Flags().StringVar(&root.MaxAmount, "max", "", "Maximum amount")
}

func searchFunc(cmd *cobra.Command, args []string) {
	q := store.Query{
		Keyword:   root.Keyword,
		Category:  root.Category,
		StartDate: root.StartDate,
		EndDate:   root.EndDate,
	}

	if root.Kind != "" {
		kind, err := common.ParseKind(root.Kind)
		if err != nil {
			root.Log.Error(err)
			return
		}
		q.Kind = kind
	}

	q.MinAmount = parseBound("min", root.MinAmount)
	q.MaxAmount = parseBound("max", root.MaxAmount)

	common.PrintTransactions(root.Transactions().Search(q))
}

func parseBound(name, value string) *decimal.Decimal {
	if value == "" {
		return nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		root.Log.Warnf("Ignoring invalid %s amount %q: %v", name, value, err)
		return nil
	}
	return &d
}
