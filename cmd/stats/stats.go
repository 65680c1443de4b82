// Package stats handles statistics commands
package stats

import (
	"fmt"
	"sort"
	"time"

	"moneybook/ledger/cmd/root"
	"moneybook/ledger/internal/dateutils"
	"moneybook/ledger/internal/stats"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Cmd represents the stats command
var Cmd = &cobra.Command{
	Use:   "stats",
	Short: "Show income, expense and category statistics",
	Long: `Show totals, counts and per-category breakdowns for a month or an
inclusive date range. Without a filter, the current month is shown.`,
	Run: statsFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Month, "month", "m", "", "Restrict to a month (YYYY-MM)")
	Cmd.Flags().StringVar(&root.StartDate, "from", "", "Start date (YYYY-MM-DD)")
	Cmd.Flags().StringVar(&root.EndDate, "to", "", "End date (YYYY-MM-DD)")
}

func statsFunc(cmd *cobra.Command, args []string) {
	start, end, err := resolveRange(root.Month, root.StartDate, root.EndDate)
	if err != nil {
		root.Log.Errorf("Invalid month %q: %v", root.Month, err)
		return
	}

	engine := stats.NewEngine(root.Transactions(), nil)

	income := engine.TotalIncome(start, end)
	expense := engine.TotalExpense(start, end)
	counts := engine.CountByKind(start, end)

	fmt.Printf("Income:  %s (%d)\n", income.StringFixed(2), counts.Income)
	fmt.Printf("Expense: %s (%d)\n", expense.StringFixed(2), counts.Expense)
	fmt.Printf("Balance: %s\n", engine.NetBalance(start, end).StringFixed(2))

	printBreakdown("Income by category", engine.IncomeByCategory(start, end), income)
	printBreakdown("Expense by category", engine.ExpenseByCategory(start, end), expense)
}

// resolveRange turns the month and date flags into a concrete inclusive
// range. With no filter at all, the current month is used, matching the
// default period of the statistics screen.
func resolveRange(month, from, to string) (string, string, error) {
	if month == "" && from == "" && to == "" {
		month = time.Now().Format(dateutils.LayoutMonth)
	}
	if month != "" {
		return dateutils.MonthRange(month)
	}
	return from, to, nil
}

// printBreakdown prints one kind's category totals sorted by amount
// descending, with each category's share of the kind total.
func printBreakdown(title string, byCategory map[string]decimal.Decimal, total decimal.Decimal) {
	if len(byCategory) == 0 {
		return
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := byCategory[names[i]], byCategory[names[j]]
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return names[i] < names[j]
	})

	fmt.Printf("\n%s:\n", title)
	for _, name := range names {
		amount := byCategory[name]
		fmt.Printf("  %-8s  %12s  %5.1f%%\n", name, amount.StringFixed(2), stats.Share(amount, total))
	}
}
