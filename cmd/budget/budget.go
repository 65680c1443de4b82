// Package budget handles monthly category budget commands
package budget

import (
	"fmt"
	"sort"

	"moneybook/ledger/cmd/root"
	"moneybook/ledger/internal/dateutils"
	"moneybook/ledger/internal/models"
	"moneybook/ledger/internal/stats"

	"github.com/spf13/cobra"
)

// Cmd represents the budget command
var Cmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage monthly category budgets",
	Long:  `Set, update, delete and list monthly category budgets, and report actual spending against them.`,
}

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a budget for a category and month",
	Run:   setFunc,
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update an existing budget by ID",
	Run:   updateFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a budget by ID",
	Run:   deleteFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List budgets, optionally for one month",
	Run:   listFunc,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report actual spending against a month's budgets",
	Run:   reportFunc,
}

func init() {
	setCmd.Flags().StringVarP(&root.Category, "category", "c", "", "Budget category")
	setCmd.Flags().StringVarP(&root.Amount, "amount", "a", "", "Budget amount")
	setCmd.Flags().StringVarP(&root.Month, "month", "m", "", "Budget month (YYYY-MM)")
	setCmd.Flags().StringVarP(&root.Note, "note", "n", "", "Budget note")
	_ = setCmd.MarkFlagRequired("category")
	_ = setCmd.MarkFlagRequired("amount")
	_ = setCmd.MarkFlagRequired("month")

	updateCmd.Flags().StringVar(&root.ID, "id", "", "Budget ID to update")
	updateCmd.Flags().StringVarP(&root.Amount, "amount", "a", "", "New amount")
	updateCmd.Flags().StringVarP(&root.Month, "month", "m", "", "New month (YYYY-MM)")
	updateCmd.Flags().StringVarP(&root.Note, "note", "n", "", "New note")
	_ = updateCmd.MarkFlagRequired("id")
	_ = updateCmd.MarkFlagRequired("amount")
	_ = updateCmd.MarkFlagRequired("month")

	deleteCmd.Flags().StringVar(&root.ID, "id", "", "Budget ID to delete")
	_ = deleteCmd.MarkFlagRequired("id")

	listCmd.Flags().StringVarP(&root.Month, "month", "m", "", "Restrict to a month (YYYY-MM)")

	reportCmd.Flags().StringVarP(&root.Month, "month", "m", "", "Month to report (YYYY-MM)")
	_ = reportCmd.MarkFlagRequired("month")

	Cmd.AddCommand(setCmd, updateCmd, deleteCmd, listCmd, reportCmd)
}

// validMonth rejects months the reporting side cannot parse, so a budget
// never ends up listed but invisible to the monthly analysis.
func validMonth(month string) bool {
	_, err := dateutils.ParseMonth(month)
	return err == nil
}

func setFunc(cmd *cobra.Command, args []string) {
	if !validMonth(root.Month) {
		root.Log.Errorf("Invalid month %q: expected YYYY-MM", root.Month)
		return
	}

	bs := root.Budgets()
	amount := models.ParseAmount(root.Amount)
	if !bs.Create(root.Category, amount, root.Month, root.Note) {
		root.Log.Errorf("Failed to set budget: invalid fields or %s already budgeted for %s",
			root.Category, root.Month)
		return
	}

	budget, _ := bs.ByCategoryAndMonth(root.Category, root.Month)
	root.Log.Infof("Set budget %s: %s %s for %s", budget.ID, budget.Category,
		budget.Amount.StringFixed(2), budget.Month)
}

func updateFunc(cmd *cobra.Command, args []string) {
	if !validMonth(root.Month) {
		root.Log.Errorf("Invalid month %q: expected YYYY-MM", root.Month)
		return
	}

	bs := root.Budgets()
	amount := models.ParseAmount(root.Amount)
	if !bs.Update(root.ID, amount, root.Month, root.Note) {
		root.Log.Errorf("Failed to update budget %s: not found, invalid fields, or month already budgeted", root.ID)
		return
	}
	root.Log.Infof("Updated budget %s", root.ID)
}

func deleteFunc(cmd *cobra.Command, args []string) {
	if !root.Budgets().Delete(root.ID) {
		root.Log.Errorf("Budget %s not found", root.ID)
		return
	}
	root.Log.Infof("Deleted budget %s", root.ID)
}

func listFunc(cmd *cobra.Command, args []string) {
	bs := root.Budgets()

	budgets := bs.All()
	if root.Month != "" {
		budgets = bs.ByMonth(root.Month)
	}
	if len(budgets) == 0 {
		fmt.Println("No budgets found.")
		return
	}

	sort.Slice(budgets, func(i, j int) bool {
		if budgets[i].Month != budgets[j].Month {
			return budgets[i].Month < budgets[j].Month
		}
		return budgets[i].ID < budgets[j].ID
	})

	fmt.Printf("%-8s  %-7s  %-8s  %12s  %s\n", "ID", "Month", "Category", "Amount", "Note")
	for _, b := range budgets {
		fmt.Printf("%-8s  %-7s  %-8s  %12s  %s\n",
			b.ID, b.Month, b.Category, b.Amount.StringFixed(2), b.Note)
	}
}

func reportFunc(cmd *cobra.Command, args []string) {
	engine := stats.NewEngine(root.Transactions(), root.Budgets())

	reports := engine.BudgetAnalysis(root.Month)
	if len(reports) == 0 {
		fmt.Printf("No budgets set for %s.\n", root.Month)
		return
	}

	names := make([]string, 0, len(reports))
	for name := range reports {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("%-8s  %12s  %12s  %12s  %7s\n", "Category", "Budget", "Actual", "Remaining", "Used")
	for _, name := range names {
		r := reports[name]
		marker := ""
		if r.OverBudget {
			marker = "  OVER"
		}
		fmt.Printf("%-8s  %12s  %12s  %12s  %6.1f%%%s\n",
			name, r.BudgetAmount.StringFixed(2), r.ActualExpense.StringFixed(2),
			r.Remaining.StringFixed(2), r.UsageRate, marker)
	}
}
