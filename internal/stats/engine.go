// Package stats computes period statistics and budget-usage analysis over
// the ledger stores. The engine is a pure read side: it holds no state of
// its own and recomputes every result from the stores' current snapshots.
package stats

import (
	"moneybook/ledger/internal/dateutils"
	"moneybook/ledger/internal/models"
	"moneybook/ledger/internal/store"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Engine aggregates transactions and budgets. The budget store is optional;
// without one, BudgetAnalysis degrades to an empty result.
type Engine struct {
	transactions *store.TransactionStore
	budgets      *store.BudgetStore
}

// NewEngine creates an engine over a transaction store and an optional
// budget store (may be nil).
func NewEngine(transactions *store.TransactionStore, budgets *store.BudgetStore) *Engine {
	return &Engine{
		transactions: transactions,
		budgets:      budgets,
	}
}

func (e *Engine) sumByKind(start, end string, kind models.Kind) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range e.transactions.ByDateRange(start, end) {
		if tx.Kind == kind {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// TotalIncome sums income amounts over the inclusive date range.
func (e *Engine) TotalIncome(start, end string) decimal.Decimal {
	return e.sumByKind(start, end, models.KindIncome)
}

// TotalExpense sums expense amounts over the inclusive date range.
func (e *Engine) TotalExpense(start, end string) decimal.Decimal {
	return e.sumByKind(start, end, models.KindExpense)
}

// NetBalance is total income minus total expense for the range.
func (e *Engine) NetBalance(start, end string) decimal.Decimal {
	return e.TotalIncome(start, end).Sub(e.TotalExpense(start, end))
}

func (e *Engine) byCategory(start, end string, kind models.Kind) map[string]decimal.Decimal {
	out := map[string]decimal.Decimal{}
	for _, tx := range e.transactions.ByDateRange(start, end) {
		if tx.Kind != kind {
			continue
		}
		out[tx.Category] = out[tx.Category].Add(tx.Amount)
	}
	return out
}

// IncomeByCategory maps each income category to its summed amount for the
// range. The map is unordered; display sorting is the caller's concern.
func (e *Engine) IncomeByCategory(start, end string) map[string]decimal.Decimal {
	return e.byCategory(start, end, models.KindIncome)
}

// ExpenseByCategory maps each expense category to its summed amount for the
// range.
func (e *Engine) ExpenseByCategory(start, end string) map[string]decimal.Decimal {
	return e.byCategory(start, end, models.KindExpense)
}

// Counts holds per-kind transaction counts for a range.
type Counts struct {
	Income  int
	Expense int
	Total   int
}

// CountByKind counts the transactions of each kind in the range.
func (e *Engine) CountByKind(start, end string) Counts {
	var c Counts
	for _, tx := range e.transactions.ByDateRange(start, end) {
		switch tx.Kind {
		case models.KindIncome:
			c.Income++
		case models.KindExpense:
			c.Expense++
		}
		c.Total++
	}
	return c
}

// Share returns amount as an unrounded percentage of total, 0 when total is
// zero. Rounding to one decimal place is a display concern.
func Share(amount, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	share, _ := amount.Div(total).Mul(hundred).Float64()
	return share
}

// BudgetReport describes the usage of one category's budget in one month.
type BudgetReport struct {
	BudgetAmount  decimal.Decimal
	ActualExpense decimal.Decimal
	Remaining     decimal.Decimal
	UsageRate     float64
	OverBudget    bool
}

// BudgetAnalysis compares each budget of the month against the month's
// actual expenses in that category. Categories match by exact string
// equality. Only budgeted categories appear in the result; with no budget
// store attached the result is empty.
func (e *Engine) BudgetAnalysis(month string) map[string]BudgetReport {
	out := map[string]BudgetReport{}
	if e.budgets == nil {
		return out
	}

	budgets := e.budgets.ByMonth(month)
	if len(budgets) == 0 {
		return out
	}

	first, last, err := dateutils.MonthRange(month)
	if err != nil {
		return out
	}
	expenses := e.ExpenseByCategory(first, last)

	for _, b := range budgets {
		actual := expenses[b.Category]
		report := BudgetReport{
			BudgetAmount:  b.Amount,
			ActualExpense: actual,
			Remaining:     b.Amount.Sub(actual),
			OverBudget:    actual.GreaterThan(b.Amount),
		}
		if !b.Amount.IsZero() {
			report.UsageRate, _ = actual.Div(b.Amount).Mul(hundred).Float64()
		}
		out[b.Category] = report
	}
	return out
}
