// Package common provides helpers shared by the CLI commands.
package common

import (
	"fmt"
	"sort"
	"strings"

	"moneybook/ledger/internal/models"
)

// ParseKind maps a command-line type flag to a transaction kind. Both the
// stored literals and English aliases are accepted.
func ParseKind(s string) (models.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(models.KindIncome), "income", "in":
		return models.KindIncome, nil
	case string(models.KindExpense), "expense", "out":
		return models.KindExpense, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q (expected %s or %s)",
			s, models.KindIncome, models.KindExpense)
	}
}

// SortByDateDesc orders transactions newest first, falling back to ID so the
// output is stable. The input slice is modified in place; callers pass copies.
func SortByDateDesc(txs []models.Transaction) {
	sort.Slice(txs, func(i, j int) bool {
		if txs[i].Date != txs[j].Date {
			return txs[i].Date > txs[j].Date
		}
		return txs[i].ID > txs[j].ID
	})
}

// PrintTransactions writes a transaction table to stdout, newest first.
func PrintTransactions(txs []models.Transaction) {
	if len(txs) == 0 {
		fmt.Println("No transactions found.")
		return
	}

	SortByDateDesc(txs)
	fmt.Printf("%-8s  %-10s  %-4s  %-8s  %12s  %s\n",
		"ID", "Date", "Type", "Category", "Amount", "Note")
	for _, tx := range txs {
		fmt.Printf("%-8s  %-10s  %-4s  %-8s  %12s  %s\n",
			tx.ID, tx.Date, tx.Kind, tx.Category, tx.Amount.StringFixed(2), tx.Note)
	}
	fmt.Printf("%d transaction(s)\n", len(txs))
}
