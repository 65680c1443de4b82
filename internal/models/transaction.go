// Package models provides the data structures used throughout the application.
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Kind is the direction of a transaction: income or expense.
// The literals are the exact strings written to the data files, so changing
// them would orphan existing records.
type Kind string

const (
	KindIncome  Kind = "收入"
	KindExpense Kind = "支出"
)

// Valid reports whether k is one of the two known kinds.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Kinds lists the two transaction kinds in display order.
func Kinds() []Kind {
	return []Kind{KindIncome, KindExpense}
}

// Transaction represents a single ledger entry.
// Date is kept as a YYYY-MM-DD string; the stores validate it on every write
// and parse it on demand for range queries.
type Transaction struct {
	ID       string          `json:"transaction_id"`
	Amount   decimal.Decimal `json:"amount"`
	Kind     Kind            `json:"type"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
	Note     string          `json:"note"`
}

// ParseAmount parses a string amount to decimal.Decimal.
// Returns decimal.Zero when the string is not a valid number.
func ParseAmount(amountStr string) decimal.Decimal {
	amount := strings.TrimSpace(amountStr)
	amount = strings.ReplaceAll(amount, ",", ".")
	amount = strings.ReplaceAll(amount, " ", "")

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}
