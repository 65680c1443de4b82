package models

import "github.com/shopspring/decimal"

// Budget caps spending for one category during one calendar month.
// Month is a YYYY-MM string. At most one budget may exist per
// (category, month) pair; the budget store enforces this on create.
type Budget struct {
	ID       string          `json:"budget_id"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Month    string          `json:"month"`
	Note     string          `json:"note"`
}
