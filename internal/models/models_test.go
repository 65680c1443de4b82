package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestKindValid(t *testing.T) {
	assert.True(t, KindIncome.Valid())
	assert.True(t, KindExpense.Valid())
	assert.False(t, Kind("").Valid())
	assert.False(t, Kind("转账").Valid())
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"123.45", "123.45"},
		{" 123.45 ", "123.45"},
		{"123,45", "123.45"},
		{"0", "0"},
		{"not-a-number", "0"},
		{"", "0"},
	}

	for _, tt := range tests {
		got := ParseAmount(tt.input)
		assert.Equal(t, tt.expected, got.String(), "input %q", tt.input)
	}
}

func TestTransactionJSONRoundTrip(t *testing.T) {
	tx := Transaction{
		ID:       "T000001",
		Amount:   decimal.NewFromFloat(5000),
		Kind:     KindIncome,
		Category: "工资",
		Date:     "2024-01-05",
		Note:     "一月工资",
	}

	data, err := json.Marshal(tx)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"transaction_id":"T000001"`)
	assert.Contains(t, string(data), `"type":"收入"`)

	var decoded Transaction
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, tx.ID, decoded.ID)
	assert.True(t, tx.Amount.Equal(decoded.Amount))
	assert.Equal(t, tx.Kind, decoded.Kind)
	assert.Equal(t, tx.Category, decoded.Category)
	assert.Equal(t, tx.Date, decoded.Date)
	assert.Equal(t, tx.Note, decoded.Note)
}

func TestBudgetJSONFieldNames(t *testing.T) {
	b := Budget{
		ID:       "B000001",
		Category: "餐饮",
		Amount:   decimal.NewFromInt(1000),
		Month:    "2024-01",
	}

	data, err := json.Marshal(b)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"budget_id":"B000001"`)
	assert.Contains(t, string(data), `"month":"2024-01"`)
}
