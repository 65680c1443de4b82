package store

import (
	"os"
	"path/filepath"
	"testing"

	"moneybook/ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransactionStore(t *testing.T) *TransactionStore {
	t.Helper()
	return NewTransactionStore(filepath.Join(t.TempDir(), "transactions.json"))
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCreateTransaction(t *testing.T) {
	s := newTestTransactionStore(t)

	ok := s.Create(dec("300"), models.KindExpense, "餐饮", "2024-01-10", "午餐")
	assert.True(t, ok)
	assert.Equal(t, 1, s.Len())

	tx, found := s.Get("T000001")
	require.True(t, found)
	assert.True(t, tx.Amount.Equal(dec("300")))
	assert.Equal(t, models.KindExpense, tx.Kind)
	assert.Equal(t, "餐饮", tx.Category)
	assert.Equal(t, "2024-01-10", tx.Date)
	assert.Equal(t, "午餐", tx.Note)
}

func TestCreateRejectsInvalidAmount(t *testing.T) {
	s := newTestTransactionStore(t)

	for _, amount := range []string{"0", "-1", "-0.01", "-999999"} {
		ok := s.Create(dec(amount), models.KindExpense, "餐饮", "2024-01-10", "")
		assert.False(t, ok, "amount %s should be rejected", amount)
		assert.Equal(t, 0, s.Len(), "collection must stay unchanged")
	}
}

func TestCreateRejectsInvalidDate(t *testing.T) {
	s := newTestTransactionStore(t)

	for _, date := range []string{"2024-02-30", "2024-13-01", "10.01.2024", "", "yesterday"} {
		ok := s.Create(dec("10"), models.KindExpense, "餐饮", date, "")
		assert.False(t, ok, "date %q should be rejected", date)
	}
	assert.Equal(t, 0, s.Len())
}

func TestUpdateTransaction(t *testing.T) {
	s := newTestTransactionStore(t)
	require.True(t, s.Create(dec("100"), models.KindExpense, "餐饮", "2024-01-10", "old"))

	ok := s.Update("T000001", dec("250"), models.KindIncome, "投资", "2024-02-01", "new")
	assert.True(t, ok)

	tx, _ := s.Get("T000001")
	assert.True(t, tx.Amount.Equal(dec("250")))
	assert.Equal(t, models.KindIncome, tx.Kind)
	assert.Equal(t, "投资", tx.Category)
	assert.Equal(t, "2024-02-01", tx.Date)
	assert.Equal(t, "new", tx.Note)
}

func TestUpdateUnknownIDLeavesCollectionUnchanged(t *testing.T) {
	s := newTestTransactionStore(t)
	require.True(t, s.Create(dec("100"), models.KindExpense, "餐饮", "2024-01-10", "x"))
	before := s.All()

	assert.False(t, s.Update("T999999", dec("250"), models.KindIncome, "投资", "2024-02-01", "y"))
	assert.Equal(t, before, s.All())
}

func TestUpdateRejectsInvalidInput(t *testing.T) {
	s := newTestTransactionStore(t)
	require.True(t, s.Create(dec("100"), models.KindExpense, "餐饮", "2024-01-10", "x"))

	assert.False(t, s.Update("T000001", dec("0"), models.KindExpense, "餐饮", "2024-01-10", ""))
	assert.False(t, s.Update("T000001", dec("10"), models.KindExpense, "餐饮", "2024-02-30", ""))

	tx, _ := s.Get("T000001")
	assert.True(t, tx.Amount.Equal(dec("100")), "record must stay untouched")
}

func TestDeleteIsIdempotentFalse(t *testing.T) {
	s := newTestTransactionStore(t)
	require.True(t, s.Create(dec("100"), models.KindExpense, "餐饮", "2024-01-10", ""))

	assert.True(t, s.Delete("T000001"))
	assert.False(t, s.Delete("T000001"))
	assert.Equal(t, 0, s.Len())
}

func TestIDsNeverReusedAfterDeletion(t *testing.T) {
	// Regression for the classic length-derived id bug: create 3, delete the
	// 2nd, create a 4th — the new id must not collide with any existing one.
	s := newTestTransactionStore(t)
	for i := 0; i < 3; i++ {
		require.True(t, s.Create(dec("10"), models.KindExpense, "餐饮", "2024-01-10", ""))
	}
	require.True(t, s.Delete("T000002"))
	require.True(t, s.Create(dec("10"), models.KindExpense, "餐饮", "2024-01-11", ""))

	seen := map[string]bool{}
	for _, tx := range s.All() {
		assert.False(t, seen[tx.ID], "duplicate id %s", tx.ID)
		seen[tx.ID] = true
	}
	assert.True(t, seen["T000004"], "counter must keep advancing past deleted ids")
}

func TestByDateRangeInclusiveBounds(t *testing.T) {
	s := newTestTransactionStore(t)
	dates := []string{"2024-01-09", "2024-01-10", "2024-01-15", "2024-01-20", "2024-01-21"}
	for _, d := range dates {
		require.True(t, s.Create(dec("10"), models.KindExpense, "餐饮", d, ""))
	}

	got := s.ByDateRange("2024-01-10", "2024-01-20")
	require.Len(t, got, 3)
	assert.Equal(t, "2024-01-10", got[0].Date)
	assert.Equal(t, "2024-01-20", got[2].Date)
}

func TestByDateRangeInvalidBoundsYieldEmpty(t *testing.T) {
	s := newTestTransactionStore(t)
	require.True(t, s.Create(dec("10"), models.KindExpense, "餐饮", "2024-01-10", ""))

	assert.Empty(t, s.ByDateRange("not-a-date", "2024-01-31"))
	assert.Empty(t, s.ByDateRange("2024-01-01", "2024-02-30"))
}

func TestByMonth(t *testing.T) {
	s := newTestTransactionStore(t)
	require.True(t, s.Create(dec("10"), models.KindExpense, "餐饮", "2024-12-01", ""))
	require.True(t, s.Create(dec("10"), models.KindExpense, "餐饮", "2024-12-31", ""))
	require.True(t, s.Create(dec("10"), models.KindExpense, "餐饮", "2025-01-01", ""))

	// December delegates to a range ending on the 31st, across the year boundary
	assert.Len(t, s.ByMonth("2024-12"), 2)
	assert.Len(t, s.ByMonth("2025-01"), 1)
	assert.Empty(t, s.ByMonth("13-2024"))
}

func TestSearchSingleFilters(t *testing.T) {
	s := newTestTransactionStore(t)
	require.True(t, s.Create(dec("5000"), models.KindIncome, "工资", "2024-01-05", "January Salary"))
	require.True(t, s.Create(dec("300"), models.KindExpense, "餐饮", "2024-01-10", "团建聚餐"))
	require.True(t, s.Create(dec("1000"), models.KindIncome, "奖金", "2024-01-20", ""))

	// Keyword is case-insensitive against note
	assert.Len(t, s.Search(Query{Keyword: "salary"}), 1)
	// Keyword matches category substrings
	assert.Len(t, s.Search(Query{Keyword: "餐"}), 1)
	// Keyword matches the amount's decimal string
	assert.Len(t, s.Search(Query{Keyword: "500"}), 1)

	assert.Len(t, s.Search(Query{Kind: models.KindIncome}), 2)
	assert.Len(t, s.Search(Query{Category: "奖金"}), 1)

	min := dec("400")
	assert.Len(t, s.Search(Query{MinAmount: &min}), 2)
	max := dec("1000")
	assert.Len(t, s.Search(Query{MaxAmount: &max}), 2)
}

func TestSearchCombinesFiltersWithAND(t *testing.T) {
	s := newTestTransactionStore(t)
	require.True(t, s.Create(dec("5000"), models.KindIncome, "工资", "2024-01-05", "salary"))
	require.True(t, s.Create(dec("300"), models.KindExpense, "餐饮", "2024-01-10", "lunch"))
	require.True(t, s.Create(dec("800"), models.KindExpense, "餐饮", "2024-02-10", "dinner"))
	require.True(t, s.Create(dec("120"), models.KindExpense, "交通", "2024-01-12", "taxi"))

	min := dec("200")
	got := s.Search(Query{
		Kind:      models.KindExpense,
		Category:  "餐饮",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
		MinAmount: &min,
	})
	require.Len(t, got, 1)
	assert.Equal(t, "lunch", got[0].Note)
}

func TestSearchDateRangeNeedsBothBounds(t *testing.T) {
	s := newTestTransactionStore(t)
	require.True(t, s.Create(dec("10"), models.KindExpense, "餐饮", "2024-01-10", ""))
	require.True(t, s.Create(dec("10"), models.KindExpense, "餐饮", "2024-06-10", ""))

	// A lone bound is ignored, as is an unparseable pair
	assert.Len(t, s.Search(Query{StartDate: "2024-01-01"}), 2)
	assert.Len(t, s.Search(Query{EndDate: "2024-01-31"}), 2)
	assert.Len(t, s.Search(Query{StartDate: "bad", EndDate: "also-bad"}), 2)
}

func TestSnapshotRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transactions.json")

	s := NewTransactionStore(path)
	require.True(t, s.Create(dec("5000"), models.KindIncome, "工资", "2024-01-05", "一月工资"))
	require.True(t, s.Create(dec("300.50"), models.KindExpense, "餐饮", "2024-01-10", "lunch"))
	require.True(t, s.Create(dec("1000"), models.KindIncome, "奖金", "2024-01-20", ""))

	reloaded := NewTransactionStore(path)
	require.Equal(t, 3, reloaded.Len())
	assert.Equal(t, s.All(), reloaded.All(), "all fields and original order survive the round trip")

	// The persisted counter survives too: no id reuse across restarts
	require.True(t, reloaded.Delete("T000003"))
	require.True(t, reloaded.Create(dec("1"), models.KindExpense, "交通", "2024-01-21", ""))
	_, found := reloaded.Get("T000004")
	assert.True(t, found)
}

func TestLoadCorruptFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transactions.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	s := NewTransactionStore(path)
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.Create(dec("10"), models.KindExpense, "餐饮", "2024-01-10", ""))
}

func TestLoadLegacyArraySnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transactions.json")
	legacy := `[{"transaction_id":"T000001","amount":50,"type":"支出","category":"餐饮","date":"2024-01-10","note":""}]`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0600))

	s := NewTransactionStore(path)
	require.Equal(t, 1, s.Len())

	// Counter falls back to length+1 when the envelope is absent
	require.True(t, s.Create(dec("10"), models.KindExpense, "交通", "2024-01-11", ""))
	_, found := s.Get("T000002")
	assert.True(t, found)
}

func TestSaveFailureKeepsInMemoryMutation(t *testing.T) {
	// Block snapshot writes by placing the store path under a regular file.
	// The mutation must still apply in memory and report success; disk stays
	// stale until the next successful save.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	s := NewTransactionStore(filepath.Join(blocker, "transactions.json"))
	assert.True(t, s.Create(dec("10"), models.KindExpense, "餐饮", "2024-01-10", ""))
	assert.Equal(t, 1, s.Len())
}

func TestAllReturnsCopy(t *testing.T) {
	s := newTestTransactionStore(t)
	require.True(t, s.Create(dec("10"), models.KindExpense, "餐饮", "2024-01-10", ""))

	out := s.All()
	out[0].Category = "mutated"

	tx, _ := s.Get("T000001")
	assert.Equal(t, "餐饮", tx.Category, "callers must not reach store-owned state")
}
