package store

import (
	"fmt"
	"strings"

	"moneybook/ledger/internal/dateutils"
	"moneybook/ledger/internal/lederror"
	"moneybook/ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// transactionSnapshot is the on-disk shape of the transaction collection.
// NextSeq is a monotonic id counter persisted with the records so that ids
// are never reused after a deletion.
type transactionSnapshot struct {
	NextSeq      int                  `json:"next_seq"`
	Transactions []models.Transaction `json:"transactions"`
}

// TransactionStore is the sole mutator and source of truth for the
// transaction collection. Every successful mutation rewrites the snapshot
// file before returning.
type TransactionStore struct {
	path         string
	nextSeq      int
	transactions []models.Transaction
}

// NewTransactionStore opens the store backed by the given snapshot file.
// A missing or unreadable file yields an empty store; the failure is logged,
// not raised.
func NewTransactionStore(path string) *TransactionStore {
	s := &TransactionStore{
		path:    path,
		nextSeq: 1,
	}
	s.load()
	return s
}

func (s *TransactionStore) load() {
	var snap transactionSnapshot
	found, err := readSnapshot(s.path, &snap)
	if !found && err == nil {
		log.WithField("file", s.path).Debug("Transactions file not found, starting empty")
		return
	}
	if err != nil {
		// Older files are a bare JSON array without the counter envelope
		var legacy []models.Transaction
		if _, legacyErr := readSnapshot(s.path, &legacy); legacyErr != nil {
			log.WithError(err).WithField("file", s.path).Error("Failed to load transactions, starting empty")
			return
		}
		snap.Transactions = legacy
	}

	s.transactions = snap.Transactions
	s.nextSeq = snap.NextSeq
	if s.nextSeq < len(s.transactions)+1 {
		s.nextSeq = len(s.transactions) + 1
	}
	log.WithFields(logrus.Fields{
		"file":  s.path,
		"count": len(s.transactions),
	}).Debug("Loaded transactions")
}

// save rewrites the full snapshot. A failure leaves memory and disk
// inconsistent until the next successful save; it is logged, and the calling
// operation still reports its validation-level result.
func (s *TransactionStore) save() {
	snap := transactionSnapshot{
		NextSeq:      s.nextSeq,
		Transactions: s.transactions,
	}
	if err := writeSnapshot(s.path, &snap); err != nil {
		log.WithError(err).WithField("file", s.path).Error("Failed to save transactions")
	}
}

func validateEntry(amount decimal.Decimal, date string) bool {
	if !amount.IsPositive() {
		log.WithError(&lederror.ValidationError{
			Field:  "amount",
			Value:  amount.String(),
			Reason: "must be greater than zero",
		}).Warn("Rejected entry")
		return false
	}
	if _, err := dateutils.ParseISODate(date); err != nil {
		log.WithError(&lederror.ValidationError{
			Field:  "date",
			Value:  date,
			Reason: "not a valid calendar date",
		}).Warn("Rejected entry")
		return false
	}
	return true
}

// Create validates and appends a new transaction, assigning the next
// sequential id. Returns false without mutating or persisting anything when
// the amount is not positive or the date is not a valid calendar date.
func (s *TransactionStore) Create(amount decimal.Decimal, kind models.Kind, category, date, note string) bool {
	if !validateEntry(amount, date) {
		return false
	}

	tx := models.Transaction{
		ID:       fmt.Sprintf("T%06d", s.nextSeq),
		Amount:   amount,
		Kind:     kind,
		Category: category,
		Date:     date,
		Note:     note,
	}
	s.nextSeq++
	s.transactions = append(s.transactions, tx)
	s.save()

	log.WithFields(logrus.Fields{
		"transaction_id": tx.ID,
		"kind":           string(kind),
		"amount":         amount.String(),
	}).Info("Created transaction")
	return true
}

// Update overwrites every mutable field of the transaction with the given
// id. Returns false when validation fails or the id is unknown.
func (s *TransactionStore) Update(id string, amount decimal.Decimal, kind models.Kind, category, date, note string) bool {
	if !validateEntry(amount, date) {
		return false
	}

	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions[i].Amount = amount
			s.transactions[i].Kind = kind
			s.transactions[i].Category = category
			s.transactions[i].Date = date
			s.transactions[i].Note = note
			s.save()
			log.WithField("transaction_id", id).Info("Updated transaction")
			return true
		}
	}

	log.WithError(&lederror.NotFoundError{Entity: "transaction", ID: id}).Warn("Update failed")
	return false
}

// Delete removes the transaction with the given id. Deletion is permanent;
// a second call with the same id returns false.
func (s *TransactionStore) Delete(id string) bool {
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			s.save()
			log.WithField("transaction_id", id).Info("Deleted transaction")
			return true
		}
	}

	log.WithError(&lederror.NotFoundError{Entity: "transaction", ID: id}).Warn("Delete failed")
	return false
}

// Get returns the transaction with the given id.
func (s *TransactionStore) Get(id string) (models.Transaction, bool) {
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			return s.transactions[i], true
		}
	}
	return models.Transaction{}, false
}

// All returns a copy of the collection in insertion order. Callers may sort
// the result freely; store-owned state is never handed out by reference.
func (s *TransactionStore) All() []models.Transaction {
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Len returns the number of transactions currently held.
func (s *TransactionStore) Len() int {
	return len(s.transactions)
}

// ByDateRange returns every transaction dated within [start, end], both
// bounds inclusive, comparing parsed calendar dates. If either bound fails
// to parse the result is empty and the format error is logged.
func (s *TransactionStore) ByDateRange(start, end string) []models.Transaction {
	startDate, err := dateutils.ParseISODate(start)
	if err != nil {
		log.WithError(err).WithField("start", start).Warn("Invalid date range start")
		return []models.Transaction{}
	}
	endDate, err := dateutils.ParseISODate(end)
	if err != nil {
		log.WithError(err).WithField("end", end).Warn("Invalid date range end")
		return []models.Transaction{}
	}

	filtered := []models.Transaction{}
	for _, tx := range s.transactions {
		txDate, err := dateutils.ParseISODate(tx.Date)
		if err != nil {
			log.WithError(err).WithField("transaction_id", tx.ID).Warn("Skipping transaction with unparseable date")
			continue
		}
		if dateutils.InRange(txDate, startDate, endDate) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// ByMonth returns the transactions of one YYYY-MM month by delegating to
// ByDateRange with the month's full calendar-day range.
func (s *TransactionStore) ByMonth(month string) []models.Transaction {
	first, last, err := dateutils.MonthRange(month)
	if err != nil {
		log.WithError(err).WithField("month", month).Warn("Invalid month")
		return []models.Transaction{}
	}
	return s.ByDateRange(first, last)
}

// Query collects the optional predicates of Search. Zero values mean the
// predicate is skipped; amount bounds use pointers so that zero is a valid
// bound.
type Query struct {
	Keyword   string
	Kind      models.Kind
	Category  string
	StartDate string
	EndDate   string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}

// Search returns the transactions matching every supplied predicate
// (logical AND). The keyword matches case-insensitively against note or
// category, or as an exact substring of the amount's decimal string. The
// date-range predicate applies only when both bounds are supplied; an
// unparseable pair is silently ignored.
func (s *TransactionStore) Search(q Query) []models.Transaction {
	results := s.All()

	if q.Keyword != "" {
		lowered := strings.ToLower(q.Keyword)
		results = filter(results, func(tx models.Transaction) bool {
			return strings.Contains(strings.ToLower(tx.Note), lowered) ||
				strings.Contains(strings.ToLower(tx.Category), lowered) ||
				strings.Contains(tx.Amount.String(), q.Keyword)
		})
	}

	if q.Kind != "" {
		results = filter(results, func(tx models.Transaction) bool {
			return tx.Kind == q.Kind
		})
	}

	if q.Category != "" {
		results = filter(results, func(tx models.Transaction) bool {
			return tx.Category == q.Category
		})
	}

	if q.StartDate != "" && q.EndDate != "" {
		startDate, errStart := dateutils.ParseISODate(q.StartDate)
		endDate, errEnd := dateutils.ParseISODate(q.EndDate)
		if errStart == nil && errEnd == nil {
			results = filter(results, func(tx models.Transaction) bool {
				txDate, err := dateutils.ParseISODate(tx.Date)
				return err == nil && dateutils.InRange(txDate, startDate, endDate)
			})
		}
	}

	if q.MinAmount != nil {
		results = filter(results, func(tx models.Transaction) bool {
			return tx.Amount.GreaterThanOrEqual(*q.MinAmount)
		})
	}

	if q.MaxAmount != nil {
		results = filter(results, func(tx models.Transaction) bool {
			return tx.Amount.LessThanOrEqual(*q.MaxAmount)
		})
	}

	return results
}

func filter(txs []models.Transaction, keep func(models.Transaction) bool) []models.Transaction {
	out := txs[:0:0]
	for _, tx := range txs {
		if keep(tx) {
			out = append(out, tx)
		}
	}
	return out
}
