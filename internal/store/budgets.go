package store

import (
	"fmt"

	"moneybook/ledger/internal/lederror"
	"moneybook/ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type budgetSnapshot struct {
	NextSeq int             `json:"next_seq"`
	Budgets []models.Budget `json:"budgets"`
}

// BudgetStore owns the monthly per-category budgets. It enforces at most one
// budget per (category, month) pair, on create and on month-changing updates.
type BudgetStore struct {
	path    string
	nextSeq int
	budgets []models.Budget
}

// NewBudgetStore opens the store backed by the given snapshot file.
func NewBudgetStore(path string) *BudgetStore {
	s := &BudgetStore{
		path:    path,
		nextSeq: 1,
	}
	s.load()
	return s
}

func (s *BudgetStore) load() {
	var snap budgetSnapshot
	found, err := readSnapshot(s.path, &snap)
	if !found && err == nil {
		log.WithField("file", s.path).Debug("Budgets file not found, starting empty")
		return
	}
	if err != nil {
		var legacy []models.Budget
		if _, legacyErr := readSnapshot(s.path, &legacy); legacyErr != nil {
			log.WithError(err).WithField("file", s.path).Error("Failed to load budgets, starting empty")
			return
		}
		snap.Budgets = legacy
	}

	s.budgets = snap.Budgets
	s.nextSeq = snap.NextSeq
	if s.nextSeq < len(s.budgets)+1 {
		s.nextSeq = len(s.budgets) + 1
	}
	log.WithFields(logrus.Fields{
		"file":  s.path,
		"count": len(s.budgets),
	}).Debug("Loaded budgets")
}

func (s *BudgetStore) save() {
	snap := budgetSnapshot{
		NextSeq: s.nextSeq,
		Budgets: s.budgets,
	}
	if err := writeSnapshot(s.path, &snap); err != nil {
		log.WithError(err).WithField("file", s.path).Error("Failed to save budgets")
	}
}

// Create adds a budget for (category, month). Returns false when the amount
// is not positive or a budget for the same pair already exists.
func (s *BudgetStore) Create(category string, amount decimal.Decimal, month, note string) bool {
	if !amount.IsPositive() {
		log.WithField("amount", amount.String()).Warn("Rejected budget: amount must be greater than zero")
		return false
	}
	if _, ok := s.ByCategoryAndMonth(category, month); ok {
		log.WithFields(logrus.Fields{
			"category": category,
			"month":    month,
		}).Warn("Rejected budget: category already budgeted for this month")
		return false
	}

	b := models.Budget{
		ID:       fmt.Sprintf("B%06d", s.nextSeq),
		Category: category,
		Amount:   amount,
		Month:    month,
		Note:     note,
	}
	s.nextSeq++
	s.budgets = append(s.budgets, b)
	s.save()

	log.WithFields(logrus.Fields{
		"budget_id": b.ID,
		"category":  category,
		"month":     month,
	}).Info("Created budget")
	return true
}

// Update overwrites amount, month and note of the budget with the given id.
// The category is immutable. Moving a budget to a month where its category
// is already budgeted is rejected, keeping the (category, month) pair unique.
func (s *BudgetStore) Update(id string, amount decimal.Decimal, month, note string) bool {
	if !amount.IsPositive() {
		log.WithField("amount", amount.String()).Warn("Rejected budget update: amount must be greater than zero")
		return false
	}

	for i := range s.budgets {
		if s.budgets[i].ID != id {
			continue
		}
		if month != s.budgets[i].Month {
			if other, ok := s.ByCategoryAndMonth(s.budgets[i].Category, month); ok && other.ID != id {
				log.WithFields(logrus.Fields{
					"budget_id": id,
					"category":  s.budgets[i].Category,
					"month":     month,
				}).Warn("Rejected budget update: month change collides with an existing budget")
				return false
			}
		}
		s.budgets[i].Amount = amount
		s.budgets[i].Month = month
		s.budgets[i].Note = note
		s.save()
		log.WithField("budget_id", id).Info("Updated budget")
		return true
	}

	log.WithError(&lederror.NotFoundError{Entity: "budget", ID: id}).Warn("Update failed")
	return false
}

// Delete removes the budget with the given id.
func (s *BudgetStore) Delete(id string) bool {
	for i := range s.budgets {
		if s.budgets[i].ID == id {
			s.budgets = append(s.budgets[:i], s.budgets[i+1:]...)
			s.save()
			log.WithField("budget_id", id).Info("Deleted budget")
			return true
		}
	}

	log.WithError(&lederror.NotFoundError{Entity: "budget", ID: id}).Warn("Delete failed")
	return false
}

// ByID returns the budget with the given id.
func (s *BudgetStore) ByID(id string) (models.Budget, bool) {
	for i := range s.budgets {
		if s.budgets[i].ID == id {
			return s.budgets[i], true
		}
	}
	return models.Budget{}, false
}

// ByMonth returns every budget scoped to the given YYYY-MM month.
func (s *BudgetStore) ByMonth(month string) []models.Budget {
	out := []models.Budget{}
	for _, b := range s.budgets {
		if b.Month == month {
			out = append(out, b)
		}
	}
	return out
}

// ByCategoryAndMonth returns the budget for an exact (category, month) pair.
// Categories match by exact string equality, case-sensitive.
func (s *BudgetStore) ByCategoryAndMonth(category, month string) (models.Budget, bool) {
	for i := range s.budgets {
		if s.budgets[i].Category == category && s.budgets[i].Month == month {
			return s.budgets[i], true
		}
	}
	return models.Budget{}, false
}

// All returns a copy of the collection in insertion order.
func (s *BudgetStore) All() []models.Budget {
	out := make([]models.Budget, len(s.budgets))
	copy(out, s.budgets)
	return out
}
