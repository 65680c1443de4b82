// Package suggest proposes a category for a transaction note. Suggestions
// are advisory only: the registry guides but never restricts the category a
// transaction may carry.
package suggest

import (
	"context"

	"moneybook/ledger/internal/models"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// CategorySource supplies the category names a suggester may choose from.
// *store.CategoryRegistry satisfies it.
type CategorySource interface {
	Categories(kind models.Kind) []string
}

// Suggester proposes a category for a note. The bool reports whether a
// suggestion was found; strategies degrade to (false, nil) rather than
// guessing.
type Suggester interface {
	Suggest(ctx context.Context, kind models.Kind, note string) (string, bool, error)
}
