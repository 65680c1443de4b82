// Package add handles recording new transactions
package add

import (
	"context"
	"time"

	"moneybook/ledger/cmd/common"
	"moneybook/ledger/cmd/root"
	"moneybook/ledger/internal/dateutils"
	"moneybook/ledger/internal/models"
	"moneybook/ledger/internal/suggest"

	"github.com/spf13/cobra"
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new income or expense transaction",
	Long: `Record a new transaction in the ledger. When no category is given,
one is suggested from the note; the configured fallback category is used
when no suggestion matches.`,
	Run: addFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Amount, "amount", "a", "", "Transaction amount")
	Cmd.Flags().StringVarP(&root.Kind, "type", "t", string(models.KindExpense), "Transaction type (收入 or 支出)")
	Cmd.Flags().StringVarP(&root.Category, "category", "c", "", "Transaction category")
	Cmd.Flags().StringVarP(&root.Date, "date", "d", "", "Transaction date (YYYY-MM-DD, default today)")
	Cmd.Flags().StringVarP(&root.Note, "note", "n", "", "Transaction note")
	_ = Cmd.MarkFlagRequired("amount")
}

func addFunc(cmd *cobra.Command, args []string) {
	kind, err := common.ParseKind(root.Kind)
	if err != nil {
		root.Log.Error(err)
		return
	}

	date := root.Date
	if date == "" {
		date = time.Now().Format(dateutils.LayoutISODate)
	}

	category := root.Category
	if category == "" {
		category = suggestCategory(kind, root.Note)
	}

	ts := root.Transactions()
	amount := models.ParseAmount(root.Amount)
	if !ts.Create(amount, kind, category, date, root.Note) {
		root.Log.Errorf("Failed to record transaction: amount %q or date %q invalid", root.Amount, date)
		return
	}

	all := ts.All()
	tx := all[len(all)-1]
	root.Log.Infof("Recorded %s: %s %s %s (%s)", tx.ID, tx.Kind, tx.Amount.StringFixed(2), tx.Category, tx.Date)
}

// suggestCategory picks a category for the note, degrading from the AI
// suggester (when enabled) to the keyword table to the configured fallback.
func suggestCategory(kind models.Kind, note string) string {
	registry := root.Categories()

	if root.Config.AI.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(),
			time.Duration(root.Config.AI.TimeoutSeconds)*time.Second)
		defer cancel()

		gemini, err := suggest.NewGeminiSuggester(ctx, root.Config.AI.APIKey, root.Config.AI.Model, registry)
		if err != nil {
			root.Log.Warnf("AI suggester unavailable: %v", err)
		} else {
			defer gemini.Close()
			if category, ok, err := gemini.Suggest(ctx, kind, note); err == nil && ok {
				return category
			}
		}
	}

	keyword := suggest.NewKeywordSuggester(registry)
	if category, ok, _ := keyword.Suggest(context.Background(), kind, note); ok {
		return category
	}

	if kind == models.KindIncome {
		return "其他收入"
	}
	return root.Config.AI.FallbackCategory
}
