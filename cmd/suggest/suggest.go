// Package suggest handles category suggestion commands
package suggest

import (
	"context"
	"fmt"
	"time"

	"moneybook/ledger/cmd/common"
	"moneybook/ledger/cmd/root"
	"moneybook/ledger/internal/models"
	"moneybook/ledger/internal/suggest"

	"github.com/spf13/cobra"
)

// Cmd represents the suggest command
var Cmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest a category for a transaction note",
	Long: `Suggest a category for a note. Uses the Gemini model when AI is enabled
in the configuration, falling back to keyword matching.`,
	Run: suggestFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Note, "note", "n", "", "Transaction note to categorize")
	Cmd.Flags().StringVarP(&root.Kind, "type", "t", string(models.KindExpense), "Transaction type (收入 or 支出)")
	_ = Cmd.MarkFlagRequired("note")
}

func suggestFunc(cmd *cobra.Command, args []string) {
	kind, err := common.ParseKind(root.Kind)
	if err != nil {
		root.Log.Error(err)
		return
	}

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
			if category, ok, err := gemini.Suggest(ctx, kind, root.Note); err == nil && ok {
				fmt.Println(category)
				return
			}
		}
	}

	keyword := suggest.NewKeywordSuggester(registry)
	if category, ok, _ := keyword.Suggest(context.Background(), kind, root.Note); ok {
		fmt.Println(category)
		return
	}

	fmt.Println("No suggestion.")
}
