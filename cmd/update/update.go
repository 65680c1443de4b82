// Package update handles editing recorded transactions
package update

import (
	"moneybook/ledger/cmd/common"
	"moneybook/ledger/cmd/root"
	"moneybook/ledger/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the update command
var Cmd = &cobra.Command{
	Use:   "update",
	Short: "Replace the fields of an existing transaction",
	Run:   updateFunc,
}

func init() {
	Cmd.Flags().StringVar(&root.ID, "id", "", "Transaction ID to update")
	Cmd.Flags().StringVarP(&root.Amount, "amount", "a", "", "New amount")
	Cmd.Flags().StringVarP(&root.Kind, "type", "t", string(models.KindExpense), "New type (收入 or 支出)")
	Cmd.Flags().StringVarP(&root.Category, "category", "c", "", "New category")
	Cmd.Flags().StringVarP(&root.Date, "date", "d", "", "New date (YYYY-MM-DD)")
	Cmd.Flags().StringVarP(&root.Note, "note", "n", "", "New note")
	_ = Cmd.MarkFlagRequired("id")
	_ = Cmd.MarkFlagRequired("amount")
	_ = Cmd.MarkFlagRequired("date")
}

func updateFunc(cmd *cobra.Command, args []string) {
	kind, err := common.ParseKind(root.Kind)
	if err != nil {
		root.Log.Error(err)
		return
	}

	ts := root.Transactions()
	amount := models.ParseAmount(root.Amount)
	if !ts.Update(root.ID, amount, kind, root.Category, root.Date, root.Note) {
		root.Log.Errorf("Failed to update %s: not found or invalid fields", root.ID)
		return
	}
	root.Log.Infof("Updated %s", root.ID)
}
