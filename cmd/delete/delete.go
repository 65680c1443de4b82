// Package delete handles removing recorded transactions
package delete

import (
	"moneybook/ledger/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the delete command
var Cmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a transaction by ID",
	Run:   deleteFunc,
}

func init() {
	Cmd.Flags().StringVar(&root.ID, "id", "", "Transaction ID to delete")
	_ = Cmd.MarkFlagRequired("id")
}

func deleteFunc(cmd *cobra.Command, args []string) {
	if !root.Transactions().Delete(root.ID) {
		root.Log.Errorf("Transaction %s not found", root.ID)
		return
	}
	root.Log.Infof("Deleted %s", root.ID)
}
