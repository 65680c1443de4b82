// Package category handles category registry commands
package category

import (
	"fmt"

	"moneybook/ledger/cmd/common"
	"moneybook/ledger/cmd/root"
	"moneybook/ledger/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the category command
var Cmd = &cobra.Command{
	Use:   "category",
	Short: "Manage transaction categories",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories for both transaction types",
	Run:   listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a user-defined category",
	Run:   addFunc,
}

var name string

func init() {
	addCmd.Flags().StringVarP(&root.Kind, "type", "t", string(models.KindExpense), "Transaction type (收入 or 支出)")
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Category name")
	_ = addCmd.MarkFlagRequired("name")

	Cmd.AddCommand(listCmd, addCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	registry := root.Categories()

	for _, kind := range models.Kinds() {
		fmt.Printf("%s:\n", kind)
		for _, name := range registry.Categories(kind) {
			fmt.Printf("  %s\n", name)
		}
	}
}

func addFunc(cmd *cobra.Command, args []string) {
	kind, err := common.ParseKind(root.Kind)
	if err != nil {
		root.Log.Error(err)
		return
	}

	if !root.Categories().Add(kind, name) {
		root.Log.Errorf("Failed to add category %q: empty or already exists", name)
		return
	}
	root.Log.Infof("Added %s category %q", kind, name)
}
