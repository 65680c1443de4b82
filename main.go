package main

import (
	"fmt"
	"os"

	"moneybook/ledger/cmd/add"
	"moneybook/ledger/cmd/budget"
	"moneybook/ledger/cmd/category"
	del "moneybook/ledger/cmd/delete"
	"moneybook/ledger/cmd/export"
	"moneybook/ledger/cmd/list"
	"moneybook/ledger/cmd/root"
	"moneybook/ledger/cmd/search"
	"moneybook/ledger/cmd/stats"
	"moneybook/ledger/cmd/suggest"
	"moneybook/ledger/cmd/update"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(search.Cmd)
	root.Cmd.AddCommand(update.Cmd)
	root.Cmd.AddCommand(del.Cmd)
	root.Cmd.AddCommand(stats.Cmd)
	root.Cmd.AddCommand(budget.Cmd)
	root.Cmd.AddCommand(category.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(suggest.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
