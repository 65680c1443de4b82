package budget_test

import (
	"testing"

	"moneybook/ledger/cmd/budget"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetCommand_Metadata(t *testing.T) {
	assert.Equal(t, "budget", budget.Cmd.Use)
	assert.Contains(t, budget.Cmd.Short, "budgets")
}

func TestBudgetCommand_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, sub := range budget.Cmd.Commands() {
		names[sub.Use] = true
	}

	for _, want := range []string{"set", "update", "delete", "list", "report"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestBudgetSetCommand_Flags(t *testing.T) {
	var setCmd *cobra.Command
	for _, sub := range budget.Cmd.Commands() {
		if sub.Use == "set" {
			setCmd = sub
		}
	}
	require.NotNil(t, setCmd)

	categoryFlag := setCmd.Flags().Lookup("category")
	assert.NotNil(t, categoryFlag)
	assert.Equal(t, "c", categoryFlag.Shorthand)

	amountFlag := setCmd.Flags().Lookup("amount")
	assert.NotNil(t, amountFlag)
	assert.Equal(t, "a", amountFlag.Shorthand)

	monthFlag := setCmd.Flags().Lookup("month")
	assert.NotNil(t, monthFlag)
	assert.Equal(t, "m", monthFlag.Shorthand)
}
