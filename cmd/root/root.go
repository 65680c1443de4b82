// Package root contains the root command for the application
package root

import (
	"path/filepath"

	"moneybook/ledger/internal/config"
	"moneybook/ledger/internal/export"
	"moneybook/ledger/internal/store"
	"moneybook/ledger/internal/suggest"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Config holds the loaded application configuration
	Config *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "ledger",
		Short: "A CLI personal ledger for tracking income, expenses and budgets.",
		Long: `ledger is a CLI tool for recording income and expense transactions,
managing monthly category budgets, and producing statistics and CSV exports.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to ledger!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()

			var err error
			Config, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Log = config.ConfigureLoggingFromConfig(Config)

			// Set the configured logger for all packages
			store.SetLogger(Log)
			export.SetLogger(Log)
			suggest.SetLogger(Log)

			if DataDir != "" {
				Config.Data.Directory = DataDir
			}

			export.SetDelimiter([]rune(Config.CSV.Delimiter)[0])
		},
	}

	// Common flags accessible to all commands
	DataDir string

	// Transaction flags
	ID       string
	Amount   string
	Kind     string
	Category string
	Date     string
	Note     string

	// Filter flags
	Month     string
	StartDate string
	EndDate   string
	Keyword   string
	MinAmount string
	MaxAmount string

	// Export flags
	Output string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&DataDir, "data", "", "Data directory (overrides configuration)")
}

// Transactions opens the transaction store under the configured data directory.
func Transactions() *store.TransactionStore {
	return store.NewTransactionStore(filepath.Join(Config.Data.Directory, "transactions.json"))
}

// Budgets opens the budget store under the configured data directory.
func Budgets() *store.BudgetStore {
	return store.NewBudgetStore(filepath.Join(Config.Data.Directory, "budgets.json"))
}

// Categories opens the category registry under the configured data directory.
func Categories() *store.CategoryRegistry {
	return store.NewCategoryRegistry(filepath.Join(Config.Data.Directory, "categories.yaml"))
}
