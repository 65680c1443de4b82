// Package export serializes transactions for external tools. It is a pure
// sink: a failed export never touches store state.
package export

import (
	"encoding/csv"
	"fmt"

	"moneybook/ledger/internal/fileutils"
	"moneybook/ledger/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Global CSV delimiter - configurable via config or environment
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// csvRow fixes the exported column set and order:
// id, date, type, category, amount, note.
type csvRow struct {
	ID       string `csv:"id"`
	Date     string `csv:"date"`
	Type     string `csv:"type"`
	Category string `csv:"category"`
	Amount   string `csv:"amount"`
	Note     string `csv:"note"`
}

// WriteTransactionsCSV writes transactions to a CSV file: a header row
// followed by one row per transaction, in the given order. Amounts are
// formatted with two decimal places.
func WriteTransactionsCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(transactions),
	}).Info("Writing transactions to CSV file")

	rows := make([]csvRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, csvRow{
			ID:       tx.ID,
			Date:     tx.Date,
			Type:     string(tx.Kind),
			Category: tx.Category,
			Amount:   tx.Amount.StringFixed(2),
			Note:     tx.Note,
		})
	}

	file, err := fileutils.CreateFile(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(transactions),
	}).Info("Successfully wrote transactions to CSV file")

	return nil
}
