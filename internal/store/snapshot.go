// Package store owns the ledger collections: transactions, budgets and the
// category registry. Every successful mutation rewrites the full snapshot
// file before the call returns; a missing or corrupt file on load yields an
// empty collection.
package store

import (
	"encoding/json"
	"os"

	"moneybook/ledger/internal/fileutils"
	"moneybook/ledger/internal/lederror"

	"github.com/sirupsen/logrus"
)

// Use a package-level logger so CLI setup can swap in the configured one
var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// readSnapshot reads and unmarshals a snapshot file into v.
// A missing file is reported via the bool, not as an error.
func readSnapshot(path string, v interface{}) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &lederror.PersistenceError{Op: "load", Path: path, Err: err}
	}

	if err := json.Unmarshal(data, v); err != nil {
		return true, &lederror.PersistenceError{Op: "load", Path: path, Err: err}
	}
	return true, nil
}

// writeSnapshot marshals v and overwrites the snapshot file, creating the
// parent directory if needed.
func writeSnapshot(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &lederror.PersistenceError{Op: "save", Path: path, Err: err}
	}

	if err := fileutils.WriteFile(path, data, 0644); err != nil {
		return &lederror.PersistenceError{Op: "save", Path: path, Err: err}
	}
	return nil
}
