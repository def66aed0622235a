// Package backup encodes the full ledger state as a portable JSON document
// for export downloads and wholesale import.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bookkeep-dev/bookkeep/internal/model"
)

// ErrInvalidFormat reports a document that is not well-formed JSON or lacks
// the required top-level keys.
var ErrInvalidFormat = errors.New("invalid backup format")

// Document is the import/export shape: the complete account and transaction
// sets, replaced atomically on import.
type Document struct {
	Accounts     []model.Account     `json:"accounts"`
	Transactions []model.Transaction `json:"transactions"`
}

// Decode parses data and verifies both top-level keys are present. On any
// failure the caller's state must stay untouched.
func Decode(data []byte) (Document, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	for _, key := range []string{"accounts", "transactions"} {
		if _, ok := probe[key]; !ok {
			return Document{}, fmt.Errorf("%w: missing %q", ErrInvalidFormat, key)
		}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return doc, nil
}

// Encode renders the document as indented JSON, the shape served as a
// download artifact.
func Encode(doc Document) ([]byte, error) {
	if doc.Accounts == nil {
		doc.Accounts = []model.Account{}
	}
	if doc.Transactions == nil {
		doc.Transactions = []model.Transaction{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding backup: %w", err)
	}
	return data, nil
}

// Filename suggests a download name for an export taken on the given day.
func Filename(today string) string {
	return "accounting_backup_" + today + ".json"
}
