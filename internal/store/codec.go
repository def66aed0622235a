package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bookkeep-dev/bookkeep/internal/model"
)

// LoadAccounts decodes the accounts blob. A missing or empty blob is an empty
// account list, not an error.
func LoadAccounts(kv KV) ([]model.Account, error) {
	raw, ok, err := kv.Get(KeyAccounts)
	if err != nil {
		return nil, err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var accounts []model.Account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		return nil, fmt.Errorf("decoding accounts: %w", err)
	}
	return accounts, nil
}

// SaveAccounts encodes and writes the accounts blob.
func SaveAccounts(kv KV, accounts []model.Account) error {
	if accounts == nil {
		accounts = []model.Account{}
	}
	data, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("encoding accounts: %w", err)
	}
	return kv.Put(KeyAccounts, string(data))
}

// LoadTransactions decodes the transactions blob. A missing or empty blob is
// an empty history, not an error.
func LoadTransactions(kv KV) ([]model.Transaction, error) {
	raw, ok, err := kv.Get(KeyTransactions)
	if err != nil {
		return nil, err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var txns []model.Transaction
	if err := json.Unmarshal([]byte(raw), &txns); err != nil {
		return nil, fmt.Errorf("decoding transactions: %w", err)
	}
	return txns, nil
}

// SaveTransactions encodes and writes the transactions blob.
func SaveTransactions(kv KV, txns []model.Transaction) error {
	if txns == nil {
		txns = []model.Transaction{}
	}
	data, err := json.Marshal(txns)
	if err != nil {
		return fmt.Errorf("encoding transactions: %w", err)
	}
	return kv.Put(KeyTransactions, string(data))
}
