package ledger

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bookkeep-dev/bookkeep/internal/dates"
	"github.com/bookkeep-dev/bookkeep/internal/id"
	"github.com/bookkeep-dev/bookkeep/internal/model"
	"github.com/bookkeep-dev/bookkeep/internal/store"
)

// Normalize repairs legacy or malformed transaction records: missing ids are
// generated, dates coerced to ISO (today if unparsable), legacy field names
// (memo, lines, account) folded into the strict shape, amounts coerced to
// non-negative numbers, and double-sided entries resolved by keeping the
// larger side. Accounts are untouched; a full recompute follows so balances
// match the repaired entries.
func (s *Service) Normalize() error {
	today := dates.Today()
	normalized := make([]model.Transaction, 0, len(s.transactions))
	for _, rec := range s.rawRecords() {
		normalized = append(normalized, normalizeRecord(rec, today))
	}
	accounts := recomputeBalances(s.accounts, normalized)

	if err := s.commitState(accounts, normalized); err != nil {
		return err
	}
	s.record("normalize", "transaction records repaired", "")
	s.log.WithField("transactions", len(s.transactions)).Info("data normalized")
	return nil
}

// rawRecords reads the persisted transactions blob as loose records so legacy
// shapes survive long enough to be repaired. If the blob is missing or
// unparsable the current in-memory set is used instead.
func (s *Service) rawRecords() []map[string]any {
	raw, ok, err := s.kv.Get(store.KeyTransactions)
	if err == nil && ok && strings.TrimSpace(raw) != "" {
		var records []map[string]any
		if err := json.Unmarshal([]byte(raw), &records); err == nil {
			return records
		}
		s.log.Warn("transactions blob unparsable, normalizing in-memory state")
	}

	data, err := json.Marshal(s.transactions)
	if err != nil {
		return nil
	}
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}
	return records
}

func normalizeRecord(rec map[string]any, today string) model.Transaction {
	txnID := toText(rec["id"])
	if txnID == "" {
		txnID = id.New()
	}

	rawDate := toText(rec["date"])
	if rawDate == "" {
		rawDate = toText(rec["created_at"])
	}
	date := today
	if rawDate != "" {
		date = dates.Coerce(rawDate, today)
	}

	description := toText(rec["description"])
	if description == "" {
		description = toText(rec["memo"])
	}

	rawEntries, ok := rec["entries"].([]any)
	if !ok {
		rawEntries, _ = rec["lines"].([]any)
	}
	entries := make([]model.Entry, 0, len(rawEntries))
	for _, raw := range rawEntries {
		fields, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		entries = append(entries, normalizeEntry(fields))
	}

	return model.Transaction{
		ID:          txnID,
		Date:        date,
		Description: description,
		Entries:     entries,
	}
}

func normalizeEntry(fields map[string]any) model.Entry {
	accountID := toText(fields["account_id"])
	if accountID == "" {
		accountID = toText(fields["account"])
	}

	debit := toAmount(fields["debit"]).Abs()
	credit := toAmount(fields["credit"]).Abs()
	// Restore mutual exclusivity while preserving the net intent: keep the
	// larger side, zero the smaller.
	if debit.IsPositive() && credit.IsPositive() {
		if debit.GreaterThanOrEqual(credit) {
			credit = decimal.Zero
		} else {
			debit = decimal.Zero
		}
	}

	return model.Entry{AccountID: accountID, Debit: debit, Credit: credit}
}

// toAmount coerces a loose JSON value to a decimal; non-numeric values
// become zero rather than failing the repair.
func toAmount(v any) decimal.Decimal {
	switch val := v.(type) {
	case float64:
		return decimal.NewFromFloat(val)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(val))
		if err != nil {
			return decimal.Zero
		}
		return d
	case json.Number:
		d, err := decimal.NewFromString(val.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// toText coerces a loose JSON value to a string; numbers keep their printed
// form, everything else becomes empty.
func toText(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return decimal.NewFromFloat(val).String()
	case json.Number:
		return val.String()
	default:
		return ""
	}
}
