// Package filter selects and orders transactions for the read side. Filters
// never mutate the history; they return a fresh, newest-first slice.
package filter

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bookkeep-dev/bookkeep/internal/model"
)

// Spec is the set of optional selection rules. All supplied rules must match
// (AND semantics).
type Spec struct {
	StartDate   string // inclusive ISO lower bound on the transaction date
	EndDate     string // inclusive ISO upper bound
	Description string // case-insensitive substring of the description
	AccountID   string // at least one entry references this account

	// Amount bounds compare against the transaction's total debit magnitude
	// and apply only when at least one bound is set.
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}

// Apply returns the transactions matching every supplied rule, ordered by
// date descending with ties keeping insertion order.
func Apply(txns []model.Transaction, spec Spec) []model.Transaction {
	matched := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if spec.matches(t) {
			matched = append(matched, t)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date > matched[j].Date
	})
	return matched
}

func (s Spec) matches(t model.Transaction) bool {
	if s.StartDate != "" && t.Date < s.StartDate {
		return false
	}
	if s.EndDate != "" && t.Date > s.EndDate {
		return false
	}
	if s.Description != "" && !strings.Contains(strings.ToLower(t.Description), strings.ToLower(s.Description)) {
		return false
	}
	if s.AccountID != "" && !t.Touches(s.AccountID) {
		return false
	}
	if s.MinAmount != nil || s.MaxAmount != nil {
		total := t.TotalDebits()
		if s.MinAmount != nil && total.LessThan(*s.MinAmount) {
			return false
		}
		if s.MaxAmount != nil && total.GreaterThan(*s.MaxAmount) {
			return false
		}
	}
	return true
}
