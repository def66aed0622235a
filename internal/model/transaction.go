package model

import "github.com/shopspring/decimal"

// Entry is one side of a transaction: a debit or credit against an account.
type Entry struct {
	AccountID string          `json:"account_id"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// Effective reports whether the entry carries any economic effect. A row with
// both sides zero is dropped before commit.
func (e Entry) Effective() bool {
	return !e.Debit.IsZero() || !e.Credit.IsZero()
}

// OneSided reports whether debit and credit stay mutually exclusive: an entry
// must never have both sides positive.
func (e Entry) OneSided() bool {
	return !(e.Debit.IsPositive() && e.Credit.IsPositive())
}

// Delta folds the debit/credit pair into a single signed movement for an
// account of the given type. Incremental apply, full recompute, and the
// general ledger running balance all go through this one rule.
func (e Entry) Delta(t AccountType) decimal.Decimal {
	if t.NormalSign() > 0 {
		return e.Debit.Sub(e.Credit)
	}
	return e.Credit.Sub(e.Debit)
}

// Transaction is a committed journal entry. Transactions are immutable once
// committed: the only wholesale mutations are clear-all and import. Date is an
// ISO YYYY-MM-DD string, so lexicographic order matches chronological order.
type Transaction struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Entries     []Entry `json:"entries"`
}

// TotalDebits sums the debit side of every entry.
func (t Transaction) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, e := range t.Entries {
		total = total.Add(e.Debit)
	}
	return total
}

// TotalCredits sums the credit side of every entry.
func (t Transaction) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, e := range t.Entries {
		total = total.Add(e.Credit)
	}
	return total
}

// Touches reports whether any entry references the given account.
func (t Transaction) Touches(accountID string) bool {
	for _, e := range t.Entries {
		if e.AccountID == accountID {
			return true
		}
	}
	return false
}
