package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bookkeep-dev/bookkeep/internal/model"
)

// Reason identifies which check a draft failed, so callers can attach the
// message to the right form field.
type Reason string

const (
	ReasonEmptyDescription Reason = "empty_description"
	ReasonNoEntries        Reason = "no_entries"
	ReasonUnknownAccount   Reason = "unknown_account"
	ReasonNegativeAmount   Reason = "negative_amount"
	ReasonBothSides        Reason = "both_sides"
	ReasonUnbalanced       Reason = "unbalanced"
	ReasonZeroTotal        Reason = "zero_total"

	ReasonEmptyName  Reason = "empty_name"
	ReasonEmptyCode  Reason = "empty_code"
	ReasonCodeExists Reason = "code_exists"
)

// ValidationError describes a single failed check. Entry is the index of the
// offending entry, or -1 when the problem is not entry-specific.
type ValidationError struct {
	Reason      Reason
	Entry       int
	Description string
}

func (e ValidationError) Error() string {
	if e.Entry >= 0 {
		return fmt.Sprintf("%s [entry %d]: %s", e.Reason, e.Entry, e.Description)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Description)
}

// ValidationErrors collects every failed check in check order. It implements
// error so callers can surface it directly or unpack it with errors.As.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Has reports whether any collected error carries the given reason.
func (e ValidationErrors) Has(r Reason) bool {
	for _, ve := range e {
		if ve.Reason == r {
			return true
		}
	}
	return false
}

// AccountChecker tests whether an account ID exists in the chart of accounts.
type AccountChecker interface {
	Exists(id string) bool
}

// CodeChecker tests whether an account code is already taken.
type CodeChecker interface {
	CodeExists(code string) bool
}

// ValidateTransaction decides whether a draft transaction is committable.
// Rows with both sides zero carry no effect; they are excluded from every
// check and the caller drops them before commit. Pure: no side effects.
func ValidateTransaction(description string, entries []model.Entry, accounts AccountChecker) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(description) == "" {
		errs = append(errs, ValidationError{
			Reason:      ReasonEmptyDescription,
			Entry:       -1,
			Description: "description must not be empty",
		})
	}

	effective := 0
	for _, e := range entries {
		if e.Effective() {
			effective++
		}
	}
	if effective == 0 {
		errs = append(errs, ValidationError{
			Reason:      ReasonNoEntries,
			Entry:       -1,
			Description: "at least one entry must have a debit or credit",
		})
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i, e := range entries {
		if !e.Effective() {
			continue
		}
		if !accounts.Exists(e.AccountID) {
			errs = append(errs, ValidationError{
				Reason:      ReasonUnknownAccount,
				Entry:       i,
				Description: fmt.Sprintf("unknown account %q", e.AccountID),
			})
		}
		if e.Debit.IsNegative() || e.Credit.IsNegative() {
			errs = append(errs, ValidationError{
				Reason:      ReasonNegativeAmount,
				Entry:       i,
				Description: "debit and credit must not be negative",
			})
		}
		if !e.OneSided() {
			errs = append(errs, ValidationError{
				Reason:      ReasonBothSides,
				Entry:       i,
				Description: "entry must have exactly one of debit or credit",
			})
		}
		totalDebit = totalDebit.Add(e.Debit)
		totalCredit = totalCredit.Add(e.Credit)
	}

	// The accounting identity, compared at 2-decimal precision.
	switch {
	case !totalDebit.Round(2).Equal(totalCredit.Round(2)):
		errs = append(errs, ValidationError{
			Reason:      ReasonUnbalanced,
			Entry:       -1,
			Description: fmt.Sprintf("debits (%s) != credits (%s)", totalDebit.StringFixed(2), totalCredit.StringFixed(2)),
		})
	case effective > 0 && !totalDebit.IsPositive():
		errs = append(errs, ValidationError{
			Reason:      ReasonZeroTotal,
			Entry:       -1,
			Description: "balanced total must be greater than zero",
		})
	}

	return errs
}

// ValidateNewAccount checks an account draft: trimmed name and code must be
// non-empty and the code must be unique (case-sensitive exact match).
func ValidateNewAccount(name, code string, accounts CodeChecker) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(name) == "" {
		errs = append(errs, ValidationError{
			Reason:      ReasonEmptyName,
			Entry:       -1,
			Description: "name must not be empty",
		})
	}

	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		errs = append(errs, ValidationError{
			Reason:      ReasonEmptyCode,
			Entry:       -1,
			Description: "code must not be empty",
		})
	} else if accounts.CodeExists(trimmed) {
		errs = append(errs, ValidationError{
			Reason:      ReasonCodeExists,
			Entry:       -1,
			Description: fmt.Sprintf("code %q already exists", trimmed),
		})
	}

	return errs
}
