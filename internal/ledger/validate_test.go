package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookkeep-dev/bookkeep/internal/model"
)

// mockAccounts implements AccountChecker and CodeChecker for testing.
type mockAccounts struct {
	ids   map[string]bool
	codes map[string]bool
}

func (m *mockAccounts) Exists(id string) bool       { return m.ids[id] }
func (m *mockAccounts) CodeExists(code string) bool { return m.codes[code] }

func newMockAccounts(ids ...string) *mockAccounts {
	m := &mockAccounts{ids: make(map[string]bool), codes: make(map[string]bool)}
	for _, id := range ids {
		m.ids[id] = true
	}
	return m
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

var knownAccounts = newMockAccounts("cash", "rev", "exp")

func balancedEntries(amount string) []model.Entry {
	return []model.Entry{
		{AccountID: "cash", Debit: dec(amount)},
		{AccountID: "rev", Credit: dec(amount)},
	}
}

func TestValidateTransaction_Valid(t *testing.T) {
	errs := ValidateTransaction("Sale", balancedEntries("100"), knownAccounts)
	assert.Empty(t, errs)
}

func TestValidateTransaction_EmptyDescription(t *testing.T) {
	errs := ValidateTransaction("   ", balancedEntries("100"), knownAccounts)
	require.NotEmpty(t, errs)
	assert.True(t, errs.Has(ReasonEmptyDescription))
}

func TestValidateTransaction_NoEffectiveEntries(t *testing.T) {
	entries := []model.Entry{
		{AccountID: "cash"},
		{AccountID: "rev"},
	}
	errs := ValidateTransaction("Nothing", entries, knownAccounts)
	require.NotEmpty(t, errs)
	assert.True(t, errs.Has(ReasonNoEntries))
}

func TestValidateTransaction_UnknownAccount(t *testing.T) {
	entries := []model.Entry{
		{AccountID: "ghost", Debit: dec("100")},
		{AccountID: "rev", Credit: dec("100")},
	}
	errs := ValidateTransaction("Sale", entries, knownAccounts)
	require.NotEmpty(t, errs)
	assert.True(t, errs.Has(ReasonUnknownAccount))
	assert.Equal(t, 0, errs[0].Entry)
}

func TestValidateTransaction_NegativeAmount(t *testing.T) {
	entries := []model.Entry{
		{AccountID: "cash", Debit: dec("-100")},
		{AccountID: "rev", Credit: dec("-100")},
	}
	errs := ValidateTransaction("Broken", entries, knownAccounts)
	require.NotEmpty(t, errs)
	assert.True(t, errs.Has(ReasonNegativeAmount))
}

func TestValidateTransaction_BothSides(t *testing.T) {
	entries := []model.Entry{
		{AccountID: "cash", Debit: dec("100"), Credit: dec("100")},
	}
	errs := ValidateTransaction("Double", entries, knownAccounts)
	require.NotEmpty(t, errs)
	assert.True(t, errs.Has(ReasonBothSides))
}

func TestValidateTransaction_Unbalanced(t *testing.T) {
	entries := []model.Entry{
		{AccountID: "cash", Debit: dec("100")},
		{AccountID: "rev", Credit: dec("99")},
	}
	errs := ValidateTransaction("Off by one", entries, knownAccounts)
	require.NotEmpty(t, errs)
	assert.True(t, errs.Has(ReasonUnbalanced))
}

func TestValidateTransaction_RoundingTolerance(t *testing.T) {
	// 0.1+0.2 style sums agree at 2-decimal precision.
	entries := []model.Entry{
		{AccountID: "cash", Debit: dec("0.1")},
		{AccountID: "cash", Debit: dec("0.2")},
		{AccountID: "rev", Credit: dec("0.3")},
	}
	errs := ValidateTransaction("Fractions", entries, knownAccounts)
	assert.Empty(t, errs)
}

func TestValidateTransaction_BalancedButZero(t *testing.T) {
	// Negative rows cancel to a balanced zero total, which is still invalid.
	entries := []model.Entry{
		{AccountID: "cash", Debit: dec("50")},
		{AccountID: "rev", Debit: dec("-50")},
	}
	errs := ValidateTransaction("Zero sum", entries, knownAccounts)
	require.NotEmpty(t, errs)
	assert.True(t, errs.Has(ReasonZeroTotal))
}

func TestValidateTransaction_ZeroRowsExcluded(t *testing.T) {
	entries := append(balancedEntries("100"), model.Entry{AccountID: "ghost"})
	errs := ValidateTransaction("Sale", entries, knownAccounts)
	assert.Empty(t, errs, "a zero row referencing an unknown account is dropped, not checked")
}

func TestValidateTransaction_ErrorString(t *testing.T) {
	errs := ValidateTransaction("", nil, knownAccounts)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs.Error(), "validation failed")
	assert.Contains(t, errs.Error(), string(ReasonEmptyDescription))
}

func TestValidateNewAccount(t *testing.T) {
	existing := newMockAccounts()
	existing.codes["1010"] = true

	tests := []struct {
		name    string
		acctName string
		code    string
		reason  Reason
	}{
		{"empty name", "  ", "2010", ReasonEmptyName},
		{"empty code", "Cash", "  ", ReasonEmptyCode},
		{"duplicate code", "Petty Cash", "1010", ReasonCodeExists},
		{"trimmed duplicate", "Petty Cash", " 1010 ", ReasonCodeExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateNewAccount(tt.acctName, tt.code, existing)
			require.NotEmpty(t, errs)
			assert.True(t, errs.Has(tt.reason))
		})
	}

	assert.Empty(t, ValidateNewAccount("Savings", "1020", existing))
}
