package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestNormalSign(t *testing.T) {
	tests := []struct {
		accountType AccountType
		want        int
	}{
		{AccountTypeAsset, 1},
		{AccountTypeExpense, 1},
		{AccountTypeLiability, -1},
		{AccountTypeEquity, -1},
		{AccountTypeRevenue, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.accountType.NormalSign(), "NormalSign(%s)", tt.accountType)
	}
}

func TestEntryDelta(t *testing.T) {
	e := Entry{Debit: dec("100"), Credit: dec("30")}

	assert.True(t, dec("70").Equal(e.Delta(AccountTypeAsset)))
	assert.True(t, dec("70").Equal(e.Delta(AccountTypeExpense)))
	assert.True(t, dec("-70").Equal(e.Delta(AccountTypeLiability)))
	assert.True(t, dec("-70").Equal(e.Delta(AccountTypeRevenue)))
}

func TestEntryOneSided(t *testing.T) {
	assert.True(t, Entry{Debit: dec("10")}.OneSided())
	assert.True(t, Entry{Credit: dec("10")}.OneSided())
	assert.True(t, Entry{}.OneSided())
	assert.False(t, Entry{Debit: dec("10"), Credit: dec("5")}.OneSided())
}

func TestEntryEffective(t *testing.T) {
	assert.False(t, Entry{}.Effective())
	assert.True(t, Entry{Debit: dec("0.01")}.Effective())
	assert.True(t, Entry{Credit: dec("-1")}.Effective(), "negative rows still need validation")
}

func TestTransactionTotals(t *testing.T) {
	txn := Transaction{Entries: []Entry{
		{AccountID: "a", Debit: dec("100")},
		{AccountID: "b", Debit: dec("50"), Credit: dec("0")},
		{AccountID: "c", Credit: dec("150")},
	}}

	assert.True(t, dec("150").Equal(txn.TotalDebits()))
	assert.True(t, dec("150").Equal(txn.TotalCredits()))
	assert.True(t, txn.Touches("b"))
	assert.False(t, txn.Touches("z"))
}
