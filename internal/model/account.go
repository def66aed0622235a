package model

import "github.com/shopspring/decimal"

func init() {
	// Persisted documents carry amounts as bare JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "Asset"
	AccountTypeLiability AccountType = "Liability"
	AccountTypeEquity    AccountType = "Equity"
	AccountTypeRevenue   AccountType = "Revenue"
	AccountTypeExpense   AccountType = "Expense"
)

// AccountTypes lists every account type in report order.
var AccountTypes = []AccountType{
	AccountTypeAsset,
	AccountTypeLiability,
	AccountTypeEquity,
	AccountTypeRevenue,
	AccountTypeExpense,
}

// NormalSign returns the direction a debit moves an account of this type:
// +1 for debit-normal accounts (Asset, Expense), -1 for credit-normal
// accounts (Liability, Equity, Revenue).
func (t AccountType) NormalSign() int {
	if t == AccountTypeAsset || t == AccountTypeExpense {
		return 1
	}
	return -1
}

// Account is one row in the chart of accounts. Balance is derived state: it
// always equals the signed sum of the account's effect across every entry of
// every committed transaction.
type Account struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Code    string          `json:"code"`
	Type    AccountType     `json:"type"`
	Balance decimal.Decimal `json:"balance"`
}
