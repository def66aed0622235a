package ledger

import (
	"github.com/bookkeep-dev/bookkeep/internal/id"
	"github.com/bookkeep-dev/bookkeep/internal/model"
)

// DefaultChart returns the starter chart of accounts written on init. All
// opening balances are zero; balances only ever come from transactions.
func DefaultChart() []model.Account {
	return []model.Account{
		{ID: id.New(), Name: "Cash", Code: "1010", Type: model.AccountTypeAsset},
		{ID: id.New(), Name: "Accounts Receivable", Code: "1200", Type: model.AccountTypeAsset},
		{ID: id.New(), Name: "Office Supplies", Code: "1510", Type: model.AccountTypeAsset},
		{ID: id.New(), Name: "Accounts Payable", Code: "2010", Type: model.AccountTypeLiability},
		{ID: id.New(), Name: "Owner's Equity", Code: "3010", Type: model.AccountTypeEquity},
		{ID: id.New(), Name: "Sales Revenue", Code: "4010", Type: model.AccountTypeRevenue},
		{ID: id.New(), Name: "Rent Expense", Code: "5010", Type: model.AccountTypeExpense},
	}
}
