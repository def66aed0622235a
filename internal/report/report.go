// Package report derives the standard financial views from current account
// and transaction state. Every view is recomputed on demand; nothing here is
// stored.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/bookkeep-dev/bookkeep/internal/model"
)

// TrialBalanceRow splits one account's balance into debit/credit columns.
type TrialBalanceRow struct {
	Code   string
	Name   string
	Type   model.AccountType
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// TrialBalance lists every account with column totals. The totals are equal
// by construction whenever balances derive from balanced transactions.
type TrialBalance struct {
	Rows         []TrialBalanceRow
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
}

// BuildTrialBalance splits each account balance into its normal column:
// positive balances show as debits, negative as credits.
func BuildTrialBalance(accounts []model.Account) TrialBalance {
	tb := TrialBalance{Rows: make([]TrialBalanceRow, 0, len(accounts))}
	for _, a := range accounts {
		row := TrialBalanceRow{Code: a.Code, Name: a.Name, Type: a.Type}
		switch {
		case a.Balance.IsPositive():
			row.Debit = a.Balance
		case a.Balance.IsNegative():
			row.Credit = a.Balance.Abs()
		}
		tb.Rows = append(tb.Rows, row)
		tb.TotalDebits = tb.TotalDebits.Add(row.Debit)
		tb.TotalCredits = tb.TotalCredits.Add(row.Credit)
	}
	return tb
}

// BalanceSheet partitions accounts by type. TotalAssets is the signed sum;
// liability and equity totals are absolute values of their (credit-normal,
// hence negative) sums. TotalLiabilitiesEquity equals TotalAssets when the
// ledger is consistent.
type BalanceSheet struct {
	Assets      []model.Account
	Liabilities []model.Account
	Equity      []model.Account

	TotalAssets            decimal.Decimal
	TotalLiabilities       decimal.Decimal
	TotalEquity            decimal.Decimal
	TotalLiabilitiesEquity decimal.Decimal
}

// BuildBalanceSheet partitions accounts into the balance sheet sections.
func BuildBalanceSheet(accounts []model.Account) BalanceSheet {
	var bs BalanceSheet
	liabilitySum := decimal.Zero
	equitySum := decimal.Zero
	for _, a := range accounts {
		switch a.Type {
		case model.AccountTypeAsset:
			bs.Assets = append(bs.Assets, a)
			bs.TotalAssets = bs.TotalAssets.Add(a.Balance)
		case model.AccountTypeLiability:
			bs.Liabilities = append(bs.Liabilities, a)
			liabilitySum = liabilitySum.Add(a.Balance)
		case model.AccountTypeEquity:
			bs.Equity = append(bs.Equity, a)
			equitySum = equitySum.Add(a.Balance)
		}
	}
	bs.TotalLiabilities = liabilitySum.Abs()
	bs.TotalEquity = equitySum.Abs()
	bs.TotalLiabilitiesEquity = bs.TotalLiabilities.Add(bs.TotalEquity)
	return bs
}

// IncomeStatement partitions revenue and expense accounts. Totals come from
// standing account balances; StartDate/EndDate label the report period but do
// not re-derive the totals.
type IncomeStatement struct {
	Revenue  []model.Account
	Expenses []model.Account

	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	NetIncome     decimal.Decimal

	StartDate string
	EndDate   string
}

// BuildIncomeStatement totals revenue (stored negative under the sign
// convention, reported absolute) against expenses (stored positive).
func BuildIncomeStatement(accounts []model.Account, startDate, endDate string) IncomeStatement {
	is := IncomeStatement{StartDate: startDate, EndDate: endDate}
	revenueSum := decimal.Zero
	for _, a := range accounts {
		switch a.Type {
		case model.AccountTypeRevenue:
			is.Revenue = append(is.Revenue, a)
			revenueSum = revenueSum.Add(a.Balance)
		case model.AccountTypeExpense:
			is.Expenses = append(is.Expenses, a)
			is.TotalExpenses = is.TotalExpenses.Add(a.Balance)
		}
	}
	is.TotalRevenue = revenueSum.Abs()
	is.NetIncome = is.TotalRevenue.Sub(is.TotalExpenses)
	return is
}

// LedgerRow is one general-ledger line for a single account, with the
// cumulative balance after that entry.
type LedgerRow struct {
	Date        string
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Balance     decimal.Decimal
}

// BuildGeneralLedger walks the selected account's entries in ascending date
// order accumulating a running balance with the same sign rule as the balance
// engine. With the full history included, the final balance equals the
// account's standing balance. Unknown accounts yield no rows.
func BuildGeneralLedger(accounts []model.Account, txns []model.Transaction, accountID string) []LedgerRow {
	var acct *model.Account
	for i := range accounts {
		if accounts[i].ID == accountID {
			acct = &accounts[i]
			break
		}
	}
	if acct == nil {
		return nil
	}

	ordered := make([]model.Transaction, len(txns))
	copy(ordered, txns)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date < ordered[j].Date
	})

	var rows []LedgerRow
	running := decimal.Zero
	for _, txn := range ordered {
		for _, e := range txn.Entries {
			if e.AccountID != accountID {
				continue
			}
			running = running.Add(e.Delta(acct.Type))
			rows = append(rows, LedgerRow{
				Date:        txn.Date,
				Description: txn.Description,
				Debit:       e.Debit,
				Credit:      e.Credit,
				Balance:     running,
			})
		}
	}
	return rows
}
