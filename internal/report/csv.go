package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/bookkeep-dev/bookkeep/internal/model"
)

// amountCell renders a positive amount at 2 decimals, or blank so the column
// reads like a paper ledger.
func amountCell(d decimal.Decimal) string {
	if d.IsPositive() {
		return d.StringFixed(2)
	}
	return ""
}

func sectionLine(a model.Account) string {
	return a.Code + " - " + a.Name
}

// WriteTrialBalanceCSV renders Code/Account Name/Debit/Credit rows plus a
// totals row.
func WriteTrialBalanceCSV(w io.Writer, tb TrialBalance) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"Code", "Account Name", "Debit", "Credit"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range tb.Rows {
		if err := cw.Write([]string{row.Code, row.Name, amountCell(row.Debit), amountCell(row.Credit)}); err != nil {
			return fmt.Errorf("writing row %s: %w", row.Code, err)
		}
	}
	if err := cw.Write([]string{"", "Total", tb.TotalDebits.StringFixed(2), tb.TotalCredits.StringFixed(2)}); err != nil {
		return fmt.Errorf("writing totals: %w", err)
	}
	return cw.Error()
}

// WriteBalanceSheetCSV renders the sectioned Assets/Liabilities/Equity layout
// with subtotals and the combined liabilities+equity total.
func WriteBalanceSheetCSV(w io.Writer, bs BalanceSheet, asOf string) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	rows := [][]string{
		{"Balance Sheet", "As of " + asOf},
		{},
		{"ASSETS"},
	}
	for _, a := range bs.Assets {
		rows = append(rows, []string{sectionLine(a), a.Balance.StringFixed(2)})
	}
	rows = append(rows, []string{"Total Assets", bs.TotalAssets.StringFixed(2)}, []string{}, []string{"LIABILITIES"})
	for _, a := range bs.Liabilities {
		rows = append(rows, []string{sectionLine(a), a.Balance.Abs().StringFixed(2)})
	}
	rows = append(rows, []string{"Total Liabilities", bs.TotalLiabilities.StringFixed(2)}, []string{}, []string{"EQUITY"})
	for _, a := range bs.Equity {
		rows = append(rows, []string{sectionLine(a), a.Balance.Abs().StringFixed(2)})
	}
	rows = append(rows,
		[]string{"Total Equity", bs.TotalEquity.StringFixed(2)},
		[]string{},
		[]string{"Total Liabilities & Equity", bs.TotalLiabilitiesEquity.StringFixed(2)},
	)

	return writeAll(cw, rows)
}

// WriteIncomeStatementCSV renders the sectioned Revenue/Expenses layout with
// the net income line.
func WriteIncomeStatementCSV(w io.Writer, is IncomeStatement) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	rows := [][]string{
		{"Income Statement", is.StartDate + " to " + is.EndDate},
		{},
		{"REVENUE"},
	}
	for _, a := range is.Revenue {
		rows = append(rows, []string{sectionLine(a), a.Balance.Abs().StringFixed(2)})
	}
	rows = append(rows, []string{"Total Revenue", is.TotalRevenue.StringFixed(2)}, []string{}, []string{"EXPENSES"})
	for _, a := range is.Expenses {
		rows = append(rows, []string{sectionLine(a), a.Balance.StringFixed(2)})
	}
	rows = append(rows,
		[]string{"Total Expenses", is.TotalExpenses.StringFixed(2)},
		[]string{},
		[]string{"Net Income", is.NetIncome.StringFixed(2)},
	)

	return writeAll(cw, rows)
}

// WriteGeneralLedgerCSV renders Date/Description/Debit/Credit/Balance rows.
func WriteGeneralLedgerCSV(w io.Writer, rows []LedgerRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"Date", "Description", "Debit", "Credit", "Balance"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		record := []string{row.Date, row.Description, amountCell(row.Debit), amountCell(row.Credit), row.Balance.StringFixed(2)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

func writeAll(cw *csv.Writer, rows [][]string) error {
	for i, row := range rows {
		if len(row) == 0 {
			row = []string{""}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}
