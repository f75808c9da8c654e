package accounting

import (
	"time"

	"github.com/SscSPs/freight_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NetIncomeResult labels a net income figure: zero or above is a profit.
func NetIncomeResult(netIncome decimal.Decimal) domain.NetIncomeLabel {
	if netIncome.IsNegative() {
		return domain.Loss
	}
	return domain.Profit
}

// BuildTrialBalance merges rows per account and computes the grand totals.
// Rows for the same account are summed; first-seen order is kept.
func BuildTrialBalance(rows []domain.TrialBalanceRow, tolerance decimal.Decimal) domain.TrialBalance {
	merged := make([]domain.TrialBalanceRow, 0, len(rows))
	index := make(map[string]int, len(rows))
	for _, r := range rows {
		if i, ok := index[r.AccountID]; ok {
			merged[i].TotalDebit = merged[i].TotalDebit.Add(r.TotalDebit)
			merged[i].TotalCredit = merged[i].TotalCredit.Add(r.TotalCredit)
			continue
		}
		index[r.AccountID] = len(merged)
		merged = append(merged, r)
	}

	tb := domain.TrialBalance{
		Rows:        merged,
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
		Empty:       len(merged) == 0,
	}
	for _, r := range merged {
		tb.TotalDebit = tb.TotalDebit.Add(r.TotalDebit)
		tb.TotalCredit = tb.TotalCredit.Add(r.TotalCredit)
	}
	tb.IsBalanced = WithinTolerance(tb.TotalDebit, tb.TotalCredit, tolerance)
	return tb
}

// BuildIncomeStatement partitions lines into revenues and expenses and derives net income.
// Lines with any other category are ignored.
func BuildIncomeStatement(start, end time.Time, lines []domain.IncomeStatementLine) domain.IncomeStatement {
	is := domain.IncomeStatement{
		StartDate:    start,
		EndDate:      end,
		Revenues:     []domain.IncomeStatementLine{},
		Expenses:     []domain.IncomeStatementLine{},
		TotalRevenue: decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, l := range lines {
		switch l.Category {
		case domain.CategoryRevenue:
			is.Revenues = append(is.Revenues, l)
			is.TotalRevenue = is.TotalRevenue.Add(l.Amount)
		case domain.CategoryExpense:
			is.Expenses = append(is.Expenses, l)
			is.TotalExpense = is.TotalExpense.Add(l.Amount)
		}
	}
	is.NetIncome = is.TotalRevenue.Sub(is.TotalExpense)
	is.Result = NetIncomeResult(is.NetIncome)
	is.Empty = len(is.Revenues) == 0 && len(is.Expenses) == 0
	return is
}

// BuildBalanceSheet partitions lines into assets, liabilities and equity and checks
// that assets equal liabilities plus equity within tolerance.
func BuildBalanceSheet(asOf time.Time, lines []domain.BalanceSheetLine, tolerance decimal.Decimal) domain.BalanceSheet {
	bs := domain.BalanceSheet{
		AsOf:             asOf,
		Assets:           []domain.BalanceSheetLine{},
		Liabilities:      []domain.BalanceSheetLine{},
		Equity:           []domain.BalanceSheetLine{},
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}
	for _, l := range lines {
		switch l.Category {
		case domain.CategoryAsset:
			bs.Assets = append(bs.Assets, l)
			bs.TotalAssets = bs.TotalAssets.Add(l.Balance)
		case domain.CategoryLiability:
			bs.Liabilities = append(bs.Liabilities, l)
			bs.TotalLiabilities = bs.TotalLiabilities.Add(l.Balance)
		case domain.CategoryEquity:
			bs.Equity = append(bs.Equity, l)
			bs.TotalEquity = bs.TotalEquity.Add(l.Balance)
		}
	}
	bs.TotalLiabilitiesAndEquity = bs.TotalLiabilities.Add(bs.TotalEquity)
	bs.IsBalanced = WithinTolerance(bs.TotalAssets, bs.TotalLiabilitiesAndEquity, tolerance)
	bs.Empty = len(bs.Assets) == 0 && len(bs.Liabilities) == 0 && len(bs.Equity) == 0
	return bs
}
