package dto

import (
	"github.com/SscSPs/freight_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateFormat is the calendar date layout used by query parameters and responses.
const DateFormat = "2006-01-02"

// IncomeStatementParams defines the period of an income statement.
type IncomeStatementParams struct {
	StartDate string `form:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"required,datetime=2006-01-02"`
}

// BalanceSheetParams defines the as-of date of a balance sheet.
type BalanceSheetParams struct {
	AsOf string `form:"asOf" binding:"required,datetime=2006-01-02"`
}

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
	IsBalanced bool `json:"isBalanced"`
	Empty      bool `json:"empty"`
}

// IncomeStatementLineResponse is an account amount in the income statement.
type IncomeStatementLineResponse struct {
	AccountName string          `json:"accountName"`
	Amount      decimal.Decimal `json:"amount"`
}

// IncomeStatementResponse represents the income statement report response
type IncomeStatementResponse struct {
	StartDate string                        `json:"startDate"`
	EndDate   string                        `json:"endDate"`
	Revenues  []IncomeStatementLineResponse `json:"revenues"`
	Expenses  []IncomeStatementLineResponse `json:"expenses"`
	Summary   struct {
		TotalRevenue decimal.Decimal       `json:"totalRevenue"`
		TotalExpense decimal.Decimal       `json:"totalExpense"`
		NetIncome    decimal.Decimal       `json:"netIncome"`
		Result       domain.NetIncomeLabel `json:"result"`
	} `json:"summary"`
	Empty bool `json:"empty"`
}

// BalanceSheetLineResponse is an account balance in the balance sheet.
type BalanceSheetLineResponse struct {
	SubCategory string          `json:"subCategory"`
	AccountName string          `json:"accountName"`
	Balance     decimal.Decimal `json:"balance"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	AsOf        string                     `json:"asOf"`
	Assets      []BalanceSheetLineResponse `json:"assets"`
	Liabilities []BalanceSheetLineResponse `json:"liabilities"`
	Equity      []BalanceSheetLineResponse `json:"equity"`
	Summary     struct {
		TotalAssets               decimal.Decimal `json:"totalAssets"`
		TotalLiabilities          decimal.Decimal `json:"totalLiabilities"`
		TotalEquity               decimal.Decimal `json:"totalEquity"`
		TotalLiabilitiesAndEquity decimal.Decimal `json:"totalLiabilitiesAndEquity"`
		IsBalanced                bool            `json:"isBalanced"`
	} `json:"summary"`
	Empty bool `json:"empty"`
}

// ToTrialBalanceResponse converts a domain trial balance to a DTO response
func ToTrialBalanceResponse(tb *domain.TrialBalance) TrialBalanceResponse {
	res := TrialBalanceResponse{
		Rows:       make([]TrialBalanceRowResponse, len(tb.Rows)),
		IsBalanced: tb.IsBalanced,
		Empty:      tb.Empty,
	}
	for i, r := range tb.Rows {
		res.Rows[i] = TrialBalanceRowResponse{
			AccountID:   r.AccountID,
			AccountCode: r.AccountCode,
			AccountName: r.AccountName,
			TotalDebit:  r.TotalDebit,
			TotalCredit: r.TotalCredit,
		}
	}
	res.Totals.Debit = tb.TotalDebit
	res.Totals.Credit = tb.TotalCredit
	return res
}

func toIncomeStatementLines(lines []domain.IncomeStatementLine) []IncomeStatementLineResponse {
	res := make([]IncomeStatementLineResponse, len(lines))
	for i, l := range lines {
		res[i] = IncomeStatementLineResponse{AccountName: l.AccountName, Amount: l.Amount}
	}
	return res
}

// ToIncomeStatementResponse converts a domain income statement to a DTO response
func ToIncomeStatementResponse(is *domain.IncomeStatement) IncomeStatementResponse {
	res := IncomeStatementResponse{
		StartDate: is.StartDate.Format(DateFormat),
		EndDate:   is.EndDate.Format(DateFormat),
		Revenues:  toIncomeStatementLines(is.Revenues),
		Expenses:  toIncomeStatementLines(is.Expenses),
		Empty:     is.Empty,
	}
	res.Summary.TotalRevenue = is.TotalRevenue
	res.Summary.TotalExpense = is.TotalExpense
	res.Summary.NetIncome = is.NetIncome
	res.Summary.Result = is.Result
	return res
}

func toBalanceSheetLines(lines []domain.BalanceSheetLine) []BalanceSheetLineResponse {
	res := make([]BalanceSheetLineResponse, len(lines))
	for i, l := range lines {
		res[i] = BalanceSheetLineResponse{SubCategory: l.SubCategory, AccountName: l.AccountName, Balance: l.Balance}
	}
	return res
}

// ToBalanceSheetResponse converts a domain balance sheet to a DTO response
func ToBalanceSheetResponse(bs *domain.BalanceSheet) BalanceSheetResponse {
	res := BalanceSheetResponse{
		AsOf:        bs.AsOf.Format(DateFormat),
		Assets:      toBalanceSheetLines(bs.Assets),
		Liabilities: toBalanceSheetLines(bs.Liabilities),
		Equity:      toBalanceSheetLines(bs.Equity),
		Empty:       bs.Empty,
	}
	res.Summary.TotalAssets = bs.TotalAssets
	res.Summary.TotalLiabilities = bs.TotalLiabilities
	res.Summary.TotalEquity = bs.TotalEquity
	res.Summary.TotalLiabilitiesAndEquity = bs.TotalLiabilitiesAndEquity
	res.Summary.IsBalanced = bs.IsBalanced
	return res
}
