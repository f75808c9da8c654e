package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementCategory tags a report line with its coarse accounting category.
type StatementCategory string

const (
	CategoryRevenue   StatementCategory = "revenue"
	CategoryExpense   StatementCategory = "expense"
	CategoryAsset     StatementCategory = "asset"
	CategoryLiability StatementCategory = "liability"
	CategoryEquity    StatementCategory = "equity"
)

// NetIncomeLabel is the display label derived from the sign of net income.
type NetIncomeLabel string

const (
	Profit NetIncomeLabel = "profit"
	Loss   NetIncomeLabel = "loss"
)

// TrialBalanceRow holds the summed postings for one account.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

// TrialBalance is the aggregated trial balance report.
type TrialBalance struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
	IsBalanced  bool              `json:"isBalanced"`
	Empty       bool              `json:"empty"`
}

// IncomeStatementLine is an account-level amount in the income statement.
type IncomeStatementLine struct {
	Category    StatementCategory `json:"category"`
	AccountName string            `json:"accountName"`
	Amount      decimal.Decimal   `json:"amount"`
}

// IncomeStatement is the revenue minus expense report over a period.
type IncomeStatement struct {
	StartDate    time.Time             `json:"startDate"`
	EndDate      time.Time             `json:"endDate"`
	Revenues     []IncomeStatementLine `json:"revenues"`
	Expenses     []IncomeStatementLine `json:"expenses"`
	TotalRevenue decimal.Decimal       `json:"totalRevenue"`
	TotalExpense decimal.Decimal       `json:"totalExpense"`
	NetIncome    decimal.Decimal       `json:"netIncome"`
	Result       NetIncomeLabel        `json:"result"`
	Empty        bool                  `json:"empty"`
}

// BalanceSheetLine is an account-level balance in the balance sheet.
type BalanceSheetLine struct {
	Category    StatementCategory `json:"category"`
	SubCategory string            `json:"subCategory"`
	AccountName string            `json:"accountName"`
	Balance     decimal.Decimal   `json:"balance"`
}

// BalanceSheet asserts assets = liabilities + equity as of a date.
type BalanceSheet struct {
	AsOf                      time.Time          `json:"asOf"`
	Assets                    []BalanceSheetLine `json:"assets"`
	Liabilities               []BalanceSheetLine `json:"liabilities"`
	Equity                    []BalanceSheetLine `json:"equity"`
	TotalAssets               decimal.Decimal    `json:"totalAssets"`
	TotalLiabilities          decimal.Decimal    `json:"totalLiabilities"`
	TotalEquity               decimal.Decimal    `json:"totalEquity"`
	TotalLiabilitiesAndEquity decimal.Decimal    `json:"totalLiabilitiesAndEquity"`
	IsBalanced                bool               `json:"isBalanced"`
	Empty                     bool               `json:"empty"`
}

// DashboardSummary is the landing page overview.
type DashboardSummary struct {
	CustomerCount      int                    `json:"customerCount"`
	ShipmentCount      int                    `json:"shipmentCount"`
	ShipmentsByStatus  map[ShipmentStatus]int `json:"shipmentsByStatus"`
	TotalShipmentValue decimal.Decimal        `json:"totalShipmentValue"`
	TotalCollected     decimal.Decimal        `json:"totalCollected"`
}
