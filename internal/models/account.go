package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

// Account represents a row of the chart_of_accounts table.
type Account struct {
	AccountID       string          `db:"id"`
	AccountCode     string          `db:"account_code"`
	AccountName     string          `db:"account_name"`
	AccountType     AccountType     `db:"account_type"`
	ParentAccountID *string         `db:"parent_account_id"` // Nullable
	Level           int             `db:"level"`
	IsActive        bool            `db:"is_active"`
	Balance         decimal.Decimal `db:"balance"`
	CreatedAt       time.Time       `db:"created_at"`
}
