package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/freight_management_app/internal/core/domain"
	"github.com/SscSPs/freight_management_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to add an account to the chart.
type CreateAccountRequest struct {
	Code            string             `json:"code" binding:"required,max=20"`
	Name            string             `json:"name" binding:"required,max=200"`
	AccountType     domain.AccountType `json:"accountType" binding:"required,accounttype"`
	ParentAccountID *string            `json:"parentAccountID"` // Optional, nil for a root account
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string             `json:"accountID"`
	Code            string             `json:"code"`
	Name            string             `json:"name"`
	AccountType     domain.AccountType `json:"accountType"`
	ParentAccountID string             `json:"parentAccountID"` // Empty string for root accounts
	Level           int                `json:"level"`
	Balance         decimal.Decimal    `json:"balance"`
	IsActive        bool               `json:"isActive"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		Code:            acc.Code,
		Name:            acc.Name,
		AccountType:     acc.AccountType,
		ParentAccountID: acc.ParentAccountID,
		Level:           acc.Level,
		Balance:         acc.Balance,
		IsActive:        acc.IsActive,
		CreatedAt:       acc.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to ListAccountsResponse
func ToListAccountResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: res}
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	PostableOnly bool `form:"postable"` // Active leaf accounts only
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ChartTreeParams defines query parameters for rendering the chart of accounts.
type ChartTreeParams struct {
	// Comma separated account IDs to expand. When absent every level-1 account is expanded.
	Expanded *string `form:"expanded"`
	All      bool    `form:"all"`
}

// ExpandedIDs splits the expanded parameter. A nil result means "use the default".
func (p ChartTreeParams) ExpandedIDs() []string {
	if p.Expanded == nil {
		return nil
	}
	ids := []string{}
	for _, id := range strings.Split(*p.Expanded, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// TreeRowResponse is one rendered row of the chart of accounts.
type TreeRowResponse struct {
	Account     AccountResponse `json:"account"`
	Depth       int             `json:"depth"`
	Indent      int             `json:"indent"`
	HasChildren bool            `json:"hasChildren"`
	Expanded    bool            `json:"expanded"`
}

// ChartTreeResponse holds the rendered rows and the expansion that produced them.
type ChartTreeResponse struct {
	Rows     []TreeRowResponse `json:"rows"`
	Expanded []string          `json:"expanded"`
}

// ToChartTreeResponse converts rendered tree rows to a response DTO.
func ToChartTreeResponse(rows []accounting.TreeRow, expanded accounting.ExpandedSet) ChartTreeResponse {
	res := ChartTreeResponse{
		Rows:     make([]TreeRowResponse, len(rows)),
		Expanded: expanded.IDs(),
	}
	for i, r := range rows {
		res.Rows[i] = TreeRowResponse{
			Account:     ToAccountResponse(&r.Account),
			Depth:       r.Depth,
			Indent:      r.Indent,
			HasChildren: r.HasChildren,
			Expanded:    r.Expanded,
		}
	}
	return res
}
