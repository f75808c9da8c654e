package accounting

import (
	"fmt"
	"strings"

	"github.com/SscSPs/freight_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Epsilon is the absolute currency-unit tolerance used by the balance checks of the
// trial balance and the balance sheet. It absorbs rounding of server-side aggregates.
var Epsilon = decimal.New(1, -3)

// WithinTolerance reports whether |a - b| < tolerance.
func WithinTolerance(a, b, tolerance decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(tolerance)
}

// ValidAmount reports whether amount is non-negative and survives storage at
// domain.AmountPlaces without rounding.
func ValidAmount(amount decimal.Decimal) bool {
	return !amount.IsNegative() && amount.Equal(amount.Round(domain.AmountPlaces))
}

// LineTotals sums the debit and credit sides of a set of journal lines.
func LineTotals(lines []domain.JournalLine) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, l := range lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return debit, credit
}

// IsBalancedEntry reports whether debit equals credit and the common sum is greater than zero.
func IsBalancedEntry(debit, credit decimal.Decimal) bool {
	return debit.Equal(credit) && debit.GreaterThan(decimal.Zero)
}

// ValidateJournalLines applies the posting rules to a proposed entry. The checks run in a
// fixed order: line count, amount sign and precision, balance, account references, then per-line shape.
// It never performs I/O.
func ValidateJournalLines(lines []domain.JournalLine) error {
	if len(lines) < domain.MinJournalLines {
		return domain.ErrMinimumLines
	}

	for i, l := range lines {
		if !ValidAmount(l.Debit) || !ValidAmount(l.Credit) {
			return fmt.Errorf("%w (line %d)", domain.ErrInvalidAmount, i+1)
		}
	}

	debit, credit := LineTotals(lines)
	if !IsBalancedEntry(debit, credit) {
		return fmt.Errorf("%w: debit %s, credit %s", domain.ErrEntryUnbalanced, debit.StringFixed(2), credit.StringFixed(2))
	}

	for i, l := range lines {
		if strings.TrimSpace(l.AccountID) == "" {
			return fmt.Errorf("%w (line %d)", domain.ErrEntryIncomplete, i+1)
		}
	}

	for i, l := range lines {
		hasDebit := l.Debit.IsPositive()
		hasCredit := l.Credit.IsPositive()
		switch {
		case hasDebit && hasCredit:
			return fmt.Errorf("%w (line %d)", domain.ErrLineBothSides, i+1)
		case !hasDebit && !hasCredit:
			return fmt.Errorf("%w (line %d)", domain.ErrLineEmpty, i+1)
		}
	}

	return nil
}

// CalculateSignedAmount returns the effect of a journal line on the balance of an account
// of the given type. Debits increase asset and expense accounts; credits increase
// liability, equity and revenue accounts.
func CalculateSignedAmount(line domain.JournalLine, accountType domain.AccountType) (decimal.Decimal, error) {
	net := line.Debit.Sub(line.Credit)
	switch accountType {
	case domain.Asset, domain.Expense:
		return net, nil
	case domain.Liability, domain.Equity, domain.Revenue:
		return net.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account ID %s", accountType, line.AccountID)
	}
}

// BalanceChanges computes the net balance delta per account for a validated entry.
func BalanceChanges(lines []domain.JournalLine, accountTypes map[string]domain.AccountType) (map[string]decimal.Decimal, error) {
	changes := make(map[string]decimal.Decimal, len(lines))
	for _, l := range lines {
		accountType, ok := accountTypes[l.AccountID]
		if !ok {
			return nil, fmt.Errorf("account type not found for account ID %s", l.AccountID)
		}
		signed, err := CalculateSignedAmount(l, accountType)
		if err != nil {
			return nil, err
		}
		changes[l.AccountID] = changes[l.AccountID].Add(signed)
	}
	return changes, nil
}
