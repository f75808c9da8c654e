package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/SscSPs/freight_management_app/internal/core/domain"
	"github.com/SscSPs/freight_management_app/internal/dto"
)

const amountPlaces = 3

func newReportsCommand(load serviceLoader) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Print financial reports",
	}
	cmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print the report as JSON")

	cmd.AddCommand(&cobra.Command{
		Use:   "trial-balance",
		Short: "Debit and credit totals per account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, release, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			tb, err := svc.Reporting.TrialBalance(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), dto.ToTrialBalanceResponse(tb))
			}
			return writeTrialBalance(cmd.OutOrStdout(), tb)
		},
	})

	var start, end string
	income := &cobra.Command{
		Use:   "income-statement",
		Short: "Revenue minus expenses over a period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := parseDateFlag("start", start)
			if err != nil {
				return err
			}
			endDate, err := parseDateFlag("end", end)
			if err != nil {
				return err
			}

			svc, release, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			is, err := svc.Reporting.IncomeStatement(cmd.Context(), startDate, endDate)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), dto.ToIncomeStatementResponse(is))
			}
			return writeIncomeStatement(cmd.OutOrStdout(), is)
		},
	}
	income.Flags().StringVar(&start, "start", "", "first day of the period, YYYY-MM-DD (required)")
	_ = income.MarkFlagRequired("start")
	income.Flags().StringVar(&end, "end", "", "last day of the period, YYYY-MM-DD (required)")
	_ = income.MarkFlagRequired("end")
	cmd.AddCommand(income)

	var asOf string
	balance := &cobra.Command{
		Use:   "balance-sheet",
		Short: "Assets against liabilities and equity as of a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asOfDate, err := parseDateFlag("as-of", asOf)
			if err != nil {
				return err
			}

			svc, release, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			bs, err := svc.Reporting.BalanceSheet(cmd.Context(), asOfDate)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), dto.ToBalanceSheetResponse(bs))
			}
			return writeBalanceSheet(cmd.OutOrStdout(), bs)
		},
	}
	balance.Flags().StringVar(&asOf, "as-of", time.Now().Format(dto.DateFormat), "report date, YYYY-MM-DD")
	cmd.AddCommand(balance)

	return cmd
}

func parseDateFlag(name, value string) (time.Time, error) {
	t, err := time.Parse(dto.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q, expected YYYY-MM-DD", name, value)
	}
	return t, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func amount(d decimal.Decimal) string {
	return d.StringFixed(amountPlaces)
}

func balancedLabel(ok bool) string {
	if ok {
		return "balanced"
	}
	return "NOT BALANCED"
}

func writeTrialBalance(w io.Writer, tb *domain.TrialBalance) error {
	if tb.Empty {
		_, err := fmt.Fprintln(w, "No posted journal entries.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Code\tAccount\tDebit\tCredit\t")
	for _, r := range tb.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", r.AccountCode, r.AccountName, amount(r.TotalDebit), amount(r.TotalCredit))
	}
	fmt.Fprintf(tw, "\tTotal\t%s\t%s\t\n", amount(tb.TotalDebit), amount(tb.TotalCredit))
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Trial balance is %s.\n", balancedLabel(tb.IsBalanced))
	return err
}

func writeIncomeStatement(w io.Writer, is *domain.IncomeStatement) error {
	fmt.Fprintf(w, "Income statement %s to %s\n", is.StartDate.Format(dto.DateFormat), is.EndDate.Format(dto.DateFormat))
	if is.Empty {
		_, err := fmt.Fprintln(w, "No revenue or expense postings in this period.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	writeSection(tw, "Revenue", statementRows(is.Revenues), is.TotalRevenue)
	writeSection(tw, "Expenses", statementRows(is.Expenses), is.TotalExpense)
	fmt.Fprintf(tw, "Net income (%s)\t%s\t\n", is.Result, amount(is.NetIncome))
	return tw.Flush()
}

func writeBalanceSheet(w io.Writer, bs *domain.BalanceSheet) error {
	fmt.Fprintf(w, "Balance sheet as of %s\n", bs.AsOf.Format(dto.DateFormat))
	if bs.Empty {
		_, err := fmt.Fprintln(w, "No balance sheet postings up to this date.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	writeSection(tw, "Assets", balanceRows(bs.Assets), bs.TotalAssets)
	writeSection(tw, "Liabilities", balanceRows(bs.Liabilities), bs.TotalLiabilities)
	writeSection(tw, "Equity", balanceRows(bs.Equity), bs.TotalEquity)
	fmt.Fprintf(tw, "Liabilities and equity\t%s\t\n", amount(bs.TotalLiabilitiesAndEquity))
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Balance sheet is %s.\n", balancedLabel(bs.IsBalanced))
	return err
}

type reportRow struct {
	name   string
	amount decimal.Decimal
}

func statementRows(lines []domain.IncomeStatementLine) []reportRow {
	rows := make([]reportRow, len(lines))
	for i, l := range lines {
		rows[i] = reportRow{name: l.AccountName, amount: l.Amount}
	}
	return rows
}

func balanceRows(lines []domain.BalanceSheetLine) []reportRow {
	rows := make([]reportRow, len(lines))
	for i, l := range lines {
		rows[i] = reportRow{name: l.AccountName, amount: l.Balance}
	}
	return rows
}

func writeSection(w io.Writer, title string, rows []reportRow, total decimal.Decimal) {
	fmt.Fprintf(w, "%s\t\t\n", title)
	for _, r := range rows {
		fmt.Fprintf(w, "  %s\t%s\t\n", r.name, amount(r.amount))
	}
	fmt.Fprintf(w, "Total %s\t%s\t\n", title, amount(total))
}
