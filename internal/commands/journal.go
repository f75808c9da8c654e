package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	portssvc "github.com/SscSPs/freight_management_app/internal/core/ports/services"
	"github.com/SscSPs/freight_management_app/internal/dto"
	"github.com/SscSPs/freight_management_app/internal/utils/accounting"
)

func newJournalCommand(load serviceLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Post journal entries",
	}

	var entryDate, description, createdBy string
	var lineSpecs []string
	post := &cobra.Command{
		Use:   "post",
		Short: "Validate and post a journal entry",
		Long: `Validate and post a journal entry.

Each --line is account:debit:credit[:memo] where account is an account
code or ID. Leave the unused side empty, e.g.
  --line 1100:250: --line 4100::250:freight invoice`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := time.Parse(dto.DateFormat, entryDate)
			if err != nil {
				return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", entryDate)
			}

			req := dto.CreateJournalEntryRequest{
				EntryDate:   entryDate,
				Description: description,
				Lines:       make([]dto.JournalLineRequest, 0, len(lineSpecs)),
			}
			for i, spec := range lineSpecs {
				line, err := parseLineSpec(spec)
				if err != nil {
					return fmt.Errorf("line %d: %w", i+1, err)
				}
				req.Lines = append(req.Lines, line)
			}

			// Reject unbalanced or incomplete entries before touching the database.
			draft := accounting.DraftFromLines(date, description, req.ToJournalLines())
			if err := draft.Validate(); err != nil {
				return err
			}
			totals := draft.Totals()

			svc, release, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			if err := resolveAccountCodes(cmd.Context(), svc.Account, req.Lines); err != nil {
				return err
			}

			created, err := svc.Journal.CreateJournalEntry(cmd.Context(), req, createdBy)
			if err != nil {
				return fmt.Errorf("posting journal entry: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Posted %s (%s): debit %s, credit %s\n",
				created.EntryNumber, created.EntryID, totals.Debit.StringFixed(3), totals.Credit.StringFixed(3))
			return nil
		},
	}
	post.Flags().StringVar(&entryDate, "date", time.Now().Format(dto.DateFormat), "entry date, YYYY-MM-DD")
	post.Flags().StringVar(&description, "description", "", "entry description (required)")
	_ = post.MarkFlagRequired("description")
	post.Flags().StringArrayVar(&lineSpecs, "line", nil, "detail line as account:debit:credit[:memo] (repeatable)")
	_ = post.MarkFlagRequired("line")
	post.Flags().StringVar(&createdBy, "created-by", "", "ID of the user recorded as the entry's author")
	cmd.AddCommand(post)

	return cmd
}

// parseLineSpec parses account:debit:credit[:memo]. Empty amounts are zero.
// The memo is everything after the third colon and may itself contain colons.
func parseLineSpec(spec string) (dto.JournalLineRequest, error) {
	parts := strings.SplitN(spec, ":", 4)
	if len(parts) < 3 {
		return dto.JournalLineRequest{}, fmt.Errorf("%q is not account:debit:credit[:memo]", spec)
	}

	debit, err := parseAmount(parts[1])
	if err != nil {
		return dto.JournalLineRequest{}, fmt.Errorf("debit: %w", err)
	}
	credit, err := parseAmount(parts[2])
	if err != nil {
		return dto.JournalLineRequest{}, fmt.Errorf("credit: %w", err)
	}

	line := dto.JournalLineRequest{
		AccountID: strings.TrimSpace(parts[0]),
		Debit:     debit,
		Credit:    credit,
	}
	if len(parts) == 4 {
		line.Description = strings.TrimSpace(parts[3])
	}
	return line, nil
}

// resolveAccountCodes replaces account codes with account IDs in place.
// Values that match no code are left alone and treated as IDs.
func resolveAccountCodes(ctx context.Context, accounts portssvc.AccountReaderSvc, lines []dto.JournalLineRequest) error {
	list, err := accounts.ListAccounts(ctx)
	if err != nil {
		return fmt.Errorf("listing accounts: %w", err)
	}
	byCode := make(map[string]string, len(list))
	for _, a := range list {
		byCode[a.Code] = a.AccountID
	}
	for i := range lines {
		if id, ok := byCode[lines[i].AccountID]; ok {
			lines[i].AccountID = id
		}
	}
	return nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}
