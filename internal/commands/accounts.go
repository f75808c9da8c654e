package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SscSPs/freight_management_app/internal/utils/accounting"
)

func newAccountsCommand(load serviceLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Inspect the chart of accounts",
	}

	var expand []string
	var all bool
	tree := &cobra.Command{
		Use:   "tree",
		Short: "Print the chart of accounts as an indented tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, release, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			rows, _, err := svc.Account.GetChartTree(cmd.Context(), expand, all)
			if err != nil {
				return fmt.Errorf("building chart tree: %w", err)
			}
			writeTree(cmd.OutOrStdout(), rows)
			return nil
		},
	}
	tree.Flags().StringSliceVar(&expand, "expand", nil, "account IDs to expand (repeatable or comma separated)")
	tree.Flags().BoolVar(&all, "all", false, "expand every account with children")
	cmd.AddCommand(tree)

	return cmd
}

// writeTree renders rows in the order given; [+] marks a collapsed parent, [-] an expanded one.
func writeTree(w io.Writer, rows []accounting.TreeRow) {
	for _, r := range rows {
		marker := "   "
		if r.HasChildren {
			marker = "[+]"
			if r.Expanded {
				marker = "[-]"
			}
		}
		fmt.Fprintf(w, "%s%s %s %s (%s)  %s\n",
			strings.Repeat("  ", r.Depth), marker, r.Account.Code, r.Account.Name, r.Account.AccountType, r.Account.AccountID)
	}
}
