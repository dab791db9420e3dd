package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Inspect invoices",
}

var invoicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices with totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		out := cmd.OutOrStdout()

		summaries, err := appInstance.StatementService.Summaries(ctx)
		if err != nil {
			return fmt.Errorf("failed to list invoices: %w", err)
		}

		if len(summaries) == 0 {
			fmt.Fprintln(out, "No invoices found")
			return nil
		}

		format := appInstance.Renderer.Format

		fmt.Fprintf(out, "%-20s %-6s %-9s %-14s %s\n", "Customer", "Perfs", "Audience", "Total", "Credits")
		fmt.Fprintln(out, "----------------------------------------------------------------")

		var grand int64
		for _, s := range summaries {
			fmt.Fprintf(out, "%-20s %-6d %-9d %-14s %d\n",
				truncate(s.Customer, 20),
				s.Performances,
				s.Audience,
				format(s.TotalAmount),
				s.TotalCredits,
			)
			grand += s.TotalAmount
		}

		fmt.Fprintf(out, "\nTotal: %d invoice(s), %s\n", len(summaries), format(grand))
		return nil
	},
}

func init() {
	invoicesCmd.AddCommand(invoicesListCmd)
}
