package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andy/playbill/internal/service"
)

var statementCmd = &cobra.Command{
	Use:   "statement [customer]",
	Short: "Print billing statements",
	Long: `Print the statement for the named customer, or for every invoice when no
customer is given. Nothing is printed if any invoice fails to price.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		customer := ""
		if len(args) == 1 {
			customer = args[0]
		}
		return printStatements(cmd, customer)
	},
}

// printStatements renders one customer's statement, or all of them when customer is empty
func printStatements(cmd *cobra.Command, customer string) error {
	ctx := context.Background()
	out := cmd.OutOrStdout()

	var results []*service.StatementResult
	if customer != "" {
		result, err := appInstance.StatementService.Render(ctx, customer)
		if err != nil {
			return fmt.Errorf("failed to render statement: %w", err)
		}
		results = append(results, result)
	} else {
		var err error
		results, err = appInstance.StatementService.RenderAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to render statements: %w", err)
		}
	}

	for i, result := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprint(out, result.Text)
	}
	return nil
}
