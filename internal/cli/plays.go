package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var playsCmd = &cobra.Command{
	Use:   "plays",
	Short: "Inspect the play catalog",
}

var playsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List plays",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		out := cmd.OutOrStdout()

		catalog, err := appInstance.StatementService.Catalog(ctx)
		if err != nil {
			return err
		}

		if len(catalog) == 0 {
			fmt.Fprintln(out, "No plays found")
			return nil
		}

		fmt.Fprintf(out, "%-15s %-30s %-10s\n", "ID", "Name", "Genre")
		fmt.Fprintln(out, "----------------------------------------------------------")

		for _, id := range catalog.IDs() {
			play := catalog[id]
			genre := string(play.Genre)
			if !play.Genre.Known() {
				genre = warnText(genre + " (unpriced)")
			}
			fmt.Fprintf(out, "%-15s %-30s %s\n", truncate(id, 15), truncate(play.Name, 30), genre)
		}

		fmt.Fprintf(out, "\nTotal: %d play(s)\n", len(catalog))
		return nil
	},
}

func init() {
	playsCmd.AddCommand(playsListCmd)
}
