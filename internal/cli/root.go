package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/andy/playbill/internal/app"
	"github.com/andy/playbill/internal/config"
)

var appInstance *app.App

var rootCmd = &cobra.Command{
	Use:   "playbill",
	Short: "Billing statements for theater performances",
	Long: `Playbill prices theater performances and prints customer statements
from a play catalog and an invoice file.

Running playbill without arguments on a terminal launches the interactive TUI;
otherwise it prints every statement.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return launchTUI(cmd, args)
		}
		return printStatements(cmd, "")
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

// Close releases the app instance, if one was created
func Close() error {
	if appInstance == nil {
		return nil
	}
	return appInstance.Close()
}

// initApp loads config, applies flag overrides and builds the app
func initApp(cmd *cobra.Command, args []string) error {
	if appInstance != nil {
		return nil
	}

	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if flags.Changed("plays") {
		cfg.Data.PlaysPath, _ = flags.GetString("plays")
	}
	if flags.Changed("invoices") {
		cfg.Data.InvoicesPath, _ = flags.GetString("invoices")
	}
	if flags.Changed("lang") {
		cfg.Statement.Language, _ = flags.GetString("lang")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}

	a, err := app.NewWithConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	a.ConfigPath = path
	appInstance = a
	return nil
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/playbill/config.yaml)")
	rootCmd.PersistentFlags().String("plays", "", "Play catalog file (JSON or YAML)")
	rootCmd.PersistentFlags().String("invoices", "", "Invoice file (JSON or YAML)")
	rootCmd.PersistentFlags().String("lang", "", "Statement language (ko, en)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")

	// Add all subcommands
	rootCmd.AddCommand(statementCmd)
	rootCmd.AddCommand(playsCmd)
	rootCmd.AddCommand(invoicesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(tuiCmd)
}
