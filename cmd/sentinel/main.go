package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/sentinel/internal/cli"
	"github.com/example/sentinel/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "sentinel",
		Short:   "Sentinel - probability assessment tracker",
		Version: version.String(),
		Long: `Sentinel maintains ongoing probability assessments for geopolitical
questions, tracks how each estimate changes over time, and renders the
history as reports, charts and a small web dashboard.`,
	}

	// Topic registry
	rootCmd.AddCommand(cli.TopicCmd())

	// Assessment workflow
	rootCmd.AddCommand(cli.AssessCmd())
	rootCmd.AddCommand(cli.ViewCmd())
	rootCmd.AddCommand(cli.HistoryCmd())

	// Derived views
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.ReportCmd())
	rootCmd.AddCommand(cli.ExportCmd())
	rootCmd.AddCommand(cli.VisualizeCmd())

	// Collaborators
	rootCmd.AddCommand(cli.NotifyCmd())
	rootCmd.AddCommand(cli.ServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
