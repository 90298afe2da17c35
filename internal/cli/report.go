package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	corestatus "github.com/example/sentinel/internal/core/status"
	"github.com/example/sentinel/internal/wire"
)

// ReportCmd returns the report command.
func ReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Generate a comprehensive summary report",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := wire.StatusService().GetSummary(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to build summary: %w", err)
			}

			printSummary(summary)
			return nil
		},
	}
}

func printSummary(summary corestatus.Summary) {
	fmt.Println("ASSESSMENT REPORT")
	fmt.Printf("Generated: %s\n\n", summary.Generated)

	fmt.Println("📊 STATUS OVERVIEW:")
	fmt.Printf("   Total Topics: %d\n", summary.Status.TotalTopics)
	fmt.Printf("   Assessed: %d/%d\n", summary.Status.AssessedCount, summary.Status.TotalTopics)
	fmt.Printf("   Overdue: %d\n", len(summary.Status.Overdue))
	fmt.Printf("   Due Soon: %d\n\n", len(summary.Status.DueSoon))

	fmt.Println("CURRENT RISK LEVELS:")
	printRiskBand(color.New(color.FgRed, color.Bold), corestatus.RiskCritical, summary.Critical)
	printRiskBand(color.New(color.FgYellow, color.Bold), corestatus.RiskElevated, summary.Elevated)
	printRiskBand(color.New(color.FgGreen, color.Bold), corestatus.RiskLow, summary.Low)
	printRiskBand(color.New(color.Faint), corestatus.RiskNotAssessed, summary.NotAssessed)

	fmt.Println("\nSIGNIFICANT RECENT CHANGES:")
	if len(summary.SignificantChanges) == 0 {
		fmt.Printf("   No significant changes (±%d%% or more) in recent updates\n", corestatus.SignificantChangeThreshold)
		return
	}
	for _, change := range summary.SignificantChanges {
		symbol := "↗"
		if change.Change < 0 {
			symbol = "↘"
		}
		fmt.Printf("   %s %s: %+d%% on %s\n", symbol, change.Title, change.Change, change.Date)
		if change.Notes != "" {
			fmt.Printf("      Reason: %s\n", change.Notes)
		}
	}
}

func printRiskBand(c *color.Color, label string, items []corestatus.RiskItem) {
	if len(items) == 0 {
		return
	}
	fmt.Println()
	c.Printf("%s:\n", label)
	for _, item := range items {
		if item.Probability == nil {
			fmt.Printf("   • %s\n", item.Title)
			continue
		}
		fmt.Printf("   • %s: %d%% (Confidence: %s)\n", item.Title, *item.Probability, item.Confidence)
	}
}
