package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	corestatus "github.com/example/sentinel/internal/core/status"
	"github.com/example/sentinel/internal/notify"
	"github.com/example/sentinel/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show overdue and due-soon assessments",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := wire.StatusService().GetStatus(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to compute status: %w", err)
			}

			printStatusReport(report)

			checkOverdue, _ := cmd.Flags().GetBool("check-overdue")
			if checkOverdue && report.NeedsAttention() {
				notifier := wire.DesktopNotifier()
				if err := notifier.Notify(cmd.Context(), "Assessment Tracker", notify.ReminderMessage(report)); err != nil {
					return fmt.Errorf("failed to send notification: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().Bool("check-overdue", false, "Send a desktop notification when anything needs review")
	return cmd
}

func printStatusReport(report corestatus.Report) {
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	green := color.New(color.FgGreen, color.Bold)

	fmt.Println("ASSESSMENT STATUS")
	fmt.Printf("Date: %s\n", report.Date)
	fmt.Printf("Topics: %d (%d assessed)\n\n", report.TotalTopics, report.AssessedCount)

	if len(report.Overdue) > 0 {
		red.Println("🔴 OVERDUE ASSESSMENTS:")
		for _, item := range report.Overdue {
			if item.Days == nil {
				fmt.Printf("   • %s - Never assessed\n", item.Title)
				continue
			}
			fmt.Printf("   • %s - %d days overdue (due: %s)\n", item.Title, *item.Days, item.NextReview)
		}
		fmt.Println()
	}

	if len(report.DueSoon) > 0 {
		yellow.Println("🟡 DUE SOON (within 3 days):")
		for _, item := range report.DueSoon {
			fmt.Printf("   • %s - Due in %d days (%s)\n", item.Title, *item.Days, item.NextReview)
		}
		fmt.Println()
	}

	if !report.NeedsAttention() {
		green.Println("✅ All assessments are up to date!")
	}
}
