package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/sentinel/internal/ports/primary"
	"github.com/example/sentinel/internal/wire"
)

// AssessCmd returns the assess command.
func AssessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assess [key]",
		Short: "Record a probability assessment for a topic",
		Long: `Record a probability assessment for a topic.

The update is one command object: probability plus optional confidence,
drivers, uncertainties, indicator statuses and notes. Drivers and
uncertainties are capped at three each.

Examples:
  sentinel assess iranian_collapse --probability 20
  sentinel assess taiwan_invasion --probability 35 --confidence High \
      --driver "PLA exercises intensifying" \
      --indicator "PLA readiness signals=Watch" \
      --notes "Large-scale drills near the strait"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			probability, _ := cmd.Flags().GetInt("probability")
			confidence, _ := cmd.Flags().GetString("confidence")
			drivers, _ := cmd.Flags().GetStringArray("driver")
			uncertainties, _ := cmd.Flags().GetStringArray("uncertainty")
			indicators, _ := cmd.Flags().GetStringArray("indicator")
			notes, _ := cmd.Flags().GetString("notes")
			date, _ := cmd.Flags().GetString("date")

			indicatorStatus, err := parseIndicatorFlags(indicators)
			if err != nil {
				return err
			}

			resp, err := wire.AssessmentService().RecordAssessment(cmd.Context(), primary.RecordAssessmentRequest{
				Key:             args[0],
				Probability:     probability,
				Confidence:      confidence,
				Drivers:         drivers,
				Uncertainties:   uncertainties,
				IndicatorStatus: indicatorStatus,
				Notes:           notes,
				Date:            date,
			})
			if err != nil {
				return fmt.Errorf("failed to record assessment: %w", err)
			}

			fmt.Printf("✓ Assessment recorded for %s\n", resp.Key)
			fmt.Printf("  Probability: %d%% (%s)\n", resp.Entry.Probability, resp.Entry.Descriptor)
			fmt.Printf("  Confidence: %s\n", resp.Entry.Confidence)
			printChange(resp.Entry.Change)
			if resp.Assessment.NextReview != nil {
				fmt.Printf("  Next review: %s\n", *resp.Assessment.NextReview)
			}
			return nil
		},
	}

	cmd.Flags().Int("probability", 0, "Probability 1-100 (required)")
	cmd.Flags().String("confidence", "", "Confidence: Low, Medium or High (default Medium)")
	cmd.Flags().StringArray("driver", nil, "Key driver (repeatable, max 3 kept)")
	cmd.Flags().StringArray("uncertainty", nil, "Critical uncertainty (repeatable, max 3 kept)")
	cmd.Flags().StringArray("indicator", nil, "Indicator status update as name=status (repeatable)")
	cmd.Flags().String("notes", "", "What drove this assessment")
	cmd.Flags().String("date", "", "Assessment date YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("probability")
	return cmd
}

func parseIndicatorFlags(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	updates := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, status, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --indicator %q: expected name=status", pair)
		}
		updates[strings.TrimSpace(name)] = strings.TrimSpace(status)
	}
	return updates, nil
}

func printChange(change *int) {
	if change == nil {
		return
	}
	switch {
	case *change > 0:
		color.New(color.FgRed).Printf("  Change: ↗ +%d%%\n", *change)
	case *change < 0:
		color.New(color.FgGreen).Printf("  Change: ↘ %d%%\n", *change)
	default:
		fmt.Println("  Change: → No change")
	}
}
