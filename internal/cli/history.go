package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/sentinel/internal/wire"
)

// HistoryCmd returns the history command.
func HistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history [key]",
		Short: "View historical changes for a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := wire.AssessmentService().GetHistory(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}

			if len(history) == 0 {
				fmt.Printf("No history available for %s\n", args[0])
				return nil
			}

			fmt.Printf("ASSESSMENT HISTORY: %s\n", args[0])
			for i, entry := range history {
				fmt.Printf("\n#%d - %s\n", i+1, entry.Date)
				fmt.Printf("   Probability: %d%% (%s)\n", entry.Probability, entry.Descriptor)
				fmt.Printf("   Confidence: %s\n", entry.Confidence)

				if entry.Change != nil {
					switch {
					case *entry.Change > 0:
						fmt.Printf("   Change: ↗ +%d%%\n", *entry.Change)
					case *entry.Change < 0:
						fmt.Printf("   Change: ↘ %d%%\n", *entry.Change)
					default:
						fmt.Println("   Change: → No change")
					}
				}
				if len(entry.Drivers) > 0 {
					fmt.Printf("   Drivers: %s\n", strings.Join(entry.Drivers, ", "))
				}
				if len(entry.Uncertainties) > 0 {
					fmt.Printf("   Uncertainties: %s\n", strings.Join(entry.Uncertainties, ", "))
				}
				if entry.Notes != "" {
					fmt.Printf("   Notes: %s\n", entry.Notes)
				}
			}
			return nil
		},
	}
}

func sortedIndicators(status map[string]string) []string {
	inds := make([]string, 0, len(status))
	for ind := range status {
		inds = append(inds, ind)
	}
	sort.Strings(inds)
	return inds
}
