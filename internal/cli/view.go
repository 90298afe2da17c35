package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/sentinel/internal/models"
	"github.com/example/sentinel/internal/wire"
)

// ViewCmd returns the view command.
func ViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [key]",
		Short: "View current assessments",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := wire.AssessmentService().GetState(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load assessments: %w", err)
			}

			keys := state.TopicKeys()
			if len(args) == 1 {
				if _, ok := state.Assessments[args[0]]; !ok {
					return fmt.Errorf("unknown topic %q", args[0])
				}
				keys = []string{args[0]}
			}

			fmt.Println("CURRENT ASSESSMENTS")
			for _, key := range keys {
				printAssessment(key, state.Assessments[key])
			}
			return nil
		},
	}
}

func printAssessment(key string, assessment *models.Assessment) {
	fmt.Printf("\n📌 %s (%s)\n", assessment.Title, key)
	fmt.Printf("   Question: %s\n", assessment.Question)

	if assessment.CurrentProbability == nil {
		fmt.Println("   Status: Not yet assessed")
		return
	}

	fmt.Printf("   Probability: %d%% (%s)\n", *assessment.CurrentProbability, strOrDash(assessment.CurrentDescriptor))
	fmt.Printf("   Confidence: %s\n", strOrDash(assessment.Confidence))
	fmt.Printf("   Last Updated: %s\n", strOrDash(assessment.LastUpdated))
	fmt.Printf("   Next Review: %s\n", strOrDash(assessment.NextReview))

	if len(assessment.KeyDrivers) > 0 {
		fmt.Println("   Key Drivers:")
		for _, driver := range assessment.KeyDrivers {
			fmt.Printf("      • %s\n", driver)
		}
	}
	if len(assessment.KeyUncertainties) > 0 {
		fmt.Println("   Critical Uncertainties:")
		for _, uncertainty := range assessment.KeyUncertainties {
			fmt.Printf("      • %s\n", uncertainty)
		}
	}
	if len(assessment.IndicatorStatus) > 0 {
		fmt.Println("   Indicator Status:")
		for _, ind := range sortedIndicators(assessment.IndicatorStatus) {
			fmt.Printf("      %s: %s\n", ind, assessment.IndicatorStatus[ind])
		}
	}
	if assessment.Notes != "" {
		fmt.Printf("   Notes: %s\n", assessment.Notes)
	}
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
