package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/sentinel/internal/wire"
)

// VisualizeCmd returns the visualize command.
func VisualizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visualize [key]",
		Short: "Generate probability timeline and snapshot charts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputDir, _ := cmd.Flags().GetString("output-dir")

			state, err := wire.AssessmentService().GetState(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load state: %w", err)
			}

			renderer := wire.Renderer(outputDir)

			if len(args) == 1 {
				key := args[0]
				title := key
				if assessment, ok := state.Assessments[key]; ok {
					title = assessment.Title
				}
				path, err := renderer.Timeline(key, title, state.History[key])
				if err != nil {
					return err
				}
				fmt.Printf("✓ Wrote %s\n", path)
				return nil
			}

			paths, err := renderer.RenderAll(state)
			if err != nil {
				return err
			}
			for _, path := range paths {
				fmt.Printf("✓ Wrote %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().String("output-dir", "", "Output directory for charts (default from config)")
	return cmd
}
