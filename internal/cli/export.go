package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/sentinel/internal/export"
	"github.com/example/sentinel/internal/wire"
)

// ExportCmd returns the export command.
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export assessments and history to CSV or Markdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			output, _ := cmd.Flags().GetString("output")

			if format != "csv" && format != "markdown" {
				return fmt.Errorf("unsupported format %q: use csv or markdown", format)
			}

			state, err := wire.AssessmentService().GetState(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load state: %w", err)
			}

			now := time.Now()
			if output == "" {
				ext := "csv"
				if format == "markdown" {
					ext = "md"
				}
				output = fmt.Sprintf("assessments_export_%s.%s", now.Format("20060102_150405"), ext)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()

			switch format {
			case "csv":
				err = export.WriteCSV(f, state)
			case "markdown":
				err = export.WriteMarkdown(f, state, now)
			}
			if err != nil {
				return err
			}

			abs, _ := filepath.Abs(output)
			fmt.Printf("✓ Exported to %s: %s\n", format, abs)
			return nil
		},
	}

	cmd.Flags().String("format", "csv", "Export format: csv or markdown")
	cmd.Flags().String("output", "", "Output file path (default timestamped name)")
	return cmd
}
