package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/example/sentinel/internal/models"
)

// WriteMarkdown renders current assessments followed by per-topic history,
// matching the layout of the tracker's report exports.
func WriteMarkdown(w io.Writer, state *models.State, generated time.Time) error {
	var b strings.Builder

	b.WriteString("# Assessment Tracker Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", generated.Format("2006-01-02 15:04:05"))

	b.WriteString("## Current Assessments\n\n")
	for _, key := range state.TopicKeys() {
		assessment, ok := state.Assessments[key]
		if !ok {
			continue
		}

		fmt.Fprintf(&b, "### %s\n\n", assessment.Title)
		fmt.Fprintf(&b, "**Question:** %s\n\n", assessment.Question)
		fmt.Fprintf(&b, "**Time Horizon:** %s\n\n", assessment.Horizon)

		if assessment.CurrentProbability == nil {
			b.WriteString("**Status:** Not yet assessed\n\n")
			b.WriteString("---\n\n")
			continue
		}

		fmt.Fprintf(&b, "**Current Probability:** %d%% (%s)\n\n",
			*assessment.CurrentProbability, deref(assessment.CurrentDescriptor))
		fmt.Fprintf(&b, "**Confidence:** %s\n\n", deref(assessment.Confidence))
		fmt.Fprintf(&b, "**Last Updated:** %s\n\n", deref(assessment.LastUpdated))
		fmt.Fprintf(&b, "**Next Review:** %s\n\n", deref(assessment.NextReview))

		if len(assessment.KeyDrivers) > 0 {
			b.WriteString("**Key Drivers:**\n")
			for _, driver := range assessment.KeyDrivers {
				fmt.Fprintf(&b, "- %s\n", driver)
			}
			b.WriteString("\n")
		}

		if len(assessment.KeyUncertainties) > 0 {
			b.WriteString("**Critical Uncertainties:**\n")
			for _, uncertainty := range assessment.KeyUncertainties {
				fmt.Fprintf(&b, "- %s\n", uncertainty)
			}
			b.WriteString("\n")
		}

		if assessment.Notes != "" {
			fmt.Fprintf(&b, "**Notes:** %s\n\n", assessment.Notes)
		}

		b.WriteString("---\n\n")
	}

	b.WriteString("## Assessment History\n\n")
	for _, key := range state.TopicKeys() {
		history := state.History[key]
		if len(history) == 0 {
			continue
		}

		title := key
		if assessment, ok := state.Assessments[key]; ok {
			title = assessment.Title
		}
		fmt.Fprintf(&b, "### %s\n\n", title)

		for i, entry := range history {
			fmt.Fprintf(&b, "#### Update #%d - %s\n\n", i+1, entry.Date)
			fmt.Fprintf(&b, "- **Probability:** %d%% (%s)\n", entry.Probability, entry.Descriptor)
			fmt.Fprintf(&b, "- **Confidence:** %s\n", entry.Confidence)

			if entry.Change != nil {
				fmt.Fprintf(&b, "- **Change:** %s %+d%%\n", changeSymbol(*entry.Change), *entry.Change)
			}
			if len(entry.Drivers) > 0 {
				fmt.Fprintf(&b, "- **Drivers:** %s\n", strings.Join(entry.Drivers, ", "))
			}
			if len(entry.Uncertainties) > 0 {
				fmt.Fprintf(&b, "- **Uncertainties:** %s\n", strings.Join(entry.Uncertainties, ", "))
			}
			if entry.Notes != "" {
				fmt.Fprintf(&b, "- **Notes:** %s\n", entry.Notes)
			}
			b.WriteString("\n")
		}

		b.WriteString("---\n\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write markdown: %w", err)
	}
	return nil
}

func changeSymbol(change int) string {
	switch {
	case change > 0:
		return "↗"
	case change < 0:
		return "↘"
	}
	return "→"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
