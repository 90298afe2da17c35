// Package export serializes the stores to CSV and Markdown, read-only.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/sentinel/internal/models"
)

var csvHeader = []string{
	"Topic", "Title", "Date", "Probability", "Descriptor",
	"Confidence", "Change", "Drivers", "Uncertainties", "Notes",
}

// WriteCSV writes one row per history entry across all topics, in key order.
func WriteCSV(w io.Writer, state *models.State) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, key := range state.TopicKeys() {
		title := key
		if assessment, ok := state.Assessments[key]; ok {
			title = assessment.Title
		}
		for _, entry := range state.History[key] {
			change := ""
			if entry.Change != nil {
				change = strconv.Itoa(*entry.Change)
			}
			row := []string{
				key,
				title,
				entry.Date,
				strconv.Itoa(entry.Probability),
				entry.Descriptor,
				entry.Confidence,
				change,
				strings.Join(entry.Drivers, "; "),
				strings.Join(entry.Uncertainties, "; "),
				entry.Notes,
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write csv row: %w", err)
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
