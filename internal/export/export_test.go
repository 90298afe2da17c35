package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/example/sentinel/internal/models"
)

func exportState() *models.State {
	state := models.NewState()

	assessed := &models.Topic{Title: "Assessed Topic", Question: "Q1?", Horizon: "3 months"}
	fresh := &models.Topic{Title: "Fresh Topic", Question: "Q2?", Horizon: "6 months"}
	state.Topics["assessed"] = assessed
	state.Topics["fresh"] = fresh

	p, change := 65, 15
	descriptor := "Roughly Even Chance"
	confidence := models.ConfidenceMedium
	updated := "2024-05-08"
	review := "2024-05-15"
	state.Assessments["assessed"] = &models.Assessment{
		Title:              assessed.Title,
		Question:           assessed.Question,
		Horizon:            assessed.Horizon,
		CurrentProbability: &p,
		CurrentDescriptor:  &descriptor,
		Confidence:         &confidence,
		KeyDrivers:         []string{"driver one", "driver two"},
		KeyUncertainties:   []string{"open question"},
		LastUpdated:        &updated,
		NextReview:         &review,
		Notes:              "watching closely",
	}
	state.Assessments["fresh"] = models.NewAssessment(fresh)

	state.History["assessed"] = []models.HistoryEntry{
		{Date: "2024-05-01", Probability: 50, Descriptor: descriptor, Confidence: confidence, Drivers: []string{"driver one"}, Uncertainties: []string{}},
		{Date: "2024-05-08", Probability: 65, Descriptor: descriptor, Confidence: confidence, Change: &change, Drivers: []string{"driver one", "driver two"}, Uncertainties: []string{"open question"}, Notes: "escalation"},
	}
	state.History["fresh"] = []models.HistoryEntry{}
	return state
}

func TestWriteCSV(t *testing.T) {
	var buf strings.Builder
	if err := WriteCSV(&buf, exportState()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}

	// Header plus one row per history entry; unassessed topics contribute none.
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if diff := cmp.Diff(csvHeader, records[0]); diff != "" {
		t.Errorf("header (-want +got):\n%s", diff)
	}

	first := records[1]
	if first[0] != "assessed" || first[2] != "2024-05-01" || first[3] != "50" {
		t.Errorf("first row = %v", first)
	}
	if first[6] != "" {
		t.Errorf("first entry change = %q, want empty", first[6])
	}

	second := records[2]
	if second[6] != "15" {
		t.Errorf("second entry change = %q, want 15", second[6])
	}
	if second[7] != "driver one; driver two" {
		t.Errorf("drivers column = %q", second[7])
	}
}

func TestWriteMarkdown(t *testing.T) {
	var buf strings.Builder
	generated := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	if err := WriteMarkdown(&buf, exportState(), generated); err != nil {
		t.Fatalf("WriteMarkdown() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Assessment Tracker Report",
		"Generated: 2024-05-10 09:00:00",
		"## Current Assessments",
		"### Assessed Topic",
		"**Current Probability:** 65% (Roughly Even Chance)",
		"### Fresh Topic",
		"**Status:** Not yet assessed",
		"## Assessment History",
		"#### Update #2 - 2024-05-08",
		"**Change:** ↗ +15%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q", want)
		}
	}

	// Topics without history never get a history section.
	historyPart := out[strings.Index(out, "## Assessment History"):]
	if strings.Contains(historyPart, "Fresh Topic") {
		t.Error("unassessed topic appears in the history section")
	}
}

func TestChangeSymbol(t *testing.T) {
	tests := []struct {
		change int
		want   string
	}{
		{10, "↗"},
		{-3, "↘"},
		{0, "→"},
	}
	for _, tt := range tests {
		if got := changeSymbol(tt.change); got != tt.want {
			t.Errorf("changeSymbol(%d) = %q, want %q", tt.change, got, tt.want)
		}
	}
}
