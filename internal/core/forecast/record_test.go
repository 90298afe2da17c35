package forecast

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/example/sentinel/internal/models"
)

func newTopicAssessment() *models.Assessment {
	return models.NewAssessment(&models.Topic{
		Title:         "Test Topic",
		Question:      "Will it happen?",
		Horizon:       "3 months",
		KeyIndicators: []string{"Indicator A", "Indicator B"},
	})
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name    string
		input   UpdateInput
		wantErr bool
	}{
		{"valid minimal input", UpdateInput{Probability: 20}, false},
		{"probability at lower bound", UpdateInput{Probability: 1}, false},
		{"probability at upper bound", UpdateInput{Probability: 100}, false},
		{"probability zero rejected", UpdateInput{Probability: 0}, true},
		{"probability above range rejected", UpdateInput{Probability: 101}, true},
		{"negative probability rejected", UpdateInput{Probability: -5}, true},
		{"valid confidence accepted", UpdateInput{Probability: 20, Confidence: models.ConfidenceHigh}, false},
		{"unknown confidence rejected", UpdateInput{Probability: 20, Confidence: "Certain"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInput(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateInput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, models.ErrValidation) {
				t.Errorf("error %v is not a validation error", err)
			}
		})
	}
}

func TestPlanFirstUpdate(t *testing.T) {
	prior := newTopicAssessment()
	asOf := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	updated, entry := Plan(prior, UpdateInput{Probability: 20, AsOf: asOf})

	if entry.Change != nil {
		t.Errorf("first entry change = %v, want nil", *entry.Change)
	}
	if entry.Descriptor != DescriptorUnlikely {
		t.Errorf("descriptor = %q, want %q", entry.Descriptor, DescriptorUnlikely)
	}
	if entry.Confidence != models.ConfidenceMedium {
		t.Errorf("confidence = %q, want default Medium", entry.Confidence)
	}
	if entry.Date != "2024-01-01" {
		t.Errorf("date = %q, want 2024-01-01", entry.Date)
	}

	if updated.NextReview == nil || *updated.NextReview != "2024-01-08" {
		t.Errorf("next review = %v, want 2024-01-08", updated.NextReview)
	}
	if updated.CurrentProbability == nil || *updated.CurrentProbability != 20 {
		t.Errorf("current probability = %v, want 20", updated.CurrentProbability)
	}

	// Prior state must not be mutated.
	if prior.CurrentProbability != nil {
		t.Error("prior assessment was mutated")
	}
}

func TestPlanSecondUpdate(t *testing.T) {
	prior := newTopicAssessment()
	first, _ := Plan(prior, UpdateInput{Probability: 20, AsOf: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})

	updated, entry := Plan(first, UpdateInput{Probability: 35, AsOf: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)})

	if entry.Change == nil || *entry.Change != 15 {
		t.Errorf("change = %v, want +15", entry.Change)
	}
	if entry.Descriptor != DescriptorEvenChance {
		t.Errorf("descriptor = %q, want %q", entry.Descriptor, DescriptorEvenChance)
	}
	if updated.NextReview == nil || *updated.NextReview != "2024-01-15" {
		t.Errorf("next review = %v, want 2024-01-15", updated.NextReview)
	}
}

func TestPlanMirrorsEntry(t *testing.T) {
	prior := newTopicAssessment()
	input := UpdateInput{
		Probability:   72,
		Confidence:    models.ConfidenceHigh,
		Drivers:       []string{"driver one", "driver two"},
		Uncertainties: []string{"unknown one"},
		Notes:         "escalation observed",
		AsOf:          time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
	}

	updated, entry := Plan(prior, input)

	// Current state must equal the just-appended history tail.
	if *updated.CurrentProbability != entry.Probability {
		t.Errorf("probability mismatch: %d vs %d", *updated.CurrentProbability, entry.Probability)
	}
	if *updated.CurrentDescriptor != entry.Descriptor {
		t.Errorf("descriptor mismatch: %q vs %q", *updated.CurrentDescriptor, entry.Descriptor)
	}
	if *updated.Confidence != entry.Confidence {
		t.Errorf("confidence mismatch: %q vs %q", *updated.Confidence, entry.Confidence)
	}
	if diff := cmp.Diff(entry.Drivers, updated.KeyDrivers); diff != "" {
		t.Errorf("drivers mismatch (-entry +assessment):\n%s", diff)
	}
	if diff := cmp.Diff(entry.Uncertainties, updated.KeyUncertainties); diff != "" {
		t.Errorf("uncertainties mismatch (-entry +assessment):\n%s", diff)
	}
	if *updated.LastUpdated != entry.Date {
		t.Errorf("date mismatch: %q vs %q", *updated.LastUpdated, entry.Date)
	}
	if updated.Notes != entry.Notes {
		t.Errorf("notes mismatch: %q vs %q", updated.Notes, entry.Notes)
	}
}

func TestPlanListNormalization(t *testing.T) {
	prior := newTopicAssessment()
	input := UpdateInput{
		Probability: 50,
		Drivers:     []string{" first ", "", "second", "third", "fourth"},
		AsOf:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	_, entry := Plan(prior, input)

	want := []string{"first", "second", "third"}
	if diff := cmp.Diff(want, entry.Drivers); diff != "" {
		t.Errorf("drivers not normalized (-want +got):\n%s", diff)
	}
}

func TestPlanIndicatorMerge(t *testing.T) {
	prior := newTopicAssessment()
	input := UpdateInput{
		Probability: 40,
		IndicatorStatus: map[string]string{
			"Indicator A":  "Watch",
			"Not Declared": "Critical",
		},
		AsOf: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	updated, _ := Plan(prior, input)

	want := map[string]string{
		"Indicator A": "Watch",
		"Indicator B": models.IndicatorStatusUnknown,
	}
	if diff := cmp.Diff(want, updated.IndicatorStatus); diff != "" {
		t.Errorf("indicator status (-want +got):\n%s", diff)
	}
}
