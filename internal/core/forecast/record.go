package forecast

import (
	"fmt"
	"strings"
	"time"

	"github.com/example/sentinel/internal/models"
)

// MaxListedItems caps drivers and uncertainties per update.
const MaxListedItems = 3

// UpdateInput is the command object for one assessment update. The interactive
// and web front ends both reduce their input to this shape.
type UpdateInput struct {
	Probability   int
	Confidence    string // empty defaults to Medium
	Drivers       []string
	Uncertainties []string
	// IndicatorStatus is a partial map of indicator name to new status.
	// Indicators not mentioned keep their previous status; names not declared
	// on the topic are ignored.
	IndicatorStatus map[string]string
	Notes           string
	AsOf            time.Time
}

// ValidateInput checks the update command against the engine's input rules.
func ValidateInput(in UpdateInput) error {
	if in.Probability < 1 || in.Probability > 100 {
		return fmt.Errorf("%w: probability must be between 1 and 100, got %d", models.ErrValidation, in.Probability)
	}
	if in.Confidence != "" && !models.ValidConfidence(in.Confidence) {
		return fmt.Errorf("%w: confidence must be Low, Medium or High, got %q", models.ErrValidation, in.Confidence)
	}
	return nil
}

// Plan computes the updated assessment and the new history entry for a valid
// input against the prior state. The prior assessment is not mutated; the
// returned assessment preserves title, question and horizon.
func Plan(prior *models.Assessment, in UpdateInput) (*models.Assessment, models.HistoryEntry) {
	confidence := in.Confidence
	if confidence == "" {
		confidence = models.ConfidenceMedium
	}

	var change *int
	if prior.CurrentProbability != nil {
		delta := in.Probability - *prior.CurrentProbability
		change = &delta
	}

	descriptor := Classify(in.Probability)
	drivers := normalizeList(in.Drivers)
	uncertainties := normalizeList(in.Uncertainties)
	date := in.AsOf.Format(models.DateFormat)
	nextReview := NextReview(prior.Horizon, in.AsOf).Format(models.DateFormat)

	entry := models.HistoryEntry{
		Date:          date,
		Probability:   in.Probability,
		Descriptor:    descriptor,
		Confidence:    confidence,
		Change:        change,
		Drivers:       drivers,
		Uncertainties: uncertainties,
		Notes:         in.Notes,
	}

	updated := prior.Clone()
	probability := in.Probability
	updated.CurrentProbability = &probability
	updated.CurrentDescriptor = &descriptor
	updated.Confidence = &confidence
	updated.KeyDrivers = append([]string(nil), drivers...)
	updated.KeyUncertainties = append([]string(nil), uncertainties...)
	updated.IndicatorStatus = mergeIndicatorStatus(prior.IndicatorStatus, in.IndicatorStatus)
	updated.LastUpdated = &date
	updated.NextReview = &nextReview
	updated.Notes = in.Notes

	return updated, entry
}

// normalizeList drops empty entries, trims whitespace and caps the list,
// preserving order.
func normalizeList(items []string) []string {
	out := []string{}
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
		if len(out) == MaxListedItems {
			break
		}
	}
	return out
}

// mergeIndicatorStatus applies partial updates over the prior map. Only
// indicators already declared on the assessment are kept.
func mergeIndicatorStatus(prior, updates map[string]string) map[string]string {
	merged := make(map[string]string, len(prior))
	for ind, status := range prior {
		if updated, ok := updates[ind]; ok && strings.TrimSpace(updated) != "" {
			merged[ind] = strings.TrimSpace(updated)
			continue
		}
		merged[ind] = status
	}
	return merged
}
