package status

import (
	"time"

	"github.com/example/sentinel/internal/models"
)

// Risk bands for the summary report.
const (
	RiskCritical    = "Critical (70%+)"
	RiskElevated    = "Elevated (30-70%)"
	RiskLow         = "Low (<30%)"
	RiskNotAssessed = "Not Assessed"
)

// SignificantChangeThreshold is the minimum absolute probability delta that
// counts as a significant recent change.
const SignificantChangeThreshold = 5

// RiskItem is one topic within a risk band.
type RiskItem struct {
	Key         string
	Title       string
	Probability *int
	Confidence  string
}

// SignificantChange is a recent history entry with a large delta.
type SignificantChange struct {
	Key    string
	Title  string
	Change int
	Date   string
	Notes  string
}

// Summary groups topics by current risk level and flags significant recent
// probability moves.
type Summary struct {
	Generated          string
	Status             Report
	Critical           []RiskItem
	Elevated           []RiskItem
	Low                []RiskItem
	NotAssessed        []RiskItem
	SignificantChanges []SignificantChange
}

// Summarize builds the full report summary. Significant changes are read from
// each topic's latest history entry once it has at least two entries (the
// first entry never has a delta).
func Summarize(state *models.State, today time.Time) Summary {
	summary := Summary{
		Generated:          today.Format(models.DateFormat),
		Status:             Compute(state.Assessments, today),
		Critical:           []RiskItem{},
		Elevated:           []RiskItem{},
		Low:                []RiskItem{},
		NotAssessed:        []RiskItem{},
		SignificantChanges: []SignificantChange{},
	}

	for _, key := range state.TopicKeys() {
		assessment, ok := state.Assessments[key]
		if !ok {
			continue
		}

		item := RiskItem{Key: key, Title: assessment.Title}
		if assessment.Confidence != nil {
			item.Confidence = *assessment.Confidence
		}

		switch {
		case assessment.CurrentProbability == nil:
			summary.NotAssessed = append(summary.NotAssessed, item)
		case *assessment.CurrentProbability >= 70:
			item.Probability = assessment.CurrentProbability
			summary.Critical = append(summary.Critical, item)
		case *assessment.CurrentProbability >= 30:
			item.Probability = assessment.CurrentProbability
			summary.Elevated = append(summary.Elevated, item)
		default:
			item.Probability = assessment.CurrentProbability
			summary.Low = append(summary.Low, item)
		}

		history := state.History[key]
		if len(history) < 2 {
			continue
		}
		latest := history[len(history)-1]
		if latest.Change == nil {
			continue
		}
		if abs(*latest.Change) < SignificantChangeThreshold {
			continue
		}
		summary.SignificantChanges = append(summary.SignificantChanges, SignificantChange{
			Key:    key,
			Title:  assessment.Title,
			Change: *latest.Change,
			Date:   latest.Date,
			Notes:  latest.Notes,
		})
	}

	return summary
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
