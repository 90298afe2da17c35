package primary

import (
	"context"

	"github.com/example/sentinel/internal/models"
)

// AssessmentService defines the primary port for recording and reading
// forecasts.
type AssessmentService interface {
	// RecordAssessment appends a history entry and replaces the current
	// assessment state for a topic.
	RecordAssessment(ctx context.Context, req RecordAssessmentRequest) (*RecordAssessmentResponse, error)

	// GetAssessment retrieves the current assessment for a topic.
	GetAssessment(ctx context.Context, key string) (*models.Assessment, error)

	// GetHistory retrieves the full history for a topic, oldest first.
	GetHistory(ctx context.Context, key string) ([]models.HistoryEntry, error)

	// GetState returns a snapshot of all three stores for read-only
	// consumers (exporters, charts, dashboard).
	GetState(ctx context.Context) (*models.State, error)
}

// RecordAssessmentRequest is the update command for one topic. Drivers and
// uncertainties beyond three are dropped; indicator names not declared on the
// topic are ignored.
type RecordAssessmentRequest struct {
	Key             string
	Probability     int
	Confidence      string // empty defaults to Medium
	Drivers         []string
	Uncertainties   []string
	IndicatorStatus map[string]string
	Notes           string
	Date            string // "YYYY-MM-DD"; empty means today
}

// RecordAssessmentResponse reports the outcome of an update.
type RecordAssessmentResponse struct {
	Key        string
	Assessment *models.Assessment
	Entry      models.HistoryEntry
}
