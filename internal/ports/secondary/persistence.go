// Package secondary defines the secondary ports (driven adapters) for the
// application: persistence and outbound notification channels.
package secondary

import (
	"context"

	"github.com/example/sentinel/internal/models"
)

// StateRepository defines the secondary port for whole-document persistence.
// Assessments and history must be written in the same save so the current
// state always mirrors the history tail.
type StateRepository interface {
	// Load reads all three stores. A missing store is not an error: the
	// adapter falls back to its first-run default.
	Load(ctx context.Context) (*models.State, error)

	// SaveTopics persists the topic registry.
	SaveTopics(ctx context.Context, topics map[string]*models.Topic) error

	// SaveAssessments persists current state and history together.
	SaveAssessments(ctx context.Context, assessments map[string]*models.Assessment, history map[string][]models.HistoryEntry) error

	// SaveAll persists all three stores.
	SaveAll(ctx context.Context, state *models.State) error
}
