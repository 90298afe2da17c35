package primary

import (
	"context"

	"github.com/example/sentinel/internal/core/status"
)

// StatusService defines the primary port for derived status views.
type StatusService interface {
	// GetStatus classifies every topic as overdue, due soon or current
	// against today's date.
	GetStatus(ctx context.Context) (status.Report, error)

	// GetSummary groups topics into risk bands and flags significant
	// recent changes.
	GetSummary(ctx context.Context) (status.Summary, error)
}
