package app

import (
	"context"
	"time"

	"github.com/example/sentinel/internal/core/status"
	"github.com/example/sentinel/internal/ports/secondary"
)

// StatusServiceImpl implements the StatusService interface.
type StatusServiceImpl struct {
	repo secondary.StateRepository
	now  func() time.Time
}

// NewStatusService creates a new StatusService with injected dependencies.
func NewStatusService(repo secondary.StateRepository, now func() time.Time) *StatusServiceImpl {
	if now == nil {
		now = time.Now
	}
	return &StatusServiceImpl{repo: repo, now: now}
}

// GetStatus classifies every topic against today's date.
func (s *StatusServiceImpl) GetStatus(ctx context.Context) (status.Report, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return status.Report{}, err
	}
	return status.Compute(state.Assessments, s.now()), nil
}

// GetSummary builds the full report summary.
func (s *StatusServiceImpl) GetSummary(ctx context.Context) (status.Summary, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return status.Summary{}, err
	}
	return status.Summarize(state, s.now()), nil
}
