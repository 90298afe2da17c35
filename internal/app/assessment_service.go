package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/sentinel/internal/core/forecast"
	"github.com/example/sentinel/internal/models"
	"github.com/example/sentinel/internal/ports/primary"
	"github.com/example/sentinel/internal/ports/secondary"
)

// AssessmentServiceImpl implements the AssessmentService interface.
type AssessmentServiceImpl struct {
	repo secondary.StateRepository
	now  func() time.Time
}

// NewAssessmentService creates a new AssessmentService with injected
// dependencies. now supplies today's date and is injectable for tests.
func NewAssessmentService(repo secondary.StateRepository, now func() time.Time) *AssessmentServiceImpl {
	if now == nil {
		now = time.Now
	}
	return &AssessmentServiceImpl{repo: repo, now: now}
}

// RecordAssessment validates the update command, appends the history entry
// and replaces the current assessment, persisting both stores together.
// Validation failures abort before any state is touched.
func (s *AssessmentServiceImpl) RecordAssessment(ctx context.Context, req primary.RecordAssessmentRequest) (*primary.RecordAssessmentResponse, error) {
	asOf := s.now()
	if req.Date != "" {
		parsed, err := time.Parse(models.DateFormat, req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", models.ErrValidation, req.Date)
		}
		asOf = parsed
	}

	input := forecast.UpdateInput{
		Probability:     req.Probability,
		Confidence:      req.Confidence,
		Drivers:         req.Drivers,
		Uncertainties:   req.Uncertainties,
		IndicatorStatus: req.IndicatorStatus,
		Notes:           req.Notes,
		AsOf:            asOf,
	}
	if err := forecast.ValidateInput(input); err != nil {
		return nil, err
	}

	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	prior, ok := state.Assessments[req.Key]
	if !ok {
		return nil, unknownTopicError(state, req.Key)
	}

	updated, entry := forecast.Plan(prior, input)
	state.Assessments[req.Key] = updated
	state.History[req.Key] = append(state.History[req.Key], entry)

	if err := s.repo.SaveAssessments(ctx, state.Assessments, state.History); err != nil {
		return nil, err
	}

	return &primary.RecordAssessmentResponse{
		Key:        req.Key,
		Assessment: updated.Clone(),
		Entry:      entry,
	}, nil
}

// GetAssessment retrieves the current assessment for a topic.
func (s *AssessmentServiceImpl) GetAssessment(ctx context.Context, key string) (*models.Assessment, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	assessment, ok := state.Assessments[key]
	if !ok {
		return nil, unknownTopicError(state, key)
	}
	return assessment.Clone(), nil
}

// GetHistory retrieves the history for a topic, oldest entry first.
func (s *AssessmentServiceImpl) GetHistory(ctx context.Context, key string) ([]models.HistoryEntry, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	if _, ok := state.Topics[key]; !ok {
		return nil, unknownTopicError(state, key)
	}
	return append([]models.HistoryEntry(nil), state.History[key]...), nil
}

// GetState returns a snapshot of all three stores.
func (s *AssessmentServiceImpl) GetState(ctx context.Context) (*models.State, error) {
	return s.repo.Load(ctx)
}
