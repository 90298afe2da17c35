package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	topiccore "github.com/example/sentinel/internal/core/topic"
	"github.com/example/sentinel/internal/models"
	"github.com/example/sentinel/internal/ports/primary"
	"github.com/example/sentinel/internal/ports/secondary"
)

// TopicServiceImpl implements the TopicService interface.
type TopicServiceImpl struct {
	repo secondary.StateRepository
}

// NewTopicService creates a new TopicService with injected dependencies.
func NewTopicService(repo secondary.StateRepository) *TopicServiceImpl {
	return &TopicServiceImpl{repo: repo}
}

// AddTopic creates a topic along with its empty assessment and history list,
// saved as one logical transaction.
func (s *TopicServiceImpl) AddTopic(ctx context.Context, req primary.AddTopicRequest) (*models.Topic, error) {
	if err := topiccore.ValidateKey(req.Key); err != nil {
		return nil, err
	}
	if err := topiccore.ValidateDefinition(req.Title, req.Question); err != nil {
		return nil, err
	}

	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	if _, exists := state.Topics[req.Key]; exists {
		return nil, fmt.Errorf("%w: topic %q", models.ErrConflict, req.Key)
	}

	horizon := req.Horizon
	if horizon == "" {
		horizon = topiccore.DefaultHorizon
	}

	topic := &models.Topic{
		Title:         req.Title,
		Question:      req.Question,
		Horizon:       horizon,
		KeyIndicators: normalizeIndicators(req.Indicators),
	}

	state.Topics[req.Key] = topic
	state.Assessments[req.Key] = models.NewAssessment(topic)
	state.History[req.Key] = []models.HistoryEntry{}

	if err := s.repo.SaveAll(ctx, state); err != nil {
		return nil, err
	}

	return topic.Clone(), nil
}

// EditTopic updates a topic. Omitted fields keep their previous values;
// replaced indicators keep the status of indicators that survive the swap.
// Title, question and horizon changes propagate into the assessment record.
func (s *TopicServiceImpl) EditTopic(ctx context.Context, req primary.EditTopicRequest) (*models.Topic, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	topic, ok := state.Topics[req.Key]
	if !ok {
		return nil, unknownTopicError(state, req.Key)
	}

	if req.Title != nil {
		topic.Title = *req.Title
	}
	if req.Question != nil {
		topic.Question = *req.Question
	}
	if req.Horizon != nil {
		topic.Horizon = *req.Horizon
	}
	if req.ReplaceIndicators {
		topic.KeyIndicators = normalizeIndicators(req.Indicators)
	}
	if err := topiccore.ValidateDefinition(topic.Title, topic.Question); err != nil {
		return nil, err
	}

	if assessment, ok := state.Assessments[req.Key]; ok {
		assessment.Title = topic.Title
		assessment.Question = topic.Question
		assessment.Horizon = topic.Horizon
		if req.ReplaceIndicators {
			assessment.IndicatorStatus = topiccore.RebuildIndicatorStatus(assessment.IndicatorStatus, topic.KeyIndicators)
		}
	}

	if err := s.repo.SaveAll(ctx, state); err != nil {
		return nil, err
	}

	return topic.Clone(), nil
}

// RemoveTopic deletes the topic, its assessment and its history in a single
// save. Without the exact confirmation token nothing is touched.
func (s *TopicServiceImpl) RemoveTopic(ctx context.Context, req primary.RemoveTopicRequest) error {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	if _, ok := state.Topics[req.Key]; !ok {
		return unknownTopicError(state, req.Key)
	}

	if err := topiccore.ConfirmRemoval(req.Confirm); err != nil {
		return err
	}

	delete(state.Topics, req.Key)
	delete(state.Assessments, req.Key)
	delete(state.History, req.Key)

	return s.repo.SaveAll(ctx, state)
}

// GetTopic retrieves a single topic.
func (s *TopicServiceImpl) GetTopic(ctx context.Context, key string) (*models.Topic, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	topic, ok := state.Topics[key]
	if !ok {
		return nil, unknownTopicError(state, key)
	}
	return topic.Clone(), nil
}

// ListTopics lists all topics in key order.
func (s *TopicServiceImpl) ListTopics(ctx context.Context) ([]*primary.TopicSummary, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*primary.TopicSummary, 0, len(state.Topics))
	for _, key := range state.TopicKeys() {
		topic := state.Topics[key]
		summary := &primary.TopicSummary{
			Key:            key,
			Title:          topic.Title,
			Horizon:        topic.Horizon,
			IndicatorCount: len(topic.KeyIndicators),
			HistoryCount:   len(state.History[key]),
		}
		if assessment, ok := state.Assessments[key]; ok {
			summary.Assessed = assessment.Assessed()
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// unknownTopicError builds a not-found error listing the valid keys to aid
// correction.
func unknownTopicError(state *models.State, key string) error {
	keys := state.TopicKeys()
	sort.Strings(keys)
	return fmt.Errorf("%w: topic %q (valid keys: %s)", models.ErrNotFound, key, strings.Join(keys, ", "))
}

func normalizeIndicators(indicators []string) []string {
	out := []string{}
	for _, ind := range indicators {
		ind = strings.TrimSpace(ind)
		if ind == "" {
			continue
		}
		out = append(out, ind)
	}
	return out
}
