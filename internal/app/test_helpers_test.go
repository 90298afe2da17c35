package app

import (
	"context"
	"time"

	"github.com/example/sentinel/internal/models"
	"github.com/example/sentinel/internal/ports/secondary"
)

// Ensure mockStateRepository implements the interface
var _ secondary.StateRepository = (*mockStateRepository)(nil)

// mockStateRepository keeps the state in memory and records which save
// operations ran, with injectable failures per operation.
type mockStateRepository struct {
	state *models.State

	loadErr error
	saveErr error

	savedTopics      int
	savedAssessments int
	savedAll         int
}

func newMockRepository() *mockStateRepository {
	return &mockStateRepository{state: models.NewState()}
}

func (m *mockStateRepository) Load(ctx context.Context) (*models.State, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.state, nil
}

func (m *mockStateRepository) SaveTopics(ctx context.Context, topics map[string]*models.Topic) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.savedTopics++
	m.state.Topics = topics
	return nil
}

func (m *mockStateRepository) SaveAssessments(ctx context.Context, assessments map[string]*models.Assessment, history map[string][]models.HistoryEntry) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.savedAssessments++
	m.state.Assessments = assessments
	m.state.History = history
	return nil
}

func (m *mockStateRepository) SaveAll(ctx context.Context, state *models.State) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.savedAll++
	m.state = state
	return nil
}

// seedTopic installs a topic with its empty assessment and history list.
func (m *mockStateRepository) seedTopic(key string, topic *models.Topic) {
	m.state.Topics[key] = topic
	m.state.Assessments[key] = models.NewAssessment(topic)
	m.state.History[key] = []models.HistoryEntry{}
}

func fixedNow(date string) func() time.Time {
	t, err := time.Parse(models.DateFormat, date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}
