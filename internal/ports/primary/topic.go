// Package primary defines the primary ports (driving interfaces) for the
// application. Front ends (CLI, web) call services through these.
package primary

import (
	"context"

	"github.com/example/sentinel/internal/models"
)

// TopicService defines the primary port for topic registry operations.
type TopicService interface {
	// AddTopic creates a topic with a matching empty assessment and history.
	AddTopic(ctx context.Context, req AddTopicRequest) (*models.Topic, error)

	// EditTopic updates a topic; omitted fields keep their previous values.
	EditTopic(ctx context.Context, req EditTopicRequest) (*models.Topic, error)

	// RemoveTopic deletes a topic with its assessment and history. The
	// request must carry the exact confirmation token.
	RemoveTopic(ctx context.Context, req RemoveTopicRequest) error

	// GetTopic retrieves a single topic.
	GetTopic(ctx context.Context, key string) (*models.Topic, error)

	// ListTopics lists all topics with registry-level detail.
	ListTopics(ctx context.Context) ([]*TopicSummary, error)
}

// AddTopicRequest contains parameters for creating a topic.
type AddTopicRequest struct {
	Key        string
	Title      string
	Question   string
	Horizon    string // empty defaults to "3 months"
	Indicators []string
}

// EditTopicRequest contains parameters for editing a topic. Nil pointer
// fields are left unchanged; ReplaceIndicators gates the indicator swap so an
// empty list can be set deliberately.
type EditTopicRequest struct {
	Key               string
	Title             *string
	Question          *string
	Horizon           *string
	ReplaceIndicators bool
	Indicators        []string
}

// RemoveTopicRequest contains parameters for removing a topic.
type RemoveTopicRequest struct {
	Key     string
	Confirm string // must equal the "DELETE" literal
}

// TopicSummary is one row of the topic listing.
type TopicSummary struct {
	Key            string
	Title          string
	Horizon        string
	IndicatorCount int
	HistoryCount   int
	Assessed       bool
}
