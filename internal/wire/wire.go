// Package wire provides dependency injection for the sentinel application.
// It creates singleton services with lazy initialization.
package wire

import (
	"sync"

	"github.com/example/sentinel/internal/adapters/jsonstore"
	"github.com/example/sentinel/internal/app"
	"github.com/example/sentinel/internal/config"
	"github.com/example/sentinel/internal/notify"
	"github.com/example/sentinel/internal/ports/primary"
	"github.com/example/sentinel/internal/ports/secondary"
	"github.com/example/sentinel/internal/visualize"
	"github.com/example/sentinel/internal/web"
)

var (
	cfg               config.Config
	topicService      primary.TopicService
	assessmentService primary.AssessmentService
	statusService     primary.StatusService
	once              sync.Once
)

// Config returns the loaded application configuration.
func Config() config.Config {
	once.Do(initServices)
	return cfg
}

// TopicService returns the singleton TopicService instance.
func TopicService() primary.TopicService {
	once.Do(initServices)
	return topicService
}

// AssessmentService returns the singleton AssessmentService instance.
func AssessmentService() primary.AssessmentService {
	once.Do(initServices)
	return assessmentService
}

// StatusService returns the singleton StatusService instance.
func StatusService() primary.StatusService {
	once.Do(initServices)
	return statusService
}

// EmailDispatcher returns a dispatcher built from the loaded configuration.
// Dispatchers are stateless; each call builds a fresh one.
func EmailDispatcher() *notify.EmailDispatcher {
	once.Do(initServices)
	return notify.NewEmailDispatcher(cfg.Email)
}

// DesktopNotifier returns the desktop notification adapter.
func DesktopNotifier() secondary.DesktopNotifier {
	return notify.NewDesktopNotifier()
}

// Renderer returns a chart renderer for the configured output directory,
// or for dir when non-empty.
func Renderer(dir string) *visualize.Renderer {
	once.Do(initServices)
	if dir == "" {
		dir = cfg.OutputDir
	}
	return visualize.NewRenderer(dir)
}

// Server returns the dashboard server over the singleton services.
func Server() *web.Server {
	once.Do(initServices)
	return web.NewServer(topicService, assessmentService, statusService)
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cfg = config.Load()

	repo := jsonstore.New(cfg.DataDir)

	topicService = app.NewTopicService(repo)
	assessmentService = app.NewAssessmentService(repo, nil)
	statusService = app.NewStatusService(repo, nil)
}
