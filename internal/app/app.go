package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/adapters/outbound/gemini"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/adapters/outbound/memory"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/assistant"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/usecases"
)

// NewTaskAgentApp creates and returns a new instance of the TaskAgent application.
func NewTaskAgentApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitTaskRepository{},
			&memory.InitSessionRepository{},
			&memory.InitSnapshotRepository{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&modelrunner.InitAssistant{},
			&gemini.InitAssistant{},

			&usecases.InitUserLocks{},
			&usecases.InitTaskStore{},
			&assistant.InitToolDispatcher{},

			&usecases.InitChatModel{},
			&usecases.InitTaskCache{},
			&usecases.InitSessionStore{},
			&usecases.InitProcessPrompt{},
			&usecases.InitCategorizeIntent{},
			&usecases.InitResetSession{},
			&usecases.InitAdvancePomodoro{},
			&usecases.InitSyncTaskEvents{},
			&usecases.InitRelayOutbox{},
		).
		Host(
			&http.TaskAgentServer{},
			&workers.MessageRelay{},
			&workers.TaskEventSubscriber{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
