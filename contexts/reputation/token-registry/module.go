package tokenregistry

import (
	"log/slog"
	"sync"

	eventsadapter "chainreputation/contexts/reputation/token-registry/adapters/events"
	httpadapter "chainreputation/contexts/reputation/token-registry/adapters/http"
	"chainreputation/contexts/reputation/token-registry/adapters/memory"
	"chainreputation/contexts/reputation/token-registry/application"
	"chainreputation/contexts/reputation/token-registry/ports"
	sharedevents "chainreputation/internal/shared/events"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
	Journal *sharedevents.Journal
}

type Dependencies struct {
	Repository ports.Repository
	Events     ports.EventPublisher
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repository,
		Events: deps.Events,
		Logger: deps.Logger,
		Lock:   &sync.Mutex{},
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	journal := sharedevents.NewJournal()
	module := NewModule(Dependencies{
		Repository: store,
		Events:     eventsadapter.NewPublisher("chainreputation", journal, logger),
		Logger:     logger,
	})
	module.Store = store
	module.Journal = journal
	return module
}
