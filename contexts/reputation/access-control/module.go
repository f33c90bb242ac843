package accesscontrol

import (
	"log/slog"
	"sync"

	eventsadapter "chainreputation/contexts/reputation/access-control/adapters/events"
	httpadapter "chainreputation/contexts/reputation/access-control/adapters/http"
	"chainreputation/contexts/reputation/access-control/adapters/memory"
	"chainreputation/contexts/reputation/access-control/application"
	"chainreputation/contexts/reputation/access-control/ports"
	sharedevents "chainreputation/internal/shared/events"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
	Journal *sharedevents.Journal
}

type Dependencies struct {
	Owner      string
	Repository ports.Repository
	Events     ports.EventPublisher
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Owner:  deps.Owner,
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

func NewInMemoryModule(owner string, logger *slog.Logger) Module {
	store := memory.NewStore()
	journal := sharedevents.NewJournal()
	module := NewModule(Dependencies{
		Owner:      owner,
		Repository: store,
		Events:     eventsadapter.NewPublisher("chainreputation", journal, logger),
		Logger:     logger,
	})
	module.Store = store
	module.Journal = journal
	return module
}
