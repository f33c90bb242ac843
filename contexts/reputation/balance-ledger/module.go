package balanceledger

import (
	"log/slog"
	"sync"

	eventsadapter "chainreputation/contexts/reputation/balance-ledger/adapters/events"
	httpadapter "chainreputation/contexts/reputation/balance-ledger/adapters/http"
	"chainreputation/contexts/reputation/balance-ledger/adapters/memory"
	"chainreputation/contexts/reputation/balance-ledger/application"
	"chainreputation/contexts/reputation/balance-ledger/ports"
	sharedevents "chainreputation/internal/shared/events"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
	Access  *memory.AccessTable
	Journal *sharedevents.Journal
}

type Dependencies struct {
	Repository ports.Repository
	Access     ports.TokenAccess
	Events     ports.EventPublisher
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repository,
		Access: deps.Access,
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

// NewInMemoryModule wires the ledger against an in-memory store and access
// table. Callers that want registry-backed authorization pass their own
// TokenAccess through NewModule instead.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	access := memory.NewAccessTable()
	journal := sharedevents.NewJournal()
	module := NewModule(Dependencies{
		Repository: store,
		Access:     access,
		Events:     eventsadapter.NewPublisher("chainreputation", journal, logger),
		Logger:     logger,
	})
	module.Store = store
	module.Access = access
	module.Journal = journal
	return module
}
