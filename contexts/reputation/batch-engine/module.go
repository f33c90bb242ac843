package batchengine

import (
	"log/slog"
	"sync"

	httpadapter "chainreputation/contexts/reputation/batch-engine/adapters/http"
	"chainreputation/contexts/reputation/batch-engine/application/commands"
	"chainreputation/contexts/reputation/batch-engine/ports"
)

type Module struct {
	Handler        httpadapter.Handler
	ApplyStandard  commands.ApplyStandardUseCase
	ApplyBatch     commands.ApplyBatchUseCase
	ApplyUserBatch commands.ApplyUserBatchUseCase
}

type Dependencies struct {
	Access    ports.AccessPolicy
	Standards ports.StandardsReader
	Ledger    ports.ReputationLedger
	Logger    *slog.Logger
}

// NewModule wires the three use cases over the injected ports. They share one
// mutation lock so concurrent batches never interleave balance moves.
func NewModule(deps Dependencies) Module {
	lock := &sync.Mutex{}
	applyStandard := commands.ApplyStandardUseCase{
		Access:    deps.Access,
		Standards: deps.Standards,
		Ledger:    deps.Ledger,
		Lock:      lock,
		Logger:    deps.Logger,
	}
	applyBatch := commands.ApplyBatchUseCase{
		Access:    deps.Access,
		Standards: deps.Standards,
		Ledger:    deps.Ledger,
		Lock:      lock,
		Logger:    deps.Logger,
	}
	applyUserBatch := commands.ApplyUserBatchUseCase{
		Access:    deps.Access,
		Standards: deps.Standards,
		Ledger:    deps.Ledger,
		Lock:      lock,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			ApplyStandard:  applyStandard,
			ApplyBatch:     applyBatch,
			ApplyUserBatch: applyUserBatch,
			Logger:         deps.Logger,
		},
		ApplyStandard:  applyStandard,
		ApplyBatch:     applyBatch,
		ApplyUserBatch: applyUserBatch,
	}
}
