package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	accesscontrol "chainreputation/contexts/reputation/access-control"
	accessevents "chainreputation/contexts/reputation/access-control/adapters/events"
	accesspostgres "chainreputation/contexts/reputation/access-control/adapters/postgres"
	balanceledger "chainreputation/contexts/reputation/balance-ledger"
	ledgerevents "chainreputation/contexts/reputation/balance-ledger/adapters/events"
	ledgerpostgres "chainreputation/contexts/reputation/balance-ledger/adapters/postgres"
	ledgerworkers "chainreputation/contexts/reputation/balance-ledger/application/workers"
	batchengine "chainreputation/contexts/reputation/batch-engine"
	standardscatalog "chainreputation/contexts/reputation/standards-catalog"
	catalogevents "chainreputation/contexts/reputation/standards-catalog/adapters/events"
	catalogpostgres "chainreputation/contexts/reputation/standards-catalog/adapters/postgres"
	tokenregistry "chainreputation/contexts/reputation/token-registry"
	registryevents "chainreputation/contexts/reputation/token-registry/adapters/events"
	registrypostgres "chainreputation/contexts/reputation/token-registry/adapters/postgres"
	registryworkers "chainreputation/contexts/reputation/token-registry/application/workers"
	"chainreputation/internal/platform/config"
	"chainreputation/internal/platform/db"
	"chainreputation/internal/platform/httpserver"
	"chainreputation/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.
// Cross-module delegation (ledger authorization, batch-engine ports) is
// composed here over the sibling services; the modules never import each
// other.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres      *db.Postgres
	registryRelay registryworkers.OutboxRelay
	ledgerRelay   ledgerworkers.OutboxRelay
	relayRegistry bool
	relayLedger   bool
	pollInterval  time.Duration
	logger        *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}
	if strings.TrimSpace(cfg.InstanceOwner) == "" {
		return nil, errors.New("INSTANCE_OWNER is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN, logger)
	if err != nil {
		return nil, err
	}

	kafka, err := messaging.NewKafka(cfg.KafkaBrokers, logger)
	if err != nil {
		return nil, err
	}

	registryRepo := registrypostgres.NewRepository(pg.DB, logger)
	registryModule := tokenregistry.NewModule(tokenregistry.Dependencies{
		Repository: registryRepo,
		Events:     registryevents.NewPublisher(cfg.ServiceName, registryRepo, logger),
		Logger:     logger,
	})

	ledgerRepo := ledgerpostgres.NewRepository(pg.DB, logger)
	ledgerModule := balanceledger.NewModule(balanceledger.Dependencies{
		Repository: ledgerRepo,
		Access:     tokenAccessBridge{registry: registryModule},
		Events:     ledgerevents.NewPublisher(cfg.ServiceName, ledgerRepo, logger),
		Logger:     logger,
	})

	catalogRepo := catalogpostgres.NewRepository(pg.DB, logger)
	standardsModule := standardscatalog.NewModule(standardscatalog.Dependencies{
		Owner:      cfg.InstanceOwner,
		Repository: catalogRepo,
		Events: catalogevents.NewPublisher(cfg.ServiceName, kafkaSink{
			kafka: kafka,
			topic: "reputation.standards",
		}, logger),
		Logger: logger,
	})

	accessRepo := accesspostgres.NewRepository(pg.DB, logger)
	accessModule := accesscontrol.NewModule(accesscontrol.Dependencies{
		Owner:      cfg.InstanceOwner,
		Repository: accessRepo,
		Events: accessevents.NewPublisher(cfg.ServiceName, kafkaSink{
			kafka: kafka,
			topic: "reputation.access",
		}, logger),
		Logger: logger,
	})

	batchModule := batchengine.NewModule(batchengine.Dependencies{
		Access:    accessPolicyBridge{access: accessModule},
		Standards: standardsReaderBridge{standards: standardsModule},
		Ledger: ledgerBridge{
			ledger: ledgerModule,
			issuer: cfg.InstanceOwner,
			token:  cfg.InstanceToken,
		},
		Logger: logger,
	})

	server := httpserver.New(
		registryModule,
		ledgerModule,
		standardsModule,
		accessModule,
		batchModule,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN, logger)
	if err != nil {
		return nil, err
	}

	kafka, err := messaging.NewKafka(cfg.KafkaBrokers, logger)
	if err != nil {
		return nil, err
	}

	registryRepo := registrypostgres.NewRepository(pg.DB, logger)
	ledgerRepo := ledgerpostgres.NewRepository(pg.DB, logger)

	return &WorkerApp{
		postgres: pg,
		registryRelay: registryworkers.OutboxRelay{
			Outbox: registryRepo,
			Publisher: registryBusPublisher{
				kafka: kafka,
				topic: "reputation.registry",
			},
			Clock:     registrypostgres.SystemClock{},
			BatchSize: 100,
			Logger:    logger,
		},
		ledgerRelay: ledgerworkers.OutboxRelay{
			Outbox: ledgerRepo,
			Publisher: ledgerBusPublisher{
				kafka: kafka,
				topic: "reputation.ledger",
			},
			Clock:     ledgerpostgres.SystemClock{},
			BatchSize: 100,
			Logger:    logger,
		},
		relayRegistry: cfg.EnableRegistryOutboxRelay,
		relayLedger:   cfg.EnableLedgerOutboxRelay,
		pollInterval:  2 * time.Second,
		logger:        logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
		"relay_registry", w.relayRegistry,
		"relay_ledger", w.relayLedger,
	)

	for {
		if w.relayRegistry {
			if err := w.registryRelay.RunOnce(ctx); err != nil {
				return err
			}
		}
		if w.relayLedger {
			if err := w.ledgerRelay.RunOnce(ctx); err != nil {
				return err
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
