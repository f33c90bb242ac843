package httpserver

import (
	"context"
	"log/slog"

	accesscontrol "chainreputation/contexts/reputation/access-control"
	accessapp "chainreputation/contexts/reputation/access-control/application"
	balanceledger "chainreputation/contexts/reputation/balance-ledger"
	ledgerapp "chainreputation/contexts/reputation/balance-ledger/application"
	batchengine "chainreputation/contexts/reputation/batch-engine"
	batchports "chainreputation/contexts/reputation/batch-engine/ports"
	standardscatalog "chainreputation/contexts/reputation/standards-catalog"
	catalogapp "chainreputation/contexts/reputation/standards-catalog/application"
	tokenregistry "chainreputation/contexts/reputation/token-registry"
)

const (
	testInstanceOwner = "instance-owner"
	testInstanceToken = "REP"
)

type testServer struct {
	server    *Server
	registry  tokenregistry.Module
	ledger    balanceledger.Module
	standards standardscatalog.Module
	access    accesscontrol.Module
}

func newTestServer() testServer {
	registry := tokenregistry.NewInMemoryModule(slog.Default())
	ledger := balanceledger.NewInMemoryModule(slog.Default())
	standards := standardscatalog.NewInMemoryModule(testInstanceOwner, slog.Default())
	access := accesscontrol.NewInMemoryModule(testInstanceOwner, slog.Default())

	ledger.Access.SetOwner(testInstanceToken, testInstanceOwner)

	batch := batchengine.NewModule(batchengine.Dependencies{
		Access:    testAccessPolicy{service: access.Service},
		Standards: testStandardsReader{service: standards.Service},
		Ledger: testLedgerBridge{
			service: ledger.Service,
			issuer:  testInstanceOwner,
			token:   testInstanceToken,
		},
		Logger: slog.Default(),
	})

	return testServer{
		server:    New(registry, ledger, standards, access, batch, slog.Default(), ":0"),
		registry:  registry,
		ledger:    ledger,
		standards: standards,
		access:    access,
	}
}

type testAccessPolicy struct {
	service accessapp.Service
}

func (a testAccessPolicy) ResolveTier(ctx context.Context, caller string) (batchports.CallerTier, error) {
	tier, err := a.service.ResolveTier(ctx, caller)
	return batchports.CallerTier(tier), err
}

func (a testAccessPolicy) RecordIssued(ctx context.Context, admin string, amount uint64) error {
	return a.service.RecordIssued(ctx, admin, amount)
}

func (a testAccessPolicy) RecordBurned(ctx context.Context, admin string, amount uint64) error {
	return a.service.RecordBurned(ctx, admin, amount)
}

type testStandardsReader struct {
	service catalogapp.Service
}

func (s testStandardsReader) GetStandard(ctx context.Context, name string) (batchports.StandardView, error) {
	standard, err := s.service.GetStandard(ctx, name)
	if err != nil {
		return batchports.StandardView{}, err
	}
	return batchports.StandardView{
		Name:      standard.Name,
		RepAmount: standard.RepAmount,
		Destroyed: standard.Destroyed,
	}, nil
}

type testLedgerBridge struct {
	service ledgerapp.Service
	issuer  string
	token   string
}

func (b testLedgerBridge) Issue(ctx context.Context, to string, amount uint64) error {
	_, err := b.service.Issue(ctx, b.issuer, b.token, to, int64(amount))
	return err
}

func (b testLedgerBridge) Burn(ctx context.Context, from string, amount uint64) (uint64, error) {
	return b.service.Burn(ctx, b.issuer, b.token, from, int64(amount))
}
