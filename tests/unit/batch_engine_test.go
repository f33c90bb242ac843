package unit

import (
	"context"
	"errors"
	"testing"

	accesscontrol "chainreputation/contexts/reputation/access-control"
	accessapp "chainreputation/contexts/reputation/access-control/application"
	balanceledger "chainreputation/contexts/reputation/balance-ledger"
	ledgerapp "chainreputation/contexts/reputation/balance-ledger/application"
	batchengine "chainreputation/contexts/reputation/batch-engine"
	batcherrors "chainreputation/contexts/reputation/batch-engine/domain/errors"
	batchports "chainreputation/contexts/reputation/batch-engine/ports"
	httptransport "chainreputation/contexts/reputation/batch-engine/transport/http"
	standardscatalog "chainreputation/contexts/reputation/standards-catalog"
	catalogapp "chainreputation/contexts/reputation/standards-catalog/application"
)

const (
	batchTestOwner = "governor"
	batchTestToken = "REP"
)

type batchFixture struct {
	engine    batchengine.Module
	ledger    balanceledger.Module
	standards standardscatalog.Module
	access    accesscontrol.Module
}

func newBatchFixture() batchFixture {
	ledger := balanceledger.NewInMemoryModule(nil)
	standards := standardscatalog.NewInMemoryModule(batchTestOwner, nil)
	access := accesscontrol.NewInMemoryModule(batchTestOwner, nil)
	ledger.Access.SetOwner(batchTestToken, batchTestOwner)

	engine := batchengine.NewModule(batchengine.Dependencies{
		Access:    accessPolicyAdapter{service: access.Service},
		Standards: standardsReaderAdapter{service: standards.Service},
		Ledger: ledgerAdapter{
			service: ledger.Service,
			issuer:  batchTestOwner,
			token:   batchTestToken,
		},
	})

	return batchFixture{
		engine:    engine,
		ledger:    ledger,
		standards: standards,
		access:    access,
	}
}

func TestUserBatchNetsPerPairAndTracksAdminTotals(t *testing.T) {
	f := newBatchFixture()
	ctx := context.Background()

	if err := f.access.Service.AddAdmin(ctx, batchTestOwner, "admin-1"); err != nil {
		t.Fatalf("add admin failed: %v", err)
	}
	if err := f.standards.Service.ManageStandard(ctx, batchTestOwner, "helpful-review", 10); err != nil {
		t.Fatalf("manage helpful-review failed: %v", err)
	}
	if err := f.standards.Service.ManageStandard(ctx, batchTestOwner, "spam-flag", -10); err != nil {
		t.Fatalf("manage spam-flag failed: %v", err)
	}

	if _, err := f.engine.Handler.ApplyUserBatchHandler(ctx, "admin-1", httptransport.ApplyUserBatchRequest{
		Entries: []httptransport.UserBatchEntryRequest{{
			To: "user-1",
			Counts: []httptransport.StandardCountRequest{
				{StandardName: "helpful-review", Count: 8},
				{StandardName: "spam-flag", Count: 2},
			},
		}},
	}); err != nil {
		t.Fatalf("user batch failed: %v", err)
	}

	balance, err := f.ledger.Service.TrueBalanceOf(ctx, "user-1", batchTestToken)
	if err != nil {
		t.Fatalf("true balance failed: %v", err)
	}
	if balance != 60 {
		t.Fatalf("expected netted balance 60, got %d", balance)
	}
	if got := f.ledger.Journal.Len(); got != 2 {
		t.Fatalf("expected one issue and one burn event, got %d events", got)
	}

	admin, err := f.access.Service.GetAdmin(ctx, "admin-1")
	if err != nil {
		t.Fatalf("get admin failed: %v", err)
	}
	if admin.TotalRepIssued != 80 || admin.TotalRepBurned != 20 {
		t.Fatalf("expected totals 80/20, got %d/%d", admin.TotalRepIssued, admin.TotalRepBurned)
	}
}

func TestBatchAbortsOnDestroyedStandardBeforeAnyMove(t *testing.T) {
	f := newBatchFixture()
	ctx := context.Background()

	if err := f.standards.Service.ManageStandard(ctx, batchTestOwner, "helpful-review", 10); err != nil {
		t.Fatalf("manage helpful-review failed: %v", err)
	}
	if err := f.standards.Service.ManageStandard(ctx, batchTestOwner, "spam-flag", 0); err != nil {
		t.Fatalf("destroy spam-flag failed: %v", err)
	}

	_, err := f.engine.Handler.ApplyBatchHandler(ctx, batchTestOwner, httptransport.ApplyBatchRequest{
		Entries: []httptransport.BatchEntryRequest{
			{To: "user-2", StandardName: "helpful-review"},
			{To: "user-2", StandardName: "spam-flag"},
		},
	})
	if !errors.Is(err, batcherrors.ErrDestroyedStandard) {
		t.Fatalf("expected destroyed-standard abort, got %v", err)
	}

	balance, err := f.ledger.Service.TrueBalanceOf(ctx, "user-2", batchTestToken)
	if err != nil {
		t.Fatalf("true balance failed: %v", err)
	}
	if balance != 0 {
		t.Fatalf("expected no balance moves after abort, got %d", balance)
	}
	if got := f.ledger.Journal.Len(); got != 0 {
		t.Fatalf("expected no ledger events after abort, got %d", got)
	}
}

type accessPolicyAdapter struct {
	service accessapp.Service
}

func (a accessPolicyAdapter) ResolveTier(ctx context.Context, caller string) (batchports.CallerTier, error) {
	tier, err := a.service.ResolveTier(ctx, caller)
	return batchports.CallerTier(tier), err
}

func (a accessPolicyAdapter) RecordIssued(ctx context.Context, admin string, amount uint64) error {
	return a.service.RecordIssued(ctx, admin, amount)
}

func (a accessPolicyAdapter) RecordBurned(ctx context.Context, admin string, amount uint64) error {
	return a.service.RecordBurned(ctx, admin, amount)
}

type standardsReaderAdapter struct {
	service catalogapp.Service
}

func (s standardsReaderAdapter) GetStandard(ctx context.Context, name string) (batchports.StandardView, error) {
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

type ledgerAdapter struct {
	service ledgerapp.Service
	issuer  string
	token   string
}

func (l ledgerAdapter) Issue(ctx context.Context, to string, amount uint64) error {
	_, err := l.service.Issue(ctx, l.issuer, l.token, to, int64(amount))
	return err
}

func (l ledgerAdapter) Burn(ctx context.Context, from string, amount uint64) (uint64, error) {
	return l.service.Burn(ctx, l.issuer, l.token, from, int64(amount))
}
