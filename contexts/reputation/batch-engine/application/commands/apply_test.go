package commands

import (
	"context"
	"errors"
	"sync"
	"testing"

	domainerrors "chainreputation/contexts/reputation/batch-engine/domain/errors"
	"chainreputation/contexts/reputation/batch-engine/ports"
)

type fakeAccess struct {
	tiers  map[string]ports.CallerTier
	issued map[string]uint64
	burned map[string]uint64
}

func newFakeAccess() *fakeAccess {
	return &fakeAccess{
		tiers:  make(map[string]ports.CallerTier),
		issued: make(map[string]uint64),
		burned: make(map[string]uint64),
	}
}

func (f *fakeAccess) ResolveTier(_ context.Context, caller string) (ports.CallerTier, error) {
	return f.tiers[caller], nil
}

func (f *fakeAccess) RecordIssued(_ context.Context, admin string, amount uint64) error {
	f.issued[admin] += amount
	return nil
}

func (f *fakeAccess) RecordBurned(_ context.Context, admin string, amount uint64) error {
	f.burned[admin] += amount
	return nil
}

type fakeStandards struct {
	standards map[string]ports.StandardView
}

func (f *fakeStandards) GetStandard(_ context.Context, name string) (ports.StandardView, error) {
	view, found := f.standards[name]
	if !found {
		return ports.StandardView{Name: name, Destroyed: true}, nil
	}
	return view, nil
}

type fakeLedger struct {
	balances map[string]uint64
	moves    int
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{balances: make(map[string]uint64)}
}

func (f *fakeLedger) Issue(_ context.Context, to string, amount uint64) error {
	f.balances[to] += amount
	f.moves++
	return nil
}

func (f *fakeLedger) Burn(_ context.Context, from string, amount uint64) (uint64, error) {
	held := f.balances[from]
	applied := amount
	if applied > held {
		applied = held
	}
	f.balances[from] = held - applied
	f.moves++
	return applied, nil
}

type engineFixture struct {
	access    *fakeAccess
	standards *fakeStandards
	ledger    *fakeLedger
	lock      *sync.Mutex
}

func newEngineFixture() engineFixture {
	access := newFakeAccess()
	access.tiers["the-owner"] = ports.TierOwner
	access.tiers["the-admin"] = ports.TierAdmin
	access.tiers["the-contract"] = ports.TierContract
	return engineFixture{
		access: access,
		standards: &fakeStandards{standards: map[string]ports.StandardView{
			"Pos": {Name: "Pos", RepAmount: 10},
			"Neg": {Name: "Neg", RepAmount: -10},
		}},
		ledger: newFakeLedger(),
		lock:   &sync.Mutex{},
	}
}

func (f engineFixture) single() ApplyStandardUseCase {
	return ApplyStandardUseCase{Access: f.access, Standards: f.standards, Ledger: f.ledger, Lock: f.lock}
}

func (f engineFixture) batch() ApplyBatchUseCase {
	return ApplyBatchUseCase{Access: f.access, Standards: f.standards, Ledger: f.ledger, Lock: f.lock}
}

func (f engineFixture) userBatch() ApplyUserBatchUseCase {
	return ApplyUserBatchUseCase{Access: f.access, Standards: f.standards, Ledger: f.ledger, Lock: f.lock}
}

func TestApplyStandardRequiresPrivilegedTier(t *testing.T) {
	fixture := newEngineFixture()

	for _, caller := range []string{"", "stranger"} {
		err := fixture.single().Execute(context.Background(), ApplyStandardCommand{
			Caller:       caller,
			To:           "acct-x",
			StandardName: "Pos",
		})
		if !errors.Is(err, domainerrors.ErrUnauthorized) {
			t.Fatalf("caller %q: expected unauthorized, got %v", caller, err)
		}
	}
	if fixture.ledger.moves != 0 {
		t.Fatalf("rejected calls must not move balances")
	}
}

func TestApplyStandardRecordsAdminCounters(t *testing.T) {
	fixture := newEngineFixture()

	err := fixture.single().Execute(context.Background(), ApplyStandardCommand{
		Caller:       "the-admin",
		To:           "acct-x",
		StandardName: "Pos",
	})
	if err != nil {
		t.Fatalf("apply Pos failed: %v", err)
	}
	if fixture.ledger.balances["acct-x"] != 10 {
		t.Fatalf("expected balance 10, got %d", fixture.ledger.balances["acct-x"])
	}
	if fixture.access.issued["the-admin"] != 10 {
		t.Fatalf("expected issued counter 10, got %d", fixture.access.issued["the-admin"])
	}

	err = fixture.single().Execute(context.Background(), ApplyStandardCommand{
		Caller:       "the-admin",
		To:           "acct-x",
		StandardName: "Neg",
	})
	if err != nil {
		t.Fatalf("apply Neg failed: %v", err)
	}
	if fixture.ledger.balances["acct-x"] != 0 {
		t.Fatalf("expected balance 0, got %d", fixture.ledger.balances["acct-x"])
	}
	if fixture.access.burned["the-admin"] != 10 {
		t.Fatalf("expected burned counter 10, got %d", fixture.access.burned["the-admin"])
	}
}

func TestApplyStandardOwnerSkipsCounters(t *testing.T) {
	fixture := newEngineFixture()

	err := fixture.single().Execute(context.Background(), ApplyStandardCommand{
		Caller:       "the-owner",
		To:           "acct-x",
		StandardName: "Pos",
	})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if len(fixture.access.issued) != 0 {
		t.Fatalf("owner-tier calls must not accrue admin counters")
	}
}

func TestApplyStandardBurnCountersUseAppliedAmount(t *testing.T) {
	fixture := newEngineFixture()
	fixture.standards.standards["BigNeg"] = ports.StandardView{Name: "BigNeg", RepAmount: -100}
	fixture.ledger.balances["acct-x"] = 30

	err := fixture.single().Execute(context.Background(), ApplyStandardCommand{
		Caller:       "the-admin",
		To:           "acct-x",
		StandardName: "BigNeg",
	})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if fixture.ledger.balances["acct-x"] != 0 {
		t.Fatalf("expected clamped balance 0, got %d", fixture.ledger.balances["acct-x"])
	}
	if fixture.access.burned["the-admin"] != 30 {
		t.Fatalf("burned counter must track the applied decrease, got %d", fixture.access.burned["the-admin"])
	}
}

func TestApplyStandardDestroyedCarriesDetail(t *testing.T) {
	fixture := newEngineFixture()
	fixture.standards.standards["Dead"] = ports.StandardView{Name: "Dead", Destroyed: true}

	err := fixture.single().Execute(context.Background(), ApplyStandardCommand{
		Caller:       "the-admin",
		To:           "acct-x",
		StandardName: "Dead",
	})
	if !errors.Is(err, domainerrors.ErrDestroyedStandard) {
		t.Fatalf("expected destroyed standard, got %v", err)
	}

	var detail *domainerrors.DestroyedStandardError
	if !errors.As(err, &detail) {
		t.Fatalf("expected destroyed-standard detail, got %T", err)
	}
	if detail.Account != "acct-x" || detail.Standard != "Dead" {
		t.Fatalf("unexpected detail: %+v", detail)
	}
}

func TestApplyBatchIsAllOrNothing(t *testing.T) {
	fixture := newEngineFixture()
	fixture.standards.standards["Dead"] = ports.StandardView{Name: "Dead", Destroyed: true}

	err := fixture.batch().Execute(context.Background(), ApplyBatchCommand{
		Caller: "the-admin",
		Entries: []BatchEntry{
			{To: "acct-a", StandardName: "Pos"},
			{To: "acct-b", StandardName: "Dead"},
			{To: "acct-c", StandardName: "Pos"},
		},
	})
	if !errors.Is(err, domainerrors.ErrDestroyedStandard) {
		t.Fatalf("expected destroyed standard, got %v", err)
	}
	if fixture.ledger.moves != 0 {
		t.Fatalf("aborted batch must not move any balance, saw %d moves", fixture.ledger.moves)
	}
	if len(fixture.access.issued) != 0 {
		t.Fatalf("aborted batch must not accrue counters")
	}
}

func TestApplyBatchAppliesEntriesInOrder(t *testing.T) {
	fixture := newEngineFixture()

	err := fixture.batch().Execute(context.Background(), ApplyBatchCommand{
		Caller: "the-contract",
		Entries: []BatchEntry{
			{To: "acct-a", StandardName: "Pos"},
			{To: "acct-a", StandardName: "Pos"},
			{To: "acct-b", StandardName: "Pos"},
		},
	})
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if fixture.ledger.balances["acct-a"] != 20 || fixture.ledger.balances["acct-b"] != 10 {
		t.Fatalf("unexpected balances: %v", fixture.ledger.balances)
	}
	if fixture.ledger.moves != 3 {
		t.Fatalf("expected 3 moves, got %d", fixture.ledger.moves)
	}
}

func TestApplyUserBatchNetsPerPair(t *testing.T) {
	fixture := newEngineFixture()

	err := fixture.userBatch().Execute(context.Background(), ApplyUserBatchCommand{
		Caller: "the-admin",
		Entries: []UserBatchEntry{
			{
				To: "acct-x",
				Counts: []StandardCount{
					{StandardName: "Pos", Count: 8},
					{StandardName: "Neg", Count: 2},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("user batch failed: %v", err)
	}
	if fixture.ledger.balances["acct-x"] != 60 {
		t.Fatalf("expected netted balance 60, got %d", fixture.ledger.balances["acct-x"])
	}
	if fixture.ledger.moves != 2 {
		t.Fatalf("netting must keep moves proportional to pairs, got %d", fixture.ledger.moves)
	}
	if fixture.access.issued["the-admin"] != 80 || fixture.access.burned["the-admin"] != 20 {
		t.Fatalf("unexpected counters: issued=%d burned=%d",
			fixture.access.issued["the-admin"], fixture.access.burned["the-admin"])
	}
}

func TestApplyUserBatchRejectsNonPositiveCounts(t *testing.T) {
	fixture := newEngineFixture()

	for _, count := range []int64{0, -3} {
		err := fixture.userBatch().Execute(context.Background(), ApplyUserBatchCommand{
			Caller: "the-admin",
			Entries: []UserBatchEntry{
				{To: "acct-x", Counts: []StandardCount{{StandardName: "Pos", Count: count}}},
			},
		})
		if !errors.Is(err, domainerrors.ErrInvalidAmount) {
			t.Fatalf("count %d: expected invalid amount, got %v", count, err)
		}
	}
	if fixture.ledger.moves != 0 {
		t.Fatalf("rejected batches must not move balances")
	}
}

func TestApplyUserBatchAbortsOnDestroyedStandard(t *testing.T) {
	fixture := newEngineFixture()

	err := fixture.userBatch().Execute(context.Background(), ApplyUserBatchCommand{
		Caller: "the-admin",
		Entries: []UserBatchEntry{
			{To: "acct-x", Counts: []StandardCount{{StandardName: "Pos", Count: 4}}},
			{To: "acct-y", Counts: []StandardCount{{StandardName: "Gone", Count: 1}}},
		},
	})
	if !errors.Is(err, domainerrors.ErrDestroyedStandard) {
		t.Fatalf("expected destroyed standard, got %v", err)
	}
	if fixture.ledger.moves != 0 {
		t.Fatalf("aborted batch must not move balances")
	}
}
