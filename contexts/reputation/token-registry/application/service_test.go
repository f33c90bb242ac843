package application

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	eventsadapter "chainreputation/contexts/reputation/token-registry/adapters/events"
	"chainreputation/contexts/reputation/token-registry/adapters/memory"
	"chainreputation/contexts/reputation/token-registry/domain/entities"
	domainerrors "chainreputation/contexts/reputation/token-registry/domain/errors"
	"chainreputation/contexts/reputation/token-registry/ports"
	sharedevents "chainreputation/internal/shared/events"
)

func newTestService() (Service, *sharedevents.Journal) {
	journal := sharedevents.NewJournal()
	service := Service{
		Repo:   memory.NewStore(),
		Events: eventsadapter.NewPublisher("test", journal, nil),
		Lock:   &sync.Mutex{},
	}
	return service, journal
}

func TestCreateTokenSetsOwnerAndActivates(t *testing.T) {
	service, journal := newTestService()

	token, err := service.CreateToken(context.Background(), "owner-1", "1234", "TestToken", []string{"oracle-1", "oracle-2"})
	if err != nil {
		t.Fatalf("create token failed: %v", err)
	}
	if token.Owner != "owner-1" {
		t.Fatalf("expected caller as owner, got %s", token.Owner)
	}
	if token.State != entities.StateActive {
		t.Fatalf("expected active state, got %s", token.State)
	}

	stored, err := service.GetToken(context.Background(), "TestToken")
	if err != nil {
		t.Fatalf("get token failed: %v", err)
	}
	if stored.CID != "1234" {
		t.Fatalf("expected cid 1234, got %s", stored.CID)
	}
	if !reflect.DeepEqual(stored.Oracles, []string{"oracle-1", "oracle-2"}) {
		t.Fatalf("unexpected oracle set: %v", stored.Oracles)
	}

	entries := journal.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected exactly one event, got %d", len(entries))
	}
	if entries[0].EventType != "TokenChanged" {
		t.Fatalf("expected TokenChanged event, got %s", entries[0].EventType)
	}
	if entries[0].EntityID != "TestToken" {
		t.Fatalf("expected token entity id, got %s", entries[0].EntityID)
	}
}

func TestCreateTokenRejectsNameInUse(t *testing.T) {
	service, journal := newTestService()

	if _, err := service.CreateToken(context.Background(), "owner-1", "1234", "TestToken", nil); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := service.CreateToken(context.Background(), "owner-2", "5678", "TestToken", nil)
	if !errors.Is(err, domainerrors.ErrNameInUse) {
		t.Fatalf("expected name-in-use error, got %v", err)
	}

	token, err := service.GetToken(context.Background(), "TestToken")
	if err != nil {
		t.Fatalf("get token failed: %v", err)
	}
	if token.Owner != "owner-1" || token.CID != "1234" {
		t.Fatalf("first token must be untouched, got owner=%s cid=%s", token.Owner, token.CID)
	}
	if journal.Len() != 1 {
		t.Fatalf("failed create must not emit events, got %d", journal.Len())
	}
}

func TestNameStaysTakenAfterDeactivation(t *testing.T) {
	service, _ := newTestService()

	if _, err := service.CreateToken(context.Background(), "owner-1", "1234", "TestToken", nil); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := service.ChangeTokenState(context.Background(), "owner-1", "TestToken", "inactive"); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}

	_, err := service.CreateToken(context.Background(), "owner-2", "5678", "TestToken", nil)
	if !errors.Is(err, domainerrors.ErrNameInUse) {
		t.Fatalf("expected name-in-use after soft delete, got %v", err)
	}
}

func TestUninitializedTokenReadsBackEmpty(t *testing.T) {
	service, _ := newTestService()

	token, err := service.GetToken(context.Background(), "RandomToken")
	if err != nil {
		t.Fatalf("get token failed: %v", err)
	}
	if token.CID != "" || token.Owner != "" {
		t.Fatalf("expected empty cid and owner, got cid=%q owner=%q", token.CID, token.Owner)
	}
	if token.State.Created() {
		t.Fatalf("uninitialized token must read as not created")
	}
}

func TestTransferOwnershipOwnerOnlyAndNoOp(t *testing.T) {
	service, journal := newTestService()

	if _, err := service.CreateToken(context.Background(), "owner-1", "1234", "TestToken", nil); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	before := journal.Len()

	if err := service.TransferOwnership(context.Background(), "stranger", "TestToken", "owner-2"); !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for non-owner, got %v", err)
	}
	if err := service.TransferOwnership(context.Background(), "owner-1", "TestToken", "owner-1"); !errors.Is(err, domainerrors.ErrNoChange) {
		t.Fatalf("expected no-change error, got %v", err)
	}
	if journal.Len() != before {
		t.Fatalf("rejected transfers must not emit events")
	}

	if err := service.TransferOwnership(context.Background(), "owner-1", "TestToken", "owner-2"); err != nil {
		t.Fatalf("transfer failed: %v", err)
	}
	token, _ := service.GetToken(context.Background(), "TestToken")
	if token.Owner != "owner-2" {
		t.Fatalf("expected owner-2, got %s", token.Owner)
	}
	entries := journal.Entries()
	if entries[len(entries)-1].EventType != "OwnerChanged" {
		t.Fatalf("expected OwnerChanged event")
	}
}

func TestChangeTokenStandardNoOp(t *testing.T) {
	service, journal := newTestService()

	if _, err := service.CreateToken(context.Background(), "owner-1", "1234", "TestToken", nil); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	before := journal.Len()

	if err := service.ChangeTokenStandard(context.Background(), "owner-1", "TestToken", "1234"); !errors.Is(err, domainerrors.ErrNoChange) {
		t.Fatalf("expected no-change error, got %v", err)
	}
	if journal.Len() != before {
		t.Fatalf("no-op change must not emit events")
	}

	if err := service.ChangeTokenStandard(context.Background(), "owner-1", "TestToken", "5678"); err != nil {
		t.Fatalf("cid change failed: %v", err)
	}
	token, _ := service.GetToken(context.Background(), "TestToken")
	if token.CID != "5678" {
		t.Fatalf("expected cid 5678, got %s", token.CID)
	}
}

func TestChangeTokenStateValidatesAndToggles(t *testing.T) {
	service, journal := newTestService()

	if _, err := service.CreateToken(context.Background(), "owner-1", "1234", "TestToken", nil); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := service.ChangeTokenState(context.Background(), "owner-1", "TestToken", "destroyed"); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request for unknown state, got %v", err)
	}
	if err := service.ChangeTokenState(context.Background(), "owner-1", "TestToken", "active"); !errors.Is(err, domainerrors.ErrNoChange) {
		t.Fatalf("expected no-change for same state, got %v", err)
	}

	before := journal.Len()
	if err := service.ChangeTokenState(context.Background(), "owner-1", "TestToken", "inactive"); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if journal.Len() != before+1 {
		t.Fatalf("expected exactly one state event")
	}
	token, _ := service.GetToken(context.Background(), "TestToken")
	if token.State != entities.StateInactive {
		t.Fatalf("expected inactive, got %s", token.State)
	}
}

func TestOracleManagementKeepsRelativeOrder(t *testing.T) {
	service, journal := newTestService()

	if _, err := service.CreateToken(context.Background(), "owner-1", "1234", "TestToken", []string{"o1", "o2", "o3"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := service.AddOracle(context.Background(), "owner-1", "TestToken", "o2"); !errors.Is(err, domainerrors.ErrAlreadyAuthorized) {
		t.Fatalf("expected already-authorized, got %v", err)
	}
	if err := service.RemoveOracle(context.Background(), "owner-1", "TestToken", "o9"); !errors.Is(err, domainerrors.ErrNotAuthorized) {
		t.Fatalf("expected not-authorized, got %v", err)
	}
	if err := service.AddOracle(context.Background(), "oracle-1", "TestToken", "o4"); !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("oracle management is owner-only, got %v", err)
	}

	before := journal.Len()
	if err := service.RemoveOracle(context.Background(), "owner-1", "TestToken", "o2"); err != nil {
		t.Fatalf("remove oracle failed: %v", err)
	}
	if err := service.AddOracle(context.Background(), "owner-1", "TestToken", "o4"); err != nil {
		t.Fatalf("add oracle failed: %v", err)
	}
	if journal.Len() != before+2 {
		t.Fatalf("expected one event per oracle mutation")
	}

	oracles, err := service.GetOracles(context.Background(), "TestToken")
	if err != nil {
		t.Fatalf("get oracles failed: %v", err)
	}
	if !reflect.DeepEqual(oracles, []string{"o1", "o3", "o4"}) {
		t.Fatalf("expected compacted ordered list, got %v", oracles)
	}
}

func TestConcurrentCreatesKeepOneOwner(t *testing.T) {
	service, _ := newTestService()

	for i := 0; i < 100; i++ {
		name := fmt.Sprintf("Token-%d", i)
		errs := make(chan error, 2)
		var wg sync.WaitGroup
		for _, owner := range []string{"owner-a", "owner-b"} {
			wg.Add(1)
			go func(owner string) {
				defer wg.Done()
				_, err := service.CreateToken(context.Background(), owner, "1234", name, nil)
				errs <- err
			}(owner)
		}
		wg.Wait()
		close(errs)

		rejected := 0
		for err := range errs {
			if err == nil {
				continue
			}
			if !errors.Is(err, domainerrors.ErrNameInUse) {
				t.Fatalf("unexpected create error: %v", err)
			}
			rejected++
		}
		if rejected != 1 {
			t.Fatalf("expected exactly one rejected create for %s, got %d", name, rejected)
		}

		token, err := service.GetToken(context.Background(), name)
		if err != nil {
			t.Fatalf("get token failed: %v", err)
		}
		if token.Owner != "owner-a" && token.Owner != "owner-b" {
			t.Fatalf("unexpected owner %q", token.Owner)
		}
		if _, err := service.CreateToken(context.Background(), token.Owner, "5678", name, nil); !errors.Is(err, domainerrors.ErrNameInUse) {
			t.Fatalf("name must stay taken, got %v", err)
		}
	}
}

type txTrackingRepo struct {
	*memory.Store
	inTx bool
}

var _ ports.Repository = (*txTrackingRepo)(nil)

func (r *txTrackingRepo) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	r.inTx = true
	defer func() { r.inTx = false }()
	return fn(ctx)
}

type txGuardSink struct {
	repo       *txTrackingRepo
	journal    *sharedevents.Journal
	violations int
}

func (s *txGuardSink) Publish(ctx context.Context, event sharedevents.Envelope) error {
	if !s.repo.inTx {
		s.violations++
	}
	return s.journal.Publish(ctx, event)
}

func TestMutationEventsCommitWithState(t *testing.T) {
	repo := &txTrackingRepo{Store: memory.NewStore()}
	journal := sharedevents.NewJournal()
	sink := &txGuardSink{repo: repo, journal: journal}
	service := Service{
		Repo:   repo,
		Events: eventsadapter.NewPublisher("test", sink, nil),
		Lock:   &sync.Mutex{},
	}

	if _, err := service.CreateToken(context.Background(), "owner-1", "1234", "TestToken", nil); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := service.AddOracle(context.Background(), "owner-1", "TestToken", "o1"); err != nil {
		t.Fatalf("add oracle failed: %v", err)
	}
	if err := service.ChangeTokenState(context.Background(), "owner-1", "TestToken", "inactive"); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if err := service.TransferOwnership(context.Background(), "owner-1", "TestToken", "owner-2"); err != nil {
		t.Fatalf("transfer failed: %v", err)
	}

	if sink.violations != 0 {
		t.Fatalf("%d audit events published outside the state transaction", sink.violations)
	}
	if journal.Len() != 4 {
		t.Fatalf("expected one event per mutation, got %d", journal.Len())
	}
}

func TestAuthorizeIssuerGrants(t *testing.T) {
	service, _ := newTestService()

	if _, err := service.CreateToken(context.Background(), "owner-1", "1234", "TestToken", []string{"o1"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	for _, issuer := range []string{"owner-1", "o1"} {
		grant, err := service.AuthorizeIssuer(context.Background(), "TestToken", issuer)
		if err != nil {
			t.Fatalf("authorize issuer failed: %v", err)
		}
		if !grant.Authorized || !grant.Active {
			t.Fatalf("expected %s authorized on active token", issuer)
		}
	}

	grant, err := service.AuthorizeIssuer(context.Background(), "TestToken", "stranger")
	if err != nil {
		t.Fatalf("authorize issuer failed: %v", err)
	}
	if grant.Authorized {
		t.Fatalf("stranger must not be authorized")
	}

	if err := service.ChangeTokenState(context.Background(), "owner-1", "TestToken", "inactive"); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	grant, err = service.AuthorizeIssuer(context.Background(), "TestToken", "o1")
	if err != nil {
		t.Fatalf("authorize issuer failed: %v", err)
	}
	if grant.Active {
		t.Fatalf("inactive token must report inactive grant")
	}
	if !grant.Authorized {
		t.Fatalf("oracle stays authorized while token is inactive")
	}
}
