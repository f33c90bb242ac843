package unit

import (
	"context"
	"errors"
	"testing"

	tokenregistry "chainreputation/contexts/reputation/token-registry"
	registryerrors "chainreputation/contexts/reputation/token-registry/domain/errors"
	httptransport "chainreputation/contexts/reputation/token-registry/transport/http"
)

func TestTokenLifecycleAndOwnershipTransfer(t *testing.T) {
	module := tokenregistry.NewInMemoryModule(nil)

	created, err := module.Handler.CreateTokenHandler(context.Background(), "owner-1", httptransport.CreateTokenRequest{
		Name:    "REP",
		CID:     "bafy-standard-1",
		Oracles: []string{"oracle-1"},
	})
	if err != nil {
		t.Fatalf("create token failed: %v", err)
	}
	if created.Data.Owner != "owner-1" || created.Data.State != "active" {
		t.Fatalf("unexpected created token: %+v", created.Data)
	}

	_, err = module.Handler.CreateTokenHandler(context.Background(), "owner-2", httptransport.CreateTokenRequest{
		Name: "REP",
		CID:  "bafy-standard-2",
	})
	if !errors.Is(err, registryerrors.ErrNameInUse) {
		t.Fatalf("expected name-in-use on duplicate create, got %v", err)
	}

	if _, err := module.Handler.TransferOwnershipHandler(context.Background(), "owner-1", "REP", httptransport.TransferOwnershipRequest{
		NewOwner: "owner-2",
	}); err != nil {
		t.Fatalf("transfer ownership failed: %v", err)
	}

	_, err = module.Handler.ChangeTokenStateHandler(context.Background(), "owner-1", "REP", httptransport.ChangeTokenStateRequest{
		State: "inactive",
	})
	if !errors.Is(err, registryerrors.ErrUnauthorized) {
		t.Fatalf("expected previous owner to lose control, got %v", err)
	}

	if _, err := module.Handler.AddOracleHandler(context.Background(), "owner-2", "REP", httptransport.AddOracleRequest{
		Address: "oracle-2",
	}); err != nil {
		t.Fatalf("add oracle failed: %v", err)
	}
	if _, err := module.Handler.RemoveOracleHandler(context.Background(), "owner-2", "REP", "oracle-1"); err != nil {
		t.Fatalf("remove oracle failed: %v", err)
	}

	oracles, err := module.Handler.GetOraclesHandler(context.Background(), "REP")
	if err != nil {
		t.Fatalf("get oracles failed: %v", err)
	}
	if len(oracles.Data.Oracles) != 1 || oracles.Data.Oracles[0] != "oracle-2" {
		t.Fatalf("unexpected oracle set: %v", oracles.Data.Oracles)
	}

	token, err := module.Handler.GetTokenHandler(context.Background(), "REP")
	if err != nil {
		t.Fatalf("get token failed: %v", err)
	}
	if token.Data.Owner != "owner-2" {
		t.Fatalf("expected owner-2 after transfer, got %s", token.Data.Owner)
	}
}
