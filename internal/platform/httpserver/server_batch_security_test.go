package httpserver

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestApplyStandardRequiresCallerHeader(t *testing.T) {
	ts := newTestServer()
	body := []byte(`{"to":"acct-x","standard_name":"Pos"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/reputation/v1/updates/standard", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestApplyStandardRejectsUnprivilegedCaller(t *testing.T) {
	ts := newTestServer()
	if err := ts.standards.Service.ManageStandard(context.Background(), testInstanceOwner, "Pos", 10); err != nil {
		t.Fatalf("seed standard failed: %v", err)
	}

	body := []byte(`{"to":"acct-x","standard_name":"Pos"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/reputation/v1/updates/standard", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Caller-Id", "stranger")

	rr := httptest.NewRecorder()
	ts.server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestApplyStandardDestroyedReturns422(t *testing.T) {
	ts := newTestServer()
	if err := ts.access.Service.AddAdmin(context.Background(), testInstanceOwner, "the-admin"); err != nil {
		t.Fatalf("seed admin failed: %v", err)
	}

	body := []byte(`{"to":"acct-x","standard_name":"NeverDefined"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/reputation/v1/updates/standard", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Caller-Id", "the-admin")

	rr := httptest.NewRecorder()
	ts.server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestApplyStandardMovesBalanceForAdmin(t *testing.T) {
	ts := newTestServer()
	if err := ts.access.Service.AddAdmin(context.Background(), testInstanceOwner, "the-admin"); err != nil {
		t.Fatalf("seed admin failed: %v", err)
	}
	if err := ts.standards.Service.ManageStandard(context.Background(), testInstanceOwner, "Pos", 10); err != nil {
		t.Fatalf("seed standard failed: %v", err)
	}

	body := []byte(`{"to":"acct-x","standard_name":"Pos"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/reputation/v1/updates/standard", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Caller-Id", "the-admin")

	rr := httptest.NewRecorder()
	ts.server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	balance, err := ts.ledger.Service.TrueBalanceOf(context.Background(), "acct-x", testInstanceToken)
	if err != nil {
		t.Fatalf("balance read failed: %v", err)
	}
	if balance != 10 {
		t.Fatalf("expected balance 10, got %d", balance)
	}

	admin, err := ts.access.Service.GetAdmin(context.Background(), "the-admin")
	if err != nil {
		t.Fatalf("admin read failed: %v", err)
	}
	if admin.TotalRepIssued != 10 {
		t.Fatalf("expected issued counter 10, got %d", admin.TotalRepIssued)
	}
}
