package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	ledgererrors "chainreputation/contexts/reputation/balance-ledger/domain/errors"
	ledgerhttp "chainreputation/contexts/reputation/balance-ledger/transport/http"
)

func (s *Server) handleIssue(w http.ResponseWriter, r *http.Request) {
	caller := resolveCaller(r)
	if caller.IsZero() {
		writeLedgerError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}

	var req ledgerhttp.IssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.ledger.Handler.IssueHandler(r.Context(), caller.String(), r.PathValue("name"), req)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBurn(w http.ResponseWriter, r *http.Request) {
	caller := resolveCaller(r)
	if caller.IsZero() {
		writeLedgerError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}

	var req ledgerhttp.BurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.ledger.Handler.BurnHandler(r.Context(), caller.String(), r.PathValue("name"), req)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	resp, err := s.ledger.Handler.BalanceHandler(
		r.Context(),
		r.PathValue("account"),
		r.PathValue("name"),
		r.URL.Query().Get("issuer"),
	)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeLedgerDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledgererrors.ErrUnauthorized):
		writeLedgerError(w, http.StatusForbidden, "unauthorized", err.Error())
	case errors.Is(err, ledgererrors.ErrTokenInactive):
		writeLedgerError(w, http.StatusConflict, "token_inactive", err.Error())
	case errors.Is(err, ledgererrors.ErrInvalidAmount):
		writeLedgerError(w, http.StatusBadRequest, "invalid_amount", err.Error())
	case errors.Is(err, ledgererrors.ErrInvalidQuery):
		writeLedgerError(w, http.StatusBadRequest, "invalid_query", err.Error())
	case errors.Is(err, ledgererrors.ErrInvalidRequest):
		writeLedgerError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeLedgerError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeLedgerError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, ledgerhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
