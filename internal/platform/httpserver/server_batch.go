package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	batcherrors "chainreputation/contexts/reputation/batch-engine/domain/errors"
	batchhttp "chainreputation/contexts/reputation/batch-engine/transport/http"
)

func (s *Server) handleApplyStandard(w http.ResponseWriter, r *http.Request) {
	caller := resolveCaller(r)
	if caller.IsZero() {
		writeBatchError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}

	var req batchhttp.ApplyStandardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBatchError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.batch.Handler.ApplyStandardHandler(r.Context(), caller.String(), req)
	if err != nil {
		writeBatchDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleApplyBatch(w http.ResponseWriter, r *http.Request) {
	caller := resolveCaller(r)
	if caller.IsZero() {
		writeBatchError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}

	var req batchhttp.ApplyBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBatchError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.batch.Handler.ApplyBatchHandler(r.Context(), caller.String(), req)
	if err != nil {
		writeBatchDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleApplyUserBatch(w http.ResponseWriter, r *http.Request) {
	caller := resolveCaller(r)
	if caller.IsZero() {
		writeBatchError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}

	var req batchhttp.ApplyUserBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBatchError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.batch.Handler.ApplyUserBatchHandler(r.Context(), caller.String(), req)
	if err != nil {
		writeBatchDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeBatchDomainError(w http.ResponseWriter, err error) {
	var destroyed *batcherrors.DestroyedStandardError
	switch {
	case errors.As(err, &destroyed):
		writeBatchError(w, http.StatusUnprocessableEntity, "destroyed_standard", destroyed.Error())
	case errors.Is(err, batcherrors.ErrUnauthorized):
		writeBatchError(w, http.StatusForbidden, "unauthorized", err.Error())
	case errors.Is(err, batcherrors.ErrInvalidAmount):
		writeBatchError(w, http.StatusBadRequest, "invalid_amount", err.Error())
	case errors.Is(err, batcherrors.ErrInvalidRequest):
		writeBatchError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeBatchError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeBatchError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, batchhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
