package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	accesserrors "chainreputation/contexts/reputation/access-control/domain/errors"
	accesshttp "chainreputation/contexts/reputation/access-control/transport/http"
)

func (s *Server) handleAddAdmin(w http.ResponseWriter, r *http.Request) {
	caller := resolveCaller(r)
	if caller.IsZero() {
		writeAccessError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}

	var req accesshttp.AddAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAccessError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.access.Handler.AddAdminHandler(r.Context(), caller.String(), req)
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRemoveAdmin(w http.ResponseWriter, r *http.Request) {
	caller := resolveCaller(r)
	if caller.IsZero() {
		writeAccessError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}

	resp, err := s.access.Handler.RemoveAdminHandler(r.Context(), caller.String(), r.PathValue("id"))
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetAdmin(w http.ResponseWriter, r *http.Request) {
	resp, err := s.access.Handler.GetAdminHandler(r.Context(), r.PathValue("id"))
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddContract(w http.ResponseWriter, r *http.Request) {
	caller := resolveCaller(r)
	if caller.IsZero() {
		writeAccessError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}

	var req accesshttp.AddContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAccessError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.access.Handler.AddContractHandler(r.Context(), caller.String(), req)
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRemoveContract(w http.ResponseWriter, r *http.Request) {
	caller := resolveCaller(r)
	if caller.IsZero() {
		writeAccessError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}

	resp, err := s.access.Handler.RemoveContractHandler(r.Context(), caller.String(), r.PathValue("id"))
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeAccessDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accesserrors.ErrUnauthorized):
		writeAccessError(w, http.StatusForbidden, "unauthorized", err.Error())
	case errors.Is(err, accesserrors.ErrAlreadyAuthorized):
		writeAccessError(w, http.StatusConflict, "already_authorized", err.Error())
	case errors.Is(err, accesserrors.ErrNotAuthorized):
		writeAccessError(w, http.StatusConflict, "not_authorized", err.Error())
	case errors.Is(err, accesserrors.ErrInvalidRequest):
		writeAccessError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeAccessError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeAccessError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, accesshttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
