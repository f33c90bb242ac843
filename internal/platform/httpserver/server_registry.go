package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	registryerrors "chainreputation/contexts/reputation/token-registry/domain/errors"
	registryhttp "chainreputation/contexts/reputation/token-registry/transport/http"
)

func (s *Server) handleCreateToken(w http.ResponseWriter, r *http.Request) {
	caller := resolveCaller(r)
	if caller.IsZero() {
		writeRegistryError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}

	var req registryhttp.CreateTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.registry.Handler.CreateTokenHandler(r.Context(), caller.String(), req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetToken(w http.ResponseWriter, r *http.Request) {
	resp, err := s.registry.Handler.GetTokenHandler(r.Context(), r.PathValue("name"))
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTransferOwnership(w http.ResponseWriter, r *http.Request) {
	caller := resolveCaller(r)
	if caller.IsZero() {
		writeRegistryError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}

	var req registryhttp.TransferOwnershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.registry.Handler.TransferOwnershipHandler(r.Context(), caller.String(), r.PathValue("name"), req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChangeTokenStandard(w http.ResponseWriter, r *http.Request) {
	caller := resolveCaller(r)
	if caller.IsZero() {
		writeRegistryError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}

	var req registryhttp.ChangeTokenStandardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.registry.Handler.ChangeTokenStandardHandler(r.Context(), caller.String(), r.PathValue("name"), req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChangeTokenState(w http.ResponseWriter, r *http.Request) {
	caller := resolveCaller(r)
	if caller.IsZero() {
		writeRegistryError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}

	var req registryhttp.ChangeTokenStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.registry.Handler.ChangeTokenStateHandler(r.Context(), caller.String(), r.PathValue("name"), req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddOracle(w http.ResponseWriter, r *http.Request) {
	caller := resolveCaller(r)
	if caller.IsZero() {
		writeRegistryError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}

	var req registryhttp.AddOracleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.registry.Handler.AddOracleHandler(r.Context(), caller.String(), r.PathValue("name"), req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRemoveOracle(w http.ResponseWriter, r *http.Request) {
	caller := resolveCaller(r)
	if caller.IsZero() {
		writeRegistryError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}

	resp, err := s.registry.Handler.RemoveOracleHandler(r.Context(), caller.String(), r.PathValue("name"), r.PathValue("address"))
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetOracles(w http.ResponseWriter, r *http.Request) {
	resp, err := s.registry.Handler.GetOraclesHandler(r.Context(), r.PathValue("name"))
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeRegistryDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registryerrors.ErrUnauthorized):
		writeRegistryError(w, http.StatusForbidden, "unauthorized", err.Error())
	case errors.Is(err, registryerrors.ErrNameInUse):
		writeRegistryError(w, http.StatusConflict, "name_in_use", err.Error())
	case errors.Is(err, registryerrors.ErrNoChange):
		writeRegistryError(w, http.StatusConflict, "no_change", err.Error())
	case errors.Is(err, registryerrors.ErrAlreadyAuthorized):
		writeRegistryError(w, http.StatusConflict, "already_authorized", err.Error())
	case errors.Is(err, registryerrors.ErrNotAuthorized):
		writeRegistryError(w, http.StatusConflict, "not_authorized", err.Error())
	case errors.Is(err, registryerrors.ErrInvalidRequest):
		writeRegistryError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeRegistryError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeRegistryError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, registryhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
