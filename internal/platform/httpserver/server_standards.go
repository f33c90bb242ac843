package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	catalogerrors "chainreputation/contexts/reputation/standards-catalog/domain/errors"
	cataloghttp "chainreputation/contexts/reputation/standards-catalog/transport/http"
)

func (s *Server) handleManageStandard(w http.ResponseWriter, r *http.Request) {
	caller := resolveCaller(r)
	if caller.IsZero() {
		writeCatalogError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}

	var req cataloghttp.ManageStandardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.standards.Handler.ManageStandardHandler(r.Context(), caller.String(), req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetStandard(w http.ResponseWriter, r *http.Request) {
	resp, err := s.standards.Handler.GetStandardHandler(r.Context(), r.PathValue("name"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStandardNames(w http.ResponseWriter, r *http.Request) {
	resp, err := s.standards.Handler.StandardNamesHandler(r.Context())
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeCatalogDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalogerrors.ErrUnauthorized):
		writeCatalogError(w, http.StatusForbidden, "unauthorized", err.Error())
	case errors.Is(err, catalogerrors.ErrInvalidRequest):
		writeCatalogError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeCatalogError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeCatalogError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, cataloghttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
