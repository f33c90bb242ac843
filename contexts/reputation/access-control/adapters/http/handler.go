package httpadapter

import (
	"context"
	"log/slog"

	"chainreputation/contexts/reputation/access-control/application"
	httptransport "chainreputation/contexts/reputation/access-control/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// @Summary Add admin
// @Description Grants the admin role; only the instance owner may call this.
// @Tags access-control
// @Accept json
// @Produce json
// @Param X-Caller-Id header string true "Authenticated principal"
// @Param request body httptransport.AddAdminRequest true "Admin principal"
// @Success 200 {object} httptransport.AckResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /admins [post]
func (h Handler) AddAdminHandler(
	ctx context.Context,
	caller string,
	req httptransport.AddAdminRequest,
) (httptransport.AckResponse, error) {
	if err := h.Service.AddAdmin(ctx, caller, req.Admin); err != nil {
		return httptransport.AckResponse{}, err
	}
	return httptransport.AckResponse{Status: "success"}, nil
}

// @Summary Remove admin
// @Description Revokes the admin role; the audit counters are preserved.
// @Tags access-control
// @Produce json
// @Param X-Caller-Id header string true "Authenticated principal"
// @Param id path string true "Admin principal"
// @Success 200 {object} httptransport.AckResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /admins/{id} [delete]
func (h Handler) RemoveAdminHandler(ctx context.Context, caller string, adminID string) (httptransport.AckResponse, error) {
	if err := h.Service.RemoveAdmin(ctx, caller, adminID); err != nil {
		return httptransport.AckResponse{}, err
	}
	return httptransport.AckResponse{Status: "success"}, nil
}

// @Summary Get admin
// @Description Returns authorization state and audit counters; unknown principals read back zeroed.
// @Tags access-control
// @Produce json
// @Param id path string true "Admin principal"
// @Success 200 {object} httptransport.AdminResponse
// @Router /admins/{id} [get]
func (h Handler) GetAdminHandler(ctx context.Context, adminID string) (httptransport.AdminResponse, error) {
	admin, err := h.Service.GetAdmin(ctx, adminID)
	if err != nil {
		return httptransport.AdminResponse{}, err
	}

	resp := httptransport.AdminResponse{Status: "success"}
	resp.Data.Admin = admin.ID
	resp.Data.Authorized = admin.Authorized
	resp.Data.TotalRepIssued = admin.TotalRepIssued
	resp.Data.TotalRepBurned = admin.TotalRepBurned
	return resp, nil
}

// @Summary Add contract
// @Description Registers an external integration; only the instance owner may call this.
// @Tags access-control
// @Accept json
// @Produce json
// @Param X-Caller-Id header string true "Authenticated principal"
// @Param request body httptransport.AddContractRequest true "Contract registration"
// @Success 200 {object} httptransport.AckResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /contracts [post]
func (h Handler) AddContractHandler(
	ctx context.Context,
	caller string,
	req httptransport.AddContractRequest,
) (httptransport.AckResponse, error) {
	if err := h.Service.AddContract(ctx, caller, req.Contract, req.Name); err != nil {
		return httptransport.AckResponse{}, err
	}
	return httptransport.AckResponse{Status: "success"}, nil
}

// @Summary Remove contract
// @Tags access-control
// @Produce json
// @Param X-Caller-Id header string true "Authenticated principal"
// @Param id path string true "Contract principal"
// @Success 200 {object} httptransport.AckResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /contracts/{id} [delete]
func (h Handler) RemoveContractHandler(ctx context.Context, caller string, contractID string) (httptransport.AckResponse, error) {
	if err := h.Service.RemoveContract(ctx, caller, contractID); err != nil {
		return httptransport.AckResponse{}, err
	}
	return httptransport.AckResponse{Status: "success"}, nil
}
