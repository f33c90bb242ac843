package httpadapter

import (
	"context"
	"log/slog"

	"chainreputation/contexts/reputation/standards-catalog/application"
	httptransport "chainreputation/contexts/reputation/standards-catalog/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// @Summary Manage reputation standard
// @Description Upserts a named signed delta; a zero amount destroys the standard.
// @Tags standards-catalog
// @Accept json
// @Produce json
// @Param X-Caller-Id header string true "Authenticated principal"
// @Param request body httptransport.ManageStandardRequest true "Standard definition"
// @Success 200 {object} httptransport.AckResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /standards [put]
func (h Handler) ManageStandardHandler(
	ctx context.Context,
	caller string,
	req httptransport.ManageStandardRequest,
) (httptransport.AckResponse, error) {
	if err := h.Service.ManageStandard(ctx, caller, req.Name, req.RepAmount); err != nil {
		return httptransport.AckResponse{}, err
	}
	return httptransport.AckResponse{Status: "success"}, nil
}

// @Summary Get standard
// @Description Destroyed and unknown standards read back with a zero delta and the destroyed flag.
// @Tags standards-catalog
// @Produce json
// @Param name path string true "Standard name"
// @Success 200 {object} httptransport.StandardResponse
// @Router /standards/{name} [get]
func (h Handler) GetStandardHandler(ctx context.Context, name string) (httptransport.StandardResponse, error) {
	standard, err := h.Service.GetStandard(ctx, name)
	if err != nil {
		return httptransport.StandardResponse{}, err
	}

	resp := httptransport.StandardResponse{Status: "success"}
	resp.Data.Name = standard.Name
	resp.Data.RepAmount = standard.RepAmount
	resp.Data.Destroyed = standard.Destroyed
	return resp, nil
}

// @Summary List standard names
// @Description Returns the enumerable name list; destroyed standards keep blank slots.
// @Tags standards-catalog
// @Produce json
// @Success 200 {object} httptransport.StandardNamesResponse
// @Router /standards [get]
func (h Handler) StandardNamesHandler(ctx context.Context) (httptransport.StandardNamesResponse, error) {
	names, err := h.Service.StandardNames(ctx)
	if err != nil {
		return httptransport.StandardNamesResponse{}, err
	}

	resp := httptransport.StandardNamesResponse{Status: "success"}
	resp.Data.Names = names
	return resp, nil
}
