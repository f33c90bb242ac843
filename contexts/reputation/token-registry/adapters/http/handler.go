package httpadapter

import (
	"context"
	"log/slog"

	"chainreputation/contexts/reputation/token-registry/application"
	"chainreputation/contexts/reputation/token-registry/domain/entities"
	httptransport "chainreputation/contexts/reputation/token-registry/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// @Summary Create reputation token
// @Description Registers a new named token; the caller becomes its owner.
// @Tags token-registry
// @Accept json
// @Produce json
// @Param X-Caller-Id header string true "Authenticated principal"
// @Param request body httptransport.CreateTokenRequest true "Token definition"
// @Success 201 {object} httptransport.TokenResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /tokens [post]
func (h Handler) CreateTokenHandler(
	ctx context.Context,
	caller string,
	req httptransport.CreateTokenRequest,
) (httptransport.TokenResponse, error) {
	token, err := h.Service.CreateToken(ctx, caller, req.CID, req.Name, req.Oracles)
	if err != nil {
		return httptransport.TokenResponse{}, err
	}
	return tokenResponse(token), nil
}

// @Summary Get token
// @Description Returns CID, state, owner, and oracles. Uninitialized names read back empty.
// @Tags token-registry
// @Produce json
// @Param name path string true "Token name"
// @Success 200 {object} httptransport.TokenResponse
// @Router /tokens/{name} [get]
func (h Handler) GetTokenHandler(ctx context.Context, name string) (httptransport.TokenResponse, error) {
	token, err := h.Service.GetToken(ctx, name)
	if err != nil {
		return httptransport.TokenResponse{}, err
	}
	return tokenResponse(token), nil
}

// @Summary Transfer token ownership
// @Tags token-registry
// @Accept json
// @Produce json
// @Param X-Caller-Id header string true "Authenticated principal"
// @Param name path string true "Token name"
// @Param request body httptransport.TransferOwnershipRequest true "New owner"
// @Success 200 {object} httptransport.AckResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /tokens/{name}/owner [post]
func (h Handler) TransferOwnershipHandler(
	ctx context.Context,
	caller string,
	name string,
	req httptransport.TransferOwnershipRequest,
) (httptransport.AckResponse, error) {
	if err := h.Service.TransferOwnership(ctx, caller, name, req.NewOwner); err != nil {
		return httptransport.AckResponse{}, err
	}
	return httptransport.AckResponse{Status: "success"}, nil
}

// @Summary Change token CID
// @Tags token-registry
// @Accept json
// @Produce json
// @Param X-Caller-Id header string true "Authenticated principal"
// @Param name path string true "Token name"
// @Param request body httptransport.ChangeTokenStandardRequest true "New CID"
// @Success 200 {object} httptransport.AckResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /tokens/{name}/cid [post]
func (h Handler) ChangeTokenStandardHandler(
	ctx context.Context,
	caller string,
	name string,
	req httptransport.ChangeTokenStandardRequest,
) (httptransport.AckResponse, error) {
	if err := h.Service.ChangeTokenStandard(ctx, caller, name, req.CID); err != nil {
		return httptransport.AckResponse{}, err
	}
	return httptransport.AckResponse{Status: "success"}, nil
}

// @Summary Change token state
// @Description Toggles a created token between active and inactive.
// @Tags token-registry
// @Accept json
// @Produce json
// @Param X-Caller-Id header string true "Authenticated principal"
// @Param name path string true "Token name"
// @Param request body httptransport.ChangeTokenStateRequest true "New state"
// @Success 200 {object} httptransport.AckResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /tokens/{name}/state [post]
func (h Handler) ChangeTokenStateHandler(
	ctx context.Context,
	caller string,
	name string,
	req httptransport.ChangeTokenStateRequest,
) (httptransport.AckResponse, error) {
	if err := h.Service.ChangeTokenState(ctx, caller, name, req.State); err != nil {
		return httptransport.AckResponse{}, err
	}
	return httptransport.AckResponse{Status: "success"}, nil
}

// @Summary Add oracle
// @Tags token-registry
// @Accept json
// @Produce json
// @Param X-Caller-Id header string true "Authenticated principal"
// @Param name path string true "Token name"
// @Param request body httptransport.AddOracleRequest true "Oracle principal"
// @Success 200 {object} httptransport.AckResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /tokens/{name}/oracles [post]
func (h Handler) AddOracleHandler(
	ctx context.Context,
	caller string,
	name string,
	req httptransport.AddOracleRequest,
) (httptransport.AckResponse, error) {
	if err := h.Service.AddOracle(ctx, caller, name, req.Address); err != nil {
		return httptransport.AckResponse{}, err
	}
	return httptransport.AckResponse{Status: "success"}, nil
}

// @Summary Remove oracle
// @Tags token-registry
// @Produce json
// @Param X-Caller-Id header string true "Authenticated principal"
// @Param name path string true "Token name"
// @Param address path string true "Oracle principal"
// @Success 200 {object} httptransport.AckResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /tokens/{name}/oracles/{address} [delete]
func (h Handler) RemoveOracleHandler(
	ctx context.Context,
	caller string,
	name string,
	address string,
) (httptransport.AckResponse, error) {
	if err := h.Service.RemoveOracle(ctx, caller, name, address); err != nil {
		return httptransport.AckResponse{}, err
	}
	return httptransport.AckResponse{Status: "success"}, nil
}

// @Summary List oracles
// @Tags token-registry
// @Produce json
// @Param name path string true "Token name"
// @Success 200 {object} httptransport.OraclesResponse
// @Router /tokens/{name}/oracles [get]
func (h Handler) GetOraclesHandler(ctx context.Context, name string) (httptransport.OraclesResponse, error) {
	oracles, err := h.Service.GetOracles(ctx, name)
	if err != nil {
		return httptransport.OraclesResponse{}, err
	}

	resp := httptransport.OraclesResponse{Status: "success"}
	resp.Data.TokenName = name
	resp.Data.Oracles = oracles
	return resp, nil
}

func tokenResponse(token entities.Token) httptransport.TokenResponse {
	resp := httptransport.TokenResponse{Status: "success"}
	resp.Data.Name = token.Name
	resp.Data.CID = token.CID
	resp.Data.State = string(token.State)
	resp.Data.Created = token.State.Created()
	resp.Data.Owner = token.Owner
	resp.Data.Oracles = token.CloneOracles()
	return resp
}
