package httpadapter

import (
	"context"
	"log/slog"

	"chainreputation/contexts/reputation/balance-ledger/application"
	httptransport "chainreputation/contexts/reputation/balance-ledger/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// @Summary Issue reputation
// @Description Credits the recipient under the calling issuer's scope.
// @Tags balance-ledger
// @Accept json
// @Produce json
// @Param X-Caller-Id header string true "Issuing principal (token owner or oracle)"
// @Param name path string true "Token name"
// @Param request body httptransport.IssueRequest true "Recipient and amount"
// @Success 200 {object} httptransport.IssueResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /tokens/{name}/issue [post]
func (h Handler) IssueHandler(
	ctx context.Context,
	caller string,
	tokenName string,
	req httptransport.IssueRequest,
) (httptransport.IssueResponse, error) {
	balance, err := h.Service.Issue(ctx, caller, tokenName, req.To, req.Amount)
	if err != nil {
		return httptransport.IssueResponse{}, err
	}

	resp := httptransport.IssueResponse{Status: "success"}
	resp.Data.TokenName = tokenName
	resp.Data.To = req.To
	resp.Data.Amount = req.Amount
	resp.Data.Balance = balance
	return resp, nil
}

// @Summary Burn reputation
// @Description Debits the holder under the calling issuer's scope, clamping at zero.
// @Tags balance-ledger
// @Accept json
// @Produce json
// @Param X-Caller-Id header string true "Issuing principal (token owner or oracle)"
// @Param name path string true "Token name"
// @Param request body httptransport.BurnRequest true "Holder and amount"
// @Success 200 {object} httptransport.BurnResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /tokens/{name}/burn [post]
func (h Handler) BurnHandler(
	ctx context.Context,
	caller string,
	tokenName string,
	req httptransport.BurnRequest,
) (httptransport.BurnResponse, error) {
	burned, err := h.Service.Burn(ctx, caller, tokenName, req.From, req.Amount)
	if err != nil {
		return httptransport.BurnResponse{}, err
	}

	resp := httptransport.BurnResponse{Status: "success"}
	resp.Data.TokenName = tokenName
	resp.Data.From = req.From
	resp.Data.Requested = req.Amount
	resp.Data.Burned = burned
	return resp, nil
}

// @Summary Read balance
// @Description Without an issuer filter this is the true balance: the sum across all issuers.
// @Tags balance-ledger
// @Produce json
// @Param account path string true "Account principal"
// @Param name path string true "Token name"
// @Param issuer query string false "Issuer principal for an issuer-scoped balance"
// @Success 200 {object} httptransport.BalanceResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /balances/{account}/{name} [get]
func (h Handler) BalanceHandler(
	ctx context.Context,
	account string,
	tokenName string,
	issuer string,
) (httptransport.BalanceResponse, error) {
	var (
		balance uint64
		err     error
	)
	if issuer == "" {
		balance, err = h.Service.TrueBalanceOf(ctx, account, tokenName)
	} else {
		balance, err = h.Service.BalanceOf(ctx, account, issuer, tokenName)
	}
	if err != nil {
		return httptransport.BalanceResponse{}, err
	}

	resp := httptransport.BalanceResponse{Status: "success"}
	resp.Data.Account = account
	resp.Data.Issuer = issuer
	resp.Data.TokenName = tokenName
	resp.Data.Balance = balance
	return resp, nil
}
