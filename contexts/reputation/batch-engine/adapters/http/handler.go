package httpadapter

import (
	"context"
	"log/slog"

	"chainreputation/contexts/reputation/batch-engine/application/commands"
	httptransport "chainreputation/contexts/reputation/batch-engine/transport/http"
)

type Handler struct {
	ApplyStandard  commands.ApplyStandardUseCase
	ApplyBatch     commands.ApplyBatchUseCase
	ApplyUserBatch commands.ApplyUserBatchUseCase
	Logger         *slog.Logger
}

// @Summary Apply standard
// @Description Applies one standard's signed delta to one account.
// @Tags batch-engine
// @Accept json
// @Produce json
// @Param X-Caller-Id header string true "Authenticated principal"
// @Param request body httptransport.ApplyStandardRequest true "Target and standard"
// @Success 200 {object} httptransport.AckResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 422 {object} httptransport.ErrorResponse
// @Router /updates/standard [post]
func (h Handler) ApplyStandardHandler(
	ctx context.Context,
	caller string,
	req httptransport.ApplyStandardRequest,
) (httptransport.AckResponse, error) {
	err := h.ApplyStandard.Execute(ctx, commands.ApplyStandardCommand{
		Caller:       caller,
		To:           req.To,
		StandardName: req.StandardName,
	})
	if err != nil {
		return httptransport.AckResponse{}, err
	}
	return httptransport.AckResponse{Status: "success"}, nil
}

// @Summary Apply batch
// @Description Applies a list of (account, standard) entries atomically.
// @Tags batch-engine
// @Accept json
// @Produce json
// @Param X-Caller-Id header string true "Authenticated principal"
// @Param request body httptransport.ApplyBatchRequest true "Batch entries"
// @Success 200 {object} httptransport.AckResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 422 {object} httptransport.ErrorResponse
// @Router /updates/batch [post]
func (h Handler) ApplyBatchHandler(
	ctx context.Context,
	caller string,
	req httptransport.ApplyBatchRequest,
) (httptransport.AckResponse, error) {
	entries := make([]commands.BatchEntry, 0, len(req.Entries))
	for _, entry := range req.Entries {
		entries = append(entries, commands.BatchEntry{
			To:           entry.To,
			StandardName: entry.StandardName,
		})
	}
	err := h.ApplyBatch.Execute(ctx, commands.ApplyBatchCommand{
		Caller:  caller,
		Entries: entries,
	})
	if err != nil {
		return httptransport.AckResponse{}, err
	}
	return httptransport.AckResponse{Status: "success"}, nil
}

// @Summary Apply user batch
// @Description Nets repeated standards into one move per (account, standard) pair.
// @Tags batch-engine
// @Accept json
// @Produce json
// @Param X-Caller-Id header string true "Authenticated principal"
// @Param request body httptransport.ApplyUserBatchRequest true "Per-user batch entries"
// @Success 200 {object} httptransport.AckResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 422 {object} httptransport.ErrorResponse
// @Router /updates/user-batch [post]
func (h Handler) ApplyUserBatchHandler(
	ctx context.Context,
	caller string,
	req httptransport.ApplyUserBatchRequest,
) (httptransport.AckResponse, error) {
	entries := make([]commands.UserBatchEntry, 0, len(req.Entries))
	for _, entry := range req.Entries {
		counts := make([]commands.StandardCount, 0, len(entry.Counts))
		for _, repeat := range entry.Counts {
			counts = append(counts, commands.StandardCount{
				StandardName: repeat.StandardName,
				Count:        repeat.Count,
			})
		}
		entries = append(entries, commands.UserBatchEntry{
			To:     entry.To,
			Counts: counts,
		})
	}
	err := h.ApplyUserBatch.Execute(ctx, commands.ApplyUserBatchCommand{
		Caller:  caller,
		Entries: entries,
	})
	if err != nil {
		return httptransport.AckResponse{}, err
	}
	return httptransport.AckResponse{Status: "success"}, nil
}
