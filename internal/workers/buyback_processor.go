// internal/workers/buyback_processor.go
package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/ammerola/buyback-be/internal/core/domain"
	"github.com/ammerola/buyback-be/internal/core/ports"
	"github.com/ammerola/buyback-be/internal/pkg/logger"
)

// BuybackProcessor handles the background tasks of the buyback workflow
type BuybackProcessor struct {
	service ports.BuybackService
	logger  *slog.Logger
}

// NewBuybackProcessor creates a new buyback processor
func NewBuybackProcessor(service ports.BuybackService, logger *slog.Logger) *BuybackProcessor {
	return &BuybackProcessor{
		service: service,
		logger:  logger.With(slog.String("processor", "buyback")),
	}
}

// Register adds the processor's handlers to mux
func (p *BuybackProcessor) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeOfferValidated, p.ArchiveValidatedOffer)
	mux.HandleFunc(TypeReconcileAggregates, p.ReconcileAggregates)
	mux.HandleFunc(TypeRepairPricesUpdated, p.SyncRepairPrices)
}

// ArchiveValidatedOffer stores a snapshot of a validated offer
func (p *BuybackProcessor) ArchiveValidatedOffer(ctx context.Context, t *asynq.Task) error {
	var payload OfferValidatedPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w: %w", err, asynq.SkipRetry)
	}
	ctx = taskContext(ctx, t)

	key, err := p.service.ArchiveOffer(ctx, payload.BuybackOfferID)
	if err != nil {
		return p.fail(ctx, t, err)
	}

	if key != "" {
		if w := t.ResultWriter(); w != nil {
			_, _ = w.Write([]byte(key))
		}
	}
	return nil
}

// ReconcileAggregates recomputes the listed request and offer aggregates
func (p *BuybackProcessor) ReconcileAggregates(ctx context.Context, t *asynq.Task) error {
	var payload ReconcilePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w: %w", err, asynq.SkipRetry)
	}
	ctx = taskContext(ctx, t)

	if err := p.service.ReconcileAggregates(ctx, payload.AuditRequestIDs, payload.BuybackOfferIDs); err != nil {
		return p.fail(ctx, t, err)
	}
	return nil
}

// SyncRepairPrices applies repair prices to the linked audit items
func (p *BuybackProcessor) SyncRepairPrices(ctx context.Context, t *asynq.Task) error {
	var payload RepairPricesPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w: %w", err, asynq.SkipRetry)
	}
	ctx = taskContext(ctx, t)

	updated, err := p.service.SyncRepairPrices(ctx, payload.Prices)
	if err != nil {
		return p.fail(ctx, t, err)
	}

	p.logger.InfoContext(ctx, "repair prices synced",
		slog.Int("prices", len(payload.Prices)),
		slog.Int("audit_items_updated", updated))
	return nil
}

// fail stops retries for errors a retry cannot fix
func (p *BuybackProcessor) fail(ctx context.Context, t *asynq.Task, err error) error {
	if _, ok := domain.AsValidationError(err); ok || errors.Is(err, domain.ErrNotFound) {
		p.logger.WarnContext(ctx, "task rejected",
			slog.String("type", t.Type()),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}
	return err
}

func taskContext(ctx context.Context, t *asynq.Task) context.Context {
	id, _ := asynq.GetTaskID(ctx)
	return logger.WithTask(ctx, t.Type(), id)
}
