// internal/core/services/aggregate_recomputer.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammerola/buyback-be/internal/core/domain"
	"github.com/ammerola/buyback-be/internal/core/ports"
)

// AggregateRecomputer rebuilds parent aggregates from their children after
// the session has been flushed. Running it twice with the same queue writes
// the same values.
type AggregateRecomputer struct {
	logger *slog.Logger
}

// NewAggregateRecomputer creates a new aggregate recomputer
func NewAggregateRecomputer(logger *slog.Logger) *AggregateRecomputer {
	return &AggregateRecomputer{
		logger: logger.With(slog.String("service", "aggregates")),
	}
}

// Run recomputes every queued request and offer, then marks the devices of
// validated offers as buybacked.
func (r *AggregateRecomputer) Run(ctx context.Context, store ports.AggregateStore, queue *RecomputeQueue) error {
	if queue == nil || queue.Empty() {
		return nil
	}

	if ids := queue.RequestIDs(); len(ids) > 0 {
		if err := r.recomputeRequests(ctx, store, ids); err != nil {
			return err
		}
	}

	if ids := queue.OfferIDs(); len(ids) > 0 {
		if err := r.recomputeOffers(ctx, store, ids); err != nil {
			return err
		}
	}

	if ids := queue.ValidatedOfferIDs(); len(ids) > 0 {
		marked, err := store.MarkOfferDevices(ctx, ids, domain.DeviceBuybacked)
		if err != nil {
			return fmt.Errorf("failed to mark offer devices: %w", err)
		}
		r.logger.InfoContext(ctx, "devices buybacked",
			slog.Int("offers", len(ids)),
			slog.Int64("devices", marked))
	}

	return nil
}

func (r *AggregateRecomputer) recomputeRequests(ctx context.Context, store ports.AggregateStore, ids []uuid.UUID) error {
	found, err := store.AuditRequestTotals(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to aggregate audit requests: %w", err)
	}

	byID := make(map[uuid.UUID]domain.RequestTotals, len(found))
	for _, t := range found {
		byID[t.AuditRequestID] = t
	}

	// Requests without line items aggregate to zero
	totals := make([]domain.RequestTotals, 0, len(ids))
	for _, id := range ids {
		t, ok := byID[id]
		if !ok {
			t = domain.RequestTotals{AuditRequestID: id}
		}
		totals = append(totals, t)
	}

	if err := store.UpdateAuditRequestTotals(ctx, totals); err != nil {
		return fmt.Errorf("failed to update audit request totals: %w", err)
	}

	r.logger.DebugContext(ctx, "audit request totals updated", slog.Int("count", len(totals)))
	return nil
}

func (r *AggregateRecomputer) recomputeOffers(ctx context.Context, store ports.AggregateStore, ids []uuid.UUID) error {
	found, err := store.BuybackOfferTotals(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to aggregate buyback offers: %w", err)
	}

	byID := make(map[uuid.UUID]domain.OfferTotals, len(found))
	for _, t := range found {
		byID[t.BuybackOfferID] = t
	}

	totals := make([]domain.OfferTotals, 0, len(ids))
	for _, id := range ids {
		t, ok := byID[id]
		if !ok {
			t = domain.OfferTotals{
				BuybackOfferID: id,
				StatePrice:     decimal.Zero,
				ConditionPrice: decimal.Zero,
				RepairPrice:    decimal.Zero,
			}
		}
		totals = append(totals, t)
	}

	if err := store.UpdateBuybackOfferTotals(ctx, totals); err != nil {
		return fmt.Errorf("failed to update buyback offer totals: %w", err)
	}

	r.logger.DebugContext(ctx, "buyback offer totals updated", slog.Int("count", len(totals)))
	return nil
}
