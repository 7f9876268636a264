// internal/workers/tasks.go
package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/ammerola/buyback-be/internal/core/ports"
)

const (
	TypeOfferValidated      = "buyback:offer_validated"
	TypeReconcileAggregates = "buyback:reconcile_aggregates"
	TypeRepairPricesUpdated = "repair:prices_updated"
)

// Queue names
const (
	QueueDefault = "default"
	QueueLow     = "low"
)

// OfferValidatedPayload identifies an offer that just got validated
type OfferValidatedPayload struct {
	BuybackOfferID uuid.UUID `json:"buyback_offer_id"`
}

// ReconcilePayload lists the aggregates to recompute
type ReconcilePayload struct {
	AuditRequestIDs []uuid.UUID `json:"audit_request_ids,omitempty"`
	BuybackOfferIDs []uuid.UUID `json:"buyback_offer_ids,omitempty"`
}

// RepairPricesPayload carries prices published by the repair workflow
type RepairPricesPayload struct {
	Prices []ports.RepairPrice `json:"prices"`
}

// Enqueuer is the part of asynq.Client used to schedule tasks
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// TaskEnqueuer schedules buyback tasks on asynq
type TaskEnqueuer struct {
	client Enqueuer
	logger *slog.Logger
}

var _ ports.TaskEnqueuer = (*TaskEnqueuer)(nil)

// NewTaskEnqueuer creates an enqueuer over an asynq client
func NewTaskEnqueuer(client Enqueuer, logger *slog.Logger) *TaskEnqueuer {
	return &TaskEnqueuer{
		client: client,
		logger: logger.With(slog.String("component", "task_enqueuer")),
	}
}

// EnqueueOfferValidated schedules the archive of a validated offer. The task
// ID is derived from the offer; enqueueing it again while the previous task
// is pending or retained is a no-op.
func (e *TaskEnqueuer) EnqueueOfferValidated(ctx context.Context, offerID uuid.UUID) error {
	return e.enqueue(ctx, TypeOfferValidated, OfferValidatedPayload{BuybackOfferID: offerID},
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(5),
		asynq.TaskID(TypeOfferValidated+":"+offerID.String()),
		asynq.Retention(24*time.Hour))
}

// EnqueueReconcile schedules an aggregate recompute
func (e *TaskEnqueuer) EnqueueReconcile(ctx context.Context, requestIDs, offerIDs []uuid.UUID) error {
	return e.enqueue(ctx, TypeReconcileAggregates, ReconcilePayload{
		AuditRequestIDs: requestIDs,
		BuybackOfferIDs: offerIDs,
	}, asynq.Queue(QueueLow), asynq.MaxRetry(3))
}

// EnqueueRepairPrices schedules repair price propagation
func (e *TaskEnqueuer) EnqueueRepairPrices(ctx context.Context, prices []ports.RepairPrice) error {
	return e.enqueue(ctx, TypeRepairPricesUpdated, RepairPricesPayload{Prices: prices},
		asynq.Queue(QueueDefault), asynq.MaxRetry(3))
}

func (e *TaskEnqueuer) enqueue(ctx context.Context, taskType string, payload interface{}, opts ...asynq.Option) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", taskType, err)
	}

	info, err := e.client.EnqueueContext(ctx, asynq.NewTask(taskType, b), opts...)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			e.logger.DebugContext(ctx, "task already scheduled", slog.String("type", taskType))
			return nil
		}
		return fmt.Errorf("failed to enqueue %s: %w", taskType, err)
	}

	e.logger.InfoContext(ctx, "task enqueued",
		slog.String("type", taskType),
		slog.String("task_id", info.ID),
		slog.String("queue", info.Queue))
	return nil
}
