package workers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/buyback-be/internal/core/ports"
	"github.com/ammerola/buyback-be/internal/workers"
	"github.com/ammerola/buyback-be/test/helpers"
)

type fakeClient struct {
	tasks []*asynq.Task
	opts  [][]asynq.Option
	err   error
}

func (c *fakeClient) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.tasks = append(c.tasks, task)
	c.opts = append(c.opts, opts)
	return &asynq.TaskInfo{ID: uuid.NewString(), Queue: workers.QueueDefault}, nil
}

func optionValue(opts []asynq.Option, typ asynq.OptionType) interface{} {
	for _, o := range opts {
		if o.Type() == typ {
			return o.Value()
		}
	}
	return nil
}

func TestTaskEnqueuer_EnqueueOfferValidated(t *testing.T) {
	client := &fakeClient{}
	enqueuer := workers.NewTaskEnqueuer(client, helpers.TestLogger())
	offerID := uuid.New()

	require.NoError(t, enqueuer.EnqueueOfferValidated(context.Background(), offerID))

	require.Len(t, client.tasks, 1)
	assert.Equal(t, workers.TypeOfferValidated, client.tasks[0].Type())

	var payload workers.OfferValidatedPayload
	require.NoError(t, json.Unmarshal(client.tasks[0].Payload(), &payload))
	assert.Equal(t, offerID, payload.BuybackOfferID)
	assert.Equal(t, workers.TypeOfferValidated+":"+offerID.String(), optionValue(client.opts[0], asynq.TaskIDOpt))
	assert.Equal(t, workers.QueueDefault, optionValue(client.opts[0], asynq.QueueOpt))
}

func TestTaskEnqueuer_EnqueueReconcile(t *testing.T) {
	client := &fakeClient{}
	enqueuer := workers.NewTaskEnqueuer(client, helpers.TestLogger())
	requestIDs := []uuid.UUID{uuid.New()}

	require.NoError(t, enqueuer.EnqueueReconcile(context.Background(), requestIDs, nil))

	require.Len(t, client.tasks, 1)
	var payload workers.ReconcilePayload
	require.NoError(t, json.Unmarshal(client.tasks[0].Payload(), &payload))
	assert.Equal(t, requestIDs, payload.AuditRequestIDs)
	assert.Empty(t, payload.BuybackOfferIDs)
	assert.Equal(t, workers.QueueLow, optionValue(client.opts[0], asynq.QueueOpt))
}

func TestTaskEnqueuer_EnqueueRepairPrices(t *testing.T) {
	client := &fakeClient{}
	enqueuer := workers.NewTaskEnqueuer(client, helpers.TestLogger())
	prices := []ports.RepairPrice{{RepairID: uuid.New(), Price: decimal.NewFromInt(25)}}

	require.NoError(t, enqueuer.EnqueueRepairPrices(context.Background(), prices))

	require.Len(t, client.tasks, 1)
	assert.Equal(t, workers.TypeRepairPricesUpdated, client.tasks[0].Type())
}

func TestTaskEnqueuer_Errors(t *testing.T) {
	tests := []struct {
		name      string
		clientErr error
		wantErr   bool
	}{
		{name: "duplicate_task_is_ignored", clientErr: asynq.ErrTaskIDConflict, wantErr: false},
		{name: "redis_failure_is_returned", clientErr: errors.New("dial tcp: connection refused"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enqueuer := workers.NewTaskEnqueuer(&fakeClient{err: tt.clientErr}, helpers.TestLogger())

			err := enqueuer.EnqueueOfferValidated(context.Background(), uuid.New())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
