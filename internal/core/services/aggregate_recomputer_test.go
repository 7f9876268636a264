package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/buyback-be/internal/core/domain"
	"github.com/ammerola/buyback-be/internal/core/services"
	"github.com/ammerola/buyback-be/test/helpers"
	"github.com/ammerola/buyback-be/test/mocks"
)

func TestAggregateRecomputer_Run(t *testing.T) {
	ctx := context.Background()
	requestID, emptyRequestID := uuid.New(), uuid.New()
	offerID, emptyOfferID := uuid.New(), uuid.New()

	tests := []struct {
		name    string
		queue   func() *services.RecomputeQueue
		setup   func(store *mocks.MockAggregateStore)
		wantErr string
	}{
		{
			name:  "empty_queue_touches_nothing",
			queue: services.NewRecomputeQueue,
			setup: func(*mocks.MockAggregateStore) {},
		},
		{
			name: "requests_without_lines_aggregate_to_zero",
			queue: func() *services.RecomputeQueue {
				q := services.NewRecomputeQueue()
				q.AuditRequest(requestID)
				q.AuditRequest(emptyRequestID)
				return q
			},
			setup: func(store *mocks.MockAggregateStore) {
				store.EXPECT().
					AuditRequestTotals(gomock.Any(), []uuid.UUID{requestID, emptyRequestID}).
					Return([]domain.RequestTotals{
						{AuditRequestID: requestID, Count: 2, ExpectedQuantity: 5, ReceivedQuantity: 3},
					}, nil)
				store.EXPECT().
					UpdateAuditRequestTotals(gomock.Any(), []domain.RequestTotals{
						{AuditRequestID: requestID, Count: 2, ExpectedQuantity: 5, ReceivedQuantity: 3},
						{AuditRequestID: emptyRequestID},
					}).
					Return(nil)
			},
		},
		{
			name: "offers_without_items_aggregate_to_zero",
			queue: func() *services.RecomputeQueue {
				q := services.NewRecomputeQueue()
				q.BuybackOffer(offerID)
				q.BuybackOffer(emptyOfferID)
				return q
			},
			setup: func(store *mocks.MockAggregateStore) {
				found := domain.OfferTotals{
					BuybackOfferID: offerID,
					Count:          1,
					StatePrice:     decimal.NewFromInt(100),
					ConditionPrice: decimal.NewFromInt(80),
					RepairPrice:    decimal.Zero,
				}
				store.EXPECT().
					BuybackOfferTotals(gomock.Any(), []uuid.UUID{offerID, emptyOfferID}).
					Return([]domain.OfferTotals{found}, nil)
				store.EXPECT().
					UpdateBuybackOfferTotals(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, totals []domain.OfferTotals) error {
						require.Len(t, totals, 2)
						assert.Equal(t, found, totals[0])
						assert.Equal(t, emptyOfferID, totals[1].BuybackOfferID)
						assert.Equal(t, 0, totals[1].Count)
						assert.True(t, totals[1].StatePrice.IsZero())
						assert.True(t, totals[1].ConditionPrice.IsZero())
						assert.True(t, totals[1].RepairPrice.IsZero())
						return nil
					})
			},
		},
		{
			name: "validated_offers_buyback_their_devices",
			queue: func() *services.RecomputeQueue {
				q := services.NewRecomputeQueue()
				q.OfferValidated(offerID)
				return q
			},
			setup: func(store *mocks.MockAggregateStore) {
				store.EXPECT().
					MarkOfferDevices(gomock.Any(), []uuid.UUID{offerID}, domain.DeviceBuybacked).
					Return(int64(3), nil)
			},
		},
		{
			name: "request_totals_error_stops_the_run",
			queue: func() *services.RecomputeQueue {
				q := services.NewRecomputeQueue()
				q.AuditRequest(requestID)
				q.BuybackOffer(offerID)
				return q
			},
			setup: func(store *mocks.MockAggregateStore) {
				store.EXPECT().
					AuditRequestTotals(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection reset"))
			},
			wantErr: "failed to aggregate audit requests",
		},
		{
			name: "offer_update_error",
			queue: func() *services.RecomputeQueue {
				q := services.NewRecomputeQueue()
				q.BuybackOffer(offerID)
				return q
			},
			setup: func(store *mocks.MockAggregateStore) {
				store.EXPECT().BuybackOfferTotals(gomock.Any(), gomock.Any()).Return(nil, nil)
				store.EXPECT().
					UpdateBuybackOfferTotals(gomock.Any(), gomock.Any()).
					Return(errors.New("deadlock detected"))
			},
			wantErr: "failed to update buyback offer totals",
		},
		{
			name: "mark_devices_error",
			queue: func() *services.RecomputeQueue {
				q := services.NewRecomputeQueue()
				q.OfferValidated(offerID)
				return q
			},
			setup: func(store *mocks.MockAggregateStore) {
				store.EXPECT().
					MarkOfferDevices(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("timeout"))
			},
			wantErr: "failed to mark offer devices",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockAggregateStore(ctrl)
			tt.setup(store)

			recomputer := services.NewAggregateRecomputer(helpers.TestLogger())
			err := recomputer.Run(ctx, store, tt.queue())

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAggregateRecomputer_NilQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockAggregateStore(ctrl)

	recomputer := services.NewAggregateRecomputer(helpers.TestLogger())
	assert.NoError(t, recomputer.Run(context.Background(), store, nil))
}
