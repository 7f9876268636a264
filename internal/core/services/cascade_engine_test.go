package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/buyback-be/internal/core/domain"
	"github.com/ammerola/buyback-be/internal/core/ports"
	"github.com/ammerola/buyback-be/internal/core/services"
	"github.com/ammerola/buyback-be/test/helpers"
	"github.com/ammerola/buyback-be/test/mocks"
)

// cascade runs mutate and the engine in one memory session without flushing
func (f *fixture) cascade(engine *services.CascadeEngine, mutate func(ctx context.Context, sess ports.Session) error) (*services.RecomputeQueue, error) {
	queue := services.NewRecomputeQueue()
	err := f.store.WithSession(f.ctx, func(ctx context.Context, sess ports.Session) error {
		if err := mutate(ctx, sess); err != nil {
			return err
		}
		return engine.BeforeCommit(ctx, sess, queue)
	})
	return queue, err
}

func newEngine(t *testing.T, rules services.CascadeRules, identity ports.IdentityProvider, refErr error) *services.CascadeEngine {
	t.Helper()
	refs := mocks.NewMockReferenceGenerator(gomock.NewController(t))
	refs.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("REF-1", refErr).AnyTimes()
	return services.NewCascadeEngine(rules, identity, refs, helpers.TestLogger()).
		WithClock(func() time.Time { return fixedNow })
}

func TestCascadeEngine_ReferenceIsKept(t *testing.T) {
	tests := []struct {
		name string
		set  func(o *domain.BuybackOffer)
	}{
		{name: "overwritten", set: func(o *domain.BuybackOffer) { o.Reference = helpers.Ptr("BO-9999-999999") }},
		{name: "cleared", set: func(o *domain.BuybackOffer) { o.Reference = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			offer := f.offer()
			original := *offer.Reference

			_, err := f.cascade(f.engine, func(ctx context.Context, sess ports.Session) error {
				loaded, err := sess.FindBuybackOffer(ctx, offer.ID)
				if err != nil {
					return err
				}
				tt.set(loaded)
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, original, *offer.Reference)
		})
	}
}

func TestCascadeEngine_ReferenceGenerationFails(t *testing.T) {
	f := newFixture(t)
	engine := newEngine(t, services.DefaultCascadeRules(), nil, errors.New("sequence exhausted"))
	offer := helpers.CreateTestBuybackOffer(f.accountID, func(o *domain.BuybackOffer) { o.Reference = nil })

	_, err := f.cascade(engine, func(_ context.Context, sess ports.Session) error {
		sess.Persist(offer)
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate buyback_offer reference")
}

func TestCascadeEngine_AuditItemStaysInItsRequest(t *testing.T) {
	f := newFixture(t)
	item := f.auditedItem(f.request())
	other := f.request()

	_, err := f.cascade(f.engine, func(ctx context.Context, sess ports.Session) error {
		loaded, err := sess.FindAuditItem(ctx, item.ID)
		if err != nil {
			return err
		}
		target, err := sess.FindAuditRequest(ctx, other.ID)
		if err != nil {
			return err
		}
		loaded.AuditRequest = target
		return nil
	})

	assertKind(t, err, domain.ErrKindAuditRequestImmutable)
}

func TestCascadeEngine_ConfiguredClosureRules(t *testing.T) {
	rules := services.DefaultCascadeRules()
	rules.AuditRequest = domain.NewClosureRules(domain.KindAuditRequest, []string{"accepted"}, nil)

	t.Run("empty_request_cannot_be_accepted", func(t *testing.T) {
		f := newFixture(t)
		request := f.request()

		_, err := f.cascade(newEngine(t, rules, nil, nil), func(ctx context.Context, sess ports.Session) error {
			loaded, err := sess.FindAuditRequest(ctx, request.ID)
			if err != nil {
				return err
			}
			loaded.Status = helpers.Ptr("accepted")
			return nil
		})

		assertKind(t, err, domain.ErrKindEmptyValidatedCollection)
	})

	t.Run("accepted_request_is_closed_and_validated", func(t *testing.T) {
		f := newFixture(t)
		request := f.request()
		f.store.Add(helpers.CreateTestAuditRequestItem(request, helpers.Ptr(1), helpers.Ptr(1)))

		_, err := f.cascade(newEngine(t, rules, nil, nil), func(ctx context.Context, sess ports.Session) error {
			loaded, err := sess.FindAuditRequest(ctx, request.ID)
			if err != nil {
				return err
			}
			loaded.Status = helpers.Ptr("accepted")
			return nil
		})
		require.NoError(t, err)

		assert.True(t, request.Closed)
		assert.True(t, request.Validated)
		assert.Equal(t, fixedNow, *request.ReceiptedAt)
	})
}

func TestCascadeEngine_Queue(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *fixture) (func(ctx context.Context, sess ports.Session) error, func(t *testing.T, q *services.RecomputeQueue))
	}{
		{
			name: "new_line_queues_request",
			mutate: func(f *fixture) (func(context.Context, ports.Session) error, func(*testing.T, *services.RecomputeQueue)) {
				request := f.request()
				return func(ctx context.Context, sess ports.Session) error {
						loaded, err := sess.FindAuditRequest(ctx, request.ID)
						if err != nil {
							return err
						}
						sess.Persist(helpers.CreateTestAuditRequestItem(loaded, helpers.Ptr(1), nil))
						return nil
					}, func(t *testing.T, q *services.RecomputeQueue) {
						assert.Equal(t, []uuid.UUID{request.ID}, q.RequestIDs())
						assert.Empty(t, q.OfferIDs())
					}
			},
		},
		{
			name: "moving_item_queues_both_offers",
			mutate: func(f *fixture) (func(context.Context, ports.Session) error, func(*testing.T, *services.RecomputeQueue)) {
				from, to := f.offer(), f.offer()
				item := f.auditedItem(f.request(), func(i *domain.AuditItem) { i.BuybackOffer = from })
				return func(ctx context.Context, sess ports.Session) error {
						loaded, err := sess.FindAuditItem(ctx, item.ID)
						if err != nil {
							return err
						}
						target, err := sess.FindBuybackOffer(ctx, to.ID)
						if err != nil {
							return err
						}
						loaded.BuybackOffer = target
						return nil
					}, func(t *testing.T, q *services.RecomputeQueue) {
						assert.Equal(t, []uuid.UUID{from.ID, to.ID}, q.OfferIDs())
					}
			},
		},
		{
			name: "accepted_offer_queued_as_validated",
			mutate: func(f *fixture) (func(context.Context, ports.Session) error, func(*testing.T, *services.RecomputeQueue)) {
				offer := f.offer(func(o *domain.BuybackOffer) { o.NumberOfItems = 3 })
				return func(ctx context.Context, sess ports.Session) error {
						loaded, err := sess.FindBuybackOffer(ctx, offer.ID)
						if err != nil {
							return err
						}
						loaded.Status = helpers.Ptr("accepted")
						return nil
					}, func(t *testing.T, q *services.RecomputeQueue) {
						assert.Equal(t, []uuid.UUID{offer.ID}, q.ValidatedOfferIDs())
						assert.Equal(t, fixedNow, *offer.ValidatedAt)
					}
			},
		},
		{
			name: "loaded_without_changes_queues_nothing",
			mutate: func(f *fixture) (func(context.Context, ports.Session) error, func(*testing.T, *services.RecomputeQueue)) {
				item := f.auditedItem(f.request())
				return func(ctx context.Context, sess ports.Session) error {
						_, err := sess.FindAuditItem(ctx, item.ID)
						return err
					}, func(t *testing.T, q *services.RecomputeQueue) {
						assert.True(t, q.Empty())
					}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			mutate, check := tt.mutate(f)

			queue, err := f.cascade(f.engine, mutate)
			require.NoError(t, err)
			check(t, queue)
		})
	}
}

func TestCascadeEngine_DeviceStatus(t *testing.T) {
	t.Run("terminated_device_keeps_status", func(t *testing.T) {
		f := newFixture(t)
		request := f.request()
		terminated := fixedNow.Add(-time.Hour)
		device := helpers.CreateTestDevice(f.accountID, func(d *domain.Device) { d.TerminatedAt = &terminated })
		f.store.Add(device)

		_, err := f.cascade(f.engine, func(ctx context.Context, sess ports.Session) error {
			loadedRequest, err := sess.FindAuditRequest(ctx, request.ID)
			if err != nil {
				return err
			}
			loadedDevice, err := sess.FindDevice(ctx, device.ID)
			if err != nil {
				return err
			}
			item := &domain.AuditItem{
				AuditRequest:     loadedRequest,
				Device:           loadedDevice,
				ProductID:        helpers.Ptr(uuid.New()),
				AuditConditionID: helpers.Ptr(uuid.New()),
			}
			item.PrepareForStorage()
			sess.Persist(item)
			return nil
		})
		require.NoError(t, err)

		assert.Equal(t, domain.DeviceInUse, deviceStatus(device))
		assert.NotNil(t, device.LastAuditItem)
	})

	t.Run("buybacked_device_of_validated_offer_is_kept", func(t *testing.T) {
		f := newFixture(t)
		offer := f.offer(func(o *domain.BuybackOffer) {
			o.Status = helpers.Ptr("accepted")
			o.Closed, o.Validated = true, true
		})
		item := f.auditedItem(f.request(), func(i *domain.AuditItem) {
			i.BuybackOffer = offer
			i.Status = status(domain.AuditItemValorised)
		})
		item.Device.Status = helpers.Ptr(domain.DeviceBuybacked)

		_, err := f.cascade(f.engine, func(ctx context.Context, sess ports.Session) error {
			loaded, err := sess.FindAuditItem(ctx, item.ID)
			if err != nil {
				return err
			}
			loaded.Comment = helpers.Ptr("screen scratched")
			return nil
		})
		require.NoError(t, err)

		assert.Equal(t, domain.DeviceBuybacked, deviceStatus(item.Device))
	})

	t.Run("removed_item_releases_device", func(t *testing.T) {
		f := newFixture(t)
		item := f.auditedItem(f.request())
		device := item.Device

		queue, err := f.cascade(f.engine, func(ctx context.Context, sess ports.Session) error {
			loaded, err := sess.FindAuditItem(ctx, item.ID)
			if err != nil {
				return err
			}
			sess.Remove(loaded)
			return nil
		})
		require.NoError(t, err)

		assert.Nil(t, device.LastAuditItem)
		assert.Equal(t, domain.DeviceInUse, deviceStatus(device))
		assert.True(t, queue.Empty())
	})
}

func TestCascadeEngine_RepairFollowsDevice(t *testing.T) {
	f := newFixture(t)
	item := f.auditedItem(f.request())
	repair := helpers.CreateTestRepair(f.accountID, func(r *domain.Repair) { r.Device = item.Device })
	domain.AttachRepair(item, repair)
	f.store.Add(repair)
	replacement := helpers.CreateTestDevice(f.accountID)
	f.store.Add(replacement)

	_, err := f.cascade(f.engine, func(ctx context.Context, sess ports.Session) error {
		loaded, err := sess.FindAuditItem(ctx, item.ID)
		if err != nil {
			return err
		}
		device, err := sess.FindDevice(ctx, replacement.ID)
		if err != nil {
			return err
		}
		loaded.Device = device
		return nil
	})
	require.NoError(t, err)

	assert.Same(t, replacement, repair.Device)
	assert.Equal(t, *f.module.RepairPriceListID, *repair.PriceListID)
}

func TestCascadeEngine_AuditorRequiresIdentity(t *testing.T) {
	f := newFixture(t)
	item := f.auditedItem(f.request())
	engine := newEngine(t, services.DefaultCascadeRules(), nil, nil)

	_, err := f.cascade(engine, func(ctx context.Context, sess ports.Session) error {
		loaded, err := sess.FindAuditItem(ctx, item.ID)
		if err != nil {
			return err
		}
		loaded.Comment = helpers.Ptr("checked twice")
		return nil
	})
	require.NoError(t, err)
	assert.Nil(t, item.AuditorID)
}
