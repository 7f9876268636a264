package services_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/buyback-be/internal/core/domain"
	"github.com/ammerola/buyback-be/internal/core/services"
	"github.com/ammerola/buyback-be/test/helpers"
	"github.com/ammerola/buyback-be/test/mocks"
)

var fixedNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

// fixture wires a BuybackService over an in-memory store. Tasks and archive
// expectations are left to each test.
type fixture struct {
	ctx       context.Context
	store     *helpers.MemoryStore
	engine    *services.CascadeEngine
	service   *services.BuybackService
	tasks     *mocks.MockTaskEnqueuer
	archive   *mocks.MockOfferArchive
	accountID uuid.UUID
	actorID   uuid.UUID
	module    *domain.BuybackModule
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		ctx:       context.Background(),
		store:     helpers.NewMemoryStore(),
		tasks:     mocks.NewMockTaskEnqueuer(ctrl),
		archive:   mocks.NewMockOfferArchive(ctrl),
		accountID: uuid.New(),
		actorID:   uuid.New(),
	}
	f.module = helpers.CreateTestModule(f.accountID)
	f.store.Add(f.module)

	identity := mocks.NewMockIdentityProvider(ctrl)
	identity.EXPECT().CurrentActor(gomock.Any()).Return(&f.actorID).AnyTimes()

	var mu sync.Mutex
	counters := map[domain.EntityKind]int{}
	refs := mocks.NewMockReferenceGenerator(ctrl)
	refs.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, kind domain.EntityKind) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			counters[kind]++
			prefix := "AR"
			if kind == domain.KindBuybackOffer {
				prefix = "BO"
			}
			return fmt.Sprintf("%s-2026-%06d", prefix, counters[kind]), nil
		}).AnyTimes()

	logger := helpers.TestLogger()
	f.engine = services.NewCascadeEngine(services.DefaultCascadeRules(), identity, refs, logger).
		WithClock(func() time.Time { return fixedNow })
	f.service = services.NewBuybackService(
		f.store,
		f.engine,
		services.NewAggregateRecomputer(logger),
		f.tasks,
		f.archive,
		services.BuybackOptions{},
		logger,
	)
	return f
}

// auditedItem stores an audited item with its own device inside request
func (f *fixture) auditedItem(request *domain.AuditRequest, overrides ...func(*domain.AuditItem)) *domain.AuditItem {
	device := helpers.CreateTestDevice(f.accountID, func(d *domain.Device) {
		status := domain.DeviceInAudit
		d.Status = &status
	})
	item := helpers.CreateTestAuditItem(request, append([]func(*domain.AuditItem){
		func(i *domain.AuditItem) { i.Device = device },
	}, overrides...)...)
	device.LastAuditItem = item
	device.ProductID = helpers.Ptr(*item.ProductID)
	device.AuditConditionID = helpers.Ptr(*item.AuditConditionID)
	f.store.Add(item, device)
	return item
}

// request stores an audit request of the fixture account
func (f *fixture) request(overrides ...func(*domain.AuditRequest)) *domain.AuditRequest {
	request := helpers.CreateTestAuditRequest(f.accountID, append([]func(*domain.AuditRequest){
		func(r *domain.AuditRequest) { r.Reference = helpers.Ptr("AR-2025-000042") },
	}, overrides...)...)
	f.store.Add(request)
	return request
}

// offer stores a buyback offer of the fixture account
func (f *fixture) offer(overrides ...func(*domain.BuybackOffer)) *domain.BuybackOffer {
	offer := helpers.CreateTestBuybackOffer(f.accountID, overrides...)
	f.store.Add(offer)
	return offer
}
