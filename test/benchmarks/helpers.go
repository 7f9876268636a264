// test/benchmarks/helpers.go
package benchmarks

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ammerola/buyback-be/internal/core/domain"
	"github.com/ammerola/buyback-be/internal/core/services"
	"github.com/ammerola/buyback-be/test/helpers"
)

// staticIdentity always reports the same actor
type staticIdentity uuid.UUID

func (s staticIdentity) CurrentActor(context.Context) *uuid.UUID {
	id := uuid.UUID(s)
	return &id
}

// sequenceReferences hands out increasing references without Redis
type sequenceReferences struct {
	n atomic.Int64
}

func (r *sequenceReferences) Generate(_ context.Context, kind domain.EntityKind) (string, error) {
	prefix := "AR"
	if kind == domain.KindBuybackOffer {
		prefix = "BO"
	}
	return fmt.Sprintf("%s-%d-%06d", prefix, time.Now().Year(), r.n.Add(1)), nil
}

// discardTasks drops post-commit tasks
type discardTasks struct{}

func (discardTasks) EnqueueOfferValidated(context.Context, uuid.UUID) error { return nil }

func (discardTasks) EnqueueReconcile(context.Context, []uuid.UUID, []uuid.UUID) error { return nil }

// Bench is a buyback service over an in-memory store
type Bench struct {
	Store     *helpers.MemoryStore
	Service   *services.BuybackService
	AccountID uuid.UUID
}

// NewBench wires a service with an enabled module for one account
func NewBench() *Bench {
	accountID := uuid.New()
	store := helpers.NewMemoryStore().Add(helpers.CreateTestModule(accountID))
	logger := helpers.TestLogger()

	engine := services.NewCascadeEngine(services.DefaultCascadeRules(), staticIdentity(uuid.New()), &sequenceReferences{}, logger)
	return &Bench{
		Store:     store,
		AccountID: accountID,
		Service: services.NewBuybackService(
			store,
			engine,
			services.NewAggregateRecomputer(logger),
			discardTasks{},
			nil,
			services.BuybackOptions{},
			logger,
		),
	}
}

// SeedAuditedItems stores n audited items, each with its own device, in a
// new audit request.
func (b *Bench) SeedAuditedItems(n int) *domain.AuditRequest {
	request := helpers.CreateTestAuditRequest(b.AccountID)
	b.Store.Add(request)
	for i := 0; i < n; i++ {
		device := helpers.CreateTestDevice(b.AccountID, func(d *domain.Device) {
			status := domain.DeviceInAudit
			d.Status = &status
		})
		item := helpers.CreateTestAuditItem(request, func(it *domain.AuditItem) {
			it.Device = device
			it.CreatedAt = it.CreatedAt.Add(time.Duration(i) * time.Millisecond)
		})
		device.LastAuditItem = item
		b.Store.Add(item, device)
	}
	return request
}
