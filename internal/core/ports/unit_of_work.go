// internal/core/ports/unit_of_work.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/ammerola/buyback-be/internal/core/domain"
)

// UnitOfWork exposes the pending changes of one transaction to the cascade
// engine. It is implemented by uow.Tracker and embedded by the session adapter.
type UnitOfWork interface {
	PendingInserts() []domain.Entity
	PendingUpdates() []domain.Entity
	PendingDeletes() []domain.Entity
	ChangedFields(e domain.Entity) domain.ChangeSet
	RecomputeChangeSet(e domain.Entity)
	Persist(e domain.Entity)
	Remove(e domain.Entity)
}

// ModuleFinder resolves the buyback module configured for an account
type ModuleFinder interface {
	FindModuleByAccount(ctx context.Context, accountID uuid.UUID) (*domain.BuybackModule, error)
}

// CascadeSession is what the cascade engine needs from a session
type CascadeSession interface {
	UnitOfWork
	ModuleFinder
}

// AuditItemFilter narrows audit item selections made by offer operations
type AuditItemFilter struct {
	AccountID      *uuid.UUID
	BuybackOfferID *uuid.UUID
	Status         domain.AuditItemStatus
	WithoutOffer   bool
	Products       []ProductFilter
	ConditionIDs   []uuid.UUID
	SupplierOrders []string
	AuditItemIDs   []uuid.UUID
	Repairs        RepairFilter
	// WithCondition skips items without an audit condition
	WithCondition bool
	// WithSupplierOrder skips items whose request has no supplier order number
	WithSupplierOrder bool
}

// ProductFilter matches a product and, optionally, one of its combinations
type ProductFilter struct {
	ProductID     uuid.UUID
	CombinationID *uuid.UUID
}

// RepairFilter restricts audit items by the presence of a repair
type RepairFilter string

// Repair filters
const (
	RepairsAll     RepairFilter = "all"
	RepairsWith    RepairFilter = "with"
	RepairsWithout RepairFilter = "without"
)

// EntityFinder loads entities into the session's identity map
type EntityFinder interface {
	FindAuditRequest(ctx context.Context, id uuid.UUID) (*domain.AuditRequest, error)
	FindAuditRequestItem(ctx context.Context, id uuid.UUID) (*domain.AuditRequestItem, error)
	FindAuditItem(ctx context.Context, id uuid.UUID) (*domain.AuditItem, error)
	FindBuybackOffer(ctx context.Context, id uuid.UUID) (*domain.BuybackOffer, error)
	FindDevice(ctx context.Context, id uuid.UUID) (*domain.Device, error)
	FindRepair(ctx context.Context, id uuid.UUID) (*domain.Repair, error)
	FindAuditCondition(ctx context.Context, id uuid.UUID) (*domain.AuditCondition, error)
	FindAuditItems(ctx context.Context, filter AuditItemFilter) ([]*domain.AuditItem, error)
	FindAuditItemsByRepairs(ctx context.Context, repairIDs []uuid.UUID) ([]*domain.AuditItem, error)
}

// Session is a transactional unit of work with loaders, a flush step and
// access to set-based aggregate writes.
type Session interface {
	CascadeSession
	EntityFinder
	Flush(ctx context.Context) error
	Aggregates() AggregateStore
}

// SessionFactory runs fn inside one database transaction. The transaction
// commits only if fn returns nil.
type SessionFactory interface {
	WithSession(ctx context.Context, fn func(ctx context.Context, s Session) error) error
}

// AggregateStore issues grouped aggregate reads and bulk, non-cascading
// writes for parent entities.
type AggregateStore interface {
	AuditRequestTotals(ctx context.Context, ids []uuid.UUID) ([]domain.RequestTotals, error)
	UpdateAuditRequestTotals(ctx context.Context, totals []domain.RequestTotals) error
	BuybackOfferTotals(ctx context.Context, ids []uuid.UUID) ([]domain.OfferTotals, error)
	UpdateBuybackOfferTotals(ctx context.Context, totals []domain.OfferTotals) error
	MarkOfferDevices(ctx context.Context, offerIDs []uuid.UUID, status domain.DeviceStatus) (int64, error)
}
