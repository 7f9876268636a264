// test/helpers/memory_session.go
package helpers

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammerola/buyback-be/internal/core/domain"
	"github.com/ammerola/buyback-be/internal/core/ports"
	"github.com/ammerola/buyback-be/internal/core/uow"
)

// MemoryStore is an in-memory SessionFactory. Sessions hand out the stored
// instances, so a failed commit is not rolled back.
type MemoryStore struct {
	mu         sync.Mutex
	Requests   map[uuid.UUID]*domain.AuditRequest
	Lines      map[uuid.UUID]*domain.AuditRequestItem
	Items      map[uuid.UUID]*domain.AuditItem
	Offers     map[uuid.UUID]*domain.BuybackOffer
	Devices    map[uuid.UUID]*domain.Device
	Repairs    map[uuid.UUID]*domain.Repair
	Conditions map[uuid.UUID]*domain.AuditCondition
	Modules    map[uuid.UUID]*domain.BuybackModule
	Sessions   int
	Flushes    int
}

var _ ports.SessionFactory = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		Requests:   make(map[uuid.UUID]*domain.AuditRequest),
		Lines:      make(map[uuid.UUID]*domain.AuditRequestItem),
		Items:      make(map[uuid.UUID]*domain.AuditItem),
		Offers:     make(map[uuid.UUID]*domain.BuybackOffer),
		Devices:    make(map[uuid.UUID]*domain.Device),
		Repairs:    make(map[uuid.UUID]*domain.Repair),
		Conditions: make(map[uuid.UUID]*domain.AuditCondition),
		Modules:    make(map[uuid.UUID]*domain.BuybackModule),
	}
}

// Add stores entities, modules and conditions as already persisted
func (m *MemoryStore) Add(values ...any) *MemoryStore {
	for _, v := range values {
		switch e := v.(type) {
		case *domain.AuditRequest:
			m.Requests[e.ID] = e
			for _, line := range e.Items {
				m.Lines[line.ID] = line
			}
		case *domain.AuditRequestItem:
			m.Lines[e.ID] = e
		case *domain.AuditItem:
			m.Items[e.ID] = e
		case *domain.BuybackOffer:
			m.Offers[e.ID] = e
		case *domain.Device:
			m.Devices[e.ID] = e
		case *domain.Repair:
			m.Repairs[e.ID] = e
		case *domain.AuditCondition:
			m.Conditions[e.ID] = e
		case *domain.BuybackModule:
			m.Modules[e.AccountID] = e
		default:
			panic(fmt.Sprintf("memory store: unsupported value %T", v))
		}
	}
	return m
}

// WithSession runs fn with a fresh session. Sessions are serialized.
func (m *MemoryStore) WithSession(ctx context.Context, fn func(ctx context.Context, s ports.Session) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Sessions++
	sess := &MemorySession{Tracker: uow.NewTracker(), store: m}
	return fn(ctx, sess)
}

// MemorySession implements ports.Session over a MemoryStore
type MemorySession struct {
	*uow.Tracker
	store *MemoryStore
}

var _ ports.Session = (*MemorySession)(nil)

// Aggregates computes totals from the stored children
func (s *MemorySession) Aggregates() ports.AggregateStore {
	return &memoryAggregates{store: s.store}
}

// load registers an entity and everything reachable from it, then snapshots
func (s *MemorySession) load(e domain.Entity) {
	if e == nil {
		return
	}
	if _, ok := s.Lookup(e.Kind(), e.EntityID()); ok {
		return
	}
	s.Register(e)

	switch v := e.(type) {
	case *domain.AuditRequest:
		if v.BuybackOffer != nil {
			s.load(v.BuybackOffer)
		}
		for _, line := range v.Items {
			s.load(line)
		}
	case *domain.AuditRequestItem:
		if v.AuditRequest != nil {
			s.load(v.AuditRequest)
		}
	case *domain.AuditItem:
		if v.AuditRequest != nil {
			s.load(v.AuditRequest)
		}
		if v.Device != nil {
			s.load(v.Device)
		}
		if v.Repair != nil {
			s.load(v.Repair)
		}
		if v.BuybackOffer != nil {
			s.load(v.BuybackOffer)
		}
	case *domain.Device:
		if v.LastAuditItem != nil {
			s.load(v.LastAuditItem)
		}
	case *domain.Repair:
		if v.Device != nil {
			s.load(v.Device)
		}
		if v.AuditItem != nil {
			s.load(v.AuditItem)
		}
	}

	s.Snapshot(e)
}

func missing(kind domain.EntityKind, id uuid.UUID) error {
	return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
}

// FindAuditRequest implements ports.EntityFinder
func (s *MemorySession) FindAuditRequest(_ context.Context, id uuid.UUID) (*domain.AuditRequest, error) {
	r, ok := s.store.Requests[id]
	if !ok {
		return nil, missing(domain.KindAuditRequest, id)
	}
	s.load(r)
	return r, nil
}

// FindAuditRequestItem implements ports.EntityFinder
func (s *MemorySession) FindAuditRequestItem(_ context.Context, id uuid.UUID) (*domain.AuditRequestItem, error) {
	line, ok := s.store.Lines[id]
	if !ok {
		return nil, missing(domain.KindAuditRequestItem, id)
	}
	s.load(line)
	return line, nil
}

// FindAuditItem implements ports.EntityFinder
func (s *MemorySession) FindAuditItem(_ context.Context, id uuid.UUID) (*domain.AuditItem, error) {
	item, ok := s.store.Items[id]
	if !ok {
		return nil, missing(domain.KindAuditItem, id)
	}
	s.load(item)
	return item, nil
}

// FindBuybackOffer implements ports.EntityFinder
func (s *MemorySession) FindBuybackOffer(_ context.Context, id uuid.UUID) (*domain.BuybackOffer, error) {
	offer, ok := s.store.Offers[id]
	if !ok {
		return nil, missing(domain.KindBuybackOffer, id)
	}
	s.load(offer)
	return offer, nil
}

// FindDevice implements ports.EntityFinder
func (s *MemorySession) FindDevice(_ context.Context, id uuid.UUID) (*domain.Device, error) {
	device, ok := s.store.Devices[id]
	if !ok {
		return nil, missing(domain.KindDevice, id)
	}
	s.load(device)
	return device, nil
}

// FindRepair implements ports.EntityFinder
func (s *MemorySession) FindRepair(_ context.Context, id uuid.UUID) (*domain.Repair, error) {
	repair, ok := s.store.Repairs[id]
	if !ok {
		return nil, missing(domain.KindRepair, id)
	}
	s.load(repair)
	return repair, nil
}

// FindAuditCondition implements ports.EntityFinder
func (s *MemorySession) FindAuditCondition(_ context.Context, id uuid.UUID) (*domain.AuditCondition, error) {
	c, ok := s.store.Conditions[id]
	if !ok {
		return nil, fmt.Errorf("audit condition %s: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

// FindModuleByAccount implements ports.ModuleFinder
func (s *MemorySession) FindModuleByAccount(_ context.Context, accountID uuid.UUID) (*domain.BuybackModule, error) {
	return s.store.Modules[accountID], nil
}

// FindAuditItems implements ports.EntityFinder
func (s *MemorySession) FindAuditItems(_ context.Context, filter ports.AuditItemFilter) ([]*domain.AuditItem, error) {
	var out []*domain.AuditItem
	for _, item := range s.store.sortedItems() {
		if matches(item, filter) {
			s.load(item)
			out = append(out, item)
		}
	}
	return out, nil
}

// FindAuditItemsByRepairs implements ports.EntityFinder
func (s *MemorySession) FindAuditItemsByRepairs(_ context.Context, repairIDs []uuid.UUID) ([]*domain.AuditItem, error) {
	var out []*domain.AuditItem
	for _, item := range s.store.sortedItems() {
		if item.Repair != nil && slices.Contains(repairIDs, item.Repair.ID) {
			s.load(item)
			out = append(out, item)
		}
	}
	return out, nil
}

func matches(item *domain.AuditItem, f ports.AuditItemFilter) bool {
	request := item.AuditRequest
	if f.AccountID != nil && (request == nil || request.AccountID != *f.AccountID) {
		return false
	}
	if f.BuybackOfferID != nil && (item.BuybackOffer == nil || item.BuybackOffer.ID != *f.BuybackOfferID) {
		return false
	}
	if f.Status != "" && (item.Status == nil || *item.Status != f.Status) {
		return false
	}
	if f.WithoutOffer && item.BuybackOffer != nil {
		return false
	}
	if len(f.Products) > 0 {
		found := false
		for _, p := range f.Products {
			if item.ProductID == nil || *item.ProductID != p.ProductID {
				continue
			}
			if p.CombinationID != nil && (item.ProductCombinationID == nil || *item.ProductCombinationID != *p.CombinationID) {
				continue
			}
			found = true
			break
		}
		if !found {
			return false
		}
	}
	if len(f.ConditionIDs) > 0 && (item.AuditConditionID == nil || !slices.Contains(f.ConditionIDs, *item.AuditConditionID)) {
		return false
	}
	if len(f.SupplierOrders) > 0 {
		if request == nil || request.SupplierOrderNumber == nil || !slices.Contains(f.SupplierOrders, *request.SupplierOrderNumber) {
			return false
		}
	}
	if len(f.AuditItemIDs) > 0 && !slices.Contains(f.AuditItemIDs, item.ID) {
		return false
	}
	if f.WithCondition && item.AuditConditionID == nil {
		return false
	}
	if f.WithSupplierOrder && (request == nil || request.SupplierOrderNumber == nil) {
		return false
	}
	switch f.Repairs {
	case ports.RepairsWith:
		return item.Repair != nil
	case ports.RepairsWithout:
		return item.Repair == nil
	}
	return true
}

func (m *MemoryStore) sortedItems() []*domain.AuditItem {
	items := make([]*domain.AuditItem, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].ID.String() < items[j].ID.String()
	})
	return items
}

// Flush stores pending inserts and drops pending deletes
func (s *MemorySession) Flush(_ context.Context) error {
	now := time.Now()
	for _, e := range s.PendingInserts() {
		switch v := e.(type) {
		case *domain.AuditRequest:
			s.store.Requests[v.ID] = v
		case *domain.AuditRequestItem:
			s.store.Lines[v.ID] = v
		case *domain.AuditItem:
			s.store.Items[v.ID] = v
		case *domain.BuybackOffer:
			s.store.Offers[v.ID] = v
		case *domain.Device:
			s.store.Devices[v.ID] = v
		case *domain.Repair:
			s.store.Repairs[v.ID] = v
		}
	}
	for _, e := range s.PendingUpdates() {
		touchUpdatedAt(e, now)
	}
	for _, e := range s.PendingDeletes() {
		switch v := e.(type) {
		case *domain.AuditRequestItem:
			delete(s.store.Lines, v.ID)
		case *domain.AuditItem:
			delete(s.store.Items, v.ID)
			for _, d := range s.store.Devices {
				if d.LastAuditItem == v {
					d.LastAuditItem = nil
				}
			}
		case *domain.Repair:
			delete(s.store.Repairs, v.ID)
			for _, item := range s.store.Items {
				if item.Repair == v {
					item.Repair = nil
				}
			}
		case *domain.AuditRequest:
			delete(s.store.Requests, v.ID)
		case *domain.BuybackOffer:
			delete(s.store.Offers, v.ID)
		case *domain.Device:
			delete(s.store.Devices, v.ID)
		}
	}
	s.store.Flushes++
	s.MarkFlushed()
	return nil
}

func touchUpdatedAt(e domain.Entity, now time.Time) {
	switch v := e.(type) {
	case *domain.AuditRequest:
		v.UpdatedAt = now
	case *domain.AuditRequestItem:
		v.UpdatedAt = now
	case *domain.AuditItem:
		v.UpdatedAt = now
	case *domain.BuybackOffer:
		v.UpdatedAt = now
	case *domain.Device:
		v.UpdatedAt = now
	case *domain.Repair:
		v.UpdatedAt = now
	}
}

// memoryAggregates mirrors the SQL aggregate store over the stored graph
type memoryAggregates struct {
	store *MemoryStore
}

func (a *memoryAggregates) AuditRequestTotals(_ context.Context, ids []uuid.UUID) ([]domain.RequestTotals, error) {
	byID := make(map[uuid.UUID]*domain.RequestTotals)
	for _, line := range a.store.Lines {
		if line.AuditRequest == nil || !slices.Contains(ids, line.AuditRequest.ID) {
			continue
		}
		t, ok := byID[line.AuditRequest.ID]
		if !ok {
			t = &domain.RequestTotals{AuditRequestID: line.AuditRequest.ID}
			byID[line.AuditRequest.ID] = t
		}
		t.Count++
		if line.ExpectedQuantity != nil {
			t.ExpectedQuantity += *line.ExpectedQuantity
		}
		if line.ReceivedQuantity == nil {
			t.EmptyReceived++
		} else {
			t.ReceivedQuantity += *line.ReceivedQuantity
		}
	}
	out := make([]domain.RequestTotals, 0, len(byID))
	for _, t := range byID {
		out = append(out, *t)
	}
	return out, nil
}

func (a *memoryAggregates) UpdateAuditRequestTotals(_ context.Context, totals []domain.RequestTotals) error {
	for _, t := range totals {
		r, ok := a.store.Requests[t.AuditRequestID]
		if !ok {
			continue
		}
		r.NumberOfItems = t.Count
		r.ExpectedQuantity = t.ExpectedQuantity
		r.ReceivedQuantity = t.ReceivedQuantity
		r.Completed = t.Completed()
	}
	return nil
}

func (a *memoryAggregates) BuybackOfferTotals(_ context.Context, ids []uuid.UUID) ([]domain.OfferTotals, error) {
	byID := make(map[uuid.UUID]*domain.OfferTotals)
	for _, item := range a.store.Items {
		if item.BuybackOffer == nil || !slices.Contains(ids, item.BuybackOffer.ID) {
			continue
		}
		t, ok := byID[item.BuybackOffer.ID]
		if !ok {
			t = &domain.OfferTotals{
				BuybackOfferID: item.BuybackOffer.ID,
				StatePrice:     decimal.Zero,
				ConditionPrice: decimal.Zero,
				RepairPrice:    decimal.Zero,
			}
			byID[item.BuybackOffer.ID] = t
		}
		t.Count++
		t.StatePrice = t.StatePrice.Add(item.StatePrice)
		t.ConditionPrice = t.ConditionPrice.Add(item.ConditionPrice)
		if item.IncludedRepairPrice {
			t.RepairPrice = t.RepairPrice.Add(item.RepairPrice)
		}
	}
	out := make([]domain.OfferTotals, 0, len(byID))
	for _, t := range byID {
		out = append(out, *t)
	}
	return out, nil
}

func (a *memoryAggregates) UpdateBuybackOfferTotals(_ context.Context, totals []domain.OfferTotals) error {
	for _, t := range totals {
		o, ok := a.store.Offers[t.BuybackOfferID]
		if !ok {
			continue
		}
		method, total := t.Resolve()
		o.NumberOfItems = t.Count
		o.TotalStatePrice = t.StatePrice
		o.TotalConditionPrice = t.ConditionPrice
		o.TotalRepairPrice = t.RepairPrice
		o.TotalPrice = total
		o.CalculationMethod = &method
	}
	return nil
}

func (a *memoryAggregates) MarkOfferDevices(_ context.Context, offerIDs []uuid.UUID, status domain.DeviceStatus) (int64, error) {
	var n int64
	for _, d := range a.store.Devices {
		item := d.LastAuditItem
		if item == nil || item.BuybackOffer == nil || !slices.Contains(offerIDs, item.BuybackOffer.ID) {
			continue
		}
		st := status
		d.Status = &st
		n++
	}
	return n, nil
}
