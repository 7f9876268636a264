// internal/core/services/cascade_engine.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammerola/buyback-be/internal/core/domain"
	"github.com/ammerola/buyback-be/internal/core/ports"
)

// CascadeRules configures the status-driven behaviour of the engine
type CascadeRules struct {
	AuditItem                 domain.ClosureRules
	AuditRequest              domain.ClosureRules
	BuybackOffer              domain.ClosureRules
	DefaultAuditRequestStatus string
	DefaultOfferStatus        string
}

// DefaultCascadeRules returns the built-in closure sets with no extra
// configured statuses.
func DefaultCascadeRules() CascadeRules {
	return CascadeRules{
		AuditItem:                 domain.NewClosureRules(domain.KindAuditItem, nil, nil),
		AuditRequest:              domain.NewClosureRules(domain.KindAuditRequest, nil, nil),
		BuybackOffer:              domain.NewClosureRules(domain.KindBuybackOffer, nil, nil),
		DefaultAuditRequestStatus: "draft",
		DefaultOfferStatus:        "draft",
	}
}

// CascadeEngine derives dependent state on every pending entity of a session
// before it is flushed. It runs once per commit.
type CascadeEngine struct {
	rules      CascadeRules
	identity   ports.IdentityProvider
	references ports.ReferenceGenerator
	guard      ConsistencyGuard
	now        func() time.Time
	logger     *slog.Logger
}

// NewCascadeEngine creates a new cascade engine
func NewCascadeEngine(
	rules CascadeRules,
	identity ports.IdentityProvider,
	references ports.ReferenceGenerator,
	logger *slog.Logger,
) *CascadeEngine {
	return &CascadeEngine{
		rules:      rules,
		identity:   identity,
		references: references,
		now:        time.Now,
		logger:     logger.With(slog.String("service", "cascade")),
	}
}

// WithClock replaces the time source, for tests
func (e *CascadeEngine) WithClock(now func() time.Time) *CascadeEngine {
	e.now = now
	return e
}

// BeforeCommit applies the insert rules, then the update rules, then the
// delete rules. Entities created or dirtied by a rule are picked up until
// nothing is left; each entity runs through each pass at most once.
func (e *CascadeEngine) BeforeCommit(ctx context.Context, sess ports.CascadeSession, queue *RecomputeQueue) error {
	run := &cascade{
		CascadeEngine: e,
		ctx:           ctx,
		sess:          sess,
		queue:         queue,
		at:            e.now(),
		modules:       make(map[uuid.UUID]*domain.BuybackModule),
		created:       make(map[domain.Entity]bool),
		updated:       make(map[domain.Entity]bool),
		removed:       make(map[domain.Entity]bool),
	}

	if err := run.drain(); err != nil {
		return err
	}

	for {
		pending := unvisited(sess.PendingDeletes(), run.removed)
		if len(pending) == 0 {
			break
		}
		for _, ent := range pending {
			run.removed[ent] = true
			if err := run.onDelete(ent); err != nil {
				return err
			}
		}
		if err := run.drain(); err != nil {
			return err
		}
	}

	e.logger.DebugContext(ctx, "cascade applied",
		slog.Int("inserts", len(run.created)),
		slog.Int("updates", len(run.updated)),
		slog.Int("deletes", len(run.removed)),
		slog.Int("requests_queued", len(queue.RequestIDs())),
		slog.Int("offers_queued", len(queue.OfferIDs())))

	return nil
}

// cascade holds the state of one BeforeCommit call
type cascade struct {
	*CascadeEngine
	ctx     context.Context
	sess    ports.CascadeSession
	queue   *RecomputeQueue
	at      time.Time
	modules map[uuid.UUID]*domain.BuybackModule
	created map[domain.Entity]bool
	updated map[domain.Entity]bool
	removed map[domain.Entity]bool
}

func (c *cascade) drain() error {
	for {
		progressed := false

		inserts := unvisited(c.sess.PendingInserts(), c.created)
		for _, ent := range inserts {
			c.created[ent] = true
			if err := c.apply(ent, true); err != nil {
				return err
			}
		}
		progressed = len(inserts) > 0

		updates := unvisited(c.sess.PendingUpdates(), c.updated)
		for _, ent := range updates {
			c.updated[ent] = true
			if err := c.apply(ent, false); err != nil {
				return err
			}
		}
		if len(updates) > 0 {
			progressed = true
		}

		if !progressed {
			return nil
		}
	}
}

// kindOrder runs rules that feed other kinds first: device edits reach audit
// items, and offer closure must be known before membership is checked.
var kindOrder = map[domain.EntityKind]int{
	domain.KindDevice:           0,
	domain.KindBuybackOffer:     1,
	domain.KindAuditRequest:     2,
	domain.KindAuditRequestItem: 3,
	domain.KindAuditItem:        4,
	domain.KindRepair:           5,
}

func unvisited(list []domain.Entity, visited map[domain.Entity]bool) []domain.Entity {
	var out []domain.Entity
	for _, ent := range list {
		if !visited[ent] {
			out = append(out, ent)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return kindOrder[out[i].Kind()] < kindOrder[out[j].Kind()]
	})
	return out
}

func (c *cascade) apply(ent domain.Entity, isCreate bool) error {
	switch v := ent.(type) {
	case *domain.AuditItem:
		return c.auditItem(v, isCreate)
	case *domain.AuditRequest:
		return c.auditRequest(v, isCreate)
	case *domain.AuditRequestItem:
		return c.auditRequestItem(v, isCreate)
	case *domain.BuybackOffer:
		return c.buybackOffer(v, isCreate)
	case *domain.Device:
		return c.device(v)
	case *domain.Repair:
		return c.repair(v)
	}
	return nil
}

func (c *cascade) onDelete(ent domain.Entity) error {
	switch v := ent.(type) {
	case *domain.AuditItem:
		c.auditItemRemoved(v)
	case *domain.AuditRequestItem:
		if v.AuditRequest != nil {
			c.queue.AuditRequest(v.AuditRequest.ID)
		}
	case *domain.Repair:
		c.repairRemoved(v)
	}
	return nil
}

func (c *cascade) changes(ent domain.Entity) domain.ChangeSet {
	return c.sess.ChangedFields(ent)
}

func (c *cascade) touch(ent domain.Entity) {
	c.sess.RecomputeChangeSet(ent)
}

func (c *cascade) module(accountID uuid.UUID) (*domain.BuybackModule, error) {
	if m, ok := c.modules[accountID]; ok {
		return m, nil
	}
	m, err := c.sess.FindModuleByAccount(c.ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load buyback module: %w", err)
	}
	c.modules[accountID] = m
	return m, nil
}

func (c *cascade) reference(ent domain.Entity, current *string) (*string, error) {
	if current != nil {
		return current, nil
	}
	ref, err := c.references.Generate(c.ctx, ent.Kind())
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s reference: %w", ent.Kind(), err)
	}
	return &ref, nil
}

// keepReference restores a reference overwritten after it was first assigned
func keepReference(changes domain.ChangeSet, ref **string) {
	if !changes.Has(domain.FieldReference) {
		return
	}
	if old, ok := changes.Old(domain.FieldReference).(string); ok {
		*ref = &old
	}
}

func (c *cascade) stamp() *time.Time {
	t := c.at
	return &t
}

// Audit items

func (c *cascade) auditItem(item *domain.AuditItem, isCreate bool) error {
	if err := c.guard.ParentRequest(item, c.changes(item), isCreate); err != nil {
		return err
	}

	if item.ReceiptedAt == nil {
		if item.AuditRequest.ReceiptedAt != nil {
			at := *item.AuditRequest.ReceiptedAt
			item.ReceiptedAt = &at
		} else {
			item.ReceiptedAt = c.stamp()
		}
	}

	changes := c.changes(item)
	if err := c.linkDeviceAudit(item, changes, isCreate); err != nil {
		return err
	}
	oldDevice, _ := changes.Old(domain.FieldDevice).(*domain.Device)
	if changes.Has(domain.FieldDevice) && oldDevice != nil && oldDevice.LastAuditItem == item {
		oldDevice.LastAuditItem = nil
		c.touch(oldDevice)
	}

	if isCreate && item.AuditRequest.BuybackOffer != nil && item.BuybackOffer == nil {
		item.BuybackOffer = item.AuditRequest.BuybackOffer
	}

	if changes.Has(domain.FieldDevice) && item.Repair != nil && item.Repair.Device != item.Device {
		item.Repair.Device = item.Device
		c.touch(item.Repair)
	}

	status := domain.ResolveAuditItemStatus(item)
	if item.Status == nil || *item.Status != status {
		item.Status = &status
	}

	changes = c.changes(item)
	if isCreate || changes.Has(domain.FieldStatus) {
		closure := c.rules.AuditItem.Evaluate(item.StatusValue())
		item.Closed = closure.Closed
		item.Validated = closure.Validated
	}

	domain.StampStageTimestamps(item, c.at)

	if item.NeedsAuditor() && c.identity != nil {
		if actor := c.identity.CurrentActor(c.ctx); actor != nil {
			id := *actor
			item.AuditorID = &id
		}
	}

	changes = c.changes(item)
	if changes.Has(domain.FieldBuybackOffer) {
		oldOffer, _ := changes.Old(domain.FieldBuybackOffer).(*domain.BuybackOffer)
		if err := c.guard.OfferMembership(item, oldOffer, item.BuybackOffer); err != nil {
			return err
		}
		if oldOffer != nil {
			c.queue.BuybackOffer(oldOffer.ID)
		}
		if item.BuybackOffer != nil {
			c.queue.BuybackOffer(item.BuybackOffer.ID)
		}
	} else if item.BuybackOffer != nil && changes.HasAny(
		domain.FieldStatePrice,
		domain.FieldConditionPrice,
		domain.FieldRepairPrice,
		domain.FieldIncludedRepairPrice,
	) {
		c.queue.BuybackOffer(item.BuybackOffer.ID)
	}

	c.mirrorDevice(item, changes, isCreate)
	c.deviceStatuses(item, changes, oldDevice)

	return nil
}

func (c *cascade) linkDeviceAudit(item *domain.AuditItem, changes domain.ChangeSet, isCreate bool) error {
	device := item.Device
	if device == nil {
		return nil
	}
	linking := isCreate || changes.Has(domain.FieldDevice)
	if isCreate {
		if err := c.guard.PreviousAuditClosed(item); err != nil {
			return err
		}
	}
	if linking {
		last := device.LastAuditItem
		if last != nil && last != item && item.PreviousAuditItemID == nil {
			id := last.ID
			item.PreviousAuditItemID = &id
		}
	}
	if device.LastAuditItem == nil || (linking && device.LastAuditItem != item) {
		device.LastAuditItem = item
		c.touch(device)
	}
	return nil
}

func (c *cascade) mirrorDevice(item *domain.AuditItem, changes domain.ChangeSet, isCreate bool) {
	device := item.Device
	if device == nil {
		return
	}
	edited := false

	if accountID := item.AuditRequest.AccountID; accountID != uuid.Nil && !sameID(device.AccountID, &accountID) {
		device.AccountID = &accountID
		edited = true
	}

	relinked := isCreate || changes.Has(domain.FieldDevice)
	if relinked || changes.HasAny(domain.FieldProduct, domain.FieldProductCombination) {
		if item.ProductID != nil && !sameID(device.ProductID, item.ProductID) {
			device.ProductID = copyID(item.ProductID)
			edited = true
		}
		if item.ProductCombinationID != nil && !sameID(device.ProductCombinationID, item.ProductCombinationID) {
			device.ProductCombinationID = copyID(item.ProductCombinationID)
			edited = true
		}
	}
	if relinked || changes.Has(domain.FieldAuditCondition) {
		if item.AuditConditionID != nil && !sameID(device.AuditConditionID, item.AuditConditionID) {
			device.AuditConditionID = copyID(item.AuditConditionID)
			edited = true
		}
	}

	if edited {
		c.touch(device)
	}
}

func (c *cascade) deviceStatuses(item *domain.AuditItem, changes domain.ChangeSet, oldDevice *domain.Device) {
	if changes.Has(domain.FieldDevice) && oldDevice != nil && oldDevice != item.Device && oldDevice.TerminatedAt == nil {
		if oldDevice.SetStatus(domain.DeviceInUse) {
			c.touch(oldDevice)
		}
	}

	device := item.Device
	if device == nil || device.TerminatedAt != nil {
		return
	}
	if device.StatusIs(domain.DeviceBuybacked) && item.BuybackOffer != nil && item.BuybackOffer.Validated {
		return
	}
	if device.SetStatus(domain.DeviceStatusFor(item.Status)) {
		c.touch(device)
	}
}

func (c *cascade) auditItemRemoved(item *domain.AuditItem) {
	if item.BuybackOffer != nil {
		c.queue.BuybackOffer(item.BuybackOffer.ID)
	}
	if device := item.Device; device != nil && device.LastAuditItem == item {
		device.LastAuditItem = nil
		if device.TerminatedAt == nil {
			device.SetStatus(domain.DeviceInUse)
		}
		c.touch(device)
	}
	if repair := item.Repair; repair != nil && repair.AuditItem == item {
		repair.AuditItem = nil
		c.touch(repair)
	}
}

// Audit requests

func (c *cascade) auditRequest(r *domain.AuditRequest, isCreate bool) error {
	if !isCreate {
		keepReference(c.changes(r), &r.Reference)
	}

	ref, err := c.reference(r, r.Reference)
	if err != nil {
		return err
	}
	r.Reference = ref
	if r.Date == nil {
		r.Date = c.stamp()
	}

	module, err := c.module(r.AccountID)
	if err != nil {
		return err
	}
	if module != nil {
		fillID(&r.ShippingAddressID, module.ShippingAddressID)
		fillID(&r.InvoiceAddressID, module.InvoiceAddressID)
		fillID(&r.SupplierID, module.SupplierID)
		fillID(&r.WorkcenterID, module.WorkcenterID)
		fillString(&r.IdentifierType, module.IdentifierType)
		fillString(&r.Status, module.DefaultAuditRequestStatus)
	}
	if r.Status == nil && c.rules.DefaultAuditRequestStatus != "" {
		status := c.rules.DefaultAuditRequestStatus
		r.Status = &status
	}

	if err := c.guard.ShippingAddress(r, r.ShippingAddressID); err != nil {
		return err
	}
	if r.ReceiptedAt == nil && r.StatusIs(domain.AuditRequestStatusWaitingCounting) {
		r.ReceiptedAt = c.stamp()
	}

	if err := c.guard.ModuleEnabled(r, module); err != nil {
		return err
	}

	if isCreate || c.changes(r).Has(domain.FieldStatus) {
		closure := c.rules.AuditRequest.Evaluate(r.Status)
		r.Closed = closure.Closed
		r.Validated = closure.Validated
		if r.ReceiptedAt == nil && r.Closed {
			r.ReceiptedAt = c.stamp()
		}
		if err := c.guard.NotEmptyWhenValidated(r, closure, r.ContainedItems()); err != nil {
			return err
		}
	}

	if r.StatusIs(domain.AuditRequestStatusValidated) && !r.Converted {
		c.convert(r)
	}

	return nil
}

// convert materializes the request's received units as audit items. The new
// items are picked up by the insert pass.
func (c *cascade) convert(r *domain.AuditRequest) {
	r.Converted = true
	items := r.MaterializeAuditItems(c.at)
	for _, item := range items {
		c.sess.Persist(item)
	}
	c.logger.InfoContext(c.ctx, "audit request converted",
		slog.String("audit_request_id", r.ID.String()),
		slog.Int("audit_items", len(items)))
}

func (c *cascade) auditRequestItem(item *domain.AuditRequestItem, isCreate bool) error {
	if item.AuditRequest == nil {
		return nil
	}
	if isCreate || c.changes(item).HasAny(domain.FieldExpectedQuantity, domain.FieldReceivedQuantity) {
		c.queue.AuditRequest(item.AuditRequest.ID)
	}
	return nil
}

// Buyback offers

func (c *cascade) buybackOffer(o *domain.BuybackOffer, isCreate bool) error {
	if !isCreate {
		keepReference(c.changes(o), &o.Reference)
	}

	ref, err := c.reference(o, o.Reference)
	if err != nil {
		return err
	}
	o.Reference = ref
	if o.Date == nil {
		o.Date = c.stamp()
	}

	module, err := c.module(o.AccountID)
	if err != nil {
		return err
	}
	if module != nil {
		fillID(&o.ShippingAddressID, module.ShippingAddressID)
		fillID(&o.InvoiceAddressID, module.InvoiceAddressID)
		fillID(&o.SupplierID, module.SupplierID)
	}
	if o.Status == nil && c.rules.DefaultOfferStatus != "" {
		status := c.rules.DefaultOfferStatus
		o.Status = &status
	}
	if o.CalculationMethod == nil {
		method := domain.CalculationByState
		o.CalculationMethod = &method
	}

	if err := c.guard.ShippingAddress(o, o.ShippingAddressID); err != nil {
		return err
	}
	if err := c.guard.ModuleEnabled(o, module); err != nil {
		return err
	}

	changes := c.changes(o)
	if !isCreate && changes.Has(domain.FieldCalculationMethod) {
		o.RecalculateTotalPrice()
	}

	if isCreate || changes.Has(domain.FieldStatus) {
		wasValidated := o.Validated
		closure := c.rules.BuybackOffer.Evaluate(o.Status)
		o.Closed = closure.Closed
		o.Validated = closure.Validated

		if closure.Validated {
			if o.ValidatedAt == nil {
				o.ValidatedAt = c.stamp()
			}
			if !wasValidated {
				c.queue.OfferValidated(o.ID)
			}
		} else {
			o.ValidatedAt = nil
		}

		if err := c.guard.NotEmptyWhenValidated(o, closure, o.NumberOfItems); err != nil {
			return err
		}
	}

	return nil
}

// Devices and repairs

func (c *cascade) device(d *domain.Device) error {
	last := d.LastAuditItem
	if last == nil {
		return nil
	}
	changes := c.changes(d)
	edited := false
	if changes.Has(domain.FieldProduct) && d.ProductID != nil && !sameID(last.ProductID, d.ProductID) {
		last.ProductID = copyID(d.ProductID)
		edited = true
	}
	if changes.Has(domain.FieldProductCombination) && d.ProductCombinationID != nil &&
		!sameID(last.ProductCombinationID, d.ProductCombinationID) {
		last.ProductCombinationID = copyID(d.ProductCombinationID)
		edited = true
	}
	if edited {
		c.touch(last)
	}
	return nil
}

func (c *cascade) repair(r *domain.Repair) error {
	if r.PriceListID != nil || r.AuditItem == nil {
		return nil
	}
	module, err := c.module(r.AccountID)
	if err != nil {
		return err
	}
	if module != nil && module.RepairPriceListID != nil {
		r.PriceListID = copyID(module.RepairPriceListID)
	}
	return nil
}

func (c *cascade) repairRemoved(r *domain.Repair) {
	item := r.AuditItem
	if item == nil || item.Repair != r {
		return
	}
	item.Repair = nil
	item.RepairPrice = decimal.Zero
	c.touch(item)
	if item.BuybackOffer != nil {
		c.queue.BuybackOffer(item.BuybackOffer.ID)
	}
}

func sameID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func copyID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func fillID(dst **uuid.UUID, fallback *uuid.UUID) {
	if *dst == nil && fallback != nil {
		*dst = copyID(fallback)
	}
}

func fillString(dst **string, fallback *string) {
	if *dst == nil && fallback != nil {
		v := *fallback
		*dst = &v
	}
}
