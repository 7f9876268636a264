// internal/adapters/db/session.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ammerola/buyback-be/internal/core/domain"
	"github.com/ammerola/buyback-be/internal/core/ports"
	"github.com/ammerola/buyback-be/internal/core/uow"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Querier is the subset of pgx.Tx used by the session and aggregate store
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// ModuleCacheKey is the cache key of an account's buyback module
func ModuleCacheKey(accountID uuid.UUID) string {
	return "buyback:module:" + accountID.String()
}

// moduleEntry caches absent modules as well as present ones
type moduleEntry struct {
	Found  bool                  `json:"found"`
	Module *domain.BuybackModule `json:"module,omitempty"`
}

// Session loads entities into an identity map and writes tracked changes
// back inside the transaction it was opened with.
type Session struct {
	*uow.Tracker
	tx        Querier
	cache     ports.CacheRepository
	moduleTTL time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

var _ ports.Session = (*Session)(nil)

// NewSession creates a session over an open transaction. cache may be nil.
func NewSession(tx Querier, cache ports.CacheRepository, moduleTTL time.Duration, logger *slog.Logger) *Session {
	return &Session{
		Tracker:   uow.NewTracker(),
		tx:        tx,
		cache:     cache,
		moduleTTL: moduleTTL,
		now:       time.Now,
		logger:    logger.With(slog.String("component", "session")),
	}
}

// Aggregates returns the aggregate store bound to the same transaction
func (s *Session) Aggregates() ports.AggregateStore {
	return NewAggregateStore(s.tx)
}

// FindAuditRequest loads a request with its lines and offer
func (s *Session) FindAuditRequest(ctx context.Context, id uuid.UUID) (*domain.AuditRequest, error) {
	if e, ok := s.Lookup(domain.KindAuditRequest, id); ok {
		return e.(*domain.AuditRequest), nil
	}

	query, args, err := psql.Select(auditRequestColumns...).
		From(tableAuditRequests).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	row, err := ScanOne(s.tx.QueryRow(ctx, query, args...), scanAuditRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to load audit request %s: %w", id, err)
	}
	if row == nil {
		return nil, notFound(domain.KindAuditRequest, id)
	}
	return s.hydrateAuditRequest(ctx, row)
}

func (s *Session) hydrateAuditRequest(ctx context.Context, row *auditRequestRow) (*domain.AuditRequest, error) {
	request := row.request
	s.Register(request)

	if row.offerID != nil {
		offer, err := s.FindBuybackOffer(ctx, *row.offerID)
		if err != nil {
			return nil, err
		}
		request.BuybackOffer = offer
	}

	query, args, err := psql.Select(auditRequestItemColumns...).
		From(tableAuditRequestItems).
		Where(squirrel.Eq{"audit_request_id": request.ID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	rows, err := s.tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load audit request items: %w", err)
	}
	lines, err := ScanMany(rows, scanAuditRequestItem)
	if err != nil {
		return nil, fmt.Errorf("failed to scan audit request items: %w", err)
	}

	request.Items = make([]*domain.AuditRequestItem, 0, len(lines))
	for _, line := range lines {
		if e, ok := s.Lookup(domain.KindAuditRequestItem, line.item.ID); ok {
			request.Items = append(request.Items, e.(*domain.AuditRequestItem))
			continue
		}
		line.item.AuditRequest = request
		s.Attach(line.item)
		request.Items = append(request.Items, line.item)
	}

	s.Snapshot(request)
	return request, nil
}

// FindAuditRequestItem loads a line through its parent request
func (s *Session) FindAuditRequestItem(ctx context.Context, id uuid.UUID) (*domain.AuditRequestItem, error) {
	if e, ok := s.Lookup(domain.KindAuditRequestItem, id); ok {
		return e.(*domain.AuditRequestItem), nil
	}

	var requestID uuid.UUID
	query, args, err := psql.Select("audit_request_id").
		From(tableAuditRequestItems).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	if err := s.tx.QueryRow(ctx, query, args...).Scan(&requestID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound(domain.KindAuditRequestItem, id)
		}
		return nil, fmt.Errorf("failed to load audit request item %s: %w", id, err)
	}

	if _, err := s.FindAuditRequest(ctx, requestID); err != nil {
		return nil, err
	}
	e, ok := s.Lookup(domain.KindAuditRequestItem, id)
	if !ok {
		return nil, notFound(domain.KindAuditRequestItem, id)
	}
	return e.(*domain.AuditRequestItem), nil
}

// FindAuditItem loads an audit item and its relations
func (s *Session) FindAuditItem(ctx context.Context, id uuid.UUID) (*domain.AuditItem, error) {
	if e, ok := s.Lookup(domain.KindAuditItem, id); ok {
		return e.(*domain.AuditItem), nil
	}

	items, err := s.queryAuditItems(ctx, psql.Select(prefixed("ai", auditItemColumns)...).
		From(tableAuditItems+" ai").
		Where(squirrel.Eq{"ai.id": id}))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, notFound(domain.KindAuditItem, id)
	}
	return items[0], nil
}

// FindAuditItems selects audit items matching the filter, oldest first
func (s *Session) FindAuditItems(ctx context.Context, filter ports.AuditItemFilter) ([]*domain.AuditItem, error) {
	q := psql.Select(prefixed("ai", auditItemColumns)...).
		From(tableAuditItems + " ai").
		Join(tableAuditRequests + " ar ON ar.id = ai.audit_request_id").
		OrderBy("ai.created_at", "ai.id")

	if filter.AccountID != nil {
		q = q.Where(squirrel.Eq{"ar.account_id": *filter.AccountID})
	}
	if filter.BuybackOfferID != nil {
		q = q.Where(squirrel.Eq{"ai.buyback_offer_id": *filter.BuybackOfferID})
	}
	if filter.Status != "" {
		q = q.Where(squirrel.Eq{"ai.status": string(filter.Status)})
	}
	if filter.WithoutOffer {
		q = q.Where(squirrel.Eq{"ai.buyback_offer_id": nil})
	}
	if len(filter.Products) > 0 {
		or := squirrel.Or{}
		for _, p := range filter.Products {
			match := squirrel.And{squirrel.Eq{"ai.product_id": p.ProductID}}
			if p.CombinationID != nil {
				match = append(match, squirrel.Eq{"ai.product_combination_id": *p.CombinationID})
			}
			or = append(or, match)
		}
		q = q.Where(or)
	}
	if len(filter.ConditionIDs) > 0 {
		q = q.Where(squirrel.Eq{"ai.audit_condition_id": filter.ConditionIDs})
	}
	if len(filter.SupplierOrders) > 0 {
		q = q.Where(squirrel.Eq{"ar.supplier_order_number": filter.SupplierOrders})
	}
	if len(filter.AuditItemIDs) > 0 {
		q = q.Where(squirrel.Eq{"ai.id": filter.AuditItemIDs})
	}
	if filter.WithCondition {
		q = q.Where(squirrel.NotEq{"ai.audit_condition_id": nil})
	}
	if filter.WithSupplierOrder {
		q = q.Where(squirrel.NotEq{"ar.supplier_order_number": nil})
	}
	switch filter.Repairs {
	case ports.RepairsWith:
		q = q.Where(squirrel.NotEq{"ai.repair_id": nil})
	case ports.RepairsWithout:
		q = q.Where(squirrel.Eq{"ai.repair_id": nil})
	}

	return s.queryAuditItems(ctx, q)
}

// FindAuditItemsByRepairs loads the audit items owning the given repairs
func (s *Session) FindAuditItemsByRepairs(ctx context.Context, repairIDs []uuid.UUID) ([]*domain.AuditItem, error) {
	if len(repairIDs) == 0 {
		return nil, nil
	}
	return s.queryAuditItems(ctx, psql.Select(prefixed("ai", auditItemColumns)...).
		From(tableAuditItems+" ai").
		Where(squirrel.Eq{"ai.repair_id": repairIDs}).
		OrderBy("ai.created_at", "ai.id"))
}

// queryAuditItems reads every row before resolving relations, since the
// connection cannot run nested queries while rows are open.
func (s *Session) queryAuditItems(ctx context.Context, q squirrel.SelectBuilder) ([]*domain.AuditItem, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	rows, err := s.tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit items: %w", err)
	}
	scanned, err := ScanMany(rows, scanAuditItem)
	if err != nil {
		return nil, fmt.Errorf("failed to scan audit items: %w", err)
	}

	items := make([]*domain.AuditItem, 0, len(scanned))
	for _, row := range scanned {
		item, err := s.hydrateAuditItem(ctx, row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *Session) hydrateAuditItem(ctx context.Context, row *auditItemRow) (*domain.AuditItem, error) {
	if e, ok := s.Lookup(domain.KindAuditItem, row.item.ID); ok {
		return e.(*domain.AuditItem), nil
	}

	item := row.item
	s.Register(item)

	request, err := s.FindAuditRequest(ctx, row.requestID)
	if err != nil {
		return nil, err
	}
	item.AuditRequest = request

	if row.deviceID != nil {
		if item.Device, err = s.FindDevice(ctx, *row.deviceID); err != nil {
			return nil, err
		}
	}
	if row.offerID != nil {
		if item.BuybackOffer, err = s.FindBuybackOffer(ctx, *row.offerID); err != nil {
			return nil, err
		}
	}
	if row.repairID != nil {
		if item.Repair, err = s.FindRepair(ctx, *row.repairID); err != nil {
			return nil, err
		}
	}

	s.Snapshot(item)
	return item, nil
}

// FindBuybackOffer loads an offer
func (s *Session) FindBuybackOffer(ctx context.Context, id uuid.UUID) (*domain.BuybackOffer, error) {
	if e, ok := s.Lookup(domain.KindBuybackOffer, id); ok {
		return e.(*domain.BuybackOffer), nil
	}

	query, args, err := psql.Select(buybackOfferColumns...).
		From(tableBuybackOffers).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	offer, err := ScanOne(s.tx.QueryRow(ctx, query, args...), scanBuybackOffer)
	if err != nil {
		return nil, fmt.Errorf("failed to load buyback offer %s: %w", id, err)
	}
	if offer == nil {
		return nil, notFound(domain.KindBuybackOffer, id)
	}

	s.Attach(offer)
	return offer, nil
}

// FindDevice loads a device and its last audit item
func (s *Session) FindDevice(ctx context.Context, id uuid.UUID) (*domain.Device, error) {
	if e, ok := s.Lookup(domain.KindDevice, id); ok {
		return e.(*domain.Device), nil
	}

	query, args, err := psql.Select(deviceColumns...).
		From(tableDevices).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	row, err := ScanOne(s.tx.QueryRow(ctx, query, args...), scanDevice)
	if err != nil {
		return nil, fmt.Errorf("failed to load device %s: %w", id, err)
	}
	if row == nil {
		return nil, notFound(domain.KindDevice, id)
	}

	device := row.device
	s.Register(device)
	if row.lastItemID != nil {
		if device.LastAuditItem, err = s.FindAuditItem(ctx, *row.lastItemID); err != nil {
			return nil, err
		}
	}
	s.Snapshot(device)
	return device, nil
}

// FindRepair loads a repair with its device and owning audit item
func (s *Session) FindRepair(ctx context.Context, id uuid.UUID) (*domain.Repair, error) {
	if e, ok := s.Lookup(domain.KindRepair, id); ok {
		return e.(*domain.Repair), nil
	}

	query, args, err := psql.Select(repairColumns...).
		From(tableRepairs).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	row, err := ScanOne(s.tx.QueryRow(ctx, query, args...), scanRepair)
	if err != nil {
		return nil, fmt.Errorf("failed to load repair %s: %w", id, err)
	}
	if row == nil {
		return nil, notFound(domain.KindRepair, id)
	}

	repair := row.repair
	s.Register(repair)
	if row.deviceID != nil {
		if repair.Device, err = s.FindDevice(ctx, *row.deviceID); err != nil {
			return nil, err
		}
	}

	var itemID uuid.UUID
	query, args, err = psql.Select("id").
		From(tableAuditItems).
		Where(squirrel.Eq{"repair_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	switch err := s.tx.QueryRow(ctx, query, args...).Scan(&itemID); {
	case errors.Is(err, pgx.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("failed to resolve audit item of repair %s: %w", id, err)
	default:
		if repair.AuditItem, err = s.FindAuditItem(ctx, itemID); err != nil {
			return nil, err
		}
	}

	s.Snapshot(repair)
	return repair, nil
}

// FindAuditCondition reads a reference condition. Conditions are not tracked.
func (s *Session) FindAuditCondition(ctx context.Context, id uuid.UUID) (*domain.AuditCondition, error) {
	query, args, err := psql.Select("id", "name", "state").
		From(tableAuditConditions).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	c := &domain.AuditCondition{}
	if err := s.tx.QueryRow(ctx, query, args...).Scan(&c.ID, &c.Name, &c.State); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("audit condition %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load audit condition %s: %w", id, err)
	}
	return c, nil
}

// FindModuleByAccount returns the account's buyback module, or nil when the
// account has none. Lookups go through the cache when one is configured.
func (s *Session) FindModuleByAccount(ctx context.Context, accountID uuid.UUID) (*domain.BuybackModule, error) {
	load := func() (*domain.BuybackModule, error) {
		query, args, err := psql.Select(buybackModuleColumns...).
			From(tableBuybackModules).
			Where(squirrel.Eq{"account_id": accountID}).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build query: %w", err)
		}
		m, err := ScanOne(s.tx.QueryRow(ctx, query, args...), scanBuybackModule)
		if err != nil {
			return nil, fmt.Errorf("failed to load buyback module: %w", err)
		}
		return m, nil
	}

	if s.cache == nil {
		return load()
	}

	var entry moduleEntry
	err := s.cache.GetOrSet(ctx, ModuleCacheKey(accountID), &entry, func() (interface{}, error) {
		m, err := load()
		if err != nil {
			return nil, err
		}
		return moduleEntry{Found: m != nil, Module: m}, nil
	}, s.moduleTTL)
	if err != nil {
		s.logger.WarnContext(ctx, "module cache unavailable",
			slog.String("account_id", accountID.String()),
			slog.String("error", err.Error()))
		return load()
	}

	if !entry.Found {
		return nil, nil
	}
	return entry.Module, nil
}

// Flush writes pending inserts, updates and deletes in one batch. Foreign
// keys between buyback tables are deferred, so statement order within the
// batch does not matter.
func (s *Session) Flush(ctx context.Context) error {
	batch := &pgx.Batch{}
	now := s.now().UTC()

	for _, e := range s.PendingInserts() {
		table, values, err := rowValues(e)
		if err != nil {
			return err
		}
		createdTimestamps(values, now)
		query, args, err := psql.Insert(table).SetMap(values).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert: %w", err)
		}
		batch.Queue(query, args...)
	}

	for _, e := range s.PendingUpdates() {
		table, values, err := changedValues(e, s.ChangedFields(e))
		if err != nil {
			return err
		}
		if len(values) == 0 {
			continue
		}
		values["updated_at"] = now
		query, args, err := psql.Update(table).
			SetMap(values).
			Where(squirrel.Eq{"id": e.EntityID()}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update: %w", err)
		}
		batch.Queue(query, args...)
	}

	for _, e := range s.PendingDeletes() {
		table, _, err := rowValues(e)
		if err != nil {
			return err
		}
		query, args, err := psql.Delete(table).Where(squirrel.Eq{"id": e.EntityID()}).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete: %w", err)
		}
		batch.Queue(query, args...)
	}

	if batch.Len() == 0 {
		return nil
	}

	results := s.tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("failed to flush session: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to flush session: %w", err)
	}

	s.logger.DebugContext(ctx, "session flushed", slog.Int("statements", batch.Len()))
	s.MarkFlushed()
	return nil
}

func notFound(kind domain.EntityKind, id uuid.UUID) error {
	return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
}

func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}
