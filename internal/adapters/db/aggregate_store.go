// internal/adapters/db/aggregate_store.go
package db

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammerola/buyback-be/internal/core/domain"
	"github.com/ammerola/buyback-be/internal/core/ports"
)

const updateRequestTotalsSQL = `
UPDATE audit_requests AS ar SET
	number_of_items = t.number_of_items,
	expected_quantity = t.expected_quantity,
	received_quantity = t.received_quantity,
	completed = t.completed,
	updated_at = NOW()
FROM unnest($1::uuid[], $2::int[], $3::int[], $4::int[], $5::bool[])
	AS t(id, number_of_items, expected_quantity, received_quantity, completed)
WHERE ar.id = t.id`

const updateOfferTotalsSQL = `
UPDATE buyback_offers AS bo SET
	number_of_items = t.number_of_items,
	total_state_price = t.total_state_price,
	total_condition_price = t.total_condition_price,
	total_repair_price = t.total_repair_price,
	total_price = t.total_price,
	calculation_method = t.calculation_method,
	updated_at = NOW()
FROM unnest($1::uuid[], $2::int[], $3::numeric[], $4::numeric[], $5::numeric[], $6::numeric[], $7::text[])
	AS t(id, number_of_items, total_state_price, total_condition_price, total_repair_price, total_price, calculation_method)
WHERE bo.id = t.id`

const markOfferDevicesSQL = `
UPDATE devices AS d SET status = $1, updated_at = NOW()
FROM audit_items AS ai
WHERE d.last_audit_item_id = ai.id
	AND ai.buyback_offer_id = ANY($2::uuid[])`

// AggregateStore reads grouped child totals and writes parent aggregates
// directly, without going through the session.
type AggregateStore struct {
	q Querier
}

var _ ports.AggregateStore = (*AggregateStore)(nil)

// NewAggregateStore creates an aggregate store on a transaction
func NewAggregateStore(q Querier) *AggregateStore {
	return &AggregateStore{q: q}
}

// AuditRequestTotals groups request lines by request
func (s *AggregateStore) AuditRequestTotals(ctx context.Context, ids []uuid.UUID) ([]domain.RequestTotals, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := psql.Select(
		"audit_request_id",
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE received_quantity IS NULL)",
		"COALESCE(SUM(expected_quantity), 0)",
		"COALESCE(SUM(received_quantity), 0)",
	).
		From(tableAuditRequestItems).
		Where(squirrel.Eq{"audit_request_id": ids}).
		GroupBy("audit_request_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate request items: %w", err)
	}
	defer rows.Close()

	var out []domain.RequestTotals
	for rows.Next() {
		var t domain.RequestTotals
		if err := rows.Scan(&t.AuditRequestID, &t.Count, &t.EmptyReceived, &t.ExpectedQuantity, &t.ReceivedQuantity); err != nil {
			return nil, fmt.Errorf("failed to scan request totals: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// UpdateAuditRequestTotals writes every request total in one statement
func (s *AggregateStore) UpdateAuditRequestTotals(ctx context.Context, totals []domain.RequestTotals) error {
	if len(totals) == 0 {
		return nil
	}

	n := len(totals)
	ids := make([]uuid.UUID, n)
	counts := make([]int32, n)
	expected := make([]int32, n)
	received := make([]int32, n)
	completed := make([]bool, n)
	for i, t := range totals {
		ids[i] = t.AuditRequestID
		counts[i] = int32(t.Count)
		expected[i] = int32(t.ExpectedQuantity)
		received[i] = int32(t.ReceivedQuantity)
		completed[i] = t.Completed()
	}

	if _, err := s.q.Exec(ctx, updateRequestTotalsSQL, ids, counts, expected, received, completed); err != nil {
		return fmt.Errorf("failed to update audit request totals: %w", err)
	}
	return nil
}

// BuybackOfferTotals groups audit items by offer
func (s *AggregateStore) BuybackOfferTotals(ctx context.Context, ids []uuid.UUID) ([]domain.OfferTotals, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := psql.Select(
		"buyback_offer_id",
		"COUNT(*)",
		"COALESCE(SUM(state_price), 0)::text",
		"COALESCE(SUM(condition_price), 0)::text",
		"COALESCE(SUM(repair_price) FILTER (WHERE included_repair_price), 0)::text",
	).
		From(tableAuditItems).
		Where(squirrel.Eq{"buyback_offer_id": ids}).
		GroupBy("buyback_offer_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate audit items: %w", err)
	}
	defer rows.Close()

	var out []domain.OfferTotals
	for rows.Next() {
		var (
			t                       domain.OfferTotals
			state, condition, repair string
		)
		if err := rows.Scan(&t.BuybackOfferID, &t.Count, &state, &condition, &repair); err != nil {
			return nil, fmt.Errorf("failed to scan offer totals: %w", err)
		}
		if t.StatePrice, err = decimal.NewFromString(state); err != nil {
			return nil, fmt.Errorf("invalid state price total: %w", err)
		}
		if t.ConditionPrice, err = decimal.NewFromString(condition); err != nil {
			return nil, fmt.Errorf("invalid condition price total: %w", err)
		}
		if t.RepairPrice, err = decimal.NewFromString(repair); err != nil {
			return nil, fmt.Errorf("invalid repair price total: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// UpdateBuybackOfferTotals writes every offer total in one statement. The
// calculation method and total price follow the resolved totals.
func (s *AggregateStore) UpdateBuybackOfferTotals(ctx context.Context, totals []domain.OfferTotals) error {
	if len(totals) == 0 {
		return nil
	}

	n := len(totals)
	ids := make([]uuid.UUID, n)
	counts := make([]int32, n)
	state := make([]string, n)
	condition := make([]string, n)
	repair := make([]string, n)
	total := make([]string, n)
	methods := make([]string, n)
	for i, t := range totals {
		method, price := t.Resolve()
		ids[i] = t.BuybackOfferID
		counts[i] = int32(t.Count)
		state[i] = t.StatePrice.String()
		condition[i] = t.ConditionPrice.String()
		repair[i] = t.RepairPrice.String()
		total[i] = price.String()
		methods[i] = string(method)
	}

	if _, err := s.q.Exec(ctx, updateOfferTotalsSQL, ids, counts, state, condition, repair, total, methods); err != nil {
		return fmt.Errorf("failed to update buyback offer totals: %w", err)
	}
	return nil
}

// MarkOfferDevices sets the status of every device whose last audit item
// belongs to one of the offers
func (s *AggregateStore) MarkOfferDevices(ctx context.Context, offerIDs []uuid.UUID, status domain.DeviceStatus) (int64, error) {
	if len(offerIDs) == 0 {
		return 0, nil
	}
	tag, err := s.q.Exec(ctx, markOfferDevicesSQL, string(status), offerIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to mark offer devices: %w", err)
	}
	return tag.RowsAffected(), nil
}
