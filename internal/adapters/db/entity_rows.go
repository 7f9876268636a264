// internal/adapters/db/entity_rows.go
package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/ammerola/buyback-be/internal/core/domain"
)

// Table names
const (
	tableAuditRequests     = "audit_requests"
	tableAuditRequestItems = "audit_request_items"
	tableAuditItems        = "audit_items"
	tableBuybackOffers     = "buyback_offers"
	tableDevices           = "devices"
	tableRepairs           = "repairs"
	tableAuditConditions   = "audit_conditions"
	tableBuybackModules    = "buyback_modules"
)

var auditRequestColumns = []string{
	"id", "reference", "account_id", "supplier_id", "shipping_address_id",
	"invoice_address_id", "workcenter_id", "contact_id", "identifier_type",
	"supplier_order_number", "customer_reference", "date", "receipted_at",
	"status", "expected_quantity", "received_quantity", "number_of_items",
	"completed", "closed", "validated", "converted", "buyback_offer_id",
	"comment", "created_at", "updated_at",
}

var auditRequestItemColumns = []string{
	"id", "audit_request_id", "product_id", "product_combination_id",
	"expected_quantity", "received_quantity", "created_at", "updated_at",
}

var auditItemColumns = []string{
	"id", "audit_request_id", "device_id", "product_id", "product_combination_id",
	"audit_condition_id", "status", "condition_price", "state_price", "repair_id",
	"repair_price", "included_repair_price", "buyback_offer_id", "auditor_id",
	"previous_audit_item_id", "receipted_at", "qualified_at", "audited_at",
	"valorised_at", "closed", "validated", "comment", "created_at", "updated_at",
}

var buybackOfferColumns = []string{
	"id", "reference", "account_id", "supplier_id", "shipping_address_id",
	"invoice_address_id", "contact_id", "date", "expiration_date", "status",
	"calculation_method", "supplier_order_number", "number_of_items",
	"total_condition_price", "total_state_price", "total_repair_price",
	"total_price", "closed", "validated", "validated_at", "comment",
	"created_at", "updated_at",
}

var deviceColumns = []string{
	"id", "account_id", "product_id", "product_combination_id",
	"audit_condition_id", "last_audit_item_id", "status", "terminated_at",
	"created_at", "updated_at",
}

var repairColumns = []string{
	"id", "account_id", "contact_id", "workcenter_id", "invoice_address_id",
	"shipping_address_id", "product_id", "product_combination_id", "repairer_id",
	"device_id", "status", "price_list_id", "price", "created_at", "updated_at",
}

var buybackModuleColumns = []string{
	"id", "account_id", "enabled", "shipping_address_id", "invoice_address_id",
	"supplier_id", "workcenter_id", "identifier_type", "repair_price_list_id",
	"default_audit_request_status", "comment", "excluded_scope",
}

// auditRequestRow is a scanned request with its unresolved relations
type auditRequestRow struct {
	request *domain.AuditRequest
	offerID *uuid.UUID
}

func scanAuditRequest(row pgx.Row) (*auditRequestRow, error) {
	r := &domain.AuditRequest{}
	out := &auditRequestRow{request: r}
	err := row.Scan(
		&r.ID, &r.Reference, &r.AccountID, &r.SupplierID, &r.ShippingAddressID,
		&r.InvoiceAddressID, &r.WorkcenterID, &r.ContactID, &r.IdentifierType,
		&r.SupplierOrderNumber, &r.CustomerReference, &r.Date, &r.ReceiptedAt,
		&r.Status, &r.ExpectedQuantity, &r.ReceivedQuantity, &r.NumberOfItems,
		&r.Completed, &r.Closed, &r.Validated, &r.Converted, &out.offerID,
		&r.Comment, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

type auditRequestItemRow struct {
	item      *domain.AuditRequestItem
	requestID uuid.UUID
}

func scanAuditRequestItem(row pgx.Row) (*auditRequestItemRow, error) {
	i := &domain.AuditRequestItem{}
	out := &auditRequestItemRow{item: i}
	err := row.Scan(
		&i.ID, &out.requestID, &i.ProductID, &i.ProductCombinationID,
		&i.ExpectedQuantity, &i.ReceivedQuantity, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

type auditItemRow struct {
	item      *domain.AuditItem
	requestID uuid.UUID
	deviceID  *uuid.UUID
	repairID  *uuid.UUID
	offerID   *uuid.UUID
}

func scanAuditItem(row pgx.Row) (*auditItemRow, error) {
	i := &domain.AuditItem{}
	out := &auditItemRow{item: i}
	var (
		status    pgtype.Text
		condition pgtype.Numeric
		state     pgtype.Numeric
		repair    pgtype.Numeric
	)
	err := row.Scan(
		&i.ID, &out.requestID, &out.deviceID, &i.ProductID, &i.ProductCombinationID,
		&i.AuditConditionID, &status, &condition, &state, &out.repairID,
		&repair, &i.IncludedRepairPrice, &out.offerID, &i.AuditorID,
		&i.PreviousAuditItemID, &i.ReceiptedAt, &i.QualifiedAt, &i.AuditedAt,
		&i.ValorisedAt, &i.Closed, &i.Validated, &i.Comment, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if status.Valid {
		s := domain.AuditItemStatus(status.String)
		i.Status = &s
	}
	if i.ConditionPrice, err = numericToDecimal(condition); err != nil {
		return nil, err
	}
	if i.StatePrice, err = numericToDecimal(state); err != nil {
		return nil, err
	}
	if i.RepairPrice, err = numericToDecimal(repair); err != nil {
		return nil, err
	}
	return out, nil
}

func scanBuybackOffer(row pgx.Row) (*domain.BuybackOffer, error) {
	o := &domain.BuybackOffer{}
	var (
		method                          pgtype.Text
		condition, state, repair, total pgtype.Numeric
	)
	err := row.Scan(
		&o.ID, &o.Reference, &o.AccountID, &o.SupplierID, &o.ShippingAddressID,
		&o.InvoiceAddressID, &o.ContactID, &o.Date, &o.ExpirationDate, &o.Status,
		&method, &o.SupplierOrderNumber, &o.NumberOfItems,
		&condition, &state, &repair, &total,
		&o.Closed, &o.Validated, &o.ValidatedAt, &o.Comment,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if method.Valid {
		m := domain.CalculationMethod(method.String)
		o.CalculationMethod = &m
	}
	for _, f := range []struct {
		src pgtype.Numeric
		dst *decimal.Decimal
	}{
		{condition, &o.TotalConditionPrice},
		{state, &o.TotalStatePrice},
		{repair, &o.TotalRepairPrice},
		{total, &o.TotalPrice},
	} {
		if *f.dst, err = numericToDecimal(f.src); err != nil {
			return nil, err
		}
	}
	return o, nil
}

type deviceRow struct {
	device     *domain.Device
	lastItemID *uuid.UUID
}

func scanDevice(row pgx.Row) (*deviceRow, error) {
	d := &domain.Device{}
	out := &deviceRow{device: d}
	var status pgtype.Text
	err := row.Scan(
		&d.ID, &d.AccountID, &d.ProductID, &d.ProductCombinationID,
		&d.AuditConditionID, &out.lastItemID, &status, &d.TerminatedAt,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if status.Valid {
		s := domain.DeviceStatus(status.String)
		d.Status = &s
	}
	return out, nil
}

type repairRow struct {
	repair   *domain.Repair
	deviceID *uuid.UUID
}

func scanRepair(row pgx.Row) (*repairRow, error) {
	r := &domain.Repair{}
	out := &repairRow{repair: r}
	var price pgtype.Numeric
	err := row.Scan(
		&r.ID, &r.AccountID, &r.ContactID, &r.WorkcenterID, &r.InvoiceAddressID,
		&r.ShippingAddressID, &r.ProductID, &r.ProductCombinationID, &r.RepairerID,
		&out.deviceID, &r.Status, &r.PriceListID, &price, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if r.Price, err = numericToDecimal(price); err != nil {
		return nil, err
	}
	return out, nil
}

func scanBuybackModule(row pgx.Row) (*domain.BuybackModule, error) {
	m := &domain.BuybackModule{}
	err := row.Scan(
		&m.ID, &m.AccountID, &m.Enabled, &m.ShippingAddressID, &m.InvoiceAddressID,
		&m.SupplierID, &m.WorkcenterID, &m.IdentifierType, &m.RepairPriceListID,
		&m.DefaultAuditRequestStatus, &m.Comment, &m.ExcludedScope,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// rowValues maps an entity to its table and column values
func rowValues(e domain.Entity) (string, map[string]any, error) {
	switch v := e.(type) {
	case *domain.AuditRequest:
		return tableAuditRequests, map[string]any{
			"id":                    v.ID,
			"reference":             v.Reference,
			"account_id":            v.AccountID,
			"supplier_id":           v.SupplierID,
			"shipping_address_id":   v.ShippingAddressID,
			"invoice_address_id":    v.InvoiceAddressID,
			"workcenter_id":         v.WorkcenterID,
			"contact_id":            v.ContactID,
			"identifier_type":       v.IdentifierType,
			"supplier_order_number": v.SupplierOrderNumber,
			"customer_reference":    v.CustomerReference,
			"date":                  v.Date,
			"receipted_at":          v.ReceiptedAt,
			"status":                v.Status,
			"expected_quantity":     v.ExpectedQuantity,
			"received_quantity":     v.ReceivedQuantity,
			"number_of_items":       v.NumberOfItems,
			"completed":             v.Completed,
			"closed":                v.Closed,
			"validated":             v.Validated,
			"converted":             v.Converted,
			"buyback_offer_id":      ref(v.BuybackOffer),
			"comment":               v.Comment,
			"created_at":            v.CreatedAt,
			"updated_at":            v.UpdatedAt,
		}, nil

	case *domain.AuditRequestItem:
		return tableAuditRequestItems, map[string]any{
			"id":                     v.ID,
			"audit_request_id":       ref(v.AuditRequest),
			"product_id":             v.ProductID,
			"product_combination_id": v.ProductCombinationID,
			"expected_quantity":      v.ExpectedQuantity,
			"received_quantity":      v.ReceivedQuantity,
			"created_at":             v.CreatedAt,
			"updated_at":             v.UpdatedAt,
		}, nil

	case *domain.AuditItem:
		return tableAuditItems, map[string]any{
			"id":                     v.ID,
			"audit_request_id":       ref(v.AuditRequest),
			"device_id":              ref(v.Device),
			"product_id":             v.ProductID,
			"product_combination_id": v.ProductCombinationID,
			"audit_condition_id":     v.AuditConditionID,
			"status":                 v.StatusValue(),
			"condition_price":        v.ConditionPrice.String(),
			"state_price":            v.StatePrice.String(),
			"repair_id":              ref(v.Repair),
			"repair_price":           v.RepairPrice.String(),
			"included_repair_price":  v.IncludedRepairPrice,
			"buyback_offer_id":       ref(v.BuybackOffer),
			"auditor_id":             v.AuditorID,
			"previous_audit_item_id": v.PreviousAuditItemID,
			"receipted_at":           v.ReceiptedAt,
			"qualified_at":           v.QualifiedAt,
			"audited_at":             v.AuditedAt,
			"valorised_at":           v.ValorisedAt,
			"closed":                 v.Closed,
			"validated":              v.Validated,
			"comment":                v.Comment,
			"created_at":             v.CreatedAt,
			"updated_at":             v.UpdatedAt,
		}, nil

	case *domain.BuybackOffer:
		var method *string
		if v.CalculationMethod != nil {
			m := string(*v.CalculationMethod)
			method = &m
		}
		return tableBuybackOffers, map[string]any{
			"id":                    v.ID,
			"reference":             v.Reference,
			"account_id":            v.AccountID,
			"supplier_id":           v.SupplierID,
			"shipping_address_id":   v.ShippingAddressID,
			"invoice_address_id":    v.InvoiceAddressID,
			"contact_id":            v.ContactID,
			"date":                  v.Date,
			"expiration_date":       v.ExpirationDate,
			"status":                v.Status,
			"calculation_method":    method,
			"supplier_order_number": v.SupplierOrderNumber,
			"number_of_items":       v.NumberOfItems,
			"total_condition_price": v.TotalConditionPrice.String(),
			"total_state_price":     v.TotalStatePrice.String(),
			"total_repair_price":    v.TotalRepairPrice.String(),
			"total_price":           v.TotalPrice.String(),
			"closed":                v.Closed,
			"validated":             v.Validated,
			"validated_at":          v.ValidatedAt,
			"comment":               v.Comment,
			"created_at":            v.CreatedAt,
			"updated_at":            v.UpdatedAt,
		}, nil

	case *domain.Device:
		var status *string
		if v.Status != nil {
			s := string(*v.Status)
			status = &s
		}
		return tableDevices, map[string]any{
			"id":                     v.ID,
			"account_id":             v.AccountID,
			"product_id":             v.ProductID,
			"product_combination_id": v.ProductCombinationID,
			"audit_condition_id":     v.AuditConditionID,
			"last_audit_item_id":     ref(v.LastAuditItem),
			"status":                 status,
			"terminated_at":          v.TerminatedAt,
			"created_at":             v.CreatedAt,
			"updated_at":             v.UpdatedAt,
		}, nil

	case *domain.Repair:
		return tableRepairs, map[string]any{
			"id":                     v.ID,
			"account_id":             v.AccountID,
			"contact_id":             v.ContactID,
			"workcenter_id":          v.WorkcenterID,
			"invoice_address_id":     v.InvoiceAddressID,
			"shipping_address_id":    v.ShippingAddressID,
			"product_id":             v.ProductID,
			"product_combination_id": v.ProductCombinationID,
			"repairer_id":            v.RepairerID,
			"device_id":              ref(v.Device),
			"status":                 v.Status,
			"price_list_id":          v.PriceListID,
			"price":                  v.Price.String(),
			"created_at":             v.CreatedAt,
			"updated_at":             v.UpdatedAt,
		}, nil
	}

	return "", nil, fmt.Errorf("unsupported entity kind %s", e.Kind())
}

// changedValues restricts an entity's row to the columns behind changes.
// Relation fields map to their "_id" column; fields without a column are
// skipped.
func changedValues(e domain.Entity, changes domain.ChangeSet) (string, map[string]any, error) {
	table, row, err := rowValues(e)
	if err != nil {
		return "", nil, err
	}
	values := make(map[string]any, len(changes))
	for field := range changes {
		for _, column := range []string{field, field + "_id"} {
			if column == "id" || column == "created_at" || column == "updated_at" {
				continue
			}
			if v, ok := row[column]; ok {
				values[column] = v
				break
			}
		}
	}
	return table, values, nil
}

// ref returns the id of a related entity, or nil
func ref[T any, P interface {
	*T
	EntityID() uuid.UUID
}](p P) *uuid.UUID {
	if p == nil {
		return nil
	}
	id := p.EntityID()
	return &id
}

func numericToDecimal(n pgtype.Numeric) (decimal.Decimal, error) {
	if !n.Valid {
		return decimal.Zero, nil
	}
	if n.NaN || n.InfinityModifier != pgtype.Finite {
		return decimal.Zero, fmt.Errorf("numeric value is not finite")
	}
	return decimal.NewFromBigInt(n.Int, n.Exp), nil
}

// createdTimestamps fills zero timestamps of entities created outside a
// service call, e.g. materialized audit items.
func createdTimestamps(values map[string]any, now time.Time) {
	if t, ok := values["created_at"].(time.Time); ok && t.IsZero() {
		values["created_at"] = now
	}
	values["updated_at"] = now
}
