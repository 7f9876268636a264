// internal/core/domain/entity.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntityKind identifies the type of a tracked entity
type EntityKind string

// Entity kinds handled by the cascade engine
const (
	KindAuditRequest     EntityKind = "audit_request"
	KindAuditRequestItem EntityKind = "audit_request_item"
	KindAuditItem        EntityKind = "audit_item"
	KindBuybackOffer     EntityKind = "buyback_offer"
	KindDevice           EntityKind = "device"
	KindRepair           EntityKind = "repair"
)

// Field names used in change sets
const (
	FieldAuditRequest        = "audit_request"
	FieldAuditItem           = "audit_item"
	FieldDevice              = "device"
	FieldProduct             = "product"
	FieldProductCombination  = "product_combination"
	FieldAuditCondition      = "audit_condition"
	FieldStatus              = "status"
	FieldStatePrice          = "state_price"
	FieldConditionPrice      = "condition_price"
	FieldRepair              = "repair"
	FieldRepairPrice         = "repair_price"
	FieldIncludedRepairPrice = "included_repair_price"
	FieldBuybackOffer        = "buyback_offer"
	FieldCalculationMethod   = "calculation_method"
	FieldExpectedQuantity    = "expected_quantity"
	FieldReceivedQuantity    = "received_quantity"
	FieldShippingAddress     = "shipping_address"
	FieldLastAuditItem       = "last_audit_item"
	FieldReference           = "reference"
	FieldAccount             = "account"
	FieldClosed              = "closed"
	FieldValidated           = "validated"
	FieldConverted           = "converted"
	FieldReceiptedAt         = "receipted_at"
	FieldQualifiedAt         = "qualified_at"
	FieldAuditedAt           = "audited_at"
	FieldValorisedAt         = "valorised_at"
	FieldValidatedAt         = "validated_at"
	FieldAuditor             = "auditor"
	FieldPreviousAuditItem   = "previous_audit_item"
	FieldTerminatedAt        = "terminated_at"
	FieldPriceList           = "price_list"
	FieldComment             = "comment"
	FieldDate                = "date"
	FieldExpirationDate      = "expiration_date"
	FieldSupplier            = "supplier"
	FieldInvoiceAddress      = "invoice_address"
	FieldWorkcenter          = "workcenter"
	FieldIdentifierType      = "identifier_type"
	FieldSupplierOrderNumber = "supplier_order_number"
	FieldNumberOfItems       = "number_of_items"
	FieldTotalPrice          = "total_price"
	FieldTotalStatePrice     = "total_state_price"
	FieldTotalConditionPrice = "total_condition_price"
	FieldTotalRepairPrice    = "total_repair_price"
	FieldCompleted           = "completed"
	FieldContact             = "contact"
	FieldCustomerReference   = "customer_reference"
	FieldRepairer            = "repairer"
	FieldPrice               = "price"
)

// Entity is implemented by every object the unit of work can track.
// Fields returns a snapshot of comparable values keyed by field name.
type Entity interface {
	Kind() EntityKind
	EntityID() uuid.UUID
	Fields() FieldSet
}

// FieldSet is a point-in-time snapshot of an entity's tracked fields
type FieldSet map[string]any

// Change holds the old and new value of a single field
type Change struct {
	Old any
	New any
}

// ChangeSet maps field names to their change
type ChangeSet map[string]Change

// Has reports whether the field changed
func (c ChangeSet) Has(field string) bool {
	_, ok := c[field]
	return ok
}

// HasAny reports whether any of the fields changed
func (c ChangeSet) HasAny(fields ...string) bool {
	for _, f := range fields {
		if c.Has(f) {
			return true
		}
	}
	return false
}

// Old returns the previous value of a field, or nil
func (c ChangeSet) Old(field string) any {
	return c[field].Old
}

// Diff compares two snapshots. A nil before means the entity is new and every
// non-nil field of after counts as changed.
func Diff(before, after FieldSet) ChangeSet {
	changes := ChangeSet{}
	for field, value := range after {
		old, known := before[field]
		if before == nil || !known {
			if value != nil {
				changes[field] = Change{Old: nil, New: value}
			}
			continue
		}
		if old != value {
			changes[field] = Change{Old: old, New: value}
		}
	}
	for field, old := range before {
		if _, ok := after[field]; !ok && old != nil {
			changes[field] = Change{Old: old, New: nil}
		}
	}
	return changes
}

// snapshot helpers keep FieldSet values comparable with ==

func refValue[T any](p *T) any {
	if p == nil {
		return nil
	}
	return p
}

func idValue(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return *id
}

func stringValue(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func intValue(i *int) any {
	if i == nil {
		return nil
	}
	return *i
}

func timeValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UnixNano()
}

func decimalValue(d decimal.Decimal) any {
	return d.String()
}
