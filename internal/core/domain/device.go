// internal/core/domain/device.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Device carries the audit-related fields of a tracked device
type Device struct {
	ID                   uuid.UUID     `json:"id"`
	AccountID            *uuid.UUID    `json:"account_id,omitempty"`
	ProductID            *uuid.UUID    `json:"product_id,omitempty"`
	ProductCombinationID *uuid.UUID    `json:"product_combination_id,omitempty"`
	AuditConditionID     *uuid.UUID    `json:"audit_condition_id,omitempty"`
	LastAuditItem        *AuditItem    `json:"-"`
	Status               *DeviceStatus `json:"status,omitempty"`
	TerminatedAt         *time.Time    `json:"terminated_at,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

// Kind implements Entity
func (d *Device) Kind() EntityKind { return KindDevice }

// EntityID implements Entity
func (d *Device) EntityID() uuid.UUID { return d.ID }

// Fields implements Entity
func (d *Device) Fields() FieldSet {
	var status any
	if d.Status != nil {
		status = string(*d.Status)
	}
	return FieldSet{
		FieldAccount:            idValue(d.AccountID),
		FieldProduct:            idValue(d.ProductID),
		FieldProductCombination: idValue(d.ProductCombinationID),
		FieldAuditCondition:     idValue(d.AuditConditionID),
		FieldLastAuditItem:      refValue(d.LastAuditItem),
		FieldStatus:             status,
		FieldTerminatedAt:       timeValue(d.TerminatedAt),
	}
}

// StatusIs reports whether the device status equals s
func (d *Device) StatusIs(s DeviceStatus) bool {
	return d.Status != nil && *d.Status == s
}

// SetStatus changes the status and reports whether it differed
func (d *Device) SetStatus(s DeviceStatus) bool {
	if d.StatusIs(s) {
		return false
	}
	d.Status = &s
	return true
}

// BuybackModule is the per-account configuration of the buyback workflow
type BuybackModule struct {
	ID                        uuid.UUID  `json:"id"`
	AccountID                 uuid.UUID  `json:"account_id"`
	Enabled                   bool       `json:"enabled"`
	ShippingAddressID         *uuid.UUID `json:"shipping_address_id,omitempty"`
	InvoiceAddressID          *uuid.UUID `json:"invoice_address_id,omitempty"`
	SupplierID                *uuid.UUID `json:"supplier_id,omitempty"`
	WorkcenterID              *uuid.UUID `json:"workcenter_id,omitempty"`
	IdentifierType            *string    `json:"identifier_type,omitempty"`
	RepairPriceListID         *uuid.UUID `json:"repair_price_list_id,omitempty"`
	DefaultAuditRequestStatus *string    `json:"default_audit_request_status,omitempty"`
	Comment                   *string    `json:"comment,omitempty"`
	ExcludedScope             *string    `json:"excluded_scope,omitempty"`
}

// Repair is the repair record created when an audit item is handed off
type Repair struct {
	ID                   uuid.UUID       `json:"id"`
	AccountID            uuid.UUID       `json:"account_id"`
	ContactID            *uuid.UUID      `json:"contact_id,omitempty"`
	WorkcenterID         *uuid.UUID      `json:"workcenter_id,omitempty"`
	InvoiceAddressID     *uuid.UUID      `json:"invoice_address_id,omitempty"`
	ShippingAddressID    *uuid.UUID      `json:"shipping_address_id,omitempty"`
	ProductID            *uuid.UUID      `json:"product_id,omitempty"`
	ProductCombinationID *uuid.UUID      `json:"product_combination_id,omitempty"`
	RepairerID           *uuid.UUID      `json:"repairer_id,omitempty"`
	Device               *Device         `json:"-"`
	Status               string          `json:"status"`
	PriceListID          *uuid.UUID      `json:"price_list_id,omitempty"`
	AuditItem            *AuditItem      `json:"-"`
	Price                decimal.Decimal `json:"price"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// Kind implements Entity
func (r *Repair) Kind() EntityKind { return KindRepair }

// EntityID implements Entity
func (r *Repair) EntityID() uuid.UUID { return r.ID }

// Fields implements Entity
func (r *Repair) Fields() FieldSet {
	return FieldSet{
		FieldAccount:            r.AccountID,
		FieldContact:            idValue(r.ContactID),
		FieldWorkcenter:         idValue(r.WorkcenterID),
		FieldInvoiceAddress:     idValue(r.InvoiceAddressID),
		FieldShippingAddress:    idValue(r.ShippingAddressID),
		FieldProduct:            idValue(r.ProductID),
		FieldProductCombination: idValue(r.ProductCombinationID),
		FieldRepairer:           idValue(r.RepairerID),
		FieldDevice:             refValue(r.Device),
		FieldStatus:             r.Status,
		FieldPriceList:          idValue(r.PriceListID),
		FieldAuditItem:          refValue(r.AuditItem),
		FieldPrice:              decimalValue(r.Price),
	}
}

// AttachRepair links an audit item and a repair in both directions,
// releasing the item's previous repair.
func AttachRepair(item *AuditItem, repair *Repair) {
	if item.Repair != nil && item.Repair != repair {
		item.Repair.AuditItem = nil
	}
	item.Repair = repair
	if repair != nil {
		repair.AuditItem = item
	}
}

// PrepareForStorage assigns an id and timestamps
func (r *Repair) PrepareForStorage() {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
}
