// internal/core/domain/buyback_offer.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BuybackOffer is a priced proposal aggregating valorised audit items
type BuybackOffer struct {
	ID                  uuid.UUID          `json:"id"`
	Reference           *string            `json:"reference,omitempty"`
	AccountID           uuid.UUID          `json:"account_id"`
	SupplierID          *uuid.UUID         `json:"supplier_id,omitempty"`
	ShippingAddressID   *uuid.UUID         `json:"shipping_address_id,omitempty"`
	InvoiceAddressID    *uuid.UUID         `json:"invoice_address_id,omitempty"`
	ContactID           *uuid.UUID         `json:"contact_id,omitempty"`
	Date                *time.Time         `json:"date,omitempty"`
	ExpirationDate      *time.Time         `json:"expiration_date,omitempty"`
	Status              *string            `json:"status,omitempty"`
	CalculationMethod   *CalculationMethod `json:"calculation_method,omitempty"`
	SupplierOrderNumber *string            `json:"supplier_order_number,omitempty"`
	NumberOfItems       int                `json:"number_of_items"`
	TotalConditionPrice decimal.Decimal    `json:"total_condition_price"`
	TotalStatePrice     decimal.Decimal    `json:"total_state_price"`
	TotalRepairPrice    decimal.Decimal    `json:"total_repair_price"`
	TotalPrice          decimal.Decimal    `json:"total_price"`
	Closed              bool               `json:"closed"`
	Validated           bool               `json:"validated"`
	ValidatedAt         *time.Time         `json:"validated_at,omitempty"`
	Comment             *string            `json:"comment,omitempty"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

// Kind implements Entity
func (o *BuybackOffer) Kind() EntityKind { return KindBuybackOffer }

// EntityID implements Entity
func (o *BuybackOffer) EntityID() uuid.UUID { return o.ID }

// Fields implements Entity
func (o *BuybackOffer) Fields() FieldSet {
	var method any
	if o.CalculationMethod != nil {
		method = string(*o.CalculationMethod)
	}
	return FieldSet{
		FieldReference:           stringValue(o.Reference),
		FieldAccount:             o.AccountID,
		FieldSupplier:            idValue(o.SupplierID),
		FieldShippingAddress:     idValue(o.ShippingAddressID),
		FieldInvoiceAddress:      idValue(o.InvoiceAddressID),
		FieldContact:             idValue(o.ContactID),
		FieldDate:                timeValue(o.Date),
		FieldExpirationDate:      timeValue(o.ExpirationDate),
		FieldStatus:              stringValue(o.Status),
		FieldCalculationMethod:   method,
		FieldSupplierOrderNumber: stringValue(o.SupplierOrderNumber),
		FieldNumberOfItems:       o.NumberOfItems,
		FieldTotalConditionPrice: decimalValue(o.TotalConditionPrice),
		FieldTotalStatePrice:     decimalValue(o.TotalStatePrice),
		FieldTotalRepairPrice:    decimalValue(o.TotalRepairPrice),
		FieldTotalPrice:          decimalValue(o.TotalPrice),
		FieldClosed:              o.Closed,
		FieldValidated:           o.Validated,
		FieldValidatedAt:         timeValue(o.ValidatedAt),
		FieldComment:             stringValue(o.Comment),
	}
}

// Validate performs domain validation on the offer
func (o *BuybackOffer) Validate() error {
	if o.AccountID == uuid.Nil {
		return InvalidField(FieldAccount, "account_id is required")
	}
	if o.CalculationMethod != nil && !o.CalculationMethod.IsValid() {
		return InvalidField(FieldCalculationMethod, "calculation_method must be by_state or by_condition")
	}
	return nil
}

// PrepareForStorage assigns an id and timestamps
func (o *BuybackOffer) PrepareForStorage() {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	now := time.Now()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now
}

// RecalculateTotalPrice applies the explicit calculation method to the
// current totals.
func (o *BuybackOffer) RecalculateTotalPrice() {
	method := CalculationByState
	if o.CalculationMethod != nil {
		method = *o.CalculationMethod
	}
	o.TotalPrice = CalculateOfferTotal(method, o.TotalStatePrice, o.TotalConditionPrice, o.TotalRepairPrice)
}

// CalculateOfferTotal returns the chosen price sum plus the repair sum
func CalculateOfferTotal(method CalculationMethod, state, condition, repair decimal.Decimal) decimal.Decimal {
	if method == CalculationByCondition {
		return condition.Add(repair)
	}
	return state.Add(repair)
}

// OfferTotals is the aggregate of an offer's member audit items
type OfferTotals struct {
	BuybackOfferID uuid.UUID
	Count          int
	StatePrice     decimal.Decimal
	ConditionPrice decimal.Decimal
	RepairPrice    decimal.Decimal
}

// Resolve picks the calculation method with the larger sum, preferring
// by_state on ties, and returns it with the total price.
func (t OfferTotals) Resolve() (CalculationMethod, decimal.Decimal) {
	method := CalculationByCondition
	if t.StatePrice.GreaterThanOrEqual(t.ConditionPrice) {
		method = CalculationByState
	}
	return method, CalculateOfferTotal(method, t.StatePrice, t.ConditionPrice, t.RepairPrice)
}

// PriceRule sets item prices from an audit condition
type PriceRule struct {
	FunctionalPrice    *decimal.Decimal
	NonfunctionalPrice *decimal.Decimal
	ConditionPrices    map[uuid.UUID]decimal.Decimal
}

// Apply sets the state price from the condition state and the condition
// price from the per-condition table. It reports whether a price changed.
func (r PriceRule) Apply(item *AuditItem, condition *AuditCondition) bool {
	if condition == nil {
		return false
	}
	changed := false
	if condition.State != nil {
		var price *decimal.Decimal
		switch *condition.State {
		case ConditionStateFunctional:
			price = r.FunctionalPrice
		case ConditionStateNonfunctional:
			price = r.NonfunctionalPrice
		}
		if price != nil && !price.Equal(item.StatePrice) {
			item.StatePrice = *price
			changed = true
		}
	}
	if price, ok := r.ConditionPrices[condition.ID]; ok && !price.Equal(item.ConditionPrice) {
		item.ConditionPrice = price
		changed = true
	}
	return changed
}

// AuditCondition grades the physical state of a device
type AuditCondition struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	State *string   `json:"state,omitempty"`
}

// OfferSnapshot is the archived form of a validated offer
type OfferSnapshot struct {
	Offer      BuybackOffer        `json:"offer"`
	Items      []OfferSnapshotItem `json:"items"`
	ArchivedAt time.Time           `json:"archived_at"`
}

// OfferSnapshotItem is one member audit item of an archived offer
type OfferSnapshotItem struct {
	AuditItemID         uuid.UUID       `json:"audit_item_id"`
	DeviceID            *uuid.UUID      `json:"device_id,omitempty"`
	ProductID           *uuid.UUID      `json:"product_id,omitempty"`
	AuditConditionID    *uuid.UUID      `json:"audit_condition_id,omitempty"`
	StatePrice          decimal.Decimal `json:"state_price"`
	ConditionPrice      decimal.Decimal `json:"condition_price"`
	RepairPrice         decimal.Decimal `json:"repair_price"`
	IncludedRepairPrice bool            `json:"included_repair_price"`
}

// NewOfferSnapshot captures the offer and its member items
func NewOfferSnapshot(offer *BuybackOffer, items []*AuditItem, now time.Time) *OfferSnapshot {
	snapshot := &OfferSnapshot{
		Offer:      *offer,
		Items:      make([]OfferSnapshotItem, 0, len(items)),
		ArchivedAt: now,
	}
	for _, item := range items {
		entry := OfferSnapshotItem{
			AuditItemID:         item.ID,
			ProductID:           item.ProductID,
			AuditConditionID:    item.AuditConditionID,
			StatePrice:          item.StatePrice,
			ConditionPrice:      item.ConditionPrice,
			RepairPrice:         item.RepairPrice,
			IncludedRepairPrice: item.IncludedRepairPrice,
		}
		if item.Device != nil {
			id := item.Device.ID
			entry.DeviceID = &id
		}
		snapshot.Items = append(snapshot.Items, entry)
	}
	return snapshot
}
