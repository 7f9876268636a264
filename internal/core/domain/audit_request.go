// internal/core/domain/audit_request.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRequest represents one shipment of devices from a supplier
type AuditRequest struct {
	ID                  uuid.UUID           `json:"id"`
	Reference           *string             `json:"reference,omitempty"`
	AccountID           uuid.UUID           `json:"account_id"`
	SupplierID          *uuid.UUID          `json:"supplier_id,omitempty"`
	ShippingAddressID   *uuid.UUID          `json:"shipping_address_id,omitempty"`
	InvoiceAddressID    *uuid.UUID          `json:"invoice_address_id,omitempty"`
	WorkcenterID        *uuid.UUID          `json:"workcenter_id,omitempty"`
	ContactID           *uuid.UUID          `json:"contact_id,omitempty"`
	IdentifierType      *string             `json:"identifier_type,omitempty"`
	SupplierOrderNumber *string             `json:"supplier_order_number,omitempty"`
	CustomerReference   *string             `json:"customer_reference,omitempty"`
	Date                *time.Time          `json:"date,omitempty"`
	ReceiptedAt         *time.Time          `json:"receipted_at,omitempty"`
	Status              *string             `json:"status,omitempty"`
	ExpectedQuantity    int                 `json:"expected_quantity"`
	ReceivedQuantity    int                 `json:"received_quantity"`
	NumberOfItems       int                 `json:"number_of_items"`
	Completed           bool                `json:"completed"`
	Closed              bool                `json:"closed"`
	Validated           bool                `json:"validated"`
	Converted           bool                `json:"converted"`
	BuybackOffer        *BuybackOffer       `json:"-"`
	Comment             *string             `json:"comment,omitempty"`
	Items               []*AuditRequestItem `json:"-"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// Kind implements Entity
func (r *AuditRequest) Kind() EntityKind { return KindAuditRequest }

// EntityID implements Entity
func (r *AuditRequest) EntityID() uuid.UUID { return r.ID }

// Fields implements Entity
func (r *AuditRequest) Fields() FieldSet {
	return FieldSet{
		FieldReference:           stringValue(r.Reference),
		FieldAccount:             r.AccountID,
		FieldSupplier:            idValue(r.SupplierID),
		FieldShippingAddress:     idValue(r.ShippingAddressID),
		FieldInvoiceAddress:      idValue(r.InvoiceAddressID),
		FieldWorkcenter:          idValue(r.WorkcenterID),
		FieldContact:             idValue(r.ContactID),
		FieldIdentifierType:      stringValue(r.IdentifierType),
		FieldSupplierOrderNumber: stringValue(r.SupplierOrderNumber),
		FieldCustomerReference:   stringValue(r.CustomerReference),
		FieldDate:                timeValue(r.Date),
		FieldReceiptedAt:         timeValue(r.ReceiptedAt),
		FieldStatus:              stringValue(r.Status),
		FieldExpectedQuantity:    r.ExpectedQuantity,
		FieldReceivedQuantity:    r.ReceivedQuantity,
		FieldNumberOfItems:       r.NumberOfItems,
		FieldCompleted:           r.Completed,
		FieldClosed:              r.Closed,
		FieldValidated:           r.Validated,
		FieldConverted:           r.Converted,
		FieldBuybackOffer:        refValue(r.BuybackOffer),
		FieldComment:             stringValue(r.Comment),
	}
}

// ContainedItems returns the number of line items, preferring the loaded
// collection over the stored aggregate.
func (r *AuditRequest) ContainedItems() int {
	if r.Items != nil {
		return len(r.Items)
	}
	return r.NumberOfItems
}

// StatusIs reports whether the request status equals value
func (r *AuditRequest) StatusIs(value string) bool {
	return r.Status != nil && *r.Status == value
}

// Validate performs domain validation on the audit request
func (r *AuditRequest) Validate() error {
	if r.AccountID == uuid.Nil {
		return InvalidField(FieldAccount, "account_id is required")
	}
	return nil
}

// PrepareForStorage assigns an id and timestamps
func (r *AuditRequest) PrepareForStorage() {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
}

// AuditRequestItem is one expected product line of an audit request
type AuditRequestItem struct {
	ID                   uuid.UUID     `json:"id"`
	AuditRequest         *AuditRequest `json:"-"`
	ProductID            uuid.UUID     `json:"product_id"`
	ProductCombinationID *uuid.UUID    `json:"product_combination_id,omitempty"`
	ExpectedQuantity     *int          `json:"expected_quantity,omitempty"`
	ReceivedQuantity     *int          `json:"received_quantity,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

// Kind implements Entity
func (i *AuditRequestItem) Kind() EntityKind { return KindAuditRequestItem }

// EntityID implements Entity
func (i *AuditRequestItem) EntityID() uuid.UUID { return i.ID }

// Fields implements Entity
func (i *AuditRequestItem) Fields() FieldSet {
	return FieldSet{
		FieldAuditRequest:       refValue(i.AuditRequest),
		FieldProduct:            i.ProductID,
		FieldProductCombination: idValue(i.ProductCombinationID),
		FieldExpectedQuantity:   intValue(i.ExpectedQuantity),
		FieldReceivedQuantity:   intValue(i.ReceivedQuantity),
	}
}

// Validate performs domain validation on the line item
func (i *AuditRequestItem) Validate() error {
	if i.AuditRequest == nil {
		return InvalidField(FieldAuditRequest, "audit_request is required")
	}
	if i.ProductID == uuid.Nil {
		return InvalidField(FieldProduct, "product_id is required")
	}
	if i.ExpectedQuantity != nil && *i.ExpectedQuantity < 0 {
		return InvalidField(FieldExpectedQuantity, "expected_quantity cannot be negative")
	}
	if i.ReceivedQuantity != nil && *i.ReceivedQuantity < 0 {
		return InvalidField(FieldReceivedQuantity, "received_quantity cannot be negative")
	}
	return nil
}

// PrepareForStorage assigns an id and timestamps
func (i *AuditRequestItem) PrepareForStorage() {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	now := time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	i.UpdatedAt = now
}

// RequestTotals is the aggregate of an audit request's line items
type RequestTotals struct {
	AuditRequestID   uuid.UUID
	Count            int
	EmptyReceived    int
	ExpectedQuantity int
	ReceivedQuantity int
}

// Completed reports whether every line has a received quantity and
// something was expected.
func (t RequestTotals) Completed() bool {
	return t.EmptyReceived == 0 && t.ExpectedQuantity > 0
}

// MaterializeAuditItems creates one audit item per received unit of every
// line item. Each inherits the line's product and the request's receipt date.
func (r *AuditRequest) MaterializeAuditItems(now time.Time) []*AuditItem {
	receiptedAt := now
	if r.ReceiptedAt != nil {
		receiptedAt = *r.ReceiptedAt
	}

	var items []*AuditItem
	for _, line := range r.Items {
		if line.ReceivedQuantity == nil {
			continue
		}
		for n := 0; n < *line.ReceivedQuantity; n++ {
			productID := line.ProductID
			at := receiptedAt
			item := &AuditItem{
				AuditRequest:         r,
				ProductID:            &productID,
				ProductCombinationID: copyID(line.ProductCombinationID),
				ReceiptedAt:          &at,
			}
			item.PrepareForStorage()
			items = append(items, item)
		}
	}
	return items
}

func copyID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
