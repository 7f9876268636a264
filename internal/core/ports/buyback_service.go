// internal/core/ports/buyback_service.go
package ports

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammerola/buyback-be/internal/core/domain"
)

// BuybackService defines the application service port for the buyback
// workflow. Every write runs in one transaction together with its cascade.
type BuybackService interface {
	CreateAuditRequest(ctx context.Context, in AuditRequestInput) (*domain.AuditRequest, error)
	GetAuditRequest(ctx context.Context, id uuid.UUID) (*domain.AuditRequest, error)
	UpdateAuditRequest(ctx context.Context, id uuid.UUID, patch AuditRequestPatch) (*domain.AuditRequest, error)
	ConvertAuditRequest(ctx context.Context, id uuid.UUID) (*domain.AuditRequest, error)

	AddAuditRequestItem(ctx context.Context, requestID uuid.UUID, in AuditRequestItemInput) (*domain.AuditRequestItem, error)
	UpdateAuditRequestItem(ctx context.Context, id uuid.UUID, patch AuditRequestItemPatch) (*domain.AuditRequestItem, error)
	DeleteAuditRequestItem(ctx context.Context, id uuid.UUID) error

	CreateAuditItem(ctx context.Context, in AuditItemInput) (*domain.AuditItem, error)
	GetAuditItem(ctx context.Context, id uuid.UUID) (*domain.AuditItem, error)
	UpdateAuditItem(ctx context.Context, id uuid.UUID, patch AuditItemPatch) (*domain.AuditItem, error)
	DeleteAuditItem(ctx context.Context, id uuid.UUID) error

	CreateBuybackOffer(ctx context.Context, in BuybackOfferInput) (*domain.BuybackOffer, error)
	GetBuybackOffer(ctx context.Context, id uuid.UUID) (*domain.BuybackOffer, error)
	UpdateBuybackOffer(ctx context.Context, id uuid.UUID, patch BuybackOfferPatch) (*domain.BuybackOffer, error)
	AddAuditItemsToOffer(ctx context.Context, accountID uuid.UUID, offerID *uuid.UUID, selection OfferSelection) (*domain.BuybackOffer, error)
	ApplyPriceRule(ctx context.Context, offerID uuid.UUID, selection OfferSelection, rule domain.PriceRule) (*domain.BuybackOffer, error)
	ArchiveOffer(ctx context.Context, offerID uuid.UUID) (string, error)

	AvailableProducts(ctx context.Context, scope OfferScope) ([]AvailableProduct, error)
	AvailableConditions(ctx context.Context, scope OfferScope, selection OfferSelection) ([]*domain.AuditCondition, error)
	AvailableSupplierOrderNumbers(ctx context.Context, scope OfferScope, selection OfferSelection) ([]string, error)
	AvailableAudits(ctx context.Context, scope OfferScope, selection OfferSelection) ([]*domain.AuditItem, error)

	TransferToRepair(ctx context.Context, auditItemID uuid.UUID, in RepairTransferInput) (*domain.Repair, error)
	DeleteRepair(ctx context.Context, id uuid.UUID) error
	SyncRepairPrices(ctx context.Context, prices []RepairPrice) (int, error)

	UpdateDevice(ctx context.Context, id uuid.UUID, patch DevicePatch) (*domain.Device, error)

	ReconcileAggregates(ctx context.Context, requestIDs, offerIDs []uuid.UUID) error
}

// Optional is a patch value. Set is false when the field was absent; a set
// field with a nil Value clears it.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns a set optional holding v
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns a set optional that clears the field
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON distinguishes an explicit null from an absent field
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// Apply copies a set value into dst
func (o Optional[T]) Apply(dst **T) {
	if !o.Set {
		return
	}
	if o.Value == nil {
		*dst = nil
		return
	}
	v := *o.Value
	*dst = &v
}

// AuditRequestInput carries the fields of a new audit request
type AuditRequestInput struct {
	AccountID           uuid.UUID
	SupplierID          *uuid.UUID
	ShippingAddressID   *uuid.UUID
	InvoiceAddressID    *uuid.UUID
	WorkcenterID        *uuid.UUID
	ContactID           *uuid.UUID
	BuybackOfferID      *uuid.UUID
	IdentifierType      *string
	SupplierOrderNumber *string
	CustomerReference   *string
	Status              *string
	Comment             *string
	Date                *time.Time
	Items               []AuditRequestItemInput
}

// AuditRequestPatch carries the editable fields of an audit request
type AuditRequestPatch struct {
	Status              Optional[string]
	ReceiptedAt         Optional[time.Time]
	ShippingAddressID   Optional[uuid.UUID]
	InvoiceAddressID    Optional[uuid.UUID]
	ContactID           Optional[uuid.UUID]
	BuybackOfferID      Optional[uuid.UUID]
	SupplierOrderNumber Optional[string]
	CustomerReference   Optional[string]
	Comment             Optional[string]
}

// AuditRequestItemInput carries one product line
type AuditRequestItemInput struct {
	ProductID            uuid.UUID
	ProductCombinationID *uuid.UUID
	ExpectedQuantity     *int
	ReceivedQuantity     *int
}

// AuditRequestItemPatch carries the editable quantities of a line
type AuditRequestItemPatch struct {
	ExpectedQuantity Optional[int]
	ReceivedQuantity Optional[int]
}

// AuditItemInput carries the fields of a new audit item
type AuditItemInput struct {
	AuditRequestID       uuid.UUID
	DeviceID             *uuid.UUID
	ProductID            *uuid.UUID
	ProductCombinationID *uuid.UUID
	AuditConditionID     *uuid.UUID
	BuybackOfferID       *uuid.UUID
	StatePrice           *decimal.Decimal
	ConditionPrice       *decimal.Decimal
	Comment              *string
}

// AuditItemPatch carries the editable fields of an audit item
type AuditItemPatch struct {
	DeviceID             Optional[uuid.UUID]
	ProductID            Optional[uuid.UUID]
	ProductCombinationID Optional[uuid.UUID]
	AuditConditionID     Optional[uuid.UUID]
	BuybackOfferID       Optional[uuid.UUID]
	StatePrice           Optional[decimal.Decimal]
	ConditionPrice       Optional[decimal.Decimal]
	RepairPrice          Optional[decimal.Decimal]
	IncludedRepairPrice  Optional[bool]
	Comment              Optional[string]
}

// BuybackOfferInput carries the fields of a new buyback offer
type BuybackOfferInput struct {
	AccountID           uuid.UUID
	SupplierID          *uuid.UUID
	ShippingAddressID   *uuid.UUID
	InvoiceAddressID    *uuid.UUID
	ContactID           *uuid.UUID
	Status              *string
	CalculationMethod   *domain.CalculationMethod
	SupplierOrderNumber *string
	ExpirationDate      *time.Time
	Comment             *string
}

// BuybackOfferPatch carries the editable fields of a buyback offer
type BuybackOfferPatch struct {
	Status            Optional[string]
	CalculationMethod Optional[domain.CalculationMethod]
	ExpirationDate    Optional[time.Time]
	ShippingAddressID Optional[uuid.UUID]
	Comment           Optional[string]
}

// OfferSelection picks the audit items attached to an offer. Empty criteria
// select every audited item of the account that is not in an offer yet.
type OfferSelection struct {
	Products       []ProductFilter
	ConditionIDs   []uuid.UUID
	SupplierOrders []string
	AuditItemIDs   []uuid.UUID
	Repairs        RepairFilter
}

// OfferScope sets where selectable audit items come from. With an offer it
// is the offer's valorised items, otherwise the audited items of the account
// that are not in an offer yet.
type OfferScope struct {
	AccountID *uuid.UUID
	OfferID   *uuid.UUID
}

// AvailableProduct is a distinct product and combination pair among the
// selectable audit items. ID is "<product>[@<combination>]", the form the
// selection query parameters accept.
type AvailableProduct struct {
	ID                   string     `json:"id"`
	ProductID            uuid.UUID  `json:"product_id"`
	ProductCombinationID *uuid.UUID `json:"product_combination_id,omitempty"`
}

// RepairTransferInput carries the repair fields chosen at hand-off
type RepairTransferInput struct {
	RepairerID        *uuid.UUID
	ContactID         *uuid.UUID
	WorkcenterID      *uuid.UUID
	InvoiceAddressID  *uuid.UUID
	ShippingAddressID *uuid.UUID
}

// RepairPrice is a price update coming from the repair workflow
type RepairPrice struct {
	RepairID uuid.UUID       `json:"repair_id"`
	Price    decimal.Decimal `json:"price"`
}

// DevicePatch carries the editable audit fields of a device
type DevicePatch struct {
	ProductID            Optional[uuid.UUID]
	ProductCombinationID Optional[uuid.UUID]
	AuditConditionID     Optional[uuid.UUID]
	TerminatedAt         Optional[time.Time]
}
