// internal/handlers/dto.go
package handlers

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammerola/buyback-be/internal/core/domain"
	"github.com/ammerola/buyback-be/internal/core/ports"
)

// Request DTOs

// CreateAuditRequestRequest represents the request body for creating an audit request
type CreateAuditRequestRequest struct {
	AccountID           uuid.UUID                 `json:"account_id"`
	SupplierID          *uuid.UUID                `json:"supplier_id,omitempty"`
	ShippingAddressID   *uuid.UUID                `json:"shipping_address_id,omitempty"`
	InvoiceAddressID    *uuid.UUID                `json:"invoice_address_id,omitempty"`
	WorkcenterID        *uuid.UUID                `json:"workcenter_id,omitempty"`
	ContactID           *uuid.UUID                `json:"contact_id,omitempty"`
	BuybackOfferID      *uuid.UUID                `json:"buyback_offer_id,omitempty"`
	IdentifierType      *string                   `json:"identifier_type,omitempty"`
	SupplierOrderNumber *string                   `json:"supplier_order_number,omitempty"`
	CustomerReference   *string                   `json:"customer_reference,omitempty"`
	Status              *string                   `json:"status,omitempty"`
	Comment             *string                   `json:"comment,omitempty"`
	Date                *time.Time                `json:"date,omitempty"`
	Items               []AuditRequestItemRequest `json:"items,omitempty"`
}

// Validate validates the create audit request body
func (r *CreateAuditRequestRequest) Validate() error {
	if r.AccountID == uuid.Nil {
		return domain.InvalidField("account_id", "is required")
	}
	if r.Status != nil && *r.Status == "" {
		return domain.InvalidField("status", "cannot be empty")
	}
	for i := range r.Items {
		if err := r.Items[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ToDomain converts the request to a service input
func (r *CreateAuditRequestRequest) ToDomain() ports.AuditRequestInput {
	in := ports.AuditRequestInput{
		AccountID:           r.AccountID,
		SupplierID:          r.SupplierID,
		ShippingAddressID:   r.ShippingAddressID,
		InvoiceAddressID:    r.InvoiceAddressID,
		WorkcenterID:        r.WorkcenterID,
		ContactID:           r.ContactID,
		BuybackOfferID:      r.BuybackOfferID,
		IdentifierType:      r.IdentifierType,
		SupplierOrderNumber: r.SupplierOrderNumber,
		CustomerReference:   r.CustomerReference,
		Status:              r.Status,
		Comment:             r.Comment,
		Date:                r.Date,
	}
	for i := range r.Items {
		in.Items = append(in.Items, r.Items[i].ToDomain())
	}
	return in
}

// UpdateAuditRequestRequest represents a partial update of an audit request.
// Absent fields are left untouched and null clears a field.
type UpdateAuditRequestRequest struct {
	Status              ports.Optional[string]    `json:"status"`
	ReceiptedAt         ports.Optional[time.Time] `json:"receipted_at"`
	ShippingAddressID   ports.Optional[uuid.UUID] `json:"shipping_address_id"`
	InvoiceAddressID    ports.Optional[uuid.UUID] `json:"invoice_address_id"`
	ContactID           ports.Optional[uuid.UUID] `json:"contact_id"`
	BuybackOfferID      ports.Optional[uuid.UUID] `json:"buyback_offer_id"`
	SupplierOrderNumber ports.Optional[string]    `json:"supplier_order_number"`
	CustomerReference   ports.Optional[string]    `json:"customer_reference"`
	Comment             ports.Optional[string]    `json:"comment"`
}

// Validate validates the audit request patch
func (r *UpdateAuditRequestRequest) Validate() error {
	if r.Status.Set && (r.Status.Value == nil || *r.Status.Value == "") {
		return domain.InvalidField("status", "cannot be empty")
	}
	return nil
}

// ToDomain converts the request to a service patch
func (r *UpdateAuditRequestRequest) ToDomain() ports.AuditRequestPatch {
	return ports.AuditRequestPatch{
		Status:              r.Status,
		ReceiptedAt:         r.ReceiptedAt,
		ShippingAddressID:   r.ShippingAddressID,
		InvoiceAddressID:    r.InvoiceAddressID,
		ContactID:           r.ContactID,
		BuybackOfferID:      r.BuybackOfferID,
		SupplierOrderNumber: r.SupplierOrderNumber,
		CustomerReference:   r.CustomerReference,
		Comment:             r.Comment,
	}
}

// AuditRequestItemRequest represents one expected product line
type AuditRequestItemRequest struct {
	ProductID            uuid.UUID  `json:"product_id"`
	ProductCombinationID *uuid.UUID `json:"product_combination_id,omitempty"`
	ExpectedQuantity     *int       `json:"expected_quantity,omitempty"`
	ReceivedQuantity     *int       `json:"received_quantity,omitempty"`
}

// Validate validates the product line
func (r *AuditRequestItemRequest) Validate() error {
	if r.ProductID == uuid.Nil {
		return domain.InvalidField("product_id", "is required")
	}
	return validateQuantities(r.ExpectedQuantity, r.ReceivedQuantity)
}

// ToDomain converts the request to a service input
func (r *AuditRequestItemRequest) ToDomain() ports.AuditRequestItemInput {
	return ports.AuditRequestItemInput{
		ProductID:            r.ProductID,
		ProductCombinationID: r.ProductCombinationID,
		ExpectedQuantity:     r.ExpectedQuantity,
		ReceivedQuantity:     r.ReceivedQuantity,
	}
}

// UpdateAuditRequestItemRequest represents a quantity update on a line
type UpdateAuditRequestItemRequest struct {
	ExpectedQuantity ports.Optional[int] `json:"expected_quantity"`
	ReceivedQuantity ports.Optional[int] `json:"received_quantity"`
}

// Validate validates the quantities
func (r *UpdateAuditRequestItemRequest) Validate() error {
	return validateQuantities(r.ExpectedQuantity.Value, r.ReceivedQuantity.Value)
}

// ToDomain converts the request to a service patch
func (r *UpdateAuditRequestItemRequest) ToDomain() ports.AuditRequestItemPatch {
	return ports.AuditRequestItemPatch{
		ExpectedQuantity: r.ExpectedQuantity,
		ReceivedQuantity: r.ReceivedQuantity,
	}
}

func validateQuantities(expected, received *int) error {
	if expected != nil && *expected < 0 {
		return domain.InvalidField("expected_quantity", "cannot be negative")
	}
	if received != nil && *received < 0 {
		return domain.InvalidField("received_quantity", "cannot be negative")
	}
	return nil
}

// CreateAuditItemRequest represents the request body for creating an audit item
type CreateAuditItemRequest struct {
	AuditRequestID       uuid.UUID        `json:"audit_request_id"`
	DeviceID             *uuid.UUID       `json:"device_id,omitempty"`
	ProductID            *uuid.UUID       `json:"product_id,omitempty"`
	ProductCombinationID *uuid.UUID       `json:"product_combination_id,omitempty"`
	AuditConditionID     *uuid.UUID       `json:"audit_condition_id,omitempty"`
	BuybackOfferID       *uuid.UUID       `json:"buyback_offer_id,omitempty"`
	StatePrice           *decimal.Decimal `json:"state_price,omitempty"`
	ConditionPrice       *decimal.Decimal `json:"condition_price,omitempty"`
	Comment              *string          `json:"comment,omitempty"`
}

// Validate validates the create audit item body
func (r *CreateAuditItemRequest) Validate() error {
	if r.AuditRequestID == uuid.Nil {
		return domain.NewValidationError(domain.ErrKindAuditRequestRequired, nil, "audit_request_id")
	}
	if r.StatePrice != nil && r.StatePrice.IsNegative() {
		return domain.InvalidField("state_price", "cannot be negative")
	}
	if r.ConditionPrice != nil && r.ConditionPrice.IsNegative() {
		return domain.InvalidField("condition_price", "cannot be negative")
	}
	return nil
}

// ToDomain converts the request to a service input
func (r *CreateAuditItemRequest) ToDomain() ports.AuditItemInput {
	return ports.AuditItemInput{
		AuditRequestID:       r.AuditRequestID,
		DeviceID:             r.DeviceID,
		ProductID:            r.ProductID,
		ProductCombinationID: r.ProductCombinationID,
		AuditConditionID:     r.AuditConditionID,
		BuybackOfferID:       r.BuybackOfferID,
		StatePrice:           r.StatePrice,
		ConditionPrice:       r.ConditionPrice,
		Comment:              r.Comment,
	}
}

// UpdateAuditItemRequest represents a partial update of an audit item
type UpdateAuditItemRequest struct {
	DeviceID             ports.Optional[uuid.UUID]       `json:"device_id"`
	ProductID            ports.Optional[uuid.UUID]       `json:"product_id"`
	ProductCombinationID ports.Optional[uuid.UUID]       `json:"product_combination_id"`
	AuditConditionID     ports.Optional[uuid.UUID]       `json:"audit_condition_id"`
	BuybackOfferID       ports.Optional[uuid.UUID]       `json:"buyback_offer_id"`
	StatePrice           ports.Optional[decimal.Decimal] `json:"state_price"`
	ConditionPrice       ports.Optional[decimal.Decimal] `json:"condition_price"`
	RepairPrice          ports.Optional[decimal.Decimal] `json:"repair_price"`
	IncludedRepairPrice  ports.Optional[bool]            `json:"included_repair_price"`
	Comment              ports.Optional[string]          `json:"comment"`
}

// Validate validates the audit item patch
func (r *UpdateAuditItemRequest) Validate() error {
	if r.StatePrice.Value != nil && r.StatePrice.Value.IsNegative() {
		return domain.InvalidField("state_price", "cannot be negative")
	}
	if r.ConditionPrice.Value != nil && r.ConditionPrice.Value.IsNegative() {
		return domain.InvalidField("condition_price", "cannot be negative")
	}
	return nil
}

// ToDomain converts the request to a service patch
func (r *UpdateAuditItemRequest) ToDomain() ports.AuditItemPatch {
	return ports.AuditItemPatch{
		DeviceID:             r.DeviceID,
		ProductID:            r.ProductID,
		ProductCombinationID: r.ProductCombinationID,
		AuditConditionID:     r.AuditConditionID,
		BuybackOfferID:       r.BuybackOfferID,
		StatePrice:           r.StatePrice,
		ConditionPrice:       r.ConditionPrice,
		RepairPrice:          r.RepairPrice,
		IncludedRepairPrice:  r.IncludedRepairPrice,
		Comment:              r.Comment,
	}
}

// CreateBuybackOfferRequest represents the request body for creating an offer
type CreateBuybackOfferRequest struct {
	AccountID           uuid.UUID  `json:"account_id"`
	SupplierID          *uuid.UUID `json:"supplier_id,omitempty"`
	ShippingAddressID   *uuid.UUID `json:"shipping_address_id,omitempty"`
	InvoiceAddressID    *uuid.UUID `json:"invoice_address_id,omitempty"`
	ContactID           *uuid.UUID `json:"contact_id,omitempty"`
	Status              *string    `json:"status,omitempty"`
	CalculationMethod   *string    `json:"calculation_method,omitempty"`
	SupplierOrderNumber *string    `json:"supplier_order_number,omitempty"`
	ExpirationDate      *time.Time `json:"expiration_date,omitempty"`
	Comment             *string    `json:"comment,omitempty"`
}

// Validate validates the create offer body
func (r *CreateBuybackOfferRequest) Validate() error {
	if r.AccountID == uuid.Nil {
		return domain.InvalidField("account_id", "is required")
	}
	if r.CalculationMethod != nil && !domain.CalculationMethod(*r.CalculationMethod).IsValid() {
		return domain.InvalidField("calculation_method", "must be by_state or by_condition")
	}
	return nil
}

// ToDomain converts the request to a service input
func (r *CreateBuybackOfferRequest) ToDomain() ports.BuybackOfferInput {
	in := ports.BuybackOfferInput{
		AccountID:           r.AccountID,
		SupplierID:          r.SupplierID,
		ShippingAddressID:   r.ShippingAddressID,
		InvoiceAddressID:    r.InvoiceAddressID,
		ContactID:           r.ContactID,
		Status:              r.Status,
		SupplierOrderNumber: r.SupplierOrderNumber,
		ExpirationDate:      r.ExpirationDate,
		Comment:             r.Comment,
	}
	if r.CalculationMethod != nil {
		method := domain.CalculationMethod(*r.CalculationMethod)
		in.CalculationMethod = &method
	}
	return in
}

// UpdateBuybackOfferRequest represents a partial update of an offer
type UpdateBuybackOfferRequest struct {
	Status            ports.Optional[string]    `json:"status"`
	CalculationMethod ports.Optional[string]    `json:"calculation_method"`
	ExpirationDate    ports.Optional[time.Time] `json:"expiration_date"`
	ShippingAddressID ports.Optional[uuid.UUID] `json:"shipping_address_id"`
	Comment           ports.Optional[string]    `json:"comment"`
}

// Validate validates the offer patch
func (r *UpdateBuybackOfferRequest) Validate() error {
	if r.Status.Set && (r.Status.Value == nil || *r.Status.Value == "") {
		return domain.InvalidField("status", "cannot be empty")
	}
	if m := r.CalculationMethod.Value; m != nil && !domain.CalculationMethod(*m).IsValid() {
		return domain.InvalidField("calculation_method", "must be by_state or by_condition")
	}
	return nil
}

// ToDomain converts the request to a service patch
func (r *UpdateBuybackOfferRequest) ToDomain() ports.BuybackOfferPatch {
	patch := ports.BuybackOfferPatch{
		Status:            r.Status,
		ExpirationDate:    r.ExpirationDate,
		ShippingAddressID: r.ShippingAddressID,
		Comment:           r.Comment,
	}
	if r.CalculationMethod.Set {
		patch.CalculationMethod.Set = true
		if m := r.CalculationMethod.Value; m != nil {
			method := domain.CalculationMethod(*m)
			patch.CalculationMethod.Value = &method
		}
	}
	return patch
}

// ProductFilterRequest selects a product and optionally one combination
type ProductFilterRequest struct {
	ProductID     uuid.UUID  `json:"product_id"`
	CombinationID *uuid.UUID `json:"combination_id,omitempty"`
}

// OfferSelectionRequest selects the audit items attached to an offer
type OfferSelectionRequest struct {
	Products       []ProductFilterRequest `json:"products,omitempty"`
	ConditionIDs   []uuid.UUID            `json:"condition_ids,omitempty"`
	SupplierOrders []string               `json:"supplier_orders,omitempty"`
	AuditItemIDs   []uuid.UUID            `json:"audit_item_ids,omitempty"`
	Repairs        string                 `json:"repairs,omitempty"`
}

// Validate validates the selection criteria
func (r *OfferSelectionRequest) Validate() error {
	switch ports.RepairFilter(r.Repairs) {
	case "", ports.RepairsAll, ports.RepairsWith, ports.RepairsWithout:
	default:
		return domain.InvalidField("repairs", "must be all, with or without")
	}
	for _, p := range r.Products {
		if p.ProductID == uuid.Nil {
			return domain.InvalidField("products", "product_id is required")
		}
	}
	return nil
}

// ToDomain converts the request to a service selection
func (r *OfferSelectionRequest) ToDomain() ports.OfferSelection {
	sel := ports.OfferSelection{
		ConditionIDs:   r.ConditionIDs,
		SupplierOrders: r.SupplierOrders,
		AuditItemIDs:   r.AuditItemIDs,
		Repairs:        ports.RepairFilter(r.Repairs),
	}
	if sel.Repairs == "" {
		sel.Repairs = ports.RepairsAll
	}
	for _, p := range r.Products {
		sel.Products = append(sel.Products, ports.ProductFilter{ProductID: p.ProductID, CombinationID: p.CombinationID})
	}
	return sel
}

// selectionFromQuery reads a selection from query parameters: p for
// products as "<product>[@<combination>]", c for condition IDs, ref for
// supplier order numbers, aid for audit item IDs and repairs.
func selectionFromQuery(values url.Values) (ports.OfferSelection, error) {
	req := OfferSelectionRequest{
		SupplierOrders: values["ref"],
		Repairs:        values.Get("repairs"),
	}
	for _, raw := range values["p"] {
		productID, combinationID, _ := strings.Cut(raw, "@")
		product := ProductFilterRequest{}
		var err error
		if product.ProductID, err = uuid.Parse(productID); err != nil {
			return ports.OfferSelection{}, domain.InvalidField("p", "invalid product id")
		}
		if combinationID != "" {
			id, err := uuid.Parse(combinationID)
			if err != nil {
				return ports.OfferSelection{}, domain.InvalidField("p", "invalid product combination id")
			}
			product.CombinationID = &id
		}
		req.Products = append(req.Products, product)
	}
	var err error
	if req.ConditionIDs, err = parseIDs(values["c"], "c"); err != nil {
		return ports.OfferSelection{}, err
	}
	if req.AuditItemIDs, err = parseIDs(values["aid"], "aid"); err != nil {
		return ports.OfferSelection{}, err
	}
	if err := req.Validate(); err != nil {
		return ports.OfferSelection{}, err
	}
	return req.ToDomain(), nil
}

func parseIDs(raw []string, field string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, v := range raw {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, domain.InvalidField(field, "invalid id")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// PriceRuleRequest represents the prices applied to an offer's items
type PriceRuleRequest struct {
	FunctionalPrice    *decimal.Decimal              `json:"functional_price,omitempty"`
	NonfunctionalPrice *decimal.Decimal              `json:"nonfunctional_price,omitempty"`
	ConditionPrices    map[uuid.UUID]decimal.Decimal `json:"condition_prices,omitempty"`
}

// Validate validates the price rule
func (r *PriceRuleRequest) Validate() error {
	if r.FunctionalPrice == nil && r.NonfunctionalPrice == nil && len(r.ConditionPrices) == 0 {
		return domain.InvalidField("price_rule", "at least one price is required")
	}
	if r.FunctionalPrice != nil && r.FunctionalPrice.IsNegative() {
		return domain.InvalidField("functional_price", "cannot be negative")
	}
	if r.NonfunctionalPrice != nil && r.NonfunctionalPrice.IsNegative() {
		return domain.InvalidField("nonfunctional_price", "cannot be negative")
	}
	for _, price := range r.ConditionPrices {
		if price.IsNegative() {
			return domain.InvalidField("condition_prices", "cannot be negative")
		}
	}
	return nil
}

// ToDomain converts the request to a domain price rule
func (r *PriceRuleRequest) ToDomain() domain.PriceRule {
	return domain.PriceRule{
		FunctionalPrice:    r.FunctionalPrice,
		NonfunctionalPrice: r.NonfunctionalPrice,
		ConditionPrices:    r.ConditionPrices,
	}
}

// RepairTransferRequest carries the repair fields chosen at hand-off
type RepairTransferRequest struct {
	RepairerID        *uuid.UUID `json:"repairer_id,omitempty"`
	ContactID         *uuid.UUID `json:"contact_id,omitempty"`
	WorkcenterID      *uuid.UUID `json:"workcenter_id,omitempty"`
	InvoiceAddressID  *uuid.UUID `json:"invoice_address_id,omitempty"`
	ShippingAddressID *uuid.UUID `json:"shipping_address_id,omitempty"`
}

// ToDomain converts the request to a service input
func (r *RepairTransferRequest) ToDomain() ports.RepairTransferInput {
	return ports.RepairTransferInput{
		RepairerID:        r.RepairerID,
		ContactID:         r.ContactID,
		WorkcenterID:      r.WorkcenterID,
		InvoiceAddressID:  r.InvoiceAddressID,
		ShippingAddressID: r.ShippingAddressID,
	}
}

// SyncRepairPricesRequest carries repair price updates
type SyncRepairPricesRequest struct {
	Prices []ports.RepairPrice `json:"prices"`
}

// Validate validates the price list
func (r *SyncRepairPricesRequest) Validate() error {
	if len(r.Prices) == 0 {
		return domain.InvalidField("prices", "is required")
	}
	for _, p := range r.Prices {
		if p.RepairID == uuid.Nil {
			return domain.InvalidField("repair_id", "is required")
		}
	}
	return nil
}

// UpdateDeviceRequest represents a partial update of a device
type UpdateDeviceRequest struct {
	ProductID            ports.Optional[uuid.UUID] `json:"product_id"`
	ProductCombinationID ports.Optional[uuid.UUID] `json:"product_combination_id"`
	AuditConditionID     ports.Optional[uuid.UUID] `json:"audit_condition_id"`
	TerminatedAt         ports.Optional[time.Time] `json:"terminated_at"`
}

// ToDomain converts the request to a service patch
func (r *UpdateDeviceRequest) ToDomain() ports.DevicePatch {
	return ports.DevicePatch{
		ProductID:            r.ProductID,
		ProductCombinationID: r.ProductCombinationID,
		AuditConditionID:     r.AuditConditionID,
		TerminatedAt:         r.TerminatedAt,
	}
}

// ReconcileRequest lists the aggregates to recompute in the background
type ReconcileRequest struct {
	AuditRequestIDs []uuid.UUID `json:"audit_request_ids,omitempty"`
	BuybackOfferIDs []uuid.UUID `json:"buyback_offer_ids,omitempty"`
}

// Validate validates the reconcile request
func (r *ReconcileRequest) Validate() error {
	if len(r.AuditRequestIDs) == 0 && len(r.BuybackOfferIDs) == 0 {
		return domain.InvalidField("ids", "at least one audit request or offer id is required")
	}
	return nil
}

// Response DTOs

// SyncRepairPricesResponse reports how many audit items were repriced
type SyncRepairPricesResponse struct {
	Updated int `json:"updated"`
}

// ListResponse wraps listed values
type ListResponse struct {
	Items any `json:"items"`
	Total int `json:"total"`
}

func newListResponse[T any](items []T) ListResponse {
	if items == nil {
		items = []T{}
	}
	return ListResponse{Items: items, Total: len(items)}
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Field string `json:"field,omitempty"`
}
