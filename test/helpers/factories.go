// test/helpers/factories.go
package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/buyback-be/internal/core/domain"
)

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}

// CreateTestModule creates an enabled buyback module for an account
func CreateTestModule(accountID uuid.UUID, overrides ...func(*domain.BuybackModule)) *domain.BuybackModule {
	module := &domain.BuybackModule{
		ID:                uuid.New(),
		AccountID:         accountID,
		Enabled:           true,
		ShippingAddressID: Ptr(uuid.New()),
		InvoiceAddressID:  Ptr(uuid.New()),
		SupplierID:        Ptr(uuid.New()),
		WorkcenterID:      Ptr(uuid.New()),
		RepairPriceListID: Ptr(uuid.New()),
	}
	for _, override := range overrides {
		override(module)
	}
	return module
}

// CreateTestAuditRequest creates an audit request with no lines
func CreateTestAuditRequest(accountID uuid.UUID, overrides ...func(*domain.AuditRequest)) *domain.AuditRequest {
	request := &domain.AuditRequest{
		ID:                  uuid.New(),
		AccountID:           accountID,
		ShippingAddressID:   Ptr(uuid.New()),
		SupplierOrderNumber: Ptr("PO-1001"),
		Status:              Ptr("draft"),
		Items:               []*domain.AuditRequestItem{},
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}
	for _, override := range overrides {
		override(request)
	}
	return request
}

// CreateTestAuditRequestItem creates a product line and appends it to request
func CreateTestAuditRequestItem(request *domain.AuditRequest, expected, received *int, overrides ...func(*domain.AuditRequestItem)) *domain.AuditRequestItem {
	item := &domain.AuditRequestItem{
		ID:               uuid.New(),
		AuditRequest:     request,
		ProductID:        uuid.New(),
		ExpectedQuantity: expected,
		ReceivedQuantity: received,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	for _, override := range overrides {
		override(item)
	}
	if request != nil {
		request.Items = append(request.Items, item)
	}
	return item
}

// CreateTestAuditItem creates an audited item inside request
func CreateTestAuditItem(request *domain.AuditRequest, overrides ...func(*domain.AuditItem)) *domain.AuditItem {
	status := domain.AuditItemAudited
	now := time.Now()
	item := &domain.AuditItem{
		ID:               uuid.New(),
		AuditRequest:     request,
		ProductID:        Ptr(uuid.New()),
		AuditConditionID: Ptr(uuid.New()),
		Status:           &status,
		StatePrice:       decimal.RequireFromString("100.00"),
		ConditionPrice:   decimal.RequireFromString("80.00"),
		RepairPrice:      decimal.Zero,
		ReceiptedAt:      &now,
		QualifiedAt:      &now,
		AuditedAt:        &now,
		Validated:        true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	for _, override := range overrides {
		override(item)
	}
	return item
}

// CreateTestBuybackOffer creates an open offer
func CreateTestBuybackOffer(accountID uuid.UUID, overrides ...func(*domain.BuybackOffer)) *domain.BuybackOffer {
	method := domain.CalculationByState
	offer := &domain.BuybackOffer{
		ID:                  uuid.New(),
		Reference:           Ptr("BO-2026-000001"),
		AccountID:           accountID,
		ShippingAddressID:   Ptr(uuid.New()),
		Status:              Ptr("draft"),
		CalculationMethod:   &method,
		TotalConditionPrice: decimal.Zero,
		TotalStatePrice:     decimal.Zero,
		TotalRepairPrice:    decimal.Zero,
		TotalPrice:          decimal.Zero,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}
	for _, override := range overrides {
		override(offer)
	}
	return offer
}

// CreateTestDevice creates a device in use
func CreateTestDevice(accountID uuid.UUID, overrides ...func(*domain.Device)) *domain.Device {
	status := domain.DeviceInUse
	device := &domain.Device{
		ID:        uuid.New(),
		AccountID: &accountID,
		ProductID: Ptr(uuid.New()),
		Status:    &status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	for _, override := range overrides {
		override(device)
	}
	return device
}

// CreateTestRepair creates a received repair
func CreateTestRepair(accountID uuid.UUID, overrides ...func(*domain.Repair)) *domain.Repair {
	repair := &domain.Repair{
		ID:        uuid.New(),
		AccountID: accountID,
		Status:    domain.RepairStatusReceived,
		Price:     decimal.Zero,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	for _, override := range overrides {
		override(repair)
	}
	return repair
}

// CreateTestCondition creates an audit condition with a state
func CreateTestCondition(state string) *domain.AuditCondition {
	return &domain.AuditCondition{
		ID:    uuid.New(),
		Name:  "Grade " + state,
		State: Ptr(state),
	}
}

// SeedModule inserts a buyback module row
func SeedModule(t *testing.T, pool *pgxpool.Pool, m *domain.BuybackModule) {
	t.Helper()

	_, err := pool.Exec(context.Background(), `
		INSERT INTO buyback_modules (
			id, account_id, enabled, shipping_address_id, invoice_address_id,
			supplier_id, workcenter_id, identifier_type, repair_price_list_id,
			default_audit_request_status, comment, excluded_scope
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		m.ID, m.AccountID, m.Enabled, m.ShippingAddressID, m.InvoiceAddressID,
		m.SupplierID, m.WorkcenterID, m.IdentifierType, m.RepairPriceListID,
		m.DefaultAuditRequestStatus, m.Comment, m.ExcludedScope,
	)
	require.NoError(t, err, "Failed to seed buyback module")
}

// SeedCondition inserts an audit condition row
func SeedCondition(t *testing.T, pool *pgxpool.Pool, c *domain.AuditCondition) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO audit_conditions (id, name, state) VALUES ($1, $2, $3)`,
		c.ID, c.Name, c.State)
	require.NoError(t, err, "Failed to seed audit condition")
}

// SeedDevice inserts a device row without audit link
func SeedDevice(t *testing.T, pool *pgxpool.Pool, d *domain.Device) {
	t.Helper()

	var status *string
	if d.Status != nil {
		status = Ptr(string(*d.Status))
	}
	_, err := pool.Exec(context.Background(), `
		INSERT INTO devices (
			id, account_id, product_id, product_combination_id,
			audit_condition_id, status, terminated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		d.ID, d.AccountID, d.ProductID, d.ProductCombinationID,
		d.AuditConditionID, status, d.TerminatedAt,
	)
	require.NoError(t, err, "Failed to seed device")
}
