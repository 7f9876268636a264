package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/buyback-be/internal/core/domain"
)

func idPtr() *uuid.UUID {
	id := uuid.New()
	return &id
}

func TestResolveAuditItemStatus(t *testing.T) {
	request := &domain.AuditRequest{ID: uuid.New()}
	device := &domain.Device{ID: uuid.New()}
	offer := &domain.BuybackOffer{ID: uuid.New()}

	tests := []struct {
		name string
		item *domain.AuditItem
		want domain.AuditItemStatus
	}{
		{
			name: "no_request_is_confirmed",
			item: &domain.AuditItem{ProductID: idPtr()},
			want: domain.AuditItemConfirmed,
		},
		{
			name: "request_without_product_is_confirmed",
			item: &domain.AuditItem{AuditRequest: request},
			want: domain.AuditItemConfirmed,
		},
		{
			name: "request_and_product_is_qualified",
			item: &domain.AuditItem{AuditRequest: request, ProductID: idPtr()},
			want: domain.AuditItemQualified,
		},
		{
			name: "device_without_condition_stays_qualified",
			item: &domain.AuditItem{AuditRequest: request, ProductID: idPtr(), Device: device},
			want: domain.AuditItemQualified,
		},
		{
			name: "device_and_condition_is_audited",
			item: &domain.AuditItem{AuditRequest: request, ProductID: idPtr(), Device: device, AuditConditionID: idPtr()},
			want: domain.AuditItemAudited,
		},
		{
			name: "offer_makes_it_valorised",
			item: &domain.AuditItem{
				AuditRequest: request, ProductID: idPtr(), Device: device,
				AuditConditionID: idPtr(), BuybackOffer: offer,
			},
			want: domain.AuditItemValorised,
		},
		{
			name: "offer_without_audit_is_not_valorised",
			item: &domain.AuditItem{AuditRequest: request, ProductID: idPtr(), BuybackOffer: offer},
			want: domain.AuditItemQualified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ResolveAuditItemStatus(tt.item)
			assert.Equal(t, tt.want, got)

			tt.item.Status = &got
			assert.Equal(t, got, domain.ResolveAuditItemStatus(tt.item))
		})
	}
}

func TestStampStageTimestamps(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	earlier := now.Add(-time.Hour)

	status := func(s domain.AuditItemStatus) *domain.AuditItemStatus { return &s }

	tests := []struct {
		name          string
		item          *domain.AuditItem
		wantEdited    bool
		wantQualified bool
		wantAudited   bool
		wantValorised bool
	}{
		{
			name: "confirmed_stamps_nothing",
			item: &domain.AuditItem{Status: status(domain.AuditItemConfirmed)},
		},
		{
			name:          "qualified_stamps_first_stage",
			item:          &domain.AuditItem{Status: status(domain.AuditItemQualified)},
			wantEdited:    true,
			wantQualified: true,
		},
		{
			name:          "valorised_stamps_every_stage",
			item:          &domain.AuditItem{Status: status(domain.AuditItemValorised)},
			wantEdited:    true,
			wantQualified: true,
			wantAudited:   true,
			wantValorised: true,
		},
		{
			name:          "closed_item_counts_as_valorised",
			item:          &domain.AuditItem{Closed: true},
			wantEdited:    true,
			wantQualified: true,
			wantAudited:   true,
			wantValorised: true,
		},
		{
			name: "existing_timestamps_are_kept",
			item: &domain.AuditItem{
				Status:      status(domain.AuditItemAudited),
				QualifiedAt: &earlier,
				AuditedAt:   &earlier,
			},
			wantQualified: true,
			wantAudited:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.item.QualifiedAt
			edited := domain.StampStageTimestamps(tt.item, now)

			assert.Equal(t, tt.wantEdited, edited)
			assert.Equal(t, tt.wantQualified, tt.item.QualifiedAt != nil)
			assert.Equal(t, tt.wantAudited, tt.item.AuditedAt != nil)
			assert.Equal(t, tt.wantValorised, tt.item.ValorisedAt != nil)
			if before != nil {
				assert.Equal(t, *before, *tt.item.QualifiedAt)
			}
		})
	}
}

func TestAuditItem_NeedsAuditor(t *testing.T) {
	audited := domain.AuditItemAudited
	qualified := domain.AuditItemQualified

	assert.True(t, (&domain.AuditItem{Status: &audited}).NeedsAuditor())
	assert.True(t, (&domain.AuditItem{Closed: true}).NeedsAuditor())
	assert.False(t, (&domain.AuditItem{Status: &qualified}).NeedsAuditor())
	assert.False(t, (&domain.AuditItem{Status: &audited, AuditorID: idPtr()}).NeedsAuditor())
}

func TestDeviceStatusFor(t *testing.T) {
	valorised := domain.AuditItemValorised
	audited := domain.AuditItemAudited

	assert.Equal(t, domain.DeviceInBuybackOffer, domain.DeviceStatusFor(&valorised))
	assert.Equal(t, domain.DeviceInAudit, domain.DeviceStatusFor(&audited))
	assert.Equal(t, domain.DeviceInAudit, domain.DeviceStatusFor(nil))
}

func TestAttachRepair(t *testing.T) {
	item := &domain.AuditItem{ID: uuid.New()}
	first := &domain.Repair{ID: uuid.New()}
	second := &domain.Repair{ID: uuid.New()}

	domain.AttachRepair(item, first)
	assert.Same(t, first, item.Repair)
	assert.Same(t, item, first.AuditItem)

	domain.AttachRepair(item, second)
	assert.Same(t, second, item.Repair)
	assert.Nil(t, first.AuditItem)
	assert.Same(t, item, second.AuditItem)
}

func TestPriceRule_Apply(t *testing.T) {
	functional := decimal.NewFromInt(120)
	broken := decimal.NewFromInt(15)
	condition := &domain.AuditCondition{ID: uuid.New(), State: strPtr(domain.ConditionStateFunctional)}
	nonfunctional := &domain.AuditCondition{ID: uuid.New(), State: strPtr(domain.ConditionStateNonfunctional)}
	rule := domain.PriceRule{
		FunctionalPrice:    &functional,
		NonfunctionalPrice: &broken,
		ConditionPrices:    map[uuid.UUID]decimal.Decimal{condition.ID: decimal.NewFromInt(90)},
	}

	tests := []struct {
		name          string
		item          *domain.AuditItem
		condition     *domain.AuditCondition
		wantChanged   bool
		wantState     decimal.Decimal
		wantCondition decimal.Decimal
	}{
		{
			name:          "functional_sets_both_prices",
			item:          &domain.AuditItem{},
			condition:     condition,
			wantChanged:   true,
			wantState:     functional,
			wantCondition: decimal.NewFromInt(90),
		},
		{
			name:          "nonfunctional_without_table_entry",
			item:          &domain.AuditItem{ConditionPrice: decimal.NewFromInt(5)},
			condition:     nonfunctional,
			wantChanged:   true,
			wantState:     broken,
			wantCondition: decimal.NewFromInt(5),
		},
		{
			name:          "already_priced_reports_no_change",
			item:          &domain.AuditItem{StatePrice: functional, ConditionPrice: decimal.NewFromInt(90)},
			condition:     condition,
			wantState:     functional,
			wantCondition: decimal.NewFromInt(90),
		},
		{
			name:          "missing_condition_is_ignored",
			item:          &domain.AuditItem{},
			wantState:     decimal.Zero,
			wantCondition: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changed := rule.Apply(tt.item, tt.condition)
			assert.Equal(t, tt.wantChanged, changed)
			assert.True(t, tt.wantState.Equal(tt.item.StatePrice), "state price %s", tt.item.StatePrice)
			assert.True(t, tt.wantCondition.Equal(tt.item.ConditionPrice), "condition price %s", tt.item.ConditionPrice)
		})
	}
}

func TestNewOfferSnapshot(t *testing.T) {
	now := time.Now()
	offer := &domain.BuybackOffer{ID: uuid.New(), Validated: true}
	device := &domain.Device{ID: uuid.New()}
	items := []*domain.AuditItem{
		{ID: uuid.New(), Device: device, StatePrice: decimal.NewFromInt(10)},
		{ID: uuid.New(), IncludedRepairPrice: true, RepairPrice: decimal.NewFromInt(-4)},
	}

	snapshot := domain.NewOfferSnapshot(offer, items, now)
	require.Len(t, snapshot.Items, 2)
	assert.Equal(t, offer.ID, snapshot.Offer.ID)
	assert.Equal(t, now, snapshot.ArchivedAt)
	require.NotNil(t, snapshot.Items[0].DeviceID)
	assert.Equal(t, device.ID, *snapshot.Items[0].DeviceID)
	assert.Nil(t, snapshot.Items[1].DeviceID)
	assert.True(t, snapshot.Items[1].IncludedRepairPrice)
}
