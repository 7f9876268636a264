package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/buyback-be/internal/core/domain"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name   string
		before domain.FieldSet
		after  domain.FieldSet
		want   domain.ChangeSet
	}{
		{
			name:   "new_entity_reports_non_nil_fields",
			before: nil,
			after:  domain.FieldSet{"status": "draft", "comment": nil},
			want:   domain.ChangeSet{"status": {Old: nil, New: "draft"}},
		},
		{
			name:   "unchanged_fields_are_skipped",
			before: domain.FieldSet{"status": "draft", "closed": false},
			after:  domain.FieldSet{"status": "draft", "closed": false},
			want:   domain.ChangeSet{},
		},
		{
			name:   "changed_field_keeps_old_value",
			before: domain.FieldSet{"status": "draft"},
			after:  domain.FieldSet{"status": "accepted"},
			want:   domain.ChangeSet{"status": {Old: "draft", New: "accepted"}},
		},
		{
			name:   "cleared_field",
			before: domain.FieldSet{"comment": "x"},
			after:  domain.FieldSet{"comment": nil},
			want:   domain.ChangeSet{"comment": {Old: "x", New: nil}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Diff(tt.before, tt.after))
		})
	}
}

func TestFields_RelationsCompareByInstance(t *testing.T) {
	offer := &domain.BuybackOffer{ID: uuid.New()}
	item := &domain.AuditItem{ID: uuid.New(), BuybackOffer: offer, StatePrice: decimal.RequireFromString("10.00")}

	before := item.Fields()
	item.StatePrice = decimal.RequireFromString("10")
	assert.Empty(t, domain.Diff(before, item.Fields()))

	item.BuybackOffer = &domain.BuybackOffer{ID: uuid.New()}
	changes := domain.Diff(before, item.Fields())
	require.True(t, changes.Has(domain.FieldBuybackOffer))
	assert.Same(t, offer, changes.Old(domain.FieldBuybackOffer))
	assert.True(t, changes.HasAny(domain.FieldStatus, domain.FieldBuybackOffer))
	assert.False(t, changes.HasAny(domain.FieldStatus, domain.FieldDevice))
	assert.Nil(t, changes.Old(domain.FieldDevice))
}

func TestValidationError(t *testing.T) {
	offer := &domain.BuybackOffer{ID: uuid.New()}
	err := domain.NewValidationError(domain.ErrKindModuleDisabled, offer, domain.FieldAccount)

	assert.Equal(t, fmt.Sprintf("buyback_offer %s (account): module_disabled", offer.ID), err.Error())
	assert.True(t, errors.Is(err, domain.ErrModuleDisabled))
	assert.False(t, errors.Is(err, domain.ErrOfferAttachForbidden))

	wrapped := fmt.Errorf("commit failed: %w", err)
	verr, ok := domain.AsValidationError(wrapped)
	require.True(t, ok)
	assert.Equal(t, domain.KindBuybackOffer, verr.Entity)
	assert.Equal(t, offer.ID, verr.EntityID)

	_, ok = domain.AsValidationError(errors.New("boom"))
	assert.False(t, ok)

	invalid := domain.InvalidField("price", "must be a decimal")
	assert.Equal(t, "invalid_field: must be a decimal", invalid.Error())
	assert.ErrorIs(t, invalid, domain.ErrInvalidField)

	bare := domain.NewValidationError(domain.ErrKindNoAuditSelected, nil, "")
	assert.Equal(t, "no_audit_selected", bare.Error())
}
