package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ammerola/buyback-be/internal/core/domain"
)

func TestOfferTotals_Resolve(t *testing.T) {
	tests := []struct {
		name       string
		totals     domain.OfferTotals
		wantMethod domain.CalculationMethod
		wantTotal  string
	}{
		{
			name: "state_wins",
			totals: domain.OfferTotals{
				StatePrice:     decimal.RequireFromString("300.00"),
				ConditionPrice: decimal.RequireFromString("250.00"),
				RepairPrice:    decimal.RequireFromString("-20.00"),
			},
			wantMethod: domain.CalculationByState,
			wantTotal:  "280",
		},
		{
			name: "condition_wins",
			totals: domain.OfferTotals{
				StatePrice:     decimal.RequireFromString("100.00"),
				ConditionPrice: decimal.RequireFromString("140.50"),
				RepairPrice:    decimal.Zero,
			},
			wantMethod: domain.CalculationByCondition,
			wantTotal:  "140.5",
		},
		{
			name: "tie_prefers_state",
			totals: domain.OfferTotals{
				StatePrice:     decimal.NewFromInt(50),
				ConditionPrice: decimal.NewFromInt(50),
				RepairPrice:    decimal.NewFromInt(-5),
			},
			wantMethod: domain.CalculationByState,
			wantTotal:  "45",
		},
		{
			name:       "empty_offer",
			totals:     domain.OfferTotals{StatePrice: decimal.Zero, ConditionPrice: decimal.Zero, RepairPrice: decimal.Zero},
			wantMethod: domain.CalculationByState,
			wantTotal:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method, total := tt.totals.Resolve()
			assert.Equal(t, tt.wantMethod, method)
			assert.Equal(t, tt.wantTotal, total.String())
		})
	}
}

func TestBuybackOffer_RecalculateTotalPrice(t *testing.T) {
	method := domain.CalculationByCondition
	offer := &domain.BuybackOffer{
		CalculationMethod:   &method,
		TotalStatePrice:     decimal.NewFromInt(200),
		TotalConditionPrice: decimal.NewFromInt(150),
		TotalRepairPrice:    decimal.NewFromInt(-30),
	}

	offer.RecalculateTotalPrice()
	assert.Equal(t, "120", offer.TotalPrice.String())

	offer.CalculationMethod = nil
	offer.RecalculateTotalPrice()
	assert.Equal(t, "170", offer.TotalPrice.String())
}

func TestBuybackOffer_Validate(t *testing.T) {
	bad := domain.CalculationMethod("by_weight")

	assert.NoError(t, (&domain.BuybackOffer{AccountID: uuid.New()}).Validate())
	assert.ErrorIs(t, (&domain.BuybackOffer{}).Validate(), domain.ErrInvalidField)
	assert.ErrorIs(t, (&domain.BuybackOffer{AccountID: uuid.New(), CalculationMethod: &bad}).Validate(), domain.ErrInvalidField)
}
