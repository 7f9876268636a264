package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ammerola/buyback-be/internal/core/domain"
)

func strPtr(s string) *string { return &s }

func TestClosureRules_Evaluate(t *testing.T) {
	tests := []struct {
		name   string
		kind   domain.EntityKind
		closed []string
		valid  []string
		status *string
		want   domain.Closure
	}{
		{
			name:   "nil_status_is_closed_not_validated",
			kind:   domain.KindBuybackOffer,
			status: nil,
			want:   domain.Closure{Closed: true},
		},
		{
			name:   "open_offer_status",
			kind:   domain.KindBuybackOffer,
			status: strPtr("draft"),
			want:   domain.Closure{},
		},
		{
			name:   "accepted_offer_is_closed_and_validated",
			kind:   domain.KindBuybackOffer,
			status: strPtr("accepted"),
			want:   domain.Closure{Closed: true, Validated: true},
		},
		{
			name:   "configured_status_joins_defaults",
			kind:   domain.KindBuybackOffer,
			closed: []string{"expired"},
			status: strPtr("expired"),
			want:   domain.Closure{Closed: true},
		},
		{
			name:   "defaults_survive_configuration",
			kind:   domain.KindAuditRequest,
			closed: []string{"archived"},
			valid:  []string{"approved"},
			status: strPtr("canceled"),
			want:   domain.Closure{Closed: true},
		},
		{
			name:   "audit_item_audited_is_validated_but_open",
			kind:   domain.KindAuditItem,
			status: strPtr(string(domain.AuditItemAudited)),
			want:   domain.Closure{Validated: true},
		},
		{
			name:   "audit_item_valorised_is_closed",
			kind:   domain.KindAuditItem,
			status: strPtr(string(domain.AuditItemValorised)),
			want:   domain.Closure{Closed: true},
		},
		{
			name:   "blank_configured_values_are_ignored",
			kind:   domain.KindAuditRequest,
			closed: []string{""},
			status: strPtr(""),
			want:   domain.Closure{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := domain.NewClosureRules(tt.kind, tt.closed, tt.valid)
			assert.Equal(t, tt.want, rules.Evaluate(tt.status))
		})
	}
}

func TestStatusSet(t *testing.T) {
	set := domain.NewStatusSet("b", "a", "", "b")
	assert.Equal(t, []string{"a", "b"}, set.Values())
	assert.True(t, set.Contains("a"))
	assert.False(t, set.Contains(""))

	union := set.Union(domain.NewStatusSet("c"))
	assert.Equal(t, []string{"a", "b", "c"}, union.Values())
	assert.Len(t, set, 2)
}

func TestCalculationMethod_IsValid(t *testing.T) {
	assert.True(t, domain.CalculationByState.IsValid())
	assert.True(t, domain.CalculationByCondition.IsValid())
	assert.False(t, domain.CalculationMethod("by_weight").IsValid())
}
