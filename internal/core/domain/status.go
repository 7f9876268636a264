// internal/core/domain/status.go
package domain

import "sort"

// AuditItemStatus represents the derived status of an audit item
type AuditItemStatus string

// Audit item status ladder, in increasing order
const (
	AuditItemConfirmed AuditItemStatus = "confirmed"
	AuditItemQualified AuditItemStatus = "qualified"
	AuditItemAudited   AuditItemStatus = "audited"
	AuditItemValorised AuditItemStatus = "valorised"
)

// DeviceStatus represents the lifecycle status of a device
type DeviceStatus string

// Device status constants
const (
	DeviceInUse          DeviceStatus = "in_use"
	DeviceInAudit        DeviceStatus = "in_audit"
	DeviceInBuybackOffer DeviceStatus = "in_buyback_offer"
	DeviceBuybacked      DeviceStatus = "buybacked"
)

// CalculationMethod selects which price total drives an offer
type CalculationMethod string

// Calculation methods
const (
	CalculationByState     CalculationMethod = "by_state"
	CalculationByCondition CalculationMethod = "by_condition"
)

// IsValid reports whether the calculation method is known
func (m CalculationMethod) IsValid() bool {
	return m == CalculationByState || m == CalculationByCondition
}

// Request and offer status values with built-in meaning
const (
	AuditRequestStatusValidated       = "validated"
	AuditRequestStatusWaitingCounting = "waiting_counting"
	RepairStatusReceived              = "received"
)

// Audit condition states used by price rules
const (
	ConditionStateFunctional    = "functional"
	ConditionStateNonfunctional = "nonfunctional"
)

// StatusSet is an unordered set of status values
type StatusSet map[string]struct{}

// NewStatusSet builds a set from the given values, skipping blanks
func NewStatusSet(values ...string) StatusSet {
	s := make(StatusSet, len(values))
	for _, v := range values {
		if v != "" {
			s[v] = struct{}{}
		}
	}
	return s
}

// Contains reports whether the value is in the set
func (s StatusSet) Contains(value string) bool {
	_, ok := s[value]
	return ok
}

// Union returns a new set containing the values of both sets
func (s StatusSet) Union(other StatusSet) StatusSet {
	out := make(StatusSet, len(s)+len(other))
	for v := range s {
		out[v] = struct{}{}
	}
	for v := range other {
		out[v] = struct{}{}
	}
	return out
}

// Values returns the sorted values of the set
func (s StatusSet) Values() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Closure is the result of evaluating a status against closure rules
type Closure struct {
	Closed    bool
	Validated bool
}

// ClosureRules holds the closed and validated status sets of one entity kind
type ClosureRules struct {
	Closed    StatusSet
	Validated StatusSet
}

// Evaluate computes closed/validated for a status. A nil status is closed
// and never validated.
func (r ClosureRules) Evaluate(status *string) Closure {
	if status == nil {
		return Closure{Closed: true, Validated: false}
	}
	return Closure{
		Closed:    r.Closed.Contains(*status),
		Validated: r.Validated.Contains(*status),
	}
}

// defaultClosureRules are always part of the effective rules of a kind
var defaultClosureRules = map[EntityKind]ClosureRules{
	KindAuditItem: {
		Closed:    NewStatusSet(string(AuditItemValorised)),
		Validated: NewStatusSet(string(AuditItemAudited), "validated"),
	},
	KindAuditRequest: {
		Closed:    NewStatusSet("closed", "canceled"),
		Validated: NewStatusSet("accepted"),
	},
	KindBuybackOffer: {
		Closed:    NewStatusSet("accepted", "refused", "canceled"),
		Validated: NewStatusSet("accepted"),
	},
}

// NewClosureRules unions the configured statuses with the built-in defaults
// of the kind.
func NewClosureRules(kind EntityKind, closed, validated []string) ClosureRules {
	defaults := defaultClosureRules[kind]
	return ClosureRules{
		Closed:    NewStatusSet(closed...).Union(defaults.Closed),
		Validated: NewStatusSet(validated...).Union(defaults.Validated),
	}
}
