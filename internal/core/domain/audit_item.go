// internal/core/domain/audit_item.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuditItem is one unit undergoing qualification, audit and valorisation
type AuditItem struct {
	ID                   uuid.UUID        `json:"id"`
	AuditRequest         *AuditRequest    `json:"-"`
	Device               *Device          `json:"-"`
	ProductID            *uuid.UUID       `json:"product_id,omitempty"`
	ProductCombinationID *uuid.UUID       `json:"product_combination_id,omitempty"`
	AuditConditionID     *uuid.UUID       `json:"audit_condition_id,omitempty"`
	Status               *AuditItemStatus `json:"status,omitempty"`
	ConditionPrice       decimal.Decimal  `json:"condition_price"`
	StatePrice           decimal.Decimal  `json:"state_price"`
	Repair               *Repair          `json:"-"`
	RepairPrice          decimal.Decimal  `json:"repair_price"`
	IncludedRepairPrice  bool             `json:"included_repair_price"`
	BuybackOffer         *BuybackOffer    `json:"-"`
	AuditorID            *uuid.UUID       `json:"auditor_id,omitempty"`
	PreviousAuditItemID  *uuid.UUID       `json:"previous_audit_item_id,omitempty"`
	ReceiptedAt          *time.Time       `json:"receipted_at,omitempty"`
	QualifiedAt          *time.Time       `json:"qualified_at,omitempty"`
	AuditedAt            *time.Time       `json:"audited_at,omitempty"`
	ValorisedAt          *time.Time       `json:"valorised_at,omitempty"`
	Closed               bool             `json:"closed"`
	Validated            bool             `json:"validated"`
	Comment              *string          `json:"comment,omitempty"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// Kind implements Entity
func (i *AuditItem) Kind() EntityKind { return KindAuditItem }

// EntityID implements Entity
func (i *AuditItem) EntityID() uuid.UUID { return i.ID }

// Fields implements Entity
func (i *AuditItem) Fields() FieldSet {
	var status any
	if i.Status != nil {
		status = string(*i.Status)
	}
	return FieldSet{
		FieldAuditRequest:        refValue(i.AuditRequest),
		FieldDevice:              refValue(i.Device),
		FieldProduct:             idValue(i.ProductID),
		FieldProductCombination:  idValue(i.ProductCombinationID),
		FieldAuditCondition:      idValue(i.AuditConditionID),
		FieldStatus:              status,
		FieldConditionPrice:      decimalValue(i.ConditionPrice),
		FieldStatePrice:          decimalValue(i.StatePrice),
		FieldRepair:              refValue(i.Repair),
		FieldRepairPrice:         decimalValue(i.RepairPrice),
		FieldIncludedRepairPrice: i.IncludedRepairPrice,
		FieldBuybackOffer:        refValue(i.BuybackOffer),
		FieldAuditor:             idValue(i.AuditorID),
		FieldPreviousAuditItem:   idValue(i.PreviousAuditItemID),
		FieldReceiptedAt:         timeValue(i.ReceiptedAt),
		FieldQualifiedAt:         timeValue(i.QualifiedAt),
		FieldAuditedAt:           timeValue(i.AuditedAt),
		FieldValorisedAt:         timeValue(i.ValorisedAt),
		FieldClosed:              i.Closed,
		FieldValidated:           i.Validated,
		FieldComment:             stringValue(i.Comment),
	}
}

// StatusValue returns the status as a nullable string for closure evaluation
func (i *AuditItem) StatusValue() *string {
	if i.Status == nil {
		return nil
	}
	s := string(*i.Status)
	return &s
}

// PrepareForStorage assigns an id and timestamps
func (i *AuditItem) PrepareForStorage() {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	now := time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	i.UpdatedAt = now
}

// ResolveAuditItemStatus derives the status from the item's current relations.
// The result depends only on field presence, so resolving twice is stable.
func ResolveAuditItemStatus(item *AuditItem) AuditItemStatus {
	status := AuditItemConfirmed

	if item.AuditRequest != nil && item.ProductID != nil {
		status = AuditItemQualified

		if item.Device != nil && item.AuditConditionID != nil {
			status = AuditItemAudited

			if item.BuybackOffer != nil {
				status = AuditItemValorised
			}
		}
	}

	return status
}

// StampStageTimestamps sets the stage timestamps reached by the current
// status. Existing timestamps are never changed. It reports whether anything
// was stamped.
func StampStageTimestamps(item *AuditItem, now time.Time) bool {
	var status AuditItemStatus
	if item.Status != nil {
		status = *item.Status
	}

	stages := 0
	switch {
	case status == AuditItemValorised || item.Closed:
		stages = 3
	case status == AuditItemAudited:
		stages = 2
	case status == AuditItemQualified:
		stages = 1
	}

	edited := false
	stamp := func(field **time.Time) {
		if *field == nil {
			t := now
			*field = &t
			edited = true
		}
	}
	if stages >= 1 {
		stamp(&item.QualifiedAt)
	}
	if stages >= 2 {
		stamp(&item.AuditedAt)
	}
	if stages >= 3 {
		stamp(&item.ValorisedAt)
	}
	return edited
}

// NeedsAuditor reports whether the current status requires an auditor
func (i *AuditItem) NeedsAuditor() bool {
	if i.AuditorID != nil {
		return false
	}
	if i.Closed {
		return true
	}
	return i.Status != nil && (*i.Status == AuditItemAudited || *i.Status == AuditItemValorised)
}

// DeviceStatusFor maps an audit status to the status its device should carry
func DeviceStatusFor(status *AuditItemStatus) DeviceStatus {
	if status != nil && *status == AuditItemValorised {
		return DeviceInBuybackOffer
	}
	return DeviceInAudit
}
