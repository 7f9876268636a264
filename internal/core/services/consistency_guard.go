// internal/core/services/consistency_guard.go
package services

import (
	"github.com/google/uuid"

	"github.com/ammerola/buyback-be/internal/core/domain"
)

// ConsistencyGuard holds the rules that abort a commit. Each rule returns a
// *domain.ValidationError of its own kind, or nil.
type ConsistencyGuard struct{}

// PreviousAuditClosed rejects a new audit item for a device whose last audit
// item is still open.
func (ConsistencyGuard) PreviousAuditClosed(item *domain.AuditItem) error {
	if item.Device == nil {
		return nil
	}
	last := item.Device.LastAuditItem
	if last != nil && last != item && !last.Closed {
		return domain.NewValidationError(domain.ErrKindPreviousAuditStillOpen, item, domain.FieldDevice)
	}
	return nil
}

// OfferMembership rejects detaching from a validated offer and attaching to
// a closed one.
func (ConsistencyGuard) OfferMembership(item *domain.AuditItem, oldOffer, newOffer *domain.BuybackOffer) error {
	if oldOffer != nil && oldOffer.Validated {
		return domain.NewValidationError(domain.ErrKindOfferDetachForbidden, item, domain.FieldBuybackOffer)
	}
	if newOffer != nil && newOffer.Closed {
		return domain.NewValidationError(domain.ErrKindOfferAttachForbidden, item, domain.FieldBuybackOffer)
	}
	return nil
}

// ModuleEnabled requires an enabled buyback module for the owning account
func (ConsistencyGuard) ModuleEnabled(e domain.Entity, module *domain.BuybackModule) error {
	if module == nil || !module.Enabled {
		return domain.NewValidationError(domain.ErrKindModuleDisabled, e, domain.FieldAccount)
	}
	return nil
}

// NotEmptyWhenValidated rejects a closed and validated collection without
// items.
func (ConsistencyGuard) NotEmptyWhenValidated(e domain.Entity, closure domain.Closure, items int) error {
	if closure.Closed && closure.Validated && items == 0 {
		return domain.NewValidationError(domain.ErrKindEmptyValidatedCollection, e, domain.FieldStatus)
	}
	return nil
}

// ShippingAddress requires a resolved shipping address
func (ConsistencyGuard) ShippingAddress(e domain.Entity, address *uuid.UUID) error {
	if address == nil {
		return domain.NewValidationError(domain.ErrKindShippingAddressRequired, e, domain.FieldShippingAddress)
	}
	return nil
}

// RepairTransfer requires a device on the audit item
func (ConsistencyGuard) RepairTransfer(item *domain.AuditItem) error {
	if item.Device == nil {
		return domain.NewValidationError(domain.ErrKindDeviceRequiredForRepairTransfer, item, domain.FieldDevice)
	}
	return nil
}

// ParentRequest requires an audit request and forbids moving the item to
// another one.
func (ConsistencyGuard) ParentRequest(item *domain.AuditItem, changes domain.ChangeSet, isCreate bool) error {
	if item.AuditRequest == nil {
		return domain.NewValidationError(domain.ErrKindAuditRequestRequired, item, domain.FieldAuditRequest)
	}
	if !isCreate && changes.Has(domain.FieldAuditRequest) && changes.Old(domain.FieldAuditRequest) != nil {
		return domain.NewValidationError(domain.ErrKindAuditRequestImmutable, item, domain.FieldAuditRequest)
	}
	return nil
}
