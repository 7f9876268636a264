// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("entity not found")

// ErrorKind identifies a rule violation
type ErrorKind string

// Validation error kinds
const (
	ErrKindPreviousAuditStillOpen          ErrorKind = "previous_audit_still_open"
	ErrKindOfferDetachForbidden            ErrorKind = "offer_detach_forbidden"
	ErrKindOfferAttachForbidden            ErrorKind = "offer_attach_forbidden"
	ErrKindModuleDisabled                  ErrorKind = "module_disabled"
	ErrKindEmptyValidatedCollection        ErrorKind = "empty_validated_collection"
	ErrKindShippingAddressRequired         ErrorKind = "shipping_address_required"
	ErrKindDeviceRequiredForRepairTransfer ErrorKind = "device_required_for_repair_transfer"
	ErrKindAuditRequestRequired            ErrorKind = "audit_request_required"
	ErrKindAuditRequestImmutable           ErrorKind = "audit_request_immutable"
	ErrKindNoAuditSelected                 ErrorKind = "no_audit_selected"
	ErrKindInvalidField                    ErrorKind = "invalid_field"
)

// ValidationError aborts a commit. Entity, EntityID and Field are set when
// the offending object is known.
type ValidationError struct {
	Kind     ErrorKind
	Entity   EntityKind
	EntityID uuid.UUID
	Field    string
	Detail   string
}

func (e *ValidationError) Error() string {
	msg := string(e.Kind)
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Entity == "" {
		return msg
	}
	if e.Field != "" {
		return fmt.Sprintf("%s %s (%s): %s", e.Entity, e.EntityID, e.Field, msg)
	}
	return fmt.Sprintf("%s %s: %s", e.Entity, e.EntityID, msg)
}

// Is matches any validation error of the same kind
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is
var (
	ErrPreviousAuditStillOpen          = &ValidationError{Kind: ErrKindPreviousAuditStillOpen}
	ErrOfferDetachForbidden            = &ValidationError{Kind: ErrKindOfferDetachForbidden}
	ErrOfferAttachForbidden            = &ValidationError{Kind: ErrKindOfferAttachForbidden}
	ErrModuleDisabled                  = &ValidationError{Kind: ErrKindModuleDisabled}
	ErrEmptyValidatedCollection        = &ValidationError{Kind: ErrKindEmptyValidatedCollection}
	ErrShippingAddressRequired         = &ValidationError{Kind: ErrKindShippingAddressRequired}
	ErrDeviceRequiredForRepairTransfer = &ValidationError{Kind: ErrKindDeviceRequiredForRepairTransfer}
	ErrAuditRequestRequired            = &ValidationError{Kind: ErrKindAuditRequestRequired}
	ErrAuditRequestImmutable           = &ValidationError{Kind: ErrKindAuditRequestImmutable}
	ErrNoAuditSelected                 = &ValidationError{Kind: ErrKindNoAuditSelected}
	ErrInvalidField                    = &ValidationError{Kind: ErrKindInvalidField}
)

// NewValidationError builds a validation error tagged to an entity and field
func NewValidationError(kind ErrorKind, e Entity, field string) *ValidationError {
	verr := &ValidationError{Kind: kind, Field: field}
	if e != nil {
		verr.Entity = e.Kind()
		verr.EntityID = e.EntityID()
	}
	return verr
}

// InvalidField reports a malformed input value
func InvalidField(field, detail string) *ValidationError {
	return &ValidationError{Kind: ErrKindInvalidField, Field: field, Detail: detail}
}

// AsValidationError unwraps err into a validation error if it is one
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
