// internal/handlers/middleware/identity.go
package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/ammerola/buyback-be/internal/core/ports"
	"github.com/ammerola/buyback-be/internal/pkg/logger"
)

// ContextIdentity resolves the actor stored by the Actor middleware
type ContextIdentity struct{}

var _ ports.IdentityProvider = ContextIdentity{}

// CurrentActor returns the request actor, or nil outside a request
func (ContextIdentity) CurrentActor(ctx context.Context) *uuid.UUID {
	id, ok := logger.UserID(ctx)
	if !ok {
		return nil
	}
	return &id
}
