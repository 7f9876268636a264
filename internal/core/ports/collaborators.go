// internal/core/ports/collaborators.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/ammerola/buyback-be/internal/core/domain"
)

// IdentityProvider returns the user acting in the current request, if any
type IdentityProvider interface {
	CurrentActor(ctx context.Context) *uuid.UUID
}

// Translator turns an error into a user-facing message
type Translator interface {
	Translate(ctx context.Context, err error) string
}

// ReferenceGenerator produces human-readable references
type ReferenceGenerator interface {
	Generate(ctx context.Context, kind domain.EntityKind) (string, error)
}

// TaskEnqueuer schedules background work after a successful commit
type TaskEnqueuer interface {
	EnqueueOfferValidated(ctx context.Context, offerID uuid.UUID) error
	EnqueueReconcile(ctx context.Context, requestIDs, offerIDs []uuid.UUID) error
	EnqueueRepairPrices(ctx context.Context, prices []RepairPrice) error
}

// OfferArchive stores a snapshot of a validated offer
type OfferArchive interface {
	StoreOffer(ctx context.Context, snapshot *domain.OfferSnapshot) (string, error)
}
