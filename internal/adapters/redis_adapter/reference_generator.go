// internal/adapters/redis_adapter/reference_generator.go
package redis_adapter

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/ammerola/buyback-be/internal/core/domain"
	"github.com/ammerola/buyback-be/internal/core/ports"
)

// counterRetention keeps a yearly counter past the year it numbers
const counterRetention = 400 * 24 * time.Hour

// ReferenceGenerator numbers audit requests and offers per prefix and year,
// e.g. AR-2026-000007 or BO-2026-000042.
type ReferenceGenerator struct {
	cache    ports.CacheRepository
	prefixes map[domain.EntityKind]string
	now      func() time.Time
	logger   *slog.Logger
}

var _ ports.ReferenceGenerator = (*ReferenceGenerator)(nil)

// NewReferenceGenerator creates a generator backed by redis counters
func NewReferenceGenerator(cache ports.CacheRepository, requestPrefix, offerPrefix string, logger *slog.Logger) *ReferenceGenerator {
	return &ReferenceGenerator{
		cache: cache,
		prefixes: map[domain.EntityKind]string{
			domain.KindAuditRequest: requestPrefix,
			domain.KindBuybackOffer: offerPrefix,
		},
		now:    time.Now,
		logger: logger.With(slog.String("component", "references")),
	}
}

// WithClock replaces the generator's clock
func (g *ReferenceGenerator) WithClock(now func() time.Time) *ReferenceGenerator {
	g.now = now
	return g
}

// Generate returns the next reference for kind
func (g *ReferenceGenerator) Generate(ctx context.Context, kind domain.EntityKind) (string, error) {
	prefix, ok := g.prefixes[kind]
	if !ok || prefix == "" {
		return "", fmt.Errorf("no reference prefix for %s", kind)
	}

	year := g.now().UTC().Year()
	key := BuildKey(PrefixReference, prefix, strconv.Itoa(year))

	n, err := g.cache.Increment(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to increment reference counter: %w", err)
	}
	if n == 1 {
		if err := g.cache.Expire(ctx, key, counterRetention); err != nil {
			g.logger.WarnContext(ctx, "failed to set counter expiration",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
	}

	return fmt.Sprintf("%s-%d-%06d", prefix, year, n), nil
}
