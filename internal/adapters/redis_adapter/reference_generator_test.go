package redis_adapter_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/ammerola/buyback-be/internal/adapters/redis_adapter"
	"github.com/ammerola/buyback-be/internal/core/domain"
	"github.com/ammerola/buyback-be/test/helpers"
)

func newTestGenerator(t *testing.T, now time.Time) (*redis_a.ReferenceGenerator, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())
	gen := redis_a.NewReferenceGenerator(cache, "AR", "BO", helpers.TestLogger()).
		WithClock(func() time.Time { return now })
	return gen, mr
}

func TestReferenceGenerator_Generate(t *testing.T) {
	ctx := context.Background()
	gen, mr := newTestGenerator(t, time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		name     string
		kind     domain.EntityKind
		expected string
	}{
		{name: "first_request", kind: domain.KindAuditRequest, expected: "AR-2026-000001"},
		{name: "second_request", kind: domain.KindAuditRequest, expected: "AR-2026-000002"},
		{name: "offers_count_separately", kind: domain.KindBuybackOffer, expected: "BO-2026-000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := gen.Generate(ctx, tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ref)
		})
	}

	assert.True(t, mr.Exists("buyback:ref:AR:2026"))
	assert.Greater(t, mr.TTL("buyback:ref:AR:2026"), 365*24*time.Hour)
}

func TestReferenceGenerator_NewYearRestartsSequence(t *testing.T) {
	ctx := context.Background()
	gen, mr := newTestGenerator(t, time.Date(2027, 1, 1, 0, 0, 1, 0, time.UTC))
	require.NoError(t, mr.Set("buyback:ref:BO:2026", "41"))

	ref, err := gen.Generate(ctx, domain.KindBuybackOffer)
	require.NoError(t, err)
	assert.Equal(t, "BO-2027-000001", ref)
}

func TestReferenceGenerator_UnknownKind(t *testing.T) {
	gen, _ := newTestGenerator(t, time.Now())

	_, err := gen.Generate(context.Background(), domain.KindDevice)
	assert.Error(t, err)
}

func TestReferenceGenerator_RedisDown(t *testing.T) {
	gen, mr := newTestGenerator(t, time.Now())
	mr.Close()

	_, err := gen.Generate(context.Background(), domain.KindAuditRequest)
	assert.Error(t, err)
}
