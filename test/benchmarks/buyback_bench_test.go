package benchmarks

import (
	"context"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammerola/buyback-be/internal/core/domain"
	"github.com/ammerola/buyback-be/internal/core/ports"
	"github.com/ammerola/buyback-be/test/helpers"
)

func BenchmarkCreateAuditRequest(b *testing.B) {
	ctx := context.Background()

	for _, lines := range []int{1, 10, 100} {
		b.Run(strconv.Itoa(lines), func(b *testing.B) {
			bench := NewBench()
			input := ports.AuditRequestInput{AccountID: bench.AccountID}
			for i := 0; i < lines; i++ {
				input.Items = append(input.Items, ports.AuditRequestItemInput{
					ProductID:        uuid.New(),
					ExpectedQuantity: helpers.Ptr(2),
					ReceivedQuantity: helpers.Ptr(1),
				})
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := bench.Service.CreateAuditRequest(ctx, input); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkUpdateAuditItemPrice(b *testing.B) {
	ctx := context.Background()
	bench := NewBench()
	request := bench.SeedAuditedItems(50)

	var target *domain.AuditItem
	for _, item := range bench.Store.Items {
		if item.AuditRequest == request {
			target = item
			break
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		patch := ports.AuditItemPatch{StatePrice: ports.Some(decimal.NewFromInt(int64(100 + i%10)))}
		if _, err := bench.Service.UpdateAuditItem(ctx, target.ID, patch); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAddAuditItemsToOffer(b *testing.B) {
	ctx := context.Background()

	for _, items := range []int{10, 100} {
		b.Run(strconv.Itoa(items), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				bench := NewBench()
				bench.SeedAuditedItems(items)
				b.StartTimer()

				if _, err := bench.Service.AddAuditItemsToOffer(ctx, bench.AccountID, nil, ports.OfferSelection{}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkStatusSetContains(b *testing.B) {
	rules := domain.NewClosureRules(domain.KindBuybackOffer, []string{"paid", "expired"}, []string{"paid"})
	statuses := []string{"draft", "accepted", "paid", "refused", "expired"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := statuses[i%len(statuses)]
		_ = rules.Evaluate(&s)
	}
}
