// internal/pkg/config/buyback.go
package config

import (
	"github.com/ammerola/buyback-be/internal/core/domain"
	"github.com/ammerola/buyback-be/internal/core/services"
)

// CascadeRules merges the configured status sets with the built-in ones
func (b BuybackConfig) CascadeRules() services.CascadeRules {
	return services.CascadeRules{
		AuditItem:                 domain.NewClosureRules(domain.KindAuditItem, b.AuditItemClosedStatuses, b.AuditItemValidatedStatuses),
		AuditRequest:              domain.NewClosureRules(domain.KindAuditRequest, b.AuditRequestClosedStatuses, b.AuditRequestValidatedStatuses),
		BuybackOffer:              domain.NewClosureRules(domain.KindBuybackOffer, b.OfferClosedStatuses, b.OfferValidatedStatuses),
		DefaultAuditRequestStatus: b.DefaultAuditRequestStatus,
		DefaultOfferStatus:        b.DefaultOfferStatus,
	}
}

// ServiceOptions returns the buyback service tuning
func (b BuybackConfig) ServiceOptions() services.BuybackOptions {
	return services.BuybackOptions{OfferExpiration: b.OfferExpiration}
}
