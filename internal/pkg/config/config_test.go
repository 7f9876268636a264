package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/buyback-be/internal/pkg/config"
	"github.com/ammerola/buyback-be/test/helpers"
)

func TestLoad_BuybackDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg, err := config.Load(helpers.TestLogger())
	require.NoError(t, err)

	assert.Equal(t, "draft", cfg.Buyback.DefaultAuditRequestStatus)
	assert.Equal(t, "draft", cfg.Buyback.DefaultOfferStatus)
	assert.Equal(t, "AR", cfg.Buyback.AuditRequestPrefix)
	assert.Equal(t, "BO", cfg.Buyback.OfferPrefix)
	assert.Equal(t, 14*24*time.Hour, cfg.Buyback.OfferExpiration)
	assert.Equal(t, "en", cfg.Buyback.DefaultLocale)
	assert.Equal(t, "X-User-ID", cfg.Security.ActorHeader)
}

func TestLoad_BuybackOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("BUYBACK_OFFER_VALIDATED", "accepted, paid")
	t.Setenv("BUYBACK_DEFAULT_OFFER_STATUS", "new")
	t.Setenv("BUYBACK_DEFAULT_LOCALE", "fr")

	cfg, err := config.Load(helpers.TestLogger())
	require.NoError(t, err)

	assert.Equal(t, []string{"accepted", "paid"}, cfg.Buyback.OfferValidatedStatuses)
	assert.Equal(t, "new", cfg.Buyback.DefaultOfferStatus)
	assert.Equal(t, "fr", cfg.Buyback.DefaultLocale)
}

func TestBuybackValidator(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{
			name:   "valid_config",
			mutate: func(c *config.Config) {},
		},
		{
			name:    "unsupported_locale",
			mutate:  func(c *config.Config) { c.Buyback.DefaultLocale = "de" },
			wantErr: "unsupported default locale",
		},
		{
			name:    "expiration_too_short",
			mutate:  func(c *config.Config) { c.Buyback.OfferExpiration = time.Hour },
			wantErr: "offer expiration",
		},
		{
			name: "same_prefixes",
			mutate: func(c *config.Config) {
				c.Buyback.OfferPrefix = "X"
				c.Buyback.AuditRequestPrefix = "X"
			},
			wantErr: "prefixes must differ",
		},
		{
			name:    "empty_status",
			mutate:  func(c *config.Config) { c.Buyback.OfferClosedStatuses = []string{"refused", " "} },
			wantErr: "buyback offer statuses",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := helpers.LoadTestConfig()
			tt.mutate(cfg)

			err := (&config.BuybackValidator{}).Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Validate_RequiredFields(t *testing.T) {
	cfg := helpers.LoadTestConfig()
	cfg.Database.Name = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingRequiredConfig)
}

func TestResolveDatabaseSecrets(t *testing.T) {
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASSWORD", "from-secret")

	db := config.DatabaseConfig{User: "buyback", Password: "plain"}
	err := config.ResolveDatabaseSecrets(context.Background(), config.NewEnvSecretsManager(), &db)
	require.NoError(t, err)

	assert.Equal(t, "from-secret", db.Password)
	assert.Equal(t, "buyback", db.User)
}

func TestBuybackConfig_CascadeRules(t *testing.T) {
	cfg := helpers.LoadTestConfig()
	cfg.Buyback.OfferValidatedStatuses = []string{"paid"}
	cfg.Buyback.AuditRequestClosedStatuses = []string{"archived"}

	rules := cfg.Buyback.CascadeRules()

	paid, accepted := "paid", "accepted"
	assert.True(t, rules.BuybackOffer.Evaluate(&paid).Validated)
	assert.True(t, rules.BuybackOffer.Evaluate(&accepted).Validated)

	archived, closed := "archived", "closed"
	assert.True(t, rules.AuditRequest.Evaluate(&archived).Closed)
	assert.True(t, rules.AuditRequest.Evaluate(&closed).Closed)
	assert.Equal(t, cfg.Buyback.DefaultOfferStatus, rules.DefaultOfferStatus)
	assert.Equal(t, cfg.Buyback.OfferExpiration, cfg.Buyback.ServiceOptions().OfferExpiration)
}
