package i18n_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/buyback-be/internal/adapters/i18n"
	"github.com/ammerola/buyback-be/internal/core/domain"
	"github.com/ammerola/buyback-be/internal/pkg/logger"
)

func TestTranslator_Translate(t *testing.T) {
	translator, err := i18n.NewTranslator("en")
	require.NoError(t, err)

	offer := &domain.BuybackOffer{ID: uuid.New()}

	tests := []struct {
		name     string
		locale   string
		err      error
		expected string
	}{
		{
			name:     "validation_error_in_english",
			locale:   "en",
			err:      domain.NewValidationError(domain.ErrKindShippingAddressRequired, offer, domain.FieldShippingAddress),
			expected: "A shipping address is required to validate the buyback offer.",
		},
		{
			name:     "validation_error_in_french",
			locale:   "fr",
			err:      domain.NewValidationError(domain.ErrKindShippingAddressRequired, offer, domain.FieldShippingAddress),
			expected: "Une adresse de livraison est requise pour valider l'offre de rachat.",
		},
		{
			name:     "wrapped_validation_error",
			locale:   "en",
			err:      fmt.Errorf("commit failed: %w", domain.ErrModuleDisabled),
			expected: "The buyback module is not enabled for this account.",
		},
		{
			name:     "invalid_field_names_the_field",
			locale:   "fr",
			err:      domain.InvalidField("status", "unknown status"),
			expected: "La valeur de status est invalide.",
		},
		{
			name:     "not_found",
			locale:   "en",
			err:      fmt.Errorf("load offer: %w", domain.ErrNotFound),
			expected: "The requested resource does not exist.",
		},
		{
			name:     "unknown_error_is_generic",
			locale:   "fr",
			err:      errors.New("connection reset"),
			expected: "Une erreur inattendue est survenue.",
		},
		{
			name:     "missing_locale_uses_default",
			locale:   "",
			err:      domain.ErrNoAuditSelected,
			expected: "Select at least one audit item.",
		},
		{
			name:     "unsupported_locale_uses_closest",
			locale:   "de",
			err:      domain.ErrNoAuditSelected,
			expected: "Select at least one audit item.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			if tt.locale != "" {
				ctx = logger.WithLocale(ctx, tt.locale)
			}
			assert.Equal(t, tt.expected, translator.Translate(ctx, tt.err))
		})
	}
}

func TestTranslator_DefaultLocaleFrench(t *testing.T) {
	translator, err := i18n.NewTranslator("fr")
	require.NoError(t, err)

	msg := translator.Translate(context.Background(), domain.ErrNoAuditSelected)
	assert.Equal(t, "Sélectionnez au moins un audit.", msg)
}

func TestTranslator_Negotiate(t *testing.T) {
	translator, err := i18n.NewTranslator("en")
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "french_first", header: "fr-FR,fr;q=0.9,en;q=0.8", expected: "fr"},
		{name: "english_region", header: "en-GB", expected: "en"},
		{name: "empty_header", header: "", expected: "en"},
		{name: "garbage_header", header: ";;;", expected: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Negotiate(tt.header))
		})
	}
}

func TestNewTranslator_InvalidLocale(t *testing.T) {
	_, err := i18n.NewTranslator("not a locale!")
	assert.Error(t, err)
}
