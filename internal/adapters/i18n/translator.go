// internal/adapters/i18n/translator.go
package i18n

import (
	"context"
	"errors"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/ammerola/buyback-be/internal/core/domain"
	"github.com/ammerola/buyback-be/internal/core/ports"
	"github.com/ammerola/buyback-be/internal/pkg/logger"
)

// Message keys outside the validation kinds
const (
	keyNotFound = "not_found"
	keyInternal = "internal_error"
)

// Translator renders domain errors in the request locale
type Translator struct {
	catalog  catalog.Catalog
	matcher  language.Matcher
	fallback language.Tag
}

var _ ports.Translator = (*Translator)(nil)

// NewTranslator builds a translator for the supported locales. The first
// supported locale matching defaultLocale is used when a request has none.
func NewTranslator(defaultLocale string) (*Translator, error) {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range messages {
		for key, text := range entries {
			if err := builder.SetString(tag, key, text); err != nil {
				return nil, err
			}
		}
	}

	fallback := language.English
	if defaultLocale != "" {
		tag, err := language.Parse(defaultLocale)
		if err != nil {
			return nil, err
		}
		fallback = tag
	}

	supported := Supported()
	matcher := language.NewMatcher(supported)
	fallback, _, _ = matcher.Match(fallback)
	fallback = language.Make(baseOf(fallback))

	return &Translator{
		catalog:  builder,
		matcher:  matcher,
		fallback: fallback,
	}, nil
}

// Supported lists the locales with a message catalog
func Supported() []language.Tag {
	return []language.Tag{language.English, language.French}
}

// Negotiate picks the best supported locale for an Accept-Language header
func (t *Translator) Negotiate(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return baseOf(t.fallback)
	}
	tag, _, _ := t.matcher.Match(tags...)
	return baseOf(tag)
}

// Translate returns a user-facing message for err in the request locale
func (t *Translator) Translate(ctx context.Context, err error) string {
	if err == nil {
		return ""
	}

	printer := message.NewPrinter(t.localeOf(ctx), message.Catalog(t.catalog))

	if verr, ok := domain.AsValidationError(err); ok {
		if verr.Kind == domain.ErrKindInvalidField && verr.Field != "" {
			return printer.Sprintf(string(verr.Kind)+"_field", verr.Field)
		}
		return printer.Sprintf(string(verr.Kind))
	}
	if errors.Is(err, domain.ErrNotFound) {
		return printer.Sprintf(keyNotFound)
	}
	return printer.Sprintf(keyInternal)
}

func (t *Translator) localeOf(ctx context.Context) language.Tag {
	locale := logger.Locale(ctx)
	if locale == "" {
		return t.fallback
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return t.fallback
	}
	match, _, _ := t.matcher.Match(tag)
	return language.Make(baseOf(match))
}

func baseOf(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}
