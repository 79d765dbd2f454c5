package mf2lint

import (
	"github.com/rs/zerolog"
)

// Validator runs the checkers with a category resolver and the configured
// plural functions and selector bound. It holds no mutable state and is
// safe for concurrent use.
type Validator struct {
	resolver CategoryResolver
	opts     pluralOptions
	logger   zerolog.Logger
}

// NewValidator builds a Validator from options.
func NewValidator(opts ...Option) (*Validator, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.BuildValidator(), nil
}

// Categories resolves the plural categories of locale.
func (v *Validator) Categories(locale string) ([]PluralCategory, error) {
	categories, err := v.resolver.Categories(locale)
	if err != nil {
		v.logger.Debug().Str("locale", locale).Err(err).Msg("plural categories unavailable")
		return nil, err
	}
	return categories, nil
}

// IsPluralSelector is the package level IsPluralSelector honouring the
// configured plural functions.
func (v *Validator) IsPluralSelector(msg Message, ref VariableRef) bool {
	return newSelectorClassifier(msg, v.opts.functions).isPlural(ref)
}

// CheckPlurals runs the exhaustiveness check against an explicit category set.
func (v *Validator) CheckPlurals(categories []PluralCategory, msg Message) *Report {
	return checkPlurals(v.opts, categories, msg)
}

// ValidateMessage resolves the categories of locale and checks msg against
// them, returning the displayable verdict. An unresolvable locale yields
// "error getting plural forms".
func (v *Validator) ValidateMessage(locale string, msg Message) string {
	return v.ValidateMessageReport(locale, msg).String()
}

// ValidateMessageReport is ValidateMessage returning the structured report.
func (v *Validator) ValidateMessageReport(locale string, msg Message) *Report {
	categories, err := v.Categories(locale)
	if err != nil {
		categories = nil
	}

	report := checkPlurals(v.opts, categories, msg)
	v.logger.Debug().
		Str("locale", locale).
		Int("selectors", len(msg.Selectors)).
		Int("variants", len(msg.Variants)).
		Bool("ok", report.OK()).
		Msg("plural check")
	return report
}

// ComparePlaceholders checks target against source.
func (v *Validator) ComparePlaceholders(sourceLocale, targetLocale string, source, target Message) *Report {
	report := ValidatePlaceholdersReport(sourceLocale, targetLocale, source, target)
	v.logger.Debug().
		Str("source", sourceLocale).
		Str("target", targetLocale).
		Bool("ok", report.OK()).
		Msg("placeholder check")
	return report
}

var defaultValidator = &Validator{
	resolver: NewCLDRResolver(),
	opts:     pluralOptions{maxSelectors: DefaultMaxSelectors},
	logger:   zerolog.Nop(),
}

// ValidateMessage checks msg against the CLDR categories of locale.
func ValidateMessage(locale string, msg Message) string {
	return defaultValidator.ValidateMessage(locale, msg)
}
