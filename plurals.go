package mf2lint

import (
	"fmt"
	"strings"
)

// DefaultMaxSelectors bounds the number of selectors checked for
// exhaustiveness; the tuple count grows as len(categories)^selectors.
const DefaultMaxSelectors = 4

type pluralOptions struct {
	functions    []string
	maxSelectors int
}

// CheckPlurals verifies that a selection message enumerates every
// combination of the given plural categories exactly once, and returns a
// displayable verdict.
func CheckPlurals(categories []PluralCategory, msg Message) string {
	return CheckPluralsReport(categories, msg).String()
}

// CheckPluralsReport is CheckPlurals returning the structured report.
func CheckPluralsReport(categories []PluralCategory, msg Message) *Report {
	return checkPlurals(pluralOptions{maxSelectors: DefaultMaxSelectors}, categories, msg)
}

func checkPlurals(opts pluralOptions, categories []PluralCategory, msg Message) *Report {
	report := newReport(msgPluralsOK)

	categories = dedupCategories(categories)
	if len(categories) == 0 {
		report.add(Diagnostic{Kind: KindNoCategories, Severity: SeverityError, Message: msgNoCategories})
		return report
	}

	if !msg.IsSelect() || len(msg.Selectors) == 0 {
		report.add(Diagnostic{Kind: KindTrivial, Severity: SeverityInfo, Message: msgTrivial})
		return report
	}
	mustWellFormed(msg)

	classifier := newSelectorClassifier(msg, opts.functions)
	for _, sel := range msg.Selectors {
		if !classifier.isPlural(sel) {
			report.add(Diagnostic{Kind: KindNonPluralSelector, Severity: SeverityWarning, Name: sel.Name, Message: msgNonPlural})
			return report
		}
	}

	n := len(msg.Selectors)
	if opts.maxSelectors > 0 && n > opts.maxSelectors {
		report.add(Diagnostic{Kind: KindTooManySelectors, Severity: SeverityWarning, Message: tooManySelectorsMessage(n, opts.maxSelectors)})
		return report
	}

	for _, variant := range msg.Variants {
		if partialWildcard(variant.Keys) {
			report.add(Diagnostic{Kind: KindPartialWildcard, Severity: SeverityError, Keys: variant.Keys, Message: msgPartial})
			return report
		}
	}

	tuples := CategoryTuples(n, categories)

	expected := len(tuples) + 1
	if !hasAllOtherVariant(msg.Variants) {
		expected--
	}
	if len(msg.Variants) != expected {
		report.add(Diagnostic{Kind: KindVariantCount, Severity: SeverityError, Message: variantCountMessage(len(msg.Variants), expected)})
	}

	covered := make(map[string]struct{}, len(msg.Variants))
	for _, variant := range msg.Variants {
		if len(variant.Keys) != n {
			report.add(Diagnostic{Kind: KindKeyArity, Severity: SeverityWarning, Keys: variant.Keys, Message: keyArityMessage(variant.Keys, n)})
			continue
		}
		if allCatchall(variant.Keys) {
			continue
		}
		covered[keyID(variant.Keys)] = struct{}{}
	}

	for _, tuple := range tuples {
		if allOther(tuple) {
			continue
		}
		if _, ok := covered[tupleID(tuple)]; ok {
			continue
		}
		report.add(Diagnostic{Kind: KindOmittedVariant, Severity: SeverityError, Tuple: tuple, Message: omittedVariantMessage(tuple)})
	}

	valid := make(map[PluralCategory]struct{}, len(categories))
	for _, category := range categories {
		valid[category] = struct{}{}
	}
	reported := make(map[string]struct{})
	for _, variant := range msg.Variants {
		for _, key := range variant.Keys {
			if key.Catchall {
				continue
			}
			if _, ok := valid[PluralCategory(key.Value)]; ok {
				continue
			}
			if _, dup := reported[key.Value]; dup {
				continue
			}
			reported[key.Value] = struct{}{}
			report.add(Diagnostic{Kind: KindInvalidKey, Severity: SeverityError, Keys: variant.Keys, Name: key.Value, Message: invalidKeyMessage(key.Value)})
		}
	}

	return report
}

// partialWildcard reports whether keys mix literal and catch-all keys.
func partialWildcard(keys []Key) bool {
	var wildcard, literal bool
	for _, key := range keys {
		if key.Catchall {
			wildcard = true
		} else {
			literal = true
		}
	}
	return wildcard && literal
}

func allCatchall(keys []Key) bool {
	for _, key := range keys {
		if !key.Catchall {
			return false
		}
	}
	return true
}

func hasAllOtherVariant(variants []Variant) bool {
	for _, variant := range variants {
		if len(variant.Keys) == 0 {
			continue
		}
		match := true
		for _, key := range variant.Keys {
			if key.Catchall || key.Value != string(PluralOther) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func keyID(keys []Key) string {
	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = key.Value
	}
	return strings.Join(names, "\x00")
}

func tupleID(tuple []PluralCategory) string {
	names := make([]string, len(tuple))
	for i, category := range tuple {
		names[i] = string(category)
	}
	return strings.Join(names, "\x00")
}

// Validate reports data model violations that the checkers refuse to
// interpret.
func (m Message) Validate() error {
	switch m.Type {
	case MessageTypePattern:
		if m.Pattern == nil {
			return fmt.Errorf("%w: pattern message without pattern", ErrMalformedMessage)
		}
	case MessageTypeSelect:
		for i, variant := range m.Variants {
			if variant.Value == nil {
				return fmt.Errorf("%w: variant %d %s has no pattern", ErrMalformedMessage, i, renderKeys(variant.Keys))
			}
		}
	default:
		return fmt.Errorf("%w: unknown message type %q", ErrMalformedMessage, m.Type)
	}
	return nil
}

func mustWellFormed(msg Message) {
	if err := msg.Validate(); err != nil {
		panic(err)
	}
}
