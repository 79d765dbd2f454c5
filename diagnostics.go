package mf2lint

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind classifies a diagnostic.
type Kind string

const (
	KindTrivial            Kind = "trivial"
	KindNoCategories       Kind = "no-categories"
	KindNonPluralSelector  Kind = "non-plural-selector"
	KindTooManySelectors   Kind = "too-many-selectors"
	KindPartialWildcard    Kind = "partial-wildcard"
	KindVariantCount       Kind = "variant-count"
	KindKeyArity           Kind = "key-arity"
	KindOmittedVariant     Kind = "omitted-variant"
	KindInvalidKey         Kind = "invalid-key"
	KindNotComparable      Kind = "not-comparable"
	KindSourcePlaceholder  Kind = "source-placeholder"
	KindMissingPlaceholder Kind = "missing-placeholder"
)

// Severity ranks a diagnostic. Info diagnostics do not fail a check.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

const (
	msgPluralsOK      = "Plural categories used correctly for the given locale"
	msgPlaceholdersOK = "Placeholders used consistently between source and target messages"
	msgNoCategories   = "error getting plural forms"
	msgTrivial        = "Warning: message is not made up of a .match construct. Trivially correct."
	msgNonPlural      = "Message uses non-plural selectors. Can't check exhaustiveness."
	msgPartial        = "Partial wildcard variant is present; not all permutations of categories are explicitly enumerated."
	msgNotComparable  = "Warning: message is not made up of a .match construct. Placeholders not compared."
)

// Diagnostic is one finding. Keys names the affected variant, Tuple the
// affected category tuple and Name the affected key or placeholder.
type Diagnostic struct {
	Kind     Kind             `json:"kind"`
	Severity Severity         `json:"severity"`
	Keys     []Key            `json:"keys,omitempty"`
	Tuple    []PluralCategory `json:"tuple,omitempty"`
	Name     string           `json:"name,omitempty"`
	Message  string           `json:"message"`
}

// Report collects diagnostics in emission order.
type Report struct {
	Diagnostics []Diagnostic `json:"diagnostics"`
	success     string
}

func newReport(success string) *Report {
	return &Report{success: success}
}

func (r *Report) add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
}

// OK reports whether no warning or error was recorded.
func (r *Report) OK() bool {
	if r == nil {
		return true
	}
	for _, d := range r.Diagnostics {
		if d.Severity != SeverityInfo {
			return false
		}
	}
	return true
}

// String renders the report as the single displayable verdict: the success
// sentence when nothing was recorded, otherwise every diagnostic message in
// order, separated by one space.
func (r *Report) String() string {
	if r == nil {
		return ""
	}
	if len(r.Diagnostics) == 0 {
		return r.success
	}

	messages := make([]string, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		messages[i] = d.Message
	}
	return strings.Join(messages, " ")
}

// MarshalJSON adds the OK flag and rendered verdict to the diagnostics.
func (r *Report) MarshalJSON() ([]byte, error) {
	diagnostics := r.Diagnostics
	if diagnostics == nil {
		diagnostics = []Diagnostic{}
	}
	return json.Marshal(struct {
		OK          bool         `json:"ok"`
		Verdict     string       `json:"verdict"`
		Diagnostics []Diagnostic `json:"diagnostics"`
	}{OK: r.OK(), Verdict: r.String(), Diagnostics: diagnostics})
}

// Count returns the number of diagnostics of the given kind.
func (r *Report) Count(kind Kind) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, d := range r.Diagnostics {
		if d.Kind == kind {
			n++
		}
	}
	return n
}

func renderTuple(tuple []PluralCategory) string {
	names := make([]string, len(tuple))
	for i, category := range tuple {
		names[i] = string(category)
	}
	return renderNames(names)
}

func renderKeys(keys []Key) string {
	names := make([]string, len(keys))
	for i, key := range keys {
		if key.Catchall {
			names[i] = "*"
			continue
		}
		names[i] = key.Value
	}
	return renderNames(names)
}

func renderNames(names []string) string {
	payload, err := json.Marshal(names)
	if err != nil {
		return fmt.Sprint(names)
	}
	return string(payload)
}

func variantCountMessage(actual, expected int) string {
	return fmt.Sprintf("Error: incorrect number of variants: there are %d and should be %d including the wildcard variant.", actual, expected)
}

func keyArityMessage(keys []Key, selectors int) string {
	return fmt.Sprintf("Warning: variant %s has %d keys but there are %d selectors.", renderKeys(keys), len(keys), selectors)
}

func omittedVariantMessage(tuple []PluralCategory) string {
	return fmt.Sprintf("Omitted variant: %s.", renderTuple(tuple))
}

func invalidKeyMessage(name string) string {
	return fmt.Sprintf("Key %s is not a valid plural category for the given locale", name)
}

func tooManySelectorsMessage(n, limit int) string {
	return fmt.Sprintf("Message uses too many selectors (%d > %d). Can't check exhaustiveness.", n, limit)
}

func sourcePlaceholderMessage(keys []Key, name string) string {
	return fmt.Sprintf("Source variant %s uses placeholder $%s, which is absent from the first variant.", renderKeys(keys), name)
}

func missingPlaceholderMessage(keys []Key, name string) string {
	return fmt.Sprintf("Target variant %s omits placeholder $%s.", renderKeys(keys), name)
}
