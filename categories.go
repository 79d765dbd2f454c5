package mf2lint

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// CategoryResolver returns the cardinal plural categories of a locale.
type CategoryResolver interface {
	Categories(locale string) ([]PluralCategory, error)
}

// ResolverFunc adapts a bare function to CategoryResolver.
type ResolverFunc func(locale string) ([]PluralCategory, error)

// Categories implements CategoryResolver for ResolverFunc.
func (fn ResolverFunc) Categories(locale string) ([]PluralCategory, error) {
	return fn(locale)
}

// CLDRResolver derives categories from the CLDR cardinal rules bundled
// with golang.org/x/text, corrected by cldrUpdates for the locales whose
// rules changed after those tables were generated. Results are cached per
// locale.
type CLDRResolver struct {
	cache sync.Map
}

//go:embed cldr_plurals.yaml
var cldrPluralsYAML []byte

var cldrUpdates = sync.OnceValue(func() *RuleSetResolver {
	rules, err := decodePluralRules("cldr_plurals.yaml", cldrPluralsYAML)
	if err != nil {
		panic(fmt.Sprintf("mf2lint: bundled plural rules: %v", err))
	}
	return NewRuleSetResolver(rules, nil)
})

var _ CategoryResolver = &CLDRResolver{}

// NewCLDRResolver builds a resolver backed by golang.org/x/text.
func NewCLDRResolver() *CLDRResolver {
	return &CLDRResolver{}
}

func (r *CLDRResolver) Categories(locale string) ([]PluralCategory, error) {
	normalized := normalizeLocale(locale)
	if cached, ok := r.cache.Load(normalized); ok {
		return append([]PluralCategory(nil), cached.([]PluralCategory)...), nil
	}

	tag, err := language.Parse(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownLocale, locale, err)
	}
	if tag == language.Und {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	if _, confidence := tag.Base(); confidence == language.No {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}

	categories, err := cldrUpdates().Categories(normalized)
	if err != nil {
		categories = probeCardinalForms(tag)
	}
	r.cache.Store(normalized, categories)
	return append([]PluralCategory(nil), categories...), nil
}

var formCategories = map[plural.Form]PluralCategory{
	plural.Zero:  PluralZero,
	plural.One:   PluralOne,
	plural.Two:   PluralTwo,
	plural.Few:   PluralFew,
	plural.Many:  PluralMany,
	plural.Other: PluralOther,
}

// probeCardinalForms collects the forms the cardinal rules of tag can
// produce over a spread of integer and decimal operands. The operands
// follow UTS #35: i integer digits, v and w visible fraction digit counts
// with and without trailing zeros, f and t the fraction digits themselves.
func probeCardinalForms(tag language.Tag) []PluralCategory {
	forms := map[plural.Form]struct{}{plural.Other: {}}
	match := func(i, v, w, f, t int) {
		forms[plural.Cardinal.MatchPlural(tag, i, v, w, f, t)] = struct{}{}
	}

	for i := 0; i <= 1000; i++ {
		match(i, 0, 0, 0, 0)
	}
	for _, i := range []int{10000, 100000, 1000000, 2000000, 10000000} {
		match(i, 0, 0, 0, 0)
	}

	for i := 0; i <= 110; i++ {
		for f := 0; f <= 9; f++ {
			w := 1
			if f == 0 {
				w = 0
			}
			match(i, 1, w, f, f)
		}
		for _, f := range []int{1, 2, 3, 5, 10, 11, 12, 21, 50} {
			w, t := 2, f
			if f%10 == 0 {
				w, t = 1, f/10
			}
			match(i, 2, w, f, t)
		}
	}

	categories := make([]PluralCategory, 0, len(forms))
	for form := range forms {
		categories = append(categories, formCategories[form])
	}
	sortCategories(categories)
	return categories
}

func sortCategories(categories []PluralCategory) {
	sort.SliceStable(categories, func(i, j int) bool {
		return pluralCategoryOrder(categories[i]) < pluralCategoryOrder(categories[j])
	})
}

// PluralRuleSet lists the categories declared for one locale in a rule file.
type PluralRuleSet struct {
	Locale      string
	DisplayName string
	Parent      string
	Categories  []PluralCategory
}

func (set *PluralRuleSet) Clone() *PluralRuleSet {
	if set == nil {
		return nil
	}
	out := *set
	out.Categories = append([]PluralCategory(nil), set.Categories...)
	return &out
}

// RuleSetResolver serves categories from rule sets loaded from files,
// walking the locale parent chain on a miss and deferring to Next when
// nothing matches.
type RuleSetResolver struct {
	rules map[string]*PluralRuleSet
	Next  CategoryResolver
}

var _ CategoryResolver = &RuleSetResolver{}

// NewRuleSetResolver builds a resolver over a snapshot of rules.
func NewRuleSetResolver(rules map[string]*PluralRuleSet, next CategoryResolver) *RuleSetResolver {
	snapshot := make(map[string]*PluralRuleSet, len(rules))
	for locale, set := range rules {
		if set == nil {
			continue
		}
		snapshot[strings.ToLower(normalizeLocale(locale))] = set.Clone()
	}
	return &RuleSetResolver{rules: snapshot, Next: next}
}

func (r *RuleSetResolver) Categories(locale string) ([]PluralCategory, error) {
	normalized := normalizeLocale(locale)
	candidates := append([]string{normalized}, localeParentChain(normalized)...)

	seen := make(map[string]struct{}, len(candidates))
	for len(candidates) > 0 {
		candidate := strings.ToLower(candidates[0])
		candidates = candidates[1:]
		if _, ok := seen[candidate]; ok || candidate == "" {
			continue
		}
		seen[candidate] = struct{}{}

		set, ok := r.rules[candidate]
		if !ok {
			continue
		}
		if categories := withOther(set.Categories); len(categories) > 0 {
			return categories, nil
		}
		if set.Parent != "" {
			candidates = append([]string{set.Parent}, candidates...)
		}
	}

	if r.Next != nil {
		return r.Next.Categories(locale)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
}

// ChainResolver returns the answer of the first resolver that succeeds.
type ChainResolver []CategoryResolver

func (c ChainResolver) Categories(locale string) ([]PluralCategory, error) {
	var lastErr error
	for _, resolver := range c {
		if resolver == nil {
			continue
		}
		categories, err := resolver.Categories(locale)
		if err == nil && len(categories) > 0 {
			return categories, nil
		}
		if err == nil {
			err = fmt.Errorf("%w: %q", ErrNoCategories, locale)
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	return nil, lastErr
}

func parsePluralCategory(raw string) (PluralCategory, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "zero":
		return PluralZero, nil
	case "one":
		return PluralOne, nil
	case "two":
		return PluralTwo, nil
	case "few":
		return PluralFew, nil
	case "many":
		return PluralMany, nil
	case "other":
		return PluralOther, nil
	default:
		return "", fmt.Errorf("unknown plural category %q", raw)
	}
}
