package mf2lint

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pluralsOK = "Plural categories used correctly for the given locale"

func TestCheckPluralsScenarios(t *testing.T) {
	countDecls := []Declaration{numberDecl("count")}

	tests := []struct {
		name       string
		categories []PluralCategory
		msg        Message
		want       string
	}{
		{
			name:       "czech exhaustive",
			categories: czech,
			msg:        selectMessage(countDecls, []string{"count"}, keyed("one"), keyed("few"), keyed("many"), keyed("other"), keyed("*")),
			want:       pluralsOK,
		},
		{
			name:       "czech missing many",
			categories: czech,
			msg:        selectMessage(countDecls, []string{"count"}, keyed("one"), keyed("few"), keyed("other"), keyed("*")),
			want:       `Error: incorrect number of variants: there are 4 and should be 5 including the wildcard variant. Omitted variant: ["many"].`,
		},
		{
			name:       "czech two selectors exhaustive",
			categories: czech,
			msg:        exhaustive(2, czech),
			want:       pluralsOK,
		},
		{
			name:       "non plural selector",
			categories: czech,
			msg:        selectMessage([]Declaration{annotatedDecl("count", "func")}, []string{"count"}, keyed("one"), keyed("*")),
			want:       "Message uses non-plural selectors. Can't check exhaustiveness.",
		},
		{
			name:       "pattern message",
			categories: english,
			msg:        Message{Type: MessageTypePattern, Pattern: Pattern{Text("Hello")}},
			want:       "Warning: message is not made up of a .match construct. Trivially correct.",
		},
		{
			name:       "english good",
			categories: english,
			msg:        selectMessage(countDecls, []string{"count"}, keyed("one"), keyed("other"), keyed("*")),
			want:       pluralsOK,
		},
		{
			name:       "czech bad",
			categories: czech,
			msg:        selectMessage(countDecls, []string{"count"}, keyed("one"), keyed("few"), keyed("*")),
			want:       `Error: incorrect number of variants: there are 3 and should be 4 including the wildcard variant. Omitted variant: ["many"].`,
		},
		{
			name:       "not a category",
			categories: english,
			msg:        selectMessage(countDecls, []string{"count"}, keyed("one"), keyed("other"), keyed("boatloads"), keyed("*")),
			want:       "Error: incorrect number of variants: there are 4 and should be 3 including the wildcard variant. Key boatloads is not a valid plural category for the given locale",
		},
		{
			name:       "aliased selector",
			categories: english,
			msg: selectMessage(
				[]Declaration{numberDecl("numDays1"), aliasDecl("numDays", "numDays1")},
				[]string{"numDays"},
				keyed("one"), keyed("other"), keyed("*"),
			),
			want: pluralsOK,
		},
		{
			name:       "default without explicit other",
			categories: english,
			msg:        selectMessage(countDecls, []string{"count"}, keyed("one"), keyed("*")),
			want:       pluralsOK,
		},
		{
			name:       "explicit other without default",
			categories: english,
			msg:        selectMessage(countDecls, []string{"count"}, keyed("one"), keyed("other")),
			want:       "Error: incorrect number of variants: there are 2 and should be 3 including the wildcard variant.",
		},
		{
			name:       "no categories",
			categories: nil,
			msg:        selectMessage(countDecls, []string{"count"}, keyed("one"), keyed("*")),
			want:       "error getting plural forms",
		},
		{
			name:       "select without selectors",
			categories: english,
			msg:        selectMessage(nil, nil, keyed()),
			want:       "Warning: message is not made up of a .match construct. Trivially correct.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckPlurals(tt.categories, tt.msg))
		})
	}
}

func TestCheckPluralsPartialWildcard(t *testing.T) {
	msg := exhaustive(2, czech)

	var variants []Variant
	for _, variant := range msg.Variants {
		if variant.Keys[0].Value == "few" {
			continue
		}
		variants = append(variants, variant)
	}
	variants = append(variants, keyed("few", "*"), keyed("boatloads", "one"))
	msg.Variants = variants

	report := CheckPluralsReport(czech, msg)
	assert.Equal(t, "Partial wildcard variant is present; not all permutations of categories are explicitly enumerated.", report.String())
	require.Len(t, report.Diagnostics, 1)
	assert.Equal(t, KindPartialWildcard, report.Diagnostics[0].Kind)
}

func TestCheckPluralsMultipleOmissions(t *testing.T) {
	msg := exhaustive(2, czech)

	var variants []Variant
	for _, variant := range msg.Variants {
		id := keyID(variant.Keys)
		if id == "one\x00many" || id == "many\x00many" {
			continue
		}
		variants = append(variants, variant)
	}
	msg.Variants = variants

	want := `Error: incorrect number of variants: there are 15 and should be 17 including the wildcard variant.` +
		` Omitted variant: ["one","many"].` +
		` Omitted variant: ["many","many"].`
	assert.Equal(t, want, CheckPlurals(czech, msg))
}

func TestCheckPluralsKeyArity(t *testing.T) {
	msg := selectMessage(
		[]Declaration{numberDecl("a"), numberDecl("b")},
		[]string{"a", "b"},
		keyed("one", "one"), keyed("one", "other"), keyed("other", "one"), keyed("other", "other"),
		keyed("one"),
		keyed("*", "*"),
	)

	report := CheckPluralsReport(english, msg)
	want := `Error: incorrect number of variants: there are 6 and should be 5 including the wildcard variant.` +
		` Warning: variant ["one"] has 1 keys but there are 2 selectors.`
	assert.Equal(t, want, report.String())
	assert.Equal(t, 1, report.Count(KindKeyArity))
	assert.Equal(t, 0, report.Count(KindOmittedVariant))
}

func TestCheckPluralsArityMismatchExcludedFromCoverage(t *testing.T) {
	msg := selectMessage(
		[]Declaration{numberDecl("a"), numberDecl("b")},
		[]string{"a", "b"},
		keyed("one", "other"), keyed("other", "one"), keyed("other", "other"),
		keyed("one", "one", "one"),
		keyed("*", "*"),
	)

	report := CheckPluralsReport(english, msg)
	assert.Equal(t, 0, report.Count(KindVariantCount))
	assert.Equal(t, 1, report.Count(KindKeyArity))
	require.Equal(t, 1, report.Count(KindOmittedVariant))
	assert.Equal(t, []PluralCategory{PluralOne, PluralOne}, report.Diagnostics[1].Tuple)
}

func TestCheckPluralsTooManySelectors(t *testing.T) {
	msg := exhaustive(5, english)

	assert.Equal(t, "Message uses too many selectors (5 > 4). Can't check exhaustiveness.", CheckPlurals(english, msg))
	assert.Equal(t, pluralsOK, checkPlurals(pluralOptions{}, english, msg).String())
}

func TestCheckPluralsExhaustiveProperty(t *testing.T) {
	sets := [][]PluralCategory{
		english,
		{PluralOne, PluralFew, PluralOther},
		czech,
		{PluralZero, PluralOne, PluralTwo, PluralFew, PluralOther},
	}

	for _, categories := range sets {
		for n := 1; n <= 3; n++ {
			t.Run(fmt.Sprintf("%d-%d", len(categories), n), func(t *testing.T) {
				assert.Equal(t, pluralsOK, CheckPlurals(categories, exhaustive(n, categories)))
			})
		}
	}
}

func TestCheckPluralsOmissionProperty(t *testing.T) {
	for n := 1; n <= 2; n++ {
		full := exhaustive(n, czech)
		for i, variant := range full.Variants {
			if allCatchall(variant.Keys) || hasAllOtherVariant([]Variant{variant}) {
				continue
			}

			msg := full
			msg.Variants = append(append([]Variant(nil), full.Variants[:i]...), full.Variants[i+1:]...)

			report := CheckPluralsReport(czech, msg)
			require.Equal(t, 1, report.Count(KindOmittedVariant), "removed %s", renderKeys(variant.Keys))
			require.Equal(t, 1, report.Count(KindVariantCount))
			for _, d := range report.Diagnostics {
				if d.Kind != KindOmittedVariant {
					continue
				}
				assert.Equal(t, keyID(variant.Keys), tupleID(d.Tuple))
			}
		}
	}
}

func TestCheckPluralsInvalidKeys(t *testing.T) {
	msg := exhaustive(1, english)
	msg.Variants = append(msg.Variants, keyed("zero"), keyed("boatloads"), keyed("zero"))

	report := CheckPluralsReport(english, msg)
	require.Equal(t, 2, report.Count(KindInvalidKey))

	var names []string
	for _, d := range report.Diagnostics {
		if d.Kind == KindInvalidKey {
			names = append(names, d.Name)
		}
	}
	assert.Equal(t, []string{"zero", "boatloads"}, names)
	assert.False(t, report.OK())
}

func TestCheckPluralsInformationalReportsAreOK(t *testing.T) {
	report := CheckPluralsReport(english, Message{Type: MessageTypePattern, Pattern: Pattern{}})
	assert.True(t, report.OK())
	assert.Equal(t, 1, report.Count(KindTrivial))

	report = CheckPluralsReport(english, selectMessage([]Declaration{annotatedDecl("s", "string")}, []string{"s"}, keyed("*")))
	assert.False(t, report.OK())
}

func TestCheckPluralsMalformedMessagePanics(t *testing.T) {
	msg := selectMessage([]Declaration{numberDecl("n")}, []string{"n"}, Variant{Keys: []Key{CatchallKey()}})

	assert.Panics(t, func() {
		CheckPlurals(english, msg)
	})
	assert.ErrorIs(t, msg.Validate(), ErrMalformedMessage)
}
