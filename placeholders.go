package mf2lint

// ValidatePlaceholders compares the placeholders of a source message with
// those of its translation and returns a displayable verdict. The locales
// are accepted for locale sensitive rules; the current policy ignores them.
func ValidatePlaceholders(sourceLocale, targetLocale string, source, target Message) string {
	return ValidatePlaceholdersReport(sourceLocale, targetLocale, source, target).String()
}

// ValidatePlaceholdersReport is ValidatePlaceholders returning the
// structured report.
//
// The first source variant is the baseline: later source variants are
// reported for placeholders the baseline lacks, and every target variant
// must contain each baseline placeholder. Placeholders only present in the
// target are not reported.
func ValidatePlaceholdersReport(_, _ string, source, target Message) *Report {
	report := newReport(msgPlaceholdersOK)

	if len(source.Variants) == 0 || len(target.Variants) == 0 {
		report.add(Diagnostic{Kind: KindNotComparable, Severity: SeverityInfo, Message: msgNotComparable})
		return report
	}
	mustWellFormed(source)
	mustWellFormed(target)

	baseline := placeholderNames(source.Variants[0].Value)
	inBaseline := make(map[string]struct{}, len(baseline))
	for _, name := range baseline {
		inBaseline[name] = struct{}{}
	}

	for _, variant := range source.Variants[1:] {
		for _, name := range placeholderNames(variant.Value) {
			if _, ok := inBaseline[name]; ok {
				continue
			}
			report.add(Diagnostic{
				Kind:     KindSourcePlaceholder,
				Severity: SeverityWarning,
				Keys:     variant.Keys,
				Name:     name,
				Message:  sourcePlaceholderMessage(variant.Keys, name),
			})
		}
	}

	for _, variant := range target.Variants {
		present := make(map[string]struct{})
		for _, name := range placeholderNames(variant.Value) {
			present[name] = struct{}{}
		}
		for _, name := range baseline {
			if _, ok := present[name]; ok {
				continue
			}
			report.add(Diagnostic{
				Kind:     KindMissingPlaceholder,
				Severity: SeverityError,
				Keys:     variant.Keys,
				Name:     name,
				Message:  missingPlaceholderMessage(variant.Keys, name),
			})
		}
	}

	return report
}

// Placeholders returns the distinct variable names interpolated by a
// pattern, in order of first appearance.
func Placeholders(pattern Pattern) []string {
	return placeholderNames(pattern)
}

func placeholderNames(pattern Pattern) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, part := range pattern {
		if part.Expression == nil || part.Expression.Arg == nil || part.Expression.Arg.Variable == nil {
			continue
		}
		name := part.Expression.Arg.Variable.Name
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
