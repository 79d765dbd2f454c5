package main

import (
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-mf2lint"
)

// outputJSON writes v as indented JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printResult prints the findings of a lint run in text or JSON format.
// Text output lists failing findings followed by an OK/FAIL summary.
func printResult(result *mf2lint.Result, format string, verbose bool) error {
	if format == "json" {
		return outputJSON(result)
	}

	for _, finding := range result.Findings {
		if finding.OK() && !verbose {
			continue
		}
		label := finding.Locale
		if finding.Check == mf2lint.CheckPlaceholderConsistency {
			label = finding.SourceLocale + "->" + finding.Locale
		}
		fmt.Fprintf(stdout, "%s %s [%s]: %s\n", label, finding.Key, finding.Check, finding.Report)
	}

	counts := result.Counts()
	passed := true
	printCount := func(label string, count int) {
		status := "OK"
		if count > 0 {
			status = "FAIL"
			passed = false
		}
		fmt.Fprintf(stdout, "  %-30s %3d  %s\n", label+":", count, status)
	}

	printCount("plural coverage defects", counts[mf2lint.CheckPluralCoverage])
	printCount("placeholder defects", counts[mf2lint.CheckPlaceholderConsistency])

	if passed {
		fmt.Fprintln(stdout, "All checks passed.")
	}
	return nil
}

// filterFindings keeps the findings of one check.
func filterFindings(result *mf2lint.Result, check mf2lint.Check) *mf2lint.Result {
	out := &mf2lint.Result{}
	for _, finding := range result.Findings {
		if finding.Check == check {
			out.Findings = append(out.Findings, finding)
		}
	}
	return out
}
