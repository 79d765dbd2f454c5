package mf2lint

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Check names one of the checks run by a Linter.
type Check string

const (
	CheckPluralCoverage         Check = "plurals"
	CheckPlaceholderConsistency Check = "placeholders"
)

// Finding is the outcome of one check on one catalog message.
type Finding struct {
	Check        Check   `json:"check"`
	Locale       string  `json:"locale"`
	SourceLocale string  `json:"source_locale,omitempty"`
	Key          string  `json:"key"`
	Report       *Report `json:"report"`
}

// OK reports whether the finding carries no warning or error.
func (f Finding) OK() bool {
	return f.Report.OK()
}

// Result holds the findings of a Lint run sorted by locale, key and check.
type Result struct {
	Findings []Finding `json:"findings"`
}

// Failed reports whether any finding is not OK.
func (r *Result) Failed() bool {
	if r == nil {
		return false
	}
	for _, finding := range r.Findings {
		if !finding.OK() {
			return true
		}
	}
	return false
}

// Counts returns the number of failing findings per check.
func (r *Result) Counts() map[Check]int {
	counts := map[Check]int{
		CheckPluralCoverage:         0,
		CheckPlaceholderConsistency: 0,
	}
	if r == nil {
		return counts
	}
	for _, finding := range r.Findings {
		if !finding.OK() {
			counts[finding.Check]++
		}
	}
	return counts
}

// Linter checks every message of a Store: plural coverage for each locale
// and, when a source locale is set, placeholder consistency of each target
// translation against it.
type Linter struct {
	validator    *Validator
	store        Store
	sourceLocale string
	locales      []string
	hooks        []LintHook
	concurrency  int
	logger       zerolog.Logger
}

// NewLinter builds a Linter from options.
func NewLinter(opts ...Option) (*Linter, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.BuildLinter(), nil
}

type lintJob struct {
	check        Check
	locale       string
	key          string
	categories   []PluralCategory
	message      Message
	sourceLocale string
	source       Message
}

// Lint runs all checks over store, or over the configured store when store
// is nil. Cancelling ctx stops outstanding checks and returns ctx's error.
func (l *Linter) Lint(ctx context.Context, store Store) (*Result, error) {
	if store == nil {
		store = l.store
	}
	if store == nil {
		return &Result{}, nil
	}

	jobs, err := l.plan(store)
	if err != nil {
		return nil, err
	}
	findings := make([]Finding, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(l.concurrency, 1))

	for i, job := range jobs {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			findings[i] = l.run(job)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Locale != b.Locale {
			return a.Locale < b.Locale
		}
		if a.Key != b.Key {
			return a.Key < b.Key
		}
		return a.Check < b.Check
	})

	result := &Result{Findings: findings}
	counts := result.Counts()
	l.logger.Info().
		Int("findings", len(findings)).
		Int("plural_failures", counts[CheckPluralCoverage]).
		Int("placeholder_failures", counts[CheckPlaceholderConsistency]).
		Msg("lint complete")
	return result, nil
}

func (l *Linter) plan(store Store) ([]lintJob, error) {
	locales := l.locales
	if len(locales) == 0 {
		locales = store.Locales()
	}

	var jobs []lintJob
	for _, locale := range locales {
		keys := store.Keys(locale)
		if len(keys) == 0 {
			l.logger.Warn().Str("locale", locale).Msg("no messages for locale")
			continue
		}

		categories, err := l.validator.Categories(locale)
		if err != nil {
			l.logger.Warn().Str("locale", locale).Err(err).Msg("plural categories unavailable")
		}

		for _, key := range keys {
			msg, _ := store.Message(locale, key)
			if err := msg.Validate(); err != nil {
				return nil, fmt.Errorf("mf2lint: %s/%s: %w", locale, key, err)
			}
			jobs = append(jobs, lintJob{
				check:      CheckPluralCoverage,
				locale:     locale,
				key:        key,
				categories: categories,
				message:    msg,
			})

			if l.sourceLocale == "" || locale == l.sourceLocale {
				continue
			}
			source, ok := store.Message(l.sourceLocale, key)
			if !ok {
				continue
			}
			if err := source.Validate(); err != nil {
				return nil, fmt.Errorf("mf2lint: %s/%s: %w", l.sourceLocale, key, err)
			}
			jobs = append(jobs, lintJob{
				check:        CheckPlaceholderConsistency,
				locale:       locale,
				key:          key,
				message:      msg,
				sourceLocale: l.sourceLocale,
				source:       source,
			})
		}
	}
	return jobs, nil
}

func (l *Linter) run(job lintJob) Finding {
	hookCtx := &CheckContext{
		Check:        job.check,
		Locale:       job.locale,
		SourceLocale: job.sourceLocale,
		Key:          job.key,
	}

	report := runHooked(l.hooks, hookCtx, func() *Report {
		if job.check == CheckPlaceholderConsistency {
			return l.validator.ComparePlaceholders(job.sourceLocale, job.locale, job.source, job.message)
		}
		return l.validator.CheckPlurals(job.categories, job.message)
	})

	return Finding{
		Check:        job.check,
		Locale:       job.locale,
		SourceLocale: job.sourceLocale,
		Key:          job.key,
		Report:       report,
	}
}
