package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/goliatone/go-mf2lint"
)

type localeCategories struct {
	Locale     string                   `json:"locale"`
	Categories []mf2lint.PluralCategory `json:"categories,omitempty"`
	Error      string                   `json:"error,omitempty"`
}

func runCategories(args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("categories", flag.ExitOnError)
	s.bind(fs)
	fs.Parse(args)

	locales := fs.Args()
	if len(locales) == 0 {
		locales = s.Locales
	}
	if len(locales) == 0 {
		return fmt.Errorf("at least one locale is required")
	}
	if err := s.validate(); err != nil {
		return err
	}

	logger := newLogger(s.LogLevel, os.Stderr)
	validator, err := mf2lint.NewValidator(append(s.options(), mf2lint.WithLogger(logger))...)
	if err != nil {
		return err
	}

	failed := false
	out := make([]localeCategories, 0, len(locales))
	for _, locale := range locales {
		entry := localeCategories{Locale: locale}
		categories, err := validator.Categories(locale)
		if err != nil {
			entry.Error = err.Error()
			failed = true
		} else {
			entry.Categories = categories
		}
		out = append(out, entry)
	}

	if s.Format == "json" {
		if err := outputJSON(out); err != nil {
			return err
		}
	} else {
		for _, entry := range out {
			if entry.Error != "" {
				fmt.Fprintf(stdout, "%s: %s\n", entry.Locale, entry.Error)
				continue
			}
			names := make([]string, len(entry.Categories))
			for i, category := range entry.Categories {
				names[i] = string(category)
			}
			fmt.Fprintf(stdout, "%s: %s\n", entry.Locale, strings.Join(names, " "))
		}
	}

	if failed {
		return fmt.Errorf("some locales could not be resolved")
	}
	return nil
}
