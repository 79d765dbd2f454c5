package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/goliatone/go-mf2lint"
)

func runCompare(args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	if s.SourceLocale == "" {
		s.SourceLocale = "en"
	}

	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	fs.StringVar(&s.SourceLocale, "source", s.SourceLocale, "Source locale")
	fs.Var(newListFlag(&s.Locales), "target", "Target locale; repeatable or comma separated (default: all others)")
	verbose := fs.Bool("v", false, "Also list messages that passed")
	s.bind(fs)
	fs.Parse(args)

	if fs.NArg() > 0 {
		s.Catalogs = fs.Args()
	}
	if err := s.validate(); err != nil {
		return err
	}
	if s.SourceLocale == "" {
		return fmt.Errorf("--source is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := newLogger(s.LogLevel, os.Stderr)
	result, err := lintCatalogs(ctx, s, logger)
	if err != nil {
		return err
	}

	result = filterFindings(result, mf2lint.CheckPlaceholderConsistency)
	if len(result.Findings) == 0 {
		logger.Warn().Str("source", s.SourceLocale).Msg("no keys shared between source and target locales")
	}

	if err := printResult(result, s.Format, *verbose); err != nil {
		return err
	}
	if result.Failed() {
		return errDefects
	}
	return nil
}
