package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-mf2lint"
)

func runCheck(args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("check", flag.ExitOnError)
	fs.Var(newListFlag(&s.Locales), "locale", "Locale to check; repeatable or comma separated (default: all)")
	fs.StringVar(&s.SourceLocale, "source", s.SourceLocale, "Source locale; enables placeholder checks against it")
	verbose := fs.Bool("v", false, "Also list messages that passed")
	s.bind(fs)
	fs.Parse(args)

	if fs.NArg() > 0 {
		s.Catalogs = fs.Args()
	}
	if err := s.validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := newLogger(s.LogLevel, os.Stderr)
	result, err := lintCatalogs(ctx, s, logger)
	if err != nil {
		return err
	}

	if err := printResult(result, s.Format, *verbose); err != nil {
		return err
	}
	if result.Failed() {
		return errDefects
	}
	return nil
}

// lintCatalogs loads the configured catalogs and lints them.
func lintCatalogs(ctx context.Context, s settings, logger zerolog.Logger) (*mf2lint.Result, error) {
	if len(s.Catalogs) == 0 {
		return nil, fmt.Errorf("no catalog files given")
	}

	opts := append(s.options(),
		mf2lint.WithLoader(mf2lint.NewFileLoader(s.Catalogs...)),
		mf2lint.WithLogger(logger),
		mf2lint.WithHooks(debugHook(logger)),
	)

	linter, err := mf2lint.NewLinter(opts...)
	if err != nil {
		return nil, err
	}
	return linter.Lint(ctx, nil)
}

// debugHook logs every failing check at debug level.
func debugHook(logger zerolog.Logger) mf2lint.LintHook {
	return mf2lint.HookFuncs{
		After: func(ctx *mf2lint.CheckContext) {
			if ctx.Report.OK() {
				return
			}
			logger.Debug().
				Str("check", string(ctx.Check)).
				Str("locale", ctx.Locale).
				Str("key", ctx.Key).
				Int("diagnostics", len(ctx.Report.Diagnostics)).
				Msg("check failed")
		},
	}
}
