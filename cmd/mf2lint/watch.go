package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

var watchedExtensions = map[string]struct{}{
	".json": {},
	".toml": {},
	".yaml": {},
	".yml":  {},
}

// runWatch runs check once and again whenever a catalog or rule file is
// written, until interrupted.
func runWatch(args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	fs.Var(newListFlag(&s.Locales), "locale", "Locale to check; repeatable or comma separated (default: all)")
	fs.StringVar(&s.SourceLocale, "source", s.SourceLocale, "Source locale; enables placeholder checks against it")
	verbose := fs.Bool("v", false, "Also list messages that passed")
	s.bind(fs)
	fs.Parse(args)

	if fs.NArg() > 0 {
		s.Catalogs = fs.Args()
	}
	if len(s.Catalogs) == 0 {
		return fmt.Errorf("no catalog files given")
	}
	if err := s.validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := newLogger(s.LogLevel, os.Stderr).With().Str("sys", "watch").Logger()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	files := watchedFiles(s)
	for _, dir := range watchedDirs(files) {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	check := func() {
		result, err := lintCatalogs(ctx, s, logger)
		if err != nil {
			logger.Error().Err(err).Msg("lint failed")
			return
		}
		if err := printResult(result, s.Format, *verbose); err != nil {
			logger.Error().Err(err).Msg("print result")
		}
	}

	check()
	logger.Info().Int("files", len(files)).Msg("watching for changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event, files) {
				continue
			}
			logger.Info().Str("file", event.Name).Msg("reloading")
			check()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watcher error")
		}
	}
}

// watchedFiles returns the cleaned absolute paths of catalogs and rule files.
func watchedFiles(s settings) map[string]struct{} {
	files := make(map[string]struct{}, len(s.Catalogs)+len(s.RuleFiles))
	for _, path := range append(append([]string(nil), s.Catalogs...), s.RuleFiles...) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		files[filepath.Clean(path)] = struct{}{}
	}
	return files
}

// watchedDirs lists the parent directories of files. Watching directories
// keeps editors that replace files on save from dropping the watch.
func watchedDirs(files map[string]struct{}) []string {
	seen := make(map[string]struct{})
	var dirs []string
	for path := range files {
		dir := filepath.Dir(path)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	return dirs
}

func relevantEvent(event fsnotify.Event, files map[string]struct{}) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	if _, ok := watchedExtensions[strings.ToLower(filepath.Ext(event.Name))]; !ok {
		return false
	}
	name := event.Name
	if abs, err := filepath.Abs(name); err == nil {
		name = abs
	}
	_, ok := files[filepath.Clean(name)]
	return ok
}
