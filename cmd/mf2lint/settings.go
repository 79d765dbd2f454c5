package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-mf2lint"
)

// settingsFiles are probed in order when MF2LINT_CONFIG is unset.
var settingsFiles = []string{".mf2lint.yaml", ".mf2lint.yml", ".mf2lint.toml"}

type settings struct {
	SourceLocale    string   `yaml:"source_locale" toml:"source_locale"`
	Locales         []string `yaml:"locales" toml:"locales"`
	Catalogs        []string `yaml:"catalogs" toml:"catalogs"`
	RuleFiles       []string `yaml:"rule_files" toml:"rule_files"`
	MaxSelectors    int      `yaml:"max_selectors" toml:"max_selectors"`
	PluralFunctions []string `yaml:"plural_functions" toml:"plural_functions"`
	Concurrency     int      `yaml:"concurrency" toml:"concurrency"`
	LogLevel        string   `yaml:"log_level" toml:"log_level"`
	Format          string   `yaml:"format" toml:"format"`
}

func defaultSettings() settings {
	return settings{
		MaxSelectors: mf2lint.DefaultMaxSelectors,
		LogLevel:     "warn",
		Format:       "text",
	}
}

// loadSettings reads the settings file, then applies MF2LINT_* environment
// overrides. A missing default settings file is not an error.
func loadSettings() (settings, error) {
	s := defaultSettings()

	path, explicit := os.LookupEnv("MF2LINT_CONFIG")
	if !explicit {
		for _, candidate := range settingsFiles {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}

	if path != "" {
		if err := s.readFile(path); err != nil {
			return s, err
		}
	}

	if err := s.applyEnv(os.LookupEnv); err != nil {
		return s, err
	}
	return s, nil
}

func (s *settings) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("settings file %s not found", path)
		}
		return fmt.Errorf("read settings %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, s)
	case ".toml":
		_, err = toml.Decode(string(data), s)
	default:
		return fmt.Errorf("%w: settings file %s", mf2lint.ErrUnsupportedFormat, path)
	}
	if err != nil {
		return fmt.Errorf("decode settings %s: %w", path, err)
	}
	return nil
}

func (s *settings) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("MF2LINT_LOG_LEVEL"); ok && v != "" {
		s.LogLevel = v
	}
	if v, ok := lookup("MF2LINT_FORMAT"); ok && v != "" {
		s.Format = v
	}
	if v, ok := lookup("MF2LINT_SOURCE_LOCALE"); ok && v != "" {
		s.SourceLocale = v
	}
	if v, ok := lookup("MF2LINT_LOCALES"); ok && v != "" {
		s.Locales = splitList(v)
	}
	if v, ok := lookup("MF2LINT_MAX_SELECTORS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MF2LINT_MAX_SELECTORS: %w", err)
		}
		s.MaxSelectors = n
	}
	return nil
}

// bind registers the flags shared by the linting subcommands, using the
// current settings as defaults so flags take precedence.
func (s *settings) bind(flags *flag.FlagSet) {
	flags.Var(newListFlag(&s.RuleFiles), "rules", "Plural category rule file; repeatable")
	flags.Var(newListFlag(&s.PluralFunctions), "plural-func", "Function treated as a plural selector; repeatable")
	flags.IntVar(&s.MaxSelectors, "max-selectors", s.MaxSelectors, "Selectors checked per message (0 disables the bound)")
	flags.IntVar(&s.Concurrency, "concurrency", s.Concurrency, "Concurrent checks (default GOMAXPROCS)")
	flags.StringVar(&s.LogLevel, "log-level", s.LogLevel, "Log level: debug, info, warn, error")
	flags.StringVar(&s.Format, "format", s.Format, "Output format: text or json")
}

func (s settings) validate() error {
	switch s.Format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("unknown format %q", s.Format)
	}
}

func (s settings) options() []mf2lint.Option {
	opts := []mf2lint.Option{
		mf2lint.WithSourceLocale(s.SourceLocale),
		mf2lint.WithLocales(s.Locales...),
		mf2lint.WithMaxSelectors(s.MaxSelectors),
		mf2lint.WithConcurrency(s.Concurrency),
	}
	if len(s.RuleFiles) > 0 {
		opts = append(opts, mf2lint.WithRuleFiles(s.RuleFiles...))
	}
	if len(s.PluralFunctions) > 0 {
		opts = append(opts, mf2lint.WithPluralFunctions(s.PluralFunctions...))
	}
	return opts
}

// listFlag collects repeated or comma separated flag values. The first
// value given on the command line replaces the settings file list.
type listFlag struct {
	target *[]string
	set    bool
}

func newListFlag(target *[]string) *listFlag {
	return &listFlag{target: target}
}

func (f *listFlag) String() string {
	if f == nil || f.target == nil {
		return ""
	}
	return strings.Join(*f.target, ",")
}

func (f *listFlag) Set(value string) error {
	if !f.set {
		*f.target = nil
		f.set = true
	}
	*f.target = append(*f.target, splitList(value)...)
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
