package mf2lint

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
)

// Config captures validator and linter setup
type Config struct {
	SourceLocale    string
	Locales         []string
	Loader          Loader
	Store           Store
	Resolver        CategoryResolver
	Hooks           []LintHook
	MaxSelectors    int
	PluralFunctions []string
	Concurrency     int
	Logger          zerolog.Logger

	ruleFiles []string
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		MaxSelectors: DefaultMaxSelectors,
		Logger:       zerolog.Nop(),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cfg.SourceLocale = normalizeLocale(cfg.SourceLocale)
	cfg.Locales = normalizeLocales(cfg.Locales)

	if cfg.Resolver == nil {
		cfg.Resolver = NewCLDRResolver()
	}

	if len(cfg.ruleFiles) > 0 {
		rules, err := LoadRuleFiles(cfg.ruleFiles...)
		if err != nil {
			return nil, err
		}
		cfg.Resolver = NewRuleSetResolver(rules, cfg.Resolver)
	}

	if cfg.Store == nil {
		if cfg.Loader != nil {
			store, err := NewStaticStoreFromLoader(cfg.Loader)
			if err != nil {
				return nil, err
			}
			cfg.Store = store
		} else {
			cfg.Store = NewStaticStore(nil)
		}
	}

	if len(cfg.PluralFunctions) == 0 {
		cfg.PluralFunctions = []string{PluralFunctionName}
	}

	if cfg.Concurrency <= 0 {
		cfg.Concurrency = runtime.GOMAXPROCS(0)
	}

	return cfg, nil
}

// WithSourceLocale sets the locale whose messages are the placeholder baseline
func WithSourceLocale(locale string) Option {
	return func(c *Config) error {
		c.SourceLocale = locale
		return nil
	}
}

// WithLocales restricts linting to the given locales
func WithLocales(locales ...string) Option {
	return func(c *Config) error {
		c.Locales = append(c.Locales, locales...)
		return nil
	}
}

func WithLoader(loader Loader) Option {
	return func(c *Config) error {
		c.Loader = loader
		return nil
	}
}

func WithStore(store Store) Option {
	return func(c *Config) error {
		c.Store = store
		return nil
	}
}

func WithCategoryResolver(resolver CategoryResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

// WithRuleFiles layers plural category rule files over the configured
// resolver. Locales missing from the files fall through to it.
func WithRuleFiles(paths ...string) Option {
	return func(c *Config) error {
		c.ruleFiles = append(c.ruleFiles, paths...)
		return nil
	}
}

// WithMaxSelectors bounds the selectors checked per message. Zero disables
// the bound.
func WithMaxSelectors(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("mf2lint: max selectors must not be negative, got %d", n)
		}
		c.MaxSelectors = n
		return nil
	}
}

// WithPluralFunctions replaces the annotation names treated as plural
// selectors.
func WithPluralFunctions(names ...string) Option {
	return func(c *Config) error {
		c.PluralFunctions = c.PluralFunctions[:0]
		for _, name := range names {
			name = strings.TrimPrefix(strings.TrimSpace(name), ":")
			if name == "" {
				continue
			}
			c.PluralFunctions = append(c.PluralFunctions, name)
		}
		return nil
	}
}

func WithConcurrency(n int) Option {
	return func(c *Config) error {
		c.Concurrency = n
		return nil
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

func WithHooks(hooks ...LintHook) Option {
	return func(c *Config) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			c.Hooks = append(c.Hooks, hook)
		}
		return nil
	}
}

// BuildValidator returns a Validator sharing the resolver and check options
func (cfg *Config) BuildValidator() *Validator {
	return &Validator{
		resolver: cfg.Resolver,
		opts: pluralOptions{
			functions:    append([]string(nil), cfg.PluralFunctions...),
			maxSelectors: cfg.MaxSelectors,
		},
		logger: cfg.Logger.With().Str("sys", "mf2lint").Logger(),
	}
}

// BuildLinter returns a Linter over the configured store
func (cfg *Config) BuildLinter() *Linter {
	return &Linter{
		validator:    cfg.BuildValidator(),
		store:        cfg.Store,
		sourceLocale: cfg.SourceLocale,
		locales:      append([]string(nil), cfg.Locales...),
		hooks:        append([]LintHook(nil), cfg.Hooks...),
		concurrency:  cfg.Concurrency,
		logger:       cfg.Logger.With().Str("sys", "mf2lint").Str("component", "linter").Logger(),
	}
}
