package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadSettingsYAML(t *testing.T) {
	path := writeSettings(t, ".mf2lint.yaml", `
source_locale: en
locales: [cs, de]
catalogs: [a.json, b.yaml]
rule_files: [rules.yaml]
max_selectors: 3
plural_functions: [number, integer]
log_level: debug
`)
	t.Setenv("MF2LINT_CONFIG", path)
	t.Setenv("MF2LINT_FORMAT", "json")

	s, err := loadSettings()
	require.NoError(t, err)

	assert.Equal(t, "en", s.SourceLocale)
	assert.Equal(t, []string{"cs", "de"}, s.Locales)
	assert.Equal(t, []string{"a.json", "b.yaml"}, s.Catalogs)
	assert.Equal(t, []string{"rules.yaml"}, s.RuleFiles)
	assert.Equal(t, 3, s.MaxSelectors)
	assert.Equal(t, []string{"number", "integer"}, s.PluralFunctions)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "json", s.Format)
}

func TestLoadSettingsTOML(t *testing.T) {
	path := writeSettings(t, ".mf2lint.toml", `
source_locale = "en"
catalogs = ["messages.json"]
format = "json"
`)
	t.Setenv("MF2LINT_CONFIG", path)
	t.Setenv("MF2LINT_LOCALES", "cs, ja")

	s, err := loadSettings()
	require.NoError(t, err)

	assert.Equal(t, "en", s.SourceLocale)
	assert.Equal(t, []string{"messages.json"}, s.Catalogs)
	assert.Equal(t, []string{"cs", "ja"}, s.Locales)
	assert.Equal(t, "json", s.Format)
	assert.Equal(t, 4, s.MaxSelectors)
	assert.Equal(t, "warn", s.LogLevel)
}

func TestLoadSettingsErrors(t *testing.T) {
	t.Setenv("MF2LINT_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := loadSettings()
	assert.Error(t, err)

	t.Setenv("MF2LINT_CONFIG", writeSettings(t, "settings.ini", "x=1"))
	_, err = loadSettings()
	assert.Error(t, err)

	t.Setenv("MF2LINT_CONFIG", "")
	t.Setenv("MF2LINT_MAX_SELECTORS", "many")
	_, err = loadSettings()
	assert.Error(t, err)
}

func TestFlagsOverrideSettings(t *testing.T) {
	s := defaultSettings()
	s.RuleFiles = []string{"from-file.yaml"}
	s.Format = "json"

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	s.bind(fs)
	require.NoError(t, fs.Parse([]string{"-rules", "a.yaml,b.yaml", "-rules", "c.yaml", "-format", "text", "-max-selectors", "0"}))

	assert.Equal(t, []string{"a.yaml", "b.yaml", "c.yaml"}, s.RuleFiles)
	assert.Equal(t, "text", s.Format)
	assert.Equal(t, 0, s.MaxSelectors)
	assert.NoError(t, s.validate())
	assert.Len(t, s.options(), 5)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("info"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.Disabled, parseLevel("off"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel(""))
}
