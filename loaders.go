package mf2lint

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Loader retrieves the catalogs used to seed a Store.
type Loader interface {
	Load() (Catalogs, error)
}

// LoaderFunc adapters allow bare functions to implement Loader interface
type LoaderFunc func() (Catalogs, error)

// Load implements Loader for LoaderFunc
func (fn LoaderFunc) Load() (Catalogs, error) {
	return fn()
}

// FileLoader reads catalog files shaped as locale -> key -> message, in
// JSON, YAML or TOML. Keys defined by later files replace earlier ones.
type FileLoader struct {
	paths []string
}

var _ Loader = &FileLoader{}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

// Paths returns the files read by Load.
func (l *FileLoader) Paths() []string {
	if l == nil {
		return nil
	}
	return append([]string(nil), l.paths...)
}

func (l *FileLoader) Load() (Catalogs, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, ErrNoLoaderPaths
	}

	catalogs := make(Catalogs)
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("mf2lint: read %s: %w", path, err)
		}

		src, err := decodeCatalogFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("mf2lint: decode %s: %w", path, err)
		}
		mergeCatalogs(catalogs, src)
	}

	return catalogs, nil
}

func decodeCatalogFile(path string, data []byte) (Catalogs, error) {
	var raw map[string]map[string]json.RawMessage
	if err := decodeDocument(path, data, &raw); err != nil {
		return nil, err
	}

	result := make(Catalogs, len(raw))
	for locale, entries := range raw {
		normalizedLocale := normalizeLocale(locale)
		if normalizedLocale == "" {
			return nil, fmt.Errorf("mf2lint: empty locale in %s", path)
		}
		messages := make(map[string]Message, len(entries))
		for key, rawMessage := range entries {
			if key == "" {
				return nil, fmt.Errorf("mf2lint: empty key in %s/%s", locale, path)
			}
			msg, err := DecodeMessage(".json", rawMessage)
			if err != nil {
				return nil, fmt.Errorf("%s/%s: %w", locale, key, err)
			}
			if err := msg.Validate(); err != nil {
				return nil, fmt.Errorf("%s/%s: %w", locale, key, err)
			}
			messages[key] = msg
		}
		result[normalizedLocale] = messages
	}
	return result, nil
}

func mergeCatalogs(dst, src Catalogs) {
	for locale, messages := range src {
		bucket, ok := dst[locale]
		if !ok {
			bucket = make(map[string]Message, len(messages))
			dst[locale] = bucket
		}
		for key, msg := range messages {
			bucket[key] = msg
		}
	}
}

type rawPluralRulesFile struct {
	Locales map[string]rawLocaleRules `json:"locales"`
}

// rawLocaleRules accepts either an explicit category list or a CLDR style
// cardinal rule map whose keys name the categories.
type rawLocaleRules struct {
	Name       string                     `json:"name"`
	Parent     string                     `json:"parent"`
	Categories []string                   `json:"categories"`
	Cardinal   map[string]json.RawMessage `json:"cardinal"`
}

// LoadRuleFiles reads plural category rule files. Later files replace
// locales defined by earlier ones.
func LoadRuleFiles(paths ...string) (map[string]*PluralRuleSet, error) {
	rules := make(map[string]*PluralRuleSet)
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("mf2lint: read plural rules %s: %w", path, err)
		}
		parsed, err := decodePluralRules(path, data)
		if err != nil {
			return nil, fmt.Errorf("mf2lint: decode plural rules %s: %w", path, err)
		}
		for locale, set := range parsed {
			rules[locale] = set
		}
	}
	return rules, nil
}

func decodePluralRules(path string, data []byte) (map[string]*PluralRuleSet, error) {
	wrapper := rawPluralRulesFile{}
	if err := decodeDocument(path, data, &wrapper); err != nil || len(wrapper.Locales) == 0 {
		var direct map[string]rawLocaleRules
		if errDirect := decodeDocument(path, data, &direct); errDirect != nil {
			if err != nil {
				return nil, err
			}
			return nil, errDirect
		}
		delete(direct, "locales")
		wrapper.Locales = direct
	}

	if len(wrapper.Locales) == 0 {
		return nil, fmt.Errorf("mf2lint: plural rule file %s has no locales", path)
	}

	result := make(map[string]*PluralRuleSet, len(wrapper.Locales))
	for locale, raw := range wrapper.Locales {
		set, err := buildRuleSet(normalizeLocale(locale), raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", locale, err)
		}
		result[set.Locale] = set
	}
	return result, nil
}

func buildRuleSet(locale string, raw rawLocaleRules) (*PluralRuleSet, error) {
	names := append([]string(nil), raw.Categories...)
	if len(names) == 0 {
		for category := range raw.Cardinal {
			names = append(names, category)
		}
		sort.Strings(names)
	}
	if len(names) == 0 && raw.Parent == "" {
		return nil, fmt.Errorf("missing categories")
	}

	categories := make([]PluralCategory, 0, len(names)+1)
	for _, name := range names {
		category, err := parsePluralCategory(name)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	categories = withOther(categories)
	sortCategories(categories)

	return &PluralRuleSet{
		Locale:      locale,
		DisplayName: raw.Name,
		Parent:      normalizeLocale(raw.Parent),
		Categories:  categories,
	}, nil
}
