package mf2lint

import (
	"sort"
)

// Store exposes read only access to catalog messages
type Store interface {
	// Message returns the message for locale/key and ok=false if missing
	Message(locale, key string) (Message, bool)
	// Keys returns the sorted message keys of locale
	Keys(locale string) []string
	// Locales returns the list of locales known to the store
	Locales() []string
}

// StaticStore is an in memory store, read only after construction
type StaticStore struct {
	catalogs Catalogs
	keys     map[string][]string
	locales  []string
}

var _ Store = &StaticStore{}

// NewStaticStore builds an immutable snapshot from the given catalogs
func NewStaticStore(data Catalogs) *StaticStore {
	if len(data) == 0 {
		return &StaticStore{catalogs: make(Catalogs), keys: map[string][]string{}}
	}

	catalogs := make(Catalogs, len(data))
	keys := make(map[string][]string, len(data))
	locales := make([]string, 0, len(data))

	for locale, messages := range data {
		locale = normalizeLocale(locale)
		if locale == "" || messages == nil {
			continue
		}

		bucket, exists := catalogs[locale]
		if !exists {
			bucket = make(map[string]Message, len(messages))
			catalogs[locale] = bucket
			locales = append(locales, locale)
		}
		for key, msg := range messages {
			bucket[key] = msg
		}
	}

	for locale, bucket := range catalogs {
		names := make([]string, 0, len(bucket))
		for key := range bucket {
			names = append(names, key)
		}
		sort.Strings(names)
		keys[locale] = names
	}

	// make locales deterministic
	sort.Strings(locales)

	return &StaticStore{
		catalogs: catalogs,
		keys:     keys,
		locales:  locales,
	}
}

// NewStaticStoreFromLoader hydrates a StaticStore using the provided loader
func NewStaticStoreFromLoader(loader Loader) (*StaticStore, error) {
	if loader == nil {
		return NewStaticStore(nil), nil
	}

	catalogs, err := loader.Load()
	if err != nil {
		return nil, err
	}

	return NewStaticStore(catalogs), nil
}

func (s *StaticStore) Message(locale, key string) (Message, bool) {
	if s == nil {
		return Message{}, false
	}

	bucket, ok := s.catalogs[normalizeLocale(locale)]
	if !ok {
		return Message{}, false
	}

	msg, ok := bucket[key]
	return msg, ok
}

// Keys returns the sorted keys of locale
func (s *StaticStore) Keys(locale string) []string {
	if s == nil {
		return nil
	}
	names := s.keys[normalizeLocale(locale)]
	if len(names) == 0 {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Locales returns a slice with all locale codes
func (s *StaticStore) Locales() []string {
	if s == nil || len(s.locales) == 0 {
		return nil
	}
	out := make([]string, len(s.locales))
	copy(out, s.locales)
	return out
}
