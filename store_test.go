package mf2lint

import (
	"errors"
	"testing"
)

func TestStaticStoreSnapshot(t *testing.T) {
	source := Catalogs{
		"en":    {"b": {Type: MessageTypePattern, Pattern: Pattern{Text("b")}}, "a": {Type: MessageTypePattern, Pattern: Pattern{Text("a")}}},
		"pt_BR": {"a": {Type: MessageTypePattern, Pattern: Pattern{Text("um")}}},
		"de":    nil,
	}

	store := NewStaticStore(source)

	// mutations after construction are not observed
	source["en"]["c"] = Message{Type: MessageTypePattern, Pattern: Pattern{}}
	delete(source, "pt_BR")

	locales := store.Locales()
	if len(locales) != 2 || locales[0] != "en" || locales[1] != "pt-BR" {
		t.Fatalf("Locales() = %v", locales)
	}

	keys := store.Keys("en")
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("Keys(en) = %v", keys)
	}

	msg, ok := store.Message("pt_BR", "a")
	if !ok || msg.Pattern[0].Text != "um" {
		t.Fatalf("Message(pt_BR, a) = %v, %v", msg, ok)
	}

	if _, ok := store.Message("en", "c"); ok {
		t.Fatal("expected c to be missing from the snapshot")
	}

	keys[0] = "mutated"
	if store.Keys("en")[0] != "a" {
		t.Fatal("Keys must return a copy")
	}
}

func TestStaticStoreEmpty(t *testing.T) {
	store := NewStaticStore(nil)

	if got := store.Locales(); got != nil {
		t.Fatalf("Locales() = %v, want nil", got)
	}
	if got := store.Keys("en"); got != nil {
		t.Fatalf("Keys() = %v, want nil", got)
	}

	var nilStore *StaticStore
	if _, ok := nilStore.Message("en", "k"); ok {
		t.Fatal("nil store should not return messages")
	}
}

func TestNewStaticStoreFromLoaderError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewStaticStoreFromLoader(LoaderFunc(func() (Catalogs, error) { return nil, boom }))
	if !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}

	store, err := NewStaticStoreFromLoader(nil)
	if err != nil || store == nil {
		t.Fatalf("nil loader = %v, %v", store, err)
	}
}
