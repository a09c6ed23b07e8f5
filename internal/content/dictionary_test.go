package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avasocial/social-bot/pkg/utils"
)

const sampleJSON = `{
	"ebullient": ["overflowing with enthusiasm", "boiling"],
	"laconic": ["using few words"],
	"zephyr": ["a gentle breeze"]
}`

func TestParseDictionary(t *testing.T) {
	d, err := ParseDictionary([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("ParseDictionary failed: %v", err)
	}
	if d.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", d.Len())
	}
}

func TestParseDictionarySkipsEmptyEntries(t *testing.T) {
	d, err := ParseDictionary([]byte(`{"ok": ["fine"], "bad": [], "worse": [""], "": ["orphan"]}`))
	if err != nil {
		t.Fatalf("ParseDictionary failed: %v", err)
	}
	if d.Len() != 1 {
		t.Fatalf("expected 1 usable entry, got %d", d.Len())
	}
}

func TestParseDictionaryNoUsableEntries(t *testing.T) {
	if _, err := ParseDictionary([]byte(`{"bad": []}`)); err == nil {
		t.Fatalf("expected error for dictionary without usable entries")
	}
}

func TestParseDictionaryInvalidJSON(t *testing.T) {
	if _, err := ParseDictionary([]byte(`not json`)); err == nil {
		t.Fatalf("expected error for invalid json")
	}
}

func TestLoadDictionaryMissingFile(t *testing.T) {
	if _, err := LoadDictionary(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing dictionary file")
	}
}

func TestLoadDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionary.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0o600); err != nil {
		t.Fatalf("failed to write dictionary: %v", err)
	}

	d, err := LoadDictionary(path)
	if err != nil {
		t.Fatalf("LoadDictionary failed: %v", err)
	}
	if d.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", d.Len())
	}
}

func TestRandomFormat(t *testing.T) {
	d, err := ParseDictionary([]byte(`{"zephyr": ["a gentle breeze"]}`))
	if err != nil {
		t.Fatalf("ParseDictionary failed: %v", err)
	}

	got := d.Random(utils.NewRandSource(1))
	want := "Zephyr - a gentle breeze"
	if got != want {
		t.Fatalf("Random() = %q, want %q", got, want)
	}
}

func TestRandomCapitalizesOnlyFirstLetter(t *testing.T) {
	d, err := ParseDictionary([]byte(`{"API": ["application programming interface"]}`))
	if err != nil {
		t.Fatalf("ParseDictionary failed: %v", err)
	}

	got := d.Random(utils.NewRandSource(1))
	if !strings.HasPrefix(got, "Api - ") {
		t.Fatalf("expected only the first letter capitalized, got %q", got)
	}
}

func TestRandomDeterministicWithSeed(t *testing.T) {
	d, err := ParseDictionary([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("ParseDictionary failed: %v", err)
	}

	a := utils.NewRandSource(42)
	b := utils.NewRandSource(42)
	for i := 0; i < 20; i++ {
		if got, want := d.Random(a), d.Random(b); got != want {
			t.Fatalf("same seed diverged at draw %d: %q vs %q", i, got, want)
		}
	}
}
