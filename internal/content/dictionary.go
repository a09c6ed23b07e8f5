package content

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/avasocial/social-bot/pkg/utils"
)

// Source supplies post bodies for the post-creation phase
type Source interface {
	Random(rng *utils.RandSource) string
}

// Entry is a single dictionary word with its first definition
type Entry struct {
	Word       string
	Definition string
}

// Dictionary synthesizes "Word - definition" post bodies from a word to
// definitions lookup table loaded once at startup.
type Dictionary struct {
	entries []Entry
}

// LoadDictionary reads a dictionary JSON file mapping each word to a list of
// definitions. A missing or empty file is a fatal startup condition for the
// bot, so the error is returned rather than defaulted away.
func LoadDictionary(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bot requires a dictionary file with data: %w", err)
	}
	return ParseDictionary(data)
}

// ParseDictionary builds a Dictionary from raw JSON bytes
func ParseDictionary(data []byte) (*Dictionary, error) {
	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary json: %w", err)
	}

	entries := make([]Entry, 0, len(raw))
	for word, definitions := range raw {
		if word == "" || len(definitions) == 0 || definitions[0] == "" {
			continue
		}
		entries = append(entries, Entry{Word: word, Definition: definitions[0]})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("dictionary contains no usable entries")
	}

	// Map iteration order is random; sort so the same seed always draws the
	// same sequence of words.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Word < entries[j].Word
	})

	return &Dictionary{entries: entries}, nil
}

// Len returns the number of usable entries
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Random picks a uniformly random entry and renders it as post content:
// the capitalized word, a dash, then its definition.
func (d *Dictionary) Random(rng *utils.RandSource) string {
	entry := d.entries[rng.Intn(len(d.entries))]
	return capitalize(entry.Word) + " - " + entry.Definition
}

func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
