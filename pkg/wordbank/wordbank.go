package wordbank

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Category names as they appear in the word bank document.
const (
	Adjectives   = "adjectives"
	Nouns        = "nouns"
	Verbs        = "verbs"
	Adverbs      = "adverbs"
	Prepositions = "prepositions"
)

// Categories lists every category a complete bank carries.
var Categories = []string{Adjectives, Nouns, Verbs, Adverbs, Prepositions}

// Bank maps a category to its words in declared order.
// It is not modified after loading and may be read from several goroutines.
type Bank map[string][]string

// Words returns the list for category and whether the category is present.
func (b Bank) Words(category string) ([]string, bool) {
	w, ok := b[category]
	return w, ok
}

// Validate reports every category in Categories that is missing or empty.
// Load does not call it; missing categories normally surface at lookup time.
func (b Bank) Validate() error {
	var missing []string
	for _, c := range Categories {
		if len(b[c]) == 0 {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &FormatError{Err: fmt.Errorf("missing or empty categories: %s", strings.Join(missing, ", "))}
	}
	return nil
}

// FileError reports a word bank source that could not be read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string { return fmt.Sprintf("word bank %s: %v", e.Path, e.Err) }
func (e *FileError) Unwrap() error { return e.Err }

// FormatError reports a word bank document with the wrong shape.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("word bank format: %v", e.Err)
	}
	return fmt.Sprintf("word bank %s format: %v", e.Path, e.Err)
}
func (e *FormatError) Unwrap() error { return e.Err }

// Load reads a JSON word bank: an object mapping each category to an array of strings.
// Word order and casing are kept exactly as written.
func Load(path string) (Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	bank, err := parse(data)
	if err != nil {
		return nil, &FormatError{Path: path, Err: err}
	}
	return bank, nil
}

// Decode reads a JSON word bank from r.
func Decode(r io.Reader) (Bank, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read word bank: %w", err)
	}
	bank, err := parse(data)
	if err != nil {
		return nil, &FormatError{Err: err}
	}
	return bank, nil
}

func parse(data []byte) (Bank, error) {
	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	// "null" decodes without error
	if raw == nil {
		return nil, errors.New("document is not a JSON object")
	}
	return Bank(raw), nil
}
