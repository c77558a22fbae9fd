package sentence

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// SeedLength is the number of characters a seed word must have.
const SeedLength = 7

// SeedWord is a validated, uppercased seed. Letter i drives the lookup for structure slot i.
type SeedWord string

// GetSeedWord validates raw and returns it uppercased.
// Only the length is checked; non-letters are let through and fail later at lookup.
func GetSeedWord(raw string) (SeedWord, error) {
	if utf8.RuneCountInString(raw) != SeedLength {
		return "", &ValidationError{Input: raw, Reason: "must be seven letters"}
	}
	return SeedWord(strings.ToUpper(raw)), nil
}

// ReadSeedWord reads a single line from r and validates it with GetSeedWord.
func ReadSeedWord(r io.Reader) (SeedWord, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read seed word: %w", err)
	}
	return GetSeedWord(strings.TrimRight(line, "\r\n"))
}

// Letters returns the seed as runes.
func (s SeedWord) Letters() []rune { return []rune(string(s)) }
