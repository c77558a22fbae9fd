// Package harvest finds seed words in web articles.
package harvest

import (
	"fmt"
	"io"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-shiori/go-readability"
	"github.com/japaniel/sentencer/pkg/sentence"
	"github.com/japaniel/sentencer/pkg/wordbank"
)

// Candidates extracts the readable text of an HTML article and returns its
// seven-letter words, uppercased, in order of first appearance.
// pageURL is used by readability to resolve relative links and may be nil.
func Candidates(r io.Reader, pageURL *url.URL) ([]string, error) {
	if pageURL == nil {
		pageURL = &url.URL{Scheme: "file", Path: "/"}
	}
	article, err := readability.FromReader(r, pageURL)
	if err != nil {
		return nil, fmt.Errorf("extract article: %w", err)
	}
	return SevenLetterWords(article.TextContent), nil
}

// SevenLetterWords splits text on anything that is not a letter and keeps the
// unique words of exactly SeedLength letters.
func SevenLetterWords(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool { return !unicode.IsLetter(r) })
	seen := make(map[string]bool)
	var out []string
	for _, f := range fields {
		if utf8.RuneCountInString(f) != sentence.SeedLength {
			continue
		}
		w := strings.ToUpper(f)
		if seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

// Playable keeps the candidates that can build at least one catalog structure with bank.
func Playable(candidates []string, bank wordbank.Bank) []string {
	var out []string
	for _, c := range candidates {
		seed, err := sentence.GetSeedWord(c)
		if err != nil {
			continue
		}
		for _, s := range sentence.Catalog {
			if sentence.Resolvable(seed, s, bank) {
				out = append(out, string(seed))
				break
			}
		}
	}
	return out
}
