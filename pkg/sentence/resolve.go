package sentence

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/japaniel/sentencer/pkg/wordbank"
)

// FindWord returns the first word in declared order whose first letter matches
// letter, ignoring case. When nothing matches, the word at the letter's
// alphabet index (A=0) is used if the list is long enough.
func FindWord(letter rune, words []string) (string, bool) {
	want := unicode.ToLower(letter)
	for _, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		if unicode.ToLower(first) == want {
			return w, true
		}
	}
	if want >= 'a' && want <= 'z' {
		if idx := int(want - 'a'); idx < len(words) && words[idx] != "" {
			return words[idx], true
		}
	}
	return "", false
}

// Resolve fills every slot of structure with a concrete word.
// PRO and ART slots draw from their closed sets via p. Lookup slots consume
// seed letters in order: the first lookup slot uses the first letter, the
// second uses the second, and so on.
func Resolve(seed SeedWord, structure Structure, bank wordbank.Bank, p Picker) ([]string, error) {
	letters := seed.Letters()
	words := make([]string, len(structure))
	k := 0
	for i, tag := range structure {
		switch tag {
		case Pronoun:
			words[i] = PickPronoun(p)
		case Article:
			words[i] = PickArticle(p)
		default:
			w, err := lookup(letters, k, i, tag, bank)
			if err != nil {
				return nil, err
			}
			words[i] = w
			k++
		}
	}
	return words, nil
}

// Resolvable reports whether every lookup slot of structure can be filled for seed.
func Resolvable(seed SeedWord, structure Structure, bank wordbank.Bank) bool {
	letters := seed.Letters()
	k := 0
	for i, tag := range structure {
		if tag == Pronoun || tag == Article {
			continue
		}
		if _, err := lookup(letters, k, i, tag, bank); err != nil {
			return false
		}
		k++
	}
	return true
}

// lookup resolves the slot at structure position i with seed letter k.
func lookup(letters []rune, k, i int, tag Tag, bank wordbank.Bank) (string, error) {
	category := tag.Category()
	if category == "" {
		return "", fmt.Errorf("position %d: unknown tag %q", i, tag)
	}
	if k >= len(letters) {
		return "", &LookupError{Category: category, Position: i, Reason: "seed has no letter left for this slot"}
	}
	list, ok := bank.Words(category)
	if !ok {
		return "", &LookupError{Category: category, Letter: letters[k], Position: i, Reason: "category missing from word bank"}
	}
	w, ok := FindWord(letters[k], list)
	if !ok {
		return "", &LookupError{Category: category, Letter: letters[k], Position: i, Reason: "no word for this letter"}
	}
	return w, nil
}
