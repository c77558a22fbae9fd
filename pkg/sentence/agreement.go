package sentence

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FixAgreement applies the positional agreement rules to words in place.
// structure must be the template words was resolved from; it locates the verb.
//
//  1. "he"/"she" first: the next verb takes a trailing "s".
//  2. "a" first: becomes "an" when the word after it, or the noun it
//     introduces, starts with a vowel.
//  3. "the" first: the next verb takes a trailing "s".
//
// Each rule sees the result of the ones before it. Length and order never change.
func FixAgreement(words []string, structure Structure) {
	if len(words) == 0 {
		return
	}

	if words[0] == "he" || words[0] == "she" {
		thirdPerson(words, structure)
	}

	if words[0] == "a" && opensWithVowel(words, structure) {
		words[0] = "an"
	}

	if words[0] == "the" {
		thirdPerson(words, structure)
	}
}

// thirdPerson appends "s" to the first verb after position 0.
func thirdPerson(words []string, structure Structure) {
	i := nextTagged(words, structure, Verb)
	if i < 0 || strings.HasSuffix(words[i], "s") {
		return
	}
	words[i] += "s"
}

func opensWithVowel(words []string, structure Structure) bool {
	if len(words) > 1 && startsWithVowel(words[1]) {
		return true
	}
	if i := nextTagged(words, structure, Noun); i >= 0 {
		return startsWithVowel(words[i])
	}
	return false
}

// nextTagged returns the first position after 0 tagged tag, or -1.
func nextTagged(words []string, structure Structure, tag Tag) int {
	for i := 1; i < len(words) && i < len(structure); i++ {
		if structure[i] == tag {
			return i
		}
	}
	return -1
}

func startsWithVowel(w string) bool {
	r, size := utf8.DecodeRuneInString(w)
	if size == 0 {
		return false
	}
	return strings.ContainsRune("aeiou", unicode.ToLower(r))
}
