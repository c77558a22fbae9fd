package sentence

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/japaniel/sentencer/pkg/wordbank"
)

// Version returns the current version of the package.
func Version() string { return "0.2.0" }

// Tag is a part-of-speech slot in a sentence template.
type Tag string

const (
	Pronoun   Tag = "PRO"
	Article   Tag = "ART"
	Adjective Tag = "ADJ"
	Noun      Tag = "NOUN"
	Verb      Tag = "VERB"
	Adverb    Tag = "ADV"
)

// Category returns the word bank category a tag is looked up in.
// Closed-set tags (PRO, ART) and unknown tags return "".
func (t Tag) Category() string {
	switch t {
	case Adjective:
		return wordbank.Adjectives
	case Noun:
		return wordbank.Nouns
	case Verb:
		return wordbank.Verbs
	case Adverb:
		return wordbank.Adverbs
	}
	return ""
}

// Structure is an ordered sentence template.
type Structure []Tag

func (s Structure) String() string {
	parts := make([]string, len(s))
	for i, t := range s {
		parts[i] = string(t)
	}
	return strings.Join(parts, " ")
}

// Catalog holds every template ChooseStructure may return.
// No template is longer than SeedLength, so every lookup slot has a seed letter.
var Catalog = []Structure{
	{Pronoun, Adverb, Verb, Article, Adjective, Noun},
	{Article, Adjective, Noun, Verb, Adverb},
	{Article, Noun, Adverb, Verb, Article, Adjective, Noun},
	{Pronoun, Verb, Article, Adjective, Noun},
	{Article, Adjective, Adjective, Noun, Verb, Adverb},
	{Pronoun, Adverb, Verb, Article, Noun},
	{Article, Noun, Verb, Article, Adjective, Adjective, Noun},
}

var (
	// Pronouns is the closed set PRO slots draw from.
	Pronouns = []string{"I", "you", "he", "she", "it", "we", "they"}
	// Articles is the closed set ART slots draw from.
	Articles = []string{"a", "an", "the"}
)

// Picker is the source of randomness for a build: Intn returns a value in [0, n).
type Picker interface {
	Intn(n int) int
}

// RandPicker is a Picker backed by a seeded PCG generator.
// It is not safe for concurrent use; give each goroutine its own.
type RandPicker struct {
	r *rand.Rand
}

// NewRandPicker returns a reproducible picker for the given seed.
func NewRandPicker(seed uint64) *RandPicker {
	return &RandPicker{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *RandPicker) Intn(n int) int { return p.r.IntN(n) }

func pick[T any](p Picker, items []T) T {
	return items[p.Intn(len(items))]
}

// ChooseStructure selects one template from Catalog uniformly at random.
// The returned slice is a copy, so callers may not alter the catalog.
func ChooseStructure(p Picker) Structure {
	return slices.Clone(pick(p, Catalog))
}

// PickPronoun draws one of Pronouns.
func PickPronoun(p Picker) string { return pick(p, Pronouns) }

// PickArticle draws one of Articles.
func PickArticle(p Picker) string { return pick(p, Articles) }
