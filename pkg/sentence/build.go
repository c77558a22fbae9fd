package sentence

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/japaniel/sentencer/pkg/wordbank"
)

// Assemble joins words with single spaces and uppercases the first character.
// The rest of the text is left as is.
func Assemble(words []string) string {
	s := strings.Join(words, " ")
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Build resolves structure against seed, repairs agreement and returns the sentence.
func Build(seed SeedWord, structure Structure, bank wordbank.Bank, p Picker) (string, error) {
	res, err := compose(seed, structure, bank, p)
	if err != nil {
		return "", err
	}
	return res.Sentence, nil
}

// Result is the outcome of one full pipeline run.
type Result struct {
	Seed      SeedWord
	Structure Structure
	Words     []string
	Sentence  string
}

func compose(seed SeedWord, structure Structure, bank wordbank.Bank, p Picker) (Result, error) {
	words, err := Resolve(seed, structure, bank, p)
	if err != nil {
		return Result{}, err
	}
	FixAgreement(words, structure)
	return Result{
		Seed:      seed,
		Structure: structure,
		Words:     words,
		Sentence:  Assemble(words),
	}, nil
}

// Generator runs the whole pipeline against a fixed word bank.
// A Generator is as safe for concurrent use as its Picker.
type Generator struct {
	bank   wordbank.Bank
	picker Picker
}

// NewGenerator creates a generator. bank must not be modified afterwards.
func NewGenerator(bank wordbank.Bank, p Picker) *Generator {
	return &Generator{bank: bank, picker: p}
}

// Generate validates raw, picks a structure and builds a sentence from it.
func (g *Generator) Generate(raw string) (Result, error) {
	seed, err := GetSeedWord(raw)
	if err != nil {
		return Result{}, err
	}
	return g.GenerateSeed(seed)
}

// GenerateSeed picks a structure and builds a sentence from an already validated seed.
func (g *Generator) GenerateSeed(seed SeedWord) (Result, error) {
	return compose(seed, ChooseStructure(g.picker), g.bank, g.picker)
}
