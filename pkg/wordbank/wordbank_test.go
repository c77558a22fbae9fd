package wordbank

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "adjectives": ["able", "bad", "best", "better"],
  "nouns": ["apple", "ball", "cat", "dog"],
  "verbs": ["act", "bring", "come", "do"],
  "adverbs": ["ably", "badly", "best", "better"],
  "prepositions": ["about", "above", "across", "after"]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	bank, err := Load(writeFile(t, "words.json", sampleJSON))
	require.NoError(t, err)

	assert.Len(t, bank, 5)
	assert.Equal(t, []string{"act", "bring", "come", "do"}, bank[Verbs])
	words, ok := bank.Words(Adverbs)
	assert.True(t, ok)
	assert.Equal(t, "ably", words[0])
	assert.NoError(t, bank.Validate())
}

func TestLoadKeepsOrderAndCase(t *testing.T) {
	bank, err := Load(writeFile(t, "words.json", `{"nouns": ["Zebra", "apple", "Apple"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Zebra", "apple", "Apple"}, bank[Nouns])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	var fe *FileError
	require.True(t, errors.As(err, &fe), "expected FileError, got %v", err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadDirectory(t *testing.T) {
	_, err := Load(t.TempDir())
	var fe *FileError
	assert.True(t, errors.As(err, &fe), "expected FileError, got %v", err)
}

func TestLoadFormatErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "nouns: [apple]"},
		{"array document", `["apple"]`},
		{"null document", `null`},
		{"non-array category", `{"nouns": "apple"}`},
		{"non-string word", `{"nouns": [1, 2]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "words.json", tt.content)
			_, err := Load(path)
			var fe *FormatError
			require.True(t, errors.As(err, &fe), "expected FormatError, got %v", err)
			assert.Equal(t, path, fe.Path)
		})
	}
}

func TestDecode(t *testing.T) {
	bank, err := Decode(strings.NewReader(sampleJSON))
	require.NoError(t, err)
	assert.Equal(t, "apple", bank[Nouns][0])

	_, err = Decode(strings.NewReader("{"))
	var fe *FormatError
	assert.True(t, errors.As(err, &fe))
}

func TestLoadDefersMissingCategories(t *testing.T) {
	bank, err := Load(writeFile(t, "words.json", `{"nouns": ["apple"], "verbs": []}`))
	require.NoError(t, err)

	_, ok := bank.Words(Adjectives)
	assert.False(t, ok)

	err = bank.Validate()
	require.Error(t, err)
	for _, c := range []string{Adjectives, Verbs, Adverbs, Prepositions} {
		assert.Contains(t, err.Error(), c)
	}
	assert.NotContains(t, err.Error(), Nouns)
}
