package harvest

import (
	"net/url"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/japaniel/sentencer/pkg/wordbank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSevenLetterWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"basic", "The harbour market opened early", []string{"HARBOUR"}},
		{"punctuation splits", "morning,cheerful;bishops!", []string{"MORNING", "BISHOPS"}},
		{"duplicates kept once", "Morning morning MORNING", []string{"MORNING"}},
		{"digits split words", "abc1234567 testing", []string{"TESTING"}},
		{"accented letters count as one", "éléphan", []string{"ÉLÉPHAN"}},
		{"nothing", "a bb ccc", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, SevenLetterWords(tt.text)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCandidatesFromArticle(t *testing.T) {
	f, err := os.Open("testdata/article.html")
	require.NoError(t, err)
	defer f.Close()

	pageURL, _ := url.Parse("http://localhost/harbour")
	words, err := Candidates(f, pageURL)
	require.NoError(t, err)
	require.NotEmpty(t, words)

	for _, w := range []string{"MORNING", "TRADERS", "BISHOPS", "WEEKEND"} {
		assert.Contains(t, words, w)
	}
	for _, w := range words {
		assert.Len(t, []rune(w), 7, "candidate %q", w)
	}
}

func TestCandidatesNilURL(t *testing.T) {
	f, err := os.Open("testdata/article.html")
	require.NoError(t, err)
	defer f.Close()

	_, err = Candidates(f, nil)
	require.NoError(t, err)
}

func TestPlayable(t *testing.T) {
	bank := wordbank.Bank{
		wordbank.Adjectives: {"able", "bad", "cold"},
		wordbank.Nouns:      {"apple", "ball", "cat"},
		wordbank.Verbs:      {"act", "bring", "come"},
		wordbank.Adverbs:    {"ably", "badly", "calmly"},
	}
	// Letters past C only fall back to the alphabet index, which these short lists lack.
	got := Playable([]string{"ABCABCA", "ZZZZZZZ", "SHORT", "DABBLED"}, bank)
	assert.Equal(t, []string{"ABCABCA"}, got)
}
