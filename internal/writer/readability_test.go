package writer

import (
	"math"
	"strings"
	"testing"
)

func TestFleschReadingEase(t *testing.T) {
	t.Run("empty text scores zero", func(t *testing.T) {
		if got := FleschReadingEase(""); got != 0 {
			t.Errorf("score = %v, expected 0", got)
		}
	})

	t.Run("short monosyllabic sentence", func(t *testing.T) {
		// 3 words, 1 sentence, 3 syllables:
		// 206.835 - 1.015*3 - 84.6*1 = 119.19
		got := FleschReadingEase("The cat sat.")
		if math.Abs(got-119.19) > 0.01 {
			t.Errorf("score = %v, expected 119.19", got)
		}
	})

	t.Run("simple prose reads easier than dense prose", func(t *testing.T) {
		simple := "The dog ran fast. The cat sat down. The sun was out."
		dense := "Organizational infrastructure modernization necessitates comprehensive interdepartmental collaboration initiatives."

		if FleschReadingEase(simple) <= FleschReadingEase(dense) {
			t.Error("expected simple prose to score higher than dense prose")
		}
	})

	t.Run("long unpunctuated text can score negative", func(t *testing.T) {
		// One sentence of 200 words drives the words-per-sentence term far past
		// the 206.835 base; the score has no floor.
		text := strings.TrimSpace(strings.Repeat("word ", 200))
		if got := FleschReadingEase(text); got >= 0 {
			t.Errorf("score = %v, expected negative", got)
		}
	})
}

func TestCountSentences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "three sentences", text: "One. Two! Three?", expected: 3},
		{name: "ellipsis counts once", text: "Wait... really?", expected: 2},
		{name: "no terminator counts as one", text: "a fragment with no end", expected: 1},
		{name: "empty counts as one", text: "", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countSentences(tt.text); got != tt.expected {
				t.Errorf("countSentences(%q) = %d, expected %d", tt.text, got, tt.expected)
			}
		})
	}
}

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word     string
		expected int
	}{
		{word: "cat", expected: 1},
		{word: "water", expected: 2},
		{word: "beautiful", expected: 3},
		{word: "like", expected: 1},
		{word: "the", expected: 1},
		{word: "rhythm", expected: 1},
		{word: "xyz", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := countSyllables(tt.word); got != tt.expected {
				t.Errorf("countSyllables(%q) = %d, expected %d", tt.word, got, tt.expected)
			}
		})
	}
}
