package writer

import (
	"strings"
	"unicode"
)

// FleschReadingEase computes the Flesch reading-ease score of the text from
// sentence, word and syllable counts. Higher is easier; plain English prose
// lands around 60-70. Empty text scores zero.
func FleschReadingEase(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	sentences := countSentences(text)
	syllables := 0
	for _, word := range words {
		syllables += countSyllables(word)
	}

	wordCount := float64(len(words))
	return 206.835 - 1.015*(wordCount/float64(sentences)) - 84.6*(float64(syllables)/wordCount)
}

// countSentences counts terminator runs (. ! ?); a text without any counts as
// a single sentence.
func countSentences(text string) int {
	sentences := 0
	inTerminator := false
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			if !inTerminator {
				sentences++
				inTerminator = true
			}
		default:
			inTerminator = false
		}
	}
	if sentences == 0 {
		return 1
	}
	return sentences
}

// countSyllables approximates syllables as vowel groups, discounting a
// trailing silent 'e'. Every word counts at least one.
func countSyllables(word string) int {
	word = strings.ToLower(word)

	syllables := 0
	prevVowel := false
	lastVowelRune := rune(0)
	for _, r := range word {
		vowel := isVowel(r)
		if vowel && !prevVowel {
			syllables++
			lastVowelRune = r
		}
		prevVowel = vowel
	}

	// Silent trailing 'e' as in "like", but not a lone vowel as in "the".
	if syllables > 1 && lastVowelRune == 'e' && strings.HasSuffix(strings.TrimRightFunc(word, isPunct), "e") {
		syllables--
	}

	if syllables == 0 {
		syllables = 1
	}
	return syllables
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func isPunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
