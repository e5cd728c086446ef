package validation

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

const (
	// maxDistanceRatio is the edit distance, relative to the longer answer,
	// below which two answers are considered the same
	maxDistanceRatio = 0.2

	// minContainedRatio is the share of the longer answer a contained answer
	// must cover
	minContainedRatio = 0.4
)

var articles = []string{"the ", "a ", "an "}

// NormalizeAnswer lowercases an answer, strips a leading article and
// punctuation, and collapses whitespace
func NormalizeAnswer(answer string) string {
	answer = strings.ToLower(strings.TrimSpace(answer))

	for _, article := range articles {
		if strings.HasPrefix(answer, article) {
			answer = strings.TrimPrefix(answer, article)
			break
		}
	}

	answer = strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}
		return r
	}, answer)

	return strings.Join(strings.Fields(answer), " ")
}

// IsSimilarAnswer checks if a submitted answer matches the expected one
func IsSimilarAnswer(submitted, expected string) bool {
	a := NormalizeAnswer(submitted)
	b := NormalizeAnswer(expected)

	if a == "" || b == "" {
		return false
	}
	if a == b || containsWords(a, b) || containsWords(b, a) {
		return true
	}

	distance := levenshtein.ComputeDistance(a, b)
	longest := max(len([]rune(a)), len([]rune(b)))

	return float64(distance)/float64(longest) < maxDistanceRatio
}

// containsWords reports whether part appears in whole as a run of whole
// words that covers at least minContainedRatio of whole
func containsWords(whole, part string) bool {
	if !strings.Contains(" "+whole+" ", " "+part+" ") {
		return false
	}
	return float64(len([]rune(part)))/float64(len([]rune(whole))) >= minContainedRatio
}
