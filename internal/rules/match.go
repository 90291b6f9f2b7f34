package rules

import (
	"regexp"
	"strings"
)

// containsAny reports whether any vocabulary term occurs in text as a
// case-insensitive substring.
func containsAny(text string, vocab []string) bool {
	lower := strings.ToLower(text)
	for _, term := range vocab {
		if strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// matchedTerms returns the vocabulary terms that occur in text as
// case-insensitive substrings, in vocabulary order.
func matchedTerms(text string, vocab []string) []string {
	lower := strings.ToLower(text)
	matched := make([]string, 0)
	for _, term := range vocab {
		if strings.Contains(lower, strings.ToLower(term)) {
			matched = append(matched, term)
		}
	}
	return matched
}

// matchedWords returns the vocabulary terms that occur in text as whole
// words (case-insensitive), in vocabulary order. Word-boundary matching
// keeps "treatment" from triggering "treat".
func matchedWords(text string, vocab []string) []string {
	matched := make([]string, 0)
	for _, term := range vocab {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
		if re.MatchString(text) {
			matched = append(matched, term)
		}
	}
	return matched
}
