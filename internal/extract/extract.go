// Package extract pulls typed records out of raw planning-document text.
// Extraction is line-oriented and total: input that matches nothing yields an
// empty result, never an error. Judging whether an empty result is a problem
// belongs to the rules, not the extractor.
package extract

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
)

// TaskEntry is one declared unit of work extracted from a checkbox line.
type TaskEntry struct {
	// Ordinal is the number the author gave the task. Uniqueness is not
	// enforced; duplicate ordinals are legal input.
	Ordinal int

	// Description is the free text after the ordinal.
	Description string

	// SourceLine is the 1-based line number the entry was found on.
	SourceLine int
}

// taskLine matches the checkbox grammar: "- [ ] <number>. <description>".
var taskLine = regexp.MustCompile(`^- \[ \]\s+(\d+)\.\s+(.+)$`)

// Tasks scans text line by line and returns every checkbox task entry in
// document order. Lines that do not match the grammar are ignored.
func Tasks(text string) []TaskEntry {
	entries := make([]TaskEntry, 0)

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		m := taskLine.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		ordinal, err := strconv.Atoi(m[1])
		if err != nil {
			// Digits too large for int; treat as a non-matching line.
			continue
		}
		entries = append(entries, TaskEntry{
			Ordinal:     ordinal,
			Description: strings.TrimSpace(m[2]),
			SourceLine:  lineNo,
		})
	}

	return entries
}

// TokenPattern describes a fixed identifier grammar: a literal prefix
// immediately followed by one or more digits.
type TokenPattern struct {
	// Prefix is the literal identifier prefix, e.g. "REQ-".
	Prefix string

	// CaseInsensitive controls whether matching ignores case. Matched
	// tokens are canonicalized to upper case when set.
	CaseInsensitive bool
}

func (p TokenPattern) regexp() *regexp.Regexp {
	expr := regexp.QuoteMeta(p.Prefix) + `\d+`
	if p.CaseInsensitive {
		expr = `(?i)` + expr
	}
	return regexp.MustCompile(expr)
}

// Tokens returns the distinct identifier tokens in text matching the
// pattern, in first-seen order.
func Tokens(text string, pattern TokenPattern) []string {
	matches := pattern.regexp().FindAllString(text, -1)

	seen := make(map[string]bool, len(matches))
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		if pattern.CaseInsensitive {
			m = strings.ToUpper(m)
		}
		if seen[m] {
			continue
		}
		seen[m] = true
		tokens = append(tokens, m)
	}

	return tokens
}
