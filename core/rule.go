// SPDX-License-Identifier: MIT

package core

import (
	"slices"
	"strings"
	"unicode"
)

// ParseTriggers extracts the gene tokens of a boolean gene rule such as
// "(b0118 or b1276) and b0001". Parentheses and the connectives "and"/"or"
// are dropped; the result is sorted and free of duplicates.
func ParseTriggers(rule string) []string {
	fields := strings.FieldsFunc(rule, func(r rune) bool {
		return unicode.IsSpace(r) || r == '(' || r == ')'
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		switch strings.ToLower(f) {
		case "and", "or", "":
			continue
		}
		tokens = append(tokens, f)
	}

	return NormalizeTokens(tokens)
}

// NormalizeTokens sorts tokens and removes duplicates and blanks.
// The input slice is not modified.
func NormalizeTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	slices.Sort(out)

	return slices.Compact(out)
}
