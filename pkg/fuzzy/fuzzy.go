// Package fuzzy provides typo-tolerant string matching for todo search.
package fuzzy

import (
	"strings"
	"unicode"
)

// LevenshteinDistance calculates the edit distance between two strings:
// the number of single-character insertions, deletions, or substitutions
// required to turn one into the other.
func LevenshteinDistance(s1, s2 string) int {
	s1 = normalizeString(s1)
	s2 = normalizeString(s2)

	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	d := make([][]int, m+1)
	for i := range d {
		d[i] = make([]int, n+1)
	}
	for i := 0; i <= m; i++ {
		d[i][0] = i
	}
	for j := 0; j <= n; j++ {
		d[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			d[i][j] = min3(
				d[i-1][j]+1,      // deletion
				d[i][j-1]+1,      // insertion
				d[i-1][j-1]+cost, // substitution
			)
		}
	}

	return d[m][n]
}

// Match checks whether query fuzzy-matches text within the given edit-distance
// threshold. Substring containment and word-prefix matches always count.
func Match(query, text string, threshold int) bool {
	query = normalizeString(query)
	text = normalizeString(text)

	if query == "" || text == "" {
		return false
	}

	if strings.Contains(text, query) {
		return true
	}

	for _, word := range strings.Fields(text) {
		if LevenshteinDistance(query, word) <= threshold {
			return true
		}
		if strings.HasPrefix(word, query) {
			return true
		}
	}

	return false
}

// MatchTodo checks a todo's title and description against a query, with a
// typo-tolerance threshold scaled to the query length.
func MatchTodo(query, title, description string) bool {
	threshold := 2
	if len(query) <= 3 {
		threshold = 1
	} else if len(query) >= 8 {
		threshold = 3
	}

	if Match(query, title, threshold) {
		return true
	}
	return Match(query, description, threshold)
}

// normalizeString lowercases and strips diacritical marks.
func normalizeString(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
