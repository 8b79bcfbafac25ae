// Package normalize turns raw ingredient names into comparison keys.
package normalize

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Qualifiers removed from the front of a name when followed by a space.
var leadingQualifiers = []string{
	"fresh", "dried", "frozen", "canned", "organic", "raw",
	"chopped", "diced", "sliced", "minced", "grated", "shredded",
}

// Preparation qualifiers removed from the end of a name when preceded by a space.
var trailingQualifiers = []string{
	"chopped", "diced", "sliced", "minced", "grated", "shredded",
}

var (
	nonWord    = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Ingredient returns the normalized comparison key for an ingredient name.
// Singularization is naive: "hummus" becomes "hummu".
//
// Passes repeat until the output stops changing. After the first pass the
// name is lowercase and every later pass can only shorten it, so the loop ends.
func Ingredient(name string) string {
	out := once(name)
	for {
		next := once(out)
		if next == out {
			return out
		}
		out = next
	}
}

func once(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	if s == "" {
		return ""
	}

	for _, q := range leadingQualifiers {
		if strings.HasPrefix(s, q+" ") {
			s = s[len(q)+1:]
			break
		}
	}

	for _, q := range trailingQualifiers {
		if strings.HasSuffix(s, " "+q) {
			s = s[:len(s)-len(q)-1]
			break
		}
	}

	s = nonWord.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	return singularize(s)
}

func singularize(s string) string {
	if utf8.RuneCountInString(s) <= 3 || !strings.HasSuffix(s, "s") {
		return s
	}
	if strings.HasSuffix(s, "oes") {
		return s[:len(s)-2]
	}
	if s[len(s)-2] == 's' {
		return s
	}
	return s[:len(s)-1]
}
