// Package nlp normalizes technology names so that spelling variants of the
// same skill compare equal.
package nlp

import (
	"regexp"
	"strings"
)

var (
	reNonWord = regexp.MustCompile(`[^\p{L}\p{N}+#]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// aliases maps a normalized token to its canonical spelling.
var aliases = map[string]string{
	"golang":     "go",
	"postgresql": "postgres",
	"k8s":        "kubernetes",
	"js":         "javascript",
	"ts":         "typescript",
	"nodejs":     "node",
	"reactjs":    "react",
	"py":         "python",
	"cicd":       "ci cd",
}

// Normalize lowercases s, turns punctuation into spaces and collapses runs
// of whitespace. Plus and hash signs survive for names like C++ and C#.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = reNonWord.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Canonical is the comparison key of a skill: normalized, with every token
// replaced by its canonical alias. "Golang", "go" and "GO" share one key,
// as do "Node.js" and "nodejs".
func Canonical(skill string) string {
	n := Normalize(skill)
	if n == "" {
		return ""
	}
	if a, ok := aliases[strings.ReplaceAll(n, " ", "")]; ok {
		return a
	}
	parts := strings.Split(n, " ")
	for i, p := range parts {
		if a, ok := aliases[p]; ok {
			parts[i] = a
		}
	}
	return strings.Join(parts, " ")
}

// Same reports whether a and b name the same skill.
func Same(a, b string) bool {
	ca := Canonical(a)
	return ca != "" && ca == Canonical(b)
}
