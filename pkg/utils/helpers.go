package utils

import (
	"strconv"
	"strings"
	"unicode"
)

// Title upper-cases the first letter of each space separated word,
// e.g. "new york city" -> "New York City"
func Title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// ParseIntDefault parses a decimal string, returning def when s is empty
// or not a number
func ParseIntDefault(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
