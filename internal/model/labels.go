package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultLabeler turns an attribute name into a display label. Words break on
// separators, case changes and letter/digit transitions; acronyms keep their
// case ("seoURL" becomes "Seo URL").
func DefaultLabeler(name string) string {
	words := splitWords(name)
	for i, word := range words {
		if !isAcronym(word) {
			word = strings.ToLower(word)
		}
		words[i] = UpperFirst(word)
	}
	return strings.Join(words, " ")
}

// UpperFirst upper-cases the first rune and leaves the rest untouched.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func splitWords(name string) []string {
	runes := []rune(name)
	var words []string
	start := -1
	for i, r := range runes {
		switch {
		case isSeparator(r):
			if start >= 0 {
				words = append(words, string(runes[start:i]))
			}
			start = -1
		case start < 0:
			start = i
		case wordBreak(runes, i):
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	if start >= 0 {
		words = append(words, string(runes[start:]))
	}
	return words
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}

// wordBreak reports whether a new word starts at runes[i]. i is never the
// first rune of a word.
func wordBreak(runes []rune, i int) bool {
	prev, r := runes[i-1], runes[i]
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(r):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(r), unicode.IsDigit(prev) && unicode.IsLetter(r):
		return true
	case unicode.IsUpper(prev) && unicode.IsUpper(r):
		return i+1 < len(runes) && unicode.IsLower(runes[i+1])
	}
	return false
}

func isAcronym(word string) bool {
	if utf8.RuneCountInString(word) < 2 {
		return false
	}
	for _, r := range word {
		if unicode.IsLower(r) {
			return false
		}
	}
	return true
}
