package runtime

import "strings"

// String helpers lowered from HiLow's string methods. All of them treat
// their inputs as read-only and return fresh values; the clamping and
// degenerate-empty-return rules below are part of the language contract.

// ToUpper upper-cases ASCII letters; other bytes pass through unchanged.
func ToUpper(text string) string {
	b := []byte(text)
	for i := range b {
		if b[i] >= 'a' && b[i] <= 'z' {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}

// ToLower lower-cases ASCII letters; other bytes pass through unchanged.
func ToLower(text string) string {
	b := []byte(text)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Trim removes leading and trailing whitespace runs. All-whitespace input
// trims to the empty string.
func Trim(text string) string {
	start := 0
	for start < len(text) && isSpace(text[start]) {
		start++
	}
	end := len(text)
	for end > start && isSpace(text[end-1]) {
		end--
	}
	return text[start:end]
}

// CharAt returns the character at index as a one-character string, or the
// empty string when index is out of bounds. Bad indices are not a failure.
func CharAt(text string, index int) string {
	if index < 0 || index >= len(text) {
		return ""
	}
	return text[index : index+1]
}

// Substring returns text[start:end) with start clamped to 0 and end clamped
// to the length. A clamped start >= end yields the empty string.
func Substring(text string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start >= end {
		return ""
	}
	return text[start:end]
}

// Concat returns a followed by b.
func Concat(a, b string) string {
	return a + b
}

// Replace substitutes to for the first occurrence of from. Later occurrences
// are untouched; callers loop when they need a global replace. Text without
// a match comes back unchanged.
func Replace(text, from, to string) string {
	i := strings.Index(text, from)
	if i < 0 {
		return text
	}
	return text[:i] + to + text[i+len(from):]
}

// Split tokenizes text on any character in delimiters. Runs of consecutive
// delimiter characters count as a single separator, so the result never
// contains empty tokens; leading and trailing delimiters produce none
// either. An empty delimiter set yields the whole text as one token.
func Split(text, delimiters string) *Seq[string] {
	result := NewSeq[string]()
	start := -1
	for i := 0; i < len(text); i++ {
		if strings.IndexByte(delimiters, text[i]) >= 0 {
			if start >= 0 {
				result.Push(text[start:i])
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		result.Push(text[start:])
	}
	return result
}
