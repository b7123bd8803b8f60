// Package view provides rendering helpers for the TUI.
package view

import "strconv"

// FormatCount formats n with a noun, pluralised with a trailing "s".
func FormatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

// FormatSpan formats a half-open line span as a 1-based label such as
// "rows 4-6" or "column B". name converts an index to its label.
func FormatSpan(singular, plural string, start, end int, name func(int) string) string {
	if end-start <= 1 {
		return singular + " " + name(start)
	}
	return plural + " " + name(start) + "-" + name(end-1)
}
