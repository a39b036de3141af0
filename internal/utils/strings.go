package utils

import "strings"

// SafeTruncate truncates s to at most maxLen runes, marking the cut with "...".
func SafeTruncate(s string, maxLen int) string {
	if maxLen <= 0 || s == "" {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 4 {
		return string(runes[:1])
	}
	return string(runes[:maxLen-3]) + "..."
}

// SanitizeToken removes ANSI escape sequences and control characters so that
// raw input can be echoed into diagnostics.
func SanitizeToken(s string) string {
	var b strings.Builder
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			inEscape = true
			i++
			continue
		}
		if inEscape {
			if (s[i] >= 'A' && s[i] <= 'Z') || (s[i] >= 'a' && s[i] <= 'z') {
				inEscape = false
			}
			continue
		}
		if s[i] >= 32 && s[i] != 127 {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// QuoteToken sanitises and truncates an input token for error messages.
func QuoteToken(s string, maxLen int) string {
	return SafeTruncate(SanitizeToken(s), maxLen)
}
