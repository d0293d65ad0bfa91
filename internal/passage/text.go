package passage

import (
	"strings"
	"unicode/utf8"
)

// SplitParagraphs breaks a passage body on blank lines. Paragraph indexes
// produced here are what highlight coordinates refer to, so the split must
// stay stable for a given body.
func SplitParagraphs(body string) []string {
	normalized := strings.ReplaceAll(body, "\r\n", "\n")
	blocks := strings.Split(normalized, "\n\n")

	paragraphs := make([]string, 0, len(blocks))
	for _, b := range blocks {
		b = strings.TrimSpace(b)
		if b != "" {
			paragraphs = append(paragraphs, b)
		}
	}
	return paragraphs
}

func CountWords(body string) int {
	return len(strings.Fields(body))
}

// IndexFold reports the byte offsets [start, end) of the first
// case-insensitive occurrence of substr in s, or (-1, -1) when absent.
// Matching compares rune windows of s directly, so the returned offsets are
// valid slice bounds on s even for runes whose case fold changes byte length.
func IndexFold(s, substr string) (int, int) {
	n := utf8.RuneCountInString(substr)
	if n == 0 {
		return 0, 0
	}

	for start := range s {
		end := start
		runes := 0
		for end < len(s) && runes < n {
			_, size := utf8.DecodeRuneInString(s[end:])
			end += size
			runes++
		}
		if runes == n && strings.EqualFold(s[start:end], substr) {
			return start, end
		}
	}
	return -1, -1
}
