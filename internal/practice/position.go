package practice

import (
	"encoding/json"
	"strings"
	"unicode"
)

// Coordinate locates a highlighted span inside a passage's paragraph split.
// It is serialized as JSON into the highlight's note column, which predates
// structured position data, so decoding has to stay tolerant of whatever is
// already stored there.
type Coordinate struct {
	ParagraphIndex int `json:"paragraphIndex"`
	TextOffset     int `json:"textOffset"`
}

// NewCoordinate validates a client-supplied position against the paragraph
// split. Capture must never fail on malformed input, so an out-of-range
// paragraph index collapses to the zero coordinate instead of erroring.
func NewCoordinate(paragraphs []string, paragraphIndex, textOffset int) Coordinate {
	if paragraphIndex < 0 || paragraphIndex >= len(paragraphs) {
		return Coordinate{}
	}
	if textOffset < 0 {
		textOffset = 0
	}
	return Coordinate{ParagraphIndex: paragraphIndex, TextOffset: textOffset}
}

// Note encodes the coordinate for storage in the free-form note column.
func (c Coordinate) Note() string {
	b, err := json.Marshal(c)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// ParseNote decodes a stored note back into a coordinate. Empty, garbled or
// pre-scheme notes decode to the zero coordinate; rendering a highlight list
// must never fail on legacy rows.
func ParseNote(note string) Coordinate {
	var c Coordinate
	if note == "" {
		return Coordinate{}
	}
	if err := json.Unmarshal([]byte(note), &c); err != nil {
		return Coordinate{}
	}
	if c.ParagraphIndex < 0 {
		c.ParagraphIndex = 0
	}
	if c.TextOffset < 0 {
		c.TextOffset = 0
	}
	return c
}

// ExtractContext rebuilds the sentence fragment surrounding a selection: the
// text between the previous sentence boundary and the next one. It is a
// heuristic over terminal punctuation, not a sentence parser; paragraphs
// without punctuation yield the whole remainder on that side.
func ExtractContext(paragraphs []string, paragraphIndex, textOffset int, selected string) string {
	if paragraphIndex < 0 || paragraphIndex >= len(paragraphs) {
		return ""
	}

	runes := []rune(paragraphs[paragraphIndex])
	if textOffset < 0 {
		textOffset = 0
	}
	if textOffset > len(runes) {
		textOffset = len(runes)
	}

	end := textOffset + len([]rune(selected))
	if end > len(runes) {
		end = len(runes)
	}

	before := tailFragment(runes[:textOffset])
	after := headFragment(runes[end:])

	return strings.TrimSpace(before + selected + after)
}

// tailFragment returns everything after the last sentence terminator that is
// followed by whitespace.
func tailFragment(runes []rune) string {
	start := 0
	for i := 0; i+1 < len(runes); i++ {
		if isSentenceTerminal(runes[i]) && unicode.IsSpace(runes[i+1]) {
			start = i + 2
		}
	}
	return string(runes[start:])
}

// headFragment returns everything up to and including the first sentence
// terminator that is followed by whitespace, or the whole slice when none is
// found.
func headFragment(runes []rune) string {
	for i := 0; i+1 < len(runes); i++ {
		if isSentenceTerminal(runes[i]) && unicode.IsSpace(runes[i+1]) {
			return string(runes[:i+1])
		}
	}
	return string(runes)
}

func isSentenceTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
