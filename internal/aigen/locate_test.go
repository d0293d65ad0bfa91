package aigen

import (
	"testing"

	"github.com/saulo-duarte/ieltslab/internal/practice"
)

func TestLocateWord(t *testing.T) {
	paragraphs := []string{"İstanbul grows fast.", "A second paragraph."}

	t.Run("RuneOffsetAfterMultibyteRunes", func(t *testing.T) {
		got := locateWord(paragraphs, "grows")
		want := practice.Coordinate{ParagraphIndex: 0, TextOffset: 9}
		if got != want {
			t.Errorf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		got := locateWord(paragraphs, "SECOND")
		want := practice.Coordinate{ParagraphIndex: 1, TextOffset: 2}
		if got != want {
			t.Errorf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("AbsentWordFallsBack", func(t *testing.T) {
		if got := locateWord(paragraphs, "invented"); got != (practice.Coordinate{}) {
			t.Errorf("expected zero coordinate for absent word, got %+v", got)
		}
	})
}
