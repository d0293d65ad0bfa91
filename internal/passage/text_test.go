package passage_test

import (
	"testing"

	"github.com/saulo-duarte/ieltslab/internal/passage"
)

func TestSplitParagraphs(t *testing.T) {
	t.Run("BlankLineSeparated", func(t *testing.T) {
		body := "First paragraph.\n\nSecond paragraph.\n\nThird."
		got := passage.SplitParagraphs(body)

		if len(got) != 3 {
			t.Fatalf("expected 3 paragraphs, got %d: %v", len(got), got)
		}
		if got[1] != "Second paragraph." {
			t.Errorf("unexpected second paragraph: %q", got[1])
		}
	})

	t.Run("WindowsLineEndings", func(t *testing.T) {
		body := "One.\r\n\r\nTwo."
		got := passage.SplitParagraphs(body)

		if len(got) != 2 {
			t.Fatalf("expected 2 paragraphs, got %d: %v", len(got), got)
		}
	})

	t.Run("ExtraBlankLines", func(t *testing.T) {
		body := "\n\nOne.\n\n\n\nTwo.\n\n"
		got := passage.SplitParagraphs(body)

		if len(got) != 2 {
			t.Fatalf("empty blocks should be dropped, got %d: %v", len(got), got)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if got := passage.SplitParagraphs(""); len(got) != 0 {
			t.Errorf("empty body yields no paragraphs, got %v", got)
		}
	})
}

func TestCountWords(t *testing.T) {
	cases := map[string]int{
		"":                         0,
		"one":                      1,
		"two words":                2,
		"  padded   out   words  ": 3,
		"line\nbreaks\ncount":      3,
	}
	for body, want := range cases {
		if got := passage.CountWords(body); got != want {
			t.Errorf("CountWords(%q) = %d, expected %d", body, got, want)
		}
	}
}

func TestIndexFold(t *testing.T) {
	t.Run("CaseInsensitive", func(t *testing.T) {
		start, end := passage.IndexFold("The Capital Of France", "capital")
		if start != 4 || end != 11 {
			t.Fatalf("expected offsets (4, 11), got (%d, %d)", start, end)
		}
	})

	t.Run("OffsetsValidAfterMultibyteRunes", func(t *testing.T) {
		s := "İstanbul grows fast."
		start, end := passage.IndexFold(s, "grows")
		if start < 0 {
			t.Fatal("word should be found")
		}
		if s[start:end] != "grows" {
			t.Errorf("offsets must slice the original string, got %q", s[start:end])
		}
	})

	t.Run("Absent", func(t *testing.T) {
		if start, end := passage.IndexFold("nothing here", "missing"); start != -1 || end != -1 {
			t.Errorf("expected (-1, -1), got (%d, %d)", start, end)
		}
	})

	t.Run("EmptySubstr", func(t *testing.T) {
		if start, end := passage.IndexFold("anything", ""); start != 0 || end != 0 {
			t.Errorf("expected (0, 0), got (%d, %d)", start, end)
		}
	})
}

func TestEnums(t *testing.T) {
	t.Run("Difficulty", func(t *testing.T) {
		for _, d := range passage.AllDifficulties {
			if !d.IsValid() {
				t.Errorf("%q should be valid", d)
			}
		}
		if passage.Difficulty("extreme").IsValid() {
			t.Error("unknown difficulty should be invalid")
		}
		if passage.Difficulty("").IsValid() {
			t.Error("empty difficulty should be invalid")
		}
	})

	t.Run("QuestionType", func(t *testing.T) {
		for _, q := range passage.AllQuestionTypes {
			if !q.IsValid() {
				t.Errorf("%q should be valid", q)
			}
		}
		if passage.QuestionType("essay").IsValid() {
			t.Error("unknown question type should be invalid")
		}
	})
}
