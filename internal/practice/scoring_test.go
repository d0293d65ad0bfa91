package practice_test

import (
	"testing"

	"github.com/saulo-duarte/ieltslab/internal/passage"
	"github.com/saulo-duarte/ieltslab/internal/practice"
)

func questionsWithAnswers(answers ...string) []passage.Question {
	questions := make([]passage.Question, len(answers))
	for i, a := range answers {
		questions[i] = passage.Question{
			OrderIndex:    i,
			Type:          passage.QuestionFillBlank,
			Prompt:        "q",
			CorrectAnswer: a,
		}
	}
	return questions
}

func TestScore(t *testing.T) {
	t.Run("TwoOfThreeCorrect", func(t *testing.T) {
		questions := questionsWithAnswers("Paris", "42", "True")
		result := practice.Score(questions, map[string]string{
			"0": "paris",
			"1": "42",
			"2": "false",
		})

		if result.Score != 67 {
			t.Errorf("expected score 67, got %d", result.Score)
		}
		if result.Correct != 2 {
			t.Errorf("expected 2 correct, got %d", result.Correct)
		}
		if result.Total != 3 {
			t.Errorf("expected total 3, got %d", result.Total)
		}
		if len(result.Answers) != 3 {
			t.Errorf("expected 3 graded answers, got %d", len(result.Answers))
		}
	})

	t.Run("EmptySubmission", func(t *testing.T) {
		questions := questionsWithAnswers("Paris", "42", "True")
		result := practice.Score(questions, map[string]string{})

		if result.Score != 0 {
			t.Errorf("expected score 0, got %d", result.Score)
		}
		if len(result.Answers) != 0 {
			t.Errorf("expected no graded answers, got %d", len(result.Answers))
		}
	})

	t.Run("UnansweredQuestionsCountAgainstScore", func(t *testing.T) {
		questions := questionsWithAnswers("a", "b", "c", "d")
		result := practice.Score(questions, map[string]string{
			"0": "a",
			"1": "b",
		})

		if result.Score != 50 {
			t.Errorf("expected score 50, got %d", result.Score)
		}
		if len(result.Answers) != 2 {
			t.Errorf("expected 2 graded answers, got %d", len(result.Answers))
		}
	})

	t.Run("StaleIndexesDropped", func(t *testing.T) {
		questions := questionsWithAnswers("a", "b")
		result := practice.Score(questions, map[string]string{
			"0":   "a",
			"7":   "ghost",
			"-1":  "ghost",
			"two": "ghost",
		})

		if len(result.Answers) != 1 {
			t.Errorf("expected only the matching entry graded, got %d", len(result.Answers))
		}
		if result.Score != 50 {
			t.Errorf("expected score 50, got %d", result.Score)
		}
	})

	t.Run("ZeroQuestions", func(t *testing.T) {
		result := practice.Score(nil, map[string]string{"0": "anything"})

		if result.Score != 0 {
			t.Errorf("a passage without questions always scores 0, got %d", result.Score)
		}
		if len(result.Answers) != 0 {
			t.Errorf("expected no graded answers, got %d", len(result.Answers))
		}
	})

	t.Run("CaseFoldedExactMatch", func(t *testing.T) {
		questions := questionsWithAnswers("Paris")

		if r := practice.Score(questions, map[string]string{"0": "PARIS"}); r.Correct != 1 {
			t.Error("case difference alone must not fail a match")
		}
		if r := practice.Score(questions, map[string]string{"0": " paris"}); r.Correct != 0 {
			t.Error("surrounding whitespace is not trimmed; this must not match")
		}
		if r := practice.Score(questions, map[string]string{"0": "paris."}); r.Correct != 0 {
			t.Error("punctuation is not normalized; this must not match")
		}
	})

	t.Run("Rounding", func(t *testing.T) {
		questions := questionsWithAnswers("a", "b", "c")

		if r := practice.Score(questions, map[string]string{"0": "a"}); r.Score != 33 {
			t.Errorf("1/3 should round to 33, got %d", r.Score)
		}
		if r := practice.Score(questions, map[string]string{"0": "a", "1": "b"}); r.Score != 67 {
			t.Errorf("2/3 should round to 67, got %d", r.Score)
		}
	})
}

func TestColorMapping(t *testing.T) {
	t.Run("MasteredFromColor", func(t *testing.T) {
		for color, want := range map[string]bool{
			"green":       true,
			"GREEN":       true,
			"light-green": true,
			"#00ff00":     false,
			"yellow":      false,
			"":            false,
		} {
			if got := practice.MasteredFromColor(color); got != want {
				t.Errorf("MasteredFromColor(%q) = %v, expected %v", color, got, want)
			}
		}
	})

	t.Run("DisplayColor", func(t *testing.T) {
		if practice.DisplayColor(true) != "green" {
			t.Error("mastered highlights display green")
		}
		if practice.DisplayColor(false) != "yellow" {
			t.Error("unmastered highlights display yellow")
		}
	})
}
