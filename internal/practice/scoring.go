package practice

import (
	"math"
	"strconv"
	"strings"

	"github.com/saulo-duarte/ieltslab/internal/passage"
)

type ScoredAnswer struct {
	Question *passage.Question
	Answer   string
	Correct  bool
}

type ScoreResult struct {
	// Score is round(100 * correct / total) over the passage's full
	// question count, so unanswered questions count against it.
	Score   int
	Correct int
	Total   int
	Answers []ScoredAnswer
}

// Score grades a submitted answer map against the passage's questions.
// Map keys are string-encoded question order indexes; entries that match no
// question are dropped silently, since a stale form must not abort scoring.
// Comparison is case-folded exact match with no trimming, matching the
// scoring history already in the store.
func Score(questions []passage.Question, submitted map[string]string) ScoreResult {
	byIndex := make(map[int]*passage.Question, len(questions))
	for i := range questions {
		byIndex[questions[i].OrderIndex] = &questions[i]
	}

	result := ScoreResult{Total: len(questions)}
	for key, answer := range submitted {
		idx, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		q, ok := byIndex[idx]
		if !ok {
			continue
		}

		correct := strings.ToLower(q.CorrectAnswer) == strings.ToLower(answer)
		if correct {
			result.Correct++
		}
		result.Answers = append(result.Answers, ScoredAnswer{
			Question: q,
			Answer:   answer,
			Correct:  correct,
		})
	}

	if result.Total > 0 {
		result.Score = int(math.Round(100 * float64(result.Correct) / float64(result.Total)))
	}
	return result
}
