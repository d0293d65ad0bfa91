package practice

import (
	"context"
	"encoding/json"

	"github.com/saulo-duarte/ieltslab/internal/apperr"
	"github.com/saulo-duarte/ieltslab/internal/config"
	"github.com/saulo-duarte/ieltslab/internal/passage"
)

// GetSession assembles the read view for the practice page: the passage and
// its questions, the user's recent attempts and their highlights. It performs
// no writes and reads committed state only.
func (s *practiceService) GetSession(ctx context.Context, userID, passageID string) (*SessionView, error) {
	log := config.WithContext(ctx)

	p, err := s.passageRepo.GetByID(passageID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if p == nil {
		return nil, apperr.NotFound("passage " + passageID)
	}

	attempts, err := s.repo.ListAttempts(userID, passageID, recentAttempts)
	if err != nil {
		return nil, apperr.Store(err)
	}

	highlights, err := s.repo.ListHighlights(userID, passageID)
	if err != nil {
		return nil, apperr.Store(err)
	}

	view := &SessionView{
		PassageID:  p.ID.String(),
		Title:      p.Title,
		Difficulty: p.Difficulty,
		WordCount:  p.WordCount,
		Paragraphs: passage.SplitParagraphs(p.Body),
		Questions:  make([]SessionQuestion, 0, len(p.Questions)),
		Attempts:   make([]ScoreCard, 0, len(attempts)),
		Highlights: make([]SessionHighlight, 0, len(highlights)),
	}

	for _, q := range p.Questions {
		options := []string{}
		if q.Type == passage.QuestionMultiChoice && len(q.Options) > 0 {
			if err := json.Unmarshal(q.Options, &options); err != nil {
				log.WithError(err).Warnf("Unparseable options on question %s", q.ID)
				options = []string{}
			}
		}
		view.Questions = append(view.Questions, SessionQuestion{
			ID:          q.ID.String(),
			OrderIndex:  q.OrderIndex,
			Type:        q.Type,
			Prompt:      q.Prompt,
			Options:     options,
			Explanation: q.Explanation,
		})
	}

	for _, a := range attempts {
		view.Attempts = append(view.Attempts, ScoreCard{
			AttemptID:   a.ID.String(),
			Score:       a.Score,
			MaxScore:    a.MaxScore,
			InProgress:  a.Score == nil,
			StartedAt:   a.StartedAt,
			CompletedAt: a.CompletedAt,
		})
	}

	for _, h := range highlights {
		view.Highlights = append(view.Highlights, SessionHighlight{
			ID:         h.ID.String(),
			Word:       h.Word,
			Context:    h.Context,
			Coordinate: ParseNote(h.Note),
			Color:      DisplayColor(h.Mastered),
			Mastered:   h.Mastered,
			CreatedAt:  h.CreatedAt,
		})
	}

	return view, nil
}
