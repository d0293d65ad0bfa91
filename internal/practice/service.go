package practice

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/ieltslab/internal/apperr"
	"github.com/saulo-duarte/ieltslab/internal/config"
	"github.com/saulo-duarte/ieltslab/internal/passage"
	"gorm.io/gorm"
)

const recentAttempts = 4

type PracticeService interface {
	SubmitAnswers(ctx context.Context, userID, passageID string, raw json.RawMessage) (*SubmissionResult, error)
	AddHighlight(ctx context.Context, userID, passageID string, dto SessionActionDTO) (*Highlight, error)
	GetSession(ctx context.Context, userID, passageID string) (*SessionView, error)
}

type practiceService struct {
	repo        PracticeRepository
	passageRepo passage.PassageRepository
	db          *gorm.DB
}

func NewService(db *gorm.DB, repo PracticeRepository, passageRepo passage.PassageRepository) PracticeService {
	return &practiceService{
		repo:        repo,
		passageRepo: passageRepo,
		db:          db,
	}
}

// SubmitAnswers validates the submission, scores it and persists the result.
// Validation happens entirely before the transaction: a malformed payload or
// missing passage leaves no rows behind. Inside the transaction the attempt
// row exists before its responses, and the score lands only after every
// response is written.
func (s *practiceService) SubmitAnswers(ctx context.Context, userID, passageID string, raw json.RawMessage) (*SubmissionResult, error) {
	log := config.WithContext(ctx)

	var submitted map[string]string
	if len(raw) == 0 {
		return nil, apperr.Validation("answers payload required")
	}
	if err := json.Unmarshal(raw, &submitted); err != nil {
		return nil, apperr.Validation("answers must be an object of index to answer")
	}

	p, err := s.passageRepo.GetByID(passageID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if p == nil {
		return nil, apperr.NotFound("passage " + passageID)
	}

	result := Score(p.Questions, submitted)

	attempt := &Attempt{
		ID:        uuid.New(),
		UserID:    uuid.MustParse(userID),
		PassageID: p.ID,
		MaxScore:  result.Total,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(attempt).Error; err != nil {
			return err
		}

		responses := make([]*Response, 0, len(result.Answers))
		for _, a := range result.Answers {
			responses = append(responses, &Response{
				ID:         uuid.New(),
				AttemptID:  attempt.ID,
				QuestionID: a.Question.ID,
				Answer:     a.Answer,
				Correct:    a.Correct,
			})
		}
		if len(responses) > 0 {
			if err := tx.Create(&responses).Error; err != nil {
				return err
			}
		}

		now := time.Now()
		score := result.Score
		attempt.Score = &score
		attempt.CompletedAt = &now
		return tx.Model(attempt).Updates(map[string]interface{}{
			"score":        score,
			"max_score":    result.Total,
			"completed_at": now,
		}).Error
	})
	if err != nil {
		log.WithError(err).Error("Failed to persist attempt")
		return nil, apperr.Store(err)
	}

	log.WithField("attempt_id", attempt.ID.String()).WithField("score", result.Score).Info("Attempt scored")

	return &SubmissionResult{
		ScoreCard: ScoreCard{
			AttemptID:   attempt.ID.String(),
			Score:       attempt.Score,
			MaxScore:    result.Total,
			StartedAt:   attempt.StartedAt,
			CompletedAt: attempt.CompletedAt,
		},
		Correct: result.Correct,
		Total:   result.Total,
	}, nil
}

// AddHighlight appends one highlight row. Repeated highlights of the same
// word are independent rows; there is no merge.
func (s *practiceService) AddHighlight(ctx context.Context, userID, passageID string, dto SessionActionDTO) (*Highlight, error) {
	log := config.WithContext(ctx)

	if dto.Text == "" {
		return nil, apperr.Validation("highlight text required")
	}

	p, err := s.passageRepo.GetByID(passageID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if p == nil {
		return nil, apperr.NotFound("passage " + passageID)
	}

	paragraphs := passage.SplitParagraphs(p.Body)
	coord := NewCoordinate(paragraphs, dto.ParagraphIndex, dto.TextOffset)

	sentence := dto.Context
	if sentence == "" {
		sentence = ExtractContext(paragraphs, dto.ParagraphIndex, dto.TextOffset, dto.Text)
	}

	h := &Highlight{
		ID:        uuid.New(),
		UserID:    uuid.MustParse(userID),
		PassageID: p.ID,
		Word:      dto.Text,
		Context:   sentence,
		Note:      coord.Note(),
		Mastered:  MasteredFromColor(dto.Color),
	}

	if err := s.repo.CreateHighlight(h); err != nil {
		log.WithError(err).Error("Failed to create highlight")
		return nil, apperr.Store(err)
	}

	log.WithField("word", h.Word).Info("Highlight created")
	return h, nil
}
