package passage

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/saulo-duarte/ieltslab/internal/apperr"
	"github.com/saulo-duarte/ieltslab/internal/config"
	"gorm.io/datatypes"
)

type PassageService interface {
	Create(ctx context.Context, dto CreatePassageDTO) (*Passage, error)
	Get(ctx context.Context, id string) (*Passage, error)
	List(ctx context.Context, filter ListFilter) ([]Summary, error)
	Delete(ctx context.Context, id string) error
}

type passageService struct {
	repo PassageRepository
}

func NewService(repo PassageRepository) PassageService {
	return &passageService{repo: repo}
}

func (s *passageService) Create(ctx context.Context, dto CreatePassageDTO) (*Passage, error) {
	log := config.WithContext(ctx)

	difficulty := dto.Difficulty
	if difficulty == "" {
		difficulty = DifficultyMedium
	}
	if !difficulty.IsValid() {
		return nil, apperr.Validation("invalid difficulty %q", difficulty)
	}

	p := &Passage{
		ID:         uuid.New(),
		Title:      dto.Title,
		Body:       dto.Body,
		Topic:      dto.Topic,
		Difficulty: difficulty,
		WordCount:  CountWords(dto.Body),
	}

	questions := make([]*Question, 0, len(dto.Questions))
	for i, q := range dto.Questions {
		if !q.Type.IsValid() {
			return nil, apperr.Validation("invalid question type %q at index %d", q.Type, i)
		}
		options, err := json.Marshal(q.Options)
		if err != nil {
			return nil, apperr.Validation("unserializable options at index %d", i)
		}
		questions = append(questions, &Question{
			ID:            uuid.New(),
			OrderIndex:    i,
			Type:          q.Type,
			Prompt:        q.Prompt,
			Options:       datatypes.JSON(options),
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	if err := s.repo.CreateWithQuestions(p, questions); err != nil {
		log.WithError(err).Error("Failed to create passage")
		return nil, apperr.Store(err)
	}

	log.WithField("passage_id", p.ID.String()).Info("Passage created")
	p.Questions = nil
	return p, nil
}

func (s *passageService) Get(ctx context.Context, id string) (*Passage, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if p == nil {
		return nil, apperr.NotFound("passage " + id)
	}
	return p, nil
}

func (s *passageService) List(ctx context.Context, filter ListFilter) ([]Summary, error) {
	if filter.Difficulty != "" && !filter.Difficulty.IsValid() {
		return nil, apperr.Validation("invalid difficulty %q", filter.Difficulty)
	}

	passages, err := s.repo.List(filter)
	if err != nil {
		return nil, apperr.Store(err)
	}

	summaries := make([]Summary, 0, len(passages))
	for _, p := range passages {
		summaries = append(summaries, Summary{
			ID:            p.ID.String(),
			Title:         p.Title,
			Topic:         p.Topic,
			Difficulty:    p.Difficulty,
			WordCount:     p.WordCount,
			QuestionCount: len(p.Questions),
			CreatedAt:     p.CreatedAt.Format("2006-01-02"),
		})
	}
	return summaries, nil
}

func (s *passageService) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete passage")
		return apperr.Store(err)
	}
	return nil
}
