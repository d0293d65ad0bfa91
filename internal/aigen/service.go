package aigen

import (
	"context"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/saulo-duarte/ieltslab/internal/apperr"
	"github.com/saulo-duarte/ieltslab/internal/config"
	"github.com/saulo-duarte/ieltslab/internal/passage"
	"github.com/saulo-duarte/ieltslab/internal/practice"
	"gorm.io/datatypes"
)

type Service interface {
	GenerateFromTopic(ctx context.Context, userID string, req GenerateRequest) (*passage.Passage, error)
	ImportFromPDF(ctx context.Context, userID, filename string, data []byte, defaults ImportDefaults) (*passage.Passage, error)
}

type service struct {
	provider     Provider
	extractor    PDFExtractor
	passageRepo  passage.PassageRepository
	practiceRepo practice.PracticeRepository
}

func NewService(provider Provider, extractor PDFExtractor, passageRepo passage.PassageRepository, practiceRepo practice.PracticeRepository) Service {
	return &service{
		provider:     provider,
		extractor:    extractor,
		passageRepo:  passageRepo,
		practiceRepo: practiceRepo,
	}
}

// GenerateFromTopic asks the model for a passage on the requested topic and
// persists whatever comes back. A failed or unparseable model response
// surfaces as an upstream error with nothing persisted; there is no text to
// fall back to.
func (s *service) GenerateFromTopic(ctx context.Context, userID string, req GenerateRequest) (*passage.Passage, error) {
	log := config.WithContext(ctx)

	if s.provider == nil {
		return nil, apperr.Upstream("content generator is not configured", nil)
	}

	generated, err := s.provider.SendPrompt(ctx, systemPrompt, BuildUserPrompt(req))
	if err != nil {
		return nil, apperr.Upstream("content generation failed", err)
	}

	defaults := ImportDefaults{
		Title:      req.Topic,
		Topic:      req.Topic,
		Difficulty: passage.Difficulty(req.Difficulty),
	}

	p, err := s.persist(ctx, userID, generated, defaults)
	if err != nil {
		return nil, err
	}

	log.WithField("passage_id", p.ID.String()).WithField("topic", req.Topic).Info("Passage generated from topic")
	return p, nil
}

// ImportFromPDF extracts text from the uploaded document and asks the model
// to enrich it with questions and vocabulary. Extraction failure aborts the
// import; an enrichment failure degrades to the bare extracted text with no
// questions, since the user's document is already in hand.
func (s *service) ImportFromPDF(ctx context.Context, userID, filename string, data []byte, defaults ImportDefaults) (*passage.Passage, error) {
	log := config.WithContext(ctx)

	if len(data) == 0 {
		return nil, apperr.Validation("uploaded file is empty")
	}

	text, err := s.extractor.ExtractText(ctx, filename, data)
	if err != nil {
		return nil, err
	}

	var generated *GeneratedPassage
	if s.provider != nil {
		generated, err = s.provider.SendPrompt(ctx, systemPrompt, BuildImportPrompt(text, 5))
		if err != nil {
			log.WithError(err).Warn("Enrichment failed, importing extracted text without questions")
			generated = nil
		}
	}
	if generated == nil {
		generated = &GeneratedPassage{Body: text}
	}

	if defaults.Title == "" {
		defaults.Title = strings.TrimSuffix(filename, ".pdf")
	}

	p, err := s.persist(ctx, userID, generated, defaults)
	if err != nil {
		return nil, err
	}

	log.WithField("passage_id", p.ID.String()).WithField("file", filename).Info("Passage imported from PDF")
	return p, nil
}

// persist normalizes the generated envelope against the caller defaults and
// writes the passage, its questions and the pre-seeded vocabulary highlights.
func (s *service) persist(ctx context.Context, userID string, generated *GeneratedPassage, defaults ImportDefaults) (*passage.Passage, error) {
	log := config.WithContext(ctx)

	title := generated.Title
	if title == "" {
		title = defaults.Title
	}
	topic := generated.Topic
	if topic == "" {
		topic = defaults.Topic
	}
	difficulty := passage.Difficulty(generated.Difficulty)
	if !difficulty.IsValid() {
		difficulty = defaults.Difficulty
	}
	if !difficulty.IsValid() {
		difficulty = passage.DifficultyMedium
	}

	p := &passage.Passage{
		ID:         uuid.New(),
		Title:      title,
		Body:       generated.Body,
		Topic:      topic,
		Difficulty: difficulty,
		WordCount:  passage.CountWords(generated.Body),
	}

	questions := make([]*passage.Question, 0, len(generated.Questions))
	for i, gq := range generated.Questions {
		qType := passage.QuestionType(gq.Type)
		if !qType.IsValid() {
			if len(gq.Options) > 0 {
				qType = passage.QuestionMultiChoice
			} else {
				qType = passage.QuestionFillBlank
			}
		}

		options, err := json.Marshal(gq.Options)
		if err != nil {
			options = []byte("[]")
		}

		var explanation *string
		if gq.Explanation != "" {
			e := gq.Explanation
			explanation = &e
		}

		questions = append(questions, &passage.Question{
			ID:            uuid.New(),
			OrderIndex:    i,
			Type:          qType,
			Prompt:        gq.Prompt,
			Options:       datatypes.JSON(options),
			CorrectAnswer: gq.CorrectAnswer,
			Explanation:   explanation,
		})
	}

	if err := s.passageRepo.CreateWithQuestions(p, questions); err != nil {
		log.WithError(err).Error("Failed to persist generated passage")
		return nil, apperr.Store(err)
	}

	s.seedVocabulary(ctx, userID, p, generated.Vocabulary)

	p.Questions = nil
	return p, nil
}

// seedVocabulary stores the model's vocabulary list as highlights for the
// requesting user, locating each word's first occurrence in the passage.
// Failures here are logged and swallowed; the passage itself is already
// committed and a missing seed highlight is not worth failing the request.
func (s *service) seedVocabulary(ctx context.Context, userID string, p *passage.Passage, vocab []GeneratedVocab) {
	log := config.WithContext(ctx)
	if len(vocab) == 0 {
		return
	}

	paragraphs := passage.SplitParagraphs(p.Body)
	for _, v := range vocab {
		if v.Word == "" {
			continue
		}

		coord := locateWord(paragraphs, v.Word)
		sentence := v.Context
		if sentence == "" {
			sentence = practice.ExtractContext(paragraphs, coord.ParagraphIndex, coord.TextOffset, v.Word)
		}

		h := &practice.Highlight{
			ID:        uuid.New(),
			UserID:    uuid.MustParse(userID),
			PassageID: p.ID,
			Word:      v.Word,
			Context:   sentence,
			Note:      coord.Note(),
		}
		if err := s.practiceRepo.CreateHighlight(h); err != nil {
			log.WithError(err).Warnf("Failed to seed vocabulary word %q", v.Word)
		}
	}
}

// locateWord finds the first case-insensitive occurrence of word in the
// paragraph split, as a rune-offset coordinate. Words the model invented
// that are absent from the body fall back to the zero coordinate.
func locateWord(paragraphs []string, word string) practice.Coordinate {
	for i, para := range paragraphs {
		if start, _ := passage.IndexFold(para, word); start >= 0 {
			return practice.Coordinate{
				ParagraphIndex: i,
				TextOffset:     utf8.RuneCountInString(para[:start]),
			}
		}
	}
	return practice.Coordinate{}
}
