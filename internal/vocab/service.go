package vocab

import (
	"context"
	"strings"

	"github.com/saulo-duarte/ieltslab/internal/apperr"
	"github.com/saulo-duarte/ieltslab/internal/config"
	"github.com/saulo-duarte/ieltslab/internal/passage"
	"github.com/saulo-duarte/ieltslab/internal/practice"
)

type Service interface {
	Deck(ctx context.Context, userID string, masteredOnly *bool) ([]DeckEntry, error)
	Review(ctx context.Context, userID string, dto ReviewDTO) (*ReviewResult, error)
	TestCards(ctx context.Context, userID string, limit int) ([]TestCard, error)
}

type service struct {
	practiceRepo practice.PracticeRepository
}

func NewService(practiceRepo practice.PracticeRepository) Service {
	return &service{practiceRepo: practiceRepo}
}

func (s *service) Deck(ctx context.Context, userID string, masteredOnly *bool) ([]DeckEntry, error) {
	highlights, err := s.practiceRepo.ListHighlightsByUser(userID)
	if err != nil {
		return nil, apperr.Store(err)
	}

	deck := BuildDeck(highlights)
	if masteredOnly == nil {
		return deck, nil
	}

	filtered := make([]DeckEntry, 0, len(deck))
	for _, e := range deck {
		if e.Mastered == *masteredOnly {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// Review grades a flashcard answer with the same case-folded exact
// comparison the scoring engine uses, and promotes the word to mastered on a
// correct answer.
func (s *service) Review(ctx context.Context, userID string, dto ReviewDTO) (*ReviewResult, error) {
	log := config.WithContext(ctx)

	correct := strings.ToLower(dto.Word) == strings.ToLower(dto.Answer)
	result := &ReviewResult{Word: dto.Word, Correct: correct}

	if correct {
		if err := s.practiceRepo.SetWordMastered(userID, dto.Word, true); err != nil {
			log.WithError(err).Error("Failed to mark word mastered")
			return nil, apperr.Store(err)
		}
		result.Mastered = true
		log.WithField("word", dto.Word).Info("Word mastered")
	}

	return result, nil
}

func (s *service) TestCards(ctx context.Context, userID string, limit int) ([]TestCard, error) {
	if limit <= 0 {
		limit = 10
	}

	highlights, err := s.practiceRepo.ListHighlightsByUser(userID)
	if err != nil {
		return nil, apperr.Store(err)
	}

	cards := make([]TestCard, 0, limit)
	for _, e := range BuildDeck(highlights) {
		if e.Mastered {
			continue
		}
		cards = append(cards, TestCard{
			Word:      e.Word,
			Cloze:     Cloze(e.Context, e.Word),
			PassageID: e.PassageID,
		})
		if len(cards) == limit {
			break
		}
	}
	return cards, nil
}

// BuildDeck collapses highlight rows into per-word flashcards. Input is
// expected newest first; the newest row supplies the card's context and
// passage, and a word counts as mastered when any of its rows does.
func BuildDeck(highlights []*practice.Highlight) []DeckEntry {
	order := make([]string, 0, len(highlights))
	byWord := make(map[string]*DeckEntry)

	for _, h := range highlights {
		key := strings.ToLower(h.Word)
		entry, ok := byWord[key]
		if !ok {
			entry = &DeckEntry{
				Word:      h.Word,
				Context:   h.Context,
				PassageID: h.PassageID.String(),
				LastSeen:  h.CreatedAt,
			}
			byWord[key] = entry
			order = append(order, key)
		}
		entry.Occurrences++
		if h.Mastered {
			entry.Mastered = true
		}
	}

	deck := make([]DeckEntry, 0, len(order))
	for _, key := range order {
		entry := byWord[key]
		entry.Color = practice.DisplayColor(entry.Mastered)
		deck = append(deck, *entry)
	}
	return deck
}

// Cloze blanks the first case-insensitive occurrence of word in context.
// When the context does not contain the word the card falls back to the
// blank alone rather than leaking the answer.
func Cloze(context, word string) string {
	if context == "" || word == "" {
		return "____"
	}
	start, end := passage.IndexFold(context, word)
	if start < 0 {
		return "____"
	}
	return context[:start] + "____" + context[end:]
}
