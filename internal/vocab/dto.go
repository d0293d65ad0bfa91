package vocab

import "time"

// DeckEntry is one flashcard: all highlight rows for the same word collapsed
// into a single reviewable unit.
type DeckEntry struct {
	Word        string    `json:"word"`
	Context     string    `json:"context,omitempty"`
	PassageID   string    `json:"passage_id"`
	Mastered    bool      `json:"mastered"`
	Color       string    `json:"color"`
	Occurrences int       `json:"occurrences"`
	LastSeen    time.Time `json:"last_seen"`
}

type ReviewDTO struct {
	Word   string `json:"word" validate:"required"`
	Answer string `json:"answer" validate:"required"`
}

type ReviewResult struct {
	Word     string `json:"word"`
	Correct  bool   `json:"correct"`
	Mastered bool   `json:"mastered"`
}

// TestCard is a cloze card: the stored context with the word blanked out.
type TestCard struct {
	Word      string `json:"word"`
	Cloze     string `json:"cloze"`
	PassageID string `json:"passage_id"`
}
