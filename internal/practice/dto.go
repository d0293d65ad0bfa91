package practice

import (
	"encoding/json"
	"time"

	"github.com/saulo-duarte/ieltslab/internal/passage"
)

// Session intents, discriminating the two write operations that share the
// session endpoint.
const (
	IntentAddHighlight  = "add_highlight"
	IntentSubmitAnswers = "submit_answers"
)

// SessionActionDTO is the tagged payload of POST /passages/{id}/session.
// Which fields matter depends on Intent.
type SessionActionDTO struct {
	Intent string `json:"intent"`

	// add_highlight
	Text           string `json:"text"`
	Color          string `json:"color"`
	ParagraphIndex int    `json:"paragraphIndex"`
	TextOffset     int    `json:"textOffset"`
	Context        string `json:"context"`

	// submit_answers: a JSON object mapping question order index (as a
	// string) to the submitted answer. Kept raw so that a malformed map is
	// rejected before any write happens.
	Answers json.RawMessage `json:"answers"`
}

type ScoreCard struct {
	AttemptID   string     `json:"attempt_id"`
	Score       *int       `json:"score"`
	MaxScore    int        `json:"max_score"`
	InProgress  bool       `json:"in_progress"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type SubmissionResult struct {
	ScoreCard
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

type SessionQuestion struct {
	ID          string               `json:"id"`
	OrderIndex  int                  `json:"order_index"`
	Type        passage.QuestionType `json:"type"`
	Prompt      string               `json:"prompt"`
	Options     []string             `json:"options"`
	Explanation *string              `json:"explanation,omitempty"`
}

type SessionHighlight struct {
	ID         string     `json:"id"`
	Word       string     `json:"word"`
	Context    string     `json:"context,omitempty"`
	Coordinate Coordinate `json:"coordinate"`
	Color      string     `json:"color"`
	Mastered   bool       `json:"mastered"`
	CreatedAt  time.Time  `json:"created_at"`
}

type SessionView struct {
	PassageID  string             `json:"passage_id"`
	Title      string             `json:"title"`
	Difficulty passage.Difficulty `json:"difficulty"`
	WordCount  int                `json:"word_count"`
	Paragraphs []string           `json:"paragraphs"`
	Questions  []SessionQuestion  `json:"questions"`
	Attempts   []ScoreCard        `json:"attempts"`
	Highlights []SessionHighlight `json:"highlights"`
}
