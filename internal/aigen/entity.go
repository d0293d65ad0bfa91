package aigen

import "github.com/saulo-duarte/ieltslab/internal/passage"

// GeneratedPassage is the envelope the model is asked to return. Optional
// fields may be missing; normalization fills them from the request defaults.
type GeneratedPassage struct {
	Title      string              `json:"title"`
	Body       string              `json:"body"`
	Topic      string              `json:"topic"`
	Difficulty string              `json:"difficulty"`
	Questions  []GeneratedQuestion `json:"questions"`
	Vocabulary []GeneratedVocab    `json:"vocabulary"`
}

type GeneratedQuestion struct {
	Type          string   `json:"type"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type GeneratedVocab struct {
	Word    string `json:"word"`
	Context string `json:"context"`
}

type GenerateRequest struct {
	Topic      string `json:"topic" validate:"required"`
	Difficulty string `json:"difficulty"`
	WordCount  int    `json:"word_count"`
	Questions  int    `json:"questions"`
}

// ImportDefaults carries the caller-supplied fallbacks applied when the
// uploaded document or the model response is missing optional metadata.
type ImportDefaults struct {
	Title      string
	Topic      string
	Difficulty passage.Difficulty
}
