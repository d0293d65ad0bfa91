package passage

type CreateQuestionDTO struct {
	Type          QuestionType `json:"type" validate:"required"`
	Prompt        string       `json:"prompt" validate:"required"`
	Options       []string     `json:"options"`
	CorrectAnswer string       `json:"correct_answer" validate:"required"`
	Explanation   *string      `json:"explanation"`
}

type CreatePassageDTO struct {
	Title      string              `json:"title" validate:"required"`
	Body       string              `json:"body" validate:"required"`
	Topic      string              `json:"topic"`
	Difficulty Difficulty          `json:"difficulty"`
	Questions  []CreateQuestionDTO `json:"questions"`
}

type ListFilter struct {
	Topic      string
	Difficulty Difficulty
}

// Summary is the library listing row; the body stays out of the list view.
type Summary struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Topic         string     `json:"topic"`
	Difficulty    Difficulty `json:"difficulty"`
	WordCount     int        `json:"word_count"`
	QuestionCount int        `json:"question_count"`
	CreatedAt     string     `json:"created_at"`
}
