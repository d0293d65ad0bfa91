package user

type LoginDTO struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

type StatsResponse struct {
	PassagesAttempted int     `json:"passages_attempted"`
	TotalAttempts     int     `json:"total_attempts"`
	AverageScore      float64 `json:"average_score"`
	VocabularySize    int     `json:"vocabulary_size"`
	MasteredWords     int     `json:"mastered_words"`
}
