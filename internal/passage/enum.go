package passage

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var AllDifficulties = []Difficulty{
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
}

func (d Difficulty) IsValid() bool {
	for _, v := range AllDifficulties {
		if d == v {
			return true
		}
	}
	return false
}

type QuestionType string

const (
	QuestionMultiChoice QuestionType = "multichoice"
	QuestionTrueFalse   QuestionType = "truefalse"
	QuestionFillBlank   QuestionType = "fillblank"
	QuestionMatching    QuestionType = "matching"
)

var AllQuestionTypes = []QuestionType{
	QuestionMultiChoice,
	QuestionTrueFalse,
	QuestionFillBlank,
	QuestionMatching,
}

func (q QuestionType) IsValid() bool {
	for _, v := range AllQuestionTypes {
		if q == v {
			return true
		}
	}
	return false
}
