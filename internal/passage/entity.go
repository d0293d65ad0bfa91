package passage

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Passage struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title      string     `gorm:"type:text;not null" json:"title"`
	Body       string     `gorm:"type:text;not null" json:"body"`
	Topic      string     `gorm:"type:text;index" json:"topic"`
	Difficulty Difficulty `gorm:"type:text;not null;default:medium;index" json:"difficulty"`
	WordCount  int        `gorm:"not null;default:0" json:"word_count"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`

	Questions []Question `gorm:"foreignKey:PassageID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

type Question struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	PassageID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"passage_id"`
	OrderIndex    int            `gorm:"not null" json:"order_index"`
	Type          QuestionType   `gorm:"type:text;not null" json:"type"`
	Prompt        string         `gorm:"type:text;not null" json:"prompt"`
	Options       datatypes.JSON `gorm:"type:jsonb" json:"options,omitempty"`
	CorrectAnswer string         `gorm:"type:text;not null" json:"correct_answer"`
	Explanation   *string        `gorm:"type:text" json:"explanation,omitempty"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
