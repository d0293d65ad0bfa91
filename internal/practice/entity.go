package practice

import (
	"time"

	"github.com/google/uuid"
)

type Attempt struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	PassageID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"passage_id"`
	StartedAt   time.Time  `gorm:"autoCreateTime" json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Score stays null until scoring completes; readers treat a null score
	// as an attempt still in progress.
	Score    *int `json:"score,omitempty"`
	MaxScore int  `gorm:"not null;default:0" json:"max_score"`

	Responses []Response `gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE" json:"responses,omitempty"`
}

type Response struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AttemptID  uuid.UUID `gorm:"type:uuid;not null;index" json:"attempt_id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	Answer     string    `gorm:"type:text;not null" json:"answer"`
	Correct    bool      `gorm:"not null;default:false" json:"correct"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Highlight is one user-marked word or phrase. Rows are append-only:
// marking the same word again creates a new row rather than touching the
// old one. The note column carries the serialized Coordinate.
type Highlight struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	PassageID uuid.UUID `gorm:"type:uuid;not null;index" json:"passage_id"`
	Word      string    `gorm:"type:text;not null" json:"word"`
	Context   string    `gorm:"type:text" json:"context"`
	Note      string    `gorm:"type:text" json:"note"`
	Mastered  bool      `gorm:"not null;default:false" json:"mastered"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
