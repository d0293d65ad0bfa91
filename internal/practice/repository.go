package practice

import (
	"gorm.io/gorm"
)

type PracticeRepository interface {
	ListAttempts(userID, passageID string, limit int) ([]*Attempt, error)

	CreateHighlight(h *Highlight) error
	ListHighlights(userID, passageID string) ([]*Highlight, error)
	ListHighlightsByUser(userID string) ([]*Highlight, error)
	SetWordMastered(userID, word string, mastered bool) error
}

type practiceRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) PracticeRepository {
	return &practiceRepository{db: db}
}

func (r *practiceRepository) ListAttempts(userID, passageID string, limit int) ([]*Attempt, error) {
	var attempts []*Attempt
	if err := r.db.
		Where("user_id = ? AND passage_id = ?", userID, passageID).
		Order("started_at DESC").
		Limit(limit).
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *practiceRepository) CreateHighlight(h *Highlight) error {
	return r.db.Create(h).Error
}

func (r *practiceRepository) ListHighlights(userID, passageID string) ([]*Highlight, error) {
	var highlights []*Highlight
	if err := r.db.
		Where("user_id = ? AND passage_id = ?", userID, passageID).
		Find(&highlights).Error; err != nil {
		return nil, err
	}
	return highlights, nil
}

func (r *practiceRepository) ListHighlightsByUser(userID string) ([]*Highlight, error) {
	var highlights []*Highlight
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&highlights).Error; err != nil {
		return nil, err
	}
	return highlights, nil
}

func (r *practiceRepository) SetWordMastered(userID, word string, mastered bool) error {
	return r.db.Model(&Highlight{}).
		Where("user_id = ? AND word = ?", userID, word).
		Update("mastered", mastered).Error
}
