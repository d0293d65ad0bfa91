package user

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(u *User) error
	FindByID(id uuid.UUID) (*User, error)
	FindByEmail(email string) (*User, error)
	Stats(userID uuid.UUID) (*StatsResponse, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(u *User) error {
	return r.db.Create(u).Error
}

func (r *userRepository) FindByID(id uuid.UUID) (*User, error) {
	var u User
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByEmail(email string) (*User, error) {
	var u User
	if err := r.db.First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Stats aggregates across the practice tables. Only scored attempts enter
// the average; unscored ones are in-progress and say nothing yet.
func (r *userRepository) Stats(userID uuid.UUID) (*StatsResponse, error) {
	stats := &StatsResponse{}

	var passages, attempts, vocab, mastered int64
	if err := r.db.Table("attempts").
		Where("user_id = ?", userID).
		Distinct("passage_id").
		Count(&passages).Error; err != nil {
		return nil, err
	}
	if err := r.db.Table("attempts").
		Where("user_id = ?", userID).
		Count(&attempts).Error; err != nil {
		return nil, err
	}

	var avg sql.NullFloat64
	if err := r.db.Table("attempts").
		Where("user_id = ? AND score IS NOT NULL", userID).
		Select("AVG(score)").
		Scan(&avg).Error; err != nil {
		return nil, err
	}

	if err := r.db.Table("highlights").
		Where("user_id = ?", userID).
		Distinct("word").
		Count(&vocab).Error; err != nil {
		return nil, err
	}
	if err := r.db.Table("highlights").
		Where("user_id = ? AND mastered = ?", userID, true).
		Distinct("word").
		Count(&mastered).Error; err != nil {
		return nil, err
	}

	stats.PassagesAttempted = int(passages)
	stats.TotalAttempts = int(attempts)
	if avg.Valid {
		stats.AverageScore = avg.Float64
	}
	stats.VocabularySize = int(vocab)
	stats.MasteredWords = int(mastered)
	return stats, nil
}
