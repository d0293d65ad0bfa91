package passage

import (
	"errors"

	"gorm.io/gorm"
)

type PassageRepository interface {
	CreateWithQuestions(p *Passage, questions []*Question) error
	GetByID(id string) (*Passage, error)
	List(filter ListFilter) ([]*Passage, error)
	Delete(id string) error
	CountQuestions(passageID string) (int64, error)
}

type passageRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) PassageRepository {
	return &passageRepository{db: db}
}

func (r *passageRepository) CreateWithQuestions(p *Passage, questions []*Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}

		for i := range questions {
			questions[i].PassageID = p.ID
		}
		if len(questions) > 0 {
			if err := tx.Create(&questions).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *passageRepository) GetByID(id string) (*Passage, error) {
	var p Passage
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *passageRepository) List(filter ListFilter) ([]*Passage, error) {
	q := r.db.Model(&Passage{}).Preload("Questions")
	if filter.Topic != "" {
		q = q.Where("topic = ?", filter.Topic)
	}
	if filter.Difficulty != "" {
		q = q.Where("difficulty = ?", filter.Difficulty)
	}

	var passages []*Passage
	if err := q.Order("created_at DESC").Find(&passages).Error; err != nil {
		return nil, err
	}
	return passages, nil
}

func (r *passageRepository) Delete(id string) error {
	return r.db.Delete(&Passage{}, "id = ?", id).Error
}

func (r *passageRepository) CountQuestions(passageID string) (int64, error) {
	var n int64
	err := r.db.Model(&Question{}).Where("passage_id = ?", passageID).Count(&n).Error
	return n, err
}
