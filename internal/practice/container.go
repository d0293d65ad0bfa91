package practice

import (
	"github.com/saulo-duarte/ieltslab/internal/passage"
	"gorm.io/gorm"
)

type PracticeContainer struct {
	Handler *Handler
	Service PracticeService
	Repo    PracticeRepository
}

func NewPracticeContainer(db *gorm.DB, passageRepo passage.PassageRepository) *PracticeContainer {
	repo := NewRepository(db)
	service := NewService(db, repo, passageRepo)
	handler := NewHandler(service)

	return &PracticeContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
