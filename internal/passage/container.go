package passage

import "gorm.io/gorm"

type PassageContainer struct {
	Handler *Handler
	Service PassageService
	Repo    PassageRepository
}

func NewPassageContainer(db *gorm.DB) *PassageContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &PassageContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
