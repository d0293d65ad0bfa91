package vocab

import "github.com/saulo-duarte/ieltslab/internal/practice"

type VocabContainer struct {
	Handler *Handler
}

func NewVocabContainer(practiceRepo practice.PracticeRepository) *VocabContainer {
	service := NewService(practiceRepo)
	handler := NewHandler(service)

	return &VocabContainer{
		Handler: handler,
	}
}
