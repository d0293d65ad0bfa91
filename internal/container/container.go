package container

import (
	"context"
	"log"

	"github.com/saulo-duarte/ieltslab/internal/aigen"
	"github.com/saulo-duarte/ieltslab/internal/auth"
	"github.com/saulo-duarte/ieltslab/internal/config"
	"github.com/saulo-duarte/ieltslab/internal/passage"
	"github.com/saulo-duarte/ieltslab/internal/practice"
	"github.com/saulo-duarte/ieltslab/internal/user"
	"github.com/saulo-duarte/ieltslab/internal/vocab"
)

type Container struct {
	UserContainer     *user.UserContainer
	PassageContainer  *passage.PassageContainer
	PracticeContainer *practice.PracticeContainer
	AIGenContainer    *aigen.AIGenContainer
	VocabContainer    *vocab.VocabContainer
}

func New() *Container {
	config.Init()
	auth.Init()

	if err := config.Connect(context.Background(), config.C.DatabaseDSN); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := config.DB.AutoMigrate(
		&user.User{},
		&passage.Passage{},
		&passage.Question{},
		&practice.Attempt{},
		&practice.Response{},
		&practice.Highlight{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	passageContainer := passage.NewPassageContainer(config.DB)
	practiceContainer := practice.NewPracticeContainer(config.DB, passageContainer.Repo)
	aiGenContainer := aigen.NewAIGenContainer(passageContainer.Repo, practiceContainer.Repo)
	vocabContainer := vocab.NewVocabContainer(practiceContainer.Repo)

	return &Container{
		UserContainer:     userContainer,
		PassageContainer:  passageContainer,
		PracticeContainer: practiceContainer,
		AIGenContainer:    aiGenContainer,
		VocabContainer:    vocabContainer,
	}
}
