package aigen

import (
	"context"

	"github.com/saulo-duarte/ieltslab/internal/config"
	"github.com/saulo-duarte/ieltslab/internal/passage"
	"github.com/saulo-duarte/ieltslab/internal/practice"
	"github.com/sirupsen/logrus"
)

type AIGenContainer struct {
	Handler *Handler
}

func NewAIGenContainer(passageRepo passage.PassageRepository, practiceRepo practice.PracticeRepository) *AIGenContainer {
	ctx := context.Background()

	provider, err := NewGeminiProvider(ctx, config.C.GeminiModel)
	if err != nil {
		logrus.WithError(err).Warn("Gemini provider unavailable, generation endpoints will fail upstream")
		provider = nil
	}

	extractor := NewPDFExtractor(config.C.PDFExtractorURL, config.C.PDFExtractorKey)
	service := NewService(provider, extractor, passageRepo, practiceRepo)
	handler := NewHandler(service)

	return &AIGenContainer{
		Handler: handler,
	}
}
