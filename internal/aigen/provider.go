package aigen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/ieltslab/internal/config"
	"google.golang.org/genai"
)

type Provider interface {
	SendPrompt(ctx context.Context, system, user string) (*GeneratedPassage, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, model string) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) SendPrompt(ctx context.Context, system, user string) (*GeneratedPassage, error) {
	log := config.WithContext(ctx)
	prompt := system + "\n\n" + user

	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		log.WithError(err).Error("failed to generate content from Gemini")
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	raw := result.Text()
	log.Debugf("[AIGEN] Raw Gemini response:\n%s", raw)

	if raw == "" {
		return nil, errors.New("empty response from model")
	}

	generated, err := ParseGenerated(raw)
	if err != nil {
		log.WithError(err).Errorf("[AIGEN] Failed to decode JSON. Cleaned content:\n%s", CleanRaw(raw))
		return nil, err
	}

	log.Infof("[AIGEN] Generated passage %q with %d questions", generated.Title, len(generated.Questions))
	return generated, nil
}

// CleanRaw strips the markdown code fences models tend to wrap JSON in.
func CleanRaw(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	return strings.Trim(clean, "`")
}

// ParseGenerated decodes a model response into the passage envelope.
func ParseGenerated(raw string) (*GeneratedPassage, error) {
	clean := CleanRaw(raw)

	var generated GeneratedPassage
	if err := json.Unmarshal([]byte(clean), &generated); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	if generated.Body == "" {
		return nil, errors.New("model response has no passage body")
	}
	return &generated, nil
}
