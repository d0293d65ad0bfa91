package aigen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/saulo-duarte/ieltslab/internal/apperr"
	"github.com/saulo-duarte/ieltslab/internal/config"
)

// PDFExtractor turns uploaded PDF bytes into plain text via the external
// extraction service.
type PDFExtractor interface {
	ExtractText(ctx context.Context, filename string, data []byte) (string, error)
}

type pdfExtractor struct {
	client *resty.Client
	url    string
	apiKey string
}

func NewPDFExtractor(url, apiKey string) PDFExtractor {
	client := resty.New().SetTimeout(60 * time.Second)
	return &pdfExtractor{
		client: client,
		url:    url,
		apiKey: apiKey,
	}
}

func (e *pdfExtractor) ExtractText(ctx context.Context, filename string, data []byte) (string, error) {
	log := config.WithContext(ctx)

	if e.url == "" {
		return "", apperr.Upstream("pdf extractor is not configured", nil)
	}

	resp, err := e.client.R().
		SetContext(ctx).
		SetHeader("X-Api-Key", e.apiKey).
		SetFileReader("file", filename, bytes.NewReader(data)).
		Post(e.url)
	if err != nil {
		log.WithError(err).Error("PDF extractor request failed")
		return "", apperr.Upstream("pdf extraction failed", err)
	}
	if resp.StatusCode() != 200 {
		log.Errorf("PDF extractor returned status %d: %s", resp.StatusCode(), resp.String())
		return "", apperr.Upstream(fmt.Sprintf("pdf extractor returned status %d", resp.StatusCode()), nil)
	}

	var payload struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		log.WithError(err).Error("Invalid PDF extractor response")
		return "", apperr.Upstream("invalid pdf extractor response", err)
	}
	if payload.Text == "" {
		return "", apperr.Upstream("no text extracted from document", nil)
	}

	return payload.Text, nil
}
