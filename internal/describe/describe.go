// Package describe generates plant descriptions from photos using a
// generative model.
package describe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ErrNoDescription is returned when the model produced no usable text.
var ErrNoDescription = errors.New("describe: model returned no description")

const prompt = "Describe this plant in one short, friendly sentence for a plant-sharing social feed. " +
	"Mention the likely species if you can tell. Do not use hashtags or emoji."

// Generator produces a short description for an image.
type Generator interface {
	Describe(ctx context.Context, image []byte, mimeType string) (string, error)
}

// GeminiGenerator generates descriptions through the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a generator using the given API key and model.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("describe: API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("describe: create client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

// Describe sends the image and prompt to the model and returns the
// trimmed description text.
func (g *GeminiGenerator) Describe(ctx context.Context, image []byte, mimeType string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mimeType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("describe: generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrNoDescription
	}
	return text, nil
}
