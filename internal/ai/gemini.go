// README: Gemini-backed Provider implementation.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	geminiTextModel  = "gemini-2.0-flash"
	geminiImageModel = "gemini-2.0-flash-exp-image-generation"
)

// GeminiProvider implements Provider using Google's Gemini models.
type GeminiProvider struct {
	client     *genai.Client
	textModel  *genai.GenerativeModel
	imageModel *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	textModel := client.GenerativeModel(geminiTextModel)
	// Force JSON response for structured parsing.
	textModel.ResponseMIMEType = "application/json"
	// Set a reasonable temperature for creative but structured output.
	textModel.SetTemperature(0.4)

	imageModel := client.GenerativeModel(geminiImageModel)

	return &GeminiProvider{
		client:     client,
		textModel:  textModel,
		imageModel: imageModel,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// Complete sends the prompt and returns the concatenated text parts of the
// first candidate.
func (p *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.textModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}
	return responseText.String(), nil
}

// GenerateImage returns the first inline image blob of the response, if any.
// Absence of a blob is not an error here; the client layers the contract.
func (p *GeminiProvider) GenerateImage(ctx context.Context, prompt string) (string, []byte, error) {
	resp, err := p.imageModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", nil, fmt.Errorf("gemini image generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil, nil
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if blob, ok := part.(genai.Blob); ok && len(blob.Data) > 0 {
			return blob.MIMEType, blob.Data, nil
		}
	}
	return "", nil, nil
}
