package nlu

import (
	"context"
	"fmt"
	"strings"

	"meetbot/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiRefiner implements Refiner on top of the Gemini API.
type GeminiRefiner struct {
	model *genai.GenerativeModel
}

// NewGeminiRefiner creates a refiner bound to the given API key.
func NewGeminiRefiner(ctx context.Context, apiKey string) (*GeminiRefiner, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("nlu: create gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiRefiner{model: model}, nil
}

// Refine sends the raw command text to the model and parses its JSON reply.
func (g *GeminiRefiner) Refine(ctx context.Context, text string) (*models.Hint, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(fmt.Sprintf(refinePrompt, text)))
	if err != nil {
		return nil, fmt.Errorf("nlu: gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("nlu: gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return parseRefineReply(sb.String())
}
