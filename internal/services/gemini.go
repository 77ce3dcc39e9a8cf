package services

import (
	"context"

	"google.golang.org/genai"

	"github.com/Adwait4291/GroqResume/internal/apperr"
)

type geminiService struct {
	client    *genai.Client
	modelName string
}

// NewGeminiService builds the Gemini-backed completion client.
func NewGeminiService(apiKey, model string) (CompletionService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindConfiguration, "failed to create gemini client", err)
	}

	return &geminiService{
		client:    client,
		modelName: model,
	}, nil
}

func (g *geminiService) Model() string {
	return g.modelName
}

func (g *geminiService) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Temperature),
		MaxOutputTokens: req.MaxOutputTokens,
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(req.Prompt), config)
	if err != nil {
		return "", apperr.Wrap(apperr.KindProvider, "failed to generate completion", err)
	}

	text := resp.Text()
	if text == "" {
		return "", apperr.New(apperr.KindProvider, "no text content in response")
	}

	return text, nil
}
