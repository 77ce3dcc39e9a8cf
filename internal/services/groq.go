package services

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/Adwait4291/GroqResume/internal/apperr"
)

type groqService struct {
	client    *resty.Client
	modelName string
}

// NewGroqService builds the default completion client, talking to Groq's
// OpenAI-compatible chat completions endpoint.
func NewGroqService(apiKey, baseURL, model string) CompletionService {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetHeader("Content-Type", "application/json")

	return &groqService{
		client:    client,
		modelName: model,
	}
}

func (g *groqService) Model() string {
	return g.modelName
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int32         `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (g *groqService) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	body := chatCompletionRequest{
		Model: g.modelName,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.Prompt},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxOutputTokens,
	}

	var parsed chatCompletionResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&parsed).
		SetError(&parsed).
		Post("/chat/completions")
	if err != nil {
		return "", apperr.Wrap(apperr.KindProvider, "chat completion request failed", err)
	}

	if resp.IsError() {
		message := fmt.Sprintf("chat completion returned status %d", resp.StatusCode())
		if parsed.Error != nil && parsed.Error.Message != "" {
			message = fmt.Sprintf("%s: %s", message, parsed.Error.Message)
		}
		return "", apperr.Wrap(apperr.KindProvider, message,
			&providerStatusError{StatusCode: resp.StatusCode()})
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", apperr.New(apperr.KindProvider, "no completion choices in response")
	}

	return parsed.Choices[0].Message.Content, nil
}
