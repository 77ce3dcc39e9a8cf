package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Adwait4291/GroqResume/internal/apperr"
	"github.com/Adwait4291/GroqResume/internal/logger"
	"github.com/Adwait4291/GroqResume/internal/models"
)

// Inputs shorter than these cannot be analyzed in a meaningful way, so they
// are rejected before any network call.
const (
	MinResumeLength         = 150
	MinJobDescriptionLength = 100
)

const (
	analysisTemperature     float32 = 0.4
	analysisMaxOutputTokens int32   = 4096
)

type AnalyzerService interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error)
}

type analyzerService struct {
	completion    CompletionService
	promptBuilder *PromptBuilder
	normalizer    *Normalizer
	retryPolicy   RetryPolicy
	logger        *zap.Logger
}

func NewAnalyzerService(completion CompletionService, retryPolicy RetryPolicy, log *zap.Logger) AnalyzerService {
	return &analyzerService{
		completion:    completion,
		promptBuilder: NewPromptBuilder(),
		normalizer:    NewNormalizer(),
		retryPolicy:   retryPolicy,
		logger:        log,
	}
}

// Analyze runs the full pipeline for one request: validate, build the
// prompt, call the completion provider, normalize the reply.
func (a *analyzerService) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	prompt := a.promptBuilder.BuildAnalysisPrompt(req.ResumeText, req.JobDescription)
	a.logger.Info("sending analysis request",
		zap.String("model", a.completion.Model()),
		zap.Int("prompt_length", len(prompt)))

	start := time.Now()
	response, err := completeWithRetry(ctx, a.completion, CompletionRequest{
		System:          SystemInstruction,
		Prompt:          prompt,
		Temperature:     analysisTemperature,
		MaxOutputTokens: analysisMaxOutputTokens,
	}, a.retryPolicy, a.logger)
	if err != nil {
		a.logger.Error("completion request failed",
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return nil, err
	}

	a.logger.Info("completion response received",
		zap.Duration("duration", time.Since(start)),
		zap.Int("response_length", len(response)))
	a.logger.Debug("raw completion response",
		zap.String("response", logger.TruncateForLog(response, 500)))

	result, err := a.normalizer.Normalize(response)
	if err != nil {
		a.logger.Error("failed to normalize completion response", zap.Error(err))
		return nil, err
	}

	return result, nil
}

func validateRequest(req models.AnalysisRequest) error {
	if len(req.ResumeText) < MinResumeLength {
		return apperr.Newf(apperr.KindValidation,
			"resume text missing or too short (needs at least %d chars)", MinResumeLength)
	}
	if len(req.JobDescription) < MinJobDescriptionLength {
		return apperr.Newf(apperr.KindValidation,
			"job description is too short (needs at least %d chars)", MinJobDescriptionLength)
	}
	return nil
}
