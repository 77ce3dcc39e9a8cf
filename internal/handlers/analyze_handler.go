package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Adwait4291/GroqResume/internal/apperr"
	"github.com/Adwait4291/GroqResume/internal/models"
	"github.com/Adwait4291/GroqResume/internal/services"
	"github.com/Adwait4291/GroqResume/internal/session"
)

type AnalyzeHandler struct {
	sessions    session.Store
	analyzer    services.AnalyzerService
	pdfParser   services.PDFParserService
	maxFileSize int64
	logger      *zap.Logger
}

func NewAnalyzeHandler(
	sessions session.Store,
	analyzer services.AnalyzerService,
	pdfParser services.PDFParserService,
	maxFileSize int64,
	logger *zap.Logger,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		sessions:    sessions,
		analyzer:    analyzer,
		pdfParser:   pdfParser,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// HandleAnalyze handles POST /api/v1/analyze. The form may carry a resume
// file alongside the job description; it is extracted only when it differs
// from the one already on the session, so resubmitting the same file does
// not pay for extraction twice.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	sess := currentSession(c, h.sessions)

	if fileHeader, err := c.FormFile("resume"); err == nil {
		if fileHeader.Filename != sess.ResumeFilename || sess.ResumeText == "" {
			if err := validateResumeFile(fileHeader, h.maxFileSize); err != nil {
				return err
			}
			data, err := readMultipartFile(fileHeader)
			if err != nil {
				return apperr.Wrap(apperr.KindValidation, "failed to read uploaded file", err)
			}
			text, err := h.pdfParser.ExtractText(data)
			if err != nil {
				sess.ClearResume()
				h.sessions.Save(sess)
				return err
			}
			sess.SetResume(text, fileHeader.Filename)
		}
	}

	if sess.ResumeText == "" {
		return apperr.New(apperr.KindValidation, "please upload a resume PDF before requesting an analysis")
	}

	jobDescription := c.FormValue("job_description")

	sess.BeginAnalysis(jobDescription)
	h.sessions.Save(sess)

	result, err := h.analyzer.Analyze(c.UserContext(), models.AnalysisRequest{
		ResumeText:     sess.ResumeText,
		JobDescription: jobDescription,
	})
	if err != nil {
		sess.FailAnalysis(string(apperr.KindOf(err)), err.Error())
		h.sessions.Save(sess)
		return err
	}

	sess.CompleteAnalysis(result)
	h.sessions.Save(sess)

	h.logger.Info("analysis completed",
		zap.String("session_id", sess.ID.String()),
		zap.String("match_score", result.MatchScore.String()))

	return c.JSON(models.AnalyzeResponse{
		Status: string(session.PhaseSucceeded),
		Result: result,
	})
}
