package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Adwait4291/GroqResume/internal/apperr"
	"github.com/Adwait4291/GroqResume/internal/models"
	"github.com/Adwait4291/GroqResume/internal/services"
	"github.com/Adwait4291/GroqResume/internal/session"
)

type UploadHandler struct {
	sessions    session.Store
	pdfParser   services.PDFParserService
	maxFileSize int64
	logger      *zap.Logger
}

func NewUploadHandler(
	sessions session.Store,
	pdfParser services.PDFParserService,
	maxFileSize int64,
	logger *zap.Logger,
) *UploadHandler {
	return &UploadHandler{
		sessions:    sessions,
		pdfParser:   pdfParser,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// HandleUpload handles POST /api/v1/resume. The PDF is read into memory,
// its text extracted and stored on the session; the file itself is never
// written to disk.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return apperr.New(apperr.KindValidation, "no resume file uploaded. Please upload a PDF file as 'resume'")
	}

	if err := validateResumeFile(fileHeader, h.maxFileSize); err != nil {
		return err
	}

	data, err := readMultipartFile(fileHeader)
	if err != nil {
		return apperr.Wrap(apperr.KindValidation, "failed to read uploaded file", err)
	}

	sess := currentSession(c, h.sessions)

	text, err := h.pdfParser.ExtractText(data)
	if err != nil {
		// A resume that cannot be read must not linger in the session.
		sess.ClearResume()
		h.sessions.Save(sess)
		return err
	}

	sess.SetResume(text, fileHeader.Filename)
	h.sessions.Save(sess)

	h.logger.Info("resume text extracted",
		zap.String("session_id", sess.ID.String()),
		zap.String("filename", fileHeader.Filename),
		zap.Int("chars", len(text)))

	return c.Status(fiber.StatusCreated).JSON(models.UploadResponse{
		Filename:       fileHeader.Filename,
		CharacterCount: len(text),
		ExtractedText:  text,
	})
}
