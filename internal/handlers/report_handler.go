package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/Adwait4291/GroqResume/internal/models"
	"github.com/Adwait4291/GroqResume/internal/session"
)

type ReportHandler struct {
	sessions session.Store
}

func NewReportHandler(sessions session.Store) *ReportHandler {
	return &ReportHandler{
		sessions: sessions,
	}
}

// HandleGetSession handles GET /api/v1/session
func (h *ReportHandler) HandleGetSession(c *fiber.Ctx) error {
	sess := currentSession(c, h.sessions)

	// Build response based on phase
	response := models.SessionResponse{
		Phase:          string(sess.Phase),
		ResumeFilename: sess.ResumeFilename,
		HasResume:      sess.ResumeText != "",
	}

	// If succeeded, include the result
	if sess.Phase == session.PhaseSucceeded {
		response.Result = sess.Result
	}

	// If failed, include the error details
	if sess.Phase == session.PhaseFailed && sess.ErrorMessage != "" {
		response.ErrorMessage = &sess.ErrorMessage
		response.ErrorKind = sess.ErrorKind
	}

	return c.JSON(response)
}

// HandleDownloadReport handles GET /api/v1/report. It serves the latest
// analysis result as a pretty-printed JSON attachment.
func (h *ReportHandler) HandleDownloadReport(c *fiber.Ctx) error {
	sess := currentSession(c, h.sessions)

	if sess.Result == nil {
		return fiber.NewError(fiber.StatusNotFound, "no analysis result available for download")
	}

	artifact, err := json.MarshalIndent(sess.Result, "", "  ")
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resume_analysis.json"`)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(artifact)
}
