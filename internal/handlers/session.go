package handlers

import (
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Adwait4291/GroqResume/internal/apperr"
	"github.com/Adwait4291/GroqResume/internal/session"
)

const sessionCookie = "analyzer_session"

// currentSession resolves the visitor's session from the cookie, creating a
// fresh one (and setting the cookie) when none exists or it has expired.
func currentSession(c *fiber.Ctx, sessions session.Store) *session.Session {
	if raw := c.Cookies(sessionCookie); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			if sess, ok := sessions.Find(id); ok {
				return sess
			}
		}
	}

	sess := sessions.Create()
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    sess.ID.String(),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return sess
}

func validateResumeFile(fh *multipart.FileHeader, maxFileSize int64) error {
	if fh.Size > maxFileSize {
		return apperr.Newf(apperr.KindValidation, "resume file too large. Max size: %d bytes", maxFileSize)
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".pdf") {
		return apperr.New(apperr.KindValidation, "only PDF resumes are supported")
	}
	return nil
}

func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
