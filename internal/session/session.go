package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/Adwait4291/GroqResume/internal/models"
)

// Phase tracks where a visitor is in the upload-then-analyze workflow.
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseAwaitingInput Phase = "awaiting_input"
	PhaseSubmitted     Phase = "submitted"
	PhaseSucceeded     Phase = "succeeded"
	PhaseFailed        Phase = "failed"
)

// Session holds one visitor's workflow state between requests. The resume
// text is kept server-side so a visitor can run several analyses against the
// same upload without sending the file again.
type Session struct {
	ID             uuid.UUID
	Phase          Phase
	ResumeText     string
	ResumeFilename string
	JobDescription string
	Result         *models.AnalysisResult
	ErrorMessage   string
	ErrorKind      string
	UpdatedAt      time.Time
}

// SetResume records a freshly extracted resume and discards any state left
// over from a previous analysis. A new upload always restarts the workflow.
func (s *Session) SetResume(text, filename string) {
	s.Phase = PhaseAwaitingInput
	s.ResumeText = text
	s.ResumeFilename = filename
	s.clearOutcome()
}

// ClearResume drops the stored resume, for example after a failed extraction.
func (s *Session) ClearResume() {
	s.Phase = PhaseIdle
	s.ResumeText = ""
	s.ResumeFilename = ""
	s.clearOutcome()
}

// BeginAnalysis marks the session as submitted while a completion request is
// in flight.
func (s *Session) BeginAnalysis(jobDescription string) {
	s.Phase = PhaseSubmitted
	s.JobDescription = jobDescription
	s.clearOutcome()
}

// CompleteAnalysis stores a successful result.
func (s *Session) CompleteAnalysis(result *models.AnalysisResult) {
	s.Phase = PhaseSucceeded
	s.Result = result
	s.ErrorMessage = ""
	s.ErrorKind = ""
}

// FailAnalysis records why the analysis could not produce a result. Any
// stale result is discarded so the session never reports both.
func (s *Session) FailAnalysis(kind, message string) {
	s.Phase = PhaseFailed
	s.ErrorKind = kind
	s.ErrorMessage = message
	s.Result = nil
}

func (s *Session) clearOutcome() {
	s.Result = nil
	s.ErrorMessage = ""
	s.ErrorKind = ""
}
