package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Adwait4291/GroqResume/internal/models"
)

func TestStoreCreateAndFind(t *testing.T) {
	store := NewStore(30*time.Minute, zap.NewNop())

	sess := store.Create()
	if sess.Phase != PhaseIdle {
		t.Fatalf("new session phase = %q, want %q", sess.Phase, PhaseIdle)
	}

	found, ok := store.Find(sess.ID)
	if !ok {
		t.Fatal("created session not found")
	}
	if found.ID != sess.ID {
		t.Fatalf("found session %s, want %s", found.ID, sess.ID)
	}
}

func TestStoreFindUnknownID(t *testing.T) {
	store := NewStore(30*time.Minute, zap.NewNop())

	if _, ok := store.Find(uuid.New()); ok {
		t.Fatal("expected unknown session to be absent")
	}
}

func TestStoreFindReturnsCopy(t *testing.T) {
	store := NewStore(30*time.Minute, zap.NewNop())
	sess := store.Create()

	found, _ := store.Find(sess.ID)
	found.ResumeText = "scribbled on without Save"

	again, _ := store.Find(sess.ID)
	if again.ResumeText != "" {
		t.Fatal("mutation leaked into the store without Save")
	}
}

func TestStoreSavePersistsChanges(t *testing.T) {
	store := NewStore(30*time.Minute, zap.NewNop())
	sess := store.Create()

	sess.SetResume("extracted resume text", "resume.pdf")
	store.Save(sess)

	found, _ := store.Find(sess.ID)
	if found.Phase != PhaseAwaitingInput {
		t.Fatalf("phase = %q, want %q", found.Phase, PhaseAwaitingInput)
	}
	if found.ResumeText != "extracted resume text" || found.ResumeFilename != "resume.pdf" {
		t.Fatalf("resume not persisted: %+v", found)
	}
	if found.UpdatedAt.IsZero() {
		t.Fatal("Save must stamp UpdatedAt")
	}
}

func TestStoreEvictsExpiredSessions(t *testing.T) {
	s := NewStore(30*time.Minute, zap.NewNop()).(*store)
	kept := s.Create()
	expired := s.Create()

	s.mu.Lock()
	s.sessions[expired.ID].UpdatedAt = time.Now().Add(-31 * time.Minute)
	s.mu.Unlock()

	s.evictExpired(time.Now())

	if _, ok := s.Find(expired.ID); ok {
		t.Fatal("expired session survived eviction")
	}
	if _, ok := s.Find(kept.ID); !ok {
		t.Fatal("fresh session was evicted")
	}
}

func TestStoreStartStop(t *testing.T) {
	store := NewStore(30*time.Minute, zap.NewNop())
	store.Start(context.Background())

	done := make(chan struct{})
	go func() {
		store.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestSessionTransitions(t *testing.T) {
	sess := &Session{Phase: PhaseIdle}

	sess.SetResume("resume text", "cv.pdf")
	if sess.Phase != PhaseAwaitingInput || sess.ResumeText != "resume text" {
		t.Fatalf("after SetResume: %+v", sess)
	}

	sess.BeginAnalysis("job description")
	if sess.Phase != PhaseSubmitted || sess.JobDescription != "job description" {
		t.Fatalf("after BeginAnalysis: %+v", sess)
	}

	result := &models.AnalysisResult{ScoreRationale: "solid match"}
	sess.CompleteAnalysis(result)
	if sess.Phase != PhaseSucceeded || sess.Result != result {
		t.Fatalf("after CompleteAnalysis: %+v", sess)
	}

	sess.FailAnalysis("provider_error", "upstream on fire")
	if sess.Phase != PhaseFailed || sess.Result != nil {
		t.Fatalf("after FailAnalysis: %+v", sess)
	}
	if sess.ErrorKind != "provider_error" || sess.ErrorMessage != "upstream on fire" {
		t.Fatalf("failure details not recorded: %+v", sess)
	}

	sess.ClearResume()
	if sess.Phase != PhaseIdle || sess.ResumeText != "" || sess.ErrorMessage != "" {
		t.Fatalf("after ClearResume: %+v", sess)
	}
}

func TestSetResumeDiscardsPreviousOutcome(t *testing.T) {
	sess := &Session{
		Phase:        PhaseFailed,
		ErrorKind:    "provider_error",
		ErrorMessage: "upstream on fire",
		Result:       &models.AnalysisResult{},
	}

	sess.SetResume("fresh resume", "cv2.pdf")

	if sess.Result != nil {
		t.Fatal("stale result kept after new upload")
	}
	if sess.ErrorKind != "" || sess.ErrorMessage != "" {
		t.Fatal("stale error kept after new upload")
	}
}
