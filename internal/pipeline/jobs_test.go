package pipeline

import (
	"testing"
	"time"

	"github.com/dgallion1/docsight/internal/analyze"
)

func TestNewJob_Defaults(t *testing.T) {
	files := []JobFile{
		{Name: "a.pdf", Data: []byte("x")},
		{Name: "b.txt", Data: []byte("y")},
	}
	job := NewJob("job-1", files, "Travel Planner", "Plan a trip")

	if job.Status != StatusQueued {
		t.Errorf("expected status %q, got %q", StatusQueued, job.Status)
	}
	if job.Phase != "queued" {
		t.Errorf("expected phase %q, got %q", "queued", job.Phase)
	}
	if job.Progress.TotalDocuments != 2 {
		t.Errorf("expected 2 total documents, got %d", job.Progress.TotalDocuments)
	}
	if got := job.Files(); len(got) != 2 || got[0].Name != "a.pdf" {
		t.Errorf("unexpected files: %+v", got)
	}
}

func TestJob_StateTransitions(t *testing.T) {
	job := NewJob("test-1", nil, "", "analyze")

	transitions := []struct {
		status JobStatus
		phase  string
	}{
		{StatusExtracting, "extracting"},
		{StatusAnalyzing, "analyzing"},
		{StatusCompleted, "done"},
	}

	for _, tr := range transitions {
		before := job.UpdatedAt
		// Small sleep to ensure time difference is detectable.
		time.Sleep(time.Millisecond)
		job.SetStatus(tr.status, tr.phase)

		if job.Status != tr.status {
			t.Errorf("expected status %q, got %q", tr.status, job.Status)
		}
		if job.Phase != tr.phase {
			t.Errorf("expected phase %q, got %q", tr.phase, job.Phase)
		}
		if !job.UpdatedAt.After(before) {
			t.Errorf("expected UpdatedAt to advance after SetStatus(%q)", tr.status)
		}
	}
}

func TestJob_AddError(t *testing.T) {
	job := NewJob("err-test", nil, "", "analyze")
	job.AddError("no extractable content: bad.pdf")
	job.AddError("no extractable content: worse.pdf")

	snap := job.Snapshot()
	if len(snap.Progress.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(snap.Progress.Errors))
	}
	if snap.Progress.Errors[0] != "no extractable content: bad.pdf" {
		t.Errorf("unexpected first error %q", snap.Progress.Errors[0])
	}
}

func TestJob_IncrDocumentsExtracted(t *testing.T) {
	job := NewJob("incr-test", nil, "", "analyze")
	job.IncrDocumentsExtracted()
	job.IncrDocumentsExtracted()
	job.IncrDocumentsExtracted()

	snap := job.Snapshot()
	if snap.Progress.DocumentsExtracted != 3 {
		t.Errorf("expected 3 documents extracted, got %d", snap.Progress.DocumentsExtracted)
	}
}

func TestJob_ResultLifecycle(t *testing.T) {
	job := NewJob("result-test", nil, "Student", "learn algorithms")
	if job.Result() != nil {
		t.Fatal("expected nil result before completion")
	}

	job.SetResult(analyze.Result{
		Metadata: analyze.Metadata{Persona: "Student", JobToBeDone: "learn algorithms"},
	})
	got := job.Result()
	if got == nil {
		t.Fatal("expected result after SetResult")
	}
	if got.Metadata.Persona != "Student" {
		t.Errorf("expected persona %q, got %q", "Student", got.Metadata.Persona)
	}
}

func TestJob_ReleaseFiles(t *testing.T) {
	job := NewJob("release-test", []JobFile{{Name: "a.txt", Data: []byte("x")}}, "", "analyze")
	job.ReleaseFiles()
	if got := job.Files(); got != nil {
		t.Errorf("expected nil files after release, got %+v", got)
	}
}

func TestJob_SnapshotErrorsNotNil(t *testing.T) {
	// Snapshot should always return non-nil errors slice.
	job := NewJob("snap-test", nil, "", "analyze")
	snap := job.Snapshot()
	if snap.Progress.Errors == nil {
		t.Error("expected non-nil errors slice in snapshot")
	}
	if len(snap.Progress.Errors) != 0 {
		t.Errorf("expected empty errors, got %d", len(snap.Progress.Errors))
	}
}

func TestJobStore_PutGet(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := NewJob("store-1", nil, "", "analyze")
	store.Put(job)

	got := store.Get("store-1")
	if got == nil {
		t.Fatal("expected to get job back")
	}
	if got.ID != "store-1" {
		t.Errorf("expected ID %q, got %q", "store-1", got.ID)
	}
}

func TestJobStore_GetMissing(t *testing.T) {
	store := NewJobStore(time.Hour)
	if store.Get("nonexistent") != nil {
		t.Error("expected nil for missing job")
	}
}

func TestJobStore_TTLCleanup(t *testing.T) {
	store := NewJobStore(50 * time.Millisecond)

	expired := NewJob("old", nil, "", "analyze")
	store.Put(expired)

	// Wait for the TTL to pass.
	time.Sleep(100 * time.Millisecond)

	// Add a fresh job.
	fresh := NewJob("new", nil, "", "analyze")
	store.Put(fresh)

	store.Cleanup()

	if store.Get("old") != nil {
		t.Error("expected expired job to be cleaned up")
	}
	if store.Get("new") == nil {
		t.Error("expected fresh job to survive cleanup")
	}
}

func TestJobStore_CleanupEmpty(t *testing.T) {
	store := NewJobStore(time.Hour)
	// Should not panic on empty store.
	store.Cleanup()
}
