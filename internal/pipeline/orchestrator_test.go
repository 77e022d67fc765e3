package pipeline

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dgallion1/docsight/internal/config"
)

func TestOrchestrator_SubmitQueueFullRecordsFailedJob(t *testing.T) {
	cfg := config.Config{MaxQueueSize: 1, JobTTL: time.Hour, WorkerCount: 1}
	o := NewOrchestrator(cfg, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// Workers are never started, so a single submission fills the queue.
	if _, err := o.Submit([]JobFile{{Name: "a.pdf", Data: []byte("x")}}, "Analyst", "Review"); err != nil {
		t.Fatalf("first submit should queue: %v", err)
	}

	job, err := o.Submit([]JobFile{{Name: "b.pdf", Data: []byte("x")}}, "Analyst", "Review")
	if err == nil {
		t.Fatal("expected queue-full error")
	}
	if job == nil {
		t.Fatal("expected the failed job record back")
	}

	snap := job.Snapshot()
	if snap.Status != StatusFailed || snap.Phase != "queue_full" {
		t.Errorf("expected failed/queue_full, got %s/%s", snap.Status, snap.Phase)
	}
	if len(snap.Progress.Errors) == 0 {
		t.Error("expected the overflow recorded in the job's error list")
	}
	if o.GetJob(job.ID) == nil {
		t.Error("failed job should remain pollable in the store")
	}
}

func TestOrchestrator_SubmitQueuesJob(t *testing.T) {
	cfg := config.Config{MaxQueueSize: 2, JobTTL: time.Hour, WorkerCount: 1}
	o := NewOrchestrator(cfg, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	job, err := o.Submit([]JobFile{{Name: "a.pdf", Data: []byte("x")}}, "Analyst", "Review")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if job.ID == "" {
		t.Error("expected a job ID")
	}
	if job.Status != StatusQueued {
		t.Errorf("expected status %s, got %s", StatusQueued, job.Status)
	}
	if o.QueueDepth() != 1 {
		t.Errorf("expected queue depth 1, got %d", o.QueueDepth())
	}
}
