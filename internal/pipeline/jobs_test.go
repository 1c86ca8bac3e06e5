package pipeline

import (
	"testing"
	"time"

	"github.com/dgallion1/docoutline/internal/doctree"
	"github.com/dgallion1/docoutline/internal/outline"
)

func TestContentHashHex_Consistency(t *testing.T) {
	data := []byte("hello world")
	h1 := ContentHashHex(data)
	h2 := ContentHashHex(data)
	if h1 != h2 {
		t.Errorf("expected identical hashes, got %q and %q", h1, h2)
	}
	// SHA-256 of "hello world" is well-known.
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	if h1 != want {
		t.Errorf("expected hash %q, got %q", want, h1)
	}
}

func TestContentHashHex_EmptyInput(t *testing.T) {
	h := ContentHashHex([]byte{})
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if h != want {
		t.Errorf("expected hash %q, got %q", want, h)
	}
}

func TestNewJob(t *testing.T) {
	a := NewJob("a.pdf", []byte("x"))
	b := NewJob("a.pdf", []byte("x"))
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("expected distinct non-empty IDs, got %q and %q", a.ID, b.ID)
	}
	if len(a.ID) != 36 {
		t.Errorf("expected UUID job ID, got %q", a.ID)
	}
	if a.Status != StatusQueued {
		t.Errorf("expected status %q, got %q", StatusQueued, a.Status)
	}
	if a.ContentHash != ContentHashHex([]byte("x")) {
		t.Errorf("unexpected content hash %q", a.ContentHash)
	}
	if string(a.FileData()) != "x" {
		t.Errorf("expected file data to be kept, got %q", a.FileData())
	}
}

func TestJob_StateTransitions(t *testing.T) {
	job := NewJob("t.pdf", nil)

	transitions := []struct {
		status JobStatus
		phase  string
	}{
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

func TestJob_ResultReleasesUpload(t *testing.T) {
	job := NewJob("t.pdf", []byte("payload"))
	if _, ok := job.Result(); ok {
		t.Fatal("expected no result before completion")
	}

	res := doctree.Result{Title: "T", Outline: []doctree.Heading{}}
	job.SetResult(res, outline.Report{File: "t.pdf", Strategy: "hybrid"})

	got, ok := job.Result()
	if !ok || got.Title != "T" {
		t.Errorf("expected stored result, got %+v (ok=%v)", got, ok)
	}
	if job.FileData() != nil {
		t.Error("expected file data to be released")
	}
	if snap := job.Snapshot(); snap.Report == nil || snap.Report.Strategy != "hybrid" {
		t.Errorf("expected report in snapshot, got %+v", snap.Report)
	}
}

func TestJob_AddError(t *testing.T) {
	job := NewJob("err.pdf", nil)
	job.AddError("open failed")
	job.AddError("second")

	snap := job.Snapshot()
	if len(snap.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(snap.Errors))
	}
	if snap.Errors[0] != "open failed" {
		t.Errorf("expected first error %q, got %q", "open failed", snap.Errors[0])
	}
}

func TestJob_SnapshotErrorsNotNil(t *testing.T) {
	snap := NewJob("snap.pdf", nil).Snapshot()
	if snap.Errors == nil {
		t.Error("expected non-nil errors slice in snapshot")
	}
}

func TestJobStore_PutGet(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := &Job{ID: "store-1", UpdatedAt: time.Now()}
	store.Put(job)

	got := store.Get("store-1")
	if got == nil {
		t.Fatal("expected to get job back")
	}
	if got.ID != "store-1" {
		t.Errorf("expected ID %q, got %q", "store-1", got.ID)
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 job, got %d", store.Len())
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

	expired := &Job{ID: "old", UpdatedAt: time.Now()}
	store.Put(expired)

	// Wait for the TTL to pass.
	time.Sleep(100 * time.Millisecond)

	fresh := &Job{ID: "new", UpdatedAt: time.Now()}
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
