package store

import (
	"testing"
	"time"

	"github.com/clear-checky/checky-BE/internal/model"
)

func TestStore_StatusLifecycle(t *testing.T) {
	s := New(time.Hour, time.Hour)

	if _, ok := s.Status("missing"); ok {
		t.Error("expected no status for unknown task")
	}

	s.SetStatus("task-1", StatusUploaded)
	e, ok := s.Status("task-1")
	if !ok || e.Status != StatusUploaded {
		t.Fatalf("expected uploaded status, got %+v, %v", e, ok)
	}
	created := e.CreatedAt

	s.SetStatus("task-1", StatusProcessing)
	e, ok = s.Status("task-1")
	if !ok || e.Status != StatusProcessing {
		t.Fatalf("expected processing status, got %+v, %v", e, ok)
	}
	if !e.CreatedAt.Equal(created) {
		t.Errorf("status update changed creation time: %v vs %v", e.CreatedAt, created)
	}
}

func TestStore_Results(t *testing.T) {
	s := New(time.Hour, time.Hour)

	if _, ok := s.Result("missing"); ok {
		t.Error("expected no result for unknown task")
	}

	result := model.AnalysisResult{
		ID:    "task-1",
		Title: "contract.txt",
		Articles: []model.Article{
			{ID: model.NumberedID(1), Title: "Article 1"},
		},
	}
	s.SaveResult("task-1", result)

	got, ok := s.Result("task-1")
	if !ok {
		t.Fatal("expected stored result")
	}
	if got.Title != "contract.txt" || len(got.Articles) != 1 {
		t.Errorf("unexpected result %+v", got)
	}
}

func TestStore_DeleteTask(t *testing.T) {
	s := New(time.Hour, time.Hour)

	s.SetStatus("task-1", StatusCompleted)
	s.SaveResult("task-1", model.AnalysisResult{ID: "task-1"})

	s.DeleteTask("task-1")

	if _, ok := s.Status("task-1"); ok {
		t.Error("expected status deleted")
	}
	if _, ok := s.Result("task-1"); ok {
		t.Error("expected result deleted")
	}
}

func TestStore_Expiry(t *testing.T) {
	s := New(20*time.Millisecond, time.Minute)

	s.SetStatus("task-1", StatusUploaded)
	time.Sleep(40 * time.Millisecond)

	if _, ok := s.Status("task-1"); ok {
		t.Error("expected status to expire with the TTL")
	}
}

func TestStore_TasksIndependent(t *testing.T) {
	s := New(time.Hour, time.Hour)

	s.SetStatus("task-1", StatusUploaded)
	s.SetStatus("task-2", StatusCompleted)
	s.DeleteTask("task-1")

	e, ok := s.Status("task-2")
	if !ok || e.Status != StatusCompleted {
		t.Errorf("unrelated task affected: %+v, %v", e, ok)
	}
}
