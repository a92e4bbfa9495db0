// Package store provides the explicit keyed stores for upload statuses
// and analysis results. Entries expire with the file retention TTL, so
// the stores never outlive the files they describe.
package store

import (
	"time"

	"github.com/clear-checky/checky-BE/internal/model"
	gocache "github.com/patrickmn/go-cache"
)

// Upload status values
const (
	StatusUploaded   = "uploaded"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
)

// StatusEntry tracks an upload's lifecycle
type StatusEntry struct {
	Status    string
	CreatedAt time.Time
}

// Store holds per-task state, passed by reference to the HTTP layer
// instead of living in process-wide globals
type Store struct {
	statuses *gocache.Cache
	results  *gocache.Cache
}

// New creates a store whose entries expire after ttl
func New(ttl, cleanupInterval time.Duration) *Store {
	return &Store{
		statuses: gocache.New(ttl, cleanupInterval),
		results:  gocache.New(ttl, cleanupInterval),
	}
}

// SetStatus records the status for a task, keeping the original
// creation time when one exists
func (s *Store) SetStatus(taskID, status string) {
	createdAt := time.Now()
	if e, ok := s.Status(taskID); ok {
		createdAt = e.CreatedAt
	}
	s.statuses.Set(taskID, StatusEntry{Status: status, CreatedAt: createdAt}, gocache.DefaultExpiration)
}

// Status returns the status entry for a task
func (s *Store) Status(taskID string) (StatusEntry, bool) {
	if v, ok := s.statuses.Get(taskID); ok {
		return v.(StatusEntry), true
	}
	return StatusEntry{}, false
}

// SaveResult stores a finished analysis under its task ID
func (s *Store) SaveResult(taskID string, result model.AnalysisResult) {
	s.results.Set(taskID, result, gocache.DefaultExpiration)
}

// Result returns the stored analysis for a task
func (s *Store) Result(taskID string) (model.AnalysisResult, bool) {
	if v, ok := s.results.Get(taskID); ok {
		return v.(model.AnalysisResult), true
	}
	return model.AnalysisResult{}, false
}

// DeleteTask drops all state for a task
func (s *Store) DeleteTask(taskID string) {
	s.statuses.Delete(taskID)
	s.results.Delete(taskID)
}
