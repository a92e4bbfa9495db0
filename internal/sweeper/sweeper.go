// Package sweeper deletes stored upload files once their retention TTL
// has passed, independent of the analysis pipeline.
package sweeper

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweeper removes files in a directory older than the TTL on a cron
// schedule. Expired files are also checked on access via Expired.
type Sweeper struct {
	dir  string
	ttl  time.Duration
	cron *cron.Cron
}

// New creates a sweeper and registers the sweep schedule
func New(dir string, ttl time.Duration, schedule string) (*Sweeper, error) {
	s := &Sweeper{
		dir:  dir,
		ttl:  ttl,
		cron: cron.New(),
	}

	if _, err := s.cron.AddFunc(schedule, func() {
		if n, err := s.SweepNow(); err != nil {
			log.Printf("sweep failed: %v", err)
		} else if n > 0 {
			log.Printf("sweep removed %d expired file(s)", n)
		}
	}); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}

	return s, nil
}

// Start begins scheduled sweeping
func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop stops scheduled sweeping and waits for a running sweep
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// SweepNow removes all expired files and returns how many were deleted
func (s *Sweeper) SweepNow() (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read upload dir: %w", err)
	}

	deleted := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		if s.Expired(path) {
			if err := os.Remove(path); err != nil {
				log.Printf("sweep: remove %s: %v", entry.Name(), err)
				continue
			}
			deleted++
		}
	}
	return deleted, nil
}

// Expired reports whether the file at path is past its TTL. Missing
// files count as expired.
func (s *Sweeper) Expired(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return true
	}
	return time.Since(info.ModTime()) > s.ttl
}

// RemoveNow deletes a specific file immediately
func (s *Sweeper) RemoveNow(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}
