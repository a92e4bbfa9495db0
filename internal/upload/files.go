// Package upload handles validated storage of uploaded contract files
// under opaque task IDs.
package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/clear-checky/checky-BE/internal/model"
	"github.com/google/uuid"
)

// Extensions accepted for text extraction. Binary formats (PDF, DOCX,
// HWP, images) are out of scope and rejected with a clear message.
var allowedExtensions = map[string]bool{
	".txt":  true,
	".html": true,
	".htm":  true,
}

// Manager stores uploads in a flat directory, one file per task ID
type Manager struct {
	dir      string
	maxBytes int64
}

// NewManager creates the upload directory if needed
func NewManager(cfg model.UploadConfig) (*Manager, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Manager{dir: cfg.Dir, maxBytes: cfg.MaxFileBytes}, nil
}

// Dir returns the upload directory
func (m *Manager) Dir() string {
	return m.dir
}

// Validate checks the filename extension and declared size
func (m *Manager) Validate(filename string, size int64) error {
	if size > m.maxBytes {
		return fmt.Errorf("file too large: max %d MB allowed", m.maxBytes/(1024*1024))
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return fmt.Errorf("unsupported file type %q: allowed types are .txt, .html, .htm", ext)
	}
	return nil
}

// Save stores the upload under a fresh task ID and returns the ID and
// the stored path
func (m *Manager) Save(filename string, r io.Reader) (taskID, path string, err error) {
	taskID = uuid.NewString()
	ext := strings.ToLower(filepath.Ext(filename))
	path = filepath.Join(m.dir, taskID+ext)

	f, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, io.LimitReader(r, m.maxBytes+1)); err != nil {
		os.Remove(path)
		return "", "", fmt.Errorf("write upload file: %w", err)
	}

	info, err := f.Stat()
	if err == nil && info.Size() > m.maxBytes {
		os.Remove(path)
		return "", "", fmt.Errorf("file too large: max %d MB allowed", m.maxBytes/(1024*1024))
	}

	return taskID, path, nil
}

// Find returns the stored path for a task ID
func (m *Manager) Find(taskID string) (string, bool) {
	matches, err := filepath.Glob(filepath.Join(m.dir, taskID+".*"))
	if err != nil || len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}

// Delete removes the stored file for a task ID
func (m *Manager) Delete(taskID string) error {
	path, ok := m.Find(taskID)
	if !ok {
		return os.ErrNotExist
	}
	return os.Remove(path)
}
