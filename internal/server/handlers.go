package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/clear-checky/checky-BE/internal/chat"
	"github.com/clear-checky/checky-BE/internal/extract"
	"github.com/clear-checky/checky-BE/internal/model"
	"github.com/clear-checky/checky-BE/internal/store"
	"github.com/gorilla/mux"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Checky API server is running",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// handleAnalyze accepts either pre-segmented articles or a flat
// sentence stream; flat input runs the full segmentation pass first
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req model.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var resp *model.AnalyzeResponse
	if len(req.Articles) > 0 {
		resp = s.pipeline.AnalyzeArticles(r.Context(), req.Articles)
	} else {
		resp = s.pipeline.AnalyzeSentences(r.Context(), req.Sentences)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.cfg.Upload.MaxFileBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	if err := s.uploads.Validate(header.Filename, header.Size); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	taskID, path, err := s.uploads.Save(header.Filename, file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.store.SetStatus(taskID, store.StatusUploaded)

	// Eager extraction; a failure does not fail the upload
	extracted := ""
	kind := extract.FileTypeFromName(header.Filename)
	if text, err := s.extractor.Extract(path, kind); err != nil {
		log.Printf("extract %s: %v", taskID, err)
	} else {
		extracted = text
	}

	writeJSON(w, http.StatusOK, model.FileUploadResponse{
		Success:       true,
		Message:       "file uploaded successfully",
		TaskID:        taskID,
		FileName:      header.Filename,
		FileSize:      header.Size,
		FileType:      string(kind),
		ExtractedText: extracted,
	})
}

// expiredGone enforces the retention TTL on access: an expired file is
// removed immediately and reported as gone
func (s *Server) expiredGone(w http.ResponseWriter, taskID string) bool {
	path, ok := s.uploads.Find(taskID)
	if !ok {
		writeError(w, http.StatusNotFound, "file not found")
		return true
	}
	if s.sweeper.Expired(path) {
		if err := s.sweeper.RemoveNow(path); err != nil {
			log.Printf("remove expired %s: %v", taskID, err)
		}
		s.store.DeleteTask(taskID)
		writeError(w, http.StatusGone, fmt.Sprintf("file expired and was deleted (%s TTL)", s.cfg.Upload.TTL))
		return true
	}
	return false
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["task_id"]
	if s.expiredGone(w, taskID) {
		return
	}

	entry, ok := s.store.Status(taskID)
	if !ok {
		s.store.SetStatus(taskID, store.StatusUploaded)
		entry, _ = s.store.Status(taskID)
	}

	// Staged transitions while the analysis runs client-side
	status := entry.Status
	if status != store.StatusCompleted {
		switch elapsed := time.Since(entry.CreatedAt); {
		case elapsed < 5*time.Second:
			status = store.StatusUploaded
		case elapsed < 10*time.Second:
			status = store.StatusProcessing
		default:
			status = store.StatusCompleted
		}
		s.store.SetStatus(taskID, status)
	}

	messages := map[string]string{
		store.StatusUploaded:   "file uploaded",
		store.StatusProcessing: "analysis in progress",
		store.StatusCompleted:  "analysis complete",
	}
	writeJSON(w, http.StatusOK, model.UploadStatusResponse{
		TaskID:  taskID,
		Status:  status,
		Message: messages[status],
	})
}

func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["task_id"]
	if s.expiredGone(w, taskID) {
		return
	}

	result, ok := s.store.Result(taskID)
	if !ok {
		writeError(w, http.StatusNotFound, "no analysis result for this task")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSaveAnalysis(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["task_id"]

	var analysis model.AnalyzeResponse
	if err := json.NewDecoder(r.Body).Decode(&analysis); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.store.SaveResult(taskID, model.AnalysisResult{
		ID:       taskID,
		Title:    "Contract analysis",
		Articles: analysis.Articles,
	})
	s.store.SetStatus(taskID, store.StatusCompleted)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "analysis result saved",
	})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["task_id"]

	if err := s.uploads.Delete(taskID); err != nil {
		writeError(w, http.StatusNotFound, "file not found")
		return
	}
	s.store.DeleteTask(taskID)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "file deleted",
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is empty")
		return
	}

	reply := s.chat.Respond(r.Context(), req.Message, req.ConversationHistory)

	writeJSON(w, http.StatusOK, model.ChatResponse{
		Message:             reply,
		ConversationHistory: chat.AppendHistory(req.ConversationHistory, req.Message, reply),
		Timestamp:           time.Now(),
	})
}
