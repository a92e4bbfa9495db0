// Package server exposes the analysis pipeline, upload handling and
// chat façade over HTTP.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/clear-checky/checky-BE/internal/analyze"
	"github.com/clear-checky/checky-BE/internal/chat"
	"github.com/clear-checky/checky-BE/internal/extract"
	"github.com/clear-checky/checky-BE/internal/llm"
	"github.com/clear-checky/checky-BE/internal/model"
	"github.com/clear-checky/checky-BE/internal/store"
	"github.com/clear-checky/checky-BE/internal/sweeper"
	"github.com/clear-checky/checky-BE/internal/upload"
	"github.com/gorilla/mux"
)

// Server wires the pipeline, stores and collaborators behind the HTTP
// routes
type Server struct {
	cfg       *model.Config
	pipeline  *analyze.Pipeline
	uploads   *upload.Manager
	store     *store.Store
	extractor *extract.Extractor
	chat      *chat.Service
	sweeper   *sweeper.Sweeper
}

// New builds a fully wired server from configuration
func New(cfg *model.Config) (*Server, error) {
	pipeline, err := analyze.NewPipeline(cfg)
	if err != nil {
		return nil, fmt.Errorf("build pipeline: %w", err)
	}

	uploads, err := upload.NewManager(cfg.Upload)
	if err != nil {
		return nil, fmt.Errorf("build upload manager: %w", err)
	}

	sw, err := sweeper.New(cfg.Upload.Dir, cfg.Upload.TTL, cfg.Upload.SweepSchedule)
	if err != nil {
		return nil, fmt.Errorf("build sweeper: %w", err)
	}

	provider, err := llm.NewProvider(cfg.LLM)
	if err != nil {
		log.Printf("chat provider unavailable: %v", err)
		provider = nil
	}

	return &Server{
		cfg:       cfg,
		pipeline:  pipeline,
		uploads:   uploads,
		store:     store.New(cfg.Upload.TTL, time.Hour),
		extractor: extract.NewExtractor(),
		chat:      chat.NewService(provider),
		sweeper:   sw,
	}, nil
}

// Router builds the route table
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	r.HandleFunc("/contract/analyze", s.handleAnalyze).Methods(http.MethodPost)

	r.HandleFunc("/upload/", s.handleUpload).Methods(http.MethodPost)
	r.HandleFunc("/upload/status/{task_id}", s.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/upload/result/{task_id}", s.handleResult).Methods(http.MethodGet)
	r.HandleFunc("/upload/save-analysis/{task_id}", s.handleSaveAnalysis).Methods(http.MethodPost)
	r.HandleFunc("/upload/{task_id}", s.handleDelete).Methods(http.MethodDelete)

	r.HandleFunc("/chat/", s.handleChat).Methods(http.MethodPost)

	return r
}

// ListenAndServe starts the sweeper and serves until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.sweeper.Start()
	defer s.sweeper.Stop()

	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // classification fan-out can be slow
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", s.cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
