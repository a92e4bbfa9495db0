package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/clear-checky/checky-BE/internal/server"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Checky HTTP API server",
	Long: `Serve starts the backend API:

  POST   /contract/analyze              analyze a document
  POST   /upload/                       upload a contract file
  GET    /upload/status/{task_id}       upload lifecycle status
  GET    /upload/result/{task_id}       stored analysis result
  POST   /upload/save-analysis/{task_id} store an analysis result
  DELETE /upload/{task_id}              delete an upload
  POST   /chat/                         contract Q&A chat
  GET    /health                        health check

Set OPENAI_API_KEY (or AI_API_KEY) to enable inference; without it every
sentence is classified with the safe fallback.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default :8000)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load .env before the config snapshot picks up the environment
	if err := godotenv.Load(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Loaded .env")
	}

	cfg := loadConfig()
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	srv, err := server.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(ctx)
}
