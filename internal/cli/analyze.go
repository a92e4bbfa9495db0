package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/clear-checky/checky-BE/internal/analyze"
	"github.com/clear-checky/checky-BE/internal/extract"
	"github.com/spf13/cobra"
)

var (
	analyzeOut     string
	analyzeTimeout time.Duration
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a local contract file",
	Long: `Analyze extracts text from a local .txt or .html contract, segments
it into articles, classifies every sentence's risk tier, applies the
escalation rules and prints the annotated document with counts and the
safety percentage as JSON.

Example:
  checky analyze contract.txt
  checky analyze contract.html --out report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeOut, "out", "", "output JSON path (default: stdout)")
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 5*time.Minute, "overall analysis timeout")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	kind := extract.FileTypeFromName(path)

	cfg := loadConfig()

	extractor := extract.NewExtractor()
	text, err := extractor.Extract(path, kind)
	if err != nil {
		return err
	}
	sentences := extract.Sentences(text)

	if verbose {
		fmt.Fprintf(os.Stderr, "Extracted %d sentences from %s\n", len(sentences), path)
	}

	pipeline, err := analyze.NewPipeline(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	resp := pipeline.AnalyzeSentences(ctx, sentences)

	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if analyzeOut == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(analyzeOut, data, 0o644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Wrote %s\n", analyzeOut)
	}
	return nil
}
