// Package extract turns uploaded text documents into the flat sentence
// stream the segmenter consumes.
package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/clear-checky/checky-BE/internal/model"
	"golang.org/x/net/html"
)

// FileType is the recognized upload format
type FileType string

const (
	FileTXT     FileType = "TXT"
	FileHTML    FileType = "HTML"
	FileUnknown FileType = "UNKNOWN"
)

// FileTypeFromName determines the file type from its extension
func FileTypeFromName(filename string) FileType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return FileTXT
	case ".html", ".htm":
		return FileHTML
	default:
		return FileUnknown
	}
}

// Extractor reads stored uploads and produces plain text. Binary
// formats (PDF, DOCX, images) are rejected at upload validation and
// never reach it.
type Extractor struct{}

// NewExtractor creates a new extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract reads the file and returns its plain text
func (e *Extractor) Extract(path string, kind FileType) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	switch kind {
	case FileTXT:
		data, err := io.ReadAll(f)
		if err != nil {
			return "", fmt.Errorf("read upload: %w", err)
		}
		return strings.TrimSpace(string(data)), nil

	case FileHTML:
		return VisibleText(f)

	default:
		return "", fmt.Errorf("unsupported file type %s", kind)
	}
}

// VisibleText extracts text nodes from HTML, skipping scripts/styles
func VisibleText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(buf.String()), nil
}

// SplitSentences splits plain text into sentences. Terminators are
// period/exclamation/question followed by whitespace or end of text;
// bare newlines also separate, since extracted contracts frequently
// lack terminal punctuation on clause lines.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		s := strings.TrimSpace(current.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	runes := []rune(text)
	for i, r := range runes {
		if r == '\n' {
			flush()
			continue
		}
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if i+1 >= len(runes) || runes[i+1] == ' ' || runes[i+1] == '\t' || runes[i+1] == '\n' {
				flush()
			}
		}
	}
	flush()

	return sentences
}

// Sentences produces the flat sentence stream with sequential opaque
// IDs and the undefined-equivalent risk tier
func Sentences(text string) []model.Sentence {
	parts := SplitSentences(text)
	out := make([]model.Sentence, 0, len(parts))
	for i, p := range parts {
		out = append(out, model.Sentence{
			ID:   fmt.Sprintf("s%d", i+1),
			Text: p,
			Risk: model.RiskSafe,
		})
	}
	return out
}
