package model

import (
	"encoding/json"
	"fmt"
)

// Sentinel names for the two non-numbered articles
const (
	PreambleName     = "preamble"
	UnclassifiedName = "unclassified"
)

// ArticleID identifies an article: either a clause number or one of the
// sentinel names for preamble / unclassified residue. It marshals as an
// integer for numbered clauses and as a string otherwise.
type ArticleID struct {
	Number int
	Name   string
}

// NumberedID returns the ID for clause number n
func NumberedID(n int) ArticleID {
	return ArticleID{Number: n}
}

// PreambleID returns the sentinel ID for the preamble article
func PreambleID() ArticleID {
	return ArticleID{Name: PreambleName}
}

// UnclassifiedID returns the sentinel ID for the unclassified residue
func UnclassifiedID() ArticleID {
	return ArticleID{Name: UnclassifiedName}
}

// IsNumbered reports whether the ID refers to a numbered clause
func (id ArticleID) IsNumbered() bool {
	return id.Name == ""
}

func (id ArticleID) String() string {
	if id.Name != "" {
		return id.Name
	}
	return fmt.Sprintf("%d", id.Number)
}

// MarshalJSON emits an int for numbered clauses, a string for sentinels
func (id ArticleID) MarshalJSON() ([]byte, error) {
	if id.Name != "" {
		return json.Marshal(id.Name)
	}
	return json.Marshal(id.Number)
}

// UnmarshalJSON accepts either an int or a string
func (id *ArticleID) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*id = ArticleID{Number: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("article id must be int or string: %w", err)
	}
	*id = ArticleID{Name: s}
	return nil
}

// Article is a group of sentences under a single clause heading.
// A document is an ordered sequence of articles: preamble first (if
// present), numbered clauses in first-seen order, unclassified residue
// last (if present).
type Article struct {
	ID        ArticleID  `json:"id"`
	Title     string     `json:"title"`
	Sentences []Sentence `json:"sentences"`
}

// Counts holds per-tier sentence counts across a document
type Counts struct {
	Danger  int `json:"danger"`
	Warning int `json:"warning"`
	Safe    int `json:"safe"`
	Total   int `json:"total"`
}

// AnalyzeRequest is the document submitted for analysis: either
// pre-segmented articles or a flat sentence stream.
type AnalyzeRequest struct {
	Articles  []Article  `json:"articles,omitempty"`
	Sentences []Sentence `json:"sentences,omitempty"`
}

// AnalyzeResponse is the finished document plus aggregate metrics
type AnalyzeResponse struct {
	Articles      []Article `json:"articles"`
	Counts        Counts    `json:"counts"`
	SafetyPercent float64   `json:"safety_percent"`
}

// AnalysisResult is a stored analysis keyed by upload task ID
type AnalysisResult struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Articles []Article `json:"articles"`
}
