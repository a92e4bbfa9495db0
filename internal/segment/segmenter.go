// Package segment reconstructs the article/clause structure of a
// contract from a flat, order-preserving sentence stream.
package segment

import (
	"github.com/clear-checky/checky-BE/internal/model"
	"github.com/clear-checky/checky-BE/internal/rules"
)

// event is the transition input for one sentence of the scan
type event int

const (
	evPreamble event = iota
	evBoilerplate
	evClauseMarker
	evContinuation
)

// Segmenter groups a sentence stream into articles: preamble first (if
// present), numbered clauses in first-seen order, then unclassified
// residue. Construction is append-only; nothing is removed mid-scan.
type Segmenter struct {
	cat *rules.Catalogue
}

// NewSegmenter creates a segmenter over the given pattern catalogue
func NewSegmenter(cat *rules.Catalogue) *Segmenter {
	return &Segmenter{cat: cat}
}

// classify maps a sentence to its transition input. Priority order is
// fixed: preamble beats clause marker, boilerplate only routes to
// residue while no clause is open.
func (s *Segmenter) classify(text string, clauseOpen bool) (event, rules.ClauseMarker) {
	if s.cat.IsPreamble(text) {
		return evPreamble, rules.ClauseMarker{}
	}
	if !clauseOpen && s.cat.IsBoilerplate(text) {
		return evBoilerplate, rules.ClauseMarker{}
	}
	if m, ok := s.cat.MatchClauseMarker(text); ok {
		return evClauseMarker, m
	}
	return evContinuation, rules.ClauseMarker{}
}

// scanState tracks the open clause and the first-seen ordering of
// clause numbers, separately from the number lookup so that a repeated
// number keeps its original position.
type scanState struct {
	preamble     []model.Sentence
	unclassified []model.Sentence

	order    []int
	byNumber map[int]*model.Article
	current  int // open clause number, or -1
}

// Segment scans the sentences in order and returns the clause-grouped
// document. Sentence text is stored after marker stripping only;
// semantic content is never altered.
func (s *Segmenter) Segment(sentences []model.Sentence) []model.Article {
	st := &scanState{
		byNumber: make(map[int]*model.Article),
		current:  -1,
	}

	for _, sent := range sentences {
		ev, marker := s.classify(sent.Text, st.current >= 0)

		switch ev {
		case evPreamble:
			// Routed independently of clause state; the scan's clause
			// pointer does not advance.
			st.preamble = append(st.preamble, sent)

		case evBoilerplate:
			st.unclassified = append(st.unclassified, sent)

		case evClauseMarker:
			s.openClause(st, sent, marker)

		case evContinuation:
			if st.current >= 0 {
				sent.Text = s.cat.CleanArtifacts(sent.Text)
				art := st.byNumber[st.current]
				art.Sentences = append(art.Sentences, sent)
			} else {
				st.unclassified = append(st.unclassified, sent)
			}
		}
	}

	return assemble(st)
}

// openClause closes the previous clause implicitly and opens (or
// reopens) the clause keyed by the marker's number. A number seen twice
// replaces the sentence accumulator but keeps its first-seen position.
func (s *Segmenter) openClause(st *scanState, sent model.Sentence, marker rules.ClauseMarker) {
	art, seen := st.byNumber[marker.Number]
	if !seen {
		art = &model.Article{
			ID:    model.NumberedID(marker.Number),
			Title: marker.Title(),
		}
		st.byNumber[marker.Number] = art
		st.order = append(st.order, marker.Number)
	} else {
		art.Title = marker.Title()
		art.Sentences = nil
	}
	st.current = marker.Number

	sent.Text = s.cat.StripMarker(sent.Text, marker)
	if sent.Text == "" {
		// Marker-only sentence; the clause stays open, waiting for
		// continuations.
		return
	}
	art.Sentences = append(art.Sentences, sent)
}

func assemble(st *scanState) []model.Article {
	articles := make([]model.Article, 0, len(st.order)+2)

	if len(st.preamble) > 0 {
		articles = append(articles, model.Article{
			ID:        model.PreambleID(),
			Title:     "Preamble",
			Sentences: st.preamble,
		})
	}
	for _, n := range st.order {
		articles = append(articles, *st.byNumber[n])
	}
	if len(st.unclassified) > 0 {
		articles = append(articles, model.Article{
			ID:        model.UnclassifiedID(),
			Title:     "Unclassified",
			Sentences: st.unclassified,
		})
	}

	return articles
}
