// Package analyze orchestrates the contract analysis pipeline:
// segmentation, classification, rule override and aggregation. Each
// stage is a pure transformation of the document tree.
package analyze

import (
	"context"
	"log"

	"github.com/clear-checky/checky-BE/internal/classify"
	"github.com/clear-checky/checky-BE/internal/llm"
	"github.com/clear-checky/checky-BE/internal/model"
	"github.com/clear-checky/checky-BE/internal/rules"
	"github.com/clear-checky/checky-BE/internal/score"
	"github.com/clear-checky/checky-BE/internal/segment"
)

// Pipeline runs the four analysis stages in their strict dependency
// order. Classification fans out per article internally; the other
// stages are in-memory, single-threaded transforms.
type Pipeline struct {
	catalogue  *rules.Catalogue
	segmenter  *segment.Segmenter
	engine     *classify.Engine
	aggregator *score.Aggregator
}

// NewPipeline creates a pipeline from configuration. A missing or
// rejected inference credential is logged and degrades classification
// to fallback; it never fails pipeline construction.
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	catalogue := rules.NewCatalogue()
	if cfg.Rules.File != "" {
		if err := catalogue.LoadExtra(cfg.Rules.File); err != nil {
			return nil, err
		}
	}

	provider, err := llm.NewProvider(cfg.LLM)
	if err != nil {
		log.Printf("inference provider unavailable, classification degrades to fallback: %v", err)
		provider = nil
	}

	return &Pipeline{
		catalogue:  catalogue,
		segmenter:  segment.NewSegmenter(catalogue),
		engine:     classify.NewEngine(provider, cfg.Concurrency, cfg.LLM),
		aggregator: score.NewAggregator(),
	}, nil
}

// NewPipelineWithProvider builds a pipeline around an explicit provider
func NewPipelineWithProvider(provider llm.Provider, cfg *model.Config) *Pipeline {
	catalogue := rules.NewCatalogue()
	return &Pipeline{
		catalogue:  catalogue,
		segmenter:  segment.NewSegmenter(catalogue),
		engine:     classify.NewEngine(provider, cfg.Concurrency, cfg.LLM),
		aggregator: score.NewAggregator(),
	}
}

// AnalyzeSentences runs the full pipeline over a flat sentence stream.
// Empty input is not an error: it yields zero articles, zero counts and
// a 100.0 safety percentage.
func (p *Pipeline) AnalyzeSentences(ctx context.Context, sentences []model.Sentence) *model.AnalyzeResponse {
	return p.AnalyzeArticles(ctx, p.segmenter.Segment(sentences))
}

// AnalyzeArticles runs classification, override and aggregation over an
// already-segmented document
func (p *Pipeline) AnalyzeArticles(ctx context.Context, articles []model.Article) *model.AnalyzeResponse {
	articles = p.engine.Classify(ctx, articles)
	articles = p.catalogue.OverrideAll(articles)
	counts, safety := p.aggregator.Aggregate(articles)

	if articles == nil {
		articles = []model.Article{}
	}
	return &model.AnalyzeResponse{
		Articles:      articles,
		Counts:        counts,
		SafetyPercent: safety,
	}
}
