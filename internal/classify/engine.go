// Package classify assigns a risk tier and justification to every
// sentence by dispatching per-article requests to the inference
// provider, with deterministic fallback on any contract violation.
package classify

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/clear-checky/checky-BE/internal/llm"
	"github.com/clear-checky/checky-BE/internal/model"
	"github.com/clear-checky/checky-BE/internal/validate"
	"github.com/clear-checky/checky-BE/internal/worker"
)

const classifyTemperature = 0.2

const systemPrompt = `You are a labor-contract risk reviewer. For each numbered sentence of the contract article, judge the risk it poses to the employee.

Respond ONLY with a JSON array containing exactly one object per sentence, in the same order, with these fields:
- "risk": one of "danger", "warning", "safe"
- "why": a short explanation, 300 characters or fewer
- "fix": a suggested correction, 300 characters or fewer

No prose, no markdown, just the JSON array.`

// Engine runs the classification stage. A nil provider is valid: every
// article then receives fallback items, keeping the pipeline shape
// intact.
type Engine struct {
	provider llm.Provider
	limiter  *worker.Limiter
	workers  int
}

// NewEngine creates a classification engine
func NewEngine(provider llm.Provider, cfg model.ConcurrencyConfig, llmCfg model.LLMConfig) *Engine {
	workers := cfg.ClassifyWorkers
	if workers <= 0 {
		workers = 4
	}
	return &Engine{
		provider: provider,
		limiter:  worker.NewLimiter(llmCfg.RequestsPerSecond, llmCfg.Burst),
		workers:  workers,
	}
}

// Classify populates risk/why/fix on every sentence of every article.
// Per-article requests are independent and fan out across the pool;
// the pool's Wait is the barrier before the override stage. A failed
// request degrades that article to fallback without affecting others.
func (e *Engine) Classify(ctx context.Context, articles []model.Article) []model.Article {
	pool := worker.NewPool(e.workers)
	pool.Start(ctx)

	for i := range articles {
		if len(articles[i].Sentences) == 0 {
			continue
		}
		art := &articles[i]
		pool.Submit(func(ctx context.Context) {
			e.classifyArticle(ctx, art)
		})
	}

	pool.Wait()
	return articles
}

// classifyArticle issues one bounded request for the article and writes
// the validated items onto its sentences. Each article owns its own
// sentence slice, so no synchronization is needed here.
func (e *Engine) classifyArticle(ctx context.Context, art *model.Article) {
	expected := len(art.Sentences)

	items := e.requestItems(ctx, art)
	if items == nil {
		items = validate.Fallback(expected)
	}

	for i := range art.Sentences {
		art.Sentences[i].Risk = items[i].Risk
		art.Sentences[i].Why = items[i].Why
		art.Sentences[i].Fix = items[i].Fix
	}
}

// requestItems returns exactly len(art.Sentences) items, or nil when
// the provider is disabled or the call failed entirely
func (e *Engine) requestItems(ctx context.Context, art *model.Article) []validate.Item {
	if e.provider == nil {
		return nil
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return nil
	}

	resp, err := e.provider.Complete(ctx, llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: systemPrompt},
			{Role: llm.RoleUser, Content: buildUserPrompt(art)},
		},
		Temperature: classifyTemperature,
	})
	if err != nil {
		// Absorbed, never propagated: any failure kind means fallback
		// for this article. Timeout and unreachable are candidates for
		// retry once a retry budget exists.
		switch llm.KindOf(err) {
		case llm.ErrInvalidCredential:
			log.Printf("classify %s: credential rejected, using fallback", art.ID)
		default:
			log.Printf("classify %s: %v, using fallback", art.ID, err)
		}
		return nil
	}

	results, err := validate.Decode(resp.Content)
	if err != nil {
		log.Printf("classify %s: %v, using fallback", art.ID, err)
		return nil
	}

	return validate.Resolve(results, len(art.Sentences))
}

// buildUserPrompt renders the article title and its numbered sentences
func buildUserPrompt(art *model.Article) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Article title: %s\n", art.Title)
	fmt.Fprintf(&b, "Sentences (%d):\n", len(art.Sentences))
	for i, s := range art.Sentences {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s.Text)
	}
	return b.String()
}
