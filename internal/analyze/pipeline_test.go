package analyze

import (
	"context"
	"testing"

	"github.com/clear-checky/checky-BE/internal/llm"
	"github.com/clear-checky/checky-BE/internal/model"
)

type mockProvider struct {
	content string
	err     error
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &llm.CompletionResponse{Content: m.content, Model: "mock"}, nil
}

func testPipeline(provider llm.Provider) *Pipeline {
	cfg := model.DefaultConfig()
	cfg.LLM.RequestsPerSecond = 1000
	cfg.LLM.Burst = 1000
	return NewPipelineWithProvider(provider, cfg)
}

func sentenceStream(texts ...string) []model.Sentence {
	out := make([]model.Sentence, len(texts))
	for i, t := range texts {
		out[i] = model.Sentence{ID: "s" + string(rune('1'+i)), Text: t, Risk: model.RiskSafe}
	}
	return out
}

func TestAnalyzeSentences_Empty(t *testing.T) {
	p := testPipeline(nil)

	resp := p.AnalyzeSentences(context.Background(), nil)
	if resp.Articles == nil || len(resp.Articles) != 0 {
		t.Errorf("expected empty non-nil articles, got %v", resp.Articles)
	}
	if resp.Counts.Total != 0 {
		t.Errorf("expected zero counts, got %+v", resp.Counts)
	}
	if resp.SafetyPercent != 100.0 {
		t.Errorf("expected 100.0, got %v", resp.SafetyPercent)
	}
}

func TestAnalyzeSentences_FallbackThenOverride(t *testing.T) {
	// Without a provider every sentence falls back to safe, and the rule
	// stage alone escalates the dangerous one.
	p := testPipeline(nil)

	resp := p.AnalyzeSentences(context.Background(), sentenceStream(
		"Article 3 (Working Hours) Working hours are 8 per day.",
		"Rest during duty call-ins is not counted as working time.",
	))

	if len(resp.Articles) != 1 {
		t.Fatalf("expected 1 article, got %d", len(resp.Articles))
	}
	art := resp.Articles[0]
	if art.Title != "Article 3 (Working Hours)" {
		t.Errorf("unexpected title %q", art.Title)
	}
	if len(art.Sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(art.Sentences))
	}
	if art.Sentences[0].Risk != model.RiskSafe {
		t.Errorf("expected safe fallback, got %s", art.Sentences[0].Risk)
	}
	if art.Sentences[1].Risk != model.RiskDanger {
		t.Errorf("expected rule escalation to danger, got %s", art.Sentences[1].Risk)
	}

	if resp.Counts.Danger != 1 || resp.Counts.Safe != 1 || resp.Counts.Total != 2 {
		t.Errorf("unexpected counts %+v", resp.Counts)
	}
	if resp.SafetyPercent != 50.0 {
		t.Errorf("expected 50.0, got %v", resp.SafetyPercent)
	}
}

func TestAnalyzeSentences_ProviderClassification(t *testing.T) {
	provider := &mockProvider{
		content: `[{"risk":"warning","why":"hours above statutory limit","fix":"cap at 8 hours"},{"risk":"safe","why":"-","fix":"-"}]`,
	}
	p := testPipeline(provider)

	resp := p.AnalyzeSentences(context.Background(), sentenceStream(
		"Article 3 (Working Hours) Working hours are 12 per day.",
		"Breaks follow the statutory schedule.",
	))

	art := resp.Articles[0]
	if art.Sentences[0].Risk != model.RiskWarning || art.Sentences[0].Why != "hours above statutory limit" {
		t.Errorf("unexpected classification %+v", art.Sentences[0])
	}
	if resp.Counts.Warning != 1 || resp.Counts.Safe != 1 {
		t.Errorf("unexpected counts %+v", resp.Counts)
	}
}

func TestAnalyzeSentences_OverrideNeverDowngraded(t *testing.T) {
	// The provider calls everything safe; the rule stage still escalates
	provider := &mockProvider{
		content: `[{"risk":"safe","why":"-","fix":"-"}]`,
	}
	p := testPipeline(provider)

	resp := p.AnalyzeSentences(context.Background(), sentenceStream(
		"The employee may be dismissed without prior notice.",
	))

	art := resp.Articles[0]
	if art.ID != model.UnclassifiedID() {
		t.Errorf("expected unclassified residue, got %v", art.ID)
	}
	if art.Sentences[0].Risk != model.RiskDanger {
		t.Errorf("expected danger after override, got %s", art.Sentences[0].Risk)
	}
}

func TestAnalyzeSentences_ProviderErrorDegrades(t *testing.T) {
	provider := &mockProvider{
		err: &llm.CallError{Kind: llm.ErrTimeout},
	}
	p := testPipeline(provider)

	resp := p.AnalyzeSentences(context.Background(), sentenceStream(
		"Article 1 (Term) The term is one year.",
	))

	art := resp.Articles[0]
	if art.Sentences[0].Risk != model.RiskSafe || art.Sentences[0].Why != "-" {
		t.Errorf("expected fallback after timeout, got %+v", art.Sentences[0])
	}
	if resp.SafetyPercent != 100.0 {
		t.Errorf("expected 100.0, got %v", resp.SafetyPercent)
	}
}

func TestAnalyzeArticles_PreSegmented(t *testing.T) {
	p := testPipeline(nil)

	articles := []model.Article{{
		ID:    model.NumberedID(5),
		Title: "Article 5 (Liability)",
		Sentences: []model.Sentence{
			{ID: "s1", Text: "All damages shall be solely borne by the employee.", Risk: model.RiskSafe},
		},
	}}

	resp := p.AnalyzeArticles(context.Background(), articles)
	if resp.Articles[0].Sentences[0].Risk != model.RiskDanger {
		t.Errorf("expected danger, got %s", resp.Articles[0].Sentences[0].Risk)
	}
	if resp.Counts.Danger != 1 || resp.Counts.Total != 1 {
		t.Errorf("unexpected counts %+v", resp.Counts)
	}
	if resp.SafetyPercent != 0.0 {
		t.Errorf("expected 0.0, got %v", resp.SafetyPercent)
	}
}

func TestNewPipeline_BadRulesFile(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Rules.File = "/nonexistent/rules.yaml"

	if _, err := NewPipeline(cfg); err == nil {
		t.Error("expected error for missing rules file")
	}
}

func TestNewPipeline_NoProviderConfigured(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.LLM.Provider = ""

	p, err := NewPipeline(cfg)
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	resp := p.AnalyzeSentences(context.Background(), sentenceStream("Plain sentence."))
	if resp.Articles[0].Sentences[0].Risk != model.RiskSafe {
		t.Errorf("expected fallback classification, got %+v", resp.Articles[0].Sentences[0])
	}
}
