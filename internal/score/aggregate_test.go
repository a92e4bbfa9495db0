package score

import (
	"testing"

	"github.com/clear-checky/checky-BE/internal/model"
)

func articleWith(risks ...model.RiskLevel) model.Article {
	sentences := make([]model.Sentence, len(risks))
	for i, r := range risks {
		sentences[i] = model.Sentence{ID: "s1", Text: "text", Risk: r}
	}
	return model.Article{ID: model.NumberedID(1), Title: "Article 1", Sentences: sentences}
}

func TestAggregate_Empty(t *testing.T) {
	agg := NewAggregator()

	counts, percent := agg.Aggregate(nil)
	if counts.Total != 0 {
		t.Errorf("expected zero total, got %d", counts.Total)
	}
	if percent != 100.0 {
		t.Errorf("expected 100.0 for empty document, got %v", percent)
	}
}

func TestAggregate_Counts(t *testing.T) {
	agg := NewAggregator()

	articles := []model.Article{
		articleWith(model.RiskDanger, model.RiskSafe),
		articleWith(model.RiskWarning, model.RiskSafe, model.RiskSafe),
	}

	counts, percent := agg.Aggregate(articles)
	if counts.Danger != 1 || counts.Warning != 1 || counts.Safe != 3 || counts.Total != 5 {
		t.Errorf("unexpected counts %+v", counts)
	}
	if percent != 60.0 {
		t.Errorf("expected 60.0, got %v", percent)
	}
}

func TestSafetyPercent_Rounding(t *testing.T) {
	cases := []struct {
		safe, total int
		want        float64
	}{
		{0, 0, 100.0},
		{1, 2, 50.0},
		{2, 3, 66.7},
		{1, 3, 33.3},
		{0, 4, 0.0},
		{7, 8, 87.5},
		{1, 6, 16.7},
	}
	for _, c := range cases {
		got := SafetyPercent(model.Counts{Safe: c.safe, Total: c.total})
		if got != c.want {
			t.Errorf("SafetyPercent(%d/%d) = %v, want %v", c.safe, c.total, got, c.want)
		}
	}
}

func TestAggregate_UnknownTierCountsSafe(t *testing.T) {
	agg := NewAggregator()

	articles := []model.Article{{
		ID:    model.UnclassifiedID(),
		Title: "Unclassified",
		Sentences: []model.Sentence{
			{ID: "s1", Text: "text", Risk: model.RiskLevel("")},
		},
	}}

	counts, _ := agg.Aggregate(articles)
	if counts.Safe != 1 || counts.Total != 1 {
		t.Errorf("expected missing tier to count as safe, got %+v", counts)
	}
}
