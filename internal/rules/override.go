package rules

import (
	"strings"
	"unicode"

	"github.com/clear-checky/checky-BE/internal/model"
)

// Normalize lowercases text and strips all whitespace. Escalation
// patterns match this form so inconsistent spacing cannot hide a trigger.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Override escalates the sentence's risk tier based on the danger and
// warning pattern sets. Escalation is one-directional: a danger match
// forces danger unconditionally, a warning match forces warning only
// when the current tier is not danger. The result of the inference step
// is never downgraded.
func (c *Catalogue) Override(s model.Sentence) model.Sentence {
	t := Normalize(s.Text)
	if matchAny(c.danger, t) {
		s.Risk = model.RiskDanger
		return s
	}
	if s.Risk != model.RiskDanger && matchAny(c.warning, t) {
		s.Risk = model.RiskWarning
	}
	return s
}

// OverrideAll applies the escalation pass to every sentence of every
// article, independent of clause boundaries.
func (c *Catalogue) OverrideAll(articles []model.Article) []model.Article {
	for i := range articles {
		for j, s := range articles[i].Sentences {
			articles[i].Sentences[j] = c.Override(s)
		}
	}
	return articles
}
