// Package score aggregates per-sentence risk into document-level
// counts and a safety percentage.
package score

import (
	"math"

	"github.com/clear-checky/checky-BE/internal/model"
)

// Aggregator walks a finished document tree once and sums risk tiers
type Aggregator struct{}

// NewAggregator creates a new aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Aggregate counts tiers across all sentences of all articles,
// preamble and residue included, and derives the safety percentage.
func (a *Aggregator) Aggregate(articles []model.Article) (model.Counts, float64) {
	var c model.Counts
	for _, art := range articles {
		for _, s := range art.Sentences {
			c.Total++
			switch s.Risk {
			case model.RiskDanger:
				c.Danger++
			case model.RiskWarning:
				c.Warning++
			default:
				c.Safe++
			}
		}
	}
	return c, SafetyPercent(c)
}

// SafetyPercent returns the safe ratio as a percentage rounded to one
// decimal place. Rounding scales by 1000 before dividing by 10 so the
// tenths boundary rounds half away from zero instead of to even.
func SafetyPercent(c model.Counts) float64 {
	if c.Total == 0 {
		return 100.0
	}
	return math.Round(float64(c.Safe)/float64(c.Total)*1000) / 10
}
