package model

// RiskLevel is the risk tier assigned to a sentence
type RiskLevel string

const (
	RiskDanger  RiskLevel = "danger"
	RiskWarning RiskLevel = "warning"
	RiskSafe    RiskLevel = "safe"
)

// Severity returns the numeric severity of the tier (danger > warning > safe)
func (r RiskLevel) Severity() int {
	switch r {
	case RiskDanger:
		return 2
	case RiskWarning:
		return 1
	default:
		return 0
	}
}

// Valid reports whether the tier is one of the three known values
func (r RiskLevel) Valid() bool {
	return r == RiskDanger || r == RiskWarning || r == RiskSafe
}

// MaxExplanationLen is the character limit on why/fix explanations
const MaxExplanationLen = 300

// Sentence is a single contract sentence with its risk annotation.
// Text is immutable once it enters segmentation; Risk, Why and Fix are
// written by the classification engine and possibly escalated by the
// rule override.
type Sentence struct {
	ID   string    `json:"id"`
	Text string    `json:"text"`
	Risk RiskLevel `json:"risk"`
	Why  string    `json:"why,omitempty"`
	Fix  string    `json:"fix,omitempty"`
}
