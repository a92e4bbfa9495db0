// Package validate checks inference responses against the fixed-length
// array contract and resolves them into per-sentence items.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/clear-checky/checky-BE/internal/model"
)

// Item is one element of the inference response array
type Item struct {
	Risk model.RiskLevel `json:"risk"`
	Why  string          `json:"why"`
	Fix  string          `json:"fix"`
}

// FallbackItem is the deterministic safe default substituted for
// missing or invalid response elements
func FallbackItem() Item {
	return Item{Risk: model.RiskSafe, Why: "-", Fix: "-"}
}

// ItemResult is the tagged validation outcome for one array element:
// either a valid item or an invalidity reason.
type ItemResult struct {
	Item   Item
	Valid  bool
	Reason string
}

// CheckItem validates a decoded item against the sentence constraints
func CheckItem(it Item) ItemResult {
	if !it.Risk.Valid() {
		return ItemResult{Reason: fmt.Sprintf("unknown risk %q", it.Risk)}
	}
	if len([]rune(it.Why)) > model.MaxExplanationLen {
		return ItemResult{Reason: "why exceeds 300 chars"}
	}
	if len([]rune(it.Fix)) > model.MaxExplanationLen {
		return ItemResult{Reason: "fix exceeds 300 chars"}
	}
	return ItemResult{Item: it, Valid: true}
}

// Decode parses raw provider content as a JSON array and validates each
// element independently. A non-array payload is the only error case;
// element-level problems are tagged, not raised.
func Decode(raw string) ([]ItemResult, error) {
	raw = stripCodeFence(raw)

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elements); err != nil {
		return nil, fmt.Errorf("response is not a JSON array: %w", err)
	}

	results := make([]ItemResult, 0, len(elements))
	for _, el := range elements {
		var it Item
		if err := json.Unmarshal(el, &it); err != nil {
			results = append(results, ItemResult{Reason: err.Error()})
			continue
		}
		results = append(results, CheckItem(it))
	}
	return results, nil
}

// Resolve turns tagged results into exactly expected items: invalid
// elements are replaced by the fallback, short arrays are right-padded,
// long arrays truncated. Pure function; never errors.
func Resolve(results []ItemResult, expected int) []Item {
	items := make([]Item, expected)
	for i := 0; i < expected; i++ {
		if i < len(results) && results[i].Valid {
			items[i] = results[i].Item
		} else {
			items[i] = FallbackItem()
		}
	}
	return items
}

// Fallback returns expected fallback items
func Fallback(expected int) []Item {
	return Resolve(nil, expected)
}

// stripCodeFence removes a surrounding markdown code fence, which chat
// models frequently wrap around JSON output
func stripCodeFence(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "```") {
		return raw
	}
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	return strings.TrimSpace(raw)
}
