package forecast

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Criteria are the segment attributes included in the prompt.
type Criteria struct {
	AgeBands     []string `json:"age_bands"`
	Demographics []string `json:"demographics"`
	Locations    []string `json:"locations"`
	Interests    []string `json:"interests"`
}

func listOf(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	return "[" + strings.Join(items, ", ") + "]"
}

func buildPrompt(c Criteria, history []int, days int) string {
	var b strings.Builder
	b.WriteString("Given an advertiser segment with the following criteria:\n")
	fmt.Fprintf(&b, "- Age Bands: %s\n", listOf(c.AgeBands))
	fmt.Fprintf(&b, "- Demographics: %s\n", listOf(c.Demographics))
	fmt.Fprintf(&b, "- Locations: %s\n", listOf(c.Locations))
	fmt.Fprintf(&b, "- Interests: %s\n\n", listOf(c.Interests))
	fmt.Fprintf(&b, "And historical data showing impressions by day for the past %d days:\n", len(history))
	fmt.Fprintf(&b, "%v\n\n", history)
	fmt.Fprintf(&b, "Predict the daily impressions for the next %d days. Consider trends, seasonality, and growth patterns.\n", days)
	fmt.Fprintf(&b, "Return ONLY a JSON array of %d numbers representing predicted daily impressions, nothing else.", days)
	return b.String()
}

// parsePredictions decodes the span between the first '[' and the last ']'
// of a model reply. At most days values are kept.
func parsePredictions(text string, days int) ([]int, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil, ErrNoPrediction
	}

	var values []float64
	if err := json.Unmarshal([]byte(text[start:end+1]), &values); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoPrediction, err)
	}
	if len(values) == 0 {
		return nil, ErrNoPrediction
	}
	if len(values) > days {
		values = values[:days]
	}

	out := make([]int, len(values))
	for i, v := range values {
		out[i] = int(v)
	}
	return out, nil
}
