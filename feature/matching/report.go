package matching

import (
	"fmt"
	"io"
	"strings"

	"commerce-linker/core/reconcile"
)

// Report is the API view of a run: aggregates plus a sample of matches.
type Report struct {
	RunID                       string            `json:"run_id"`
	DatasetID                   string            `json:"dataset_id"`
	Cached                      bool              `json:"cached"`
	ExactEmailMatches           int               `json:"exact_email_matches"`
	GeographicBehavioralMatches int               `json:"geographic_behavioral_matches"`
	TimingPatternMatches        int               `json:"timing_pattern_matches"`
	TotalUniqueMatches          int               `json:"total_unique_matches"`
	MatchRatePercent            float64           `json:"match_rate_percent"`
	ConversionMatchRate         float64           `json:"conversion_match_rate"`
	RevenueCoverage             float64           `json:"revenue_coverage"`
	MatchedRevenue              float64           `json:"matched_revenue"`
	TotalConvertedRevenue       float64           `json:"total_converted_revenue"`
	SampleMatches               []reconcile.Match `json:"sample_matches"`
}

// NewReport builds the report of run with at most sample matches.
func NewReport(run *Run, sample int) Report {
	res := run.Result
	return Report{
		RunID:                       run.ID,
		DatasetID:                   run.DatasetID,
		Cached:                      run.Cached,
		ExactEmailMatches:           res.ExactEmailMatches,
		GeographicBehavioralMatches: res.GeographicBehavioralMatches,
		TimingPatternMatches:        res.TimingPatternMatches,
		TotalUniqueMatches:          res.TotalUniqueMatches,
		MatchRatePercent:            res.MatchRatePercent,
		ConversionMatchRate:         res.ConversionMatchRate,
		RevenueCoverage:             res.RevenueCoverage,
		MatchedRevenue:              res.MatchedRevenue,
		TotalConvertedRevenue:       res.TotalConvertedRevenue,
		SampleMatches:               res.Filter("", sample),
	}
}

var matchTitles = map[reconcile.MatchType]string{
	reconcile.MatchExactEmail:           "Exact Email",
	reconcile.MatchGeographicBehavioral: "Geographic Behavioral",
	reconcile.MatchTimingPattern:        "Timing Pattern",
}

// WriteText prints a console report of res with up to sample matches.
func WriteText(w io.Writer, res *reconcile.Result, sample int) error {
	rule := strings.Repeat("=", 60)
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\nMATCHING RESULTS SUMMARY\n%s\n", rule, rule)
	fmt.Fprintf(&b, "Total matches found: %d\n", res.TotalUniqueMatches)
	fmt.Fprintf(&b, "Match rate (%% of all sessions): %.2f%%\n", res.MatchRatePercent)
	fmt.Fprintf(&b, "Match rate (%% of converted sessions): %.2f%%\n", res.ConversionMatchRate)

	b.WriteString("\nBreakdown by matching method:\n")
	fmt.Fprintf(&b, "- Exact email matches: %d\n", res.ExactEmailMatches)
	fmt.Fprintf(&b, "- Geographic + behavioral: %d\n", res.GeographicBehavioralMatches)
	fmt.Fprintf(&b, "- Timing patterns: %d\n", res.TimingPatternMatches)

	if matches := res.Filter("", sample); len(matches) > 0 {
		fmt.Fprintf(&b, "\nSample matches (first %d):\n", len(matches))
		for i, m := range matches {
			fmt.Fprintf(&b, "  %d. %s Match:\n", i+1, matchTitles[m.Type])
			fmt.Fprintf(&b, "     Session ID: %s\n", m.SessionID)
			fmt.Fprintf(&b, "     Country: %s\n", m.Country)
			fmt.Fprintf(&b, "     Converted: %t, Revenue: $%.2f\n", m.Converted, m.Revenue)
			fmt.Fprintf(&b, "     Confidence: %s\n", m.Confidence)
		}
	}

	b.WriteString("\nBusiness Impact:\n")
	fmt.Fprintf(&b, "- Revenue from matched sessions: $%.2f\n", res.MatchedRevenue)
	fmt.Fprintf(&b, "- Total converted revenue: $%.2f\n", res.TotalConvertedRevenue)
	fmt.Fprintf(&b, "- Revenue coverage by matches: %.1f%%\n", res.RevenueCoverage)

	_, err := io.WriteString(w, b.String())
	return err
}
