package reconcile

import (
	"time"

	"commerce-linker/core/models"
)

// MatchType names the pass that produced a match.
type MatchType string

const (
	MatchExactEmail           MatchType = "exact_email"
	MatchGeographicBehavioral MatchType = "geographic_behavioral"
	MatchTimingPattern        MatchType = "timing_pattern"
)

// Confidence is a qualitative reliability label.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Match links one session to one account.
type Match struct {
	Type              MatchType      `json:"type"`
	SessionID         string         `json:"session_id"`
	CustomerID        string         `json:"customer_id"`
	AccountCustomerID string         `json:"account_customer_id"`
	Confidence        Confidence     `json:"match_confidence"`
	Converted         bool           `json:"converted"`
	Revenue           float64        `json:"revenue"`
	Country           models.Country `json:"country"`

	// Evidence, set according to Type.
	Email           string   `json:"email,omitempty"`
	AccountAvgOrder *float64 `json:"account_avg_order,omitempty"`
	RevenueDelta    *float64 `json:"revenue_delta,omitempty"`
	DaysDifference  *int     `json:"days_difference,omitempty"`
}

// Input is what every pass reads.
type Input struct {
	Sessions []models.Session
	Accounts []models.Account
	// Now anchors account recency for the timing pass.
	Now time.Time
}

// Result is the outcome of a full matcher run.
type Result struct {
	ExactEmailMatches           int     `json:"exact_email_matches"`
	GeographicBehavioralMatches int     `json:"geographic_behavioral_matches"`
	TimingPatternMatches        int     `json:"timing_pattern_matches"`
	TotalUniqueMatches          int     `json:"total_unique_matches"`
	MatchRatePercent            float64 `json:"match_rate_percent"`
	ConversionMatchRate         float64 `json:"conversion_match_rate"`
	RevenueCoverage             float64 `json:"revenue_coverage"`

	SessionCount          int     `json:"session_count"`
	AccountCount          int     `json:"account_count"`
	ConvertedSessions     int     `json:"converted_sessions"`
	MatchedRevenue        float64 `json:"matched_revenue"`
	TotalConvertedRevenue float64 `json:"total_converted_revenue"`

	// MatchedSessionIDs is in claim order.
	MatchedSessionIDs []string `json:"matched_session_ids"`
	Matches           []Match  `json:"matches"`
}

// CountsByType returns the per-pass match counts keyed by type name.
func (r *Result) CountsByType() map[string]int {
	return map[string]int{
		string(MatchExactEmail):           r.ExactEmailMatches,
		string(MatchGeographicBehavioral): r.GeographicBehavioralMatches,
		string(MatchTimingPattern):        r.TimingPatternMatches,
	}
}

// Filter returns at most limit matches of the given type. An empty type
// keeps all matches and a non-positive limit keeps every match.
func (r *Result) Filter(matchType MatchType, limit int) []Match {
	out := make([]Match, 0)
	for _, m := range r.Matches {
		if matchType != "" && m.Type != matchType {
			continue
		}
		out = append(out, m)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
