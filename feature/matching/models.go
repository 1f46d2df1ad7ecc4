package matching

import "time"

// MatchRun is the persisted summary of one matcher run.
type MatchRun struct {
	ID        string `json:"run_id" gorm:"primaryKey;size:36"`
	DatasetID string `json:"dataset_id" gorm:"size:36;index"`

	SessionCount int `json:"session_count"`
	AccountCount int `json:"account_count"`

	ExactEmailMatches           int     `json:"exact_email_matches"`
	GeographicBehavioralMatches int     `json:"geographic_behavioral_matches"`
	TimingPatternMatches        int     `json:"timing_pattern_matches"`
	TotalUniqueMatches          int     `json:"total_unique_matches"`
	MatchRatePercent            float64 `json:"match_rate_percent"`
	ConversionMatchRate         float64 `json:"conversion_match_rate"`
	RevenueCoverage             float64 `json:"revenue_coverage"`

	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
}

// TableName places run summaries next to the gold tables.
func (MatchRun) TableName() string {
	return "match_runs"
}
