package segments

import "time"

// Segment is an advertiser audience definition.
type Segment struct {
	SegmentID            string    `json:"segment_id" gorm:"primaryKey;size:36"`
	SegmentName          string    `json:"segment_name" gorm:"size:128"`
	AgeBands             []string  `json:"age_bands" gorm:"serializer:json;type:text"`
	Demographics         []string  `json:"demographics" gorm:"serializer:json;type:text"`
	Locations            []string  `json:"locations" gorm:"serializer:json;type:text"`
	Interests            []string  `json:"interests" gorm:"serializer:json;type:text"`
	MinEngagementMinutes float64   `json:"min_engagement_minutes"`
	CreatedBy            string    `json:"created_by" gorm:"size:64"`
	EstimatedReach       int       `json:"estimated_reach"`
	CreatedAt            time.Time `json:"created_at" gorm:"index"`
}

// TableName places segments in the curated (gold) layer.
func (Segment) TableName() string {
	return "gold_segments"
}

// CreateRequest is the body of a segment creation.
type CreateRequest struct {
	SegmentName          string   `json:"segment_name" validate:"required,max=128"`
	AgeBands             []string `json:"age_bands" validate:"dive,required"`
	Demographics         []string `json:"demographics" validate:"dive,required"`
	Locations            []string `json:"locations" validate:"dive,required"`
	Interests            []string `json:"interests" validate:"dive,required"`
	MinEngagementMinutes float64  `json:"min_engagement_minutes" validate:"gte=0"`
}

// DeviceShare is the share of impressions on one device class.
type DeviceShare struct {
	Device     string  `json:"device"`
	Percentage float64 `json:"percentage"`
}

// DayMetrics is one observed day of a segment.
type DayMetrics struct {
	Date        string        `json:"date"`
	Impressions int           `json:"impressions"`
	Minutes     float64       `json:"minutes"`
	Devices     []DeviceShare `json:"devices"`
}

// DayForecast is one predicted day of a segment.
type DayForecast struct {
	Date        string `json:"date"`
	Impressions int    `json:"impressions"`
}

// Analytics is the observed and predicted month of a segment.
type Analytics struct {
	SegmentID      string        `json:"segment_id"`
	PreviousMonth  []DayMetrics  `json:"previous_month"`
	PredictedMonth []DayForecast `json:"predicted_month"`
	ModelForecast  bool          `json:"model_forecast"`
}
