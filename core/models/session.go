package models

import "time"

// Session is one website visit.
type Session struct {
	DatasetID string `json:"-" gorm:"primaryKey;size:36"`

	CustomerID       string    `json:"customer_id" gorm:"size:36;index"`
	CustomerName     string    `json:"customer_name" gorm:"size:128"`
	CustomerEmail    string    `json:"customer_email" gorm:"size:128;index"`
	CustomerAge      int       `json:"customer_age"`
	CustomerCountry  Country   `json:"customer_country" gorm:"size:32"`
	CustomerCity     string    `json:"customer_city" gorm:"size:64"`
	RegistrationDate time.Time `json:"registration_date"`

	SessionID        string    `json:"session_id" gorm:"primaryKey;size:36"`
	SessionDate      time.Time `json:"session_date" gorm:"index"`
	SessionStartTime string    `json:"session_start_time" gorm:"size:8"`

	PageViews              int     `json:"page_views"`
	SessionDurationMinutes float64 `json:"session_duration_minutes"`
	BounceRate             float64 `json:"bounce_rate"`
	PagesPerSession        float64 `json:"pages_per_session"`
	EntryPageCategory      string  `json:"entry_page_category" gorm:"size:16"`
	ExitPageCategory       string  `json:"exit_page_category" gorm:"size:16"`

	DeviceType       string `json:"device_type" gorm:"size:16"`
	Browser          string `json:"browser" gorm:"size:16"`
	OperatingSystem  string `json:"operating_system" gorm:"size:16"`
	ScreenResolution string `json:"screen_resolution" gorm:"size:16"`

	ReferrerSource string  `json:"referrer_source" gorm:"size:16"`
	CampaignSource *string `json:"campaign_source" gorm:"size:32"`
	UTMMedium      *string `json:"utm_medium" gorm:"column:utm_medium;size:16"`

	Converted        bool    `json:"converted"`
	Revenue          float64 `json:"revenue"`
	ItemsViewed      int     `json:"items_viewed"`
	CartAbandonment  bool    `json:"cart_abandonment"`
	NewsletterSignup bool    `json:"newsletter_signup"`
	IsGuestCheckout  bool    `json:"is_guest_checkout"`

	TimeOnSiteSeconds  float64 `json:"time_on_site_seconds"`
	ScrollDepthPercent float64 `json:"scroll_depth_percent"`
	ClickThroughRate   float64 `json:"click_through_rate"`

	IPAddress string  `json:"ip_address" gorm:"size:15"`
	Timezone  string  `json:"timezone" gorm:"size:64"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	CustomerLifetimeValue float64 `json:"customer_lifetime_value"`
	CustomerSessionCount  int     `json:"customer_session_count"`
	IsReturningCustomer   bool    `json:"is_returning_customer"`
	HasAccount            bool    `json:"has_account"`
	DaysSinceRegistration int     `json:"days_since_registration"`
}

// TableName places sessions in the raw (bronze) layer.
func (Session) TableName() string {
	return "bronze_website_sessions"
}
