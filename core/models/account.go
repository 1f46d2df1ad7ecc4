package models

import "time"

// CustomerSegment is the behavioural bucket of an account.
type CustomerSegment string

const (
	SegmentVIP     CustomerSegment = "VIP"
	SegmentLoyal   CustomerSegment = "Loyal"
	SegmentRegular CustomerSegment = "Regular"
	SegmentNew     CustomerSegment = "New"
	SegmentAtRisk  CustomerSegment = "At Risk"
)

// LoyaltyTier is the programme tier attached to an account.
type LoyaltyTier string

const (
	TierBronze   LoyaltyTier = "Bronze"
	TierSilver   LoyaltyTier = "Silver"
	TierGold     LoyaltyTier = "Gold"
	TierPlatinum LoyaltyTier = "Platinum"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// ClassifySegment applies the ordered segment rules; the first match wins.
func ClassifySegment(spend float64, daysSinceLastPurchase, orders int) CustomerSegment {
	switch {
	case spend > 1500 && daysSinceLastPurchase < 30:
		return SegmentVIP
	case spend > 800 && daysSinceLastPurchase < 60:
		return SegmentLoyal
	case daysSinceLastPurchase > 180:
		return SegmentAtRisk
	case orders <= 2:
		return SegmentNew
	default:
		return SegmentRegular
	}
}

// Tiers returns the loyalty tiers a segment may be assigned.
func (s CustomerSegment) Tiers() []LoyaltyTier {
	switch s {
	case SegmentVIP:
		return []LoyaltyTier{TierGold, TierPlatinum}
	case SegmentLoyal:
		return []LoyaltyTier{TierSilver, TierGold}
	case SegmentRegular:
		return []LoyaltyTier{TierBronze, TierSilver}
	default:
		return []LoyaltyTier{TierBronze}
	}
}

// Account is a registered customer account.
type Account struct {
	DatasetID string `json:"-" gorm:"primaryKey;size:36"`

	CustomerID         string    `json:"customer_id" gorm:"primaryKey;size:36"`
	AccountCreatedDate time.Time `json:"account_created_date"`
	AccountStatus      string    `json:"account_status" gorm:"size:16"`

	FirstName    string    `json:"first_name" gorm:"size:64"`
	LastName     string    `json:"last_name" gorm:"size:64"`
	EmailAddress string    `json:"email_address" gorm:"size:128;index"`
	PhoneNumber  string    `json:"phone_number" gorm:"size:32"`
	DateOfBirth  time.Time `json:"date_of_birth"`
	Gender       string    `json:"gender" gorm:"size:16"`

	Country      Country `json:"country" gorm:"size:32;index"`
	City         string  `json:"city" gorm:"size:64"`
	PostalCode   string  `json:"postal_code" gorm:"size:16"`
	AddressLine1 string  `json:"address_line_1" gorm:"column:address_line_1;size:128"`
	Timezone     string  `json:"timezone" gorm:"size:64"`

	TotalOrders           int       `json:"total_orders"`
	TotalLifetimeSpend    float64   `json:"total_lifetime_spend"`
	AverageOrderValue     float64   `json:"average_order_value"`
	FirstPurchaseDate     time.Time `json:"first_purchase_date"`
	LastPurchaseDate      time.Time `json:"last_purchase_date"`
	DaysSinceLastPurchase int       `json:"days_since_last_purchase"`

	CustomerSegment CustomerSegment `json:"customer_segment" gorm:"size:16"`
	LoyaltyTier     LoyaltyTier     `json:"loyalty_tier" gorm:"size:16"`
	LoyaltyPoints   int             `json:"loyalty_points"`

	PreferredCategories    string `json:"preferred_categories" gorm:"size:128"`
	EmailSubscribed        bool   `json:"email_subscribed"`
	SMSSubscribed          bool   `json:"sms_subscribed" gorm:"column:sms_subscribed"`
	MarketingOptIn         bool   `json:"marketing_opt_in"`
	PreferredCommunication string `json:"preferred_communication" gorm:"size:16"`

	LoginFrequencyDays    int     `json:"login_frequency_days"`
	CartSaveCount         int     `json:"cart_save_count"`
	WishlistItems         int     `json:"wishlist_items"`
	ReviewCount           int     `json:"review_count"`
	ReferralCount         int     `json:"referral_count"`
	PaymentMethodsCount   int     `json:"payment_methods_count"`
	FailedPaymentAttempts int     `json:"failed_payment_attempts"`
	ReturnRatePercent     float64 `json:"return_rate_percent"`
	DisputeCount          int     `json:"dispute_count"`
	EmailOpenRatePercent  float64 `json:"email_open_rate_percent"`
	EmailClickRatePercent float64 `json:"email_click_rate_percent"`
	AppUsageDays          int     `json:"app_usage_days"`
	SocialMediaFollower   bool    `json:"social_media_follower"`

	AccountAgeDays     int     `json:"account_age_days"`
	IsRecentCustomer   bool    `json:"is_recent_customer"`
	IsHighValue        bool    `json:"is_high_value"`
	IsFrequentBuyer    bool    `json:"is_frequent_buyer"`
	CustomerValueScore float64 `json:"customer_value_score"`
}

// TableName places accounts in the raw (bronze) layer.
func (Account) TableName() string {
	return "bronze_customer_accounts"
}

// IsActive reports whether the account can be linked behaviourally.
func (a Account) IsActive() bool {
	return a.AccountStatus == StatusActive
}
