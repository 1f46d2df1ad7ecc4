package dataset

import (
	"testing"
	"time"

	"commerce-linker/core/models"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeSessions(t *testing.T) {
	day := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	sessions := []models.Session{
		{CustomerID: "c1", SessionID: "s1", SessionDate: day, PageViews: 1, BounceRate: 1, DeviceType: "Mobile", ReferrerSource: "Google", SessionDurationMinutes: 2},
		{CustomerID: "c1", SessionID: "s2", SessionDate: day.AddDate(0, 0, 3), PageViews: 5, DeviceType: "Mobile", ReferrerSource: "Direct",
			Converted: true, Revenue: 100, IsGuestCheckout: true, CartAbandonment: true, SessionDurationMinutes: 4},
		{CustomerID: "c2", SessionID: "s3", SessionDate: day.AddDate(0, 0, 1), PageViews: 6, DeviceType: "Desktop", ReferrerSource: "Google",
			Converted: true, Revenue: 50, HasAccount: true, NewsletterSignup: true, SessionDurationMinutes: 6},
		{CustomerID: "c3", SessionID: "s4", SessionDate: day.AddDate(0, 0, 2), PageViews: 4, DeviceType: "Tablet", ReferrerSource: "Email", SessionDurationMinutes: 8},
	}

	sum := SummarizeSessions(sessions)

	assert.Equal(t, 4, sum.TotalRecords)
	assert.Equal(t, 3, sum.UniqueCustomers)
	assert.Equal(t, 4, sum.UniqueSessions)
	assert.Equal(t, DateRange{From: "2026-02-01", To: "2026-02-04"}, sum.DateRange)
	assert.Equal(t, 4.0, sum.AvgPageViews)
	assert.Equal(t, 5.0, sum.AvgSessionDuration)
	assert.Equal(t, 25.0, sum.BounceRatePercent)
	assert.Equal(t, 50.0, sum.ConversionRatePercent)
	assert.Equal(t, 150.0, sum.TotalRevenue)
	assert.Equal(t, 75.0, sum.AverageOrderValue)
	assert.Equal(t, 25.0, sum.CartAbandonmentPercent)
	assert.Equal(t, 50.0, sum.GuestCheckoutPercent)
	assert.Equal(t, 25.0, sum.AccountCreationPercent)
	assert.Equal(t, 25.0, sum.NewsletterSignupPercent)
	assert.Equal(t, []Share{
		{Name: "Mobile", Count: 2, Percent: 50},
		{Name: "Desktop", Count: 1, Percent: 25},
		{Name: "Tablet", Count: 1, Percent: 25},
	}, sum.Devices)
	assert.Equal(t, "Google", sum.TopReferrers[0].Name)
}

func TestSummarizeAccounts(t *testing.T) {
	created := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	accounts := []models.Account{
		{AccountStatus: models.StatusActive, CustomerSegment: models.SegmentVIP, Country: models.CountryJapan,
			TotalLifetimeSpend: 2000, AverageOrderValue: 200, IsHighValue: true, EmailSubscribed: true, ReviewCount: 3,
			IsRecentCustomer: true, AccountCreatedDate: created},
		{AccountStatus: models.StatusInactive, CustomerSegment: models.SegmentNew, Country: models.CountryJapan,
			TotalLifetimeSpend: 100, AverageOrderValue: 50, MarketingOptIn: true, ReviewCount: 0,
			AccountCreatedDate: created.AddDate(0, 1, 0)},
	}

	sum := SummarizeAccounts(accounts)

	assert.Equal(t, 2, sum.TotalAccounts)
	assert.Equal(t, DateRange{From: "2025-06-01", To: "2025-07-01"}, sum.DateRange)
	assert.Equal(t, []Share{{Name: "Japan", Count: 2, Percent: 100}}, sum.Countries)
	assert.Len(t, sum.Statuses, 2)
	assert.Equal(t, 2100.0, sum.TotalLifetimeValue)
	assert.Equal(t, 1050.0, sum.AvgLifetimeValue)
	assert.Equal(t, 125.0, sum.AvgOrderValue)
	assert.Equal(t, 1, sum.HighValueCount)
	assert.Equal(t, 50.0, sum.HighValuePercent)
	assert.Equal(t, 50.0, sum.EmailSubscribedPercent)
	assert.Equal(t, 50.0, sum.MarketingOptInPercent)
	assert.Equal(t, 1.5, sum.AvgReviewCount)
	assert.Equal(t, 1, sum.RecentCustomers)
	assert.Equal(t, 50.0, sum.RecentCustomersPercent)
}

func TestSummarize_Empty(t *testing.T) {
	sum := Summarize(&Dataset{})
	assert.Equal(t, 0, sum.Accounts.TotalAccounts)
	assert.Equal(t, 0.0, sum.Sessions.ConversionRatePercent)
	assert.Empty(t, sum.Sessions.Devices)
	assert.NotNil(t, sum.Sessions.Devices)
}
