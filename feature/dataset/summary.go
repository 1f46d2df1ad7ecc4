package dataset

import (
	"sort"
	"time"

	"commerce-linker/core/models"
	"commerce-linker/core/utils"
)

// DateRange spans the earliest and latest date of a population.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Share is a category with its count and percentage of the population.
type Share struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// SessionSummary describes a website session population.
type SessionSummary struct {
	TotalRecords            int       `json:"total_records"`
	UniqueCustomers         int       `json:"unique_customers"`
	UniqueSessions          int       `json:"unique_sessions"`
	DateRange               DateRange `json:"date_range"`
	AvgPageViews            float64   `json:"avg_page_views"`
	AvgSessionDuration      float64   `json:"avg_session_duration_minutes"`
	BounceRatePercent       float64   `json:"bounce_rate_percent"`
	ConversionRatePercent   float64   `json:"conversion_rate_percent"`
	TotalRevenue            float64   `json:"total_revenue"`
	AverageOrderValue       float64   `json:"average_order_value"`
	CartAbandonmentPercent  float64   `json:"cart_abandonment_percent"`
	GuestCheckoutPercent    float64   `json:"guest_checkout_percent"`
	AccountCreationPercent  float64   `json:"account_creation_percent"`
	NewsletterSignupPercent float64   `json:"newsletter_signup_percent"`
	Devices                 []Share   `json:"devices"`
	TopReferrers            []Share   `json:"top_referrers"`
}

// AccountSummary describes a customer account population.
type AccountSummary struct {
	TotalAccounts          int       `json:"total_accounts"`
	DateRange              DateRange `json:"date_range"`
	Statuses               []Share   `json:"statuses"`
	Segments               []Share   `json:"segments"`
	Countries              []Share   `json:"countries"`
	TotalLifetimeValue     float64   `json:"total_lifetime_value"`
	AvgLifetimeValue       float64   `json:"avg_lifetime_value"`
	AvgOrderValue          float64   `json:"avg_order_value"`
	HighValueCount         int       `json:"high_value_count"`
	HighValuePercent       float64   `json:"high_value_percent"`
	EmailSubscribedPercent float64   `json:"email_subscribed_percent"`
	MarketingOptInPercent  float64   `json:"marketing_opt_in_percent"`
	AvgReviewCount         float64   `json:"avg_review_count"`
	RecentCustomers        int       `json:"recent_customers"`
	RecentCustomersPercent float64   `json:"recent_customers_percent"`
}

// Summary pairs both population summaries.
type Summary struct {
	Accounts AccountSummary `json:"accounts"`
	Sessions SessionSummary `json:"sessions"`
}

// shares orders categories by count, then name, and keeps at most limit
// entries when limit is positive.
func shares(counts map[string]int, total, limit int) []Share {
	out := make([]Share, 0, len(counts))
	for name, n := range counts {
		out = append(out, Share{Name: name, Count: n, Percent: utils.Percent(float64(n), float64(total))})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func dateRange(min, max time.Time) DateRange {
	if min.IsZero() {
		return DateRange{}
	}
	return DateRange{From: min.Format(time.DateOnly), To: max.Format(time.DateOnly)}
}

// SummarizeSessions reports counts, means and rates over sessions.
func SummarizeSessions(sessions []models.Session) SessionSummary {
	sum := SessionSummary{TotalRecords: len(sessions), Devices: []Share{}, TopReferrers: []Share{}}
	if len(sessions) == 0 {
		return sum
	}

	customers := make(map[string]struct{})
	ids := make(map[string]struct{})
	devices := make(map[string]int)
	referrers := make(map[string]int)

	var (
		pageViews, duration, bounce float64
		converted, abandoned, guest int
		accounts, newsletter        int
		first, last                 time.Time
	)
	for _, s := range sessions {
		customers[s.CustomerID] = struct{}{}
		ids[s.SessionID] = struct{}{}
		devices[s.DeviceType]++
		referrers[s.ReferrerSource]++

		pageViews += float64(s.PageViews)
		duration += s.SessionDurationMinutes
		bounce += s.BounceRate
		if s.Converted {
			converted++
			sum.TotalRevenue += s.Revenue
			if s.IsGuestCheckout {
				guest++
			}
		}
		if s.CartAbandonment {
			abandoned++
		}
		if s.HasAccount {
			accounts++
		}
		if s.NewsletterSignup {
			newsletter++
		}
		if first.IsZero() || s.SessionDate.Before(first) {
			first = s.SessionDate
		}
		if s.SessionDate.After(last) {
			last = s.SessionDate
		}
	}

	n := float64(len(sessions))
	sum.UniqueCustomers = len(customers)
	sum.UniqueSessions = len(ids)
	sum.DateRange = dateRange(first, last)
	sum.AvgPageViews = utils.Round2(pageViews / n)
	sum.AvgSessionDuration = utils.Round2(duration / n)
	sum.BounceRatePercent = utils.Percent(bounce, n)
	sum.ConversionRatePercent = utils.Percent(float64(converted), n)
	sum.AverageOrderValue = utils.Round2(utils.SafeDiv(sum.TotalRevenue, float64(converted)))
	sum.TotalRevenue = utils.Round2(sum.TotalRevenue)
	sum.CartAbandonmentPercent = utils.Percent(float64(abandoned), n)
	sum.GuestCheckoutPercent = utils.Percent(float64(guest), float64(converted))
	sum.AccountCreationPercent = utils.Percent(float64(accounts), n)
	sum.NewsletterSignupPercent = utils.Percent(float64(newsletter), n)
	sum.Devices = shares(devices, len(sessions), 0)
	sum.TopReferrers = shares(referrers, len(sessions), 5)
	return sum
}

// SummarizeAccounts reports distributions, means and rates over accounts.
func SummarizeAccounts(accounts []models.Account) AccountSummary {
	sum := AccountSummary{TotalAccounts: len(accounts), Statuses: []Share{}, Segments: []Share{}, Countries: []Share{}}
	if len(accounts) == 0 {
		return sum
	}

	statuses := make(map[string]int)
	segments := make(map[string]int)
	countries := make(map[string]int)

	var (
		aov, reviews      float64
		subscribed, optIn int
		first, last       time.Time
	)
	for _, a := range accounts {
		statuses[a.AccountStatus]++
		segments[string(a.CustomerSegment)]++
		countries[string(a.Country)]++

		sum.TotalLifetimeValue += a.TotalLifetimeSpend
		aov += a.AverageOrderValue
		reviews += float64(a.ReviewCount)
		if a.IsHighValue {
			sum.HighValueCount++
		}
		if a.IsRecentCustomer {
			sum.RecentCustomers++
		}
		if a.EmailSubscribed {
			subscribed++
		}
		if a.MarketingOptIn {
			optIn++
		}
		if first.IsZero() || a.AccountCreatedDate.Before(first) {
			first = a.AccountCreatedDate
		}
		if a.AccountCreatedDate.After(last) {
			last = a.AccountCreatedDate
		}
	}

	n := float64(len(accounts))
	sum.DateRange = dateRange(first, last)
	sum.Statuses = shares(statuses, len(accounts), 0)
	sum.Segments = shares(segments, len(accounts), 0)
	sum.Countries = shares(countries, len(accounts), 0)
	sum.AvgLifetimeValue = utils.Round2(sum.TotalLifetimeValue / n)
	sum.TotalLifetimeValue = utils.Round2(sum.TotalLifetimeValue)
	sum.AvgOrderValue = utils.Round2(aov / n)
	sum.HighValuePercent = utils.Percent(float64(sum.HighValueCount), n)
	sum.EmailSubscribedPercent = utils.Percent(float64(subscribed), n)
	sum.MarketingOptInPercent = utils.Percent(float64(optIn), n)
	sum.AvgReviewCount = utils.Round(reviews/n, 1)
	sum.RecentCustomersPercent = utils.Percent(float64(sum.RecentCustomers), n)
	return sum
}

// Summarize reports on both populations of a dataset.
func Summarize(ds *Dataset) Summary {
	return Summary{
		Accounts: SummarizeAccounts(ds.Accounts),
		Sessions: SummarizeSessions(ds.Sessions),
	}
}
