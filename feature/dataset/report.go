package dataset

import (
	"fmt"
	"io"
	"strings"
)

func writeShares(b *strings.Builder, title string, shares []Share) {
	if len(shares) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, s := range shares {
		fmt.Fprintf(b, "- %s: %d (%.1f%%)\n", s.Name, s.Count, s.Percent)
	}
}

// WriteText prints a console summary of both populations.
func WriteText(w io.Writer, sum Summary) error {
	rule := strings.Repeat("=", 60)
	var b strings.Builder

	s := sum.Sessions
	fmt.Fprintf(&b, "\n%s\nWEBSITE TRAFFIC SUMMARY\n%s\n", rule, rule)
	fmt.Fprintf(&b, "Total records: %d\n", s.TotalRecords)
	fmt.Fprintf(&b, "Unique customers: %d\n", s.UniqueCustomers)
	fmt.Fprintf(&b, "Unique sessions: %d\n", s.UniqueSessions)
	fmt.Fprintf(&b, "Date range: %s to %s\n", s.DateRange.From, s.DateRange.To)
	fmt.Fprintf(&b, "Average page views: %.2f\n", s.AvgPageViews)
	fmt.Fprintf(&b, "Average session duration: %.2f minutes\n", s.AvgSessionDuration)
	fmt.Fprintf(&b, "Bounce rate: %.2f%%\n", s.BounceRatePercent)
	fmt.Fprintf(&b, "Conversion rate: %.2f%%\n", s.ConversionRatePercent)
	fmt.Fprintf(&b, "Total revenue: $%.2f\n", s.TotalRevenue)
	fmt.Fprintf(&b, "Average order value: $%.2f\n", s.AverageOrderValue)
	fmt.Fprintf(&b, "Cart abandonment: %.2f%%\n", s.CartAbandonmentPercent)
	fmt.Fprintf(&b, "Guest checkouts (of converted): %.2f%%\n", s.GuestCheckoutPercent)
	fmt.Fprintf(&b, "Account creation: %.2f%%\n", s.AccountCreationPercent)
	fmt.Fprintf(&b, "Newsletter signups: %.2f%%\n", s.NewsletterSignupPercent)
	writeShares(&b, "Devices", s.Devices)
	writeShares(&b, "Top referrers", s.TopReferrers)

	a := sum.Accounts
	fmt.Fprintf(&b, "\n%s\nCUSTOMER ACCOUNTS SUMMARY\n%s\n", rule, rule)
	fmt.Fprintf(&b, "Total accounts: %d\n", a.TotalAccounts)
	fmt.Fprintf(&b, "Account creation range: %s to %s\n", a.DateRange.From, a.DateRange.To)
	fmt.Fprintf(&b, "Total lifetime value: $%.2f\n", a.TotalLifetimeValue)
	fmt.Fprintf(&b, "Average lifetime value: $%.2f\n", a.AvgLifetimeValue)
	fmt.Fprintf(&b, "Average order value: $%.2f\n", a.AvgOrderValue)
	fmt.Fprintf(&b, "High value customers: %d (%.1f%%)\n", a.HighValueCount, a.HighValuePercent)
	fmt.Fprintf(&b, "Email subscribed: %.1f%%\n", a.EmailSubscribedPercent)
	fmt.Fprintf(&b, "Marketing opt-in: %.1f%%\n", a.MarketingOptInPercent)
	fmt.Fprintf(&b, "Average reviews: %.2f\n", a.AvgReviewCount)
	fmt.Fprintf(&b, "Recent customers: %d (%.1f%%)\n", a.RecentCustomers, a.RecentCustomersPercent)
	writeShares(&b, "Account status", a.Statuses)
	writeShares(&b, "Customer segments", a.Segments)
	writeShares(&b, "Countries", a.Countries)

	_, err := io.WriteString(w, b.String())
	return err
}
