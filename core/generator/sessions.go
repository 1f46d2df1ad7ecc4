package generator

import (
	"sort"
	"time"

	"commerce-linker/core/models"
	"commerce-linker/core/rng"
	"commerce-linker/core/utils"
)

const (
	baseConversionRate    = 0.02
	maxConversionModifier = 0.015

	borrowConvertedRate = 0.70
	borrowBrowsingRate  = 0.15

	guestRateBorrowed  = 0.10
	guestRateAnonymous = 0.90
)

// ConversionProbability is the chance a session converts given its engagement.
func ConversionProbability(pageViews int, durationMinutes float64) float64 {
	return baseConversionRate + min(float64(pageViews)*0.001+durationMinutes*0.001, maxConversionModifier)
}

// GenerateSessions builds n sessions, clamped to Config.MaxSessions, sorted
// by session timestamp ascending. When accounts is non-empty some sessions
// carry the identity of a random account.
func (g *Generator) GenerateSessions(n int, accounts []models.Account) []models.Session {
	n = clampCount(n, g.cfg.maxSessions())
	now := g.now().UTC()

	pool := make([]string, max(100, n/2))
	for i := range pool {
		pool[i] = g.src.UUID()
	}

	sessions := make([]models.Session, 0, n)
	for i := 0; i < n; i++ {
		sessions = append(sessions, g.session(now, pool, accounts))
		g.tick()
	}

	deriveSessions(sessions)
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].SessionDate.Before(sessions[j].SessionDate)
	})
	return sessions
}

func (g *Generator) session(now time.Time, pool []string, accounts []models.Account) models.Session {
	customerID := rng.Pick(g.src, pool)
	sessionID := g.src.UUID()

	day := now.AddDate(0, 0, -g.src.IntRange(1, 90))
	ts := time.Date(day.Year(), day.Month(), day.Day(),
		g.src.IntRange(0, 23), g.src.IntRange(0, 59), g.src.IntRange(0, 59), 0, time.UTC)

	pageViews := g.src.IntRange(1, 35)
	duration := utils.Round2(g.src.Uniform(0.3, 25.0))
	bounce := 0.0
	if pageViews == 1 {
		bounce = 1.0
	}

	converted := g.src.Chance(ConversionProbability(pageViews, duration))
	revenue := 0.0
	if converted {
		revenue = utils.Round2(g.src.Uniform(25.0, 350.0))
	}

	device := rng.Pick(g.src, devices)
	browser := rng.Pick(g.src, browsers)
	os := rng.Pick(g.src, operatingSystems)
	switch device {
	case "Mobile":
		os = rng.Pick(g.src, mobileSystems)
	case "Tablet":
		os = rng.Pick(g.src, tabletSystems)
	}

	borrowed := false
	if len(accounts) > 0 {
		p := borrowBrowsingRate
		if converted {
			p = borrowConvertedRate
		}
		borrowed = g.src.Chance(p)
	}

	var (
		country models.Country
		city    string
		name    string
		email   string
	)
	if borrowed {
		acc := rng.Pick(g.src, accounts)
		country, city = acc.Country, acc.City
		name = acc.FirstName + " " + acc.LastName
		email = acc.EmailAddress
		customerID = acc.CustomerID
	} else {
		country = rng.Pick(g.src, models.Countries)
		city = rng.Pick(g.src, models.MustProfile(country).Cities)
		id := g.newIdentity()
		name, email = id.fullName(), id.email
	}
	profile := models.MustProfile(country)

	s := models.Session{
		CustomerID:       customerID,
		CustomerName:     name,
		CustomerEmail:    email,
		CustomerAge:      g.src.IntRange(18, 75),
		CustomerCountry:  country,
		CustomerCity:     city,
		RegistrationDate: ts.AddDate(0, 0, -g.src.IntRange(1, 730)),

		SessionID:        sessionID,
		SessionDate:      ts,
		SessionStartTime: ts.Format(time.TimeOnly),

		PageViews:              pageViews,
		SessionDurationMinutes: duration,
		BounceRate:             bounce,
		PagesPerSession:        float64(pageViews),
		EntryPageCategory:      rng.Pick(g.src, pageCategories),
		ExitPageCategory:       rng.Pick(g.src, pageCategories),

		DeviceType:       device,
		Browser:          browser,
		OperatingSystem:  os,
		ScreenResolution: rng.Pick(g.src, screenResolutions),

		ReferrerSource: rng.Pick(g.src, referrers),
		Converted:      converted,
		Revenue:        revenue,
		ItemsViewed:    g.src.IntRange(0, min(pageViews, 15)),

		Timezone:  rng.Pick(g.src, profile.Timezones),
		Latitude:  utils.Round(profile.Latitude+g.src.Uniform(-1, 1), 6),
		Longitude: utils.Round(profile.Longitude+g.src.Uniform(-1, 1), 6),
	}

	if g.src.Chance(0.3) {
		campaign := "campaign_" + rng.Pick(g.src, campaigns)
		s.CampaignSource = &campaign
	}
	if g.src.Chance(0.4) {
		medium := rng.Pick(g.src, utmMediums)
		s.UTMMedium = &medium
	}

	s.CartAbandonment = pageViews > 5 && g.src.Chance(0.75)
	s.NewsletterSignup = g.src.Chance(0.03)
	if converted {
		guestRate := guestRateAnonymous
		if borrowed {
			guestRate = guestRateBorrowed
		}
		s.IsGuestCheckout = g.src.Chance(guestRate)
	}

	s.TimeOnSiteSeconds = utils.Round(duration*60, 1)
	s.ScrollDepthPercent = utils.Round(g.src.Uniform(20, 100), 1)
	s.ClickThroughRate = utils.Round(g.src.Uniform(0.01, 0.15), 3)
	s.IPAddress = g.ipv4()
	return s
}

// deriveSessions fills the per-customer aggregates in generation order.
func deriveSessions(sessions []models.Session) {
	lifetime := make(map[string]float64)
	for _, s := range sessions {
		lifetime[s.CustomerID] += s.Revenue
	}

	seen := make(map[string]int)
	for i := range sessions {
		s := &sessions[i]
		seen[s.CustomerID]++
		s.CustomerSessionCount = seen[s.CustomerID]
		s.CustomerLifetimeValue = utils.Round2(lifetime[s.CustomerID])
		s.IsReturningCustomer = s.CustomerSessionCount > 1
		s.HasAccount = s.Converted && !s.IsGuestCheckout
		s.DaysSinceRegistration = daysBetween(s.RegistrationDate, s.SessionDate)
		if s.IsGuestCheckout {
			s.RegistrationDate = s.SessionDate
		}
	}
}
