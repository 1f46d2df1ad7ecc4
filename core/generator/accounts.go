package generator

import (
	"sort"
	"strings"
	"time"

	"commerce-linker/core/models"
	"commerce-linker/core/rng"
	"commerce-linker/core/utils"
)

var (
	// account age buckets in days, weighted toward recent signups
	ageBuckets = [][2]int{{1, 90}, {91, 365}, {366, 1095}}
	ageWeights = []float64{40, 35, 25}
)

// GenerateAccounts builds n accounts, clamped to Config.MaxAccounts, sorted
// by customer value score descending.
func (g *Generator) GenerateAccounts(n int) []models.Account {
	n = clampCount(n, g.cfg.maxAccounts())
	now := g.now().UTC()

	accounts := make([]models.Account, 0, n)
	for i := 0; i < n; i++ {
		accounts = append(accounts, g.account(now))
		g.tick()
	}

	for i := range accounts {
		deriveAccount(&accounts[i], now)
	}
	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].CustomerValueScore > accounts[j].CustomerValueScore
	})
	return accounts
}

func (g *Generator) account(now time.Time) models.Account {
	country := rng.Pick(g.src, models.Countries)
	profile := models.MustProfile(country)

	bucket := ageBuckets[rng.Weighted(g.src, ageWeights)]
	created := now.AddDate(0, 0, -g.src.IntRange(bucket[0], bucket[1]))

	orders := g.src.IntRange(1, 25)
	spend := utils.Round2(g.src.Uniform(50, 2500))
	recency := g.src.IntRange(1, 365)

	segment := models.ClassifySegment(spend, recency, orders)
	tier := rng.Pick(g.src, segment.Tiers())
	points := g.src.IntRange(0, 5000)
	if tier == models.TierBronze {
		points = g.src.IntRange(0, 500)
	}

	emailSubscribed := g.src.Chance(0.7)
	smsSubscribed := g.src.Chance(0.4)
	marketingOptIn := g.src.Chance(0.6)
	categories := rng.Sample(g.src, productCategories, g.src.IntRange(1, 3))

	id := g.newIdentity()
	a := models.Account{
		CustomerID:         g.src.UUID(),
		AccountCreatedDate: created,
		AccountStatus:      rng.Pick(g.src, accountStatuses),

		FirstName:    id.first,
		LastName:     id.last,
		EmailAddress: id.email,
		PhoneNumber:  rng.Pick(g.src, profile.PhoneCodes) + "-" + g.src.Digits(9),
		DateOfBirth:  g.birthDate(),
		Gender:       rng.Pick(g.src, genders),

		Country:      country,
		City:         rng.Pick(g.src, profile.Cities),
		PostalCode:   g.src.Digits(5),
		AddressLine1: g.streetAddress(),
		Timezone:     rng.Pick(g.src, profile.Timezones),

		TotalOrders:           orders,
		TotalLifetimeSpend:    spend,
		AverageOrderValue:     averageOrderValue(spend, orders),
		FirstPurchaseDate:     created.AddDate(0, 0, g.src.IntRange(0, 30)),
		LastPurchaseDate:      now.AddDate(0, 0, -recency),
		DaysSinceLastPurchase: recency,

		CustomerSegment: segment,
		LoyaltyTier:     tier,
		LoyaltyPoints:   points,

		PreferredCategories:    strings.Join(categories, ", "),
		EmailSubscribed:        emailSubscribed,
		SMSSubscribed:          smsSubscribed,
		MarketingOptIn:         marketingOptIn,
		PreferredCommunication: rng.Pick(g.src, communicationPreferences),

		LoginFrequencyDays:    g.src.IntRange(1, 90),
		CartSaveCount:         g.src.IntRange(0, 5),
		WishlistItems:         g.src.IntRange(0, 15),
		ReviewCount:           g.src.IntRange(0, min(orders, 10)),
		ReferralCount:         g.src.IntRange(0, 3),
		PaymentMethodsCount:   g.src.IntRange(1, 4),
		FailedPaymentAttempts: g.src.IntRange(0, 2),
		ReturnRatePercent:     utils.Round(g.src.Uniform(0, 25), 1),
		DisputeCount:          g.src.IntRange(0, 1),
		AppUsageDays:          g.src.IntRange(0, 30),
		SocialMediaFollower:   g.src.Chance(0.3),
	}
	if emailSubscribed {
		a.EmailOpenRatePercent = utils.Round(g.src.Uniform(15, 85), 1)
		a.EmailClickRatePercent = utils.Round(g.src.Uniform(2, 15), 1)
	}
	return a
}

func (g *Generator) birthDate() time.Time {
	start := time.Date(1954, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC)
	return start.AddDate(0, 0, g.src.IntRange(0, daysBetween(start, end)))
}

func averageOrderValue(spend float64, orders int) float64 {
	if orders <= 0 {
		return 0
	}
	return utils.Round2(spend / float64(orders))
}

// deriveAccount fills the fields computed over the finished population.
func deriveAccount(a *models.Account, now time.Time) {
	a.AccountAgeDays = daysBetween(a.AccountCreatedDate, now)
	a.IsRecentCustomer = a.DaysSinceLastPurchase <= 30
	a.IsHighValue = a.TotalLifetimeSpend >= 1000
	a.IsFrequentBuyer = a.TotalOrders >= 5
	a.CustomerValueScore = ValueScore(a.TotalLifetimeSpend, a.TotalOrders, a.DaysSinceLastPurchase, a.LoyaltyPoints)
}

// ValueScore weighs spend, order count, recency and loyalty points into a
// single ranking score rounded to 2 decimals.
func ValueScore(spend float64, orders, daysSinceLastPurchase, points int) float64 {
	return utils.Round2(
		(spend/100)*0.4 +
			float64(orders)*0.3 +
			float64(30-utils.Clip(daysSinceLastPurchase, 0, 30))*0.2 +
			(float64(points)/100)*0.1,
	)
}
