package reconcile

import (
	"context"
	"math"
	"testing"
	"time"

	"commerce-linker/core/generator"
	"commerce-linker/core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return testNow }

func newTestEngine(opts ...EngineOption) *Engine {
	return NewEngine(DefaultConfig(), append([]EngineOption{WithClock(clock)}, opts...)...)
}

func account(id string, country models.Country, aov float64) models.Account {
	return models.Account{
		CustomerID:            id,
		EmailAddress:          id + "@accounts.test",
		Country:               country,
		AccountStatus:         models.StatusActive,
		AverageOrderValue:     aov,
		AccountCreatedDate:    testNow.AddDate(0, 0, -10),
		DaysSinceLastPurchase: 100,
	}
}

func session(id string, country models.Country, revenue float64, ts time.Time) models.Session {
	return models.Session{
		SessionID:       id,
		CustomerID:      "cust-" + id,
		CustomerEmail:   id + "@sessions.test",
		CustomerCountry: country,
		Converted:       revenue > 0,
		Revenue:         revenue,
		SessionDate:     ts,
	}
}

func TestScenarioA_ExactEmailFirstAccount(t *testing.T) {
	a1 := account("acc-1", models.CountryJapan, 500)
	a2 := account("acc-2", models.CountryJapan, 500)
	a1.EmailAddress, a2.EmailAddress = "a@x.com", "a@x.com"

	s := session("s-1", models.CountryJapan, 0, testNow)
	s.CustomerEmail = "a@x.com"

	res, err := newTestEngine().Run(context.Background(), []models.Session{s}, []models.Account{a1, a2})
	require.NoError(t, err)

	require.Len(t, res.Matches, 1)
	m := res.Matches[0]
	assert.Equal(t, MatchExactEmail, m.Type)
	assert.Equal(t, "s-1", m.SessionID)
	assert.Equal(t, "acc-1", m.AccountCustomerID)
	assert.Equal(t, ConfidenceHigh, m.Confidence)
	assert.Equal(t, "a@x.com", m.Email)
	assert.Equal(t, 1, res.ExactEmailMatches)
	assert.Equal(t, 1, res.TotalUniqueMatches)
	assert.Equal(t, 100.0, res.MatchRatePercent)
}

func TestScenarioB_NoAccounts(t *testing.T) {
	g := generator.New(generator.Config{Seed: 17}, generator.WithClock(clock))
	sessions := g.GenerateSessions(100, nil)
	require.Len(t, sessions, 100)

	res, err := newTestEngine().Run(context.Background(), sessions, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, res.TotalUniqueMatches)
	assert.Equal(t, 0.0, res.RevenueCoverage)
	assert.Equal(t, 0.0, res.MatchRatePercent)
	assert.Equal(t, 0.0, res.ConversionMatchRate)
	assert.Empty(t, res.Matches)
}

func TestScenarioC_GeographicBehavioral(t *testing.T) {
	acc := account("acc-au", models.CountryAustralia, 100)
	s := session("s-au", models.CountryAustralia, 120, testNow)

	res, err := newTestEngine().Run(context.Background(), []models.Session{s}, []models.Account{acc})
	require.NoError(t, err)

	require.Len(t, res.Matches, 1)
	m := res.Matches[0]
	assert.Equal(t, MatchGeographicBehavioral, m.Type)
	assert.Equal(t, ConfidenceMedium, m.Confidence)
	assert.Equal(t, "acc-au", m.AccountCustomerID)
	require.NotNil(t, m.RevenueDelta)
	assert.InDelta(t, 20.0, *m.RevenueDelta, 1e-9)
	assert.InDelta(t, 100.0, *m.AccountAvgOrder, 1e-9)
	assert.Equal(t, 1, res.GeographicBehavioralMatches)
	assert.Equal(t, 100.0, res.RevenueCoverage)
	assert.Equal(t, 100.0, res.ConversionMatchRate)
}

func TestExactEmail_ClaimsAllSessionsSharingEmail(t *testing.T) {
	acc := account("acc-1", models.CountrySingapore, 40)
	acc.EmailAddress = "shared@x.com"

	s1 := session("s-1", models.CountrySingapore, 0, testNow.AddDate(0, 0, -3))
	s2 := session("s-2", models.CountrySingapore, 45, testNow.AddDate(0, 0, -1))
	s1.CustomerEmail, s2.CustomerEmail = "shared@x.com", "shared@x.com"

	res, err := newTestEngine().Run(context.Background(), []models.Session{s1, s2}, []models.Account{acc})
	require.NoError(t, err)

	require.Len(t, res.Matches, 1)
	assert.Equal(t, "s-1", res.Matches[0].SessionID)
	assert.Equal(t, 1, res.ExactEmailMatches)
	// s-2 is claimed by the exact pass, so the geographic pass cannot use it
	assert.Equal(t, 0, res.GeographicBehavioralMatches)
	assert.Equal(t, 2, res.TotalUniqueMatches)
	assert.ElementsMatch(t, []string{"s-1", "s-2"}, res.MatchedSessionIDs)
}

func TestGeographic_Filters(t *testing.T) {
	base := session("s", models.CountryHongKong, 200, testNow)

	tests := []struct {
		name   string
		mutate func(a *models.Account)
		want   int
	}{
		{"Eligible", func(a *models.Account) {}, 1},
		{"Other country", func(a *models.Account) { a.Country = models.CountryJapan }, 0},
		{"Inactive", func(a *models.Account) { a.AccountStatus = models.StatusInactive }, 0},
		{"Outside tolerance", func(a *models.Account) { a.AverageOrderValue = 250.01 }, 0},
		{"At tolerance", func(a *models.Account) { a.AverageOrderValue = 250 }, 1},
		{"Created after session", func(a *models.Account) { a.AccountCreatedDate = testNow.Add(time.Hour) }, 0},
		{"Created at session time", func(a *models.Account) { a.AccountCreatedDate = testNow }, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := account("acc", models.CountryHongKong, 210)
			tt.mutate(&acc)

			res, err := newTestEngine().Run(context.Background(), []models.Session{base}, []models.Account{acc})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.GeographicBehavioralMatches)
		})
	}
}

func TestGeographic_SkipsUnconverted(t *testing.T) {
	acc := account("acc", models.CountryHongKong, 0)
	s := session("s", models.CountryHongKong, 0, testNow)

	res, err := newTestEngine().Run(context.Background(), []models.Session{s}, []models.Account{acc})
	require.NoError(t, err)
	assert.Equal(t, 0, res.GeographicBehavioralMatches)
}

func TestGeographic_TieGoesToFirstAccount(t *testing.T) {
	first := account("acc-first", models.CountryJapan, 90)
	second := account("acc-second", models.CountryJapan, 110)
	s := session("s", models.CountryJapan, 100, testNow)

	res, err := newTestEngine().Run(context.Background(), []models.Session{s}, []models.Account{first, second})
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, "acc-first", res.Matches[0].AccountCustomerID)
}

func TestGeographic_PassLocalAccountDedup(t *testing.T) {
	near := account("acc-near", models.CountryJapan, 100)
	far := account("acc-far", models.CountryJapan, 140)
	s1 := session("s-1", models.CountryJapan, 100, testNow.AddDate(0, 0, -2))
	s2 := session("s-2", models.CountryJapan, 105, testNow.AddDate(0, 0, -1))

	res, err := newTestEngine().Run(context.Background(), []models.Session{s1, s2}, []models.Account{near, far})
	require.NoError(t, err)

	// s-2's best candidate is already used, so it is rejected rather than
	// falling back to the next best account
	require.Len(t, res.Matches, 1)
	assert.Equal(t, "s-1", res.Matches[0].SessionID)
	assert.Equal(t, "acc-near", res.Matches[0].AccountCustomerID)
	assert.False(t, containsString(res.MatchedSessionIDs, "s-2"))
}

func TestGeographic_ExactMatchedAccountStaysEligible(t *testing.T) {
	acc := account("acc", models.CountryAustralia, 80)
	acc.EmailAddress = "known@x.com"

	exact := session("s-exact", models.CountryAustralia, 0, testNow.AddDate(0, 0, -2))
	exact.CustomerEmail = "known@x.com"
	other := session("s-other", models.CountryAustralia, 75, testNow.AddDate(0, 0, -1))

	res, err := newTestEngine().Run(context.Background(), []models.Session{exact, other}, []models.Account{acc})
	require.NoError(t, err)

	require.Len(t, res.Matches, 2)
	assert.Equal(t, MatchExactEmail, res.Matches[0].Type)
	assert.Equal(t, MatchGeographicBehavioral, res.Matches[1].Type)
	assert.Equal(t, "acc", res.Matches[1].AccountCustomerID)
}

func TestTiming_PicksClosestAndConsumesSessions(t *testing.T) {
	acc1 := account("acc-1", models.CountryJapan, 0)
	acc1.DaysSinceLastPurchase = 2
	acc2 := account("acc-2", models.CountryJapan, 0)
	acc2.DaysSinceLastPurchase = 2
	stale := account("acc-stale", models.CountryJapan, 0)
	stale.DaysSinceLastPurchase = 8

	lastPurchase := testNow.AddDate(0, 0, -2)
	closest := session("s-closest", models.CountryJapan, 0, lastPurchase.Add(time.Hour))
	next := session("s-next", models.CountryJapan, 0, lastPurchase.Add(-30*time.Hour))
	edge := session("s-edge", models.CountryJapan, 0, lastPurchase.Add(72*time.Hour))
	outside := session("s-outside", models.CountryJapan, 0, lastPurchase.Add(-73*time.Hour))
	foreign := session("s-foreign", models.CountrySingapore, 0, lastPurchase)

	sessions := []models.Session{outside, next, closest, edge, foreign}
	res, err := newTestEngine().Run(context.Background(), sessions, []models.Account{acc1, stale, acc2})
	require.NoError(t, err)

	require.Len(t, res.Matches, 2)
	assert.Equal(t, "s-closest", res.Matches[0].SessionID)
	assert.Equal(t, "acc-1", res.Matches[0].AccountCustomerID)
	assert.Equal(t, 0, *res.Matches[0].DaysDifference)
	assert.Equal(t, ConfidenceLow, res.Matches[0].Confidence)

	assert.Equal(t, "s-next", res.Matches[1].SessionID)
	assert.Equal(t, "acc-2", res.Matches[1].AccountCustomerID)
	assert.Equal(t, 1, *res.Matches[1].DaysDifference)
	assert.Equal(t, 2, res.TimingPatternMatches)
}

func TestTiming_WindowBoundary(t *testing.T) {
	acc := account("acc", models.CountryJapan, 0)
	acc.DaysSinceLastPurchase = 7
	lastPurchase := testNow.AddDate(0, 0, -7)
	edge := session("s-edge", models.CountryJapan, 0, lastPurchase.Add(72*time.Hour))

	res, err := newTestEngine().Run(context.Background(), []models.Session{edge}, []models.Account{acc})
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, 3, *res.Matches[0].DaysDifference)
}

func TestTiming_SameAccountMatchesRepeatedly(t *testing.T) {
	acc := account("acc", models.CountryJapan, 0)
	acc.DaysSinceLastPurchase = 1
	s := session("s", models.CountryJapan, 0, testNow.AddDate(0, 0, -1))

	res, err := newTestEngine().Run(context.Background(), []models.Session{s}, []models.Account{acc, acc})
	require.NoError(t, err)
	// the second iteration finds nothing left to claim
	assert.Equal(t, 1, res.TimingPatternMatches)
}

func TestEngine_GeneratedPopulationInvariants(t *testing.T) {
	g := generator.New(generator.Config{Seed: 2024}, generator.WithClock(clock))
	accounts := g.GenerateAccounts(200)
	sessions := g.GenerateSessions(4000, accounts)

	res, err := newTestEngine().Run(context.Background(), sessions, accounts)
	require.NoError(t, err)

	accountsByID := map[string]models.Account{}
	for _, a := range accounts {
		accountsByID[a.CustomerID] = a
	}
	sessionsByID := map[string]models.Session{}
	for _, s := range sessions {
		sessionsByID[s.SessionID] = s
	}

	seen := map[string]bool{}
	geoAccounts := map[string]bool{}
	for _, m := range res.Matches {
		assert.False(t, seen[m.SessionID], "session %s matched twice", m.SessionID)
		seen[m.SessionID] = true

		s := sessionsByID[m.SessionID]
		a := accountsByID[m.AccountCustomerID]
		switch m.Type {
		case MatchExactEmail:
			assert.Equal(t, a.EmailAddress, s.CustomerEmail)
		case MatchGeographicBehavioral:
			assert.False(t, geoAccounts[a.CustomerID], "account reused within geographic pass")
			geoAccounts[a.CustomerID] = true
			assert.LessOrEqual(t, math.Abs(a.AverageOrderValue-s.Revenue), 50.0)
			assert.False(t, a.AccountCreatedDate.After(s.SessionDate))
			assert.Equal(t, a.Country, s.CustomerCountry)
			assert.True(t, s.Converted)
		case MatchTimingPattern:
			lp := testNow.AddDate(0, 0, -a.DaysSinceLastPurchase)
			assert.LessOrEqual(t, absDuration(s.SessionDate.Sub(lp)), 72*time.Hour)
			assert.LessOrEqual(t, a.DaysSinceLastPurchase, 7)
		}
	}

	assert.Equal(t, len(res.MatchedSessionIDs), res.TotalUniqueMatches)
	assert.GreaterOrEqual(t, res.TotalUniqueMatches, len(res.Matches))
	assert.Greater(t, res.ExactEmailMatches, 0)
	assert.LessOrEqual(t, res.RevenueCoverage, 100.0)
}

func TestEngine_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := session("s", models.CountryJapan, 10, testNow)
	_, err := newTestEngine().Run(ctx, []models.Session{s}, []models.Account{account("a", models.CountryJapan, 10)})
	assert.ErrorIs(t, err, context.Canceled)
}

type recordingPass struct {
	matchType MatchType
	seen      *[]MatchType
	claim     string
}

func (p recordingPass) Type() MatchType { return p.matchType }

func (p recordingPass) Apply(ctx context.Context, in Input, state *State) error {
	*p.seen = append(*p.seen, p.matchType)
	if p.claim != "" {
		state.Add(Match{Type: p.matchType, SessionID: p.claim})
	}
	return nil
}

func TestEngine_RunsPassesInOrderWithSharedState(t *testing.T) {
	var order []MatchType
	e := newTestEngine(WithPasses(
		recordingPass{matchType: MatchTimingPattern, seen: &order, claim: "s-1"},
		recordingPass{matchType: MatchExactEmail, seen: &order, claim: "s-1"},
	))

	res, err := e.Run(context.Background(), []models.Session{session("s-1", models.CountryJapan, 0, testNow)}, nil)
	require.NoError(t, err)

	assert.Equal(t, []MatchType{MatchTimingPattern, MatchExactEmail}, order)
	// the second claim of s-1 is dropped
	assert.Equal(t, 1, res.TimingPatternMatches)
	assert.Equal(t, 0, res.ExactEmailMatches)
	assert.Equal(t, 1, res.TotalUniqueMatches)
}

func TestResult_Filter(t *testing.T) {
	res := &Result{Matches: []Match{
		{Type: MatchExactEmail, SessionID: "1"},
		{Type: MatchTimingPattern, SessionID: "2"},
		{Type: MatchExactEmail, SessionID: "3"},
	}}

	assert.Len(t, res.Filter("", 0), 3)
	assert.Len(t, res.Filter(MatchExactEmail, 0), 2)
	assert.Len(t, res.Filter(MatchExactEmail, 1), 1)
	assert.Empty(t, res.Filter(MatchGeographicBehavioral, 5))
	assert.Equal(t, map[string]int{"exact_email": 0, "geographic_behavioral": 0, "timing_pattern": 0}, (&Result{}).CountsByType())
}

func containsString(items []string, want string) bool {
	for _, s := range items {
		if s == want {
			return true
		}
	}
	return false
}
