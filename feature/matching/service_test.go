package matching

import (
	"context"
	"testing"
	"time"

	"commerce-linker/core/database"
	"commerce-linker/core/models"
	"commerce-linker/core/reconcile"
	"commerce-linker/feature/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

type staticSource struct {
	ds  *dataset.Dataset
	err error
}

func (s *staticSource) Latest() (*dataset.Dataset, error) {
	return s.ds, s.err
}

// fixture holds one exact, one geographic and one unmatched session.
func fixture() *dataset.Dataset {
	created := testNow.AddDate(0, 0, -30)
	accounts := []models.Account{
		{CustomerID: "acc-1", EmailAddress: "known@x.com", Country: models.CountryJapan, AccountStatus: models.StatusActive,
			AverageOrderValue: 500, AccountCreatedDate: created, DaysSinceLastPurchase: 90},
		{CustomerID: "acc-2", EmailAddress: "other@x.com", Country: models.CountryAustralia, AccountStatus: models.StatusActive,
			AverageOrderValue: 100, AccountCreatedDate: created, DaysSinceLastPurchase: 90},
	}
	sessions := []models.Session{
		{SessionID: "s-1", CustomerEmail: "known@x.com", CustomerCountry: models.CountryJapan, SessionDate: testNow.AddDate(0, 0, -2)},
		{SessionID: "s-2", CustomerEmail: "anon@y.com", CustomerCountry: models.CountryAustralia, SessionDate: testNow.AddDate(0, 0, -1),
			Converted: true, Revenue: 110},
		{SessionID: "s-3", CustomerEmail: "anon2@y.com", CustomerCountry: models.CountrySingapore, SessionDate: testNow},
	}
	return &dataset.Dataset{ID: "ds-1", Accounts: accounts, Sessions: sessions}
}

func newTestService(src DatasetSource, repo *Repository) *Service {
	engine := reconcile.NewEngine(reconcile.DefaultConfig(), reconcile.WithClock(func() time.Time { return testNow }))
	return NewService(src, engine, reconcile.NewResultCache(time.Minute), repo, zap.NewNop())
}

func TestRun_MatchesLatestDataset(t *testing.T) {
	svc := newTestService(&staticSource{ds: fixture()}, nil)

	_, err := svc.Last()
	assert.ErrorIs(t, err, ErrNoRun)

	run, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, run.Cached)
	assert.Equal(t, "ds-1", run.DatasetID)
	assert.Equal(t, 1, run.Result.ExactEmailMatches)
	assert.Equal(t, 1, run.Result.GeographicBehavioralMatches)
	assert.Equal(t, 2, run.Result.TotalUniqueMatches)

	again, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, again.Cached)
	assert.Same(t, run.Result, again.Result)

	last, err := svc.Last()
	require.NoError(t, err)
	assert.Equal(t, again.ID, last.ID)
}

func TestRun_NoDataset(t *testing.T) {
	svc := newTestService(&staticSource{err: dataset.ErrNoDataset}, nil)
	_, err := svc.Run(context.Background())
	assert.ErrorIs(t, err, dataset.ErrNoDataset)
}

func TestMatches_Filter(t *testing.T) {
	svc := newTestService(&staticSource{ds: fixture()}, nil)
	_, err := svc.Run(context.Background())
	require.NoError(t, err)

	all, err := svc.Matches("", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	geo, err := svc.Matches(reconcile.MatchGeographicBehavioral, 10)
	require.NoError(t, err)
	require.Len(t, geo, 1)
	assert.Equal(t, "s-2", geo[0].SessionID)
	assert.Equal(t, "acc-2", geo[0].AccountCustomerID)
}

func TestRun_PersistsUncachedRuns(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	repo := NewRepository(db)
	require.NoError(t, repo.Migrate())

	svc := newTestService(&staticSource{ds: fixture()}, repo)
	first, err := svc.Run(context.Background())
	require.NoError(t, err)
	_, err = svc.Run(context.Background())
	require.NoError(t, err)

	runs, err := svc.History(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, first.ID, runs[0].ID)
	assert.Equal(t, 2, runs[0].TotalUniqueMatches)
	assert.Equal(t, 3, runs[0].SessionCount)
}

func TestHistory_NoDatabase(t *testing.T) {
	svc := newTestService(&staticSource{ds: fixture()}, nil)
	runs, err := svc.History(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestRunDataset_NewDatasetDropsPreviousCacheEntry(t *testing.T) {
	src := &staticSource{ds: fixture()}
	svc := newTestService(src, nil)

	first, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, first.Cached)

	next := fixture()
	next.ID = "ds-2"
	src.ds = next
	_, err = svc.Run(context.Background())
	require.NoError(t, err)

	src.ds = fixture()
	again, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, again.Cached)
	assert.NotSame(t, first.Result, again.Result)
}
