package matching

import (
	"context"
	"errors"
	"sync"
	"time"

	"commerce-linker/core/metrics"
	"commerce-linker/core/reconcile"
	"commerce-linker/feature/dataset"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNoRun is returned before the matcher ran at least once.
var ErrNoRun = errors.New("matcher has not run yet")

// DatasetSource provides the dataset the matcher runs against.
type DatasetSource interface {
	Latest() (*dataset.Dataset, error)
}

// Run is one matcher execution over a dataset.
type Run struct {
	ID          string            `json:"run_id"`
	DatasetID   string            `json:"dataset_id"`
	Cached      bool              `json:"cached"`
	Duration    time.Duration     `json:"duration"`
	CompletedAt time.Time         `json:"completed_at"`
	Result      *reconcile.Result `json:"result"`
}

// Service runs the matcher on the latest dataset and keeps the last run.
type Service struct {
	datasets DatasetSource
	engine   *reconcile.Engine
	cache    *reconcile.ResultCache
	repo     *Repository
	logger   *zap.Logger

	mu   sync.RWMutex
	last *Run
}

// NewService creates a matching service. repo may be nil.
func NewService(datasets DatasetSource, engine *reconcile.Engine, cache *reconcile.ResultCache, repo *Repository, logger *zap.Logger) *Service {
	return &Service{datasets: datasets, engine: engine, cache: cache, repo: repo, logger: logger}
}

// Run matches the latest dataset. Results are cached per dataset id.
func (s *Service) Run(ctx context.Context) (*Run, error) {
	ds, err := s.datasets.Latest()
	if err != nil {
		return nil, err
	}
	return s.RunDataset(ctx, ds)
}

// RunDataset matches ds and records the run.
func (s *Service) RunDataset(ctx context.Context, ds *dataset.Dataset) (*Run, error) {
	start := time.Now()
	res, cached, err := s.cache.GetOrCompute(ctx, ds.ID, func(ctx context.Context) (*reconcile.Result, error) {
		return s.engine.Run(ctx, ds.Sessions, ds.Accounts)
	})
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	metrics.RecordMatchRun(cached, res.CountsByType(), elapsed)

	run := &Run{
		ID:          uuid.NewString(),
		DatasetID:   ds.ID,
		Cached:      cached,
		Duration:    elapsed,
		CompletedAt: time.Now().UTC(),
		Result:      res,
	}

	s.mu.Lock()
	prev := s.last
	s.last = run
	s.mu.Unlock()

	// only the latest dataset is ever matched again
	if prev != nil && prev.DatasetID != ds.ID {
		s.cache.Invalidate(prev.DatasetID)
	}

	s.logger.Info("Matcher finished",
		zap.String("dataset_id", ds.ID),
		zap.Bool("cached", cached),
		zap.Int("matches", res.TotalUniqueMatches),
		zap.Duration("elapsed", elapsed))

	if !cached {
		if err := s.persist(ctx, run); err != nil {
			s.logger.Warn("Match run not persisted", zap.String("run_id", run.ID), zap.Error(err))
		}
	}
	return run, nil
}

func (s *Service) persist(ctx context.Context, run *Run) error {
	if s.repo == nil {
		return nil
	}
	res := run.Result
	return s.repo.Save(ctx, &MatchRun{
		ID:                          run.ID,
		DatasetID:                   run.DatasetID,
		SessionCount:                res.SessionCount,
		AccountCount:                res.AccountCount,
		ExactEmailMatches:           res.ExactEmailMatches,
		GeographicBehavioralMatches: res.GeographicBehavioralMatches,
		TimingPatternMatches:        res.TimingPatternMatches,
		TotalUniqueMatches:          res.TotalUniqueMatches,
		MatchRatePercent:            res.MatchRatePercent,
		ConversionMatchRate:         res.ConversionMatchRate,
		RevenueCoverage:             res.RevenueCoverage,
		DurationMs:                  run.Duration.Milliseconds(),
		CreatedAt:                   run.CompletedAt,
	})
}

// Last returns the most recent run.
func (s *Service) Last() (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return nil, ErrNoRun
	}
	return s.last, nil
}

// Matches lists matches of the last run filtered by type, at most limit.
func (s *Service) Matches(matchType reconcile.MatchType, limit int) ([]reconcile.Match, error) {
	run, err := s.Last()
	if err != nil {
		return nil, err
	}
	return run.Result.Filter(matchType, limit), nil
}

// History lists persisted run summaries, newest first. Without a database it
// returns an empty list.
func (s *Service) History(ctx context.Context, limit int) ([]MatchRun, error) {
	if s.repo == nil {
		return []MatchRun{}, nil
	}
	return s.repo.Recent(ctx, limit)
}
