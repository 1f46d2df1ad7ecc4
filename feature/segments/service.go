package segments

import (
	"context"
	"sync"
	"time"

	"commerce-linker/core/forecast"
	"commerce-linker/core/rng"
	"commerce-linker/core/utils"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	createdBy = "demo_user"
	listLimit = 20
)

// Forecaster predicts future daily impressions and never fails.
type Forecaster interface {
	Forecast(ctx context.Context, criteria forecast.Criteria, history []int) ([]int, bool)
}

// Service creates segments and computes their analytics.
type Service struct {
	repo       *Repository
	forecaster Forecaster
	analytics  *cache.Cache
	logger     *zap.Logger
	now        func() time.Time

	mu  sync.Mutex
	src *rng.Source
}

// Option customises a Service.
type Option func(*Service)

// WithClock fixes the reference time.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithSource fixes the random source of synthetic metrics.
func WithSource(src *rng.Source) Option {
	return func(s *Service) { s.src = src }
}

// NewService creates a segment service. repo may be nil; a zero cacheTTL
// disables the analytics cache.
func NewService(repo *Repository, forecaster Forecaster, cacheTTL time.Duration, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{repo: repo, forecaster: forecaster, logger: logger, now: time.Now}
	if cacheTTL > 0 {
		s.analytics = cache.New(cacheTTL, 2*cacheTTL)
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.src == nil {
		s.src = rng.New(0)
	}
	return s
}

// Create builds a segment with its estimated reach and stores it. A failed
// insert is logged and the segment is still returned.
func (s *Service) Create(ctx context.Context, req CreateRequest) *Segment {
	seg := &Segment{
		SegmentID:            uuid.NewString(),
		SegmentName:          req.SegmentName,
		AgeBands:             nonNil(req.AgeBands),
		Demographics:         nonNil(req.Demographics),
		Locations:            nonNil(req.Locations),
		Interests:            nonNil(req.Interests),
		MinEngagementMinutes: req.MinEngagementMinutes,
		CreatedBy:            createdBy,
		EstimatedReach:       EstimateReach(req),
		CreatedAt:            s.now().UTC(),
	}

	if s.repo != nil {
		if err := s.repo.Create(ctx, seg); err != nil {
			s.logger.Warn("Segment not persisted", zap.String("segment_id", seg.SegmentID), zap.Error(err))
		}
	}
	return seg
}

// List returns the newest segments. Without a database, or when the query
// fails, the list is empty.
func (s *Service) List(ctx context.Context) []Segment {
	if s.repo == nil {
		return []Segment{}
	}
	out, err := s.repo.Latest(ctx, listLimit)
	if err != nil {
		s.logger.Warn("Listing segments failed", zap.Error(err))
		return []Segment{}
	}
	return out
}

// Analytics returns the previous and predicted month of a segment. Results
// are cached per segment id.
func (s *Service) Analytics(ctx context.Context, id string) *Analytics {
	if s.analytics != nil {
		if v, ok := s.analytics.Get(id); ok {
			return v.(*Analytics)
		}
	}

	today := s.now().UTC()
	history, minutes := s.observe()

	res := &Analytics{
		SegmentID:      id,
		PreviousMonth:  make([]DayMetrics, len(history)),
		PredictedMonth: []DayForecast{},
	}
	start := today.AddDate(0, 0, -historyDays)
	for i, n := range history {
		res.PreviousMonth[i] = DayMetrics{
			Date:        start.AddDate(0, 0, i).Format(time.DateOnly),
			Impressions: n,
			Minutes:     minutes[i],
			Devices:     DeviceDistribution(),
		}
	}

	predicted, fromModel := s.forecaster.Forecast(ctx, s.criteria(ctx, id), history)
	res.ModelForecast = fromModel
	for i, n := range predicted {
		res.PredictedMonth = append(res.PredictedMonth, DayForecast{
			Date:        today.AddDate(0, 0, i).Format(time.DateOnly),
			Impressions: n,
		})
	}

	if s.analytics != nil {
		s.analytics.Set(id, res, cache.DefaultExpiration)
	}
	return res
}

func (s *Service) observe() ([]int, []float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := SyntheticImpressions(s.src, historyDays, baseImpressions)
	minutes := make([]float64, len(history))
	for i, n := range history {
		minutes[i] = utils.Round(float64(n)*s.src.Uniform(2.5, 4.5), 1)
	}
	return history, minutes
}

// criteria loads the stored segment criteria; unknown segments forecast
// with empty criteria.
func (s *Service) criteria(ctx context.Context, id string) forecast.Criteria {
	if s.repo == nil {
		return forecast.Criteria{}
	}
	seg, err := s.repo.Get(ctx, id)
	if err != nil {
		return forecast.Criteria{}
	}
	return forecast.Criteria{
		AgeBands:     seg.AgeBands,
		Demographics: seg.Demographics,
		Locations:    seg.Locations,
		Interests:    seg.Interests,
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
