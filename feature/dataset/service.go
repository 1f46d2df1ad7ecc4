package dataset

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"commerce-linker/core/generator"
	"commerce-linker/core/metrics"
	"commerce-linker/core/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Dataset is one generated pair of populations.
type Dataset struct {
	ID        string           `json:"dataset_id"`
	Seed      int64            `json:"seed"`
	CreatedAt time.Time        `json:"created_at"`
	Accounts  []models.Account `json:"-"`
	Sessions  []models.Session `json:"-"`
}

// GenerateRequest sizes a new dataset. Nil sizes use the configured
// defaults; oversized or negative sizes are clamped.
type GenerateRequest struct {
	Accounts *int  `json:"accounts"`
	Sessions *int  `json:"sessions"`
	Seed     int64 `json:"seed" validate:"gte=0"`
	Persist  bool  `json:"persist"`
	Export   bool  `json:"export"`
}

// GenerateResult reports a generated dataset and what happened to it.
type GenerateResult struct {
	Dataset   *Dataset `json:"dataset"`
	Summary   Summary  `json:"summary"`
	Persisted bool     `json:"persisted"`
	Exported  []string `json:"exported"`
}

// Service generates datasets and keeps the latest one in memory.
type Service struct {
	cfg      generator.Config
	repo     *Repository
	exporter *Exporter
	logger   *zap.Logger

	mu     sync.RWMutex
	latest *Dataset
}

// NewService creates a dataset service. repo and exporter may be nil when
// no database or object store is configured.
func NewService(cfg generator.Config, repo *Repository, exporter *Exporter, logger *zap.Logger) *Service {
	return &Service{cfg: cfg, repo: repo, exporter: exporter, logger: logger}
}

// Sizes resolves the population sizes a request will produce.
func (s *Service) Sizes(req GenerateRequest) (accounts, sessions int) {
	accounts, sessions = s.cfg.DefaultAccounts, s.cfg.DefaultSessions
	if req.Accounts != nil {
		accounts = *req.Accounts
	}
	if req.Sessions != nil {
		sessions = *req.Sessions
	}
	return s.cfg.Clamp(accounts, sessions)
}

// Generate builds accounts first, then sessions borrowing their identities,
// stores the result as the latest dataset and optionally persists and
// exports it. Persistence and export failures are logged, never returned.
func (s *Service) Generate(ctx context.Context, req GenerateRequest, opts ...generator.Option) (*GenerateResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	nAccounts, nSessions := s.Sizes(req)
	cfg := s.cfg
	if req.Seed != 0 {
		cfg.Seed = req.Seed
	}
	g := generator.New(cfg, opts...)

	start := time.Now()
	accounts := g.GenerateAccounts(nAccounts)
	metrics.RecordGeneration("accounts", len(accounts), time.Since(start))

	start = time.Now()
	sessions := g.GenerateSessions(nSessions, accounts)
	metrics.RecordGeneration("sessions", len(sessions), time.Since(start))

	ds := &Dataset{
		ID:        uuid.NewString(),
		Seed:      g.Seed(),
		CreatedAt: time.Now().UTC(),
		Accounts:  accounts,
		Sessions:  sessions,
	}
	for i := range ds.Accounts {
		ds.Accounts[i].DatasetID = ds.ID
	}
	for i := range ds.Sessions {
		ds.Sessions[i].DatasetID = ds.ID
	}

	s.mu.Lock()
	s.latest = ds
	s.mu.Unlock()

	s.logger.Info("Dataset generated",
		zap.String("dataset_id", ds.ID),
		zap.Int64("seed", ds.Seed),
		zap.Int("accounts", len(accounts)),
		zap.Int("sessions", len(sessions)))

	res := &GenerateResult{Dataset: ds, Summary: Summarize(ds), Exported: []string{}}
	if req.Persist {
		if err := s.Persist(ctx, ds); err != nil {
			s.logger.Warn("Dataset not persisted", zap.String("dataset_id", ds.ID), zap.Error(err))
		} else {
			res.Persisted = true
		}
	}
	if req.Export {
		keys, err := s.Export(ctx, ds)
		if err != nil {
			s.logger.Warn("Dataset not exported", zap.String("dataset_id", ds.ID), zap.Error(err))
		} else {
			res.Exported = keys
		}
	}
	return res, nil
}

// Latest returns the most recently generated dataset.
func (s *Service) Latest() (*Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return nil, ErrNoDataset
	}
	return s.latest, nil
}

// Persist writes ds to the bronze tables.
func (s *Service) Persist(ctx context.Context, ds *Dataset) error {
	if s.repo == nil {
		return ErrNoDatabase
	}
	return s.repo.Save(ctx, ds)
}

// Export uploads ds to the object store.
func (s *Service) Export(ctx context.Context, ds *Dataset) ([]string, error) {
	if s.exporter == nil {
		return nil, ErrNoStorage
	}
	return s.exporter.Upload(ctx, ds)
}

// Exports lists the uploaded files of the latest dataset.
func (s *Service) Exports(ctx context.Context) ([]string, error) {
	if s.exporter == nil {
		return nil, ErrNoStorage
	}
	ds, err := s.Latest()
	if err != nil {
		return nil, err
	}
	return s.exporter.List(ctx, ds.ID)
}

// OpenExport streams one uploaded file of the latest dataset.
func (s *Service) OpenExport(ctx context.Context, file string) (io.ReadCloser, error) {
	if s.exporter == nil {
		return nil, ErrNoStorage
	}
	ds, err := s.Latest()
	if err != nil {
		return nil, err
	}
	return s.exporter.Open(ctx, ds.ID, file)
}

// Schema inspects the persisted bronze tables.
func (s *Service) Schema() ([]TableStatus, error) {
	if s.repo == nil {
		return nil, ErrNoDatabase
	}
	reports, err := s.repo.InspectSchema()
	if err != nil {
		return nil, err
	}
	out := make([]TableStatus, 0, len(reports))
	for _, r := range reports {
		out = append(out, TableStatus{TableReport: r, OK: r.Exists && len(r.Missing) == 0})
	}
	return out, nil
}

// IsUnavailable reports whether err means a collaborator is not configured.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrNoDatabase) || errors.Is(err, ErrNoStorage)
}
