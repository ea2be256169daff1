package seeding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"sync"
	"time"

	"bulk-seeder/core/report"
	"bulk-seeder/core/seed"
	"bulk-seeder/core/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrRunInProgress is returned when a run is requested while another one
	// has not returned yet.
	ErrRunInProgress = errors.New("a seeding run is already in progress")
	// ErrNoRun is returned when a report is requested before any run.
	ErrNoRun = errors.New("no seeding run has completed yet")
)

// ReportPrefix is the bucket folder run reports are uploaded to.
const ReportPrefix = "reports"

// Run is one completed seeding run.
type Run struct {
	ID         string         `json:"id"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Production bool           `json:"production"`
	Log        *seed.AuditLog `json:"log"`
}

// Service runs a seeding plan and keeps the last audit log.
type Service struct {
	engine     *seed.Engine
	checker    *Checker
	units      []seed.Unit
	production bool
	logger     *zap.Logger

	reports storage.Client
	bucket  string

	running sync.Mutex
	mu      sync.RWMutex
	last    *Run

	// concurrent checks share a single pass over the sources
	checks singleflight.Group
}

// NewService creates a seeding service over a loaded plan.
func NewService(engine *seed.Engine, checker *Checker, units []seed.Unit, production bool, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		engine:     engine,
		checker:    checker,
		units:      units,
		production: production,
		logger:     logger,
	}
}

// EnableReportUpload stores every run report as JSON in bucket.
func (s *Service) EnableReportUpload(client storage.Client, bucket string) {
	s.reports = client
	s.bucket = bucket
}

// InsertData runs the plan once. Runs never overlap; a concurrent call fails
// with ErrRunInProgress. Unit failures are part of the returned log; the
// error is only set when the plan could not run at all.
func (s *Service) InsertData(ctx context.Context) (*Run, error) {
	if !s.running.TryLock() {
		return nil, ErrRunInProgress
	}
	defer s.running.Unlock()

	run := &Run{
		ID:         uuid.NewString(),
		StartedAt:  time.Now().UTC(),
		Production: s.production,
	}
	l := s.logger.With(zap.String("run_id", run.ID))
	l.Info("Seeding started", zap.Int("units", len(s.units)), zap.Bool("production", s.production))

	auditLog, err := s.engine.Run(ctx, s.units)
	if err != nil {
		l.Error("Seeding plan rejected", zap.Error(err))
		return nil, err
	}
	run.Log = auditLog
	run.FinishedAt = time.Now().UTC()

	s.mu.Lock()
	s.last = run
	s.mu.Unlock()

	if s.reports != nil {
		if err := s.upload(ctx, run); err != nil {
			l.Warn("Failed to upload run report", zap.Error(err))
		}
	}

	return run, nil
}

// LastRun returns the most recent completed run.
func (s *Service) LastRun() (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return nil, ErrNoRun
	}
	return s.last, nil
}

// ShowSummary renders the last run as a console table.
func (s *Service) ShowSummary(w io.Writer, opts report.Options) error {
	run, err := s.LastRun()
	if err != nil {
		return err
	}
	return report.NewTable(run.Log, opts).Render(w)
}

// Check inspects the plan without inserting anything. Calls made while a
// check is running receive its report. The shared check is not cancelled with
// the caller that started it, since other callers may be waiting on it.
func (s *Service) Check(ctx context.Context) (*CheckReport, error) {
	if s.checker == nil {
		return nil, fmt.Errorf("plan checks are not configured")
	}
	shareCtx := context.WithoutCancel(ctx)
	v, err, shared := s.checks.Do("check", func() (any, error) {
		return s.checker.Check(shareCtx, s.units, s.production)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("Plan check result shared")
	}
	return v.(*CheckReport), nil
}

// ReportKey returns the bucket key of a run report.
func ReportKey(runID string) string {
	return path.Join(ReportPrefix, runID+".json")
}

func (s *Service) upload(ctx context.Context, run *Run) error {
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode run report: %w", err)
	}
	return storage.PutBytes(ctx, s.reports, s.bucket, ReportKey(run.ID), data, "application/json")
}
