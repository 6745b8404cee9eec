// Package service runs rating jobs and implements the dependencies
// required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/elo/internal/adapters/matchfile"
	"github.com/okian/elo/internal/adapters/report"
	"github.com/okian/elo/internal/adapters/repository"
	"github.com/okian/elo/internal/domain/model"
	"github.com/okian/elo/internal/domain/rating"
	"github.com/okian/elo/internal/domain/types"
	"github.com/okian/elo/internal/domain/validation"
	"github.com/okian/elo/pkg/logger"
	"github.com/okian/elo/pkg/metrics"
)

// Run statuses recorded in metrics.
const (
	statusSuccess  = "success"
	statusFailed   = "failed"
	statusRejected = "rejected"
)

// Report is the outcome of one rating run.
type Report struct {
	RunID      string
	StartedAt  time.Time
	Duration   time.Duration
	Summary    types.Summary
	Standings  []types.Standing
	History    map[string][]types.HistoryPoint
	Validation validation.Report
}

// Title returns the one-line run summary.
func (r *Report) Title() string { return r.Summary.Title() }

// Document converts the run into the JSON report format.
func (r *Report) Document() report.Document {
	doc := report.Document{
		RunID:       r.RunID,
		GeneratedAt: r.StartedAt,
		Title:       r.Title(),
		Summary:     r.Summary,
		Standings:   r.Standings,
		History:     r.History,
	}
	for _, v := range r.Validation.Violations {
		doc.Violations = append(doc.Violations, report.Violation{
			Check:          string(v.Check),
			SequenceNumber: v.Err.SequenceNumber,
			Index:          v.Err.Index,
			Message:        v.Error(),
		})
	}
	return doc
}

// Service rates match histories and publishes the results for readers.
type Service struct {
	mu sync.RWMutex

	store     repository.Store
	validator *validation.Validator
	strict    bool

	initialRating float64
	kFactor       float64

	now      func() time.Time
	newRunID func() string

	runs    int
	failed  int
	lastRun *Report

	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		store:         repository.NewSnapshotStore(),
		validator:     validation.New(),
		initialRating: rating.DefaultInitialRating,
		kFactor:       rating.DefaultKFactor,
		now:           time.Now,
		newRunID:      uuid.NewString,
		logger:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run validates and rates matches, publishes the result to the store and
// returns it. A malformed match fails the whole run and leaves the
// previously published result in place.
func (s *Service) Run(ctx context.Context, matches []model.Match) (*Report, error) {
	started := s.now()
	runID := s.newRunID()
	log := s.logger.Named("run")
	log.Info(ctx, "rating run started",
		logger.String("run_id", runID),
		logger.Int("matches", len(matches)),
	)

	vr := s.validator.Validate(ctx, matches)
	for _, v := range vr.Violations {
		metrics.RecordValidationViolation(string(v.Check))
		log.Warn(ctx, "validation violation",
			logger.String("run_id", runID),
			logger.String("check", string(v.Check)),
			logger.Int("match_no", v.Err.SequenceNumber),
			logger.Error(v.Err),
		)
	}
	checks := make([]string, len(vr.Enabled))
	for i, c := range vr.Enabled {
		checks[i] = string(c)
	}
	if vr.Valid() {
		log.Info(ctx, "match data is valid",
			logger.String("run_id", runID),
			logger.String("checks", strings.Join(checks, ",")),
			logger.Int("matches", vr.Checked),
		)
	} else {
		log.Warn(ctx, "match data is invalid",
			logger.String("run_id", runID),
			logger.String("checks", strings.Join(checks, ",")),
			logger.Int("violations", len(vr.Violations)),
		)
	}
	if s.strict && !vr.Valid() {
		s.finish(started, statusRejected)
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, vr.Err())
	}

	res, err := rating.Process(ctx, matches,
		rating.WithInitialRating(s.initialRating),
		rating.WithKFactor(s.kFactor),
		rating.WithLogger(s.logger.Named("rating")),
		rating.WithObserver(recordUpdate),
	)
	if err != nil {
		metrics.RecordErrorByComponent("engine", "malformed_record")
		s.finish(started, statusFailed)
		log.Error(ctx, "rating run failed", logger.String("run_id", runID), logger.Error(err))
		return nil, fmt.Errorf("process matches: %w", err)
	}

	rep := &Report{
		RunID:      runID,
		StartedAt:  started,
		Summary:    res.Summary(),
		Standings:  res.Standings(),
		History:    res.History,
		Validation: vr,
	}
	snap := repository.NewSnapshot(rep.RunID, rep.Standings, rep.History, rep.Summary)
	if err := s.store.Publish(ctx, snap); err != nil {
		metrics.RecordErrorByComponent("repository", "publish")
		s.finish(started, statusFailed)
		return nil, fmt.Errorf("publish results: %w", err)
	}
	rep.Duration = s.finish(started, statusSuccess)

	s.mu.Lock()
	s.lastRun = rep
	s.mu.Unlock()

	log.Info(ctx, "rating run completed",
		logger.String("run_id", runID),
		logger.Int("matches", rep.Summary.TotalMatches),
		logger.Int("players", rep.Summary.TotalPlayers),
		logger.Int("violations", len(vr.Violations)),
		logger.Float64("duration_ms", float64(rep.Duration.Microseconds())/1000),
	)
	return rep, nil
}

// RunFile loads a match file and runs it.
func (s *Service) RunFile(ctx context.Context, path string) (*Report, error) {
	matches, err := matchfile.Load(ctx, path)
	if err != nil {
		metrics.RecordErrorByComponent("matchfile", "load")
		s.finish(s.now(), statusFailed)
		return nil, err
	}
	return s.Run(ctx, matches)
}

func (s *Service) finish(started time.Time, status string) time.Duration {
	d := s.now().Sub(started)
	metrics.RecordRun(status)
	metrics.RecordRunDuration(float64(d.Microseconds()) / 1000)

	s.mu.Lock()
	s.runs++
	if status != statusSuccess {
		s.failed++
	}
	s.mu.Unlock()
	return d
}

func recordUpdate(_ context.Context, u rating.Update) {
	metrics.RecordMatchProcessed()
	if u.Outcome == model.Drawn {
		metrics.RecordDraw()
	}
	d1, d2 := u.Delta()
	metrics.RecordRatingDelta(d1)
	metrics.RecordRatingDelta(d2)
}

// TopN returns the first n rows of the published standings.
func (s *Service) TopN(ctx context.Context, n int) ([]types.Standing, error) {
	return s.store.TopN(ctx, n)
}

// Rank returns the published standings row of a player.
func (s *Service) Rank(ctx context.Context, name string) (types.Standing, error) {
	return s.store.Rank(ctx, name)
}

// History returns the published rating series of a player.
func (s *Service) History(ctx context.Context, name string) ([]types.HistoryPoint, error) {
	return s.store.History(ctx, name)
}

// Summary returns the metadata of the published run.
func (s *Service) Summary(ctx context.Context) (types.Summary, error) {
	return s.store.Summary(ctx)
}

// LastRun returns the most recent successful run, or nil.
func (s *Service) LastRun() *Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRun
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"runs":          s.runs,
		"failedRuns":    s.failed,
		"initialRating": s.initialRating,
		"kFactor":       s.kFactor,
		"strict":        s.strict,
		"totalPlayers":  s.store.Count(ctx),
	}
	if s.lastRun != nil {
		stats["lastRunId"] = s.lastRun.RunID
		stats["totalMatches"] = s.lastRun.Summary.TotalMatches
		stats["violations"] = len(s.lastRun.Validation.Violations)
	}
	return stats
}
