package screener

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"coinex-screener-bot/internal/config"
	"coinex-screener-bot/internal/exchange"
	"coinex-screener-bot/pkg/models"
)

// Screener owns the immutable pieces of the pipeline: the data source,
// configuration and logger. Everything mutable lives on a per-call Run,
// so overlapping invocations never share a cache. The only shared state
// is the mutex-guarded diagnostics record behind /diag.
type Screener struct {
	source exchange.MarketDataSource
	cfg    *config.Config
	logger *logrus.Logger

	mu   sync.Mutex
	diag Diagnostics
}

// Diagnostics is the operator-facing record of the most recent run.
type Diagnostics struct {
	LastRunID    string
	LastRunAt    time.Time
	LastError    string
	RawSpot      int
	RawFutures   int
	KeptSpot     int
	KeptFutures  int
	LastDuration time.Duration
}

// Result is one completed screening run.
type Result struct {
	P1, P2, P3 models.Tier

	RunID      string
	RawSpot    int
	RawFutures int
	Elapsed    time.Duration
}

// Options tweaks a single run. The zero value screens with configured
// thresholds.
type Options struct {
	Overrides *config.Thresholds
}

// Run carries the state of one screening invocation: the memoized 4h
// changes and any diagnostics collected along the way.
type Run struct {
	source  exchange.MarketDataSource
	logger  *logrus.Logger
	stables models.CurrencySet

	id         string
	pct4hCache map[string]float64
	lastErr    string
}

func New(source exchange.MarketDataSource, cfg *config.Config, logger *logrus.Logger) *Screener {
	return &Screener{
		source: source,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *Screener) newRun() *Run {
	return &Run{
		source:     s.source,
		logger:     s.logger,
		stables:    s.cfg.Stables,
		id:         uuid.NewString(),
		pct4hCache: make(map[string]float64),
	}
}

func (r *Run) recordError(err error) {
	r.lastErr = err.Error()
}

// fetchBooks pulls both ticker snapshots and reduces them to per-base
// best records. A failed fetch degrades to an empty book; the error is
// kept for diagnostics and the pipeline continues.
func (r *Run) fetchBooks(ctx context.Context, excludes models.CurrencySet) (spot, fut models.Book, rawSpot, rawFut int) {
	spotTickers, err := r.source.FetchTickers(ctx, models.Spot)
	if err != nil {
		r.logger.WithError(err).WithField("run_id", r.id).Error("Spot ticker fetch failed")
		r.recordError(fmt.Errorf("spot tickers: %w", err))
	}
	futTickers, err := r.source.FetchTickers(ctx, models.Futures)
	if err != nil {
		r.logger.WithError(err).WithField("run_id", r.id).Error("Futures ticker fetch failed")
		r.recordError(fmt.Errorf("futures tickers: %w", err))
	}

	spot = BuildBest(spotTickers, BestOptions{
		Stables:            r.stables,
		Excludes:           excludes,
		RequireStableQuote: true,
	})
	fut = BuildBest(futTickers, BestOptions{
		Stables:  r.stables,
		Excludes: excludes,
	})

	return spot, fut, len(spotTickers), len(futTickers)
}

// Screen executes one full screening run.
func (s *Screener) Screen(ctx context.Context, opts Options) *Result {
	start := time.Now()
	run := s.newRun()

	th := s.cfg.Thresholds
	if opts.Overrides != nil {
		th = *opts.Overrides
	}

	spot, fut, rawSpot, rawFut := run.fetchBooks(ctx, s.cfg.Excludes)
	p1, p2, p3 := run.buildTiers(ctx, spot, fut, th, s.cfg.Excludes)

	res := &Result{
		P1:         p1,
		P2:         p2,
		P3:         p3,
		RunID:      run.id,
		RawSpot:    rawSpot,
		RawFutures: rawFut,
		Elapsed:    time.Since(start),
	}

	s.mu.Lock()
	s.diag = Diagnostics{
		LastRunID:    run.id,
		LastRunAt:    start,
		LastError:    run.lastErr,
		RawSpot:      rawSpot,
		RawFutures:   rawFut,
		KeptSpot:     len(spot),
		KeptFutures:  len(fut),
		LastDuration: res.Elapsed,
	}
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"run_id":      run.id,
		"p1":          len(p1),
		"p2":          len(p2),
		"p3":          len(p3),
		"duration_ms": res.Elapsed.Milliseconds(),
	}).Info("Screening run completed")

	return res
}

// Lookup screens a single base asset, ignoring the exclusion list.
// found is false when no market reported any usable figure.
func (s *Screener) Lookup(ctx context.Context, base string) (entry models.AssetEntry, found bool) {
	run := s.newRun()

	spot, fut, _, _ := run.fetchBooks(ctx, nil)

	var spotPtr, futPtr *models.MarketVol
	entry.Base = base
	if sv, ok := spot[base]; ok {
		entry.SpotUSD = USDNotional(sv, s.cfg.Stables)
		spotPtr = &sv
	}
	if fv, ok := fut[base]; ok {
		entry.FuturesUSD = USDNotional(fv, s.cfg.Stables)
		futPtr = &fv
		entry.Pct4h = run.fourHourPct(ctx, fv.Symbol)
	}
	entry.Pct24h = PctChange(spotPtr, futPtr)

	s.mu.Lock()
	if run.lastErr != "" {
		s.diag.LastError = run.lastErr
	}
	s.mu.Unlock()

	found = entry.FuturesUSD != 0 || entry.SpotUSD != 0 || entry.Pct4h != 0
	return entry, found
}

// Diagnostics returns a copy of the last recorded run diagnostics.
func (s *Screener) Diagnostics() Diagnostics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.diag
}
