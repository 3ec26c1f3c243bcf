package scanner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	consts "github.com/quantww/secscan-cli/internal/constants"
)

// ErrNotDirectory is returned when the scan target exists but is not a directory
var ErrNotDirectory = errors.New("scan target is not a directory")

// Options configures a Scanner
type Options struct {
	// MalwareSignatures and AdvisoryDB point at the injected external
	// databases; empty or missing files yield empty rule sets.
	MalwareSignatures string
	AdvisoryDB        string

	// Concurrency is the maximum number of detectors running at once
	Concurrency int
	// RateLimit is the detector launch rate per second
	RateLimit int

	Logger *zap.SugaredLogger
}

// Scanner runs the fixed detector set over a project tree and aggregates
// their findings into a report. Detectors share the immutable pattern
// library but no other state, so they run concurrently.
type Scanner struct {
	detectors   []Detector
	concurrency int
	limiter     *rate.Limiter
	logger      *zap.SugaredLogger
}

// New builds a scanner with the fixed detector set
func New(opts Options) (*Scanner, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	library, err := LoadPatternLibrary(LibrarySources{
		MalwareSignatures: opts.MalwareSignatures,
		AdvisoryDB:        opts.AdvisoryDB,
	})
	if err != nil {
		return nil, err
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = consts.DefaultScanConcurrency
	}
	rateLimit := opts.RateLimit
	if rateLimit <= 0 {
		rateLimit = consts.DefaultScanRateLimit
	}

	return &Scanner{
		detectors:   newDetectors(library, logger),
		concurrency: concurrency,
		limiter:     rate.NewLimiter(rate.Limit(rateLimit), rateLimit),
		logger:      logger,
	}, nil
}

// Scan runs every detector against the project rooted at root and returns
// the aggregated report. It fails only when root is missing or not a
// readable directory, or when ctx is cancelled; all per-file failures are
// handled inside the detectors.
func (s *Scanner) Scan(ctx context.Context, root string) (*Report, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan target: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	// Each detector writes into its own slot so the concatenation order
	// stays the registration order regardless of completion order.
	results := make([][]Finding, len(s.detectors))

	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup

	for i, detector := range s.detectors {
		wg.Add(1)
		go func(slot int, d Detector) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			if err := s.limiter.Wait(ctx); err != nil {
				return
			}

			results[slot] = d.Detect(root)
			s.logger.Debugw("detector finished", "detector", d.Name(), "findings", len(results[slot]))
		}(i, detector)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var findings []Finding
	for _, r := range results {
		findings = append(findings, r...)
	}

	report := NewReport(findings)
	s.logger.Infow("scan complete",
		"root", root,
		"issues", report.Summary.TotalIssues,
		"secure", report.IsSecure,
	)
	return report, nil
}
