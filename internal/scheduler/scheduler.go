// Package scheduler runs the periodic due-covenant compliance check.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"navlend-backend/internal/usecase/compliance"
)

// DueChecker is the slice of the compliance manager the scheduler drives.
type DueChecker interface {
	CheckDue(ctx context.Context, asOf time.Time) ([]compliance.CheckResult, error)
}

type Scheduler struct {
	checker  DueChecker
	interval time.Duration
	log      *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(checker DueChecker, interval time.Duration, log *slog.Logger) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{checker: checker, interval: interval, log: log}
}

// Start runs a check immediately, then once per interval, until Stop or
// the parent context ends.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx)
		t := time.NewTicker(s.interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.run(ctx)
			}
		}
	}()
}

// Stop cancels the loop and waits for an in-flight run to finish.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

func (s *Scheduler) run(ctx context.Context) {
	started := time.Now()
	results, err := s.checker.CheckDue(ctx, started.UTC())
	if err != nil {
		s.log.Error("due-covenant check run failed", "err", err)
		return
	}

	var breaches, skipped, failed int
	for _, r := range results {
		switch {
		case r.Failed():
			failed++
		case r.Skipped:
			skipped++
		case r.Status == "breach":
			breaches++
		}
	}
	s.log.Info("due-covenant check run",
		"checked", len(results),
		"breaches", breaches,
		"skipped", skipped,
		"failed", failed,
		"took", time.Since(started))
}
